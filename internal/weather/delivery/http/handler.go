package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stylemind/stylemind-backend/internal/weather"
)

// WeatherHandler serves current conditions for outfit context
type WeatherHandler struct {
	client *weather.Client

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(client *weather.Client) *WeatherHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_service_requests_total",
			Help: "Total number of requests to the weather endpoint",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_service_request_duration_seconds",
			Help:    "Duration of weather endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &WeatherHandler{
		client:         client,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *WeatherHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Current handles GET /api/weather. The report never fails; unreachable
// upstreams yield the fallback city.
func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	lat := queryFloat(r, "lat", weather.DefaultLatitude)
	lon := queryFloat(r, "lon", weather.DefaultLongitude)

	report := h.client.Current(r.Context(), lat, lon)
	h.respondJSON(w, http.StatusOK, report)
}

func queryFloat(r *http.Request, key string, fallback float64) float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}

// respondJSON sends a JSON response
func (h *WeatherHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RegisterRoutes registers the weather route
func (h *WeatherHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/weather", h.metricsMiddleware("/api/weather", h.Current)).Methods("GET")
}
