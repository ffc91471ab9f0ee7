package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stylemind/stylemind-backend/internal/ai"
	"github.com/stylemind/stylemind-backend/pkg/logger"
)

// AnalysisHandler exposes the vision analysis endpoints. Both endpoints
// degrade to fixed defaults instead of failing when the model is
// unreachable.
type AnalysisHandler struct {
	gateway ai.Gateway

	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	fallbackCounter *prometheus.CounterVec
}

// NewAnalysisHandler creates a new analysis handler. A nil gateway makes
// every response a fallback.
func NewAnalysisHandler(gateway ai.Gateway) *AnalysisHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_service_requests_total",
			Help: "Total number of requests to analysis endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_service_request_duration_seconds",
			Help:    "Duration of analysis endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	fallbackCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_service_fallbacks_total",
			Help: "Analysis responses served from fixed defaults",
		},
		[]string{"endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(fallbackCounter)

	return &AnalysisHandler{
		gateway:         gateway,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		fallbackCounter: fallbackCounter,
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
func (h *AnalysisHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// AnalyzeClothing handles POST /api/analyze-clothing
func (h *AnalysisHandler) AnalyzeClothing(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ImageBase64 string `json:"image_base64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ImageBase64 == "" {
		h.respondError(w, http.StatusBadRequest, "image_base64 is required")
		return
	}

	if h.gateway == nil {
		h.fallbackCounter.WithLabelValues("/api/analyze-clothing").Inc()
		h.respondJSON(w, http.StatusOK, ai.FallbackClothingAnalysis("vision model not configured"))
		return
	}

	analysis, err := h.gateway.AnalyzeClothing(r.Context(), req.ImageBase64)
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Clothing analysis failed")
		h.fallbackCounter.WithLabelValues("/api/analyze-clothing").Inc()
		h.respondJSON(w, http.StatusOK, ai.FallbackClothingAnalysis(err.Error()))
		return
	}

	h.respondJSON(w, http.StatusOK, analysis)
}

// AnalyzeBody handles POST /api/analyze-body
func (h *AnalysisHandler) AnalyzeBody(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ImageBase64 string `json:"image_base64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ImageBase64 == "" {
		h.respondError(w, http.StatusBadRequest, "image_base64 is required")
		return
	}

	if h.gateway == nil {
		h.fallbackCounter.WithLabelValues("/api/analyze-body").Inc()
		h.respondJSON(w, http.StatusOK, ai.FallbackBodyAnalysis("vision model not configured"))
		return
	}

	analysis, err := h.gateway.AnalyzeBody(r.Context(), req.ImageBase64)
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Body analysis failed")
		h.fallbackCounter.WithLabelValues("/api/analyze-body").Inc()
		h.respondJSON(w, http.StatusOK, ai.FallbackBodyAnalysis(err.Error()))
		return
	}

	h.respondJSON(w, http.StatusOK, analysis)
}

// respondJSON sends a JSON response
func (h *AnalysisHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *AnalysisHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all analysis routes
func (h *AnalysisHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/analyze-clothing", h.metricsMiddleware("/api/analyze-clothing", h.AnalyzeClothing)).Methods("POST")
	router.HandleFunc("/api/analyze-body", h.metricsMiddleware("/api/analyze-body", h.AnalyzeBody)).Methods("POST")
}
