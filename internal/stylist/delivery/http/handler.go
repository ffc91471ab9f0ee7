package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stylemind/stylemind-backend/internal/stylist"
	"github.com/stylemind/stylemind-backend/internal/stylist/usecase/query"
)

// StylistHandler handles outfit suggestions and gap analysis
type StylistHandler struct {
	suggestHandler *query.SuggestOutfitHandler
	gapsHandler    *query.AnalyzeGapsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	planCounter    *prometheus.CounterVec
}

// NewStylistHandler creates a new stylist handler
func NewStylistHandler(suggestHandler *query.SuggestOutfitHandler, gapsHandler *query.AnalyzeGapsHandler) *StylistHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylist_service_requests_total",
			Help: "Total number of requests to stylist endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stylist_service_request_duration_seconds",
			Help:    "Duration of stylist endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	planCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylist_service_plans_total",
			Help: "Outfit plans produced, by source and success",
		},
		[]string{"source", "success"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(planCounter)

	return &StylistHandler{
		suggestHandler: suggestHandler,
		gapsHandler:    gapsHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		planCounter:    planCounter,
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
func (h *StylistHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// SuggestOutfit handles POST /api/outfit-suggestion. The response is
// always 200 with a plan envelope; "no outfit" is expressed in the body.
func (h *StylistHandler) SuggestOutfit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   string                `json:"user_id"`
		Occasion string                `json:"occasion"`
		Weather  *query.WeatherContext `json:"weather"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	q := query.SuggestOutfitQuery{
		UserID:   req.UserID,
		Occasion: req.Occasion,
		Weather:  req.Weather,
	}

	plan, err := h.suggestHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.planCounter.WithLabelValues(planSource(plan), strconv.FormatBool(plan.Success)).Inc()
	h.respondJSON(w, http.StatusOK, plan)
}

// AnalyzeGaps handles GET /api/wardrobe-gaps/{user_id}
func (h *StylistHandler) AnalyzeGaps(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	report, err := h.gapsHandler.Handle(query.AnalyzeGapsQuery{UserID: vars["user_id"]})
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, report)
}

func planSource(plan stylist.Plan) string {
	if plan.Source == "" {
		return stylist.SourceRules
	}
	return plan.Source
}

// respondJSON sends a JSON response
func (h *StylistHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *StylistHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all stylist routes
func (h *StylistHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/outfit-suggestion", h.metricsMiddleware("/api/outfit-suggestion", h.SuggestOutfit)).Methods("POST")
	router.HandleFunc("/api/wardrobe-gaps/{user_id}", h.metricsMiddleware("/api/wardrobe-gaps/{user_id}", h.AnalyzeGaps)).Methods("GET")
}
