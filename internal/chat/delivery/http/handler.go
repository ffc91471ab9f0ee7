package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stylemind/stylemind-backend/internal/chat"
)

// ChatHandler handles HTTP requests for the stylist conversation
type ChatHandler struct {
	service *chat.Service

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	turnCounter    *prometheus.CounterVec
}

// NewChatHandler creates a new chat handler
func NewChatHandler(service *chat.Service) *ChatHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_service_requests_total",
			Help: "Total number of requests to chat endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_service_request_duration_seconds",
			Help:    "Duration of chat endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	turnCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_service_turns_total",
			Help: "Chat turns served, by outcome",
		},
		[]string{"success"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(turnCounter)

	return &ChatHandler{
		service:        service,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		turnCounter:    turnCounter,
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
func (h *ChatHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Chat handles POST /api/chat. Model failures still return 200 with a
// fallback response in the body.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  string `json:"user_id"`
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Chat(r.Context(), req.UserID, req.Message)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.turnCounter.WithLabelValues(strconv.FormatBool(result.Success)).Inc()
	h.respondJSON(w, http.StatusOK, result)
}

// OutfitAdvice handles POST /api/chat/outfit-advice
func (h *ChatHandler) OutfitAdvice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID      string `json:"user_id"`
		Occasion    string `json:"occasion"`
		Preferences string `json:"preferences"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.OutfitAdvice(r.Context(), req.UserID, req.Occasion, req.Preferences)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.turnCounter.WithLabelValues(strconv.FormatBool(result.Success)).Inc()
	h.respondJSON(w, http.StatusOK, result)
}

// GetHistory handles GET /api/chat/history/{user_id}
func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	messages, err := h.service.HistoryFor(r.Context(), vars["user_id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":  vars["user_id"],
		"messages": messages,
		"count":    len(messages),
	})
}

// ClearHistory handles DELETE /api/chat/history/{user_id}
func (h *ChatHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.service.ClearHistory(r.Context(), vars["user_id"]); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Chat history cleared"})
}

// respondJSON sends a JSON response
func (h *ChatHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *ChatHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all chat routes
func (h *ChatHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/chat", h.metricsMiddleware("/api/chat", h.Chat)).Methods("POST")
	router.HandleFunc("/api/chat/outfit-advice", h.metricsMiddleware("/api/chat/outfit-advice", h.OutfitAdvice)).Methods("POST")
	router.HandleFunc("/api/chat/history/{user_id}", h.metricsMiddleware("/api/chat/history/{user_id}", h.GetHistory)).Methods("GET")
	router.HandleFunc("/api/chat/history/{user_id}", h.metricsMiddleware("/api/chat/history/{user_id}", h.ClearHistory)).Methods("DELETE")
}
