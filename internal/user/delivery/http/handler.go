package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stylemind/stylemind-backend/internal/user/domain"
	"github.com/stylemind/stylemind-backend/internal/user/usecase/command"
	"github.com/stylemind/stylemind-backend/internal/user/usecase/query"
	"github.com/stylemind/stylemind-backend/kafka"
	"github.com/stylemind/stylemind-backend/pkg/auth"
	"github.com/stylemind/stylemind-backend/pkg/logger"
)

// SwipePublisher publishes swipe events to the message bus
type SwipePublisher interface {
	PublishSwipeRecorded(ctx context.Context, event kafka.SwipeRecordedEvent) error
}

// UserHandler handles HTTP requests for profiles and swipes
type UserHandler struct {
	// Command handlers
	createHandler      *command.CreateUserHandler
	updateHandler      *command.UpdateUserHandler
	recordSwipeHandler *command.RecordSwipeHandler

	// Query handlers
	getUserHandler    *query.GetUserHandler
	listSwipesHandler *query.ListSwipesHandler

	repo           domain.UserRepository
	publisher      SwipePublisher
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	profileGauge   prometheus.Gauge
}

// NewUserHandler creates a new user handler. The publisher is optional.
func NewUserHandler(users domain.UserRepository, swipes domain.SwipeRepository, publisher SwipePublisher) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_service_requests_total",
			Help: "Total number of requests to user endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "user_service_request_duration_seconds",
			Help:    "Duration of user endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	profileGauge := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "user_service_profiles",
			Help: "Number of profiles in the system",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(profileGauge)

	return &UserHandler{
		createHandler:      command.NewCreateUserHandler(users),
		updateHandler:      command.NewUpdateUserHandler(users),
		recordSwipeHandler: command.NewRecordSwipeHandler(users, swipes),
		getUserHandler:     query.NewGetUserHandler(users),
		listSwipesHandler:  query.NewListSwipesHandler(swipes),
		repo:               users,
		publisher:          publisher,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
		profileGauge:       profileGauge,
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
func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Gender string `json:"gender"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreateUserCommand{
		Name:   req.Name,
		Email:  req.Email,
		Gender: req.Gender,
	}

	user, err := h.createHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Anonymous device session: the token just pins the new profile id
	token, err := auth.GenerateToken(user.ID, user.Gender)
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to issue session token")
	}

	h.updateProfileGauge()
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// GetUser handles GET /api/users/{user_id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	q := query.GetUserQuery{ID: vars["user_id"]}
	user, err := h.getUserHandler.Handle(q)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, "User not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// UpdateUser handles PUT /api/users/{user_id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var update domain.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateUserCommand{
		ID:     vars["user_id"],
		Update: update,
	}

	user, err := h.updateHandler.Handle(cmd)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, "User not found")
			return
		}
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// CreateSwipe handles POST /api/swipes
func (h *UserHandler) CreateSwipe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID        string `json:"user_id"`
		OutfitID      string `json:"outfit_id"`
		Action        string `json:"action"`
		StyleCategory string `json:"style_category"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.RecordSwipeCommand{
		UserID:        req.UserID,
		OutfitID:      req.OutfitID,
		Action:        req.Action,
		StyleCategory: req.StyleCategory,
	}

	result, err := h.recordSwipeHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.publisher != nil {
		event := kafka.SwipeRecordedEvent{
			SwipeID:       result.Swipe.ID,
			UserID:        result.Swipe.UserID,
			OutfitID:      result.Swipe.OutfitID,
			Action:        result.Swipe.Action,
			StyleCategory: result.Swipe.StyleCategory,
		}
		if result.User != nil {
			event.SwipesCount = result.User.SwipesCount
		}
		if err := h.publisher.PublishSwipeRecorded(r.Context(), event); err != nil {
			// Event delivery is best-effort; the swipe is already stored
			logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to publish swipe event")
		}
	}

	h.respondJSON(w, http.StatusCreated, result.Swipe)
}

// ListSwipes handles GET /api/swipes/{user_id}
func (h *UserHandler) ListSwipes(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	q := query.ListSwipesQuery{UserID: vars["user_id"]}
	swipes, err := h.listSwipesHandler.Handle(q)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, swipes)
}

// HealthCheck handles GET /health
func (h *UserHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

// updateProfileGauge updates the profiles gauge
func (h *UserHandler) updateProfileGauge() {
	count, err := h.repo.Count()
	if err == nil {
		h.profileGauge.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func (h *UserHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *UserHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/users", h.metricsMiddleware("/api/users", h.CreateUser)).Methods("POST")
	router.HandleFunc("/api/users/{user_id}", h.metricsMiddleware("/api/users/{user_id}", h.GetUser)).Methods("GET")
	router.HandleFunc("/api/users/{user_id}", h.metricsMiddleware("/api/users/{user_id}", h.UpdateUser)).Methods("PUT")

	router.HandleFunc("/api/swipes", h.metricsMiddleware("/api/swipes", h.CreateSwipe)).Methods("POST")
	router.HandleFunc("/api/swipes/{user_id}", h.metricsMiddleware("/api/swipes/{user_id}", h.ListSwipes)).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *UserHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", h.HealthCheck(db)).Methods("GET")
}
