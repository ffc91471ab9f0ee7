package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
	"github.com/stylemind/stylemind-backend/internal/wardrobe/usecase/command"
	"github.com/stylemind/stylemind-backend/internal/wardrobe/usecase/query"
	"github.com/stylemind/stylemind-backend/kafka"
	"github.com/stylemind/stylemind-backend/pkg/logger"
)

// ItemPublisher publishes wardrobe events to the message bus
type ItemPublisher interface {
	PublishItemAdded(ctx context.Context, event kafka.ItemAddedEvent) error
}

// WardrobeHandler handles HTTP requests for wardrobe items
type WardrobeHandler struct {
	// Command handlers
	addHandler      *command.AddItemHandler
	updateHandler   *command.UpdateItemHandler
	deleteHandler   *command.DeleteItemHandler
	markWornHandler *command.MarkWornHandler

	// Query handlers
	getItemHandler   *query.GetItemHandler
	listItemsHandler *query.ListItemsHandler

	publisher      ItemPublisher
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewWardrobeHandler creates a new wardrobe handler. The publisher is
// optional.
func NewWardrobeHandler(repo domain.ItemRepository, publisher ItemPublisher) *WardrobeHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_service_requests_total",
			Help: "Total number of requests to wardrobe endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wardrobe_service_request_duration_seconds",
			Help:    "Duration of wardrobe endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &WardrobeHandler{
		addHandler:       command.NewAddItemHandler(repo),
		updateHandler:    command.NewUpdateItemHandler(repo),
		deleteHandler:    command.NewDeleteItemHandler(repo),
		markWornHandler:  command.NewMarkWornHandler(repo),
		getItemHandler:   query.NewGetItemHandler(repo),
		listItemsHandler: query.NewListItemsHandler(repo),
		publisher:        publisher,
		requestCounter:   requestCounter,
		requestLatency:   requestLatency,
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
func (h *WardrobeHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// AddItem handles POST /api/wardrobe
func (h *WardrobeHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID      string   `json:"user_id"`
		ImageBase64 string   `json:"image_base64"`
		Category    string   `json:"category"`
		Subcategory string   `json:"subcategory"`
		Colors      []string `json:"colors"`
		Pattern     string   `json:"pattern"`
		Occasions   []string `json:"occasions"`
		Brand       *string  `json:"brand"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.AddItemCommand{
		UserID:      req.UserID,
		ImageBase64: req.ImageBase64,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Colors:      req.Colors,
		Pattern:     req.Pattern,
		Occasions:   req.Occasions,
		Brand:       req.Brand,
	}

	item, err := h.addHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.publisher != nil {
		event := kafka.ItemAddedEvent{
			ItemID:   item.ID,
			UserID:   item.UserID,
			Category: item.Category,
			Pattern:  item.Pattern,
		}
		if err := h.publisher.PublishItemAdded(r.Context(), event); err != nil {
			// Event delivery is best-effort; the item is already stored
			logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to publish item added event")
		}
	}

	h.respondJSON(w, http.StatusCreated, item)
}

// ListItems handles GET /api/wardrobe/{user_id}
func (h *WardrobeHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	q := query.ListItemsQuery{
		UserID:   vars["user_id"],
		Category: r.URL.Query().Get("category"),
	}

	items, err := h.listItemsHandler.Handle(q)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// GetItem handles GET /api/wardrobe/item/{item_id}
func (h *WardrobeHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	q := query.GetItemQuery{ID: vars["item_id"]}
	item, err := h.getItemHandler.Handle(q)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			h.respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// UpdateItem handles PUT /api/wardrobe/{item_id}
func (h *WardrobeHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var update domain.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateItemCommand{
		ID:     vars["item_id"],
		Update: update,
	}

	item, err := h.updateHandler.Handle(cmd)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			h.respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/wardrobe/{item_id}
func (h *WardrobeHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cmd := command.DeleteItemCommand{ID: vars["item_id"]}
	if err := h.deleteHandler.Handle(cmd); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			h.respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}

// MarkWorn handles POST /api/wardrobe/{item_id}/worn
func (h *WardrobeHandler) MarkWorn(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cmd := command.MarkWornCommand{ID: vars["item_id"]}
	item, err := h.markWornHandler.Handle(cmd)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			h.respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// respondJSON sends a JSON response
func (h *WardrobeHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *WardrobeHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all wardrobe routes. The static /item segment
// must be registered before the {user_id} wildcard.
func (h *WardrobeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/wardrobe", h.metricsMiddleware("/api/wardrobe", h.AddItem)).Methods("POST")
	router.HandleFunc("/api/wardrobe/item/{item_id}", h.metricsMiddleware("/api/wardrobe/item/{item_id}", h.GetItem)).Methods("GET")
	router.HandleFunc("/api/wardrobe/{user_id}", h.metricsMiddleware("/api/wardrobe/{user_id}", h.ListItems)).Methods("GET")
	router.HandleFunc("/api/wardrobe/{item_id}", h.metricsMiddleware("/api/wardrobe/{item_id}", h.UpdateItem)).Methods("PUT")
	router.HandleFunc("/api/wardrobe/{item_id}", h.metricsMiddleware("/api/wardrobe/{item_id}", h.DeleteItem)).Methods("DELETE")
	router.HandleFunc("/api/wardrobe/{item_id}/worn", h.metricsMiddleware("/api/wardrobe/{item_id}/worn", h.MarkWorn)).Methods("POST")
}
