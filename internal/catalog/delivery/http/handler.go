package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stylemind/stylemind-backend/internal/catalog/domain"
)

const (
	defaultPageSize = 20
	defaultMaxPrice = 100000
)

// CatalogHandler serves the curated outfit deck and product recommendations
type CatalogHandler struct {
	repo domain.OutfitRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(repo domain.OutfitRepository) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CatalogHandler{
		repo:           repo,
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
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// ListOutfits handles GET /api/outfits
func (h *CatalogHandler) ListOutfits(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", defaultPageSize)
	gender := r.URL.Query().Get("gender")

	outfits := h.repo.ListByGender(gender, skip, limit)
	h.respondJSON(w, http.StatusOK, outfits)
}

// GetOutfit handles GET /api/outfits/{outfit_id}
func (h *CatalogHandler) GetOutfit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	outfit, err := h.repo.FindByID(vars["outfit_id"])
	if err != nil {
		if errors.Is(err, domain.ErrOutfitNotFound) {
			h.respondError(w, http.StatusNotFound, "Outfit not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, outfit)
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	minPrice := queryInt(r, "min_price", 0)
	maxPrice := queryInt(r, "max_price", defaultMaxPrice)

	products := h.repo.Products(minPrice, maxPrice)
	h.respondJSON(w, http.StatusOK, products)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// respondJSON sends a JSON response
func (h *CatalogHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *CatalogHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/outfits", h.metricsMiddleware("/api/outfits", h.ListOutfits)).Methods("GET")
	router.HandleFunc("/api/outfits/{outfit_id}", h.metricsMiddleware("/api/outfits/{outfit_id}", h.GetOutfit)).Methods("GET")
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
}
