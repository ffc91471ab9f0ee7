package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateUser godoc
// @Summary Create a profile
// @Description Create a new anonymous profile and issue a device session token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,gender=string} false "Optional profile data"
// @Success 201 {object} object{user=object,token=string}
// @Failure 400 {object} object{error=string}
// @Router /api/users [post]
func (h *UserHandler) CreateUserDoc() {}

// GetUser godoc
// @Summary Get a profile
// @Description Get a profile with its style DNA and counters
// @Tags Users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} object{id=string,name=string,gender=string,style_dna=object,swipes_count=int}
// @Failure 404 {object} object{error=string}
// @Router /api/users/{user_id} [get]
func (h *UserHandler) GetUserDoc() {}

// UpdateUser godoc
// @Summary Update a profile
// @Description Merge the provided fields into the profile; omitted fields are untouched
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param request body object{name=string,gender=string,onboarding_complete=bool,profile_complete=bool,body_analysis=object,style_dna=object} true "Partial update"
// @Success 200 {object} object{id=string,name=string,gender=string,style_dna=object}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/users/{user_id} [put]
func (h *UserHandler) UpdateUserDoc() {}

// CreateSwipe godoc
// @Summary Record a swipe
// @Description Store a catalog swipe and adjust the user's style DNA
// @Tags Swipes
// @Accept json
// @Produce json
// @Param request body object{user_id=string,outfit_id=string,action=string,style_category=string} true "Swipe data"
// @Success 201 {object} object{id=string,user_id=string,outfit_id=string,action=string,style_category=string}
// @Failure 400 {object} object{error=string}
// @Router /api/swipes [post]
func (h *UserHandler) CreateSwipeDoc() {}

// ListSwipes godoc
// @Summary List swipes
// @Description List a user's swipe history, oldest first
// @Tags Swipes
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} object{id=string,outfit_id=string,action=string,style_category=string}
// @Failure 500 {object} object{error=string}
// @Router /api/swipes/{user_id} [get]
func (h *UserHandler) ListSwipesDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func (h *UserHandler) HealthCheckDoc() {}
