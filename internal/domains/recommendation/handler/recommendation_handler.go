package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/recommendation"
	"github.com/BleepBlorpBlop/soundstories-app/internal/shared/response"
)

// RecommendationHandler handles HTTP requests for the recommendation domain
type RecommendationHandler struct {
	service recommendation.Service
}

// NewRecommendationHandler creates a new recommendation handler instance
// Dependency injection pattern - receives service from container
func NewRecommendationHandler(service recommendation.Service) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// Create handles POST /admin/recommendations
func (h *RecommendationHandler) Create(c *gin.Context) {
	var req recommendation.CreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	// Attribution set by AuthMiddleware
	adminEmail := c.GetString("email")
	adminName := c.GetString("name")

	result, err := h.service.Create(c.Request.Context(), &req, adminEmail, adminName)
	if err != nil {
		statusCode, message, code := recommendation.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// List handles GET /admin/recommendations
func (h *RecommendationHandler) List(c *gin.Context) {
	result, err := h.service.ListPartitioned(c.Request.Context())
	if err != nil {
		statusCode, message, code := recommendation.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ListPast handles GET /recommendations/past (public)
func (h *RecommendationHandler) ListPast(c *gin.Context) {
	results, err := h.service.ListPast(c.Request.Context())
	if err != nil {
		statusCode, message, code := recommendation.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, results)
}

// Get handles GET /admin/recommendations/:id
func (h *RecommendationHandler) Get(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		statusCode, message, code := recommendation.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Delete handles DELETE /admin/recommendations/:id
func (h *RecommendationHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		statusCode, message, code := recommendation.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
