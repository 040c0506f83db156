package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/user"
	"github.com/BleepBlorpBlop/soundstories-app/internal/shared/response"
)

// UserHandler handles HTTP requests for the user domain
type UserHandler struct {
	service user.Service
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		statusCode, message, code := user.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Me handles GET /admin/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c, "missing session")
		return
	}

	id, ok := userID.(uuid.UUID)
	if !ok {
		response.Unauthorized(c, "invalid session")
		return
	}

	result, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		statusCode, message, code := user.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}
