package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/calendar"
	"github.com/BleepBlorpBlop/soundstories-app/internal/shared/response"
)

// CalendarHandler handles HTTP requests for the calendar domain
type CalendarHandler struct {
	service calendar.Service
}

// NewCalendarHandler creates a new calendar handler instance
func NewCalendarHandler(service calendar.Service) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// Generate handles POST /admin/calendar/generate
func (h *CalendarHandler) Generate(c *gin.Context) {
	result, err := h.service.GenerateFeed(c.Request.Context())
	if err != nil {
		statusCode, message, code := calendar.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetSubscription handles GET /calendar
func (h *CalendarHandler) GetSubscription(c *gin.Context) {
	info, err := h.service.SubscriptionInfo(c.Request.Context())
	if err != nil {
		statusCode, message, code := calendar.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, info)
}
