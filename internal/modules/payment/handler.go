package payment

import (
	"errors"
	"net/http"
	"strconv"

	"flyease/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/bookings/:id/payments", h.ListForBooking)
}

func (h *Handler) ListForBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	userID := c.GetInt64("user_id")
	role := c.GetString("role")

	payments, err := h.service.GetForBooking(c.Request.Context(), bookingID, userID, role)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PAYMENTS_FETCH_FAILED", "Could not fetch payments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}
