package booking

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
	bookings := protected.Group("/bookings")
	{
		bookings.POST("/quote", h.Quote)
		bookings.POST("/customer-info", h.CustomerInfo)
		bookings.POST("/payment-details", h.PaymentDetails)
		bookings.GET("/confirmation", h.Confirmation)
		bookings.POST("/confirm", h.Confirm)
		bookings.GET("", h.ListMine)
		bookings.GET("/:id", h.GetMine)
	}
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	quote, err := h.service.QuotePrice(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quote": quote})
}

func (h *Handler) CustomerInfo(c *gin.Context) {
	var req CustomerInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	state, err := h.service.SubmitCustomerInfo(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"step": state.Step})
}

func (h *Handler) PaymentDetails(c *gin.Context) {
	var req PaymentDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	state, err := h.service.SubmitPaymentDetails(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"step": state.Step})
}

func (h *Handler) Confirmation(c *gin.Context) {
	view, err := h.service.GetConfirmation(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"confirmation": view})
}

func (h *Handler) Confirm(c *gin.Context) {
	result, err := h.service.Commit(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) ListMine(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	views, err := h.service.MyBookings(c.Request.Context(), currentUserID(c), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "BOOKINGS_FETCH_FAILED", "Could not fetch bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": views})
}

func (h *Handler) GetMine(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	view, err := h.service.GetMyBooking(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "BOOKINGS_FETCH_FAILED", "Could not fetch booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": view})
}

func (h *Handler) respondFlowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPackageNotFound):
		response.Error(c, http.StatusNotFound, "PACKAGE_NOT_FOUND", "Travel package not found")
	case errors.Is(err, ErrTravelerCountInvalid):
		response.Error(c, http.StatusBadRequest, "INVALID_TRAVELER_COUNT", "Traveler count must be at least 1")
	case errors.Is(err, ErrTravelerMixInvalid):
		response.Error(c, http.StatusBadRequest, "INVALID_TRAVELER_MIX", "Senior and junior counts exceed the traveler count")
	case errors.Is(err, ErrTravelDateInPast):
		response.Error(c, http.StatusBadRequest, "INVALID_TRAVEL_DATE", "Travel date must be in the future")
	case errors.Is(err, ErrNoFlowInProgress):
		response.Error(c, http.StatusConflict, "NO_FLOW_IN_PROGRESS", "Start a new booking with a price quote first")
	case errors.Is(err, ErrFlowStepOutOfOrder):
		response.Error(c, http.StatusConflict, "FLOW_STEP_OUT_OF_ORDER", "Complete the previous booking step first")
	case errors.Is(err, ErrInsufficientCapacity):
		response.Error(c, http.StatusConflict, "INSUFFICIENT_CAPACITY", "Not enough available slots for this package")
	case errors.Is(err, ErrPaymentGatewayFailed):
		response.Error(c, http.StatusBadGateway, "PAYMENT_FAILED", "Payment could not be processed, booking was not created")
	default:
		response.Error(c, http.StatusInternalServerError, "BOOKING_FAILED", "Failed to process booking step")
	}
}

func currentUserID(c *gin.Context) int64 {
	v, _ := c.Get("user_id")
	id, _ := v.(int64)
	return id
}
