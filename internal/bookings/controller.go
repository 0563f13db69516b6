package bookings

import (
	"net/http"

	"stayhub/internal/shared/utils/response"
	"stayhub/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func requester(ctx *gin.Context) (id string, isStaff bool, ok bool) {
	rawID, exists := ctx.Get("user_id")
	if !exists {
		return "", false, false
	}
	role, _ := ctx.Get("user_role")
	roleStr, _ := role.(string)
	return rawID.(string), users.Role(roleStr).IsStaff(), true
}

func (c *Controller) CreateBooking(ctx *gin.Context) {
	userID, _, ok := requester(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := c.service.CreateOnline(ctx.Request.Context(), userID, req)
	if err != nil {
		c.respondCreateError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking submitted successfully", booking, nil)
}

func (c *Controller) CreateWalkInBooking(ctx *gin.Context) {
	userID, _, ok := requester(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req WalkInBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := c.service.CreateWalkIn(ctx.Request.Context(), userID, req)
	if err != nil {
		c.respondCreateError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Walk-in booking created successfully", booking, nil)
}

func (c *Controller) respondCreateError(ctx *gin.Context, err error) {
	switch err {
	case ErrRoomUnavailable:
		response.RespondJSON(ctx, "error", http.StatusConflict, "One or more rooms are not available for the requested dates", nil, nil)
	case ErrInvalidDateRange:
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Check-out must be after check-in", nil, nil)
	case ErrOverpayment:
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Payment exceeds booking total", nil, nil)
	case users.ErrUserNotFound:
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Customer not found", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create booking", nil, nil)
	}
}

func (c *Controller) GetBooking(ctx *gin.Context) {
	userID, isStaff, ok := requester(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	booking, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"), userID, isStaff)
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
		case ErrNotBookingOwner:
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Booking belongs to another customer", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to get booking", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

func (c *Controller) GetMyBookings(ctx *gin.Context) {
	userID, _, ok := requester(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var query BookingListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.GetMine(ctx.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get bookings", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", result, nil)
}

func (c *Controller) ListBookings(ctx *gin.Context) {
	var query BookingListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.List(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list bookings", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", result, nil)
}

func (c *Controller) ApproveBooking(ctx *gin.Context) {
	booking, err := c.service.Approve(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondTransitionError(ctx, err, "Failed to approve booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking approved successfully", booking, nil)
}

func (c *Controller) RejectBooking(ctx *gin.Context) {
	var req RejectBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Rejection reason is required", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := c.service.Reject(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		c.respondTransitionError(ctx, err, "Failed to reject booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking rejected", booking, nil)
}

func (c *Controller) CheckInBooking(ctx *gin.Context) {
	booking, err := c.service.CheckIn(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondTransitionError(ctx, err, "Failed to check in booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking checked in successfully", booking, nil)
}

func (c *Controller) CheckOutBooking(ctx *gin.Context) {
	booking, err := c.service.CheckOut(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondTransitionError(ctx, err, "Failed to check out booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking checked out successfully", booking, nil)
}

func (c *Controller) ChangeRoom(ctx *gin.Context) {
	var req ChangeRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	result, err := c.service.ChangeRoom(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
		case ErrInvalidTransition:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Room changes are only possible for approved or checked-in bookings", nil, nil)
		case ErrRoomNotInBooking:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Room is not part of this booking", nil, nil)
		case ErrSameRoom:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Target room is the same as the current room", nil, nil)
		case ErrRoomUnavailable:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Target room is not available for the stay dates", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to change room", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Room changed successfully", result, nil)
}

func (c *Controller) RecordPayment(ctx *gin.Context) {
	var req RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := c.service.RecordPayment(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
		case ErrOverpayment:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Payment exceeds outstanding amount", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to record payment", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payment recorded successfully", booking, nil)
}

func (c *Controller) respondTransitionError(ctx *gin.Context, err error, fallback string) {
	switch err {
	case ErrBookingNotFound:
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
	case ErrInvalidTransition:
		response.RespondJSON(ctx, "error", http.StatusConflict, "Booking status does not allow this operation", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, nil)
	}
}
