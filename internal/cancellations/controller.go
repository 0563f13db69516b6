package cancellations

import (
	"net/http"

	"stayhub/internal/bookings"
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

func (c *Controller) GetQuote(ctx *gin.Context) {
	userID, isStaff, ok := requester(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var query QuoteQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	quote, err := c.service.Quote(ctx.Request.Context(), query.BookingID, userID, isStaff)
	if err != nil {
		c.respondError(ctx, err, "Failed to compute cancellation quote")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cancellation quote computed", quote, nil)
}

func (c *Controller) SubmitCancellation(ctx *gin.Context) {
	userID, _, ok := requester(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req SubmitCancellationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	result, err := c.service.Submit(ctx.Request.Context(), userID, req)
	if err != nil {
		c.respondError(ctx, err, "Failed to submit cancellation request")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Cancellation request submitted", result, nil)
}

func (c *Controller) GetCancellation(ctx *gin.Context) {
	userID, isStaff, ok := requester(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	result, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"), userID, isStaff)
	if err != nil {
		c.respondError(ctx, err, "Failed to get cancellation request")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cancellation request retrieved", result, nil)
}

func (c *Controller) ListCancellations(ctx *gin.Context) {
	var query ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.List(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list cancellation requests", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cancellation requests retrieved", result, nil)
}

func (c *Controller) GetMyCancellations(ctx *gin.Context) {
	userID, _, ok := requester(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var query ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.GetMine(ctx.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list cancellation requests", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cancellation requests retrieved", result, nil)
}

func (c *Controller) ApproveCancellation(ctx *gin.Context) {
	userID, _, ok := requester(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	result, err := c.service.Approve(ctx.Request.Context(), ctx.Param("id"), userID)
	if err != nil {
		c.respondError(ctx, err, "Failed to approve cancellation request")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cancellation request approved", result, nil)
}

func (c *Controller) RejectCancellation(ctx *gin.Context) {
	userID, _, ok := requester(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req RejectCancellationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Rejection reason is required", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	result, err := c.service.Reject(ctx.Request.Context(), ctx.Param("id"), userID, req)
	if err != nil {
		c.respondError(ctx, err, "Failed to reject cancellation request")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cancellation request rejected", result, nil)
}

func (c *Controller) CancelRooms(ctx *gin.Context) {
	userID, isStaff, ok := requester(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CancelRoomsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	result, err := c.service.CancelRooms(ctx.Request.Context(), ctx.Param("id"), userID, isStaff, req)
	if err != nil {
		c.respondError(ctx, err, "Failed to cancel booking rooms")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Rooms cancelled successfully", result, nil)
}

func (c *Controller) CompleteRefund(ctx *gin.Context) {
	userID, _, ok := requester(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	result, err := c.service.CompleteRefund(ctx.Request.Context(), ctx.Param("id"), userID)
	if err != nil {
		c.respondError(ctx, err, "Failed to complete refund")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Refund marked as completed", result, nil)
}

func (c *Controller) respondError(ctx *gin.Context, err error, fallback string) {
	switch err {
	case bookings.ErrBookingNotFound:
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
	case bookings.ErrNotBookingOwner:
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Booking belongs to another customer", nil, nil)
	case ErrRequestNotFound:
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Cancellation request not found", nil, nil)
	case ErrNotRequestOwner:
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Cancellation request belongs to another customer", nil, nil)
	case ErrBookingNotCancellable:
		response.RespondJSON(ctx, "error", http.StatusConflict, "Booking status does not allow cancellation", nil, nil)
	case ErrDuplicateRequest:
		response.RespondJSON(ctx, "error", http.StatusConflict, "Booking already has an active cancellation request", nil, nil)
	case ErrMissingPayoutDetails:
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Bank details are required for the refund", nil, nil)
	case ErrNotCheckedIn:
		response.RespondJSON(ctx, "error", http.StatusConflict, "Booking is not checked in", nil, nil)
	case ErrWindowExpired:
		response.RespondJSON(ctx, "error", http.StatusConflict, "The post-check-in cancellation window has passed", nil, nil)
	case ErrRoomNotInBooking:
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "One or more rooms are not an active part of this booking", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, nil)
	}
}
