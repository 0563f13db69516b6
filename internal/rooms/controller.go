package rooms

import (
	"net/http"

	"stayhub/internal/shared/utils/response"

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

func (c *Controller) CreateRoom(ctx *gin.Context) {
	var req CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	room, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrRoomNumberTaken:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Room number already in use", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create room", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Room created successfully", room, nil)
}

func (c *Controller) GetRooms(ctx *gin.Context) {
	var query RoomListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.GetAll(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get rooms", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Rooms retrieved successfully", result, nil)
}

func (c *Controller) GetRoom(ctx *gin.Context) {
	room, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch err {
		case ErrRoomNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Room not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to get room", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Room retrieved successfully", room, nil)
}

func (c *Controller) UpdateRoom(ctx *gin.Context) {
	var req UpdateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	room, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		switch err {
		case ErrRoomNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Room not found", nil, nil)
		case ErrRoomNumberTaken:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Room number already in use", nil, nil)
		case ErrRoomHasBookings:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Room has active bookings", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update room", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Room updated successfully", room, nil)
}

func (c *Controller) DeleteRoom(ctx *gin.Context) {
	err := c.service.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch err {
		case ErrRoomNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Room not found", nil, nil)
		case ErrRoomHasBookings:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Room has active bookings", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete room", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Room deleted successfully", nil, nil)
}

func (c *Controller) SetMaintenance(ctx *gin.Context) {
	var req SetMaintenanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	room, err := c.service.SetMaintenance(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		switch err {
		case ErrRoomNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Room not found", nil, nil)
		case ErrRoomHasBookings:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Room is reserved or occupied", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update maintenance status", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Maintenance status updated successfully", room, nil)
}

func (c *Controller) GetAvailableRooms(ctx *gin.Context) {
	var query AvailableRoomsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	rooms, err := c.service.GetAvailable(ctx.Request.Context(), query)
	if err != nil {
		switch err {
		case ErrInvalidDateRange:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Check-out must be after check-in", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to get available rooms", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Available rooms retrieved successfully", rooms, nil)
}

func (c *Controller) HoldRooms(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req HoldRoomsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	hold, err := c.service.HoldRooms(ctx.Request.Context(), userID.(string), req)
	if err != nil {
		switch err {
		case ErrHoldConflict:
			response.RespondJSON(ctx, "error", http.StatusConflict, "One or more rooms are already held", nil, nil)
		case ErrRoomNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Room not found", nil, nil)
		case ErrRoomNotBookable:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Room is under maintenance", nil, nil)
		case ErrInvalidDateRange:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Check-out must be after check-in", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to hold rooms", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Rooms held successfully", hold, nil)
}

func (c *Controller) ReleaseHold(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	holdID := ctx.Param("id")
	if holdID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Hold ID is required", nil, nil)
		return
	}

	if err := c.service.ReleaseHold(ctx.Request.Context(), userID.(string), holdID); err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Hold not found or already expired", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hold released successfully", nil, nil)
}
