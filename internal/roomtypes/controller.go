package roomtypes

import (
	"net/http"

	"stayhub/internal/amenities"
	"stayhub/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
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

func actorID(ctx *gin.Context) (uuid.UUID, bool) {
	raw, exists := ctx.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (c *Controller) CreateRoomType(ctx *gin.Context) {
	userID, ok := actorID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateRoomTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	roomType, err := c.service.Create(ctx.Request.Context(), req, userID)
	if err != nil {
		switch err {
		case ErrRoomTypeNameTaken:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Room type name already in use", nil, nil)
		case amenities.ErrAmenityNotFound:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "One or more amenities do not exist", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create room type", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Room type created successfully", roomType, nil)
}

func (c *Controller) GetRoomTypes(ctx *gin.Context) {
	var query RoomTypeListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.GetAll(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get room types", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Room types retrieved successfully", result, nil)
}

func (c *Controller) GetRoomType(ctx *gin.Context) {
	roomType, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch err {
		case ErrRoomTypeNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Room type not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to get room type", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Room type retrieved successfully", roomType, nil)
}

func (c *Controller) UpdateRoomType(ctx *gin.Context) {
	userID, ok := actorID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req UpdateRoomTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	roomType, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), req, userID)
	if err != nil {
		switch err {
		case ErrRoomTypeNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Room type not found", nil, nil)
		case ErrRoomTypeNameTaken:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Room type name already in use", nil, nil)
		case amenities.ErrAmenityNotFound:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "One or more amenities do not exist", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update room type", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Room type updated successfully", roomType, nil)
}

func (c *Controller) DeleteRoomType(ctx *gin.Context) {
	err := c.service.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch err {
		case ErrRoomTypeNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Room type not found", nil, nil)
		case ErrRoomTypeInUse:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Room type still has rooms assigned", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete room type", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Room type deleted successfully", nil, nil)
}

func (c *Controller) ReplaceAmenities(ctx *gin.Context) {
	var req amenities.AssignAmenitiesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	roomType, err := c.service.ReplaceAmenities(ctx.Request.Context(), ctx.Param("id"), req.AmenityIDs)
	if err != nil {
		switch err {
		case ErrRoomTypeNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Room type not found", nil, nil)
		case amenities.ErrAmenityNotFound:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "One or more amenities do not exist", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to assign amenities", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Amenities assigned successfully", roomType, nil)
}
