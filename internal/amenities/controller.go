package amenities

import (
	"net/http"

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

func (c *Controller) CreateAmenity(ctx *gin.Context) {
	userID, ok := actorID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateAmenityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	amenity, err := c.service.Create(ctx.Request.Context(), req, userID)
	if err != nil {
		switch err {
		case ErrAmenityExists:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Amenity already exists", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create amenity", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Amenity created successfully", amenity, nil)
}

func (c *Controller) GetAmenities(ctx *gin.Context) {
	var query AmenityListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.GetAll(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get amenities", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Amenities retrieved successfully", result, nil)
}

func (c *Controller) GetActiveAmenities(ctx *gin.Context) {
	amenities, err := c.service.GetActive(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get amenities", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Active amenities retrieved successfully", amenities, nil)
}

func (c *Controller) GetAmenity(ctx *gin.Context) {
	amenity, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch err {
		case ErrAmenityNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Amenity not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to get amenity", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Amenity retrieved successfully", amenity, nil)
}

func (c *Controller) UpdateAmenity(ctx *gin.Context) {
	userID, ok := actorID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req UpdateAmenityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	amenity, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), req, userID)
	if err != nil {
		switch err {
		case ErrAmenityNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Amenity not found", nil, nil)
		case ErrAmenityExists:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Amenity already exists", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update amenity", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Amenity updated successfully", amenity, nil)
}

func (c *Controller) DeleteAmenity(ctx *gin.Context) {
	err := c.service.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch err {
		case ErrAmenityNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Amenity not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete amenity", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Amenity deleted successfully", nil, nil)
}
