package floors

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

func (c *Controller) CreateFloor(ctx *gin.Context) {
	var req CreateFloorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	floor, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrFloorNumberTaken:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Floor number already in use", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create floor", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Floor created successfully", floor, nil)
}

func (c *Controller) GetFloors(ctx *gin.Context) {
	floors, err := c.service.GetAll(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get floors", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Floors retrieved successfully", floors, nil)
}

func (c *Controller) GetFloor(ctx *gin.Context) {
	floor, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch err {
		case ErrFloorNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Floor not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to get floor", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Floor retrieved successfully", floor, nil)
}

func (c *Controller) UpdateFloor(ctx *gin.Context) {
	var req UpdateFloorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	floor, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		switch err {
		case ErrFloorNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Floor not found", nil, nil)
		case ErrFloorNumberTaken:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Floor number already in use", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update floor", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Floor updated successfully", floor, nil)
}

func (c *Controller) DeleteFloor(ctx *gin.Context) {
	err := c.service.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch err {
		case ErrFloorNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Floor not found", nil, nil)
		case ErrFloorHasRooms:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Floor still has rooms assigned", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete floor", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Floor deleted successfully", nil, nil)
}
