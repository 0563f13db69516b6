package analytics

import (
	"net/http"

	"stayhub/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.service.GetDashboardAnalytics(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get dashboard analytics", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Dashboard analytics retrieved successfully", dashboard, nil)
}
