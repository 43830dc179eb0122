package controllers

import (
	"github.com/gin-gonic/gin"
	"twitchfarm/internal/services"
	"twitchfarm/pkg/middleware"
	"twitchfarm/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// Summary godoc
// @Summary Aggregate dashboard figures for the caller
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/dashboard/summary [get]
func (d *DashboardController) Summary(c *gin.Context) {
	summary, err := d.dashboardService.Summary(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Dashboard summary fetched successfully")
}
