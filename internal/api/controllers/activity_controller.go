package controllers

import (
	"github.com/gin-gonic/gin"
	"twitchfarm/internal/services"
	"twitchfarm/pkg/middleware"
	"twitchfarm/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// List godoc
// @Summary List the caller's activity log, newest first
// @Tags Activities
// @Produce json
// @Param limit query int false "Cap on returned records"
// @Success 200 {object} utils.APIResponse
// @Router /api/activities [get]
func (a *ActivityController) List(c *gin.Context) {
	limit, ok := limitQuery(c)
	if !ok {
		return
	}

	activities, err := a.activityService.List(c.Request.Context(), middleware.AccountID(c), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}
