package controllers

import (
	"github.com/gin-gonic/gin"
	"twitchfarm/internal/models/request_models"
	"twitchfarm/internal/services"
	"twitchfarm/pkg/middleware"
	"twitchfarm/pkg/utils"
)

type SettingsController struct {
	settingsService services.SettingsServiceInterface
}

func NewSettingsController(settingsService services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// Get godoc
// @Summary Read the caller's settings
// @Tags Settings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/settings [get]
func (s *SettingsController) Get(c *gin.Context) {
	settings, err := s.settingsService.Get(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Settings fetched successfully")
}

// Update godoc
// @Summary Upsert the caller's settings
// @Description Creates the row with defaults for unspecified fields, or merges the supplied ones
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body request_models.UpdateSettingsRequest true "Fields to merge"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/settings [put]
func (s *SettingsController) Update(c *gin.Context) {
	var req request_models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	settings, err := s.settingsService.Upsert(c.Request.Context(), middleware.AccountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Settings saved successfully")
}
