package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"twitchfarm/internal/models/request_models"
	"twitchfarm/internal/services"
	"twitchfarm/pkg/middleware"
	"twitchfarm/pkg/utils"
)

type ChannelController struct {
	channelService services.ChannelServiceInterface
}

func NewChannelController(channelService services.ChannelServiceInterface) *ChannelController {
	return &ChannelController{
		channelService: channelService,
	}
}

// List godoc
// @Summary List the caller's channels
// @Tags Channels
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/channels [get]
func (ch *ChannelController) List(c *gin.Context) {
	channels, err := ch.channelService.List(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, channels, "Channels fetched successfully")
}

// Create godoc
// @Summary Track a new channel
// @Tags Channels
// @Accept json
// @Produce json
// @Param request body request_models.CreateChannelRequest true "Channel payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/channels [post]
func (ch *ChannelController) Create(c *gin.Context) {
	var req request_models.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	channel, err := ch.channelService.Create(c.Request.Context(), middleware.AccountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, channel, "Channel added successfully")
}

// Get godoc
// @Summary Read a channel by id
// @Tags Channels
// @Produce json
// @Param id path int true "Channel row id"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/channels/{id} [get]
func (ch *ChannelController) Get(c *gin.Context) {
	id, ok := channelRowID(c)
	if !ok {
		return
	}

	channel, err := ch.channelService.GetByID(c.Request.Context(), middleware.AccountID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, channel, "Channel fetched successfully")
}

// Update godoc
// @Summary Update a channel
// @Tags Channels
// @Accept json
// @Produce json
// @Param id path int true "Channel row id"
// @Param request body request_models.UpdateChannelRequest true "Fields to merge"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/channels/{id} [put]
func (ch *ChannelController) Update(c *gin.Context) {
	id, ok := channelRowID(c)
	if !ok {
		return
	}

	var req request_models.UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	channel, err := ch.channelService.Update(c.Request.Context(), middleware.AccountID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, channel, "Channel updated successfully")
}

// Delete godoc
// @Summary Stop tracking a channel
// @Tags Channels
// @Produce json
// @Param id path int true "Channel row id"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/channels/{id} [delete]
func (ch *ChannelController) Delete(c *gin.Context) {
	id, ok := channelRowID(c)
	if !ok {
		return
	}

	if err := ch.channelService.Delete(c.Request.Context(), middleware.AccountID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Channel deleted successfully")
}

// Stats godoc
// @Summary Derived stats for one channel
// @Tags Channels
// @Produce json
// @Param channelId path string true "Twitch channel id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/channels/stats/{channelId} [get]
func (ch *ChannelController) Stats(c *gin.Context) {
	channelID := c.Param("channelId")
	if channelID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Channel ID is required")
		return
	}

	stats, err := ch.channelService.Stats(c.Request.Context(), middleware.AccountID(c), channelID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Channel stats fetched successfully")
}

// ToggleSetting godoc
// @Summary Flip one automation flag by Twitch channel id
// @Tags Channels
// @Accept json
// @Produce json
// @Param request body request_models.ToggleSettingRequest true "Toggle payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/channels/toggle-setting [post]
func (ch *ChannelController) ToggleSetting(c *gin.Context) {
	var req request_models.ToggleSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	channel, err := ch.channelService.ToggleSetting(c.Request.Context(), middleware.AccountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, channel, "Channel setting updated successfully")
}

func channelRowID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid channel ID")
		return 0, false
	}
	return id, true
}
