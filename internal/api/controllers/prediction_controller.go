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

type PredictionController struct {
	predictionService services.PredictionServiceInterface
}

func NewPredictionController(predictionService services.PredictionServiceInterface) *PredictionController {
	return &PredictionController{
		predictionService: predictionService,
	}
}

// List godoc
// @Summary List the caller's predictions, newest first
// @Tags Predictions
// @Produce json
// @Param limit query int false "Cap on returned records"
// @Success 200 {object} utils.APIResponse
// @Router /api/predictions [get]
func (p *PredictionController) List(c *gin.Context) {
	limit, ok := limitQuery(c)
	if !ok {
		return
	}

	predictions, err := p.predictionService.List(c.Request.Context(), middleware.AccountID(c), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, predictions, "Predictions fetched successfully")
}

// ListByChannel godoc
// @Summary List the caller's predictions for one channel, newest first
// @Tags Predictions
// @Produce json
// @Param channelId path string true "Twitch channel id"
// @Param limit query int false "Cap on returned records"
// @Success 200 {object} utils.APIResponse
// @Router /api/predictions/channel/{channelId} [get]
func (p *PredictionController) ListByChannel(c *gin.Context) {
	limit, ok := limitQuery(c)
	if !ok {
		return
	}

	predictions, err := p.predictionService.ListByChannel(c.Request.Context(), middleware.AccountID(c), c.Param("channelId"), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, predictions, "Predictions fetched successfully")
}

// Create godoc
// @Summary Record a prediction wager
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body request_models.CreatePredictionRequest true "Prediction payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/predictions [post]
func (p *PredictionController) Create(c *gin.Context) {
	var req request_models.CreatePredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	prediction, err := p.predictionService.Create(c.Request.Context(), middleware.AccountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, prediction, "Prediction recorded successfully")
}

// Resolve godoc
// @Summary Settle a pending prediction
// @Tags Predictions
// @Accept json
// @Produce json
// @Param id path int true "Prediction id"
// @Param request body request_models.ResolvePredictionRequest true "Result payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/predictions/{id} [put]
func (p *PredictionController) Resolve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid prediction ID")
		return
	}

	var req request_models.ResolvePredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	prediction, err := p.predictionService.Resolve(c.Request.Context(), middleware.AccountID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prediction, "Prediction resolved successfully")
}

func limitQuery(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit parameter")
		return 0, false
	}
	return limit, true
}
