package request_models

type CreatePredictionRequest struct {
	ChannelID    string `json:"channelId" binding:"required"`
	PredictionID string `json:"predictionId" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Points       int    `json:"points" binding:"required,gt=0"`
	ChosenOption string `json:"chosenOption" binding:"required"`
}

type ResolvePredictionRequest struct {
	Result    string `json:"result" binding:"required,oneof=won lost"`
	PointsWon *int   `json:"pointsWon" binding:"omitempty,gte=0"`
}
