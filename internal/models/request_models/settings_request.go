package request_models

// UpdateSettingsRequest is a partial write: nil fields keep their stored
// value, or the schema default when the row is created by this request.
type UpdateSettingsRequest struct {
	RiskLevel              *string `json:"riskLevel" binding:"omitempty,oneof=conservative balanced aggressive"`
	MaxPointsPerPrediction *int    `json:"maxPointsPerPrediction" binding:"omitempty,gt=0"`
	UseChatSentiment       *bool   `json:"useChatSentiment"`
	UseHistoricalOutcomes  *bool   `json:"useHistoricalOutcomes"`
	UseStreamerPerformance *bool   `json:"useStreamerPerformance"`
	UseGlobalPatterns      *bool   `json:"useGlobalPatterns"`
	NotificationsEnabled   *bool   `json:"notificationsEnabled"`
	WebhookURL             *string `json:"webhookUrl" binding:"omitempty,url"`
}
