package request_models

type CreateChannelRequest struct {
	ChannelID       string `json:"channelId" binding:"required"`
	ChannelName     string `json:"channelName" binding:"required"`
	AutoFarming     *bool  `json:"autoFarming"`
	AutoWatchtime   *bool  `json:"autoWatchtime"`
	AutoPredictions *bool  `json:"autoPredictions"`
}

// UpdateChannelRequest uses pointer fields so only the supplied ones are
// merged into the stored record.
type UpdateChannelRequest struct {
	ChannelName     *string `json:"channelName"`
	AutoFarming     *bool   `json:"autoFarming"`
	AutoWatchtime   *bool   `json:"autoWatchtime"`
	AutoPredictions *bool   `json:"autoPredictions"`
}

type ToggleSettingRequest struct {
	ChannelID string `json:"channelId" binding:"required"`
	Setting   string `json:"setting" binding:"required,oneof=autoFarming autoWatchtime autoPredictions"`
	Value     *bool  `json:"value" binding:"required"`
}
