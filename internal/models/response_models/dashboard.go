package response_models

import "time"

// DashboardSummary is derived per read; nothing here is stored. The
// change figures are fixed ratios of the current totals, not real
// time-series deltas.
type DashboardSummary struct {
	TotalPoints     int `json:"totalPoints"`
	PointsChange    int `json:"pointsChange"`
	TotalWatchtime  int `json:"totalWatchtime"`
	WatchtimeChange int `json:"watchtimeChange"`
	WinRate         int `json:"winRate"`
	WinRateChange   int `json:"winRateChange"`
	ActiveChannels  int `json:"activeChannels"`
	TotalChannels   int `json:"totalChannels"`
}

type ChannelStats struct {
	TotalPoints         int       `json:"totalPoints"`
	TotalWatchtime      int       `json:"totalWatchtime"`
	PredictionsWon      int       `json:"predictionsWon"`
	PredictionsLost     int       `json:"predictionsLost"`
	WinRate             float64   `json:"winRate"`
	LastPointsUpdate    time.Time `json:"lastPointsUpdate"`
	LastWatchtimeUpdate time.Time `json:"lastWatchtimeUpdate"`
}
