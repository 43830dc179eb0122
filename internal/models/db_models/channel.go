package db_models

import "time"

// Channel tracks one Twitch channel for one account. ChannelID is the
// Twitch-side identifier; (AccountID, ChannelID) is unique.
type Channel struct {
	ID          int64  `gorm:"primaryKey"`
	AccountID   int64  `gorm:"uniqueIndex:idx_account_channel"`
	ChannelID   string `gorm:"uniqueIndex:idx_account_channel"`
	ChannelName string

	AutoFarming     bool
	AutoWatchtime   bool
	AutoPredictions bool

	TotalPoints     int
	TotalWatchtime  int // minutes
	PredictionsWon  int
	PredictionsLost int

	LastPointsUpdate    time.Time
	LastWatchtimeUpdate time.Time

	CreatedAt time.Time
}
