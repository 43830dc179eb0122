package db_models

import "time"

const (
	PredictionResultPending = "pending"
	PredictionResultWon     = "won"
	PredictionResultLost    = "lost"
)

// Prediction references its channel by the Twitch channel id, not the
// Channel row id, matching what the rest of the surface keys on.
type Prediction struct {
	ID           int64 `gorm:"primaryKey"`
	AccountID    int64 `gorm:"index"`
	ChannelID    string
	PredictionID string
	Title        string
	Points       int
	ChosenOption string
	Result       string
	PointsWon    int
	CreatedAt    time.Time
}
