package db_models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ActivityTypePoints     = "points"
	ActivityTypePrediction = "prediction"
	ActivityTypeWatchtime  = "watchtime"
	ActivityTypeChannel    = "channel"
)

// Activity is an append-only audit entry. Rows are never updated or
// deleted.
type Activity struct {
	ID          int64 `gorm:"primaryKey"`
	AccountID   int64 `gorm:"index"`
	ChannelID   *string
	ChannelName *string
	Type        string
	Description string
	Points      *int
	Metadata    datatypes.JSON
	CreatedAt   time.Time
}
