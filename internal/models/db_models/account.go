package db_models

import (
	"time"

	"github.com/lib/pq"
)

type Account struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex"`
	PasswordHash string

	// Populated once by a successful Twitch link.
	TwitchID           *string
	TwitchUsername     *string
	TwitchAccessToken  *string
	TwitchRefreshToken *string
	TwitchTokenExpiry  *time.Time
	TwitchScopes       pq.StringArray `gorm:"type:text[]"`

	CreatedAt time.Time
}
