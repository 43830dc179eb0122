package db_models

const (
	RiskLevelConservative = "conservative"
	RiskLevelBalanced     = "balanced"
	RiskLevelAggressive   = "aggressive"
)

// Settings holds per-account prediction strategy preferences. One row per
// account, created at registration or lazily on first settings write.
type Settings struct {
	ID        int64 `gorm:"primaryKey"`
	AccountID int64 `gorm:"uniqueIndex"`

	RiskLevel              string
	MaxPointsPerPrediction int
	UseChatSentiment       bool
	UseHistoricalOutcomes  bool
	UseStreamerPerformance bool
	UseGlobalPatterns      bool

	NotificationsEnabled bool
	WebhookURL           *string
}

// DefaultSettings are the values seeded at registration and used to fill
// unspecified fields on a lazy settings create.
func DefaultSettings(accountID int64) Settings {
	return Settings{
		AccountID:              accountID,
		RiskLevel:              RiskLevelBalanced,
		MaxPointsPerPrediction: 2500,
		UseChatSentiment:       true,
		UseHistoricalOutcomes:  true,
		UseStreamerPerformance: true,
		UseGlobalPatterns:      false,
		NotificationsEnabled:   false,
	}
}
