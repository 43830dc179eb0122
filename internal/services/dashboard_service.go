package services

import (
	"context"
	"math"

	"twitchfarm/internal/models/db_models"
	"twitchfarm/internal/models/response_models"
	"twitchfarm/internal/repositories"
	"twitchfarm/pkg/utils"
)

type DashboardServiceInterface interface {
	Summary(ctx context.Context, accountID int64) (*response_models.DashboardSummary, error)
}

type DashboardService struct {
	channelRepo    repositories.ChannelRepository
	predictionRepo repositories.PredictionRepository
}

func NewDashboardService(
	channelRepo repositories.ChannelRepository,
	predictionRepo repositories.PredictionRepository,
) DashboardServiceInterface {
	return &DashboardService{
		channelRepo:    channelRepo,
		predictionRepo: predictionRepo,
	}
}

// Summary aggregates the caller's channels and predictions per read. The
// change figures are fixed ratios of the current totals rather than real
// day-over-day deltas.
func (s *DashboardService) Summary(ctx context.Context, accountID int64) (*response_models.DashboardSummary, error) {
	channels, err := s.channelRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalPoints := 0
	totalWatchtime := 0
	activeChannels := 0
	for _, ch := range channels {
		totalPoints += ch.TotalPoints
		totalWatchtime += ch.TotalWatchtime
		if ch.AutoFarming || ch.AutoWatchtime || ch.AutoPredictions {
			activeChannels++
		}
	}

	predictions, err := s.predictionRepo.ListByAccount(ctx, accountID, 0)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	completed := 0
	won := 0
	for _, p := range predictions {
		if p.Result != db_models.PredictionResultPending {
			completed++
		}
		if p.Result == db_models.PredictionResultWon {
			won++
		}
	}

	winRate := 0
	if completed > 0 {
		winRate = int(math.Round(float64(won) / float64(completed) * 100))
	}

	return &response_models.DashboardSummary{
		TotalPoints:     totalPoints,
		PointsChange:    totalPoints * 2 / 100,
		TotalWatchtime:  totalWatchtime,
		WatchtimeChange: totalWatchtime * 4 / 100,
		WinRate:         winRate,
		WinRateChange:   2,
		ActiveChannels:  activeChannels,
		TotalChannels:   len(channels),
	}, nil
}
