package services

import (
	"context"
	"testing"

	"twitchfarm/internal/models/db_models"
)

func TestDashboardService_Summary(t *testing.T) {
	channelRepo := &mockChannelRepository{
		listByAccountFunc: func(ctx context.Context, accountID int64) ([]db_models.Channel, error) {
			return []db_models.Channel{
				{ID: 1, TotalPoints: 1000, TotalWatchtime: 60, AutoFarming: true},
				{ID: 2, TotalPoints: 2500, TotalWatchtime: 120},
			}, nil
		},
	}
	predictionRepo := &mockPredictionRepository{
		listByAccountFunc: func(ctx context.Context, accountID int64, limit int) ([]db_models.Prediction, error) {
			if limit != 0 {
				t.Errorf("summary must read every prediction, got limit %d", limit)
			}
			return []db_models.Prediction{
				{Result: db_models.PredictionResultWon},
				{Result: db_models.PredictionResultWon},
				{Result: db_models.PredictionResultLost},
				{Result: db_models.PredictionResultPending},
			}, nil
		},
	}

	svc := NewDashboardService(channelRepo, predictionRepo)

	summary, err := svc.Summary(context.Background(), 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if summary.TotalPoints != 3500 {
		t.Errorf("totalPoints = %d, want 3500", summary.TotalPoints)
	}
	if summary.PointsChange != 70 {
		t.Errorf("pointsChange = %d, want 70", summary.PointsChange)
	}
	if summary.TotalWatchtime != 180 {
		t.Errorf("totalWatchtime = %d, want 180", summary.TotalWatchtime)
	}
	if summary.WatchtimeChange != 7 {
		t.Errorf("watchtimeChange = %d, want 7", summary.WatchtimeChange)
	}
	// Pending predictions stay out of the completed-only win rate: 2/3.
	if summary.WinRate != 67 {
		t.Errorf("winRate = %d, want 67", summary.WinRate)
	}
	if summary.WinRateChange != 2 {
		t.Errorf("winRateChange = %d, want 2", summary.WinRateChange)
	}
	if summary.ActiveChannels != 1 {
		t.Errorf("activeChannels = %d, want 1", summary.ActiveChannels)
	}
	if summary.TotalChannels != 2 {
		t.Errorf("totalChannels = %d, want 2", summary.TotalChannels)
	}
}

func TestDashboardService_Summary_Empty(t *testing.T) {
	svc := NewDashboardService(&mockChannelRepository{}, &mockPredictionRepository{})

	summary, err := svc.Summary(context.Background(), 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.WinRate != 0 {
		t.Errorf("winRate with no completed predictions = %d, want 0", summary.WinRate)
	}
	if summary.TotalChannels != 0 || summary.TotalPoints != 0 {
		t.Errorf("unexpected summary %+v", summary)
	}
}
