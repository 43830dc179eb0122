package services

import (
	"context"
	"errors"
	"testing"

	"twitchfarm/internal/models/db_models"
	"twitchfarm/internal/models/request_models"
	"twitchfarm/pkg/utils"
)

func TestPredictionService_Create_SpendsPoints(t *testing.T) {
	var created *db_models.Prediction
	var activity *db_models.Activity

	predictionRepo := &mockPredictionRepository{
		createWithActivityFunc: func(ctx context.Context, prediction *db_models.Prediction, act *db_models.Activity) error {
			prediction.ID = 3
			created = prediction
			activity = act
			return nil
		},
	}

	svc := NewPredictionService(predictionRepo, &mockWebhookNotifier{})

	prediction, err := svc.Create(context.Background(), 5, request_models.CreatePredictionRequest{
		ChannelID:    "ext-1",
		PredictionID: "twitch-pred-9",
		Title:        "Will they win this game?",
		Points:       500,
		ChosenOption: "Yes",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if prediction.Result != db_models.PredictionResultPending {
		t.Errorf("result = %s, want pending", prediction.Result)
	}
	if prediction.PointsWon != 0 {
		t.Errorf("pointsWon = %d, want 0", prediction.PointsWon)
	}
	if created != prediction {
		t.Error("stored prediction should be the returned record")
	}

	if activity == nil {
		t.Fatal("expected an activity record")
	}
	if activity.Type != db_models.ActivityTypePrediction {
		t.Errorf("activity type = %s, want prediction", activity.Type)
	}
	if activity.Points == nil || *activity.Points != -500 {
		t.Errorf("activity points should be the negative wager, got %v", activity.Points)
	}
	want := `Bet 500 points on "Yes" for "Will they win this game?"`
	if activity.Description != want {
		t.Errorf("description = %q, want %q", activity.Description, want)
	}
}

func TestPredictionService_Resolve_Won(t *testing.T) {
	var resolvedResult string
	var resolvedPoints int

	predictionRepo := &mockPredictionRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*db_models.Prediction, error) {
			return &db_models.Prediction{
				ID:        id,
				AccountID: 5,
				ChannelID: "ext-1",
				Title:     "close one",
				Result:    db_models.PredictionResultPending,
			}, nil
		},
		resolveFunc: func(ctx context.Context, prediction *db_models.Prediction, result string, pointsWon int, activity *db_models.Activity) error {
			resolvedResult = result
			resolvedPoints = pointsWon
			if activity.Points == nil || *activity.Points != pointsWon {
				t.Errorf("won activity should carry the winnings, got %v", activity.Points)
			}
			return nil
		},
	}

	svc := NewPredictionService(predictionRepo, &mockWebhookNotifier{})

	won := 750
	prediction, err := svc.Resolve(context.Background(), 5, 3, request_models.ResolvePredictionRequest{
		Result:    "won",
		PointsWon: &won,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resolvedResult != db_models.PredictionResultWon || resolvedPoints != 750 {
		t.Errorf("resolved with (%s, %d), want (won, 750)", resolvedResult, resolvedPoints)
	}
	if prediction.Result != db_models.PredictionResultWon || prediction.PointsWon != 750 {
		t.Errorf("returned record not updated: %+v", prediction)
	}
}

func TestPredictionService_Resolve_AlreadyResolved(t *testing.T) {
	predictionRepo := &mockPredictionRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*db_models.Prediction, error) {
			return &db_models.Prediction{ID: id, AccountID: 5, Result: db_models.PredictionResultWon}, nil
		},
		resolveFunc: func(ctx context.Context, prediction *db_models.Prediction, result string, pointsWon int, activity *db_models.Activity) error {
			t.Fatal("resolve must not run twice")
			return nil
		},
	}

	svc := NewPredictionService(predictionRepo, &mockWebhookNotifier{})

	_, err := svc.Resolve(context.Background(), 5, 3, request_models.ResolvePredictionRequest{Result: "lost"})
	if !errors.Is(err, utils.ErrPredictionResolved) {
		t.Fatalf("expected ErrPredictionResolved, got %v", err)
	}
}

func TestPredictionService_Resolve_Forbidden(t *testing.T) {
	predictionRepo := &mockPredictionRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*db_models.Prediction, error) {
			return &db_models.Prediction{ID: id, AccountID: 1, Result: db_models.PredictionResultPending}, nil
		},
	}

	svc := NewPredictionService(predictionRepo, &mockWebhookNotifier{})

	_, err := svc.Resolve(context.Background(), 2, 3, request_models.ResolvePredictionRequest{Result: "won"})
	if !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPredictionService_Resolve_NotFound(t *testing.T) {
	svc := NewPredictionService(&mockPredictionRepository{}, &mockWebhookNotifier{})

	_, err := svc.Resolve(context.Background(), 2, 404, request_models.ResolvePredictionRequest{Result: "won"})
	if !errors.Is(err, utils.ErrPredictionNotFound) {
		t.Fatalf("expected ErrPredictionNotFound, got %v", err)
	}
}

func TestPredictionService_List_PassesLimit(t *testing.T) {
	var gotLimit int
	predictionRepo := &mockPredictionRepository{
		listByAccountFunc: func(ctx context.Context, accountID int64, limit int) ([]db_models.Prediction, error) {
			gotLimit = limit
			return nil, nil
		},
	}

	svc := NewPredictionService(predictionRepo, &mockWebhookNotifier{})

	if _, err := svc.List(context.Background(), 5, 2); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotLimit != 2 {
		t.Errorf("limit = %d, want 2", gotLimit)
	}
}
