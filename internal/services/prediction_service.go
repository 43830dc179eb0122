package services

import (
	"context"
	"fmt"

	"twitchfarm/internal/models/db_models"
	"twitchfarm/internal/models/request_models"
	"twitchfarm/internal/repositories"
	"twitchfarm/pkg/utils"
)

type PredictionServiceInterface interface {
	List(ctx context.Context, accountID int64, limit int) ([]db_models.Prediction, error)
	ListByChannel(ctx context.Context, accountID int64, channelID string, limit int) ([]db_models.Prediction, error)
	Create(ctx context.Context, accountID int64, request request_models.CreatePredictionRequest) (*db_models.Prediction, error)
	// Resolve settles a pending prediction and bumps the owning
	// channel's won/lost counters.
	Resolve(ctx context.Context, accountID int64, id int64, request request_models.ResolvePredictionRequest) (*db_models.Prediction, error)
}

type PredictionService struct {
	predictionRepo repositories.PredictionRepository
	webhook        WebhookNotifier
}

func NewPredictionService(predictionRepo repositories.PredictionRepository, webhook WebhookNotifier) PredictionServiceInterface {
	return &PredictionService{
		predictionRepo: predictionRepo,
		webhook:        webhook,
	}
}

func (s *PredictionService) List(ctx context.Context, accountID int64, limit int) ([]db_models.Prediction, error) {
	predictions, err := s.predictionRepo.ListByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return predictions, nil
}

func (s *PredictionService) ListByChannel(ctx context.Context, accountID int64, channelID string, limit int) ([]db_models.Prediction, error) {
	predictions, err := s.predictionRepo.ListByAccountAndChannel(ctx, accountID, channelID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return predictions, nil
}

func (s *PredictionService) Create(ctx context.Context, accountID int64, request request_models.CreatePredictionRequest) (*db_models.Prediction, error) {
	prediction := &db_models.Prediction{
		AccountID:    accountID,
		ChannelID:    request.ChannelID,
		PredictionID: request.PredictionID,
		Title:        request.Title,
		Points:       request.Points,
		ChosenOption: request.ChosenOption,
		Result:       db_models.PredictionResultPending,
	}

	// Wagered points are spent up front, hence the negative delta.
	spent := -request.Points
	activity := &db_models.Activity{
		AccountID:   accountID,
		ChannelID:   &prediction.ChannelID,
		Type:        db_models.ActivityTypePrediction,
		Description: fmt.Sprintf("Bet %d points on %q for %q", request.Points, request.ChosenOption, request.Title),
		Points:      &spent,
	}

	if err := s.predictionRepo.CreateWithActivity(ctx, prediction, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.webhook.Notify(accountID, activity.Description)

	return prediction, nil
}

func (s *PredictionService) Resolve(ctx context.Context, accountID int64, id int64, request request_models.ResolvePredictionRequest) (*db_models.Prediction, error) {
	prediction, err := s.predictionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if prediction == nil {
		return nil, utils.ErrPredictionNotFound
	}
	if prediction.AccountID != accountID {
		return nil, utils.ErrForbidden
	}
	if prediction.Result != db_models.PredictionResultPending {
		return nil, utils.ErrPredictionResolved
	}

	pointsWon := 0
	if request.PointsWon != nil {
		pointsWon = *request.PointsWon
	}

	var description string
	var delta *int
	if request.Result == db_models.PredictionResultWon {
		description = fmt.Sprintf("Won %d points on %q", pointsWon, prediction.Title)
		delta = &pointsWon
	} else {
		description = fmt.Sprintf("Lost prediction %q", prediction.Title)
	}

	activity := &db_models.Activity{
		AccountID:   accountID,
		ChannelID:   &prediction.ChannelID,
		Type:        db_models.ActivityTypePrediction,
		Description: description,
		Points:      delta,
	}

	if err := s.predictionRepo.Resolve(ctx, prediction, request.Result, pointsWon, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	prediction.Result = request.Result
	prediction.PointsWon = pointsWon

	s.webhook.Notify(accountID, description)

	return prediction, nil
}
