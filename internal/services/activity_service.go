package services

import (
	"context"

	"twitchfarm/internal/models/db_models"
	"twitchfarm/internal/repositories"
	"twitchfarm/pkg/utils"
)

type ActivityServiceInterface interface {
	List(ctx context.Context, accountID int64, limit int) ([]db_models.Activity, error)
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
}

func NewActivityService(activityRepo repositories.ActivityRepository) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
	}
}

func (s *ActivityService) List(ctx context.Context, accountID int64, limit int) ([]db_models.Activity, error) {
	activities, err := s.activityRepo.ListByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return activities, nil
}
