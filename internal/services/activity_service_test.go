package services

import (
	"context"
	"errors"
	"testing"

	"twitchfarm/internal/models/db_models"
	"twitchfarm/pkg/utils"
)

func TestActivityService_List_PassesLimit(t *testing.T) {
	var gotAccountID int64
	var gotLimit int
	activityRepo := &mockActivityRepository{
		listByAccountFunc: func(ctx context.Context, accountID int64, limit int) ([]db_models.Activity, error) {
			gotAccountID = accountID
			gotLimit = limit
			return []db_models.Activity{{ID: 2}, {ID: 1}}, nil
		},
	}

	svc := NewActivityService(activityRepo)

	activities, err := svc.List(context.Background(), 5, 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotAccountID != 5 || gotLimit != 2 {
		t.Errorf("repo called with account %d limit %d, want 5 and 2", gotAccountID, gotLimit)
	}
	if len(activities) != 2 || activities[0].ID != 2 {
		t.Errorf("expected the repository order preserved, got %v", activities)
	}
}

func TestActivityService_List_DatabaseError(t *testing.T) {
	activityRepo := &mockActivityRepository{
		listByAccountFunc: func(ctx context.Context, accountID int64, limit int) ([]db_models.Activity, error) {
			return nil, errors.New("connection reset")
		},
	}

	svc := NewActivityService(activityRepo)

	if _, err := svc.List(context.Background(), 5, 0); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("expected ErrDatabaseError, got %v", err)
	}
}
