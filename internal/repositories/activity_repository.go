package repositories

import (
	"context"

	"gorm.io/gorm"
	"twitchfarm/internal/models/db_models"
)

type ActivityRepository interface {
	Insert(ctx context.Context, activity *db_models.Activity) error
	// ListByAccount returns newest-first; limit <= 0 means no cap.
	ListByAccount(ctx context.Context, accountID int64, limit int) ([]db_models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

func (r *activityRepository) Insert(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) ListByAccount(ctx context.Context, accountID int64, limit int) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	q := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
