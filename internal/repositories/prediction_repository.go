package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"twitchfarm/internal/models/db_models"
)

type PredictionRepository interface {
	CreateWithActivity(ctx context.Context, prediction *db_models.Prediction, activity *db_models.Activity) error
	FindByID(ctx context.Context, id int64) (*db_models.Prediction, error)
	// ListByAccount returns newest-first; limit <= 0 means no cap.
	ListByAccount(ctx context.Context, accountID int64, limit int) ([]db_models.Prediction, error)
	ListByAccountAndChannel(ctx context.Context, accountID int64, channelID string, limit int) ([]db_models.Prediction, error)
	// Resolve writes the prediction result and bumps the owning channel's
	// won/lost counters in one transaction.
	Resolve(ctx context.Context, prediction *db_models.Prediction, result string, pointsWon int, activity *db_models.Activity) error
}

type predictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{
		db: db,
	}
}

func (r *predictionRepository) CreateWithActivity(ctx context.Context, prediction *db_models.Prediction, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(prediction).Error; err != nil {
			return err
		}
		return tx.Create(activity).Error
	})
}

func (r *predictionRepository) FindByID(ctx context.Context, id int64) (*db_models.Prediction, error) {
	var prediction db_models.Prediction
	err := r.db.WithContext(ctx).First(&prediction, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &prediction, nil
}

func (r *predictionRepository) ListByAccount(ctx context.Context, accountID int64, limit int) ([]db_models.Prediction, error) {
	var predictions []db_models.Prediction
	q := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}

func (r *predictionRepository) ListByAccountAndChannel(ctx context.Context, accountID int64, channelID string, limit int) ([]db_models.Prediction, error) {
	var predictions []db_models.Prediction
	q := r.db.WithContext(ctx).
		Where("account_id = ? AND channel_id = ?", accountID, channelID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}

func (r *predictionRepository) Resolve(ctx context.Context, prediction *db_models.Prediction, result string, pointsWon int, activity *db_models.Activity) error {
	counterColumn := "predictions_lost"
	if result == db_models.PredictionResultWon {
		counterColumn = "predictions_won"
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&db_models.Prediction{}).
			Where("id = ?", prediction.ID).
			Updates(map[string]interface{}{
				"result":     result,
				"points_won": pointsWon,
			}).Error
		if err != nil {
			return err
		}

		err = tx.Model(&db_models.Channel{}).
			Where("account_id = ? AND channel_id = ?", prediction.AccountID, prediction.ChannelID).
			UpdateColumn(counterColumn, gorm.Expr(counterColumn+" + 1")).Error
		if err != nil {
			return err
		}

		return tx.Create(activity).Error
	})
}
