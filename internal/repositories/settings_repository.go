package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"twitchfarm/internal/models/db_models"
)

type SettingsRepository interface {
	FindByAccount(ctx context.Context, accountID int64) (*db_models.Settings, error)
	Insert(ctx context.Context, settings *db_models.Settings) error
	Update(ctx context.Context, accountID int64, fields map[string]interface{}) (*db_models.Settings, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

func (r *settingsRepository) FindByAccount(ctx context.Context, accountID int64) (*db_models.Settings, error) {
	var settings db_models.Settings
	err := r.db.WithContext(ctx).First(&settings, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &settings, nil
}

func (r *settingsRepository) Insert(ctx context.Context, settings *db_models.Settings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *settingsRepository) Update(ctx context.Context, accountID int64, fields map[string]interface{}) (*db_models.Settings, error) {
	err := r.db.WithContext(ctx).
		Model(&db_models.Settings{}).
		Where("account_id = ?", accountID).
		Updates(fields).Error
	if err != nil {
		return nil, err
	}

	return r.FindByAccount(ctx, accountID)
}
