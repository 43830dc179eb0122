package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"twitchfarm/internal/models/db_models"
)

type ChannelRepository interface {
	// CreateWithActivity inserts the channel and its audit entry in one
	// transaction.
	CreateWithActivity(ctx context.Context, channel *db_models.Channel, activity *db_models.Activity) error
	FindByID(ctx context.Context, id int64) (*db_models.Channel, error)
	FindByAccountAndChannelID(ctx context.Context, accountID int64, channelID string) (*db_models.Channel, error)
	ListByAccount(ctx context.Context, accountID int64) ([]db_models.Channel, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*db_models.Channel, error)
	// DeleteWithActivity removes the channel and appends its audit entry
	// in one transaction.
	DeleteWithActivity(ctx context.Context, id int64, activity *db_models.Activity) error
}

type channelRepository struct {
	db *gorm.DB
}

func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &channelRepository{
		db: db,
	}
}

func (r *channelRepository) CreateWithActivity(ctx context.Context, channel *db_models.Channel, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(channel).Error; err != nil {
			return err
		}
		return tx.Create(activity).Error
	})
}

func (r *channelRepository) FindByID(ctx context.Context, id int64) (*db_models.Channel, error) {
	var channel db_models.Channel
	err := r.db.WithContext(ctx).First(&channel, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &channel, nil
}

func (r *channelRepository) FindByAccountAndChannelID(ctx context.Context, accountID int64, channelID string) (*db_models.Channel, error) {
	var channel db_models.Channel
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND channel_id = ?", accountID, channelID).
		First(&channel).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &channel, nil
}

func (r *channelRepository) ListByAccount(ctx context.Context, accountID int64) ([]db_models.Channel, error) {
	var channels []db_models.Channel
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Find(&channels).Error
	if err != nil {
		return nil, err
	}
	return channels, nil
}

func (r *channelRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*db_models.Channel, error) {
	err := r.db.WithContext(ctx).
		Model(&db_models.Channel{}).
		Where("id = ?", id).
		Updates(fields).Error
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *channelRepository) DeleteWithActivity(ctx context.Context, id int64, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db_models.Channel{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Create(activity).Error
	})
}
