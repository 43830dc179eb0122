package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"twitchfarm/internal/models/db_models"
)

// TwitchLink is the set of fields written by a completed OAuth exchange.
// It is applied in a single update so a failed exchange never leaves a
// partially linked account.
type TwitchLink struct {
	TwitchID     string
	Username     string
	AccessToken  string
	RefreshToken string
	TokenExpiry  time.Time
	Scopes       []string
}

type AccountRepository interface {
	// InsertWithSettings creates the account and its settings row in one
	// transaction; a failed settings insert rolls the account back too.
	// settings.AccountID is filled from the inserted account.
	InsertWithSettings(ctx context.Context, account *db_models.Account, settings *db_models.Settings) error
	FindByID(ctx context.Context, id int64) (*db_models.Account, error)
	FindByUsername(ctx context.Context, username string) (*db_models.Account, error)
	FindByTwitchID(ctx context.Context, twitchID string) (*db_models.Account, error)
	UpdateTwitchLink(ctx context.Context, id int64, link TwitchLink) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) InsertWithSettings(ctx context.Context, account *db_models.Account, settings *db_models.Settings) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		settings.AccountID = account.ID
		return tx.Create(settings).Error
	})
}

func (a *accountRepository) FindByID(ctx context.Context, id int64) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "username = ?", username).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByTwitchID(ctx context.Context, twitchID string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "twitch_id = ?", twitchID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) UpdateTwitchLink(ctx context.Context, id int64, link TwitchLink) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"twitch_id":            link.TwitchID,
			"twitch_username":      link.Username,
			"twitch_access_token":  link.AccessToken,
			"twitch_refresh_token": link.RefreshToken,
			"twitch_token_expiry":  link.TokenExpiry,
			"twitch_scopes":        pq.StringArray(link.Scopes),
		}).Error
}
