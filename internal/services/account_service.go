package services

import (
	"context"

	"twitchfarm/internal/models/db_models"
	"twitchfarm/internal/models/request_models"
	"twitchfarm/internal/models/response_models"
	"twitchfarm/internal/repositories"
	mem "twitchfarm/pkg/memcache"
	"twitchfarm/pkg/utils"
)

type AccountServiceInterface interface {
	// Register creates the account with its default settings row and
	// opens a session for it. Returns the signed cookie token.
	Register(ctx context.Context, request request_models.RegisterRequest) (*db_models.Account, string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*db_models.Account, string, error)
	Logout(sessionID string)
	Status(ctx context.Context, accountID int64) (*response_models.AccountSummary, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	sessions    mem.SessionStore
	secret      []byte
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	sessions mem.SessionStore,
	secret []byte,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		sessions:    sessions,
		secret:      secret,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*db_models.Account, string, error) {
	existing, err := a.accountRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, "", utils.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Username:     request.Username,
		PasswordHash: hashedPassword,
	}
	// One transaction, so a failed settings insert cannot strand a
	// half-registered account holding the username.
	defaults := db_models.DefaultSettings(0)
	if err := a.accountRepo.InsertWithSettings(ctx, account, &defaults); err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	token, err := a.openSession(account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*db_models.Account, string, error) {
	account, err := a.accountRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if account == nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	token, err := a.openSession(account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// Logout is idempotent: deleting an unknown session is a no-op.
func (a *AccountService) Logout(sessionID string) {
	a.sessions.Delete(sessionID)
}

func (a *AccountService) Status(ctx context.Context, accountID int64) (*response_models.AccountSummary, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.AccountSummary{
		ID:             account.ID,
		Username:       account.Username,
		TwitchUsername: account.TwitchUsername,
	}, nil
}

func (a *AccountService) openSession(accountID int64) (string, error) {
	sessionID := a.sessions.Create(accountID, utils.SessionTTL)

	token, err := utils.CreateSessionToken(sessionID, a.secret)
	if err != nil {
		a.sessions.Delete(sessionID)
		return "", utils.ErrDatabaseError
	}
	return token, nil
}
