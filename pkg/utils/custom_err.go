package utils

import "errors"

var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrChannelExists       = errors.New("channel already exists")
	ErrAccountNotFound     = errors.New("account not found")
	ErrChannelNotFound     = errors.New("channel not found")
	ErrPredictionNotFound  = errors.New("prediction not found")
	ErrPredictionResolved  = errors.New("prediction already resolved")
	ErrSettingsNotFound    = errors.New("settings not found")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidOAuthState   = errors.New("invalid oauth state")
	ErrTwitchAccountInUse  = errors.New("twitch account linked elsewhere")
	ErrMissingTwitchConfig = errors.New("missing twitch client configuration")
	ErrTokenExchangeFailed = errors.New("token exchange failed")
	ErrDatabaseError       = errors.New("database error")
)

// TokenExchangeError keeps the raw provider payload so the error response
// can carry it in a diagnostic field. The user-facing message stays generic.
type TokenExchangeError struct {
	ProviderBody []byte
}

func (e *TokenExchangeError) Error() string {
	return ErrTokenExchangeFailed.Error()
}

func (e *TokenExchangeError) Unwrap() error {
	return ErrTokenExchangeFailed
}
