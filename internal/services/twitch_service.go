package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/twitch"

	"twitchfarm/internal/repositories"
	mem "twitchfarm/pkg/memcache"
	"twitchfarm/pkg/utils"
)

// TwitchScopes are requested on every link; the granted set comes back
// with the token and is stored on the account.
var TwitchScopes = []string{
	"user:read:email",
	"channel:read:predictions",
	"channel:manage:predictions",
	"channel:read:subscriptions",
	"user:read:follows",
}

const twitchCallbackPath = "/api/auth/twitch/callback"

type TwitchConfig struct {
	ClientID     string
	ClientSecret string
	// Endpoint overrides, empty in production. Tests point these at
	// httptest servers.
	AuthURL  string
	TokenURL string
	UsersURL string
}

type TwitchServiceInterface interface {
	// AuthURL issues a single-use state bound to the caller's session and
	// returns the provider authorization URL.
	AuthURL(sessionID string, origin string) (string, error)
	// CompleteLink validates state, exchanges the code, fetches the
	// Twitch profile and links it to the account in one update.
	CompleteLink(ctx context.Context, sessionID string, accountID int64, origin, code, state string) error
}

type TwitchService struct {
	cfg         TwitchConfig
	sessions    mem.SessionStore
	accountRepo repositories.AccountRepository
	client      *http.Client
}

func NewTwitchService(cfg TwitchConfig, sessions mem.SessionStore, accountRepo repositories.AccountRepository) TwitchServiceInterface {
	return &TwitchService{
		cfg:         cfg,
		sessions:    sessions,
		accountRepo: accountRepo,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *TwitchService) AuthURL(sessionID string, origin string) (string, error) {
	if s.cfg.ClientID == "" {
		return "", utils.ErrMissingTwitchConfig
	}

	state, err := utils.GenerateSecureToken(16)
	if err != nil {
		return "", err
	}
	if !s.sessions.SetOAuthState(sessionID, state) {
		return "", utils.ErrUnauthenticated
	}

	return s.oauthConfig(origin).AuthCodeURL(state), nil
}

func (s *TwitchService) CompleteLink(ctx context.Context, sessionID string, accountID int64, origin, code, state string) error {
	// The stored state is consumed up front, also on failure, so a
	// replayed callback can never complete the flow twice.
	stored := s.sessions.ConsumeOAuthState(sessionID)
	if stored == "" || stored != state {
		return utils.ErrInvalidOAuthState
	}

	if s.cfg.ClientID == "" || s.cfg.ClientSecret == "" {
		return utils.ErrMissingTwitchConfig
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.client)
	token, err := s.oauthConfig(origin).Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			log.Printf("Twitch token exchange rejected: %s", retrieveErr.Body)
			return &utils.TokenExchangeError{ProviderBody: retrieveErr.Body}
		}
		log.Printf("Twitch token exchange failed: %v", err)
		return fmt.Errorf("%w: %v", utils.ErrTokenExchangeFailed, err)
	}

	profile, err := s.fetchProfile(ctx, token.AccessToken)
	if err != nil {
		log.Printf("Twitch profile fetch failed: %v", err)
		return fmt.Errorf("%w: %v", utils.ErrTokenExchangeFailed, err)
	}

	// A Twitch profile can back at most one account; relinking the
	// caller's own is fine.
	holder, err := s.accountRepo.FindByTwitchID(ctx, profile.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if holder != nil && holder.ID != accountID {
		return utils.ErrTwitchAccountInUse
	}

	link := repositories.TwitchLink{
		TwitchID:     profile.ID,
		Username:     profile.Login,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenExpiry:  token.Expiry,
		Scopes:       grantedScopes(token),
	}
	if err := s.accountRepo.UpdateTwitchLink(ctx, accountID, link); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *TwitchService) oauthConfig(origin string) *oauth2.Config {
	endpoint := twitch.Endpoint
	if s.cfg.AuthURL != "" {
		endpoint = oauth2.Endpoint{AuthURL: s.cfg.AuthURL, TokenURL: s.cfg.TokenURL}
	}

	return &oauth2.Config{
		ClientID:     s.cfg.ClientID,
		ClientSecret: s.cfg.ClientSecret,
		Endpoint:     endpoint,
		RedirectURL:  origin + twitchCallbackPath,
		Scopes:       TwitchScopes,
	}
}

type twitchProfile struct {
	ID          string `json:"id"`
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
}

func (s *TwitchService) fetchProfile(ctx context.Context, accessToken string) (*twitchProfile, error) {
	usersURL := s.cfg.UsersURL
	if usersURL == "" {
		usersURL = "https://api.twitch.tv/helix/users"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, usersURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Client-Id", s.cfg.ClientID)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("users endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		Data []twitchProfile `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if len(payload.Data) == 0 {
		return nil, errors.New("users endpoint returned no profile")
	}

	return &payload.Data[0], nil
}

func grantedScopes(token *oauth2.Token) []string {
	raw, ok := token.Extra("scope").([]interface{})
	if !ok {
		return TwitchScopes
	}
	scopes := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			scopes = append(scopes, s)
		}
	}
	if len(scopes) == 0 {
		return TwitchScopes
	}
	return scopes
}
