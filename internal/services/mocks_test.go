package services

import (
	"context"
	"time"

	"twitchfarm/internal/models/db_models"
	"twitchfarm/internal/repositories"
)

type mockAccountRepository struct {
	insertWithSettingsFunc func(ctx context.Context, account *db_models.Account, settings *db_models.Settings) error
	findByIDFunc           func(ctx context.Context, id int64) (*db_models.Account, error)
	findByUsernameFunc     func(ctx context.Context, username string) (*db_models.Account, error)
	findByTwitchIDFunc     func(ctx context.Context, twitchID string) (*db_models.Account, error)
	updateTwitchLinkFunc   func(ctx context.Context, id int64, link repositories.TwitchLink) error
}

func (m *mockAccountRepository) InsertWithSettings(ctx context.Context, account *db_models.Account, settings *db_models.Settings) error {
	if m.insertWithSettingsFunc != nil {
		return m.insertWithSettingsFunc(ctx, account, settings)
	}
	account.ID = 1
	settings.AccountID = account.ID
	return nil
}

func (m *mockAccountRepository) FindByID(ctx context.Context, id int64) (*db_models.Account, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountRepository) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockAccountRepository) FindByTwitchID(ctx context.Context, twitchID string) (*db_models.Account, error) {
	if m.findByTwitchIDFunc != nil {
		return m.findByTwitchIDFunc(ctx, twitchID)
	}
	return nil, nil
}

func (m *mockAccountRepository) UpdateTwitchLink(ctx context.Context, id int64, link repositories.TwitchLink) error {
	if m.updateTwitchLinkFunc != nil {
		return m.updateTwitchLinkFunc(ctx, id, link)
	}
	return nil
}

type mockChannelRepository struct {
	createWithActivityFunc        func(ctx context.Context, channel *db_models.Channel, activity *db_models.Activity) error
	findByIDFunc                  func(ctx context.Context, id int64) (*db_models.Channel, error)
	findByAccountAndChannelIDFunc func(ctx context.Context, accountID int64, channelID string) (*db_models.Channel, error)
	listByAccountFunc             func(ctx context.Context, accountID int64) ([]db_models.Channel, error)
	updateFunc                    func(ctx context.Context, id int64, fields map[string]interface{}) (*db_models.Channel, error)
	deleteWithActivityFunc        func(ctx context.Context, id int64, activity *db_models.Activity) error
}

func (m *mockChannelRepository) CreateWithActivity(ctx context.Context, channel *db_models.Channel, activity *db_models.Activity) error {
	if m.createWithActivityFunc != nil {
		return m.createWithActivityFunc(ctx, channel, activity)
	}
	channel.ID = 1
	return nil
}

func (m *mockChannelRepository) FindByID(ctx context.Context, id int64) (*db_models.Channel, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockChannelRepository) FindByAccountAndChannelID(ctx context.Context, accountID int64, channelID string) (*db_models.Channel, error) {
	if m.findByAccountAndChannelIDFunc != nil {
		return m.findByAccountAndChannelIDFunc(ctx, accountID, channelID)
	}
	return nil, nil
}

func (m *mockChannelRepository) ListByAccount(ctx context.Context, accountID int64) ([]db_models.Channel, error) {
	if m.listByAccountFunc != nil {
		return m.listByAccountFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockChannelRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*db_models.Channel, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, fields)
	}
	return &db_models.Channel{ID: id}, nil
}

func (m *mockChannelRepository) DeleteWithActivity(ctx context.Context, id int64, activity *db_models.Activity) error {
	if m.deleteWithActivityFunc != nil {
		return m.deleteWithActivityFunc(ctx, id, activity)
	}
	return nil
}

type mockPredictionRepository struct {
	createWithActivityFunc      func(ctx context.Context, prediction *db_models.Prediction, activity *db_models.Activity) error
	findByIDFunc                func(ctx context.Context, id int64) (*db_models.Prediction, error)
	listByAccountFunc           func(ctx context.Context, accountID int64, limit int) ([]db_models.Prediction, error)
	listByAccountAndChannelFunc func(ctx context.Context, accountID int64, channelID string, limit int) ([]db_models.Prediction, error)
	resolveFunc                 func(ctx context.Context, prediction *db_models.Prediction, result string, pointsWon int, activity *db_models.Activity) error
}

func (m *mockPredictionRepository) CreateWithActivity(ctx context.Context, prediction *db_models.Prediction, activity *db_models.Activity) error {
	if m.createWithActivityFunc != nil {
		return m.createWithActivityFunc(ctx, prediction, activity)
	}
	prediction.ID = 1
	return nil
}

func (m *mockPredictionRepository) FindByID(ctx context.Context, id int64) (*db_models.Prediction, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPredictionRepository) ListByAccount(ctx context.Context, accountID int64, limit int) ([]db_models.Prediction, error) {
	if m.listByAccountFunc != nil {
		return m.listByAccountFunc(ctx, accountID, limit)
	}
	return nil, nil
}

func (m *mockPredictionRepository) ListByAccountAndChannel(ctx context.Context, accountID int64, channelID string, limit int) ([]db_models.Prediction, error) {
	if m.listByAccountAndChannelFunc != nil {
		return m.listByAccountAndChannelFunc(ctx, accountID, channelID, limit)
	}
	return nil, nil
}

func (m *mockPredictionRepository) Resolve(ctx context.Context, prediction *db_models.Prediction, result string, pointsWon int, activity *db_models.Activity) error {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, prediction, result, pointsWon, activity)
	}
	return nil
}

type mockActivityRepository struct {
	insertFunc        func(ctx context.Context, activity *db_models.Activity) error
	listByAccountFunc func(ctx context.Context, accountID int64, limit int) ([]db_models.Activity, error)
}

func (m *mockActivityRepository) Insert(ctx context.Context, activity *db_models.Activity) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, activity)
	}
	return nil
}

func (m *mockActivityRepository) ListByAccount(ctx context.Context, accountID int64, limit int) ([]db_models.Activity, error) {
	if m.listByAccountFunc != nil {
		return m.listByAccountFunc(ctx, accountID, limit)
	}
	return nil, nil
}

type mockSettingsRepository struct {
	findByAccountFunc func(ctx context.Context, accountID int64) (*db_models.Settings, error)
	insertFunc        func(ctx context.Context, settings *db_models.Settings) error
	updateFunc        func(ctx context.Context, accountID int64, fields map[string]interface{}) (*db_models.Settings, error)
}

func (m *mockSettingsRepository) FindByAccount(ctx context.Context, accountID int64) (*db_models.Settings, error) {
	if m.findByAccountFunc != nil {
		return m.findByAccountFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockSettingsRepository) Insert(ctx context.Context, settings *db_models.Settings) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, settings)
	}
	return nil
}

func (m *mockSettingsRepository) Update(ctx context.Context, accountID int64, fields map[string]interface{}) (*db_models.Settings, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, accountID, fields)
	}
	return nil, nil
}

type mockWebhookNotifier struct {
	messages []string
}

func (m *mockWebhookNotifier) Notify(accountID int64, message string) {
	m.messages = append(m.messages, message)
}

// fakeSessionStore avoids the time-based expiry of the real store in
// service tests.
type fakeSessionStore struct {
	next     int
	sessions map[string]int64
	states   map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		sessions: make(map[string]int64),
		states:   make(map[string]string),
	}
}

func (f *fakeSessionStore) Create(accountID int64, ttl time.Duration) string {
	f.next++
	id := "session-" + string(rune('a'+f.next))
	f.sessions[id] = accountID
	return id
}

func (f *fakeSessionStore) Get(sessionID string) (int64, bool) {
	id, ok := f.sessions[sessionID]
	return id, ok
}

func (f *fakeSessionStore) Delete(sessionID string) {
	delete(f.sessions, sessionID)
}

func (f *fakeSessionStore) SetOAuthState(sessionID string, state string) bool {
	if _, ok := f.sessions[sessionID]; !ok {
		return false
	}
	f.states[sessionID] = state
	return true
}

func (f *fakeSessionStore) ConsumeOAuthState(sessionID string) string {
	state := f.states[sessionID]
	delete(f.states, sessionID)
	return state
}
