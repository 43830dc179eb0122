package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"twitchfarm/internal/models/db_models"
	"twitchfarm/internal/models/request_models"
	"twitchfarm/internal/models/response_models"
	"twitchfarm/internal/repositories"
	"twitchfarm/pkg/utils"
)

type ChannelServiceInterface interface {
	List(ctx context.Context, accountID int64) ([]db_models.Channel, error)
	Create(ctx context.Context, accountID int64, request request_models.CreateChannelRequest) (*db_models.Channel, error)
	GetByID(ctx context.Context, accountID int64, id int64) (*db_models.Channel, error)
	Update(ctx context.Context, accountID int64, id int64, request request_models.UpdateChannelRequest) (*db_models.Channel, error)
	Delete(ctx context.Context, accountID int64, id int64) error
	Stats(ctx context.Context, accountID int64, channelID string) (*response_models.ChannelStats, error)
	ToggleSetting(ctx context.Context, accountID int64, request request_models.ToggleSettingRequest) (*db_models.Channel, error)
}

type ChannelService struct {
	channelRepo    repositories.ChannelRepository
	predictionRepo repositories.PredictionRepository
	webhook        WebhookNotifier
}

func NewChannelService(
	channelRepo repositories.ChannelRepository,
	predictionRepo repositories.PredictionRepository,
	webhook WebhookNotifier,
) ChannelServiceInterface {
	return &ChannelService{
		channelRepo:    channelRepo,
		predictionRepo: predictionRepo,
		webhook:        webhook,
	}
}

func (s *ChannelService) List(ctx context.Context, accountID int64) ([]db_models.Channel, error) {
	channels, err := s.channelRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return channels, nil
}

func (s *ChannelService) Create(ctx context.Context, accountID int64, request request_models.CreateChannelRequest) (*db_models.Channel, error) {
	existing, err := s.channelRepo.FindByAccountAndChannelID(ctx, accountID, request.ChannelID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrChannelExists
	}

	now := time.Now()
	channel := &db_models.Channel{
		AccountID:           accountID,
		ChannelID:           request.ChannelID,
		ChannelName:         request.ChannelName,
		AutoFarming:         boolOrDefault(request.AutoFarming, true),
		AutoWatchtime:       boolOrDefault(request.AutoWatchtime, true),
		AutoPredictions:     boolOrDefault(request.AutoPredictions, true),
		LastPointsUpdate:    now,
		LastWatchtimeUpdate: now,
	}

	activity := &db_models.Activity{
		AccountID:   accountID,
		ChannelID:   &channel.ChannelID,
		ChannelName: &channel.ChannelName,
		Type:        db_models.ActivityTypeChannel,
		Description: fmt.Sprintf("Added channel %s", channel.ChannelName),
	}

	if err := s.channelRepo.CreateWithActivity(ctx, channel, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.webhook.Notify(accountID, activity.Description)

	return channel, nil
}

func (s *ChannelService) GetByID(ctx context.Context, accountID int64, id int64) (*db_models.Channel, error) {
	return s.loadOwned(ctx, accountID, id)
}

func (s *ChannelService) Update(ctx context.Context, accountID int64, id int64, request request_models.UpdateChannelRequest) (*db_models.Channel, error) {
	if _, err := s.loadOwned(ctx, accountID, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if request.ChannelName != nil {
		fields["channel_name"] = *request.ChannelName
	}
	if request.AutoFarming != nil {
		fields["auto_farming"] = *request.AutoFarming
	}
	if request.AutoWatchtime != nil {
		fields["auto_watchtime"] = *request.AutoWatchtime
	}
	if request.AutoPredictions != nil {
		fields["auto_predictions"] = *request.AutoPredictions
	}
	if len(fields) == 0 {
		return s.channelRepo.FindByID(ctx, id)
	}

	updated, err := s.channelRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *ChannelService) Delete(ctx context.Context, accountID int64, id int64) error {
	channel, err := s.loadOwned(ctx, accountID, id)
	if err != nil {
		return err
	}

	activity := &db_models.Activity{
		AccountID:   accountID,
		ChannelID:   &channel.ChannelID,
		ChannelName: &channel.ChannelName,
		Type:        db_models.ActivityTypeChannel,
		Description: fmt.Sprintf("Removed channel %s", channel.ChannelName),
	}

	if err := s.channelRepo.DeleteWithActivity(ctx, id, activity); err != nil {
		return utils.ErrDatabaseError
	}

	s.webhook.Notify(accountID, activity.Description)

	return nil
}

func (s *ChannelService) Stats(ctx context.Context, accountID int64, channelID string) (*response_models.ChannelStats, error) {
	channel, err := s.channelRepo.FindByAccountAndChannelID(ctx, accountID, channelID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if channel == nil {
		return nil, utils.ErrChannelNotFound
	}

	predictions, err := s.predictionRepo.ListByAccountAndChannel(ctx, accountID, channelID, 0)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	won := 0
	for _, p := range predictions {
		if p.Result == db_models.PredictionResultWon {
			won++
		}
	}
	winRate := 0.0
	if len(predictions) > 0 {
		winRate = float64(won) / float64(len(predictions)) * 100
	}

	return &response_models.ChannelStats{
		TotalPoints:         channel.TotalPoints,
		TotalWatchtime:      channel.TotalWatchtime,
		PredictionsWon:      channel.PredictionsWon,
		PredictionsLost:     channel.PredictionsLost,
		WinRate:             math.Round(winRate*10) / 10,
		LastPointsUpdate:    channel.LastPointsUpdate,
		LastWatchtimeUpdate: channel.LastWatchtimeUpdate,
	}, nil
}

func (s *ChannelService) ToggleSetting(ctx context.Context, accountID int64, request request_models.ToggleSettingRequest) (*db_models.Channel, error) {
	channel, err := s.channelRepo.FindByAccountAndChannelID(ctx, accountID, request.ChannelID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if channel == nil {
		return nil, utils.ErrChannelNotFound
	}

	columns := map[string]string{
		"autoFarming":     "auto_farming",
		"autoWatchtime":   "auto_watchtime",
		"autoPredictions": "auto_predictions",
	}

	updated, err := s.channelRepo.Update(ctx, channel.ID, map[string]interface{}{
		columns[request.Setting]: *request.Value,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

// loadOwned reports a missing channel before an ownership mismatch, so a
// non-existent id is always a not-found.
func (s *ChannelService) loadOwned(ctx context.Context, accountID int64, id int64) (*db_models.Channel, error) {
	channel, err := s.channelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if channel == nil {
		return nil, utils.ErrChannelNotFound
	}
	if channel.AccountID != accountID {
		return nil, utils.ErrForbidden
	}
	return channel, nil
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
