package services

import (
	"context"

	"twitchfarm/internal/models/db_models"
	"twitchfarm/internal/models/request_models"
	"twitchfarm/internal/repositories"
	"twitchfarm/pkg/utils"
)

type SettingsServiceInterface interface {
	Get(ctx context.Context, accountID int64) (*db_models.Settings, error)
	// Upsert creates the row with schema defaults for unspecified fields
	// when none exists, and merges only the supplied fields otherwise.
	Upsert(ctx context.Context, accountID int64, request request_models.UpdateSettingsRequest) (*db_models.Settings, error)
}

type SettingsService struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsServiceInterface {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

func (s *SettingsService) Get(ctx context.Context, accountID int64) (*db_models.Settings, error) {
	settings, err := s.settingsRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if settings == nil {
		return nil, utils.ErrSettingsNotFound
	}
	return settings, nil
}

func (s *SettingsService) Upsert(ctx context.Context, accountID int64, request request_models.UpdateSettingsRequest) (*db_models.Settings, error) {
	existing, err := s.settingsRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if existing == nil {
		settings := db_models.DefaultSettings(accountID)
		applyRequest(&settings, request)
		if err := s.settingsRepo.Insert(ctx, &settings); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return &settings, nil
	}

	fields := requestFields(request)
	if len(fields) == 0 {
		return existing, nil
	}

	updated, err := s.settingsRepo.Update(ctx, accountID, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

func applyRequest(settings *db_models.Settings, request request_models.UpdateSettingsRequest) {
	if request.RiskLevel != nil {
		settings.RiskLevel = *request.RiskLevel
	}
	if request.MaxPointsPerPrediction != nil {
		settings.MaxPointsPerPrediction = *request.MaxPointsPerPrediction
	}
	if request.UseChatSentiment != nil {
		settings.UseChatSentiment = *request.UseChatSentiment
	}
	if request.UseHistoricalOutcomes != nil {
		settings.UseHistoricalOutcomes = *request.UseHistoricalOutcomes
	}
	if request.UseStreamerPerformance != nil {
		settings.UseStreamerPerformance = *request.UseStreamerPerformance
	}
	if request.UseGlobalPatterns != nil {
		settings.UseGlobalPatterns = *request.UseGlobalPatterns
	}
	if request.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *request.NotificationsEnabled
	}
	if request.WebhookURL != nil {
		settings.WebhookURL = request.WebhookURL
	}
}

func requestFields(request request_models.UpdateSettingsRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if request.RiskLevel != nil {
		fields["risk_level"] = *request.RiskLevel
	}
	if request.MaxPointsPerPrediction != nil {
		fields["max_points_per_prediction"] = *request.MaxPointsPerPrediction
	}
	if request.UseChatSentiment != nil {
		fields["use_chat_sentiment"] = *request.UseChatSentiment
	}
	if request.UseHistoricalOutcomes != nil {
		fields["use_historical_outcomes"] = *request.UseHistoricalOutcomes
	}
	if request.UseStreamerPerformance != nil {
		fields["use_streamer_performance"] = *request.UseStreamerPerformance
	}
	if request.UseGlobalPatterns != nil {
		fields["use_global_patterns"] = *request.UseGlobalPatterns
	}
	if request.NotificationsEnabled != nil {
		fields["notifications_enabled"] = *request.NotificationsEnabled
	}
	if request.WebhookURL != nil {
		fields["webhook_url"] = *request.WebhookURL
	}
	return fields
}
