package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"twitchfarm/internal/repositories"
)

// WebhookNotifier posts activity messages to the account's configured
// webhook URL. Delivery is best-effort: failures are logged and never
// surfaced to the caller.
type WebhookNotifier interface {
	Notify(accountID int64, message string)
}

type webhookNotifier struct {
	settingsRepo repositories.SettingsRepository
	client       *http.Client
}

func NewWebhookNotifier(settingsRepo repositories.SettingsRepository) WebhookNotifier {
	return &webhookNotifier{
		settingsRepo: settingsRepo,
		client:       &http.Client{Timeout: 5 * time.Second},
	}
}

func (w *webhookNotifier) Notify(accountID int64, message string) {
	go w.deliver(accountID, message)
}

func (w *webhookNotifier) deliver(accountID int64, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	settings, err := w.settingsRepo.FindByAccount(ctx, accountID)
	if err != nil {
		log.Printf("Failed to load settings for webhook delivery: %v", err)
		return
	}
	if settings == nil || !settings.NotificationsEnabled || settings.WebhookURL == nil || *settings.WebhookURL == "" {
		return
	}

	body, err := json.Marshal(map[string]string{
		"content": fmt.Sprintf("```\n%s\n```", message),
	})
	if err != nil {
		log.Printf("Failed to encode webhook payload: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *settings.WebhookURL, bytes.NewReader(body))
	if err != nil {
		log.Printf("Failed to build webhook request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		log.Printf("Failed to send webhook notification: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("Webhook endpoint returned status %d", resp.StatusCode)
	}
}
