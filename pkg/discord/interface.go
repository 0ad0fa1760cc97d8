package discord

import (
	"context"
	"fmt"
	"strings"

	"vitalguard-api/pkg/log"
)

type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendEmbed(ctx context.Context, options MessageOptions) error
	SendNotification(ctx context.Context, title, description string, fields map[string]string) error
	SendError(ctx context.Context, title, description string, err error) error
	GetWebhookURL() string
	Close() error
}

func parseWebhookURL(webhookURL string) (id, token string, err error) {
	webhookURL = strings.TrimSpace(webhookURL)
	prefix := "https://discord.com/api/webhooks/"
	if !strings.HasPrefix(webhookURL, prefix) {
		return "", "", fmt.Errorf("discord: invalid webhook URL format")
	}
	rest := strings.TrimPrefix(webhookURL, prefix)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("discord: webhook URL must be .../webhooks/{id}/{token}")
	}
	return parts[0], parts[1], nil
}

// New parses the webhook URL and returns a ready to use client.
// The logger may be nil, in which case retry logging is skipped.
func New(l log.Logger, webhookURL string) (IDiscord, error) {
	if webhookURL == "" {
		return nil, errWebhookRequired
	}
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	return &discordImpl{
		l:       l,
		webhook: &webhookInfo{id: id, token: token},
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}
