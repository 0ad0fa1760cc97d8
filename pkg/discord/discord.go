package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// DefaultConfig returns the default Discord config.
func DefaultConfig() Config {
	return Config{
		Timeout:          DefaultTimeout,
		RetryCount:       DefaultRetryCount,
		RetryDelay:       DefaultRetryDelay,
		DefaultUsername:  DefaultUsername,
		DefaultAvatarURL: "",
	}
}

func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf(webhookURLTemplate, d.webhook.id, d.webhook.token)
}

func (d *discordImpl) Close() error {
	if d.client != nil {
		d.client.CloseIdleConnections()
	}
	return nil
}

func (d *discordImpl) sendWithRetry(ctx context.Context, payload *WebhookPayload) error {
	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			if d.l != nil {
				d.l.Infof(ctx, "pkg.discord.sendWithRetry: retrying attempt %d/%d", attempt, d.config.RetryCount)
			}
			time.Sleep(d.config.RetryDelay)
		}
		err := d.sendRequest(ctx, payload)
		if err == nil {
			return nil
		}
		lastErr = err
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.sendWithRetry: attempt %d failed: %v", attempt+1, err)
		}
	}
	return fmt.Errorf("failed after %d attempts, last error: %w", d.config.RetryCount+1, lastErr)
}

func (d *discordImpl) sendRequest(ctx context.Context, payload *WebhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("discord webhook returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (d *discordImpl) validateEmbedLength(embed *Embed) error {
	totalLength := len(embed.Title) + len(embed.Description)
	for _, field := range embed.Fields {
		totalLength += len(field.Name) + len(field.Value)
	}
	if totalLength > MaxEmbedLength {
		return fmt.Errorf("embed too long: %d characters (max: %d)", totalLength, MaxEmbedLength)
	}
	return nil
}

func (d *discordImpl) getColorForType(msgType MessageType) int {
	switch msgType {
	case MessageTypeInfo:
		return ColorInfo
	case MessageTypeSuccess:
		return ColorSuccess
	case MessageTypeWarning:
		return ColorWarning
	case MessageTypeError:
		return ColorError
	default:
		return ColorInfo
	}
}

func (d *discordImpl) truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// SendMessage sends a simple text message.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	if len(content) > MaxMessageLength {
		return fmt.Errorf("message too long: %d characters (max: %d)", len(content), MaxMessageLength)
	}

	payload := &WebhookPayload{
		Content:   content,
		Username:  d.config.DefaultUsername,
		AvatarURL: d.config.DefaultAvatarURL,
	}

	return d.sendWithRetry(ctx, payload)
}

// SendEmbed sends an embed message with options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	embed := &Embed{
		Title:       d.truncateString(options.Title, MaxTitleLen),
		Description: d.truncateString(options.Description, MaxDescriptionLen),
		Color:       d.getColorForType(options.Type),
		Fields:      options.Fields,
		Footer:      options.Footer,
	}

	if !options.Timestamp.IsZero() {
		embed.Timestamp = options.Timestamp.Format(time.RFC3339)
	}

	if err := d.validateEmbedLength(embed); err != nil {
		return err
	}

	payload := &WebhookPayload{
		Embeds:    []Embed{*embed},
		Username:  options.Username,
		AvatarURL: options.AvatarURL,
	}
	if payload.Username == "" {
		payload.Username = d.config.DefaultUsername
	}
	if payload.AvatarURL == "" {
		payload.AvatarURL = d.config.DefaultAvatarURL
	}

	return d.sendWithRetry(ctx, payload)
}

// SendNotification sends a warning-colored embed with sorted key/value fields.
func (d *discordImpl) SendNotification(ctx context.Context, title, description string, fields map[string]string) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	embedFields := make([]EmbedField, 0, len(names))
	for _, name := range names {
		embedFields = append(embedFields, EmbedField{
			Name:   name,
			Value:  d.truncateString(fields[name], MaxFieldValueLen),
			Inline: true,
		})
	}

	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeWarning,
		Title:       title,
		Description: description,
		Fields:      embedFields,
		Timestamp:   time.Now(),
	})
}

// SendError sends an error-colored embed, appending the error as a field.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	fields := []EmbedField{}
	if err != nil {
		fields = append(fields, EmbedField{
			Name:   "Error",
			Value:  d.truncateString(err.Error(), MaxFieldValueLen),
			Inline: false,
		})
	}

	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
		Timestamp:   time.Now(),
	})
}
