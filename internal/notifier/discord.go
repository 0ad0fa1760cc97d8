package notifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vitalguard-api/internal/model"
	"vitalguard-api/pkg/discord"
	pkgLog "vitalguard-api/pkg/log"
)

type discordNotifier struct {
	l       pkgLog.Logger
	webhook discord.IDiscord
	title   string
}

// NewDoctorNotifier returns a DoctorNotifier delivering to the caregiver
// Discord channel.
func NewDoctorNotifier(l pkgLog.Logger, webhook discord.IDiscord) DoctorNotifier {
	return &discordNotifier{l: l, webhook: webhook, title: "Caregiver Alert"}
}

// NewEmergencyNotifier returns an EmergencyNotifier delivering to the
// emergency-services Discord channel.
func NewEmergencyNotifier(l pkgLog.Logger, webhook discord.IDiscord) EmergencyNotifier {
	return &discordNotifier{l: l, webhook: webhook, title: "EMERGENCY SERVICES DISPATCH"}
}

func (n *discordNotifier) NotifyDoctor(ctx context.Context, alert model.Alert) error {
	return n.send(ctx, alert)
}

func (n *discordNotifier) NotifyEmergencyServices(ctx context.Context, alert model.Alert) error {
	return n.send(ctx, alert)
}

func (n *discordNotifier) send(ctx context.Context, alert model.Alert) error {
	msgType := discord.MessageTypeWarning
	if alert.Severity == model.SeverityCritical {
		msgType = discord.MessageTypeError
	}

	fields := []discord.EmbedField{
		{Name: "Patient", Value: alert.PatientID, Inline: true},
		{Name: "Type", Value: string(alert.Type), Inline: true},
		{Name: "Severity", Value: strings.ToUpper(string(alert.Severity)), Inline: true},
		{Name: "Source", Value: string(alert.Source), Inline: true},
		{Name: "State", Value: string(alert.State), Inline: true},
	}
	if alert.EscalationReason != nil {
		fields = append(fields, discord.EmbedField{
			Name: "Escalation Reason", Value: *alert.EscalationReason, Inline: false,
		})
	}

	return n.webhook.SendEmbed(ctx, discord.MessageOptions{
		Type:        msgType,
		Title:       fmt.Sprintf("%s: %s", n.title, alert.PatientID),
		Description: alert.Message,
		Fields:      fields,
		Timestamp:   time.Now(),
		Footer: &discord.EmbedFooter{
			Text: "VitalGuard • Escalation Dispatcher",
		},
	})
}
