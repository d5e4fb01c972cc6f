package reminders

import (
	"context"
	"strings"
	"time"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/money"
	"github.com/smk-chits/smk-chits/internal/reports"
	"github.com/smk-chits/smk-chits/jobs"
)

// DefaulterSource supplies the arrears list the bulk send walks.
type DefaulterSource interface {
	Defaulters(ctx context.Context, asOf time.Time) (reports.DefaulterView, error)
}

// SettingsSource supplies the message templates.
type SettingsSource interface {
	Get(ctx context.Context) (chit.Settings, error)
}

// Enqueuer schedules reminder dispatches.
type Enqueuer interface {
	EnqueueReminder(ctx context.Context, payload jobs.ReminderPayload, delay time.Duration) error
}

// SendInput selects which defaulters to remind and in which language.
type SendInput struct {
	AsOf    time.Time `json:"as_of"`
	Lang    string    `json:"lang" validate:"omitempty,oneof=en te"`
	GroupID string    `json:"group_id"`
}

// SendResult summarises a bulk send.
type SendResult struct {
	Queued  int    `json:"queued"`
	Skipped int    `json:"skipped"`
	Warning string `json:"warning,omitempty"`
}

// Service builds reminder messages and schedules their dispatch.
type Service struct {
	defaulters DefaulterSource
	settings   SettingsSource
	enqueuer   Enqueuer
	interval   time.Duration
}

// NewService builds Service instance. interval spaces consecutive
// dispatches so a bulk send does not burst.
func NewService(defaulters DefaulterSource, settings SettingsSource, enqueuer Enqueuer, interval time.Duration) *Service {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Service{defaulters: defaulters, settings: settings, enqueuer: enqueuer, interval: interval}
}

// BuildMessage renders the template for one defaulter entry. Placeholders
// are {name}, {group} and {amount}.
func BuildMessage(template string, e chit.DefaulterEntry) string {
	msg := strings.ReplaceAll(template, "{name}", e.Member.Name)
	msg = strings.ReplaceAll(msg, "{group}", e.Group.Name)
	msg = strings.ReplaceAll(msg, "{amount}", money.Format(e.Outstanding))
	return msg
}

func pickTemplate(s chit.Settings, lang string) string {
	if lang == "te" && s.WhatsAppTemplateTE != "" {
		return s.WhatsAppTemplateTE
	}
	return s.WhatsAppTemplateEN
}

// SendDefaulterReminders enqueues one reminder per defaulter, staggered by
// the configured interval in classifier order. Entries without a phone
// number are skipped and counted.
func (s *Service) SendDefaulterReminders(ctx context.Context, input SendInput) (SendResult, error) {
	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}
	view, err := s.defaulters.Defaulters(ctx, asOf)
	if err != nil {
		return SendResult{}, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return SendResult{}, err
	}
	template := pickTemplate(settings, input.Lang)

	result := SendResult{Warning: view.Warning}
	for _, e := range view.Entries {
		if input.GroupID != "" && e.Group.ID != input.GroupID {
			continue
		}
		if strings.TrimSpace(e.Member.Phone) == "" {
			result.Skipped++
			continue
		}
		body := BuildMessage(template, e)
		payload := jobs.ReminderPayload{
			MemberID:    e.Member.ID,
			MemberName:  e.Member.Name,
			Phone:       money.NormalizePhone(e.Member.Phone),
			GroupName:   e.Group.Name,
			Amount:      e.Outstanding,
			Body:        body,
			WhatsAppURL: money.WhatsAppURL(e.Member.Phone, body),
		}
		if err := s.enqueuer.EnqueueReminder(ctx, payload, time.Duration(result.Queued)*s.interval); err != nil {
			return result, err
		}
		result.Queued++
	}
	return result, nil
}
