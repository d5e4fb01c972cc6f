package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeSendReminder dispatches one WhatsApp payment reminder.
	TaskTypeSendReminder = "reminder:send"
	// TaskTypeDashboardWarm precomputes the dashboard snapshot.
	TaskTypeDashboardWarm = "reports:warm_dashboard"
)

// ReminderPayload carries one rendered reminder message.
type ReminderPayload struct {
	MemberID    string  `json:"member_id"`
	MemberName  string  `json:"member_name"`
	Phone       string  `json:"phone"`
	GroupName   string  `json:"group_name"`
	Amount      float64 `json:"amount"`
	Body        string  `json:"body"`
	WhatsAppURL string  `json:"whatsapp_url"`
}

// NewSendReminderTask constructs an Asynq task.
func NewSendReminderTask(payload ReminderPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeSendReminder, data), nil
}

// NewSendReminderHandler processes TaskTypeSendReminder tasks. Delivery is
// a logged dispatch of the wa.me link; there is no WhatsApp Business API
// integration.
func NewSendReminderHandler(logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		logger.Info("reminder dispatched",
			slog.String("member", payload.MemberName),
			slog.String("phone", payload.Phone),
			slog.String("group", payload.GroupName),
			slog.Float64("amount", payload.Amount),
			slog.String("url", payload.WhatsAppURL),
		)
		return nil
	}
}

// NewDashboardWarmTask constructs the warmup task for cron registration.
func NewDashboardWarmTask() *asynq.Task {
	return asynq.NewTask(TaskTypeDashboardWarm, nil)
}

// NewDashboardWarmHandler processes TaskTypeDashboardWarm tasks.
func NewDashboardWarmHandler(logger *slog.Logger, warm func(context.Context) error) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		if err := warm(ctx); err != nil {
			logger.Warn("dashboard warmup", slog.Any("error", err))
			return err
		}
		logger.Info("dashboard warmed")
		return nil
	}
}
