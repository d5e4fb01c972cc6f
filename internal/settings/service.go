package settings

import (
	"context"
	"errors"
	"time"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

// RepositoryPort defines data access for the singleton settings row.
type RepositoryPort interface {
	Get(ctx context.Context) (chit.Settings, error)
	Upsert(ctx context.Context, s chit.Settings) error
}

// Service handles settings business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Defaults is what a fresh installation answers before anyone has saved
// settings. The templates use {name}, {group} and {amount} placeholders.
func Defaults() chit.Settings {
	return chit.Settings{
		WhatsAppTemplateEN: "Dear {name}, your payment of {amount} for {group} is pending. Please pay at the earliest. - SMK Chits",
		WhatsAppTemplateTE: "ప్రియమైన {name} గారు, {group} కొరకు మీ చెల్లింపు {amount} బాకీ ఉంది. దయచేసి త్వరగా చెల్లించండి. - SMK చిట్స్",
		DefaultCommission:  5,
		BusinessName:       "SMK Chits",
	}
}

// Get returns the saved settings, or the defaults when nothing is saved.
func (s *Service) Get(ctx context.Context) (chit.Settings, error) {
	saved, err := s.repo.Get(ctx)
	if errors.Is(err, shared.ErrNotFound) {
		return Defaults(), nil
	}
	if err != nil {
		return chit.Settings{}, err
	}
	return saved, nil
}

// Update replaces the settings wholesale.
func (s *Service) Update(ctx context.Context, input UpdateSettingsInput) (chit.Settings, error) {
	next := chit.Settings{
		WhatsAppTemplateEN: input.WhatsAppTemplateEN,
		WhatsAppTemplateTE: input.WhatsAppTemplateTE,
		DefaultCommission:  input.DefaultCommission,
		BusinessName:       input.BusinessName,
		BusinessPhone:      input.BusinessPhone,
		BusinessAddress:    input.BusinessAddress,
		UpdatedAt:          time.Now(),
	}
	if err := s.repo.Upsert(ctx, next); err != nil {
		return chit.Settings{}, err
	}
	return next, nil
}
