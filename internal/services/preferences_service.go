package services

import (
	"context"
	"fmt"
	"strings"

	"spendwise/internal/core"
	"spendwise/internal/log"
	"spendwise/internal/storage"
)

// PreferencesService handles the per-owner preference row, including its
// lazy creation on first read.
type PreferencesService struct {
	storage *storage.SQLiteRepository
	logger  *log.Logger
}

func NewPreferencesService(storage *storage.SQLiteRepository, logger *log.Logger) *PreferencesService {
	return &PreferencesService{
		storage: storage,
		logger:  logger.WithComponent(log.ComponentPrefs),
	}
}

// GetOrCreate returns the owner's preferences, creating the row with the
// documented defaults on first access. The account's full name seeds the
// initial display name.
func (s *PreferencesService) GetOrCreate(ctx context.Context, ownerID, fullName string) (core.UserPreferences, error) {
	existing, err := s.storage.GetPreferences(ctx, ownerID)
	if err != nil {
		return core.UserPreferences{}, fmt.Errorf("get preferences: %w", err)
	}
	if existing != nil {
		return *existing, nil
	}

	created, err := s.storage.SavePreferences(ctx, core.UserPreferences{
		OwnerID:              ownerID,
		DisplayName:          fullName,
		DefaultDailyBudget:   core.Money{Cents: core.DefaultDailyBudgetCents},
		DefaultMonthlyBudget: core.Money{Cents: core.DefaultMonthlyBudgetCents},
		Currency:             core.DefaultCurrency,
	})
	if err != nil {
		return core.UserPreferences{}, fmt.Errorf("create default preferences: %w", err)
	}

	s.logger.InfoContext(ctx, "Default preferences created", log.FieldOwnerID, ownerID)
	return created, nil
}

// Update merges the non-nil fields of up onto the owner's preferences
// (created first if absent) and saves the result.
func (s *PreferencesService) Update(ctx context.Context, ownerID, fullName string, up core.PreferencesUpdate) (core.UserPreferences, error) {
	if err := up.Validate(); err != nil {
		return core.UserPreferences{}, err
	}

	prefs, err := s.GetOrCreate(ctx, ownerID, fullName)
	if err != nil {
		return core.UserPreferences{}, err
	}

	if up.DisplayName != nil {
		prefs.DisplayName = *up.DisplayName
	}
	if up.DefaultDailyBudget != nil {
		prefs.DefaultDailyBudget = *up.DefaultDailyBudget
	}
	if up.DefaultMonthlyBudget != nil {
		prefs.DefaultMonthlyBudget = *up.DefaultMonthlyBudget
	}
	if up.Currency != nil {
		prefs.Currency = strings.ToUpper(strings.TrimSpace(*up.Currency))
	}

	saved, err := s.storage.SavePreferences(ctx, prefs)
	if err != nil {
		return core.UserPreferences{}, fmt.Errorf("save preferences: %w", err)
	}
	return saved, nil
}
