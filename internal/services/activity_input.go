package services

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/verdantlabs/vigor/internal/models"
)

// ActivityInput carries raw caller-supplied fields for logging or editing
// an activity. Duration arrives split into hours and minutes and is
// combined into total minutes during normalization.
type ActivityInput struct {
	Name            string
	EnergyLevel     int
	DurationHours   int
	DurationMinutes int
	OccurredAt      *time.Time
}

type NormalizedActivity struct {
	Name            string
	EnergyLevel     int
	DurationMinutes int
	OccurredAt      time.Time
}

// FieldErrors maps input field names to validation messages. An empty map
// means the input is valid.
type FieldErrors map[string]string

const (
	FieldName        = "name"
	FieldEnergyLevel = "energy_level"
	FieldDuration    = "duration"
	FieldOccurredAt  = "occurred_at"
)

func NormalizeActivityInput(input ActivityInput, now time.Time) (NormalizedActivity, FieldErrors) {
	fieldErrors := FieldErrors{}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		fieldErrors[FieldName] = "name is required"
	} else if utf8.RuneCountInString(name) > models.MaxActivityNameLength {
		fieldErrors[FieldName] = "name must be at most 100 characters"
	}

	if !models.IsValidEnergyLevel(input.EnergyLevel) {
		fieldErrors[FieldEnergyLevel] = "energy level must be one of -2, -1, 1, 2"
	}

	totalMinutes := input.DurationHours*60 + input.DurationMinutes
	if totalMinutes < models.MinDurationMinutes || totalMinutes > models.MaxDurationMinutes {
		fieldErrors[FieldDuration] = "duration must be between 1 minute and 24 hours"
	}

	occurredAt := now
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}
	if occurredAt.After(now) {
		fieldErrors[FieldOccurredAt] = "date cannot be in the future"
	}

	if len(fieldErrors) > 0 {
		return NormalizedActivity{}, fieldErrors
	}

	return NormalizedActivity{
		Name:            name,
		EnergyLevel:     input.EnergyLevel,
		DurationMinutes: totalMinutes,
		OccurredAt:      occurredAt,
	}, fieldErrors
}
