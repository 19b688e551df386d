package services

import (
	"strings"
	"time"

	"github.com/verdantlabs/vigor/internal/models"
)

type NameLookupRepository interface {
	ListByNameIgnoreCase(userID uint, name string) ([]models.Activity, error)
}

// NameCanonicalizer resolves a free-text activity name to the casing the
// owner has used most often, so "meeting" and "MEETING" collapse into one
// history group.
type NameCanonicalizer struct {
	activities NameLookupRepository
}

func NewNameCanonicalizer(activities NameLookupRepository) *NameCanonicalizer {
	return &NameCanonicalizer{activities: activities}
}

// Canonicalize returns the owner's most frequent exact casing of the
// candidate name. An unknown name comes back trimmed and otherwise
// unchanged; an empty candidate short-circuits without a lookup.
func (canonicalizer *NameCanonicalizer) Canonicalize(userID uint, candidate string) (string, error) {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return "", nil
	}

	matches, err := canonicalizer.activities.ListByNameIgnoreCase(userID, trimmed)
	if err != nil {
		return "", err
	}
	return CanonicalActivityName(matches, trimmed), nil
}

type nameVariant struct {
	count    int
	lastUsed time.Time
}

// CanonicalActivityName picks the winning casing variant among activities
// whose names already match case-insensitively. Highest occurrence count
// wins; equal counts fall back to the most recently used variant, then to
// lexicographic order so the result stays deterministic.
func CanonicalActivityName(matches []models.Activity, fallback string) string {
	if len(matches) == 0 {
		return fallback
	}

	variants := make(map[string]nameVariant, len(matches))
	for _, activity := range matches {
		variant := variants[activity.Name]
		variant.count++
		if activity.OccurredAt.After(variant.lastUsed) {
			variant.lastUsed = activity.OccurredAt
		}
		variants[activity.Name] = variant
	}

	winner := ""
	var winning nameVariant
	for name, variant := range variants {
		if winner == "" || variantBeats(variant, name, winning, winner) {
			winner = name
			winning = variant
		}
	}
	return winner
}

func variantBeats(candidate nameVariant, candidateName string, incumbent nameVariant, incumbentName string) bool {
	if candidate.count != incumbent.count {
		return candidate.count > incumbent.count
	}
	if !candidate.lastUsed.Equal(incumbent.lastUsed) {
		return candidate.lastUsed.After(incumbent.lastUsed)
	}
	return candidateName < incumbentName
}
