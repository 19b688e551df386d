package services

import (
	"sort"
	"strings"

	"github.com/verdantlabs/vigor/internal/models"
)

const MaxSuggestions = 5

type SuggestActivityRepository interface {
	ListByNameContains(userID uint, fragment string) ([]models.Activity, error)
}

type NameSuggestion struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SuggestService ranks an owner's activity names for autocomplete.
type SuggestService struct {
	activities SuggestActivityRepository
}

func NewSuggestService(activities SuggestActivityRepository) *SuggestService {
	return &SuggestService{activities: activities}
}

// Suggest returns up to five names containing the query, most frequent
// first, ties ordered alphabetically. A blank query returns no suggestions
// without touching the store.
func (service *SuggestService) Suggest(userID uint, query string) ([]NameSuggestion, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []NameSuggestion{}, nil
	}

	matches, err := service.activities.ListByNameContains(userID, trimmed)
	if err != nil {
		return nil, err
	}
	return RankNameSuggestions(matches, MaxSuggestions), nil
}

func RankNameSuggestions(matches []models.Activity, limit int) []NameSuggestion {
	counts := make(map[string]int, len(matches))
	for _, activity := range matches {
		counts[activity.Name]++
	}

	suggestions := make([]NameSuggestion, 0, len(counts))
	for name, count := range counts {
		suggestions = append(suggestions, NameSuggestion{Name: name, Count: count})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Count != suggestions[j].Count {
			return suggestions[i].Count > suggestions[j].Count
		}
		return suggestions[i].Name < suggestions[j].Name
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
