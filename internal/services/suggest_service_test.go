package services

import (
	"testing"
	"time"

	"github.com/verdantlabs/vigor/internal/models"
)

type stubSuggestLookup struct {
	matches      []models.Activity
	lookupCalled bool
}

func (stub *stubSuggestLookup) ListByNameContains(uint, string) ([]models.Activity, error) {
	stub.lookupCalled = true
	result := make([]models.Activity, len(stub.matches))
	copy(result, stub.matches)
	return result, nil
}

func TestSuggestEmptyQuerySkipsLookup(t *testing.T) {
	stub := &stubSuggestLookup{}
	service := NewSuggestService(stub)

	suggestions, err := service.Suggest(1, "   ")
	if err != nil {
		t.Fatalf("Suggest() unexpected error: %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", suggestions)
	}
	if stub.lookupCalled {
		t.Fatal("blank query must not hit the store")
	}
}

func TestSuggestRanksByCountThenName(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	matches := make([]models.Activity, 0, 7)
	for i := 0; i < 5; i++ {
		matches = append(matches, activityNamed("Meeting", base.Add(time.Duration(i)*time.Hour)))
	}
	for i := 0; i < 2; i++ {
		matches = append(matches, activityNamed("Meetup", base.Add(time.Duration(i)*time.Hour)))
	}

	service := NewSuggestService(&stubSuggestLookup{matches: matches})
	suggestions, err := service.Suggest(1, "meet")
	if err != nil {
		t.Fatalf("Suggest() unexpected error: %v", err)
	}

	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Name != "Meeting" || suggestions[0].Count != 5 {
		t.Fatalf("expected Meeting x5 first, got %+v", suggestions[0])
	}
	if suggestions[1].Name != "Meetup" || suggestions[1].Count != 2 {
		t.Fatalf("expected Meetup x2 second, got %+v", suggestions[1])
	}
}

func TestSuggestCapsAtFive(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	names := []string{"Run", "Read", "Rest", "Review", "Rehearse", "Refactor", "Research"}
	matches := make([]models.Activity, 0, len(names))
	for _, name := range names {
		matches = append(matches, activityNamed(name, base))
	}

	service := NewSuggestService(&stubSuggestLookup{matches: matches})
	suggestions, err := service.Suggest(1, "re")
	if err != nil {
		t.Fatalf("Suggest() unexpected error: %v", err)
	}
	if len(suggestions) != MaxSuggestions {
		t.Fatalf("expected %d suggestions, got %d", MaxSuggestions, len(suggestions))
	}
}

func TestRankNameSuggestionsTieBreaksAlphabetically(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	matches := []models.Activity{
		activityNamed("Writing", base),
		activityNamed("Walking", base),
	}

	ranked := RankNameSuggestions(matches, 5)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(ranked))
	}
	if ranked[0].Name != "Walking" || ranked[1].Name != "Writing" {
		t.Fatalf("expected alphabetical tie-break, got %v", ranked)
	}
}
