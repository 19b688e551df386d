package services

import (
	"testing"
	"time"
)

func TestDayRange(t *testing.T) {
	value := time.Date(2026, 3, 10, 15, 30, 45, 0, time.UTC)

	start, end := DayRange(value, time.UTC)
	if !start.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected day start: %v", start)
	}
	if !end.Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected day end: %v", end)
	}
}

func TestDateAtLocationNilLocationFallsBackToUTC(t *testing.T) {
	value := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	if got := DateAtLocation(value, nil); !got.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", got)
	}
}

func TestRoundTo2(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{value: 0.666666, want: 0.67},
		{value: -0.666666, want: -0.67},
		{value: 0.25, want: 0.25},
		{value: 0, want: 0},
	}
	for _, testCase := range tests {
		if got := RoundTo2(testCase.value); got != testCase.want {
			t.Fatalf("RoundTo2(%v) = %v, want %v", testCase.value, got, testCase.want)
		}
	}
}
