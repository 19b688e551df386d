package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/verdantlabs/vigor/internal/models"
)

const HistoryPageSize = 20

const (
	WindowDay   = "day"
	WindowWeek  = "week"
	WindowMonth = "month"
)

type HistoryActivityRepository interface {
	CountFiltered(userID uint, energyLevel *int, nameContains string, since *time.Time) (int64, error)
	ListFiltered(userID uint, energyLevel *int, nameContains string, since *time.Time, limit int, offset int) ([]models.Activity, error)
}

// HistoryFilters carries raw query parameters. Malformed values are
// ignored rather than rejected.
type HistoryFilters struct {
	EnergyLevel string
	Text        string
	Window      string
}

type PagedActivities struct {
	Items      []models.Activity
	Page       int
	PageCount  int
	TotalCount int64
}

type HistoryService struct {
	activities HistoryActivityRepository
}

func NewHistoryService(activities HistoryActivityRepository) *HistoryService {
	return &HistoryService{activities: activities}
}

// Query applies the owner's filters and returns one page of activities,
// newest occurrence first. Out-of-range page numbers clamp to the nearest
// valid page instead of erroring.
func (service *HistoryService) Query(userID uint, filters HistoryFilters, page int, now time.Time, location *time.Location) (PagedActivities, error) {
	energyLevel := ParseEnergyFilter(filters.EnergyLevel)
	text := strings.TrimSpace(filters.Text)
	since := WindowStart(filters.Window, now, location)

	total, err := service.activities.CountFiltered(userID, energyLevel, text, &since)
	if err != nil {
		return PagedActivities{}, err
	}

	pageCount := pageCountFor(total)
	page = ClampPage(page, pageCount)
	offset := (page - 1) * HistoryPageSize

	items, err := service.activities.ListFiltered(userID, energyLevel, text, &since, HistoryPageSize, offset)
	if err != nil {
		return PagedActivities{}, err
	}

	return PagedActivities{
		Items:      items,
		Page:       page,
		PageCount:  pageCount,
		TotalCount: total,
	}, nil
}

// ParseEnergyFilter reads an exact-match energy level from a raw query
// value. Blank or non-numeric input means no filter.
func ParseEnergyFilter(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &value
}

// WindowStart maps a window name onto its lower time bound: "day" covers
// everything since local midnight, "week" the trailing 7 days, "month" the
// trailing 30 days. Unknown values fall back to the day window.
func WindowStart(window string, now time.Time, location *time.Location) time.Time {
	switch strings.TrimSpace(window) {
	case WindowWeek:
		return now.AddDate(0, 0, -7)
	case WindowMonth:
		return now.AddDate(0, 0, -30)
	default:
		return DateAtLocation(now, location)
	}
}

func ClampPage(page int, pageCount int) int {
	if page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}

func pageCountFor(total int64) int {
	if total <= 0 {
		return 1
	}
	pages := int((total + HistoryPageSize - 1) / HistoryPageSize)
	if pages < 1 {
		pages = 1
	}
	return pages
}
