package services

import (
	"sort"
	"time"

	"github.com/verdantlabs/vigor/internal/models"
)

const (
	RecentActivityLimit = 5
	TopGroupLimit       = 3
	WeeklySeriesDays    = 7
)

type DashboardActivityRepository interface {
	ListForUserRange(userID uint, from time.Time, to time.Time) ([]models.Activity, error)
	ListForUser(userID uint) ([]models.Activity, error)
}

type DaySummary struct {
	Date      time.Time
	Count     int
	AvgEnergy *float64
}

type NameEnergyGroup struct {
	Name      string
	AvgEnergy float64
	Count     int
}

// DashboardStats is the aggregate view for a single calendar day.
//
// TodayAvgEnergy is 0 when the day is empty; HasData lets callers that
// want a null-when-empty average tell the two cases apart.
type DashboardStats struct {
	TodayCount       int
	TodayAvgEnergy   float64
	HasData          bool
	HourlyAvg        [24]*float64
	HoursPerCategory map[int]float64
	RecentActivities []models.Activity
	WeeklySeries     []DaySummary
	TopDraining      []NameEnergyGroup
	TopEnergizing    []NameEnergyGroup
}

type DashboardService struct {
	activities DashboardActivityRepository
}

func NewDashboardService(activities DashboardActivityRepository) *DashboardService {
	return &DashboardService{activities: activities}
}

// AggregateDay computes the dashboard for the calendar day containing the
// given instant, in the given location. An owner with no activities gets
// zero counts and empty lists, never an error.
func (service *DashboardService) AggregateDay(userID uint, day time.Time, location *time.Location) (DashboardStats, error) {
	dayStart, dayEnd := DayRange(day, location)

	todays, err := service.activities.ListForUserRange(userID, dayStart, dayEnd)
	if err != nil {
		return DashboardStats{}, err
	}

	weekStart := dayStart.AddDate(0, 0, -(WeeklySeriesDays - 1))
	weekly, err := service.activities.ListForUserRange(userID, weekStart, dayEnd)
	if err != nil {
		return DashboardStats{}, err
	}

	all, err := service.activities.ListForUser(userID)
	if err != nil {
		return DashboardStats{}, err
	}

	count, avgEnergy, hasData := DayEnergySummary(todays)
	draining, energizing := TopEnergyGroups(all, TopGroupLimit)

	return DashboardStats{
		TodayCount:       count,
		TodayAvgEnergy:   avgEnergy,
		HasData:          hasData,
		HourlyAvg:        HourlyEnergyAverages(todays, location),
		HoursPerCategory: HoursPerCategory(todays),
		RecentActivities: MostRecentByOccurrence(todays, RecentActivityLimit),
		WeeklySeries:     BuildWeeklySeries(weekly, dayStart, location),
		TopDraining:      draining,
		TopEnergizing:    energizing,
	}, nil
}

// DayEnergySummary reports the activity count and mean energy level over
// one day, rounded to two decimals. The mean is 0 for an empty day; the
// third return value distinguishes that from a true zero average.
func DayEnergySummary(activities []models.Activity) (int, float64, bool) {
	if len(activities) == 0 {
		return 0, 0, false
	}

	sum := 0
	for _, activity := range activities {
		sum += activity.EnergyLevel
	}
	return len(activities), RoundTo2(float64(sum) / float64(len(activities))), true
}

// HourlyEnergyAverages buckets mean energy by hour of occurrence. Hours
// without activities stay nil rather than being coerced to zero.
func HourlyEnergyAverages(activities []models.Activity, location *time.Location) [24]*float64 {
	if location == nil {
		location = time.UTC
	}

	var sums [24]int
	var counts [24]int
	for _, activity := range activities {
		hour := activity.OccurredAt.In(location).Hour()
		sums[hour] += activity.EnergyLevel
		counts[hour]++
	}

	var averages [24]*float64
	for hour := 0; hour < 24; hour++ {
		if counts[hour] == 0 {
			continue
		}
		average := RoundTo2(float64(sums[hour]) / float64(counts[hour]))
		averages[hour] = &average
	}
	return averages
}

// HoursPerCategory sums activity durations in hours per energy level. The
// key set is always the full category range {-2,-1,0,1,2}; the zero slot
// stays at 0 under the current energy domain.
func HoursPerCategory(activities []models.Activity) map[int]float64 {
	totalMinutes := make(map[int]int, len(models.EnergyCategories))
	for _, category := range models.EnergyCategories {
		totalMinutes[category] = 0
	}
	for _, activity := range activities {
		totalMinutes[activity.EnergyLevel] += activity.DurationMinutes
	}

	hours := make(map[int]float64, len(totalMinutes))
	for category, minutes := range totalMinutes {
		hours[category] = RoundTo2(float64(minutes) / 60)
	}
	return hours
}

// MostRecentByOccurrence orders strictly by when activities happened, not
// when they were recorded, so a retroactively logged entry never bumps a
// genuinely more recent one out of the list.
func MostRecentByOccurrence(activities []models.Activity, limit int) []models.Activity {
	recent := make([]models.Activity, len(activities))
	copy(recent, activities)
	sort.SliceStable(recent, func(i, j int) bool {
		if !recent[i].OccurredAt.Equal(recent[j].OccurredAt) {
			return recent[i].OccurredAt.After(recent[j].OccurredAt)
		}
		return recent[i].ID > recent[j].ID
	})

	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// BuildWeeklySeries emits one summary per trailing day, oldest first,
// including the empty days.
func BuildWeeklySeries(activities []models.Activity, day time.Time, location *time.Location) []DaySummary {
	dayStart := DateAtLocation(day, location)

	type bucket struct {
		count int
		sum   int
	}
	buckets := make(map[time.Time]bucket, WeeklySeriesDays)
	for _, activity := range activities {
		date := DateAtLocation(activity.OccurredAt, location)
		entry := buckets[date]
		entry.count++
		entry.sum += activity.EnergyLevel
		buckets[date] = entry
	}

	series := make([]DaySummary, 0, WeeklySeriesDays)
	for offset := WeeklySeriesDays - 1; offset >= 0; offset-- {
		date := dayStart.AddDate(0, 0, -offset)
		summary := DaySummary{Date: date}
		if entry, ok := buckets[date]; ok && entry.count > 0 {
			average := RoundTo2(float64(entry.sum) / float64(entry.count))
			summary.Count = entry.count
			summary.AvgEnergy = &average
		}
		series = append(series, summary)
	}
	return series
}

// TopEnergyGroups ranks the owner's full history by per-name mean energy:
// the most draining groups (mean below zero, most negative first) and the
// most energizing ones (mean above zero, most positive first). Equal means
// order alphabetically.
func TopEnergyGroups(activities []models.Activity, limit int) ([]NameEnergyGroup, []NameEnergyGroup) {
	type bucket struct {
		count int
		sum   int
	}
	buckets := make(map[string]bucket, len(activities))
	for _, activity := range activities {
		entry := buckets[activity.Name]
		entry.count++
		entry.sum += activity.EnergyLevel
		buckets[activity.Name] = entry
	}

	draining := make([]NameEnergyGroup, 0, len(buckets))
	energizing := make([]NameEnergyGroup, 0, len(buckets))
	for name, entry := range buckets {
		mean := float64(entry.sum) / float64(entry.count)
		group := NameEnergyGroup{Name: name, AvgEnergy: RoundTo2(mean), Count: entry.count}
		if mean < 0 {
			draining = append(draining, group)
		} else if mean > 0 {
			energizing = append(energizing, group)
		}
	}

	sort.Slice(draining, func(i, j int) bool {
		if draining[i].AvgEnergy != draining[j].AvgEnergy {
			return draining[i].AvgEnergy < draining[j].AvgEnergy
		}
		return draining[i].Name < draining[j].Name
	})
	sort.Slice(energizing, func(i, j int) bool {
		if energizing[i].AvgEnergy != energizing[j].AvgEnergy {
			return energizing[i].AvgEnergy > energizing[j].AvgEnergy
		}
		return energizing[i].Name < energizing[j].Name
	})

	if limit > 0 && len(draining) > limit {
		draining = draining[:limit]
	}
	if limit > 0 && len(energizing) > limit {
		energizing = energizing[:limit]
	}
	return draining, energizing
}
