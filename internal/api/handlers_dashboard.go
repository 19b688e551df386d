package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/verdantlabs/vigor/internal/services"
)

type daySummaryResponse struct {
	Date      string   `json:"date"`
	Count     int      `json:"count"`
	AvgEnergy *float64 `json:"avg_energy"`
}

type nameGroupResponse struct {
	Name      string  `json:"name"`
	AvgEnergy float64 `json:"avg_energy"`
	Count     int     `json:"count"`
}

type dashboardResponse struct {
	Date             string             `json:"date"`
	TodayCount       int                `json:"today_count"`
	TodayAvgEnergy   float64            `json:"today_avg_energy"`
	HasData          bool               `json:"has_data"`
	HourlyAvg        []*float64         `json:"hourly_avg"`
	HoursPerCategory map[string]float64 `json:"hours_per_category"`
	RecentActivities []activityResponse `json:"recent_activities"`
	WeeklySeries     []daySummaryResponse `json:"weekly_series"`
	TopDraining      []nameGroupResponse  `json:"top_draining"`
	TopEnergizing    []nameGroupResponse  `json:"top_energizing"`
}

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day := handler.parseDayQuery(c.Query("date"))
	stats, err := handler.dashboardService.AggregateDay(user.ID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build dashboard")
	}

	return c.JSON(buildDashboardResponse(day, handler.location, stats))
}

// parseDayQuery resolves the requested calendar day; a blank or malformed
// value falls back to today.
func (handler *Handler) parseDayQuery(raw string) time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Now().In(handler.location)
	}
	parsed, err := time.ParseInLocation("2006-01-02", trimmed, handler.location)
	if err != nil {
		return time.Now().In(handler.location)
	}
	return parsed
}

func buildDashboardResponse(day time.Time, location *time.Location, stats services.DashboardStats) dashboardResponse {
	hourly := make([]*float64, len(stats.HourlyAvg))
	copy(hourly, stats.HourlyAvg[:])

	categories := make(map[string]float64, len(stats.HoursPerCategory))
	for category, hours := range stats.HoursPerCategory {
		categories[strconv.Itoa(category)] = hours
	}

	weekly := make([]daySummaryResponse, 0, len(stats.WeeklySeries))
	for _, summary := range stats.WeeklySeries {
		weekly = append(weekly, daySummaryResponse{
			Date:      summary.Date.Format("2006-01-02"),
			Count:     summary.Count,
			AvgEnergy: summary.AvgEnergy,
		})
	}

	return dashboardResponse{
		Date:             services.DateAtLocation(day, location).Format("2006-01-02"),
		TodayCount:       stats.TodayCount,
		TodayAvgEnergy:   stats.TodayAvgEnergy,
		HasData:          stats.HasData,
		HourlyAvg:        hourly,
		HoursPerCategory: categories,
		RecentActivities: toActivityResponses(stats.RecentActivities),
		WeeklySeries:     weekly,
		TopDraining:      toNameGroupResponses(stats.TopDraining),
		TopEnergizing:    toNameGroupResponses(stats.TopEnergizing),
	}
}

func toNameGroupResponses(groups []services.NameEnergyGroup) []nameGroupResponse {
	responses := make([]nameGroupResponse, 0, len(groups))
	for _, group := range groups {
		responses = append(responses, nameGroupResponse{
			Name:      group.Name,
			AvgEnergy: group.AvgEnergy,
			Count:     group.Count,
		})
	}
	return responses
}
