package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/verdantlabs/vigor/internal/models"
	"github.com/verdantlabs/vigor/internal/services"
)

type activityPayload struct {
	Name            string `json:"name" form:"name"`
	EnergyLevel     int    `json:"energy_level" form:"energy_level"`
	DurationHours   int    `json:"duration_hours" form:"duration_hours"`
	DurationMinutes int    `json:"duration_minutes" form:"duration_minutes"`
	OccurredAt      string `json:"occurred_at" form:"occurred_at"`
}

type activityResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	EnergyLevel     int       `json:"energy_level"`
	DurationMinutes int       `json:"duration_minutes"`
	OccurredAt      time.Time `json:"occurred_at"`
	RecordedAt      time.Time `json:"recorded_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toActivityResponse(activity models.Activity) activityResponse {
	return activityResponse{
		ID:              activity.ID,
		Name:            activity.Name,
		EnergyLevel:     activity.EnergyLevel,
		DurationMinutes: activity.DurationMinutes,
		OccurredAt:      activity.OccurredAt,
		RecordedAt:      activity.RecordedAt,
		UpdatedAt:       activity.UpdatedAt,
	}
}

func toActivityResponses(activities []models.Activity) []activityResponse {
	responses := make([]activityResponse, 0, len(activities))
	for _, activity := range activities {
		responses = append(responses, toActivityResponse(activity))
	}
	return responses
}

func (handler *Handler) parseActivityInput(c *fiber.Ctx) (services.ActivityInput, error) {
	var payload activityPayload
	if err := c.BodyParser(&payload); err != nil {
		return services.ActivityInput{}, err
	}

	input := services.ActivityInput{
		Name:            payload.Name,
		EnergyLevel:     payload.EnergyLevel,
		DurationHours:   payload.DurationHours,
		DurationMinutes: payload.DurationMinutes,
	}

	rawOccurredAt := strings.TrimSpace(payload.OccurredAt)
	if rawOccurredAt != "" {
		occurredAt, err := handler.parseTimestamp(rawOccurredAt)
		if err != nil {
			return services.ActivityInput{}, err
		}
		input.OccurredAt = &occurredAt
	}
	return input, nil
}

// parseTimestamp accepts RFC 3339 or the HTML datetime-local format, the
// latter interpreted in the server's reference timezone.
func (handler *Handler) parseTimestamp(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.ParseInLocation("2006-01-02T15:04", raw, handler.location)
}

func (handler *Handler) LogActivity(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := handler.parseActivityInput(c)
	if err != nil {
		return apiFieldErrors(c, services.FieldErrors{services.FieldOccurredAt: "invalid date"})
	}

	activity, fieldErrors, err := handler.activityService.Log(user.ID, input, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to log activity")
	}
	if len(fieldErrors) > 0 {
		return apiFieldErrors(c, fieldErrors)
	}

	return c.Status(fiber.StatusCreated).JSON(toActivityResponse(activity))
}

func (handler *Handler) UpdateActivity(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	activityID, err := parseActivityID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "activity not found")
	}

	input, err := handler.parseActivityInput(c)
	if err != nil {
		return apiFieldErrors(c, services.FieldErrors{services.FieldOccurredAt: "invalid date"})
	}

	activity, fieldErrors, err := handler.activityService.Update(user.ID, activityID, input, time.Now().In(handler.location))
	if errors.Is(err, services.ErrActivityNotFound) {
		return apiError(c, fiber.StatusNotFound, "activity not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update activity")
	}
	if len(fieldErrors) > 0 {
		return apiFieldErrors(c, fieldErrors)
	}

	return c.JSON(toActivityResponse(activity))
}

func (handler *Handler) DeleteActivity(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	activityID, err := parseActivityID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "activity not found")
	}

	err = handler.activityService.Delete(user.ID, activityID)
	if errors.Is(err, services.ErrActivityNotFound) {
		return apiError(c, fiber.StatusNotFound, "activity not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete activity")
	}

	return c.JSON(fiber.Map{"ok": true})
}

type bulkDeletePayload struct {
	IDs []uint `json:"ids" form:"ids"`
}

func (handler *Handler) BulkDeleteActivities(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload bulkDeletePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	deleted, err := handler.activityService.BulkDelete(user.ID, payload.IDs)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete activities")
	}

	return c.JSON(fiber.Map{"deleted": deleted})
}

func parseActivityID(raw string) (uint, error) {
	parsed, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}
