package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/verdantlabs/vigor/internal/services"
)

type historyResponse struct {
	Items      []activityResponse `json:"items"`
	Page       int                `json:"page"`
	PageCount  int                `json:"page_count"`
	TotalCount int64              `json:"total_count"`
}

func (handler *Handler) GetActivities(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	filters := services.HistoryFilters{
		EnergyLevel: c.Query("energy"),
		Text:        c.Query("q"),
		Window:      c.Query("window"),
	}
	page := parsePageQuery(c.Query("page"))

	result, err := handler.historyService.Query(user.ID, filters, page, time.Now().In(handler.location), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load history")
	}

	return c.JSON(historyResponse{
		Items:      toActivityResponses(result.Items),
		Page:       result.Page,
		PageCount:  result.PageCount,
		TotalCount: result.TotalCount,
	})
}

// parsePageQuery never fails; anything unusable means page one.
func parsePageQuery(raw string) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 1
	}
	page, err := strconv.Atoi(trimmed)
	if err != nil {
		return 1
	}
	return page
}

func (handler *Handler) SuggestNames(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	suggestions, err := handler.suggestService.Suggest(user.ID, c.Query("q"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load suggestions")
	}

	return c.JSON(fiber.Map{"suggestions": suggestions})
}
