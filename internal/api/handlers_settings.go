package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/verdantlabs/vigor/internal/models"
	"github.com/verdantlabs/vigor/internal/services"
)

type profileResponse struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
}

func toProfileResponse(profile models.UserProfile) profileResponse {
	return profileResponse{
		Theme:         profile.Theme,
		Notifications: profile.Notifications,
	}
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.settingsService.Profile(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(toProfileResponse(profile))
}

type profilePayload struct {
	Theme         string `json:"theme" form:"theme"`
	Notifications bool   `json:"notifications" form:"notifications"`
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload profilePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	profile, err := handler.settingsService.UpdateProfile(user.ID, payload.Theme, payload.Notifications)
	if errors.Is(err, services.ErrInvalidTheme) {
		return apiError(c, fiber.StatusBadRequest, "theme must be light or dark")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}
	return c.JSON(toProfileResponse(profile))
}

type changePasswordPayload struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload changePasswordPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err := handler.settingsService.ChangePassword(user.ID, payload.CurrentPassword, payload.NewPassword)
	switch {
	case errors.Is(err, services.ErrSettingsPasswordMissing), errors.Is(err, services.ErrSettingsPasswordInvalid):
		return apiError(c, fiber.StatusBadRequest, "current password is incorrect")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters with upper case, lower case, and a digit")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to change password")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ClearAllData(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.settingsService.ClearAllData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear data")
	}
	return c.JSON(fiber.Map{"ok": true})
}

type deleteAccountPayload struct {
	Password string `json:"password" form:"password"`
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload deleteAccountPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err := handler.settingsService.DeleteAccount(user.ID, payload.Password)
	switch {
	case errors.Is(err, services.ErrSettingsPasswordMissing), errors.Is(err, services.ErrSettingsPasswordInvalid):
		return apiError(c, fiber.StatusBadRequest, "password is incorrect")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}

	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
