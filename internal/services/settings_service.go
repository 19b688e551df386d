package services

import (
	"errors"
	"strings"

	"github.com/verdantlabs/vigor/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrSettingsPasswordMissing = errors.New("settings password missing")
	ErrSettingsPasswordInvalid = errors.New("settings password invalid")
	ErrInvalidTheme            = errors.New("invalid theme")
)

type SettingsUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdatePassword(userID uint, passwordHash string) error
	DeleteAccountAndRelatedData(userID uint) error
}

type SettingsProfileRepository interface {
	Ensure(userID uint) (models.UserProfile, error)
	UpdatePreferences(userID uint, theme string, notifications bool) error
}

type SettingsActivityStore interface {
	DeleteAllForUser(userID uint) error
}

type SettingsService struct {
	users      SettingsUserRepository
	profiles   SettingsProfileRepository
	activities SettingsActivityStore
}

func NewSettingsService(users SettingsUserRepository, profiles SettingsProfileRepository, activities SettingsActivityStore) *SettingsService {
	return &SettingsService{
		users:      users,
		profiles:   profiles,
		activities: activities,
	}
}

func (service *SettingsService) Profile(userID uint) (models.UserProfile, error) {
	return service.profiles.Ensure(userID)
}

func (service *SettingsService) UpdateProfile(userID uint, theme string, notifications bool) (models.UserProfile, error) {
	if !models.IsValidTheme(theme) {
		return models.UserProfile{}, ErrInvalidTheme
	}
	if _, err := service.profiles.Ensure(userID); err != nil {
		return models.UserProfile{}, err
	}
	if err := service.profiles.UpdatePreferences(userID, theme, notifications); err != nil {
		return models.UserProfile{}, err
	}
	return service.profiles.Ensure(userID)
}

// ChangePassword verifies the current password before storing the new
// hash. The new password must pass the strength policy.
func (service *SettingsService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if err := service.verifyPassword(user.PasswordHash, currentPassword); err != nil {
		return err
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(userID, string(passwordHash))
}

func (service *SettingsService) ClearAllData(userID uint) error {
	return service.activities.DeleteAllForUser(userID)
}

// DeleteAccount removes the user and everything they own after a password
// re-check.
func (service *SettingsService) DeleteAccount(userID uint, password string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if err := service.verifyPassword(user.PasswordHash, password); err != nil {
		return err
	}
	return service.users.DeleteAccountAndRelatedData(userID)
}

func (service *SettingsService) verifyPassword(passwordHash string, rawPassword string) error {
	password := strings.TrimSpace(rawPassword)
	if password == "" {
		return ErrSettingsPasswordMissing
	}
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) != nil {
		return ErrSettingsPasswordInvalid
	}
	return nil
}
