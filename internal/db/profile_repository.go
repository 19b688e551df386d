package db

import (
	"time"

	"github.com/verdantlabs/vigor/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

// Ensure loads the user's profile, creating the default row when none
// exists yet. Profile creation is explicit here instead of hanging off a
// user-creation hook.
func (repo *ProfileRepository) Ensure(userID uint) (models.UserProfile, error) {
	var profile models.UserProfile
	err := repo.database.
		Where("user_id = ?", userID).
		Attrs(models.UserProfile{
			UserID:        userID,
			Theme:         models.ThemeLight,
			Notifications: true,
			CreatedAt:     time.Now(),
		}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) UpdatePreferences(userID uint, theme string, notifications bool) error {
	return repo.database.Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"theme":         theme,
			"notifications": notifications,
		}).Error
}
