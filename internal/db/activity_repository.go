package db

import (
	"strings"
	"time"

	"github.com/verdantlabs/vigor/internal/models"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	database *gorm.DB
}

func NewActivityRepository(database *gorm.DB) *ActivityRepository {
	return &ActivityRepository{database: database}
}

func (repo *ActivityRepository) Create(activity *models.Activity) error {
	return repo.database.Create(activity).Error
}

func (repo *ActivityRepository) Save(activity *models.Activity) error {
	return repo.database.Save(activity).Error
}

// FindForUser loads one activity scoped by owner. A row owned by another
// user reports not-found, same as a missing row.
func (repo *ActivityRepository) FindForUser(userID uint, activityID uint) (models.Activity, bool, error) {
	var activity models.Activity
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, activityID).
		Limit(1).
		Find(&activity)
	if result.Error != nil {
		return models.Activity{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Activity{}, false, nil
	}
	return activity, true, nil
}

func (repo *ActivityRepository) ListForUser(userID uint) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("occurred_at DESC, id DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) ListForUserRange(userID uint, from time.Time, to time.Time) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, from, to).
		Order("occurred_at DESC, id DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) ListByNameIgnoreCase(userID uint, name string) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.
		Where("user_id = ? AND lower(name) = lower(?)", userID, name).
		Order("occurred_at DESC, id DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) ListByNameContains(userID uint, fragment string) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.
		Where("user_id = ? AND lower(name) LIKE ? ESCAPE '\\'", userID, containsPattern(fragment)).
		Order("occurred_at DESC, id DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) CountFiltered(userID uint, energyLevel *int, nameContains string, since *time.Time) (int64, error) {
	var total int64
	query := repo.filteredQuery(userID, energyLevel, nameContains, since)
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (repo *ActivityRepository) ListFiltered(userID uint, energyLevel *int, nameContains string, since *time.Time, limit int, offset int) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	query := repo.filteredQuery(userID, energyLevel, nameContains, since).
		Order("occurred_at DESC, id DESC").
		Limit(limit).
		Offset(offset)
	if err := query.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) filteredQuery(userID uint, energyLevel *int, nameContains string, since *time.Time) *gorm.DB {
	query := repo.database.Model(&models.Activity{}).Where("user_id = ?", userID)
	if energyLevel != nil {
		query = query.Where("energy_level = ?", *energyLevel)
	}
	if nameContains != "" {
		query = query.Where("lower(name) LIKE ? ESCAPE '\\'", containsPattern(nameContains))
	}
	if since != nil {
		query = query.Where("occurred_at >= ?", *since)
	}
	return query
}

func (repo *ActivityRepository) DeleteForUser(userID uint, activityID uint) (int64, error) {
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, activityID).
		Delete(&models.Activity{})
	return result.RowsAffected, result.Error
}

// DeleteByIDsForUser removes the listed activities in one statement so the
// bulk delete is all-or-nothing.
func (repo *ActivityRepository) DeleteByIDsForUser(userID uint, activityIDs []uint) (int64, error) {
	if len(activityIDs) == 0 {
		return 0, nil
	}
	result := repo.database.
		Where("user_id = ? AND id IN ?", userID, activityIDs).
		Delete(&models.Activity{})
	return result.RowsAffected, result.Error
}

func (repo *ActivityRepository) DeleteAllForUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.Activity{}).Error
}

// containsPattern builds a case-insensitive LIKE pattern with the user's
// input treated literally, never as wildcards.
func containsPattern(fragment string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(fragment))
	return "%" + escaped + "%"
}
