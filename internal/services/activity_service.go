package services

import (
	"errors"
	"time"

	"github.com/verdantlabs/vigor/internal/models"
)

var ErrActivityNotFound = errors.New("activity not found")

type ActivityRepository interface {
	Create(activity *models.Activity) error
	Save(activity *models.Activity) error
	FindForUser(userID uint, activityID uint) (models.Activity, bool, error)
	DeleteForUser(userID uint, activityID uint) (int64, error)
	DeleteByIDsForUser(userID uint, activityIDs []uint) (int64, error)
	DeleteAllForUser(userID uint) error
}

type NameResolver interface {
	Canonicalize(userID uint, candidate string) (string, error)
}

// ActivityService owns the write path of the activity store: logging,
// editing, and deleting, always scoped to the owner.
type ActivityService struct {
	activities ActivityRepository
	names      NameResolver
}

func NewActivityService(activities ActivityRepository, names NameResolver) *ActivityService {
	return &ActivityService{
		activities: activities,
		names:      names,
	}
}

// Log validates the input and stores a new activity under the owner's
// canonical spelling of the name. Validation failures come back as
// field-scoped messages with nothing written.
func (service *ActivityService) Log(userID uint, input ActivityInput, now time.Time) (models.Activity, FieldErrors, error) {
	normalized, fieldErrors := NormalizeActivityInput(input, now)
	if len(fieldErrors) > 0 {
		return models.Activity{}, fieldErrors, nil
	}

	canonicalName, err := service.names.Canonicalize(userID, normalized.Name)
	if err != nil {
		return models.Activity{}, nil, err
	}

	activity := models.Activity{
		UserID:          userID,
		Name:            canonicalName,
		EnergyLevel:     normalized.EnergyLevel,
		DurationMinutes: normalized.DurationMinutes,
		OccurredAt:      normalized.OccurredAt,
	}
	if err := service.activities.Create(&activity); err != nil {
		return models.Activity{}, nil, err
	}
	return activity, nil, nil
}

// Update replaces every user-editable field of an owned activity. A
// missing row and a row owned by someone else both report
// ErrActivityNotFound.
func (service *ActivityService) Update(userID uint, activityID uint, input ActivityInput, now time.Time) (models.Activity, FieldErrors, error) {
	activity, found, err := service.activities.FindForUser(userID, activityID)
	if err != nil {
		return models.Activity{}, nil, err
	}
	if !found {
		return models.Activity{}, nil, ErrActivityNotFound
	}

	normalized, fieldErrors := NormalizeActivityInput(input, now)
	if len(fieldErrors) > 0 {
		return models.Activity{}, fieldErrors, nil
	}

	canonicalName, err := service.names.Canonicalize(userID, normalized.Name)
	if err != nil {
		return models.Activity{}, nil, err
	}

	activity.Name = canonicalName
	activity.EnergyLevel = normalized.EnergyLevel
	activity.DurationMinutes = normalized.DurationMinutes
	activity.OccurredAt = normalized.OccurredAt
	if err := service.activities.Save(&activity); err != nil {
		return models.Activity{}, nil, err
	}
	return activity, nil, nil
}

func (service *ActivityService) Delete(userID uint, activityID uint) error {
	deleted, err := service.activities.DeleteForUser(userID, activityID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrActivityNotFound
	}
	return nil
}

// BulkDelete removes the listed owned activities as one atomic operation
// and reports how many rows went away. IDs that are missing or not owned
// are skipped silently.
func (service *ActivityService) BulkDelete(userID uint, activityIDs []uint) (int64, error) {
	return service.activities.DeleteByIDsForUser(userID, activityIDs)
}

func (service *ActivityService) ClearAll(userID uint) error {
	return service.activities.DeleteAllForUser(userID)
}
