package models

import "time"

// Energy levels describe how draining or energizing an activity felt.
// Zero ("neutral") is not a storable value; the category slot only exists
// for aggregation output.
const (
	EnergyVeryDraining   = -2
	EnergyDraining       = -1
	EnergyEnergizing     = 1
	EnergyVeryEnergizing = 2
)

// EnergyCategories is the ordered key set of duration aggregation buckets.
// The zero slot stays empty under the current energy domain but is kept so
// downstream consumers see a stable key set.
var EnergyCategories = []int{-2, -1, 0, 1, 2}

const (
	MaxActivityNameLength = 100
	MinDurationMinutes    = 1
	MaxDurationMinutes    = 1440
)

type Activity struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"not null;index:idx_activities_user_occurred"`
	Name            string    `gorm:"size:100;not null"`
	EnergyLevel     int       `gorm:"not null"`
	DurationMinutes int       `gorm:"not null"`
	OccurredAt      time.Time `gorm:"not null;index:idx_activities_user_occurred"`
	RecordedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func IsValidEnergyLevel(level int) bool {
	switch level {
	case EnergyVeryDraining, EnergyDraining, EnergyEnergizing, EnergyVeryEnergizing:
		return true
	default:
		return false
	}
}
