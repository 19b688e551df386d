package models

import "time"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UserProfile holds per-user display preferences. One row per user,
// created on first access rather than by an event hook.
type UserProfile struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"uniqueIndex;not null"`
	Theme         string    `gorm:"not null;default:light"`
	Notifications bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time
}

func IsValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}
