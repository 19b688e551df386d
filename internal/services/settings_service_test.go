package services

import (
	"errors"
	"testing"

	"github.com/verdantlabs/vigor/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type stubSettingsUsers struct {
	user            models.User
	updatedHash     string
	deletedAccounts []uint
}

func (stub *stubSettingsUsers) FindByID(uint) (models.User, error) {
	return stub.user, nil
}

func (stub *stubSettingsUsers) UpdatePassword(_ uint, passwordHash string) error {
	stub.updatedHash = passwordHash
	return nil
}

func (stub *stubSettingsUsers) DeleteAccountAndRelatedData(userID uint) error {
	stub.deletedAccounts = append(stub.deletedAccounts, userID)
	return nil
}

type stubSettingsProfiles struct {
	profile models.UserProfile
	ensured int
}

func (stub *stubSettingsProfiles) Ensure(userID uint) (models.UserProfile, error) {
	stub.ensured++
	if stub.profile.UserID == 0 {
		stub.profile = models.UserProfile{UserID: userID, Theme: models.ThemeLight, Notifications: true}
	}
	return stub.profile, nil
}

func (stub *stubSettingsProfiles) UpdatePreferences(_ uint, theme string, notifications bool) error {
	stub.profile.Theme = theme
	stub.profile.Notifications = notifications
	return nil
}

type stubSettingsActivities struct {
	clearedUsers []uint
}

func (stub *stubSettingsActivities) DeleteAllForUser(userID uint) error {
	stub.clearedUsers = append(stub.clearedUsers, userID)
	return nil
}

func hashedPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func TestProfileIsCreatedOnFirstAccess(t *testing.T) {
	profiles := &stubSettingsProfiles{}
	service := NewSettingsService(&stubSettingsUsers{}, profiles, &stubSettingsActivities{})

	profile, err := service.Profile(7)
	if err != nil {
		t.Fatalf("Profile() unexpected error: %v", err)
	}
	if profile.Theme != models.ThemeLight || !profile.Notifications {
		t.Fatalf("expected default profile, got %+v", profile)
	}
	if profiles.ensured != 1 {
		t.Fatalf("expected one ensure call, got %d", profiles.ensured)
	}
}

func TestUpdateProfileRejectsUnknownTheme(t *testing.T) {
	service := NewSettingsService(&stubSettingsUsers{}, &stubSettingsProfiles{}, &stubSettingsActivities{})

	if _, err := service.UpdateProfile(7, "solarized", true); !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
}

func TestUpdateProfilePersistsPreferences(t *testing.T) {
	profiles := &stubSettingsProfiles{}
	service := NewSettingsService(&stubSettingsUsers{}, profiles, &stubSettingsActivities{})

	profile, err := service.UpdateProfile(7, models.ThemeDark, false)
	if err != nil {
		t.Fatalf("UpdateProfile() unexpected error: %v", err)
	}
	if profile.Theme != models.ThemeDark || profile.Notifications {
		t.Fatalf("expected dark theme without notifications, got %+v", profile)
	}
}

func TestChangePasswordRejectsWrongCurrentPassword(t *testing.T) {
	users := &stubSettingsUsers{user: models.User{ID: 7, PasswordHash: hashedPassword(t, "OldPass1x")}}
	service := NewSettingsService(users, &stubSettingsProfiles{}, &stubSettingsActivities{})

	err := service.ChangePassword(7, "wrong", "NewPass1x")
	if !errors.Is(err, ErrSettingsPasswordInvalid) {
		t.Fatalf("expected ErrSettingsPasswordInvalid, got %v", err)
	}
	if users.updatedHash != "" {
		t.Fatal("password must not be updated on a failed check")
	}
}

func TestChangePasswordRejectsWeakNewPassword(t *testing.T) {
	users := &stubSettingsUsers{user: models.User{ID: 7, PasswordHash: hashedPassword(t, "OldPass1x")}}
	service := NewSettingsService(users, &stubSettingsProfiles{}, &stubSettingsActivities{})

	if err := service.ChangePassword(7, "OldPass1x", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestChangePasswordStoresNewHash(t *testing.T) {
	users := &stubSettingsUsers{user: models.User{ID: 7, PasswordHash: hashedPassword(t, "OldPass1x")}}
	service := NewSettingsService(users, &stubSettingsProfiles{}, &stubSettingsActivities{})

	if err := service.ChangePassword(7, "OldPass1x", "NewPass1x"); err != nil {
		t.Fatalf("ChangePassword() unexpected error: %v", err)
	}
	if users.updatedHash == "" {
		t.Fatal("expected new password hash to be stored")
	}
	if bcrypt.CompareHashAndPassword([]byte(users.updatedHash), []byte("NewPass1x")) != nil {
		t.Fatal("stored hash must match the new password")
	}
}

func TestDeleteAccountRequiresPassword(t *testing.T) {
	users := &stubSettingsUsers{user: models.User{ID: 7, PasswordHash: hashedPassword(t, "OldPass1x")}}
	service := NewSettingsService(users, &stubSettingsProfiles{}, &stubSettingsActivities{})

	if err := service.DeleteAccount(7, ""); !errors.Is(err, ErrSettingsPasswordMissing) {
		t.Fatalf("expected ErrSettingsPasswordMissing, got %v", err)
	}
	if err := service.DeleteAccount(7, "OldPass1x"); err != nil {
		t.Fatalf("DeleteAccount() unexpected error: %v", err)
	}
	if len(users.deletedAccounts) != 1 || users.deletedAccounts[0] != 7 {
		t.Fatalf("expected account 7 deleted, got %v", users.deletedAccounts)
	}
}

func TestClearAllDataDelegatesToActivityStore(t *testing.T) {
	activities := &stubSettingsActivities{}
	service := NewSettingsService(&stubSettingsUsers{}, &stubSettingsProfiles{}, activities)

	if err := service.ClearAllData(7); err != nil {
		t.Fatalf("ClearAllData() unexpected error: %v", err)
	}
	if len(activities.clearedUsers) != 1 || activities.clearedUsers[0] != 7 {
		t.Fatalf("expected user 7 cleared, got %v", activities.clearedUsers)
	}
}
