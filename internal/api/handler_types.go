package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/verdantlabs/vigor/internal/db"
	"github.com/verdantlabs/vigor/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories     *db.Repositories
	authService      *services.AuthService
	activityService  *services.ActivityService
	dashboardService *services.DashboardService
	suggestService   *services.SuggestService
	historyService   *services.HistoryService
	settingsService  *services.SettingsService
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(database)
	canonicalizer := services.NewNameCanonicalizer(repositories.Activities)

	return &Handler{
		db:               database,
		secretKey:        []byte(secretKey),
		location:         location,
		cookieSecure:     cookieSecure,
		repositories:     repositories,
		authService:      services.NewAuthService(repositories.Users),
		activityService:  services.NewActivityService(repositories.Activities, canonicalizer),
		dashboardService: services.NewDashboardService(repositories.Activities),
		suggestService:   services.NewSuggestService(repositories.Activities),
		historyService:   services.NewHistoryService(repositories.Activities),
		settingsService:  services.NewSettingsService(repositories.Users, repositories.Profiles, repositories.Activities),
	}
}
