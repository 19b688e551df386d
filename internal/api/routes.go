package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	api.Get("/dashboard", handler.AuthRequired, handler.GetDashboard)

	activities := api.Group("/activities", handler.AuthRequired)
	activities.Get("/suggest", handler.SuggestNames)
	activities.Get("", handler.GetActivities)
	activities.Post("", handler.LogActivity)
	activities.Delete("", handler.BulkDeleteActivities)
	activities.Put("/:id", handler.UpdateActivity)
	activities.Delete("/:id", handler.DeleteActivity)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("/profile", handler.GetProfile)
	settings.Put("/profile", handler.UpdateProfile)
	settings.Post("/change-password", handler.ChangePassword)
	settings.Post("/clear-data", handler.ClearAllData)
	settings.Delete("/delete-account", handler.DeleteAccount)
}
