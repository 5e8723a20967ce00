package routes

import (
	"album-service/controllers"
	"album-service/middleware"
	"album-service/models"

	"github.com/gorilla/mux"
)

func SettingsRoutes(router *mux.Router, auth *middleware.Authenticator, settings *controllers.SettingsController) {
	router.Handle("/api/settings", auth.Middleware(settings.GetSettings())).Methods("GET")
	router.Handle("/api/settings", auth.Middleware(middleware.RequireRole(models.RoleAdmin)(settings.UpdateSettings()))).Methods("PUT")
	router.Handle("/api/settings", auth.Middleware(middleware.RequireRole(models.RoleAdmin)(settings.DeleteSettings()))).Methods("DELETE")
}
