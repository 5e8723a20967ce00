package routes

import (
	"album-service/controllers"
	"album-service/middleware"
	"album-service/models"

	"github.com/gorilla/mux"
)

func ProfileRoutes(router *mux.Router, auth *middleware.Authenticator, profile *controllers.ProfileController) {
	router.Handle("/api/profile-picture/profile", auth.Middleware(middleware.RequireRole(models.RoleAdmin)(profile.UploadProfilePicture()))).Methods("POST")
	router.Handle("/api/profile-picture/profile", auth.Middleware(profile.GetProfilePicture())).Methods("GET")
}
