package routes

import (
	"album-service/controllers"
	"album-service/middleware"
	"album-service/models"

	"github.com/gorilla/mux"
)

func PackageRoutes(router *mux.Router, auth *middleware.Authenticator, packages *controllers.PackagesController) {
	router.HandleFunc("/api/packages", packages.ListPackages()).Methods("GET")
	router.Handle("/api/packages/apply", auth.Middleware(middleware.RequireRole(models.RoleAdmin)(packages.ApplyPackage()))).Methods("POST")
}
