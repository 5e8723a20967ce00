package routes

import (
	"album-service/controllers"
	"album-service/middleware"
	"album-service/models"

	"github.com/gorilla/mux"
)

func MediaRoutes(router *mux.Router, auth *middleware.Authenticator, media *controllers.MediaController) {
	router.Handle("/api/album-media/upload-media", auth.Middleware(media.UploadMedia())).Methods("POST")
	router.Handle("/api/album-media/media/{albumId}", auth.Middleware(media.GetAlbumMedia())).Methods("GET")
	router.Handle("/api/album-media/media/{id}", auth.Middleware(middleware.RequireRole(models.RoleAdmin)(media.DeleteMedia()))).Methods("DELETE")
}
