package routes

import (
	"album-service/controllers"

	"github.com/gorilla/mux"
)

func UserRoutes(router *mux.Router, user *controllers.UserController) {
	router.HandleFunc("/api/user/album-id", user.AlbumIDFromToken()).Methods("GET")
}
