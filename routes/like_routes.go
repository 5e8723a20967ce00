package routes

import (
	"album-service/controllers"

	"github.com/gorilla/mux"
)

func LikeRoutes(router *mux.Router, likes *controllers.LikesController) {
	router.HandleFunc("/api/like/{mediaId}", likes.ToggleLike()).Methods("POST")
}
