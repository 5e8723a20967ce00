package routes

import (
	"album-service/controllers"
	"album-service/middleware"
	"album-service/models"

	"github.com/gorilla/mux"
)

func CommentRoutes(router *mux.Router, auth *middleware.Authenticator, comments *controllers.CommentsController) {
	router.Handle("/api/comments/{mediaId}", auth.Middleware(comments.AddComment())).Methods("POST")
	router.Handle("/api/comments/album/{albumId}", auth.Middleware(comments.GetAlbumComments())).Methods("GET")
	router.Handle("/api/comments/{id}", auth.Middleware(middleware.RequireRole(models.RoleAdmin)(comments.DeleteComment()))).Methods("DELETE")
}
