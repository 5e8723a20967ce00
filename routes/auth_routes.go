package routes

import (
	"album-service/controllers"

	"github.com/gorilla/mux"
)

func AuthRoutes(router *mux.Router, auth *controllers.AuthController) {
	router.HandleFunc("/api/auth/signup", auth.Signup()).Methods("POST")
	router.HandleFunc("/api/auth/login", auth.Login()).Methods("POST")
	router.HandleFunc("/api/auth/logout", auth.Logout()).Methods("POST")
}
