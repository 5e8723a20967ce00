package routes

import (
	"album-service/controllers"
	"album-service/middleware"
	"album-service/models"

	"github.com/gorilla/mux"
)

func ChallengeRoutes(router *mux.Router, auth *middleware.Authenticator, challenges *controllers.ChallengesController) {
	router.Handle("/api/challenges", auth.Middleware(middleware.RequireRole(models.RoleAdmin)(challenges.CreateChallenge()))).Methods("POST")
	router.Handle("/api/challenges", auth.Middleware(middleware.RequireRole(models.RoleAdmin)(challenges.ListChallenges()))).Methods("GET")
	router.HandleFunc("/api/challenges/public/{token}", challenges.ListPublicChallenges()).Methods("GET")
	router.Handle("/api/challenges/{id}", auth.Middleware(middleware.RequireRole(models.RoleAdmin)(challenges.DeleteChallenge()))).Methods("DELETE")
}
