package routes

import (
	"album-service/controllers"
	"album-service/middleware"

	"github.com/gorilla/mux"
)

func WSRoutes(router *mux.Router, auth *middleware.Authenticator, ws *controllers.WSController) {
	router.Handle("/ws", auth.Middleware(ws.Serve())).Methods("GET")
}
