package controllers

import (
	"net/http"

	"album-service/middleware"
	"album-service/realtime"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type WSController struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	log      *logrus.Entry
}

func NewWSController(hub *realtime.Hub, log *logrus.Entry) *WSController {
	return &WSController{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browsers connect from the SPA origin; album access is
			// already gated by the auth middleware.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// Serve upgrades the connection and joins the caller to their album room.
// Runs behind the auth middleware, so both admins and token holders can
// subscribe, each only to their own album.
func (c *WSController) Serve() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		principal, ok := middleware.PrincipalFrom(r.Context())
		if !ok || principal.AlbumID == "" {
			messageJSON(rw, http.StatusForbidden, "Access denied")
			return
		}

		conn, err := c.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			c.log.WithError(err).Debug("websocket upgrade failed")
			return
		}

		client := realtime.NewClient(c.hub, conn, principal.AlbumID)
		client.Register()

		go client.WritePump()
		go client.ReadPump()
	}
}
