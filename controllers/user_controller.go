package controllers

import (
	"net/http"

	"album-service/store"

	"github.com/sirupsen/logrus"
)

type UserController struct {
	accounts store.AccountStore
	log      *logrus.Entry
}

func NewUserController(accounts store.AccountStore, log *logrus.Entry) *UserController {
	return &UserController{accounts: accounts, log: log}
}

// AlbumIDFromToken resolves an album token to its albumId so a guest link
// can bootstrap the gallery view.
func (c *UserController) AlbumIDFromToken() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		token := r.URL.Query().Get("token")
		if token == "" {
			messageJSON(rw, http.StatusBadRequest, "Album token is required")
			return
		}

		account, err := c.accounts.FindByAlbumToken(ctx, token)
		if err != nil {
			messageJSON(rw, http.StatusNotFound, "Album not found")
			return
		}

		writeJSON(rw, http.StatusOK, map[string]string{"albumId": account.AlbumID})
	}
}
