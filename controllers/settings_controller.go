package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"album-service/apperrors"
	"album-service/middleware"
	"album-service/models"
	"album-service/realtime"
	"album-service/store"

	"github.com/sirupsen/logrus"
)

type SettingsController struct {
	settings store.SettingsStore
	events   realtime.Publisher
	log      *logrus.Entry
}

func NewSettingsController(settings store.SettingsStore, events realtime.Publisher, log *logrus.Entry) *SettingsController {
	return &SettingsController{settings: settings, events: events, log: log}
}

// GetSettings returns the album settings for the resolved principal. For
// guests the principal's account id is the album owner's, so the same
// lookup serves both roles.
func (c *SettingsController) GetSettings() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		principal, _ := middleware.PrincipalFrom(r.Context())

		settings, err := c.settings.FindSettingsByUser(ctx, principal.AccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				messageJSON(rw, http.StatusNotFound, "Settings not found.")
				return
			}
			c.log.WithError(err).Error("failed to fetch settings")
			messageJSON(rw, http.StatusInternalServerError, "Server error.")
			return
		}
		writeJSON(rw, http.StatusOK, settings)
	}
}

// UpdateSettings upserts the account's settings document wholesale.
func (c *SettingsController) UpdateSettings() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		principal, _ := middleware.PrincipalFrom(r.Context())

		settings := models.Settings{}
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			messageJSON(rw, http.StatusBadRequest, "Validation error")
			return
		}
		settings.UserID = principal.AccountID

		saved, err := c.settings.UpsertSettings(ctx, &settings)
		if err != nil {
			c.log.WithError(err).Error("failed to update settings")
			messageJSON(rw, http.StatusInternalServerError, "Server error")
			return
		}

		c.events.Publish(principal.AlbumID, realtime.EventSettingsUpdated, saved)

		writeJSON(rw, http.StatusOK, saved)
	}
}

// DeleteSettings removes the account's settings document.
func (c *SettingsController) DeleteSettings() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		principal, _ := middleware.PrincipalFrom(r.Context())

		if err := c.settings.DeleteSettings(ctx, principal.AccountID); err != nil {
			c.log.WithError(err).Error("failed to delete settings")
			messageJSON(rw, http.StatusInternalServerError, "Server error.")
			return
		}

		c.events.Publish(principal.AlbumID, realtime.EventSettingsDeleted, map[string]string{
			"userId": principal.AccountID.Hex(),
		})

		messageJSON(rw, http.StatusOK, "Settings deleted.")
	}
}
