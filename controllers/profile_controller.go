package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"album-service/apperrors"
	"album-service/middleware"
	"album-service/storage"
	"album-service/store"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Avatars are small; anything else is rejected before touching storage.
var allowedAvatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

type ProfileController struct {
	accounts store.AccountStore
	gateway  storage.Gateway
	log      *logrus.Entry
}

func NewProfileController(accounts store.AccountStore, gateway storage.Gateway, log *logrus.Entry) *ProfileController {
	return &ProfileController{accounts: accounts, gateway: gateway, log: log}
}

// UploadProfilePicture replaces the account's avatar: the previous storage
// object is removed, the new one lands under the profiles/ prefix and its
// URL is persisted on the account.
func (c *ProfileController) UploadProfilePicture() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), uploadTimeout)
		defer cancel()

		principal, _ := middleware.PrincipalFrom(r.Context())
		ownerID := principal.AccountID

		r.Body = http.MaxBytesReader(rw, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			errorJSON(rw, http.StatusBadRequest, "No profile picture provided.")
			return
		}

		file, header, err := r.FormFile("profilePic")
		if err != nil {
			errorJSON(rw, http.StatusBadRequest, "No profile picture provided.")
			return
		}
		defer file.Close()

		data := &bytes.Buffer{}
		if _, err := data.ReadFrom(file); err != nil {
			c.log.WithError(err).Error("failed to read avatar body")
			errorJSON(rw, http.StatusInternalServerError, "Server error during profile picture upload.")
			return
		}
		fileBytes := data.Bytes()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = mimetype.Detect(fileBytes).String()
		}
		if !allowedAvatarTypes[contentType] {
			errorJSON(rw, http.StatusBadRequest, "Invalid file type. Please upload an image.")
			return
		}

		account, err := c.accounts.FindAccountByID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				messageJSON(rw, http.StatusNotFound, "User not found.")
				return
			}
			c.log.WithError(err).Error("failed to load account for avatar upload")
			errorJSON(rw, http.StatusInternalServerError, "Server error during profile picture upload.")
			return
		}

		// Replace, don't accumulate: one avatar object per account.
		if account.ProfilePicURL != "" {
			oldKey := storage.ProfileKey(ownerID.Hex(), storage.FilenameFromURL(account.ProfilePicURL))
			if err := c.gateway.Delete(ctx, oldKey); err != nil {
				c.log.WithError(err).WithField("key", oldKey).Error("failed to delete previous avatar")
			}
		}

		key := storage.ProfileKey(ownerID.Hex(), uuid.NewString()+"-"+header.Filename)
		url, err := c.gateway.Put(ctx, key, contentType, bytes.NewReader(fileBytes))
		if err != nil {
			c.log.WithError(err).WithField("key", key).Error("failed to upload avatar")
			errorJSON(rw, http.StatusInternalServerError, "Server error during profile picture upload.")
			return
		}

		if err := c.accounts.SetProfilePicURL(ctx, ownerID, url); err != nil {
			c.log.WithError(err).Error("failed to persist avatar url")
			errorJSON(rw, http.StatusInternalServerError, "Server error during profile picture upload.")
			return
		}

		writeJSON(rw, http.StatusOK, map[string]string{"profilePicUrl": url})
	}
}

// GetProfilePicture returns the album owner's avatar URL. Guests resolve
// through the owner's account id carried on their principal, so the same
// lookup serves both roles.
func (c *ProfileController) GetProfilePicture() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		principal, _ := middleware.PrincipalFrom(r.Context())

		account, err := c.accounts.FindAccountByID(ctx, principal.AccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				messageJSON(rw, http.StatusNotFound, "User not found.")
				return
			}
			c.log.WithError(err).Error("failed to load account for avatar fetch")
			messageJSON(rw, http.StatusInternalServerError, "Server error.")
			return
		}

		if account.ProfilePicURL == "" {
			messageJSON(rw, http.StatusNotFound, "Profile picture not found.")
			return
		}

		writeJSON(rw, http.StatusOK, map[string]string{"profilePicUrl": account.ProfilePicURL})
	}
}
