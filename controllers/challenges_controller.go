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

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChallengesController struct {
	challenges store.ChallengeStore
	accounts   store.AccountStore
	events     realtime.Publisher
	log        *logrus.Entry
}

func NewChallengesController(challenges store.ChallengeStore, accounts store.AccountStore, events realtime.Publisher, log *logrus.Entry) *ChallengesController {
	return &ChallengesController{challenges: challenges, accounts: accounts, events: events, log: log}
}

type challengeBody struct {
	Title   string `json:"title"`
	AlbumID string `json:"albumId"`
}

// CreateChallenge adds a photo prompt to the admin's album.
func (c *ChallengesController) CreateChallenge() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		principal, _ := middleware.PrincipalFrom(r.Context())

		body := challengeBody{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Title == "" {
			messageJSON(rw, http.StatusBadRequest, "Title and albumId are required")
			return
		}
		albumID := body.AlbumID
		if albumID == "" {
			albumID = principal.AlbumID
		}
		if albumID == "" {
			messageJSON(rw, http.StatusBadRequest, "Title and albumId are required")
			return
		}

		challenge := models.Challenge{Title: body.Title, AlbumID: albumID}
		if err := c.challenges.InsertChallenge(ctx, &challenge); err != nil {
			c.log.WithError(err).Error("failed to save challenge")
			messageJSON(rw, http.StatusInternalServerError, "Error creating challenge")
			return
		}

		c.events.Publish(albumID, realtime.EventChallengeCreated, challenge)

		writeJSON(rw, http.StatusCreated, challenge)
	}
}

// ListChallenges returns the admin's own challenges.
func (c *ChallengesController) ListChallenges() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		principal, _ := middleware.PrincipalFrom(r.Context())

		challenges, err := c.challenges.ListChallengesByAlbum(ctx, principal.AlbumID)
		if err != nil {
			c.log.WithError(err).Error("failed to fetch challenges")
			messageJSON(rw, http.StatusInternalServerError, "Error fetching challenges")
			return
		}
		writeJSON(rw, http.StatusOK, challenges)
	}
}

// ListPublicChallenges returns an album's challenges to a token holder.
func (c *ChallengesController) ListPublicChallenges() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		token := mux.Vars(r)["token"]
		if token == "" {
			messageJSON(rw, http.StatusBadRequest, "Album token is required")
			return
		}

		account, err := c.accounts.FindByAlbumToken(ctx, token)
		if err != nil {
			messageJSON(rw, http.StatusNotFound, "Album not found")
			return
		}

		challenges, err := c.challenges.ListChallengesByAlbum(ctx, account.AlbumID)
		if err != nil {
			c.log.WithError(err).Error("failed to fetch challenges for album")
			messageJSON(rw, http.StatusInternalServerError, "Error fetching challenges")
			return
		}
		writeJSON(rw, http.StatusOK, challenges)
	}
}

// DeleteChallenge removes a prompt by id.
func (c *ChallengesController) DeleteChallenge() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			messageJSON(rw, http.StatusNotFound, "Challenge not found")
			return
		}

		challenge, err := c.challenges.DeleteChallenge(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				messageJSON(rw, http.StatusNotFound, "Challenge not found")
				return
			}
			c.log.WithError(err).Error("failed to delete challenge")
			messageJSON(rw, http.StatusInternalServerError, "Error deleting challenge")
			return
		}

		c.events.Publish(challenge.AlbumID, realtime.EventChallengeDeleted, map[string]string{"id": id.Hex()})

		writeJSON(rw, http.StatusOK, map[string]string{
			"message": "Challenge deleted successfully",
			"id":      id.Hex(),
		})
	}
}
