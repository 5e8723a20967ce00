package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"album-service/apperrors"
	"album-service/models"
	"album-service/realtime"
	"album-service/store"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LikesController struct {
	media  store.MediaStore
	events realtime.Publisher
	log    *logrus.Entry
}

func NewLikesController(media store.MediaStore, events realtime.Publisher, log *logrus.Entry) *LikesController {
	return &LikesController{media: media, events: events, log: log}
}

type likeBody struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// ToggleLike flips the caller's like on a media item and returns the new
// count. Registered users identify by account id, guests by free-text
// name.
func (c *LikesController) ToggleLike() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		body := likeBody{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			messageJSON(rw, http.StatusBadRequest, "Identifier (userId/username) must be provided.")
			return
		}

		var liker models.LikerIdentity
		if body.UserID != "" {
			accountID, err := primitive.ObjectIDFromHex(body.UserID)
			if err != nil {
				messageJSON(rw, http.StatusBadRequest, "Invalid userId.")
				return
			}
			liker = models.RegisteredLiker(accountID)
		} else if body.Username != "" {
			liker = models.GuestLiker(body.Username)
		}
		if liker.IsZero() {
			messageJSON(rw, http.StatusBadRequest, "Identifier (userId/username) must be provided.")
			return
		}

		mediaID, err := primitive.ObjectIDFromHex(mux.Vars(r)["mediaId"])
		if err != nil {
			messageJSON(rw, http.StatusNotFound, "Media not found")
			return
		}

		media, err := c.media.FindMediaByID(ctx, mediaID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				messageJSON(rw, http.StatusNotFound, "Media not found")
				return
			}
			c.log.WithError(err).Error("failed to load media for like toggle")
			messageJSON(rw, http.StatusInternalServerError, "Failed to toggle like. Please try again later.")
			return
		}

		liked, count, err := c.media.ToggleLike(ctx, mediaID, liker.Key())
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				messageJSON(rw, http.StatusNotFound, "Media not found")
				return
			}
			c.log.WithError(err).Error("failed to toggle like")
			messageJSON(rw, http.StatusInternalServerError, "Failed to toggle like. Please try again later.")
			return
		}

		event := realtime.EventMediaUnliked
		if liked {
			event = realtime.EventMediaLiked
		}
		c.events.Publish(media.AlbumID, event, map[string]interface{}{
			"mediaId":   mediaID.Hex(),
			"liker":     liker.Key(),
			"likeCount": count,
		})

		writeJSON(rw, http.StatusOK, map[string]int{"likeCount": count})
	}
}
