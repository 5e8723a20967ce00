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

type CommentsController struct {
	comments store.CommentStore
	media    store.MediaStore
	settings store.SettingsStore
	events   realtime.Publisher
	log      *logrus.Entry
}

func NewCommentsController(comments store.CommentStore, media store.MediaStore, settings store.SettingsStore, events realtime.Publisher, log *logrus.Entry) *CommentsController {
	return &CommentsController{
		comments: comments,
		media:    media,
		settings: settings,
		events:   events,
		log:      log,
	}
}

// AddComment attaches a comment to a media item. Guests are subject to the
// album's allowComments flag.
func (c *CommentsController) AddComment() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		principal, _ := middleware.PrincipalFrom(r.Context())

		mediaID, err := primitive.ObjectIDFromHex(mux.Vars(r)["mediaId"])
		if err != nil {
			messageJSON(rw, http.StatusNotFound, "Media not found")
			return
		}

		body := models.CommentBody{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			messageJSON(rw, http.StatusBadRequest, "Comment text is required")
			return
		}

		author := body.Author
		if principal.IsAdmin() {
			author = principal.AccountID.Hex()
		}
		if author == "" {
			messageJSON(rw, http.StatusBadRequest, "Author is required")
			return
		}

		if !principal.IsAdmin() {
			settings, err := c.settings.FindSettingsByUser(ctx, principal.AccountID)
			if err == nil && !settings.Permissions.AllowComments {
				messageJSON(rw, http.StatusForbidden, "Comments are disabled for this album")
				return
			}
		}

		media, err := c.media.FindMediaByID(ctx, mediaID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				messageJSON(rw, http.StatusNotFound, "Media not found")
				return
			}
			c.log.WithError(err).Error("failed to load media for comment")
			messageJSON(rw, http.StatusInternalServerError, "Error adding comment")
			return
		}

		comment := models.Comment{
			MediaID: mediaID,
			AlbumID: media.AlbumID,
			Author:  author,
			Text:    body.Text,
		}
		if err := c.comments.InsertComment(ctx, &comment); err != nil {
			c.log.WithError(err).Error("failed to save comment")
			messageJSON(rw, http.StatusInternalServerError, "Error adding comment")
			return
		}
		if err := c.media.AttachComment(ctx, mediaID, comment.ID); err != nil {
			c.log.WithError(err).Warn("failed to attach comment reference")
		}

		c.events.Publish(media.AlbumID, realtime.EventCommentAdded, comment)

		writeJSON(rw, http.StatusCreated, comment)
	}
}

// GetAlbumComments lists an album's comments newest-first. Guests may only
// read comments of their own album.
func (c *CommentsController) GetAlbumComments() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		principal, _ := middleware.PrincipalFrom(r.Context())
		albumID := mux.Vars(r)["albumId"]

		if !principal.IsAdmin() && principal.AlbumID != albumID {
			messageJSON(rw, http.StatusForbidden, "Access denied")
			return
		}

		comments, err := c.comments.ListCommentsByAlbum(ctx, albumID)
		if err != nil {
			c.log.WithError(err).Error("failed to fetch comments")
			messageJSON(rw, http.StatusInternalServerError, "Error fetching comments")
			return
		}
		writeJSON(rw, http.StatusOK, map[string]interface{}{"comments": comments})
	}
}

// DeleteComment removes a comment and its reference on the media record.
func (c *CommentsController) DeleteComment() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			messageJSON(rw, http.StatusNotFound, "Comment not found")
			return
		}

		comment, err := c.comments.FindCommentByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				messageJSON(rw, http.StatusNotFound, "Comment not found")
				return
			}
			c.log.WithError(err).Error("failed to load comment")
			messageJSON(rw, http.StatusInternalServerError, "Error deleting comment")
			return
		}

		if err := c.comments.DeleteComment(ctx, id); err != nil {
			c.log.WithError(err).Error("failed to delete comment")
			messageJSON(rw, http.StatusInternalServerError, "Error deleting comment")
			return
		}
		if err := c.media.DetachComment(ctx, comment.MediaID, id); err != nil {
			c.log.WithError(err).Warn("failed to detach comment reference")
		}

		c.events.Publish(comment.AlbumID, realtime.EventCommentDeleted, map[string]string{"id": id.Hex()})

		messageJSON(rw, http.StatusOK, "Comment deleted successfully")
	}
}
