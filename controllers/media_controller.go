package controllers

import (
	"bytes"
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"

	"album-service/apperrors"
	"album-service/middleware"
	"album-service/models"
	"album-service/notify"
	"album-service/realtime"
	"album-service/storage"
	"album-service/store"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const thumbnailSize = 200

// MediaController owns the ingestion pipeline and the media directory.
type MediaController struct {
	media    store.MediaStore
	accounts store.AccountStore
	gateway  storage.Gateway
	events   realtime.Publisher
	notifier *notify.Notifier
	log      *logrus.Entry
}

func NewMediaController(media store.MediaStore, accounts store.AccountStore, gateway storage.Gateway, events realtime.Publisher, notifier *notify.Notifier, log *logrus.Entry) *MediaController {
	return &MediaController{
		media:    media,
		accounts: accounts,
		gateway:  gateway,
		events:   events,
		notifier: notifier,
		log:      log,
	}
}

type uploadResponse struct {
	MediaURL         string             `json:"mediaUrl"`
	ThumbnailURL     string             `json:"thumbnailUrl"`
	AlbumID          string             `json:"albumId"`
	ID               primitive.ObjectID `json:"_id"`
	ChallengeTitle   string             `json:"challengeTitle,omitempty"`
	UploaderUsername string             `json:"uploaderUsername,omitempty"`
	Orientation      string             `json:"orientation,omitempty"`
}

// UploadMedia ingests one photo or video: validate, upload the original,
// derive a thumbnail for images, persist the record, notify viewers.
func (c *MediaController) UploadMedia() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), uploadTimeout)
		defer cancel()

		principal, ok := middleware.PrincipalFrom(r.Context())
		if !ok {
			messageJSON(rw, http.StatusUnauthorized, "Authentication required")
			return
		}

		// Admins managing several albums may override the target album.
		albumID := principal.AlbumID
		if principal.IsAdmin() && r.URL.Query().Get("albumId") != "" {
			albumID = r.URL.Query().Get("albumId")
		}
		if albumID == "" {
			errorJSON(rw, http.StatusForbidden, "Unable to retrieve albumId.")
			return
		}

		r.Body = http.MaxBytesReader(rw, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			errorJSON(rw, http.StatusBadRequest, "No media file uploaded.")
			return
		}

		file, header, err := r.FormFile("mediaFile")
		if err != nil {
			errorJSON(rw, http.StatusBadRequest, "No media file uploaded.")
			return
		}
		defer file.Close()

		data := &bytes.Buffer{}
		if _, err := data.ReadFrom(file); err != nil {
			c.log.WithError(err).Error("failed to read upload body")
			errorJSON(rw, http.StatusInternalServerError, "Failed to process upload.")
			return
		}
		fileBytes := data.Bytes()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = mimetype.Detect(fileBytes).String()
		}

		var mediaType string
		switch {
		case strings.HasPrefix(contentType, "image"):
			mediaType = models.MediaTypeImage
		case strings.HasPrefix(contentType, "video"):
			mediaType = models.MediaTypeVideo
		default:
			errorJSON(rw, http.StatusBadRequest, "Only image and video uploads are supported.")
			return
		}

		ownerID := principal.AccountID
		uniqueName := storage.UniqueFilename(header.Filename)
		fileKey := storage.MediaKey(ownerID.Hex(), albumID, uniqueName)

		mediaURL, err := c.gateway.Put(ctx, fileKey, contentType, bytes.NewReader(fileBytes))
		if err != nil {
			c.log.WithError(err).WithField("key", fileKey).Error("failed to upload original")
			errorJSON(rw, http.StatusInternalServerError, "Failed to process upload.")
			return
		}

		// Videos get no derived thumbnail; the original URL stands in.
		thumbnailURL := mediaURL
		orientation := ""
		if mediaType == models.MediaTypeImage {
			thumbnailURL, orientation, err = c.uploadThumbnail(ctx, ownerID.Hex(), albumID, uniqueName, fileBytes)
			if err != nil {
				c.log.WithError(err).WithField("key", fileKey).Error("failed to generate thumbnail")
				errorJSON(rw, http.StatusInternalServerError, "Failed to process upload.")
				return
			}
		}

		newMedia := models.AlbumMedia{
			MediaURL:         mediaURL,
			ThumbnailURL:     thumbnailURL,
			MediaType:        mediaType,
			AlbumID:          albumID,
			UserID:           ownerID,
			ChallengeTitle:   r.FormValue("challengeTitle"),
			UploaderUsername: r.FormValue("uploaderUsername"),
			GreetingText:     r.FormValue("greetingText"),
			Orientation:      orientation,
		}
		if err := c.media.InsertMedia(ctx, &newMedia); err != nil {
			c.log.WithError(err).Error("failed to persist media record")
			errorJSON(rw, http.StatusInternalServerError, "Failed to process upload.")
			return
		}

		if err := c.accounts.AdjustMediaCount(ctx, ownerID, mediaType, 1); err != nil {
			c.log.WithError(err).Warn("failed to bump media counter")
		}

		c.events.Publish(albumID, realtime.EventMediaUploaded, newMedia)
		c.notifier.AlbumActivity(ctx, albumID, realtime.EventMediaUploaded, newMedia.ID.Hex(), newMedia.UploaderUsername)

		writeJSON(rw, http.StatusCreated, uploadResponse{
			MediaURL:         mediaURL,
			ThumbnailURL:     thumbnailURL,
			AlbumID:          albumID,
			ID:               newMedia.ID,
			ChallengeTitle:   newMedia.ChallengeTitle,
			UploaderUsername: newMedia.UploaderUsername,
			Orientation:      orientation,
		})
	}
}

// uploadThumbnail decodes the image honoring EXIF orientation, produces a
// fixed-size center-cropped preview and stores it under the thumbnail key.
// Thumbnails are always re-encoded as JPEG.
func (c *MediaController) uploadThumbnail(ctx context.Context, ownerID, albumID, filename string, fileBytes []byte) (string, string, error) {
	src, err := imaging.Decode(bytes.NewReader(fileBytes), imaging.AutoOrientation(true))
	if err != nil {
		return "", "", err
	}

	bounds := src.Bounds()
	orientation := models.OrientationSquare
	switch {
	case bounds.Dx() > bounds.Dy():
		orientation = models.OrientationLandscape
	case bounds.Dy() > bounds.Dx():
		orientation = models.OrientationPortrait
	}

	thumb := imaging.Fill(src, thumbnailSize, thumbnailSize, imaging.Center, imaging.Lanczos)

	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, thumb, imaging.JPEG); err != nil {
		return "", "", err
	}

	thumbnailKey := storage.ThumbnailKey(ownerID, albumID, filename)
	thumbnailURL, err := c.gateway.Put(ctx, thumbnailKey, "image/jpeg", buf)
	if err != nil {
		return "", "", err
	}
	return thumbnailURL, orientation, nil
}

// GetAlbumMedia lists an album's media newest-first with offset pagination.
// Non-admin callers must present a token belonging to the requested album.
func (c *MediaController) GetAlbumMedia() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		principal, ok := middleware.PrincipalFrom(r.Context())
		if !ok {
			messageJSON(rw, http.StatusUnauthorized, "Authentication required")
			return
		}

		albumID := mux.Vars(r)["albumId"]

		page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
		if err != nil || limit < 1 {
			limit = 20
		}

		if !principal.IsAdmin() {
			token := r.URL.Query().Get("token")
			if _, err := c.accounts.FindByAlbumTokenAndAlbum(ctx, token, albumID); err != nil {
				errorJSON(rw, http.StatusForbidden, "Unauthorized access.")
				return
			}
		}

		items, total, err := c.media.ListMediaByAlbum(ctx, albumID, page, limit)
		if err != nil {
			c.log.WithError(err).Error("failed to list album media")
			errorJSON(rw, http.StatusInternalServerError, "Error fetching media")
			return
		}

		writeJSON(rw, http.StatusOK, map[string]interface{}{
			"media":       items,
			"currentPage": page,
			"totalPages":  int64(math.Ceil(float64(total) / float64(limit))),
			"totalItems":  total,
		})
	}
}

// DeleteMedia removes the record and best-effort deletes the storage
// objects. A failed storage delete is logged and swallowed: a dangling
// object is preferable to a delete that cannot complete.
func (c *MediaController) DeleteMedia() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			errorJSON(rw, http.StatusNotFound, "Media not found.")
			return
		}

		media, err := c.media.FindMediaByID(ctx, id)
		if err != nil {
			if err == apperrors.ErrNotFound {
				errorJSON(rw, http.StatusNotFound, "Media not found.")
				return
			}
			c.log.WithError(err).Error("failed to load media for deletion")
			errorJSON(rw, http.StatusInternalServerError, "Error deleting media")
			return
		}

		ownerHex := media.UserID.Hex()
		fileKey := storage.MediaKey(ownerHex, media.AlbumID, storage.FilenameFromURL(media.MediaURL))
		if err := c.gateway.Delete(ctx, fileKey); err != nil {
			c.log.WithError(err).WithField("key", fileKey).Error("failed to delete storage object")
		}
		if media.ThumbnailURL != "" && media.ThumbnailURL != media.MediaURL {
			thumbKey := storage.ThumbnailKey(ownerHex, media.AlbumID, storage.FilenameFromURL(media.ThumbnailURL))
			if err := c.gateway.Delete(ctx, thumbKey); err != nil {
				c.log.WithError(err).WithField("key", thumbKey).Error("failed to delete thumbnail object")
			}
		}

		if err := c.media.DeleteMedia(ctx, id); err != nil {
			if err == apperrors.ErrNotFound {
				errorJSON(rw, http.StatusNotFound, "Media not found.")
				return
			}
			c.log.WithError(err).Error("failed to delete media record")
			errorJSON(rw, http.StatusInternalServerError, "Error deleting media")
			return
		}

		if err := c.accounts.AdjustMediaCount(ctx, media.UserID, media.MediaType, -1); err != nil {
			c.log.WithError(err).Warn("failed to decrement media counter")
		}

		c.events.Publish(media.AlbumID, realtime.EventMediaDeleted, map[string]string{"_id": id.Hex()})

		messageJSON(rw, http.StatusOK, "Media deleted successfully")
	}
}
