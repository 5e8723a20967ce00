package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"album-service/middleware"
	"album-service/models"
	"album-service/notify"
	"album-service/realtime"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newMediaController(media *fakeMediaStore, accounts *fakeAccountStore, gateway *fakeGateway, events *fakePublisher) *MediaController {
	return NewMediaController(media, accounts, gateway, events, notify.NewNotifier(nil, "", testLogger()), testLogger())
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func multipartUpload(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="mediaFile"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func adminRequest(req *http.Request, accountID primitive.ObjectID, albumID string) *http.Request {
	return req.WithContext(middleware.WithPrincipal(req.Context(), &middleware.Principal{
		Role:      models.RoleAdmin,
		AccountID: accountID,
		AlbumID:   albumID,
	}))
}

func guestRequest(req *http.Request, accountID primitive.ObjectID, albumID string) *http.Request {
	return req.WithContext(middleware.WithPrincipal(req.Context(), &middleware.Principal{
		Role:      models.RoleGuest,
		AccountID: accountID,
		AlbumID:   albumID,
	}))
}

func TestUploadMediaImage(t *testing.T) {
	media := &fakeMediaStore{}
	accounts := newFakeAccountStore()
	gateway := newFakeGateway()
	events := &fakePublisher{}
	ctrl := newMediaController(media, accounts, gateway, events)

	owner := primitive.NewObjectID()
	body, contentType := multipartUpload(t, "sunset.png", "image/png", pngBytes(t, 300, 200))

	req := httptest.NewRequest(http.MethodPost, "/api/album-media/upload-media", body)
	req.Header.Set("Content-Type", contentType)
	req = adminRequest(req, owner, "album-1")

	rec := httptest.NewRecorder()
	ctrl.UploadMedia()(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	resp := struct {
		MediaURL     string `json:"mediaUrl"`
		ThumbnailURL string `json:"thumbnailUrl"`
		AlbumID      string `json:"albumId"`
		Orientation  string `json:"orientation"`
	}{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.AlbumID != "album-1" {
		t.Errorf("albumId = %q, want album-1", resp.AlbumID)
	}
	if resp.Orientation != models.OrientationLandscape {
		t.Errorf("orientation = %q, want %q", resp.Orientation, models.OrientationLandscape)
	}
	if resp.ThumbnailURL == resp.MediaURL {
		t.Error("image upload must produce a distinct thumbnail URL")
	}
	if !strings.Contains(resp.ThumbnailURL, "/thumbnails/") {
		t.Errorf("thumbnail URL %q not under thumbnails prefix", resp.ThumbnailURL)
	}
	if !strings.Contains(resp.MediaURL, owner.Hex()+"/album-1/") {
		t.Errorf("media URL %q missing owner/album key prefix", resp.MediaURL)
	}

	if len(gateway.puts) != 2 {
		t.Errorf("stored %d objects, want 2 (original + thumbnail)", len(gateway.puts))
	}
	if len(media.items) != 1 {
		t.Fatalf("persisted %d records, want 1", len(media.items))
	}
	if media.items[0].MediaType != models.MediaTypeImage {
		t.Errorf("mediaType = %q, want image", media.items[0].MediaType)
	}
	if accounts.adjustments != 1 {
		t.Errorf("media counter delta = %d, want 1", accounts.adjustments)
	}

	event, ok := events.last()
	if !ok || event.Event != realtime.EventMediaUploaded || event.AlbumID != "album-1" {
		t.Errorf("published event = %+v, want media_uploaded in album-1", event)
	}
}

func TestUploadMediaVideo(t *testing.T) {
	media := &fakeMediaStore{}
	gateway := newFakeGateway()
	events := &fakePublisher{}
	ctrl := newMediaController(media, newFakeAccountStore(), gateway, events)

	body, contentType := multipartUpload(t, "clip.mp4", "video/mp4", []byte("not a real mp4"))
	req := httptest.NewRequest(http.MethodPost, "/api/album-media/upload-media", body)
	req.Header.Set("Content-Type", contentType)
	req = adminRequest(req, primitive.NewObjectID(), "album-1")

	rec := httptest.NewRecorder()
	ctrl.UploadMedia()(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	resp := struct {
		MediaURL     string `json:"mediaUrl"`
		ThumbnailURL string `json:"thumbnailUrl"`
	}{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ThumbnailURL != resp.MediaURL {
		t.Errorf("video thumbnailUrl = %q, want the media URL %q", resp.ThumbnailURL, resp.MediaURL)
	}
	if len(gateway.puts) != 1 {
		t.Errorf("stored %d objects, want 1 (no derived thumbnail for video)", len(gateway.puts))
	}
}

func TestUploadMediaNoFile(t *testing.T) {
	ctrl := newMediaController(&fakeMediaStore{}, newFakeAccountStore(), newFakeGateway(), &fakePublisher{})

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	w.WriteField("challengeTitle", "first dance")
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/album-media/upload-media", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req = adminRequest(req, primitive.NewObjectID(), "album-1")

	rec := httptest.NewRecorder()
	ctrl.UploadMedia()(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestUploadMediaUnsupportedType(t *testing.T) {
	gateway := newFakeGateway()
	ctrl := newMediaController(&fakeMediaStore{}, newFakeAccountStore(), gateway, &fakePublisher{})

	body, contentType := multipartUpload(t, "notes.txt", "text/plain", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/album-media/upload-media", body)
	req.Header.Set("Content-Type", contentType)
	req = adminRequest(req, primitive.NewObjectID(), "album-1")

	rec := httptest.NewRecorder()
	ctrl.UploadMedia()(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(gateway.puts) != 0 {
		t.Errorf("stored %d objects for a rejected upload, want 0", len(gateway.puts))
	}
}

func TestGetAlbumMediaPagination(t *testing.T) {
	media := &fakeMediaStore{}
	ctrl := newMediaController(media, newFakeAccountStore(), newFakeGateway(), &fakePublisher{})

	owner := primitive.NewObjectID()
	for i := 0; i < 45; i++ {
		media.InsertMedia(nil, &models.AlbumMedia{
			MediaURL:  fmt.Sprintf("https://media-bucket.test/%s/album-1/file-%d.jpg", owner.Hex(), i),
			MediaType: models.MediaTypeImage,
			AlbumID:   "album-1",
			UserID:    owner,
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/api/album-media/media/album-1?page=2&limit=20", nil)
	req = mux.SetURLVars(req, map[string]string{"albumId": "album-1"})
	req = adminRequest(req, owner, "album-1")

	rec := httptest.NewRecorder()
	ctrl.GetAlbumMedia()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	resp := struct {
		Media       []models.AlbumMedia `json:"media"`
		CurrentPage int64               `json:"currentPage"`
		TotalPages  int64               `json:"totalPages"`
		TotalItems  int64               `json:"totalItems"`
	}{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(resp.Media) != 20 {
		t.Errorf("page 2 returned %d items, want 20", len(resp.Media))
	}
	if resp.CurrentPage != 2 {
		t.Errorf("currentPage = %d, want 2", resp.CurrentPage)
	}
	if resp.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", resp.TotalPages)
	}
	if resp.TotalItems != 45 {
		t.Errorf("totalItems = %d, want 45", resp.TotalItems)
	}
}

func TestGetAlbumMediaGuestWrongAlbum(t *testing.T) {
	accounts := newFakeAccountStore()
	accounts.add(&models.Account{
		Role:       models.RoleAdmin,
		AlbumID:    "album-1",
		AlbumToken: "token-1",
	})
	ctrl := newMediaController(&fakeMediaStore{}, accounts, newFakeGateway(), &fakePublisher{})

	req := httptest.NewRequest(http.MethodGet, "/api/album-media/media/album-2?token=token-1", nil)
	req = mux.SetURLVars(req, map[string]string{"albumId": "album-2"})
	req = guestRequest(req, primitive.NewObjectID(), "album-1")

	rec := httptest.NewRecorder()
	ctrl.GetAlbumMedia()(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestDeleteMediaNotFound(t *testing.T) {
	gateway := newFakeGateway()
	ctrl := newMediaController(&fakeMediaStore{}, newFakeAccountStore(), gateway, &fakePublisher{})

	req := httptest.NewRequest(http.MethodDelete, "/api/album-media/media/"+primitive.NewObjectID().Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": primitive.NewObjectID().Hex()})
	req = adminRequest(req, primitive.NewObjectID(), "album-1")

	rec := httptest.NewRecorder()
	ctrl.DeleteMedia()(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if len(gateway.deletes) != 0 {
		t.Errorf("issued %d storage deletes for a missing record, want 0", len(gateway.deletes))
	}
}

func TestDeleteMediaSurvivesStorageFailure(t *testing.T) {
	media := &fakeMediaStore{}
	gateway := newFakeGateway()
	gateway.deleteErr = errors.New("s3 unavailable")
	events := &fakePublisher{}
	ctrl := newMediaController(media, newFakeAccountStore(), gateway, events)

	owner := primitive.NewObjectID()
	item := &models.AlbumMedia{
		MediaURL:     "https://media-bucket.test/" + owner.Hex() + "/album-1/abc_photo.jpg",
		ThumbnailURL: "https://media-bucket.test/" + owner.Hex() + "/album-1/thumbnails/abc_photo.jpg",
		MediaType:    models.MediaTypeImage,
		AlbumID:      "album-1",
		UserID:       owner,
	}
	media.InsertMedia(nil, item)

	req := httptest.NewRequest(http.MethodDelete, "/api/album-media/media/"+item.ID.Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": item.ID.Hex()})
	req = adminRequest(req, owner, "album-1")

	rec := httptest.NewRecorder()
	ctrl.DeleteMedia()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if len(media.items) != 0 {
		t.Errorf("record still present after delete, want it gone")
	}
	if len(gateway.deletes) != 2 {
		t.Errorf("attempted %d storage deletes, want 2 (original + thumbnail)", len(gateway.deletes))
	}

	event, ok := events.last()
	if !ok || event.Event != realtime.EventMediaDeleted {
		t.Errorf("published event = %+v, want media_deleted", event)
	}
}

func TestUploadsWithSameFilenameGetDistinctKeys(t *testing.T) {
	media := &fakeMediaStore{}
	gateway := newFakeGateway()
	ctrl := newMediaController(media, newFakeAccountStore(), gateway, &fakePublisher{})

	owner := primitive.NewObjectID()
	for i := 0; i < 2; i++ {
		body, contentType := multipartUpload(t, "photo.png", "image/png", pngBytes(t, 100, 100))
		req := httptest.NewRequest(http.MethodPost, "/api/album-media/upload-media", body)
		req.Header.Set("Content-Type", contentType)
		req = adminRequest(req, owner, "album-1")

		rec := httptest.NewRecorder()
		ctrl.UploadMedia()(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("upload %d: status = %d, body: %s", i, rec.Code, rec.Body.String())
		}
	}

	if len(media.items) != 2 {
		t.Fatalf("persisted %d records, want 2", len(media.items))
	}
	if media.items[0].MediaURL == media.items[1].MediaURL {
		t.Error("two uploads of the same filename share a storage URL")
	}
}
