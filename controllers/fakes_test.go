package controllers

import (
	"context"
	"io"
	"sync"
	"time"

	"album-service/apperrors"
	"album-service/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("test", true)
}

type fakeAccountStore struct {
	byID    map[primitive.ObjectID]*models.Account
	byEmail map[string]*models.Account
	byToken map[string]*models.Account

	adjustments int
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{
		byID:    make(map[primitive.ObjectID]*models.Account),
		byEmail: make(map[string]*models.Account),
		byToken: make(map[string]*models.Account),
	}
}

func (f *fakeAccountStore) add(a *models.Account) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	f.byID[a.ID] = a
	if a.Email != "" {
		f.byEmail[a.Email] = a
	}
	if a.AlbumToken != "" {
		f.byToken[a.AlbumToken] = a
	}
}

func (f *fakeAccountStore) CreateAccount(ctx context.Context, account *models.Account) error {
	f.add(account)
	return nil
}

func (f *fakeAccountStore) FindAccountByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeAccountStore) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	if a, ok := f.byEmail[email]; ok {
		return a, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeAccountStore) FindByAlbumToken(ctx context.Context, token string) (*models.Account, error) {
	if a, ok := f.byToken[token]; ok {
		return a, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeAccountStore) FindByAlbumTokenAndAlbum(ctx context.Context, token, albumID string) (*models.Account, error) {
	a, ok := f.byToken[token]
	if !ok || a.AlbumID != albumID {
		return nil, apperrors.ErrNotFound
	}
	return a, nil
}

func (f *fakeAccountStore) AdjustMediaCount(ctx context.Context, id primitive.ObjectID, mediaType string, delta int) error {
	f.adjustments += delta
	return nil
}

func (f *fakeAccountStore) SetProfilePicURL(ctx context.Context, id primitive.ObjectID, url string) error {
	a, ok := f.byID[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	a.ProfilePicURL = url
	return nil
}

func (f *fakeAccountStore) ApplyPackage(ctx context.Context, id primitive.ObjectID, packageID uint, expiresAt time.Time) error {
	a, ok := f.byID[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	a.PackageID = packageID
	a.PackageExpiresAt = expiresAt
	return nil
}

// fakeMediaStore keeps an ordered slice so pagination is deterministic.
type fakeMediaStore struct {
	mu    sync.Mutex
	items []*models.AlbumMedia
}

func (f *fakeMediaStore) InsertMedia(ctx context.Context, media *models.AlbumMedia) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if media.ID.IsZero() {
		media.ID = primitive.NewObjectID()
	}
	if media.CreatedAt.IsZero() {
		media.CreatedAt = time.Now()
	}
	if media.Likes == nil {
		media.Likes = []string{}
	}
	stored := *media
	f.items = append(f.items, &stored)
	return nil
}

func (f *fakeMediaStore) FindMediaByID(ctx context.Context, id primitive.ObjectID) (*models.AlbumMedia, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.items {
		if m.ID == id {
			copied := *m
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeMediaStore) ListMediaByAlbum(ctx context.Context, albumID string, page, limit int64) ([]models.AlbumMedia, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []models.AlbumMedia{}
	for i := len(f.items) - 1; i >= 0; i-- {
		if f.items[i].AlbumID == albumID {
			matched = append(matched, *f.items[i])
		}
	}
	total := int64(len(matched))
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (f *fakeMediaStore) DeleteMedia(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.items {
		if m.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (f *fakeMediaStore) ToggleLike(ctx context.Context, id primitive.ObjectID, identifier string) (bool, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.items {
		if m.ID != id {
			continue
		}
		for i, existing := range m.Likes {
			if existing == identifier {
				m.Likes = append(m.Likes[:i], m.Likes[i+1:]...)
				return false, len(m.Likes), nil
			}
		}
		m.Likes = append(m.Likes, identifier)
		return true, len(m.Likes), nil
	}
	return false, 0, apperrors.ErrNotFound
}

func (f *fakeMediaStore) AttachComment(ctx context.Context, mediaID, commentID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.items {
		if m.ID == mediaID {
			m.Comments = append(m.Comments, commentID)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (f *fakeMediaStore) DetachComment(ctx context.Context, mediaID, commentID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.items {
		if m.ID != mediaID {
			continue
		}
		for i, c := range m.Comments {
			if c == commentID {
				m.Comments = append(m.Comments[:i], m.Comments[i+1:]...)
				return nil
			}
		}
		return nil
	}
	return apperrors.ErrNotFound
}

type fakeGateway struct {
	mu      sync.Mutex
	puts    map[string]string // key -> content type
	deletes []string

	putErr    error
	deleteErr error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{puts: make(map[string]string)}
}

func (g *fakeGateway) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if g.putErr != nil {
		return "", g.putErr
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.puts[key] = contentType
	return g.ObjectURL(key), nil
}

func (g *fakeGateway) Delete(ctx context.Context, key string) error {
	g.mu.Lock()
	g.deletes = append(g.deletes, key)
	g.mu.Unlock()
	return g.deleteErr
}

func (g *fakeGateway) ObjectURL(key string) string {
	return "https://media-bucket.test/" + key
}

type publishedEvent struct {
	AlbumID string
	Event   string
	Payload interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) Publish(albumID, event string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{AlbumID: albumID, Event: event, Payload: payload})
}

func (p *fakePublisher) last() (publishedEvent, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.events) == 0 {
		return publishedEvent{}, false
	}
	return p.events[len(p.events)-1], true
}
