package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"album-service/apperrors"
	"album-service/models"
	"album-service/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Principal is the resolved actor behind a request: a registered admin
// (session cookie) or an anonymous guest holding an album token. Either
// way it carries the album scope every downstream query is partitioned by.
type Principal struct {
	Role      string
	AccountID primitive.ObjectID
	AlbumID   string
}

func (p *Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

type ctxKey int

const principalKey ctxKey = iota

// WithPrincipal attaches a resolved principal to the context. Exported for
// handler tests.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFrom retrieves the principal resolved by the auth middleware.
func PrincipalFrom(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok
}

// SessionCookieName is the cookie carrying the admin JWT.
const SessionCookieName = "token"

// Authenticator resolves the dual credential model: a JWT session cookie
// for admins, or an albumToken query parameter for guests.
type Authenticator struct {
	accounts store.AccountStore
	secret   []byte
	log      *logrus.Entry
}

func NewAuthenticator(accounts store.AccountStore, secret []byte, log *logrus.Entry) *Authenticator {
	return &Authenticator{accounts: accounts, secret: secret, log: log}
}

// Middleware authenticates the request and attaches a Principal, or ends
// the request with the matching auth failure status.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		cookie, _ := r.Cookie(SessionCookieName)
		albumToken := r.URL.Query().Get("token")

		if cookie == nil && albumToken == "" {
			authError(rw, apperrors.ErrUnauthenticated)
			return
		}

		if cookie != nil {
			principal, err := a.resolveSession(r.Context(), cookie.Value)
			if err != nil {
				authError(rw, err)
				return
			}
			next.ServeHTTP(rw, r.WithContext(WithPrincipal(r.Context(), principal)))
			return
		}

		principal, err := a.resolveAlbumToken(r.Context(), albumToken)
		if err != nil {
			authError(rw, err)
			return
		}
		next.ServeHTTP(rw, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

func (a *Authenticator) resolveSession(ctx context.Context, tokenString string) (*Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, apperrors.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}
	userIDHex, _ := claims["userId"].(string)
	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	account, err := a.accounts.FindAccountByID(ctx, userID)
	if err != nil {
		a.log.WithField("userId", userIDHex).Warn("session valid but account missing")
		return nil, apperrors.ErrPrincipalNotFound
	}

	return &Principal{
		Role:      account.Role,
		AccountID: account.ID,
		AlbumID:   account.AlbumID,
	}, nil
}

func (a *Authenticator) resolveAlbumToken(ctx context.Context, albumToken string) (*Principal, error) {
	account, err := a.accounts.FindByAlbumToken(ctx, albumToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// The role is always downgraded to guest, even when the token's
	// account stores role admin. A shared link must never grant admin
	// rights.
	return &Principal{
		Role:      models.RoleGuest,
		AccountID: account.ID,
		AlbumID:   account.AlbumID,
	}, nil
}

// RequireRole gates a handler on the resolved principal's role. Composes
// after Middleware.
func RequireRole(role string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(rw http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFrom(r.Context())
			if !ok || principal.Role != role {
				authError(rw, apperrors.ErrForbidden)
				return
			}
			next(rw, r)
		}
	}
}

func authError(rw http.ResponseWriter, err error) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(apperrors.Status(err))
	json.NewEncoder(rw).Encode(map[string]string{"message": err.Error()})
}
