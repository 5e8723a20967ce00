package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"album-service/apperrors"
	"album-service/configs"
	"album-service/middleware"
	"album-service/models"
	"album-service/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 7 * 24 * time.Hour

type AuthController struct {
	accounts store.AccountStore
	secret   []byte
	log      *logrus.Entry
}

func NewAuthController(accounts store.AccountStore, secret []byte, log *logrus.Entry) *AuthController {
	return &AuthController{accounts: accounts, secret: secret, log: log}
}

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Signup registers an admin account. The album identifiers default to
// fresh random values; the albumToken is the secret guests will use.
func (c *AuthController) Signup() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		body := credentialsBody{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" || body.Name == "" {
			messageJSON(rw, http.StatusBadRequest, "Email, password and name are required")
			return
		}

		if _, err := c.accounts.FindAccountByEmail(ctx, body.Email); err == nil {
			messageJSON(rw, http.StatusBadRequest, "User already exists")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			c.log.WithError(err).Error("failed to hash password")
			messageJSON(rw, http.StatusInternalServerError, "Server error")
			return
		}

		account := models.Account{
			Email:      body.Email,
			Password:   string(hash),
			Name:       body.Name,
			Role:       models.RoleAdmin,
			AlbumID:    uuid.NewString(),
			AlbumToken: uuid.NewString(),
		}
		if err := c.accounts.CreateAccount(ctx, &account); err != nil {
			c.log.WithError(err).Error("failed to create account")
			messageJSON(rw, http.StatusInternalServerError, "Server error")
			return
		}

		if err := c.setSessionCookie(rw, account.ID.Hex()); err != nil {
			c.log.WithError(err).Error("failed to issue session token")
			messageJSON(rw, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(rw, http.StatusCreated, account)
	}
}

// Login verifies credentials and issues the session cookie.
func (c *AuthController) Login() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		body := credentialsBody{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" {
			messageJSON(rw, http.StatusBadRequest, "Email and password are required")
			return
		}

		account, err := c.accounts.FindAccountByEmail(ctx, body.Email)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				messageJSON(rw, http.StatusBadRequest, "Invalid credentials")
				return
			}
			c.log.WithError(err).Error("failed to load account")
			messageJSON(rw, http.StatusInternalServerError, "Server error")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(body.Password)); err != nil {
			messageJSON(rw, http.StatusBadRequest, "Invalid credentials")
			return
		}

		if err := c.setSessionCookie(rw, account.ID.Hex()); err != nil {
			c.log.WithError(err).Error("failed to issue session token")
			messageJSON(rw, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(rw, http.StatusOK, account)
	}
}

// Logout clears the session cookie.
func (c *AuthController) Logout() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		http.SetCookie(rw, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
		messageJSON(rw, http.StatusOK, "Logged out successfully")
	}
}

func (c *AuthController) setSessionCookie(rw http.ResponseWriter, userID string) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return err
	}

	http.SetCookie(rw, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   configs.EnvEnvironment() == "production",
		SameSite: http.SameSiteNoneMode,
		MaxAge:   int(sessionTTL.Seconds()),
	})
	return nil
}
