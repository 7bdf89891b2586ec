// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/service"
	"github.com/Dev-vesper/notepad/internal/store"
	"github.com/Dev-vesper/notepad/models"
)

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{AuthService: auth}, logger.Nop())
}

func stubToken(signed string) models.Token {
	return models.Token{
		SignedString: signed,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

// ─────────────────────────────────────────────
// register / login over the real stack
// ─────────────────────────────────────────────

func TestRegister_StartsSession(t *testing.T) {
	router := newRealHandler(t).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/user/register",
		models.Credentials{Username: "alice", Password: "secret"}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Authorization"), "Bearer "))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, strings.TrimPrefix(rec.Header().Get("Authorization"), "Bearer "), cookie.Value)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	router := newRealHandler(t).Init()
	registerUser(t, router, "alice")

	rec := doRequest(t, router, http.MethodPost, "/api/user/register",
		models.Credentials{Username: "alice", Password: "other"}, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_InvalidInput(t *testing.T) {
	router := newRealHandler(t).Init()

	tests := []struct {
		name string
		body any
	}{
		{name: "malformed JSON", body: `{"username":`},
		{name: "empty body", body: ""},
		{name: "empty password", body: models.Credentials{Username: "alice"}},
		{name: "empty username", body: models.Credentials{Password: "secret"}},
		{name: "username with a slash", body: models.Credentials{Username: "../alice", Password: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/user/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

func TestLogin(t *testing.T) {
	router := newRealHandler(t).Init()
	registerUser(t, router, "alice")

	tests := []struct {
		name       string
		creds      models.Credentials
		wantStatus int
	}{
		{name: "correct password", creds: models.Credentials{Username: "alice", Password: "alice-password"}, wantStatus: http.StatusOK},
		{name: "wrong password", creds: models.Credentials{Username: "alice", Password: "nope"}, wantStatus: http.StatusUnauthorized},
		{name: "unknown user", creds: models.Credentials{Username: "bob", Password: "bob-password"}, wantStatus: http.StatusUnauthorized},
		{name: "empty password", creds: models.Credentials{Username: "alice"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/user/login", tt.creds, "")
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				assert.NotNil(t, sessionCookie(rec))
				assert.NotEmpty(t, rec.Header().Get("Authorization"))
			} else {
				assert.Nil(t, sessionCookie(rec))
			}
		})
	}
}

func TestLogin_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	router := newRealHandler(t).Init()
	registerUser(t, router, "alice")

	wrong := doRequest(t, router, http.MethodPost, "/api/user/login", models.Credentials{Username: "alice", Password: "x"}, "")
	unknown := doRequest(t, router, http.MethodPost, "/api/user/login", models.Credentials{Username: "bob", Password: "x"}, "")

	assert.Equal(t, wrong.Code, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}

// ─────────────────────────────────────────────
// register / login error mapping
// ─────────────────────────────────────────────

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid data", err: fmt.Errorf("%w: bad", service.ErrInvalidDataProvided), wantStatus: http.StatusBadRequest},
		{name: "username taken", err: fmt.Errorf("wrapped: %w", store.ErrUserAlreadyExists), wantStatus: http.StatusConflict},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(t, &mockAuthService{
				registerUserFn: func(context.Context, models.Credentials) (models.Profile, error) {
					return models.Profile{}, tt.err
				},
			})

			rec := doRequest(t, h.Init(), http.MethodPost, "/api/user/register",
				models.Credentials{Username: "alice", Password: "secret"}, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLogin_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid data", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "user not found", err: fmt.Errorf("wrapped: %w", store.ErrUserNotFound), wantStatus: http.StatusUnauthorized},
		{name: "wrong password", err: fmt.Errorf("wrapped: %w", service.ErrWrongPassword), wantStatus: http.StatusUnauthorized},
		{name: "storage failure", err: store.ErrIOFailure, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(t, &mockAuthService{
				loginFn: func(context.Context, models.Credentials) (models.Profile, error) {
					return models.Profile{}, tt.err
				},
			})

			rec := doRequest(t, h.Init(), http.MethodPost, "/api/user/login",
				models.Credentials{Username: "alice", Password: "secret"}, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLogin_CreateTokenFails(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.Profile, error) {
			return models.Profile{Username: creds.Username}, nil
		},
		createTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	})

	rec := doRequest(t, h.Init(), http.MethodPost, "/api/user/login",
		models.Credentials{Username: "alice", Password: "secret"}, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
	assert.Nil(t, sessionCookie(rec))
}

func TestLogin_SessionCarriesTokenExpiry(t *testing.T) {
	token := stubToken("signed.jwt.token")
	h := newHandlerWithAuth(t, &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.Profile, error) {
			return models.Profile{Username: creds.Username}, nil
		},
		createTokenFn: func(_ context.Context, username string) (models.Token, error) {
			assert.Equal(t, "alice", username)
			return token, nil
		},
	})

	rec := doRequest(t, h.Init(), http.MethodPost, "/api/user/login",
		models.Credentials{Username: "alice", Password: "secret"}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get("Authorization"))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed.jwt.token", cookie.Value)
	assert.WithinDuration(t, token.ExpiresAt.Time, cookie.Expires, time.Second)
}

// ─────────────────────────────────────────────
// logout / delete account
// ─────────────────────────────────────────────

func TestLogout_ClearsCookie(t *testing.T) {
	router := newTestHandler().Init()

	rec := doRequest(t, router, http.MethodPost, "/api/user/logout", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestDeleteAccount(t *testing.T) {
	router := newRealHandler(t).Init()
	aliceToken := registerUser(t, router, "alice")
	registerUser(t, router, "bob")

	rec := doRequest(t, router, http.MethodDelete, "/api/user", nil, aliceToken)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sessionCookie(rec))
	assert.Less(t, sessionCookie(rec).MaxAge, 0)

	users := decodeBody[models.UserList](t, doRequest(t, router, http.MethodGet, "/api/users", nil, ""))
	assert.Equal(t, []string{"bob"}, users.Users)

	// the token is still well-formed but the account behind it is gone
	rec = doRequest(t, router, http.MethodGet, "/api/notes", nil, aliceToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/user/login",
		models.Credentials{Username: "alice", Password: "alice-password"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteAccount_RequiresSession(t *testing.T) {
	router := newRealHandler(t).Init()

	rec := doRequest(t, router, http.MethodDelete, "/api/user", nil, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
