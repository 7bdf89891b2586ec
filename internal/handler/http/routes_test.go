package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/service"
	"github.com/Dev-vesper/notepad/models"
)

// ---- Helper ----

// newTestRouter builds the router over fakes: any bearer token is accepted
// as alice and every note/profile call succeeds with zero values.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(&service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(context.Context, string) (models.Token, error) {
				return models.Token{Username: "alice"}, nil
			},
		},
		NoteService:    &mockNoteService{},
		ProfileService: &mockProfileService{},
		AppInfoService: stubAppInfoService("test-version"),
	}, logger.Nop())
	return h.Init()
}

type route struct {
	method string
	path   string
}

var protectedRoutes = []route{
	{http.MethodDelete, "/api/user"},
	{http.MethodGet, "/api/notes"},
	{http.MethodPost, "/api/notes"},
	{http.MethodPost, "/api/notes/1/like"},
	{http.MethodPost, "/api/notes/1/comments"},
	{http.MethodPost, "/api/profile/bob/like"},
	{http.MethodPost, "/api/profile/bob/comments"},
}

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []route{
		{http.MethodPost, "/api/user/register"},
		{http.MethodPost, "/api/user/login"},
		{http.MethodPost, "/api/user/logout"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/profile/bob"},
		{http.MethodGet, "/api/version/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	for _, tt := range protectedRoutes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

// ---- Protected routes: token passes the middleware ----

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	for _, tt := range protectedRoutes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer stub-token")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code)
			assert.NotEqual(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Unknown routes ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/", "/api", "/api/unknown", "/api/notes/1/unknown", "/api/user/settings"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Wrong method: 404 instead of 405 ----

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	tests := []route{
		{http.MethodGet, "/api/user/register"},
		{http.MethodGet, "/api/user/login"},
		{http.MethodPut, "/api/notes"},
		{http.MethodPost, "/api/users"},
		{http.MethodPost, "/api/version/"},
		{http.MethodGet, "/api/notes/1/like"},
		{http.MethodDelete, "/api/profile/bob"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Trace id ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

// ---- Panics in handlers become 500 ----

func TestInit_RecoversPanics(t *testing.T) {
	h := NewHandler(&service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(context.Context, string) (models.Token, error) {
				return models.Token{Username: "alice"}, nil
			},
		},
		// nil NoteService makes the handler panic
	}, logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer stub-token")
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
