package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/utils"
	"github.com/Dev-vesper/notepad/models"
	"github.com/go-resty/resty/v2"
)

// Config configures the HTTP adapter.
type Config struct {
	// Address of the notepad server, with or without a scheme.
	Address        string
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// The session cookie issued by the server is ignored; the adapter
// authenticates with the bearer token only.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg Config, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetCookieJar(nil).
		SetLogger(restyLogger{log})

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. POST /api/user/register.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) error {
	return h.startSession(ctx, "/api/user/register", creds)
}

// Login implements [ServerAdapter]. POST /api/user/login.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) error {
	return h.startSession(ctx, "/api/user/login", creds)
}

func (h *httpServerAdapter) startSession(ctx context.Context, path string, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("username", creds.Username).Msg("session started")
	return nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/user/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

// DeleteAccount implements [ServerAdapter]. The stored token is cleared on
// success.
func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/user")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	resp, err := h.authedRequest(ctx).
		SetResult(&notes).
		Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

// AddNote implements [ServerAdapter]. New notes are always private.
func (h *httpServerAdapter) AddNote(ctx context.Context, content string) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NoteDraft{Content: content}).
		SetResult(&note).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("add note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) ToggleNoteLike(ctx context.Context, owner, noteID string) (models.LikeState, error) {
	var state models.LikeState

	resp, err := h.noteRequest(ctx, owner, noteID).
		SetResult(&state).
		Post("/api/notes/{noteID}/like")
	if err != nil {
		return models.LikeState{}, fmt.Errorf("toggle note like request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LikeState{}, err
	}

	return state, nil
}

func (h *httpServerAdapter) AddNoteComment(ctx context.Context, owner, noteID, text string) (models.Comment, error) {
	var comment models.Comment

	resp, err := h.noteRequest(ctx, owner, noteID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CommentDraft{Text: text}).
		SetResult(&comment).
		Post("/api/notes/{noteID}/comments")
	if err != nil {
		return models.Comment{}, fmt.Errorf("add note comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]string, error) {
	var list models.UserList

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&list).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.Users, nil
}

// ViewProfile implements [ServerAdapter]. The token is sent when present so
// that the viewer-specific flags are filled in.
func (h *httpServerAdapter) ViewProfile(ctx context.Context, username string) (models.ProfileView, error) {
	var view models.ProfileView

	resp, err := h.authedRequest(ctx).
		SetPathParam("username", username).
		SetResult(&view).
		Get("/api/profile/{username}")
	if err != nil {
		return models.ProfileView{}, fmt.Errorf("view profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileView{}, err
	}

	return view, nil
}

func (h *httpServerAdapter) ToggleProfileLike(ctx context.Context, username string) (models.LikeState, error) {
	var state models.LikeState

	resp, err := h.authedRequest(ctx).
		SetPathParam("username", username).
		SetResult(&state).
		Post("/api/profile/{username}/like")
	if err != nil {
		return models.LikeState{}, fmt.Errorf("toggle profile like request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LikeState{}, err
	}

	return state, nil
}

func (h *httpServerAdapter) CommentProfile(ctx context.Context, username, text string) (models.ProfileComment, error) {
	var comment models.ProfileComment

	resp, err := h.authedRequest(ctx).
		SetPathParam("username", username).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ProfileComment{Text: text}).
		SetResult(&comment).
		Post("/api/profile/{username}/comments")
	if err != nil {
		return models.ProfileComment{}, fmt.Errorf("comment profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileComment{}, err
	}

	return comment, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) noteRequest(ctx context.Context, owner, noteID string) *resty.Request {
	req := h.authedRequest(ctx).SetPathParam("noteID", noteID)
	if owner != "" {
		req.SetQueryParam("owner", owner)
	}
	return req
}

// restyLogger routes resty's own diagnostics into the zerolog logger.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msgf(format, v...)
}
