package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/service"
	"github.com/Dev-vesper/notepad/internal/store"
	"github.com/Dev-vesper/notepad/models"
)

func addTestNote(t *testing.T, router http.Handler, token, content string) models.Note {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/api/notes", models.NoteDraft{Content: content}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[models.Note](t, rec)
}

// ─────────────────────────────────────────────
// list / add
// ─────────────────────────────────────────────

func TestNotes_AddAndList(t *testing.T) {
	router := newRealHandler(t).Init()
	token := registerUser(t, router, "alice")

	rec := doRequest(t, router, http.MethodGet, "/api/notes", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	first := addTestNote(t, router, token, "first")
	second := addTestNote(t, router, token, "second")

	assert.Equal(t, models.NoteID(1), first.ID)
	assert.Equal(t, models.NoteID(2), second.ID)
	assert.NotEmpty(t, first.CreatedAt)
	assert.Empty(t, first.Likes)
	assert.Empty(t, first.Comments)

	notes := decodeBody[[]models.Note](t, doRequest(t, router, http.MethodGet, "/api/notes", nil, token))
	require.Len(t, notes, 2)
	assert.Equal(t, "second", notes[0].Content, "newest note first")
	assert.Equal(t, "first", notes[1].Content)
}

func TestNotes_AddIsAlwaysPrivate(t *testing.T) {
	router := newRealHandler(t).Init()
	token := registerUser(t, router, "alice")

	rec := doRequest(t, router, http.MethodPost, "/api/notes", models.NoteDraft{Content: "hi", Public: true}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.False(t, decodeBody[models.Note](t, rec).Public)
}

func TestNotes_AddRejectsBadInput(t *testing.T) {
	router := newRealHandler(t).Init()
	token := registerUser(t, router, "alice")

	tests := []struct {
		name string
		body any
	}{
		{name: "malformed JSON", body: `{"content":`},
		{name: "empty content", body: models.NoteDraft{Content: ""}},
		{name: "whitespace content", body: models.NoteDraft{Content: "  \n\t "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/notes", tt.body, token)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	notes := decodeBody[[]models.Note](t, doRequest(t, router, http.MethodGet, "/api/notes", nil, token))
	assert.Empty(t, notes)
}

func TestNotes_RequireSession(t *testing.T) {
	router := newRealHandler(t).Init()

	for _, tt := range []struct{ method, path string }{
		{http.MethodGet, "/api/notes"},
		{http.MethodPost, "/api/notes"},
		{http.MethodPost, "/api/notes/1/like"},
		{http.MethodPost, "/api/notes/1/comments"},
	} {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, tt.path, nil, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// likes
// ─────────────────────────────────────────────

func TestNotes_ToggleOwnLike(t *testing.T) {
	router := newRealHandler(t).Init()
	token := registerUser(t, router, "alice")
	note := addTestNote(t, router, token, "hello")

	path := fmt.Sprintf("/api/notes/%d/like", note.ID)

	state := decodeBody[models.LikeState](t, doRequest(t, router, http.MethodPost, path, nil, token))
	assert.Equal(t, models.LikeState{Liked: true, Likes: 1}, state)

	view := decodeBody[models.ProfileView](t, doRequest(t, router, http.MethodGet, "/api/profile/alice", nil, token))
	assert.Equal(t, []string{"1"}, view.LikedNotes)

	state = decodeBody[models.LikeState](t, doRequest(t, router, http.MethodPost, path, nil, token))
	assert.Equal(t, models.LikeState{Liked: false, Likes: 0}, state)

	view = decodeBody[models.ProfileView](t, doRequest(t, router, http.MethodGet, "/api/profile/alice", nil, token))
	assert.Empty(t, view.LikedNotes)
}

func TestNotes_LikeNoteOfAnotherUser(t *testing.T) {
	router := newRealHandler(t).Init()
	aliceToken := registerUser(t, router, "alice")
	bobToken := registerUser(t, router, "bob")
	note := addTestNote(t, router, aliceToken, "hello")

	path := fmt.Sprintf("/api/notes/%d/like?owner=alice", note.ID)
	rec := doRequest(t, router, http.MethodPost, path, nil, bobToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.LikeState{Liked: true, Likes: 1}, decodeBody[models.LikeState](t, rec))

	notes := decodeBody[[]models.Note](t, doRequest(t, router, http.MethodGet, "/api/notes", nil, aliceToken))
	require.Len(t, notes, 1)
	assert.Equal(t, []string{"bob"}, notes[0].Likes)

	bob := decodeBody[models.ProfileView](t, doRequest(t, router, http.MethodGet, "/api/profile/bob", nil, ""))
	assert.Equal(t, []string{"1"}, bob.LikedNotes)
}

func TestNotes_LikeUnknownNote(t *testing.T) {
	router := newRealHandler(t).Init()
	token := registerUser(t, router, "alice")

	tests := []struct {
		name string
		path string
	}{
		{name: "missing note", path: "/api/notes/42/like"},
		{name: "non-numeric id", path: "/api/notes/abc/like"},
		{name: "unknown owner", path: "/api/notes/1/like?owner=nobody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, tt.path, nil, token)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// comments
// ─────────────────────────────────────────────

func TestNotes_AddComment(t *testing.T) {
	router := newRealHandler(t).Init()
	aliceToken := registerUser(t, router, "alice")
	bobToken := registerUser(t, router, "bob")
	note := addTestNote(t, router, aliceToken, "hello")

	// the author always comes from the session
	rec := doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/notes/%d/comments?owner=alice", note.ID),
		models.CommentDraft{Author: "mallory", Text: "nice"}, bobToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	comment := decodeBody[models.Comment](t, rec)
	assert.Equal(t, 1, comment.ID)
	assert.Equal(t, "bob", comment.Author)
	assert.Equal(t, "nice", comment.Text)
	assert.NotEmpty(t, comment.CreatedAt)

	notes := decodeBody[[]models.Note](t, doRequest(t, router, http.MethodGet, "/api/notes", nil, aliceToken))
	require.Len(t, notes, 1)
	require.Len(t, notes[0].Comments, 1)
	assert.Equal(t, comment, notes[0].Comments[0])
}

func TestNotes_AddCommentErrors(t *testing.T) {
	router := newRealHandler(t).Init()
	token := registerUser(t, router, "alice")
	addTestNote(t, router, token, "hello")

	tests := []struct {
		name       string
		path       string
		body       any
		wantStatus int
	}{
		{name: "empty text", path: "/api/notes/1/comments", body: models.CommentDraft{Text: " "}, wantStatus: http.StatusBadRequest},
		{name: "malformed JSON", path: "/api/notes/1/comments", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "missing note", path: "/api/notes/7/comments", body: models.CommentDraft{Text: "hi"}, wantStatus: http.StatusNotFound},
		{name: "unknown owner", path: "/api/notes/1/comments?owner=ghost", body: models.CommentDraft{Text: "hi"}, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, tt.path, tt.body, token)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// error mapping
// ─────────────────────────────────────────────

func TestNotes_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "note not found", err: fmt.Errorf("%w: alice/1", service.ErrNoteNotFound), wantStatus: http.StatusNotFound},
		{name: "user not found", err: store.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid data", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "corrupt document", err: fmt.Errorf("reading notes: %w", store.ErrCorruptDocument), wantStatus: http.StatusInternalServerError},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{NoteService: &mockNoteService{err: tt.err}}, logger.Nop())
			req := withSession(doRequestForHandler(http.MethodGet, "/api/notes"), "alice")

			rec := serve(h.listNotes, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNotes_HandlersWithoutUsername(t *testing.T) {
	h := NewHandler(&service.Services{NoteService: &mockNoteService{}}, logger.Nop())

	for name, fn := range map[string]http.HandlerFunc{
		"listNotes":      h.listNotes,
		"addNote":        h.addNote,
		"toggleNoteLike": h.toggleNoteLike,
		"addNoteComment": h.addNoteComment,
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(fn, doRequestForHandler(http.MethodPost, "/"))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestNoteOwner(t *testing.T) {
	req := doRequestForHandler(http.MethodPost, "/api/notes/1/like")
	assert.Equal(t, "alice", noteOwner(req, "alice"))

	req = doRequestForHandler(http.MethodPost, "/api/notes/1/like?owner=bob")
	assert.Equal(t, "bob", noteOwner(req, "alice"))
}
