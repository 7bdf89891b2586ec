// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the notepad HTTP API.
//
// [ServerAdapter] hides the transport from callers. Non-2xx responses are
// mapped to the sentinel errors in errors.go so that callers can use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/Dev-vesper/notepad/models"
)

// ServerAdapter talks to a notepad server on behalf of one user session.
// Register and Login store the issued session token; every later call sends
// it as a bearer token.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the current bearer token, or an empty string.
	Token() string

	Register(ctx context.Context, creds models.Credentials) error
	Login(ctx context.Context, creds models.Credentials) error

	// Logout clears the stored token. Tokens are stateless, so the server
	// side only expires the session cookie.
	Logout(ctx context.Context) error

	DeleteAccount(ctx context.Context) error

	// ListNotes returns the notes of the session user, newest first.
	ListNotes(ctx context.Context) ([]models.Note, error)
	AddNote(ctx context.Context, content string) (models.Note, error)

	// ToggleNoteLike toggles the like of the session user on the note of
	// owner. An empty owner means the session user.
	ToggleNoteLike(ctx context.Context, owner, noteID string) (models.LikeState, error)
	AddNoteComment(ctx context.Context, owner, noteID, text string) (models.Comment, error)

	ListUsers(ctx context.Context) ([]string, error)
	ViewProfile(ctx context.Context, username string) (models.ProfileView, error)
	ToggleProfileLike(ctx context.Context, username string) (models.LikeState, error)
	CommentProfile(ctx context.Context, username, text string) (models.ProfileComment, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
