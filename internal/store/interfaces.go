// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/Dev-vesper/notepad/models"
)

// DocumentKind names one of the two documents kept per user.
type DocumentKind string

const (
	// ProfileDocument holds the [models.Profile] of the user.
	ProfileDocument DocumentKind = "profile"

	// NotesDocument holds the ordered list of the user's [models.Note].
	NotesDocument DocumentKind = "notes"
)

// DocumentBackend persists raw per-user documents. Implementations do not
// lock; serialization of read-modify-write cycles is done by the
// [DocumentStorage] on top of them.
type DocumentBackend interface {
	// UserExists reports whether the user has been created.
	UserExists(ctx context.Context, username string) (bool, error)

	// CreateUser registers the user. Returns [ErrUserAlreadyExists] when the
	// user is already present; the existing documents are left untouched.
	CreateUser(ctx context.Context, username string) error

	// ReadDocument returns the raw document. Returns [ErrDocumentNotFound]
	// when it has never been written.
	ReadDocument(ctx context.Context, username string, kind DocumentKind) ([]byte, error)

	// WriteDocument replaces the document as a whole. Readers observe either
	// the old or the new content, never a mix of both.
	WriteDocument(ctx context.Context, username string, kind DocumentKind, data []byte) error

	// DeleteUser removes the user with all documents. Deleting a missing
	// user is a no-op.
	DeleteUser(ctx context.Context, username string) error

	// ListUsers returns the usernames of all created users in no particular
	// order.
	ListUsers(ctx context.Context) ([]string, error)

	// Close releases the resources held by the backend.
	Close() error
}

// DocumentStorage is the entry point of the store. It hands out per-user
// repositories and runs multi-user read-modify-write cycles under the locks
// of every involved user.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/store.go -package=mock
type DocumentStorage interface {
	// ForUser returns the repository of username. When createIfMissing is set
	// the user and both documents are created as needed, otherwise a missing
	// user yields [ErrUserNotFound].
	ForUser(ctx context.Context, username string, createIfMissing bool) (UserStorage, error)

	// CreateUser registers a new user with the given profile. The notes
	// document starts empty. Returns [ErrUserAlreadyExists] for a taken
	// username.
	CreateUser(ctx context.Context, profile models.Profile) (UserStorage, error)

	// UserExists reports whether username has been registered.
	UserExists(ctx context.Context, username string) (bool, error)

	// ListUsers returns every registered username in lexical order.
	ListUsers(ctx context.Context) ([]string, error)

	// DeleteUser removes the user and both documents. No-op when absent.
	DeleteUser(ctx context.Context, username string) error

	// Update locks every listed user, runs fn and persists each document fn
	// changed. Nothing is written when fn returns an error.
	Update(ctx context.Context, usernames []string, fn func(tx DocumentTx) error) error

	// View locks the listed users and runs fn without persisting anything.
	View(ctx context.Context, usernames []string, fn func(tx DocumentTx) error) error
}

// DocumentTx gives access to the documents of the users locked by
// [DocumentStorage.Update] or [DocumentStorage.View]. Documents are loaded
// lazily and at most once per transaction.
type DocumentTx interface {
	// Profile returns the profile of username for in-place modification.
	Profile(username string) (*models.Profile, error)

	// PutProfile replaces the profile of username without reading it first.
	PutProfile(username string, profile models.Profile) error

	// Notes returns the notes of username for in-place modification.
	Notes(username string) (*[]models.Note, error)

	// Now returns the timestamp to stamp new records with.
	Now() string
}

// UserStorage is the repository of a single user's profile and notes.
type UserStorage interface {
	// Username returns the user this repository is bound to.
	Username() string

	GetProfile(ctx context.Context) (models.Profile, error)

	// UpdateProfile overwrites the whole profile document. Missing list
	// fields are persisted as empty lists.
	UpdateProfile(ctx context.Context, profile models.Profile) error

	// LikeProfile adds liker to the profile likes. Idempotent.
	LikeProfile(ctx context.Context, liker string) error

	// UnlikeProfile removes liker from the profile likes. Idempotent.
	UnlikeProfile(ctx context.Context, liker string) error

	AddProfileComment(ctx context.Context, author, text string) (models.ProfileComment, error)

	// GetNotes returns every note in insertion order.
	GetNotes(ctx context.Context) ([]models.Note, error)

	// GetNote looks a note up by the decimal form of its identifier. A
	// missing note is reported with ok == false, not with an error.
	GetNote(ctx context.Context, noteID string) (note models.Note, ok bool, err error)

	// AddNote appends a note with id len(notes)+1.
	AddNote(ctx context.Context, draft models.NoteDraft) (models.Note, error)

	// UpdateNote shallow-merges patch into the note and returns the result.
	UpdateNote(ctx context.Context, noteID string, patch models.NotePatch) (note models.Note, ok bool, err error)

	// AddComment appends a comment with id len(comments)+1 to the note.
	AddComment(ctx context.Context, noteID string, draft models.CommentDraft) (comment models.Comment, ok bool, err error)

	// Mutate runs one read-modify-write cycle over both documents.
	Mutate(ctx context.Context, fn func(profile *models.Profile, notes *[]models.Note) error) error
}
