package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/Dev-vesper/notepad/models"
)

// loaded is a document read during a transaction together with its encoded
// form at load time, used to detect changes on commit.
type loaded[T any] struct {
	value   T
	encoded []byte
}

// documentTx is the [DocumentTx] handed to Update and View callbacks. It is
// only valid while the callback runs and only for the locked users.
type documentTx struct {
	ctx     context.Context
	backend DocumentBackend
	now     string
	locked  []string

	profiles map[string]*loaded[models.Profile]
	notes    map[string]*loaded[[]models.Note]
}

func newDocumentTx(ctx context.Context, backend DocumentBackend, now string, locked []string) *documentTx {
	return &documentTx{
		ctx:      ctx,
		backend:  backend,
		now:      now,
		locked:   locked,
		profiles: make(map[string]*loaded[models.Profile]),
		notes:    make(map[string]*loaded[[]models.Note]),
	}
}

func (tx *documentTx) Now() string {
	return tx.now
}

func (tx *documentTx) Profile(username string) (*models.Profile, error) {
	if doc, ok := tx.profiles[username]; ok {
		return &doc.value, nil
	}

	data, err := tx.read(username, ProfileDocument)
	if err != nil {
		return nil, err
	}

	profile, err := decodeProfile(data)
	if err != nil {
		return nil, fmt.Errorf("profile of %q: %w", username, err)
	}

	encoded, err := encodeDocument(profile)
	if err != nil {
		return nil, err
	}

	doc := &loaded[models.Profile]{value: profile, encoded: encoded}
	tx.profiles[username] = doc
	return &doc.value, nil
}

func (tx *documentTx) PutProfile(username string, profile models.Profile) error {
	if err := tx.checkLocked(username); err != nil {
		return err
	}

	exists, err := tx.backend.UserExists(tx.ctx, username)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %q", ErrUserNotFound, username)
	}

	profile.Normalize()
	tx.profiles[username] = &loaded[models.Profile]{value: profile}
	return nil
}

func (tx *documentTx) Notes(username string) (*[]models.Note, error) {
	if doc, ok := tx.notes[username]; ok {
		return &doc.value, nil
	}

	data, err := tx.read(username, NotesDocument)
	if err != nil {
		return nil, err
	}

	notes, err := decodeNotes(data)
	if err != nil {
		return nil, fmt.Errorf("notes of %q: %w", username, err)
	}

	encoded, err := encodeDocument(notes)
	if err != nil {
		return nil, err
	}

	doc := &loaded[[]models.Note]{value: notes, encoded: encoded}
	tx.notes[username] = doc
	return &doc.value, nil
}

// read loads a raw document and tells a missing user apart from a missing
// document.
func (tx *documentTx) read(username string, kind DocumentKind) ([]byte, error) {
	if err := tx.checkLocked(username); err != nil {
		return nil, err
	}

	data, err := tx.backend.ReadDocument(tx.ctx, username, kind)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, ErrDocumentNotFound) {
		return nil, err
	}

	exists, existsErr := tx.backend.UserExists(tx.ctx, username)
	if existsErr != nil {
		return nil, existsErr
	}
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, username)
	}

	return nil, err
}

func (tx *documentTx) checkLocked(username string) error {
	if !slices.Contains(tx.locked, username) {
		return fmt.Errorf("user %q is not part of the transaction", username)
	}
	return nil
}

// commit writes every document whose encoding differs from the one loaded,
// in lexical order of usernames with notes before the profile.
func (tx *documentTx) commit() error {
	for _, username := range slices.Sorted(tx.usernames()) {
		if doc, ok := tx.notes[username]; ok {
			if err := writeIfChanged(tx, username, NotesDocument, doc); err != nil {
				return err
			}
		}
		if doc, ok := tx.profiles[username]; ok {
			doc.value.Normalize()
			if err := writeIfChanged(tx, username, ProfileDocument, doc); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeIfChanged[T any](tx *documentTx, username string, kind DocumentKind, doc *loaded[T]) error {
	encoded, err := encodeDocument(doc.value)
	if err != nil {
		return err
	}
	if doc.encoded != nil && bytes.Equal(encoded, doc.encoded) {
		return nil
	}

	if err := tx.backend.WriteDocument(tx.ctx, username, kind, encoded); err != nil {
		return err
	}
	doc.encoded = encoded
	return nil
}

// usernames yields every user with at least one loaded document once.
func (tx *documentTx) usernames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for username := range tx.notes {
			if !yield(username) {
				return
			}
		}
		for username := range tx.profiles {
			if _, seen := tx.notes[username]; seen {
				continue
			}
			if !yield(username) {
				return
			}
		}
	}
}
