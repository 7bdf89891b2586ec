// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"

	"github.com/Dev-vesper/notepad/models"
)

// userStorage is the [UserStorage] of one user. Every method is a single
// locked read or read-modify-write cycle of the owning [documentStorage].
type userStorage struct {
	username string
	storage  *documentStorage
}

func (u *userStorage) Username() string {
	return u.username
}

func (u *userStorage) users() []string {
	return []string{u.username}
}

func (u *userStorage) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	err := u.storage.View(ctx, u.users(), func(tx DocumentTx) error {
		p, err := tx.Profile(u.username)
		if err != nil {
			return err
		}
		profile = p.Clone()
		return nil
	})

	return profile, err
}

func (u *userStorage) UpdateProfile(ctx context.Context, profile models.Profile) error {
	return u.storage.Update(ctx, u.users(), func(tx DocumentTx) error {
		return tx.PutProfile(u.username, profile.Clone())
	})
}

func (u *userStorage) LikeProfile(ctx context.Context, liker string) error {
	return u.storage.Update(ctx, u.users(), func(tx DocumentTx) error {
		profile, err := tx.Profile(u.username)
		if err != nil {
			return err
		}
		if !slices.Contains(profile.ProfileLikes, liker) {
			profile.ProfileLikes = append(profile.ProfileLikes, liker)
		}
		return nil
	})
}

func (u *userStorage) UnlikeProfile(ctx context.Context, liker string) error {
	return u.storage.Update(ctx, u.users(), func(tx DocumentTx) error {
		profile, err := tx.Profile(u.username)
		if err != nil {
			return err
		}
		profile.ProfileLikes = slices.DeleteFunc(profile.ProfileLikes, func(name string) bool {
			return name == liker
		})
		return nil
	})
}

func (u *userStorage) AddProfileComment(ctx context.Context, author, text string) (models.ProfileComment, error) {
	var comment models.ProfileComment
	err := u.storage.Update(ctx, u.users(), func(tx DocumentTx) error {
		profile, err := tx.Profile(u.username)
		if err != nil {
			return err
		}
		comment = models.ProfileComment{Author: author, Text: text, CreatedAt: tx.Now()}
		profile.ProfileComments = append(profile.ProfileComments, comment)
		return nil
	})

	return comment, err
}

func (u *userStorage) GetNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	err := u.storage.View(ctx, u.users(), func(tx DocumentTx) error {
		loaded, err := tx.Notes(u.username)
		if err != nil {
			return err
		}
		notes = cloneNotes(*loaded)
		return nil
	})

	return notes, err
}

func (u *userStorage) GetNote(ctx context.Context, noteID string) (models.Note, bool, error) {
	var (
		note  models.Note
		found bool
	)
	err := u.storage.View(ctx, u.users(), func(tx DocumentTx) error {
		notes, err := tx.Notes(u.username)
		if err != nil {
			return err
		}
		if i := FindNote(*notes, noteID); i >= 0 {
			note, found = (*notes)[i].Clone(), true
		}
		return nil
	})

	return note, found, err
}

func (u *userStorage) AddNote(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	var note models.Note
	err := u.storage.Update(ctx, u.users(), func(tx DocumentTx) error {
		notes, err := tx.Notes(u.username)
		if err != nil {
			return err
		}
		note = models.Note{
			ID:        models.NoteID(len(*notes) + 1),
			Content:   draft.Content,
			Public:    draft.Public,
			CreatedAt: tx.Now(),
			Likes:     []string{},
			Comments:  []models.Comment{},
		}
		*notes = append(*notes, note)
		return nil
	})

	return note, err
}

func (u *userStorage) UpdateNote(ctx context.Context, noteID string, patch models.NotePatch) (models.Note, bool, error) {
	var (
		note  models.Note
		found bool
	)
	err := u.storage.Update(ctx, u.users(), func(tx DocumentTx) error {
		notes, err := tx.Notes(u.username)
		if err != nil {
			return err
		}
		i := FindNote(*notes, noteID)
		if i < 0 {
			return nil
		}
		(*notes)[i] = patch.Apply((*notes)[i])
		note, found = (*notes)[i].Clone(), true
		return nil
	})

	return note, found, err
}

func (u *userStorage) AddComment(ctx context.Context, noteID string, draft models.CommentDraft) (models.Comment, bool, error) {
	var (
		comment models.Comment
		found   bool
	)
	err := u.storage.Update(ctx, u.users(), func(tx DocumentTx) error {
		notes, err := tx.Notes(u.username)
		if err != nil {
			return err
		}
		i := FindNote(*notes, noteID)
		if i < 0 {
			return nil
		}
		note := &(*notes)[i]
		comment = models.Comment{
			ID:        len(note.Comments) + 1,
			Author:    draft.Author,
			Text:      draft.Text,
			CreatedAt: tx.Now(),
		}
		note.Comments = append(note.Comments, comment)
		found = true
		return nil
	})

	return comment, found, err
}

func (u *userStorage) Mutate(ctx context.Context, fn func(profile *models.Profile, notes *[]models.Note) error) error {
	return u.storage.Update(ctx, u.users(), func(tx DocumentTx) error {
		profile, err := tx.Profile(u.username)
		if err != nil {
			return err
		}
		notes, err := tx.Notes(u.username)
		if err != nil {
			return err
		}
		return fn(profile, notes)
	})
}

// FindNote returns the index of the note whose identifier renders as noteID,
// or -1.
func FindNote(notes []models.Note, noteID string) int {
	return slices.IndexFunc(notes, func(n models.Note) bool {
		return n.ID.String() == noteID
	})
}

func cloneNotes(notes []models.Note) []models.Note {
	out := make([]models.Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}
