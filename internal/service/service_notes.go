// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/store"
	"github.com/Dev-vesper/notepad/models"
)

type noteService struct {
	storage store.DocumentStorage

	logger *logger.Logger
}

func NewNoteService(storage store.DocumentStorage, logger *logger.Logger) NoteService {
	return &noteService{
		storage: storage,
		logger:  logger,
	}
}

func (n *noteService) ListNotes(ctx context.Context, username string) ([]models.Note, error) {
	user, err := n.storage.ForUser(ctx, username, false)
	if err != nil {
		return nil, err
	}

	notes, err := user.GetNotes(ctx)
	if err != nil {
		logger.FromContextOr(ctx, n.logger).Err(err).Str("func", "*noteService.ListNotes").Str("username", username).Msg("error reading notes")
		return nil, fmt.Errorf("error reading notes: %w", err)
	}

	slices.Reverse(notes)
	return notes, nil
}

func (n *noteService) AddNote(ctx context.Context, username string, draft models.NoteDraft) (models.Note, error) {
	user, err := n.storage.ForUser(ctx, username, false)
	if err != nil {
		return models.Note{}, err
	}

	// notes are created private; public is stored but never read
	draft.Public = false

	note, err := user.AddNote(ctx, draft)
	if err != nil {
		logger.FromContextOr(ctx, n.logger).Err(err).Str("func", "*noteService.AddNote").Str("username", username).Msg("error adding note")
		return models.Note{}, fmt.Errorf("error adding note: %w", err)
	}

	return note, nil
}

func (n *noteService) ToggleNoteLike(ctx context.Context, owner, noteID, liker string) (models.LikeState, error) {
	var state models.LikeState

	err := n.storage.Update(ctx, []string{owner, liker}, func(tx store.DocumentTx) error {
		notes, err := tx.Notes(owner)
		if err != nil {
			return err
		}
		i := store.FindNote(*notes, noteID)
		if i < 0 {
			return fmt.Errorf("%w: %s/%s", ErrNoteNotFound, owner, noteID)
		}
		note := &(*notes)[i]

		profile, err := tx.Profile(liker)
		if err != nil {
			return err
		}

		refs, err := profile.LikedNoteRefs()
		if err != nil {
			return fmt.Errorf("%w: liked note references of %q: %w", store.ErrCorruptDocument, liker, err)
		}

		// liked_notes holds bare ids; the references tell apart equal ids of
		// different owners so that an unlike drops only its own entry
		ref := models.NoteRef(owner, note.ID)
		if note.IsLikedBy(liker) {
			note.Likes = slices.DeleteFunc(note.Likes, func(name string) bool { return name == liker })
			refs = slices.DeleteFunc(refs, func(r string) bool { return r == ref })
		} else {
			note.Likes = append(note.Likes, liker)
			if !slices.Contains(refs, ref) {
				refs = append(refs, ref)
			}
			state.Liked = true
		}
		state.Likes = len(note.Likes)

		return profile.SetLikedNoteRefs(refs)
	})
	if err != nil {
		return models.LikeState{}, err
	}

	return state, nil
}

func (n *noteService) AddNoteComment(ctx context.Context, owner, noteID string, draft models.CommentDraft) (models.Comment, error) {
	user, err := n.storage.ForUser(ctx, owner, false)
	if err != nil {
		return models.Comment{}, err
	}

	comment, ok, err := user.AddComment(ctx, noteID, draft)
	if err != nil {
		logger.FromContextOr(ctx, n.logger).Err(err).Str("func", "*noteService.AddNoteComment").Str("owner", owner).Msg("error adding comment")
		return models.Comment{}, fmt.Errorf("error adding comment: %w", err)
	}
	if !ok {
		return models.Comment{}, fmt.Errorf("%w: %s/%s", ErrNoteNotFound, owner, noteID)
	}

	return comment, nil
}
