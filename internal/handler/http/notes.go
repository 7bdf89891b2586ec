package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/utils"
	"github.com/Dev-vesper/notepad/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, found := utils.GetUsernameFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listNotes").Msg("no username was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, username)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error getting notes")
		http.Error(w, "error getting notes", statusFromError(err))
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, found := utils.GetUsernameFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.addNote").Msg("no username was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var draft models.NoteDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Str("func", "*Handler.addNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.AddNote(ctx, username, draft)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addNote").Msg("error adding note")
		http.Error(w, "error adding note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) toggleNoteLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, found := utils.GetUsernameFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.toggleNoteLike").Msg("no username was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID := chi.URLParam(r, "noteID")
	owner := noteOwner(r, username)

	state, err := h.services.NoteService.ToggleNoteLike(ctx, owner, noteID, username)
	if err != nil {
		log.Err(err).Str("func", "*Handler.toggleNoteLike").Str("owner", owner).Str("note_id", noteID).Msg("error toggling note like")
		http.Error(w, "error toggling note like", statusFromError(err))
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) addNoteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, found := utils.GetUsernameFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.addNoteComment").Msg("no username was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var draft models.CommentDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Str("func", "*Handler.addNoteComment").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	draft.Author = username

	noteID := chi.URLParam(r, "noteID")
	owner := noteOwner(r, username)

	comment, err := h.services.NoteService.AddNoteComment(ctx, owner, noteID, draft)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addNoteComment").Str("owner", owner).Str("note_id", noteID).Msg("error adding comment")
		http.Error(w, "error adding comment", statusFromError(err))
		return
	}

	utils.WriteJSON(w, comment, http.StatusCreated)
}

// noteOwner returns the "owner" query parameter, defaulting to the session
// user.
func noteOwner(r *http.Request, username string) string {
	if owner := r.URL.Query().Get("owner"); owner != "" {
		return owner
	}
	return username
}
