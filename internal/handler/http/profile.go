package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/utils"
	"github.com/Dev-vesper/notepad/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.ProfileService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		http.Error(w, "error listing users", statusFromError(err))
		return
	}
	if users == nil {
		users = []string{}
	}

	utils.WriteJSON(w, models.UserList{Users: users}, http.StatusOK)
}

func (h *Handler) viewProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// anonymous visitors have no username in the context
	viewer, _ := utils.GetUsernameFromContext(ctx)
	username := chi.URLParam(r, "username")

	view, err := h.services.ProfileService.ViewProfile(ctx, username, viewer)
	if err != nil {
		log.Err(err).Str("func", "*Handler.viewProfile").Str("profile", username).Msg("error getting profile")
		http.Error(w, "error getting profile", statusFromError(err))
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) toggleProfileLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	liker, found := utils.GetUsernameFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.toggleProfileLike").Msg("no username was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	target := chi.URLParam(r, "username")

	state, err := h.services.ProfileService.ToggleProfileLike(ctx, target, liker)
	if err != nil {
		log.Err(err).Str("func", "*Handler.toggleProfileLike").Str("profile", target).Msg("error toggling profile like")
		http.Error(w, "error toggling profile like", statusFromError(err))
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) commentProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	author, found := utils.GetUsernameFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.commentProfile").Msg("no username was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var comment models.ProfileComment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		log.Err(err).Str("func", "*Handler.commentProfile").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	comment.Author = author
	comment.CreatedAt = ""

	target := chi.URLParam(r, "username")

	added, err := h.services.ProfileService.CommentProfile(ctx, target, comment)
	if err != nil {
		log.Err(err).Str("func", "*Handler.commentProfile").Str("profile", target).Msg("error adding profile comment")
		http.Error(w, "error adding profile comment", statusFromError(err))
		return
	}

	utils.WriteJSON(w, added, http.StatusCreated)
}
