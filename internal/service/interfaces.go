package service

import (
	"context"

	"github.com/Dev-vesper/notepad/models"
)

// AuthService registers accounts, checks credentials and issues session tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.Profile, error)
	Login(ctx context.Context, creds models.Credentials) (models.Profile, error)
	CreateToken(ctx context.Context, username string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService covers the notes of a user together with their likes and
// comments.
type NoteService interface {
	// ListNotes returns the notes of username, newest first.
	ListNotes(ctx context.Context, username string) ([]models.Note, error)

	// AddNote stores a new private note for username.
	AddNote(ctx context.Context, username string, draft models.NoteDraft) (models.Note, error)

	// ToggleNoteLike likes the note of owner on behalf of liker, or removes
	// the like when it is already there. The note likes and the liked_notes
	// of liker change together.
	ToggleNoteLike(ctx context.Context, owner, noteID, liker string) (models.LikeState, error)

	// AddNoteComment appends a comment to the note of owner.
	AddNoteComment(ctx context.Context, owner, noteID string, draft models.CommentDraft) (models.Comment, error)
}

// ProfileService covers the user directory, profile pages and account removal.
type ProfileService interface {
	ListUsers(ctx context.Context) ([]string, error)
	ViewProfile(ctx context.Context, username, viewer string) (models.ProfileView, error)
	ToggleProfileLike(ctx context.Context, target, liker string) (models.LikeState, error)
	CommentProfile(ctx context.Context, target string, comment models.ProfileComment) (models.ProfileComment, error)
	DeleteAccount(ctx context.Context, username string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// ProfileServiceWrapper defines middleware composition for ProfileService.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}
