package service

import (
	"context"
	"fmt"

	"github.com/Dev-vesper/notepad/internal/validators"
	"github.com/Dev-vesper/notepad/models"
)

// invalid wraps a validator error into ErrInvalidDataProvided.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

// AuthValidationService validates credentials before they reach the wrapped
// AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewNotepadValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, creds models.Credentials) (models.Profile, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.Profile{}, invalid(err)
	}

	return v.inner.RegisterUser(ctx, creds)
}

func (v *AuthValidationService) Login(ctx context.Context, creds models.Credentials) (models.Profile, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.Profile{}, invalid(err)
	}

	return v.inner.Login(ctx, creds)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, username string) (models.Token, error) {
	return v.inner.CreateToken(ctx, username)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// NoteValidationService rejects blank or oversized note content and comment
// text before they reach the wrapped NoteService.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNotepadValidator(),
	}
}

func (v *NoteValidationService) ListNotes(ctx context.Context, username string) ([]models.Note, error) {
	return v.inner.ListNotes(ctx, username)
}

func (v *NoteValidationService) AddNote(ctx context.Context, username string, draft models.NoteDraft) (models.Note, error) {
	if err := v.validator.Validate(ctx, draft, validators.FieldContent); err != nil {
		return models.Note{}, invalid(err)
	}

	return v.inner.AddNote(ctx, username, draft)
}

func (v *NoteValidationService) ToggleNoteLike(ctx context.Context, owner, noteID, liker string) (models.LikeState, error) {
	return v.inner.ToggleNoteLike(ctx, owner, noteID, liker)
}

func (v *NoteValidationService) AddNoteComment(ctx context.Context, owner, noteID string, draft models.CommentDraft) (models.Comment, error) {
	if err := v.validator.Validate(ctx, draft, validators.FieldAuthor, validators.FieldText); err != nil {
		return models.Comment{}, invalid(err)
	}

	return v.inner.AddNoteComment(ctx, owner, noteID, draft)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}

// ProfileValidationService validates profile comments before they reach the
// wrapped ProfileService.
type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService() ProfileServiceWrapper {
	return &ProfileValidationService{
		validator: validators.NewNotepadValidator(),
	}
}

func (v *ProfileValidationService) ListUsers(ctx context.Context) ([]string, error) {
	return v.inner.ListUsers(ctx)
}

func (v *ProfileValidationService) ViewProfile(ctx context.Context, username, viewer string) (models.ProfileView, error) {
	return v.inner.ViewProfile(ctx, username, viewer)
}

func (v *ProfileValidationService) ToggleProfileLike(ctx context.Context, target, liker string) (models.LikeState, error) {
	return v.inner.ToggleProfileLike(ctx, target, liker)
}

func (v *ProfileValidationService) CommentProfile(ctx context.Context, target string, comment models.ProfileComment) (models.ProfileComment, error) {
	if err := v.validator.Validate(ctx, comment); err != nil {
		return models.ProfileComment{}, invalid(err)
	}

	return v.inner.CommentProfile(ctx, target, comment)
}

func (v *ProfileValidationService) DeleteAccount(ctx context.Context, username string) error {
	return v.inner.DeleteAccount(ctx, username)
}

func (v *ProfileValidationService) Wrap(wrapped ProfileService) ProfileService {
	v.inner = wrapped
	return v
}
