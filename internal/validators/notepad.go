package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Dev-vesper/notepad/internal/store"
	"github.com/Dev-vesper/notepad/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the account name of credentials.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of credentials.
	FieldPassword = "password"

	// FieldContent targets the text of a new note.
	FieldContent = "content"

	// FieldAuthor targets the author of a comment.
	FieldAuthor = "author"

	// FieldText targets the text of a note or profile comment.
	FieldText = "text"
)

// MaxTextLength is the upper bound, in runes, for note content and comment text.
const MaxTextLength = 10000

// NotepadValidator implements [Validator] for the user-supplied inputs of
// the notepad: credentials, note drafts, comment drafts and profile comments.
type NotepadValidator struct {
}

// NewNotepadValidator constructs a new NotepadValidator and returns it as
// the Validator interface.
func NewNotepadValidator() Validator {
	return &NotepadValidator{}
}

// Validate dispatches validation on the dynamic type of obj. Both value and
// pointer forms are accepted. Without fields, every field of the type is
// checked.
func (v *NotepadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.NoteDraft:
		return v.validateNoteDraft(value, fields...)
	case *models.NoteDraft:
		return v.validateNoteDraft(*value, fields...)

	case models.CommentDraft:
		return v.validateComment(value.Author, value.Text, fields...)
	case *models.CommentDraft:
		return v.validateComment(value.Author, value.Text, fields...)

	case models.ProfileComment:
		return v.validateComment(value.Author, value.Text, fields...)
	case *models.ProfileComment:
		return v.validateComment(value.Author, value.Text, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NotepadValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := store.ValidateUsername(creds.Username); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidUsername, creds.Username)
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NotepadValidator) validateNoteDraft(draft models.NoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if err := checkText(draft.Content, ErrEmptyContent); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NotepadValidator) validateComment(author, text string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAuthor, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldAuthor:
			if author == "" {
				return ErrEmptyAuthor
			}
		case FieldText:
			if err := checkText(text, ErrEmptyText); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// checkText rejects blank text and text longer than MaxTextLength runes.
func checkText(text string, errEmpty error) error {
	if strings.TrimSpace(text) == "" {
		return errEmpty
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return fmt.Errorf("%w: more than %d characters", ErrTextTooLong, MaxTextLength)
	}
	return nil
}
