package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername = errors.New("invalid username")
	ErrEmptyPassword   = errors.New("password is required")
	ErrEmptyContent    = errors.New("note content is required")
	ErrEmptyText       = errors.New("comment text is required")
	ErrEmptyAuthor     = errors.New("comment author is required")
	ErrTextTooLong     = errors.New("text is too long")
)
