// Package validators checks user input before it reaches the document store:
// credentials, note drafts, note comments and profile comments.
package validators

import "context"

// Validator validates one input value. When fields are given only those
// fields are checked (e.g. [FieldContent] of a note draft); otherwise every
// rule for the value's type applies. Values of unknown types are rejected
// with [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
