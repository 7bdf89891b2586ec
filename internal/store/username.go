package store

import (
	"fmt"
	"regexp"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

// ValidateUsername checks that username can be used as a directory name and
// a database key.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) || username == "." || username == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}
	return nil
}
