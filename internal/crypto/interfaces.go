package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing encoded
// hashes and checks passwords against them. The encoded form carries the
// algorithm parameters and the salt, so parameters can change without
// invalidating stored hashes.
type PasswordHasher interface {
	// Hash returns the encoded hash of password using a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoded
	// hash yields [ErrMalformedHash].
	Verify(password, encoded string) (bool, error)
}
