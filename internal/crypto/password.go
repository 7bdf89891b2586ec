// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash is returned by [PasswordHasher.Verify] for stored hashes
// that are not in the argon2id PHC format.
var ErrMalformedHash = errors.New("malformed password hash")

const argon2idPrefix = "argon2id"

// Argon2Params are the Argon2id tuning parameters.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultArgon2Params follow the OWASP recommendation: 1 iteration over
// 64 MiB with 4 lanes and a 256-bit key.
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	SaltLen: 16,
	KeyLen:  32,
}

// argon2Hasher is the Argon2id implementation of [PasswordHasher]. Hashes
// are encoded as
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// with salt and key in unpadded standard base64.
type argon2Hasher struct {
	params Argon2Params
	limits Argon2Params
	rand   io.Reader
}

// NewPasswordHasher returns an Argon2id [PasswordHasher] using params.
//
// Verify rejects stored hashes whose cost parameters exceed twice the larger
// of params and [DefaultArgon2Params] with [ErrMalformedHash].
func NewPasswordHasher(params Argon2Params) PasswordHasher {
	return &argon2Hasher{params: params, limits: costLimits(params), rand: rand.Reader}
}

func costLimits(params Argon2Params) Argon2Params {
	return Argon2Params{
		Time:    2 * max(params.Time, DefaultArgon2Params.Time),
		Memory:  2 * max(params.Memory, DefaultArgon2Params.Memory),
		Threads: uint8(min(2*uint16(max(params.Threads, DefaultArgon2Params.Threads)), 255)),
		KeyLen:  2 * max(params.KeyLen, DefaultArgon2Params.KeyLen),
	}
}

func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *argon2Hasher) Verify(password, encoded string) (bool, error) {
	params, salt, key, err := decodeArgon2Hash(encoded)
	if err != nil {
		return false, err
	}
	if params.Time > h.limits.Time || params.Memory > h.limits.Memory ||
		params.Threads > h.limits.Threads || params.KeyLen > h.limits.KeyLen {
		return false, fmt.Errorf("%w: cost parameters m=%d,t=%d,p=%d above limit", ErrMalformedHash, params.Memory, params.Time, params.Threads)
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(candidate, key) == 1, nil
}

func decodeArgon2Hash(encoded string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != argon2idPrefix {
		return params, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params, nil, nil, fmt.Errorf("%w: unsupported version %q", ErrMalformedHash, parts[2])
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if params.Time == 0 || params.Threads == 0 {
		return params, nil, nil, fmt.Errorf("%w: zero cost parameter", ErrMalformedHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: salt: %w", ErrMalformedHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, fmt.Errorf("%w: key", ErrMalformedHash)
	}

	params.SaltLen = uint32(len(salt))
	params.KeyLen = uint32(len(key))

	return params, salt, key, nil
}
