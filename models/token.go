// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed session token.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for access to the standard claims. The subject claim
// carries the username the session belongs to.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent to the client.
	SignedString string `json:"-"`

	// Username is a cached copy of the subject claim.
	Username string `json:"-"`
}

// GetUsername returns the username stored in the subject claim.
func (t *Token) GetUsername() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting username from token: %w", err)
	}
	if subject == "" {
		return "", errors.New("token subject is empty")
	}

	return subject, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
