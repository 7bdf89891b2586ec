// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of the register and login requests.
type Credentials struct {
	// Username is the account identifier. It names the user's documents in
	// the store, so only a restricted character set is accepted.
	Username string `json:"username"`

	// Password is the plaintext password. It is hashed before it reaches
	// the store and must never be logged.
	Password string `json:"password"`
}

// UserList is the response of the user directory endpoint.
type UserList struct {
	Users []string `json:"users"`
}
