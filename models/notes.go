// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// NoteID identifies a note inside its author's note collection. It is not
// unique across users. Stored documents may carry it either as a JSON number
// or as a numeric string; both decode.
type NoteID int

// String returns the decimal form of the identifier, the form used for
// lookups and for the liked_notes list.
func (id NoteID) String() string {
	return strconv.Itoa(int(id))
}

// UnmarshalJSON implements [json.Unmarshaler].
func (id *NoteID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("note id %q is not numeric: %w", s, err)
		}
		*id = NoteID(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = NoteID(n)
	return nil
}

// Note is a single user-authored entry in a notes document.
type Note struct {
	// ID is assigned as len(notes)+1 when the note is appended.
	ID NoteID `json:"id"`

	// Content is the note text. Never empty.
	Content string `json:"content"`

	// Public is persisted for every note but no code path reads it.
	Public bool `json:"public"`

	// CreatedAt is set once when the note is created, see [Timestamp].
	CreatedAt string `json:"created_at"`

	// Likes holds the usernames that liked the note.
	Likes []string `json:"likes"`

	// Comments is the append-only list of comments, oldest first.
	Comments []Comment `json:"comments"`

	// Extra keeps unknown members of the stored note.
	Extra map[string]json.RawMessage `json:"-"`
}

// Comment is a comment attached to a note.
type Comment struct {
	// ID is assigned as len(comments)+1 within the note.
	ID        int    `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

var noteFields = []string{"id", "content", "public", "created_at", "likes", "comments"}

// Normalize back-fills the list-valued fields with empty lists.
func (n *Note) Normalize() {
	if n.Likes == nil {
		n.Likes = []string{}
	}
	if n.Comments == nil {
		n.Comments = []Comment{}
	}
}

// Clone returns a deep copy of n.
func (n Note) Clone() Note {
	n.Likes = slices.Clone(n.Likes)
	n.Comments = slices.Clone(n.Comments)
	n.Extra = maps.Clone(n.Extra)
	return n
}

// IsLikedBy reports whether username liked the note.
func (n Note) IsLikedBy(username string) bool {
	return slices.Contains(n.Likes, username)
}

type noteAlias Note

// MarshalJSON implements [json.Marshaler].
func (n Note) MarshalJSON() ([]byte, error) {
	n.Normalize()

	base, err := json.Marshal(noteAlias(n))
	if err != nil {
		return nil, err
	}

	return mergeExtra(base, n.Extra)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (n *Note) UnmarshalJSON(data []byte) error {
	var alias noteAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	extra, err := splitExtra(data, noteFields...)
	if err != nil {
		return err
	}

	*n = Note(alias)
	n.Extra = extra
	n.Normalize()

	return nil
}

// NoteDraft carries the caller-supplied fields of a new note. The store
// assigns ID, CreatedAt, Likes and Comments.
type NoteDraft struct {
	Content string `json:"content"`
	Public  bool   `json:"public"`
}

// CommentDraft carries the caller-supplied fields of a new comment.
type CommentDraft struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// NotePatch is a shallow patch applied by update-note. Nil fields are left
// as they are.
type NotePatch struct {
	Content  *string    `json:"content,omitempty"`
	Public   *bool      `json:"public,omitempty"`
	Likes    *[]string  `json:"likes,omitempty"`
	Comments *[]Comment `json:"comments,omitempty"`
}

// Apply returns n with every non-nil field of p merged over it.
func (p NotePatch) Apply(n Note) Note {
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Public != nil {
		n.Public = *p.Public
	}
	if p.Likes != nil {
		n.Likes = slices.Clone(*p.Likes)
	}
	if p.Comments != nil {
		n.Comments = slices.Clone(*p.Comments)
	}
	n.Normalize()
	return n
}

// LikeState reports the outcome of a like toggle.
type LikeState struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}
