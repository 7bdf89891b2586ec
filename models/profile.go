// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// likedNoteRefsField is the profile member recording which user's note each
// liked_notes entry belongs to. It travels in [Profile.Extra].
const likedNoteRefsField = "liked_note_refs"

// Profile is the account and profile record stored in a user's profile
// document. Username doubles as the storage key and never changes after
// registration.
type Profile struct {
	// Username is the unique account identifier.
	Username string `json:"username"`

	// Password is the opaque encoded password hash. It is produced and
	// checked by the password hasher; the store never inspects it.
	Password string `json:"password"`

	// JoinedAt is the registration timestamp, see [Timestamp].
	JoinedAt string `json:"joined_at"`

	// LikedNotes holds the identifiers of notes this user liked, as strings.
	LikedNotes []string `json:"liked_notes"`

	// ProfileLikes holds the usernames that liked this profile.
	ProfileLikes []string `json:"profile_likes"`

	// ProfileComments is the append-only list of comments left on this
	// profile, oldest first.
	ProfileComments []ProfileComment `json:"profile_comments"`

	// Extra keeps members of the stored document that this type does not
	// know about so that a read-modify-write cycle does not drop them.
	Extra map[string]json.RawMessage `json:"-"`
}

// ProfileComment is a comment left on somebody's profile.
type ProfileComment struct {
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

var profileFields = []string{"username", "password", "joined_at", "liked_notes", "profile_likes", "profile_comments"}

// NewProfile returns the default profile document created for a new user.
func NewProfile(username, joinedAt string) Profile {
	return Profile{
		Username:        username,
		JoinedAt:        joinedAt,
		LikedNotes:      []string{},
		ProfileLikes:    []string{},
		ProfileComments: []ProfileComment{},
	}
}

// Normalize back-fills the list-valued fields with empty lists so that they
// are persisted as [] instead of null.
func (p *Profile) Normalize() {
	if p.LikedNotes == nil {
		p.LikedNotes = []string{}
	}
	if p.ProfileLikes == nil {
		p.ProfileLikes = []string{}
	}
	if p.ProfileComments == nil {
		p.ProfileComments = []ProfileComment{}
	}
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	p.LikedNotes = slices.Clone(p.LikedNotes)
	p.ProfileLikes = slices.Clone(p.ProfileLikes)
	p.ProfileComments = slices.Clone(p.ProfileComments)
	p.Extra = maps.Clone(p.Extra)
	return p
}

// IsLikedBy reports whether username liked the profile.
func (p Profile) IsLikedBy(username string) bool {
	return slices.Contains(p.ProfileLikes, username)
}

// NoteRef returns the "owner/id" reference of a note.
func NoteRef(owner string, id NoteID) string {
	return owner + "/" + id.String()
}

// LikedNoteRefs returns the references of every note the user liked, in like
// order. Profiles without recorded references report their liked_notes as
// the user's own notes.
func (p Profile) LikedNoteRefs() ([]string, error) {
	raw, ok := p.Extra[likedNoteRefsField]
	if !ok {
		refs := make([]string, 0, len(p.LikedNotes))
		for _, id := range p.LikedNotes {
			refs = append(refs, p.Username+"/"+id)
		}
		return refs, nil
	}

	var refs []string
	if err := json.Unmarshal(raw, &refs); err != nil {
		return nil, err
	}
	if refs == nil {
		refs = []string{}
	}
	return refs, nil
}

// SetLikedNoteRefs stores refs and rebuilds LikedNotes as the distinct bare
// note ids they point to.
func (p *Profile) SetLikedNoteRefs(refs []string) error {
	if refs == nil {
		refs = []string{}
	}
	raw, err := json.Marshal(refs)
	if err != nil {
		return err
	}
	if p.Extra == nil {
		p.Extra = make(map[string]json.RawMessage)
	}
	p.Extra[likedNoteRefsField] = raw

	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		id := ref[strings.LastIndex(ref, "/")+1:]
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	p.LikedNotes = ids
	return nil
}

type profileAlias Profile

// MarshalJSON implements [json.Marshaler]. Unknown members kept in Extra are
// written back next to the known ones.
func (p Profile) MarshalJSON() ([]byte, error) {
	p.Normalize()

	base, err := json.Marshal(profileAlias(p))
	if err != nil {
		return nil, err
	}

	return mergeExtra(base, p.Extra)
}

// UnmarshalJSON implements [json.Unmarshaler]. Missing list fields are
// defaulted to empty lists.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var alias profileAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	extra, err := splitExtra(data, profileFields...)
	if err != nil {
		return err
	}

	*p = Profile(alias)
	p.Extra = extra
	p.Normalize()

	return nil
}

// ProfileView is the public representation of a profile returned by the
// HTTP API. It never carries the password hash.
type ProfileView struct {
	Username        string           `json:"username"`
	JoinedAt        string           `json:"joined_at"`
	LikedNotes      []string         `json:"liked_notes"`
	ProfileLikes    []string         `json:"profile_likes"`
	ProfileComments []ProfileComment `json:"profile_comments"`
	Notes           []Note           `json:"notes"`
	IsSelf          bool             `json:"is_self"`
	LikedByViewer   bool             `json:"liked_by_viewer"`
}

// NewProfileView builds the public view of p for the given viewer.
func NewProfileView(p Profile, notes []Note, viewer string) ProfileView {
	p.Normalize()
	if notes == nil {
		notes = []Note{}
	}

	return ProfileView{
		Username:        p.Username,
		JoinedAt:        p.JoinedAt,
		LikedNotes:      p.LikedNotes,
		ProfileLikes:    p.ProfileLikes,
		ProfileComments: p.ProfileComments,
		Notes:           notes,
		IsSelf:          viewer != "" && viewer == p.Username,
		LikedByViewer:   viewer != "" && p.IsLikedBy(viewer),
	}
}
