package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_KeepsUnknownFields(t *testing.T) {
	raw := `{"username":"alice","password":"h","joined_at":"2026-01-01T00:00:00.000000","theme":"dark"}`

	var p Profile
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, []string{}, p.LikedNotes)
	assert.Equal(t, []ProfileComment{}, p.ProfileComments)
	require.Contains(t, p.Extra, "theme")

	p.ProfileLikes = append(p.ProfileLikes, "bob")
	out, err := json.Marshal(p)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, "dark", back["theme"])
	assert.Equal(t, []any{"bob"}, back["profile_likes"])
	assert.Equal(t, []any{}, back["liked_notes"])
}

func TestProfile_KnownFieldsWinOverExtra(t *testing.T) {
	p := NewProfile("alice", "t")
	p.Extra = map[string]json.RawMessage{"username": json.RawMessage(`"mallory"`)}

	out, err := json.Marshal(p)
	require.NoError(t, err)

	var back Profile
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, "alice", back.Username)
}

func TestNoteID_AcceptsStringAndNumber(t *testing.T) {
	var notes []Note
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"7","content":"a"},{"id":8,"content":"b"}]`), &notes))

	require.Len(t, notes, 2)
	assert.Equal(t, "7", notes[0].ID.String())
	assert.Equal(t, "8", notes[1].ID.String())
	assert.Equal(t, []string{}, notes[0].Likes)
	assert.Equal(t, []Comment{}, notes[0].Comments)

	var bad Note
	assert.Error(t, json.Unmarshal([]byte(`{"id":"seven"}`), &bad))
}

func TestNoteID_StringIsWrittenBackAsNumber(t *testing.T) {
	var note Note
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","content":"a"}`), &note))

	out, err := json.Marshal(note)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, float64(1), back["id"])
}

func TestProfile_LikedNoteRefs(t *testing.T) {
	p := NewProfile("bob", "t")
	p.LikedNotes = []string{"2"}

	refs, err := p.LikedNoteRefs()
	require.NoError(t, err)
	assert.Equal(t, []string{"bob/2"}, refs)

	require.NoError(t, p.SetLikedNoteRefs([]string{"alice/1", "bob/1", "bob/2"}))
	assert.Equal(t, []string{"1", "2"}, p.LikedNotes)

	out, err := json.Marshal(p)
	require.NoError(t, err)

	var back Profile
	require.NoError(t, json.Unmarshal(out, &back))
	refs, err = back.LikedNoteRefs()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice/1", "bob/1", "bob/2"}, refs)
	assert.Equal(t, []string{"1", "2"}, back.LikedNotes)

	back.Extra["liked_note_refs"] = json.RawMessage(`{}`)
	_, err = back.LikedNoteRefs()
	assert.Error(t, err)
}

func TestNotePatch_Apply(t *testing.T) {
	note := Note{ID: 1, Content: "old", Likes: []string{"alice"}}
	content := "new"

	got := NotePatch{Content: &content}.Apply(note)

	assert.Equal(t, "new", got.Content)
	assert.Equal(t, []string{"alice"}, got.Likes)
	assert.Equal(t, []Comment{}, got.Comments)
	assert.Equal(t, "old", note.Content)
}

func TestNewProfileView(t *testing.T) {
	p := NewProfile("alice", "2026-01-01T00:00:00.000000")
	p.Password = "secret-hash"
	p.ProfileLikes = []string{"bob"}

	tests := []struct {
		name      string
		viewer    string
		wantSelf  bool
		wantLiked bool
	}{
		{name: "anonymous", viewer: ""},
		{name: "owner", viewer: "alice", wantSelf: true},
		{name: "liker", viewer: "bob", wantLiked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewProfileView(p, nil, tt.viewer)
			assert.Equal(t, tt.wantSelf, view.IsSelf)
			assert.Equal(t, tt.wantLiked, view.LikedByViewer)
			assert.Equal(t, []Note{}, view.Notes)

			out, err := json.Marshal(view)
			require.NoError(t, err)
			assert.NotContains(t, string(out), "secret-hash")
		})
	}
}

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("", "", "abc123", "1.0.0")
	assert.Equal(t, AppBuildInfo{Version: "1.0.0", Date: "N/A", Commit: "abc123"}, info)

	info = NewAppBuildInfo("2.1.0", "2026-10-01", "", "1.0.0")
	assert.Equal(t, "2.1.0", info.Version)
	assert.Equal(t, "N/A", info.Commit)
}
