package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Dev-vesper/notepad/internal/config"
	"github.com/Dev-vesper/notepad/internal/crypto"
	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/store"
	"github.com/Dev-vesper/notepad/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 535897000, time.Local)

const fixedStamp = "2026-03-14T15:09:26.535897"

// cheap argon2 parameters keep the tests fast
var testHasher = crypto.NewPasswordHasher(crypto.Argon2Params{Time: 1, Memory: 8, Threads: 1, SaltLen: 16, KeyLen: 32})

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "notepad-test",
	TokenDuration: time.Hour,
	Version:       "1.2.3",
}

func newTestStorage(t *testing.T) store.DocumentStorage {
	t.Helper()
	backend, err := store.NewFileBackend(filepath.Join(t.TempDir(), "users"))
	require.NoError(t, err)
	return store.NewDocumentStorage(backend, logger.Nop(), store.WithClock(func() time.Time { return fixedNow }))
}

func createUser(t *testing.T, storage store.DocumentStorage, username string) store.UserStorage {
	t.Helper()
	user, err := storage.ForUser(context.Background(), username, true)
	require.NoError(t, err)
	return user
}

func addNote(t *testing.T, user store.UserStorage, content string) models.Note {
	t.Helper()
	note, err := user.AddNote(context.Background(), models.NoteDraft{Content: content})
	require.NoError(t, err)
	return note
}
