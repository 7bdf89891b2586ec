package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// fileBackend keeps the documents of each user as JSON files in
// <root>/<username>/.
type fileBackend struct {
	root string
}

// NewFileBackend returns a [DocumentBackend] rooted at dir. The directory is
// created when missing.
func NewFileBackend(dir string) (DocumentBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating users directory: %w", ErrIOFailure, err)
	}

	return &fileBackend{root: dir}, nil
}

func (b *fileBackend) userDir(username string) string {
	return filepath.Join(b.root, username)
}

func (b *fileBackend) documentPath(username string, kind DocumentKind) string {
	return filepath.Join(b.userDir(username), string(kind)+".json")
}

func (b *fileBackend) UserExists(_ context.Context, username string) (bool, error) {
	info, err := os.Stat(b.userDir(username))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	return info.IsDir(), nil
}

func (b *fileBackend) CreateUser(_ context.Context, username string) error {
	err := os.Mkdir(b.userDir(username), 0o755)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %q", ErrUserAlreadyExists, username)
	}
	if err != nil {
		return fmt.Errorf("%w: creating user directory: %w", ErrIOFailure, err)
	}

	return nil
}

func (b *fileBackend) ReadDocument(_ context.Context, username string, kind DocumentKind) ([]byte, error) {
	data, err := os.ReadFile(b.documentPath(username, kind))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s of %q", ErrDocumentNotFound, kind, username)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	return data, nil
}

func (b *fileBackend) WriteDocument(_ context.Context, username string, kind DocumentKind, data []byte) error {
	if err := writeFileAtomic(b.documentPath(username, kind), data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	return nil
}

func (b *fileBackend) DeleteUser(_ context.Context, username string) error {
	if err := os.RemoveAll(b.userDir(username)); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	return nil
}

func (b *fileBackend) ListUsers(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(b.root)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	users := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && ValidateUsername(entry.Name()) == nil {
			users = append(users, entry.Name())
		}
	}

	return users, nil
}

func (b *fileBackend) Close() error {
	return nil
}

// writeFileAtomic writes data to a temporary file next to path, syncs it and
// renames it over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
