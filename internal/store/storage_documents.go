// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/models"
)

// documentStorage is the default implementation of [DocumentStorage].
//
// It serializes every read-modify-write cycle of a user with a keyed mutex
// and delegates persistence to a [DocumentBackend]. Nothing is cached
// between calls: every operation re-reads the documents it needs.
type documentStorage struct {
	backend DocumentBackend
	locks   *userLocker
	now     func() time.Time
	logger  *logger.Logger
}

// Option customizes a [DocumentStorage] built by [NewDocumentStorage].
type Option func(*documentStorage)

// WithClock replaces the time source used to stamp new records.
func WithClock(now func() time.Time) Option {
	return func(s *documentStorage) {
		s.now = now
	}
}

// NewDocumentStorage constructs a [DocumentStorage] on top of backend.
func NewDocumentStorage(backend DocumentBackend, logger *logger.Logger, opts ...Option) DocumentStorage {
	logger.Debug().Msg("creating document storage")

	s := &documentStorage{
		backend: backend,
		locks:   newUserLocker(),
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *documentStorage) ForUser(ctx context.Context, username string, createIfMissing bool) (UserStorage, error) {
	log := logger.FromContextOr(ctx, s.logger)

	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	unlock, err := s.locks.Lock(ctx, username)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if !createIfMissing {
		exists, err := s.backend.UserExists(ctx, username)
		if err != nil {
			log.Err(err).Str("func", "*documentStorage.ForUser").Msg("error checking user existence")
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: %q", ErrUserNotFound, username)
		}
		return s.userStorage(username), nil
	}

	if err := s.backend.CreateUser(ctx, username); err != nil && !errors.Is(err, ErrUserAlreadyExists) {
		log.Err(err).Str("func", "*documentStorage.ForUser").Msg("error creating user")
		return nil, err
	}

	if err := s.initDocuments(ctx, username); err != nil {
		log.Err(err).Str("func", "*documentStorage.ForUser").Msg("error initializing user documents")
		return nil, err
	}

	return s.userStorage(username), nil
}

// initDocuments writes the default notes and profile documents when they
// are missing. Existing documents are never touched.
func (s *documentStorage) initDocuments(ctx context.Context, username string) error {
	defaults := map[DocumentKind]any{
		NotesDocument:   []models.Note{},
		ProfileDocument: models.NewProfile(username, models.Timestamp(s.now())),
	}

	for _, kind := range []DocumentKind{NotesDocument, ProfileDocument} {
		_, err := s.backend.ReadDocument(ctx, username, kind)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrDocumentNotFound) {
			return err
		}

		data, err := encodeDocument(defaults[kind])
		if err != nil {
			return err
		}
		if err := s.backend.WriteDocument(ctx, username, kind, data); err != nil {
			return err
		}
	}

	return nil
}

func (s *documentStorage) CreateUser(ctx context.Context, profile models.Profile) (UserStorage, error) {
	log := logger.FromContextOr(ctx, s.logger)

	username := profile.Username
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	unlock, err := s.locks.Lock(ctx, username)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := s.backend.CreateUser(ctx, username); err != nil {
		if !errors.Is(err, ErrUserAlreadyExists) {
			log.Err(err).Str("func", "*documentStorage.CreateUser").Msg("error creating user")
		}
		return nil, err
	}

	if profile.JoinedAt == "" {
		profile.JoinedAt = models.Timestamp(s.now())
	}
	profile.Normalize()

	notes, err := encodeDocument([]models.Note{})
	if err != nil {
		return nil, err
	}
	body, err := encodeDocument(profile)
	if err != nil {
		return nil, err
	}

	if err := s.backend.WriteDocument(ctx, username, NotesDocument, notes); err != nil {
		log.Err(err).Str("func", "*documentStorage.CreateUser").Msg("error writing notes document")
		return nil, err
	}
	if err := s.backend.WriteDocument(ctx, username, ProfileDocument, body); err != nil {
		log.Err(err).Str("func", "*documentStorage.CreateUser").Msg("error writing profile document")
		return nil, err
	}

	log.Info().Str("username", username).Msg("user created")
	return s.userStorage(username), nil
}

func (s *documentStorage) UserExists(ctx context.Context, username string) (bool, error) {
	if err := ValidateUsername(username); err != nil {
		return false, err
	}
	return s.backend.UserExists(ctx, username)
}

func (s *documentStorage) ListUsers(ctx context.Context) ([]string, error) {
	users, err := s.backend.ListUsers(ctx)
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).Str("func", "*documentStorage.ListUsers").Msg("error listing users")
		return nil, err
	}

	slices.Sort(users)
	return users, nil
}

func (s *documentStorage) DeleteUser(ctx context.Context, username string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}

	unlock, err := s.locks.Lock(ctx, username)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.backend.DeleteUser(ctx, username); err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).Str("func", "*documentStorage.DeleteUser").Msg("error deleting user")
		return err
	}

	return nil
}

func (s *documentStorage) Update(ctx context.Context, usernames []string, fn func(tx DocumentTx) error) error {
	return s.run(ctx, usernames, fn, true)
}

func (s *documentStorage) View(ctx context.Context, usernames []string, fn func(tx DocumentTx) error) error {
	return s.run(ctx, usernames, fn, false)
}

func (s *documentStorage) run(ctx context.Context, usernames []string, fn func(tx DocumentTx) error, commit bool) error {
	for _, username := range usernames {
		if err := ValidateUsername(username); err != nil {
			return err
		}
	}

	unlock, err := s.locks.Lock(ctx, usernames...)
	if err != nil {
		return err
	}
	defer unlock()

	tx := newDocumentTx(ctx, s.backend, models.Timestamp(s.now()), usernames)
	if err := fn(tx); err != nil {
		return err
	}

	if !commit {
		return nil
	}

	if err := tx.commit(); err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).Str("func", "*documentStorage.Update").Strs("users", usernames).Msg("error committing documents")
		return err
	}

	return nil
}

func (s *documentStorage) userStorage(username string) UserStorage {
	return &userStorage{username: username, storage: s}
}
