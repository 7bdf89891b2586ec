package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dev-vesper/notepad/internal/config"
	"github.com/Dev-vesper/notepad/internal/crypto"
	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/store"
	"github.com/Dev-vesper/notepad/internal/utils"
	"github.com/Dev-vesper/notepad/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using the document store for persistence and Argon2id for
// password hashing.
type authService struct {
	// storage holds the profile documents, which carry the password hash.
	storage store.DocumentStorage

	// hasher produces and checks the encoded password hashes.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given storage
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(storage store.DocumentStorage, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		storage:       storage,
		hasher:        hasher,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// RegisterUser creates a new user account.
//
// The password is hashed and stored in the profile document; the notes
// document starts empty.
//
// Returns the stored profile or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - store.ErrUserAlreadyExists if the username is taken.
//   - A wrapped storage error if persisting fails.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.Profile, error) {
	log := logger.FromContextOr(ctx, a.logger)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid user data provided")
		return models.Profile{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error hashing password")
		return models.Profile{}, fmt.Errorf("error hashing password: %w", err)
	}

	profile := models.NewProfile(creds.Username, "")
	profile.Password = hash

	user, err := a.storage.CreateUser(ctx, profile)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.Profile{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registered, err := user.GetProfile(ctx)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("error reading registered profile")
		return models.Profile{}, fmt.Errorf("error reading registered profile: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated profile or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - store.ErrUserNotFound if there is no such user.
//   - ErrWrongPassword if the password does not match the stored hash, or
//     the stored hash is missing or unreadable.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Profile, error) {
	log := logger.FromContextOr(ctx, a.logger)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid user data provided")
		return models.Profile{}, ErrInvalidDataProvided
	}

	user, err := a.storage.ForUser(ctx, creds.Username, false)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.Profile{}, fmt.Errorf("user search by username failed: %w", err)
	}

	profile, err := user.GetProfile(ctx)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("error reading profile")
		return models.Profile{}, fmt.Errorf("error reading profile: %w", err)
	}

	ok, err := a.hasher.Verify(creds.Password, profile.Password)
	if err != nil && !errors.Is(err, crypto.ErrMalformedHash) {
		return models.Profile{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		log.Warn().Err(err).Str("username", creds.Username).Msg("wrong password")
		return models.Profile{}, ErrWrongPassword
	}

	return profile, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, username string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContextOr(ctx, a.logger).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
