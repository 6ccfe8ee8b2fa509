// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tecnoscan

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tecnoscan/tecnoscan-api/internal/config"
	"github.com/tecnoscan/tecnoscan-api/internal/crypto"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/store"
	"github.com/tecnoscan/tecnoscan-api/internal/utils"
	"github.com/tecnoscan/tecnoscan-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and an AES-CTR codec for
// reversible password storage.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwords encrypts passwords before storage and decrypts them for
	// comparison at login time.
	passwords crypto.PasswordCodec

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, passwords crypto.PasswordCodec, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		passwords:      passwords,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account from registration data.
//
// Login uniqueness is checked against both the login and email columns before
// the insert, so a duplicate surfaces as ErrUserAlreadyExists rather than a
// constraint violation. The password is encrypted with a fresh IV before
// persistence; the profile name fields start empty and are filled in later
// through the profile endpoint.
//
// Returns the persisted user (with its assigned ID) or:
//   - ErrInvalidDataProvided if Login, Email or Password is empty.
//   - ErrUserAlreadyExists if another account holds the login or email.
//   - A wrapped storage error if the repository call fails.
func (a *authService) RegisterUser(ctx context.Context, registration models.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	if registration.Login == "" || registration.Email == "" || registration.Password == "" {
		log.Error().Str("login", registration.Login).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByLoginOrEmail(ctx, registration.Login, registration.Email)
	if err == nil {
		return models.User{}, ErrUserAlreadyExists
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("login", registration.Login).Msg("duplicate check failed")
		return models.User{}, fmt.Errorf("duplicate check failed: %w", err)
	}

	ciphertext, iv, err := a.passwords.Encrypt(registration.Password)
	if err != nil {
		log.Err(err).Msg("password encryption failed")
		return models.User{}, fmt.Errorf("password encryption failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Login:    registration.Login,
		Email:    registration.Email,
		Password: ciphertext,
		IV:       iv,
	})
	if err != nil {
		log.Err(err).Str("login", registration.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by login, decrypts the stored password with the
// account's IV, and compares it against the supplied plain-text password.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the lookup fails (e.g. user not found —
//     see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the passwords do not match.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		log.Error().Str("login", credentials.Login).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, credentials.Login)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	storedPassword, err := a.passwords.Decrypt(foundUser.Password, foundUser.IV)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("password decryption failed")
		return models.User{}, fmt.Errorf("password decryption failed: %w", err)
	}

	if storedPassword != credentials.Password {
		log.Error().
			Str("id", foundUser.ID.String()).
			Str("login", foundUser.Login).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, embeds the user's profile fields as custom
// claims, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
