// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package auth

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Service provides account and session operations.
type Service struct {
	users    UserRepository
	sessions SessionRepository
	hasher   PasswordHasher
}

// NewService creates a new Service.
func NewService(users UserRepository, sessions SessionRepository, hasher PasswordHasher) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
	}
}

// dummyPasswordHash is used when a user doesn't exist to prevent timing attacks.
// We still run password verification to make response time consistent.
// This is NOT a real credential - it's a fake hash that will never match any password.
//
//nolint:gosec // G101: This is an intentionally fake hash for timing attack prevention, not a credential.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// SignUp registers a new account and opens a session for it.
// Returns the session, plaintext token, and any error.
func (s *Service) SignUp(ctx context.Context, v url.Values, userAgent, ipAddress string) (*Session, string, error) {
	form, err := ParseSignUpForm(v)
	if err != nil {
		return nil, "", err
	}

	if _, err := s.users.GetByUsername(ctx, form.Username); err == nil {
		return nil, "", &ValidationError{Message: "Username is already taken."}
	} else if !errors.Is(err, ErrNotFound) {
		return nil, "", oops.Code("AUTH_SIGNUP_FAILED").
			With("operation", "check username").
			Wrap(err)
	}
	if _, err := s.users.GetByEmail(ctx, form.Email); err == nil {
		return nil, "", &ValidationError{Message: "Email is already registered."}
	} else if !errors.Is(err, ErrNotFound) {
		return nil, "", oops.Code("AUTH_SIGNUP_FAILED").
			With("operation", "check email").
			Wrap(err)
	}

	hash, err := s.hasher.Hash(form.Password)
	if err != nil {
		return nil, "", oops.Code("AUTH_SIGNUP_FAILED").
			With("operation", "hash password").
			Wrap(err)
	}

	now := time.Now()
	user := &User{
		ID:           ulid.Make(),
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The pre-checks race with concurrent sign-ups; the unique
		// constraints are the source of truth.
		if errors.Is(err, ErrAlreadyExists) {
			return nil, "", &ValidationError{Message: "Username or email is already taken."}
		}
		return nil, "", oops.Code("AUTH_SIGNUP_FAILED").
			With("operation", "create user").
			Wrap(err)
	}

	return s.openSession(ctx, user.ID, userAgent, ipAddress)
}

// SignIn authenticates a user and creates a session.
// Returns the session, plaintext token, and any error.
// Uses constant-time operations to prevent timing-based username enumeration.
func (s *Service) SignIn(ctx context.Context, v url.Values, userAgent, ipAddress string) (*Session, string, error) {
	form, err := ParseSignInForm(v)
	if err != nil {
		return nil, "", err
	}

	user, lookupErr := s.users.GetByUsername(ctx, form.Username)

	// Determine which hash to verify against (real or dummy for timing
	// attack prevention).
	var targetHash string
	var userExists bool

	if lookupErr != nil {
		if errors.Is(lookupErr, ErrNotFound) {
			targetHash = dummyPasswordHash
			userExists = false
		} else {
			return nil, "", oops.Code("AUTH_SIGNIN_FAILED").
				With("operation", "get user by username").
				Wrap(lookupErr)
		}
	} else {
		targetHash = user.PasswordHash
		userExists = true
	}

	valid, verifyErr := s.hasher.Verify(form.Password, targetHash)
	if verifyErr != nil {
		if !userExists {
			return nil, "", &ValidationError{Message: "Invalid username or password."}
		}
		return nil, "", oops.Code("AUTH_SIGNIN_FAILED").
			With("operation", "verify password").
			Wrap(verifyErr)
	}

	// If the user doesn't exist OR the password is invalid, return the
	// same error.
	if !userExists || !valid {
		if userExists {
			user.RecordFailure()
			_ = s.users.Update(ctx, user) //nolint:errcheck // Best effort
		}
		return nil, "", &ValidationError{Message: "Invalid username or password."}
	}

	// Check lockout AFTER password verification to maintain constant time.
	if user.IsLocked() {
		return nil, "", &ValidationError{Message: "Account is temporarily locked. Try again later."}
	}

	user.RecordSuccess()

	// Check if the password hash needs an upgrade.
	if s.hasher.NeedsUpgrade(user.PasswordHash) {
		newHash, hashErr := s.hasher.Hash(form.Password)
		if hashErr == nil {
			user.PasswordHash = newHash
		}
	}

	// Ignore errors - sign-in should succeed even if the update fails.
	_ = s.users.Update(ctx, user) //nolint:errcheck // Best effort, sign-in succeeds regardless

	return s.openSession(ctx, user.ID, userAgent, ipAddress)
}

func (s *Service) openSession(ctx context.Context, userID ulid.ULID, userAgent, ipAddress string) (*Session, string, error) {
	token, tokenHash, err := GenerateSessionToken()
	if err != nil {
		return nil, "", oops.Code("AUTH_SESSION_CREATE_FAILED").
			With("operation", "generate session token").
			Wrap(err)
	}

	expiresAt := time.Now().Add(SessionTokenExpiry)
	session, err := NewSession(userID, tokenHash, userAgent, ipAddress, expiresAt)
	if err != nil {
		return nil, "", oops.Code("AUTH_SESSION_CREATE_FAILED").
			With("operation", "create session").
			Wrap(err)
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, "", oops.Code("AUTH_SESSION_CREATE_FAILED").
			With("operation", "persist session").
			Wrap(err)
	}

	return session, token, nil
}

// SignOut invalidates a session.
func (s *Service) SignOut(ctx context.Context, sessionID ulid.ULID) error {
	err := s.sessions.Delete(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return oops.Code("SESSION_NOT_FOUND").
				With("session_id", sessionID.String()).
				Wrap(err)
		}
		return oops.Code("AUTH_SIGNOUT_FAILED").
			With("operation", "delete session").
			With("session_id", sessionID.String()).
			Wrap(err)
	}
	return nil
}

// Authenticate validates a session token and returns the session and the
// principal it belongs to. Also updates the LastSeenAt timestamp.
func (s *Service) Authenticate(ctx context.Context, token string) (*Session, *Principal, error) {
	if token == "" {
		return nil, nil, ErrNotAuthenticated
	}

	tokenHash := HashSessionToken(token)

	session, err := s.sessions.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, ErrNotAuthenticated
		}
		return nil, nil, oops.Code("SESSION_VALIDATE_FAILED").
			With("operation", "get session by token hash").
			Wrap(err)
	}

	if session.IsExpired() {
		return nil, nil, ErrNotAuthenticated
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, ErrNotAuthenticated
		}
		return nil, nil, oops.Code("SESSION_VALIDATE_FAILED").
			With("operation", "get session user").
			Wrap(err)
	}

	// Update last seen timestamp (non-blocking, ignore errors).
	_ = s.sessions.UpdateLastSeen(ctx, session.ID, time.Now()) //nolint:errcheck // Best effort

	principal := &Principal{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	return session, principal, nil
}
