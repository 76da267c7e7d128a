// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package auth

import "errors"

// ErrNotFound is returned when a requested account or session does not exist.
var ErrNotFound = errors.New("not found")

// ErrNotAuthenticated is returned when an operation requires a signed-in
// user and no principal is attached to the context.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrAlreadyExists is returned when a username or email is already taken.
var ErrAlreadyExists = errors.New("already exists")

// ValidationError reports a rejected sign-up or sign-in form. Message is
// safe to show to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
