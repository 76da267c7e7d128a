// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import "errors"

// ErrNotFound is returned when an entity does not exist under the given
// world. A valid id paired with the wrong world id reports the same error as
// a truly absent row, so callers can never probe for cross-world existence.
var ErrNotFound = errors.New("not found")

// ValidationError reports the first violated input rule. The message is
// shown to the user verbatim on the error-redirect channel.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RelationError reports a weak reference that does not resolve to a row in
// the same world. It is surfaced exactly like a validation error.
type RelationError struct {
	Message string
}

func (e *RelationError) Error() string {
	return e.Message
}

// IsRejected reports whether err is a validation or relational-integrity
// failure, i.e. an error whose message should be redirected back to the
// originating form rather than treated as a storage failure.
func IsRejected(err error) bool {
	var ve *ValidationError
	var re *RelationError
	return errors.As(err, &ve) || errors.As(err, &re)
}
