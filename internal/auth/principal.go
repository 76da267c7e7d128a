// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package auth

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// Principal identifies the signed-in user behind a request.
type Principal struct {
	ID       ulid.ULID
	Username string
	Email    string
}

// Identity resolves the current principal for a request context.
type Identity interface {
	// CurrentUser returns the principal attached to the context, or
	// ErrNotAuthenticated if there is none.
	CurrentUser(ctx context.Context) (*Principal, error)
}

type principalKey struct{}

// WithPrincipal returns a context carrying the principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom extracts the principal from the context, if present.
func PrincipalFrom(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}

// ContextIdentity is an Identity that reads the principal placed on the
// context by the session middleware.
type ContextIdentity struct{}

// CurrentUser implements Identity.
func (ContextIdentity) CurrentUser(ctx context.Context) (*Principal, error) {
	p, ok := PrincipalFrom(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return p, nil
}
