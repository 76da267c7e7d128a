// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2idHasherRoundTrip(t *testing.T) {
	h := NewArgon2idHasher()

	hash, err := h.Hash("correct horse battery")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"), "PHC format expected, got %q", hash)

	ok, err := h.Verify("correct horse battery", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2idHasherUniqueSalts(t *testing.T) {
	h := NewArgon2idHasher()

	first, err := h.Hash("same password")
	require.NoError(t, err)
	second, err := h.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash must carry a fresh salt")
}

func TestArgon2idHasherEmptyPassword(t *testing.T) {
	h := NewArgon2idHasher()

	_, err := h.Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestArgon2idHasherRejectsMalformedHash(t *testing.T) {
	h := NewArgon2idHasher()

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not PHC", "plainhash"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Verify("password", tt.hash)
			assert.Error(t, err)
		})
	}
}

func TestArgon2idHasherVerifiesDummyHash(t *testing.T) {
	// The sign-in path verifies against this hash when the username is
	// unknown; it must parse cleanly and never match.
	h := NewArgon2idHasher()

	ok, err := h.Verify("any password at all", dummyPasswordHash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNeedsUpgrade(t *testing.T) {
	h := NewArgon2idHasher()

	current, err := h.Hash("password123")
	require.NoError(t, err)

	assert.False(t, h.NeedsUpgrade(current))
	assert.True(t, h.NeedsUpgrade("$2a$10$legacybcrypthashvalue"))
	assert.True(t, h.NeedsUpgrade("not-a-phc-hash"))
}
