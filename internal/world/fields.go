// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import "github.com/oklog/ulid/v2"

// RefField is a weak-reference field as submitted on a form. Present records
// whether the field appeared in the request at all: an update leaves the
// relation untouched when the field is absent, clears it when the field is
// present but empty (ID nil), and re-points it otherwise.
type RefField struct {
	Present bool
	ID      *ulid.ULID
}

// Clear reports whether the field explicitly clears the relation.
func (f RefField) Clear() bool {
	return f.Present && f.ID == nil
}
