// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

// Kind identifies an entity kind within a world.
type Kind string

// Entity kinds.
const (
	KindLocation Kind = "location"
	KindNPC      Kind = "npc"
	KindItem     Kind = "item"
	KindGod      Kind = "god"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Plural returns the URL path segment for the kind.
func (k Kind) Plural() string {
	switch k {
	case KindLocation:
		return "locations"
	case KindNPC:
		return "npcs"
	case KindItem:
		return "items"
	case KindGod:
		return "gods"
	default:
		return string(k) + "s"
	}
}
