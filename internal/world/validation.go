// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
)

// Validation limits for domain types. Names require at least MinNameLength
// characters; maximums are enforced here regardless of any storage-layer
// constraint.
const (
	MinNameLength      = 2
	MaxWorldNameLength = 50
	MaxNameLength      = 80

	MaxWorldSummaryLength    = 200
	MaxLocationTypeLength    = 40
	MaxLocationSummaryLength = 200
	MaxNPCRoleLength         = 120
	MaxAlignmentLength       = 60
	MaxItemTypeLength        = 60
	MaxItemRarityLength      = 40
	MaxGodDomainLength       = 80
	MaxGodSymbolLength       = 120
	MaxSummaryLength         = 500
	MaxDescriptionLength     = 5000
)

// checkboxOn is the sentinel value browsers submit for a checked checkbox.
const checkboxOn = "on"

// validateName checks a required name against the kind's length bounds.
// Bounds count characters, not bytes. label is the user-facing entity label
// ("World", "NPC", ...).
func validateName(label, name string, maxLen int) (string, error) {
	name = strings.TrimSpace(name)
	runes := utf8.RuneCountInString(name)
	if runes < MinNameLength {
		return "", &ValidationError{Message: label + " name is too short"}
	}
	if runes > maxLen {
		return "", &ValidationError{Message: label + " name is too long"}
	}
	return name, nil
}

// optionalText trims an optional text field and bounds its length. The empty
// string is normalized to nil so it is stored as NULL.
func optionalText(field, value string, maxLen int) (*string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(value) > maxLen {
		return nil, &ValidationError{
			Message: fmt.Sprintf("%s must be at most %d characters", field, maxLen),
		}
	}
	return &value, nil
}

// optionalID parses an optional identifier field. The empty string means
// absent; anything else must be a well-formed ULID.
func optionalID(field, value string) (*ulid.ULID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	id, err := ulid.Parse(value)
	if err != nil {
		return nil, &ValidationError{Message: "invalid " + field}
	}
	return &id, nil
}

// checkbox derives a boolean from the presence of the "on" sentinel, the way
// HTML checkboxes submit. Any other value, including absence, is false.
func checkbox(value string) bool {
	return value == checkboxOn
}
