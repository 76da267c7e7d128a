// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package world

import "net/url"

// Form parsers coerce raw request values into typed, trimmed, length-bounded
// records. Each returns the first violated rule as a *ValidationError; no
// aggregate of all violations is produced. Optional text fields accept the
// empty string as "absent" and are normalized to nil before storage.

// WorldForm holds validated world fields from a form submission.
type WorldForm struct {
	Name        string
	Summary     *string
	Description *string
	IsPrivate   bool
}

// ParseWorldForm validates raw world form values.
func ParseWorldForm(v url.Values) (*WorldForm, error) {
	name, err := validateName("World", v.Get("name"), MaxWorldNameLength)
	if err != nil {
		return nil, err
	}
	summary, err := optionalText("summary", v.Get("summary"), MaxWorldSummaryLength)
	if err != nil {
		return nil, err
	}
	description, err := optionalText("description", v.Get("description"), MaxDescriptionLength)
	if err != nil {
		return nil, err
	}
	return &WorldForm{
		Name:        name,
		Summary:     summary,
		Description: description,
		IsPrivate:   checkbox(v.Get("isPrivate")),
	}, nil
}

// LocationForm holds validated location fields from a form submission.
type LocationForm struct {
	Name        string
	Type        *string
	Summary     *string
	Description *string
}

// ParseLocationForm validates raw location form values.
func ParseLocationForm(v url.Values) (*LocationForm, error) {
	name, err := validateName("Location", v.Get("name"), MaxNameLength)
	if err != nil {
		return nil, err
	}
	typ, err := optionalText("type", v.Get("type"), MaxLocationTypeLength)
	if err != nil {
		return nil, err
	}
	summary, err := optionalText("summary", v.Get("summary"), MaxLocationSummaryLength)
	if err != nil {
		return nil, err
	}
	description, err := optionalText("description", v.Get("description"), MaxDescriptionLength)
	if err != nil {
		return nil, err
	}
	return &LocationForm{Name: name, Type: typ, Summary: summary, Description: description}, nil
}

// NPCForm holds validated NPC fields from a form submission. PrimaryLocation
// carries the tri-state weak reference; create operations only consult its ID.
type NPCForm struct {
	Name            string
	Role            *string
	Alignment       *string
	Summary         *string
	Description     *string
	PrimaryLocation RefField
}

// ParseNPCForm validates raw NPC form values.
func ParseNPCForm(v url.Values) (*NPCForm, error) {
	name, err := validateName("NPC", v.Get("name"), MaxNameLength)
	if err != nil {
		return nil, err
	}
	role, err := optionalText("role", v.Get("role"), MaxNPCRoleLength)
	if err != nil {
		return nil, err
	}
	alignment, err := optionalText("alignment", v.Get("alignment"), MaxAlignmentLength)
	if err != nil {
		return nil, err
	}
	summary, err := optionalText("summary", v.Get("summary"), MaxSummaryLength)
	if err != nil {
		return nil, err
	}
	description, err := optionalText("description", v.Get("description"), MaxDescriptionLength)
	if err != nil {
		return nil, err
	}
	primaryLocation, err := refField(v, "primaryLocationId")
	if err != nil {
		return nil, err
	}
	return &NPCForm{
		Name:            name,
		Role:            role,
		Alignment:       alignment,
		Summary:         summary,
		Description:     description,
		PrimaryLocation: primaryLocation,
	}, nil
}

// ItemForm holds validated item fields from a form submission.
type ItemForm struct {
	Name        string
	Type        *string
	Rarity      *string
	Summary     *string
	Description *string
	OwnerNpc    RefField
	Location    RefField
}

// ParseItemForm validates raw item form values.
func ParseItemForm(v url.Values) (*ItemForm, error) {
	name, err := validateName("Item", v.Get("name"), MaxNameLength)
	if err != nil {
		return nil, err
	}
	typ, err := optionalText("type", v.Get("type"), MaxItemTypeLength)
	if err != nil {
		return nil, err
	}
	rarity, err := optionalText("rarity", v.Get("rarity"), MaxItemRarityLength)
	if err != nil {
		return nil, err
	}
	summary, err := optionalText("summary", v.Get("summary"), MaxSummaryLength)
	if err != nil {
		return nil, err
	}
	description, err := optionalText("description", v.Get("description"), MaxDescriptionLength)
	if err != nil {
		return nil, err
	}
	ownerNpc, err := refField(v, "ownerNpcId")
	if err != nil {
		return nil, err
	}
	location, err := refField(v, "locationId")
	if err != nil {
		return nil, err
	}
	return &ItemForm{
		Name:        name,
		Type:        typ,
		Rarity:      rarity,
		Summary:     summary,
		Description: description,
		OwnerNpc:    ownerNpc,
		Location:    location,
	}, nil
}

// GodForm holds validated god fields from a form submission.
type GodForm struct {
	Name        string
	Domain      *string
	Alignment   *string
	Symbol      *string
	Summary     *string
	Description *string
}

// ParseGodForm validates raw god form values.
func ParseGodForm(v url.Values) (*GodForm, error) {
	name, err := validateName("God", v.Get("name"), MaxNameLength)
	if err != nil {
		return nil, err
	}
	domain, err := optionalText("domain", v.Get("domain"), MaxGodDomainLength)
	if err != nil {
		return nil, err
	}
	alignment, err := optionalText("alignment", v.Get("alignment"), MaxAlignmentLength)
	if err != nil {
		return nil, err
	}
	symbol, err := optionalText("symbol", v.Get("symbol"), MaxGodSymbolLength)
	if err != nil {
		return nil, err
	}
	summary, err := optionalText("summary", v.Get("summary"), MaxSummaryLength)
	if err != nil {
		return nil, err
	}
	description, err := optionalText("description", v.Get("description"), MaxDescriptionLength)
	if err != nil {
		return nil, err
	}
	return &GodForm{
		Name:        name,
		Domain:      domain,
		Alignment:   alignment,
		Symbol:      symbol,
		Summary:     summary,
		Description: description,
	}, nil
}

// refField parses a weak-reference form field, preserving whether the field
// appeared in the request at all.
func refField(v url.Values, field string) (RefField, error) {
	if !v.Has(field) {
		return RefField{}, nil
	}
	id, err := optionalID(field, v.Get(field))
	if err != nil {
		return RefField{}, err
	}
	return RefField{Present: true, ID: id}, nil
}
