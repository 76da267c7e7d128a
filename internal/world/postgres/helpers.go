// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

// Package postgres implements the world repositories on PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/realmwright/realmwright/internal/world"
)

// DB abstracts query execution so repositories accept both *pgxpool.Pool and
// pgxmock.PgxPoolIface.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ulidToStringPtr converts a ULID pointer to a string pointer for SQL
// parameters. Returns nil if the input is nil.
func ulidToStringPtr(id *ulid.ULID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// parseULID parses a required ULID column value.
func parseULID(s, fieldName string) (ulid.ULID, error) {
	id, err := ulid.Parse(s)
	if err != nil {
		return ulid.ULID{}, oops.With("operation", "parse "+fieldName).With(fieldName, s).Wrap(err)
	}
	return id, nil
}

// parseOptionalULID parses an optional ULID string pointer into a ULID
// pointer. Returns nil if the input is nil.
func parseOptionalULID(strPtr *string, fieldName string) (*ulid.ULID, error) {
	if strPtr == nil {
		return nil, nil
	}
	id, err := ulid.Parse(*strPtr)
	if err != nil {
		return nil, oops.With("operation", "parse "+fieldName).With(fieldName, *strPtr).Wrap(err)
	}
	return &id, nil
}

// refArgs expands a tri-state reference field into the pair of SQL arguments
// used by the CASE expression in update statements: a bool saying whether to
// touch the column at all, and the new value when touched.
func refArgs(ref world.RefField) (touch bool, value *string) {
	return ref.Present, ulidToStringPtr(ref.ID)
}

// containsPattern builds an ILIKE pattern matching the query anywhere, with
// LIKE metacharacters in the query treated literally.
func containsPattern(query string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(query)
	return "%" + escaped + "%"
}
