// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/realmwright/realmwright/internal/auth"
	"github.com/realmwright/realmwright/internal/world"
)

// redirectOutcome sends the client back to path with a one-shot outcome
// flag, e.g. ?created=1 after a successful create.
func redirectOutcome(c *gin.Context, path, outcome string) {
	c.Redirect(http.StatusSeeOther, path+"?"+outcome+"=1")
}

// redirectError sends the client back to path with the rejection message in
// the query string so the form can re-render it.
func redirectError(c *gin.Context, path, message string) {
	c.Redirect(http.StatusSeeOther, path+"?error="+url.QueryEscape(message))
}

// failMutation translates a mutation error into the right response: rejected
// input and storage failures go back to the originating form with the message,
// missing rows are 404s, and missing principals bounce to login.
func (s *Server) failMutation(c *gin.Context, backPath string, err error) {
	var ve *world.ValidationError
	var re *world.RelationError
	var ae *auth.ValidationError

	switch {
	case errors.As(err, &ve):
		redirectError(c, backPath, ve.Message)
	case errors.As(err, &re):
		redirectError(c, backPath, re.Message)
	case errors.As(err, &ae):
		redirectError(c, backPath, ae.Message)
	case errors.Is(err, world.ErrNotFound), errors.Is(err, auth.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
	default:
		slog.ErrorContext(c.Request.Context(), "mutation failed", "error", err)
		redirectError(c, backPath, err.Error())
	}
}

// failDetailRead answers a detail read that found no row: back to the parent
// list with a message. Wrong-world and truly absent ids read the same.
func (s *Server) failDetailRead(c *gin.Context, listPath, label string, err error) {
	if errors.Is(err, world.ErrNotFound) {
		redirectError(c, listPath, label+" not found.")
		return
	}
	s.failRead(c, err)
}

// failRead translates a read error into a JSON response.
func (s *Server) failRead(c *gin.Context, err error) {
	switch {
	case errors.Is(err, world.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
	default:
		slog.ErrorContext(c.Request.Context(), "read failed", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
