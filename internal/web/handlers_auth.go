// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) signUp(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		redirectError(c, "/signup", "Invalid form submission.")
		return
	}

	_, token, err := s.accounts.SignUp(c.Request.Context(), c.Request.PostForm, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		s.failMutation(c, "/signup", err)
		return
	}

	s.setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/worlds")
}

func (s *Server) signIn(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		redirectError(c, "/login", "Invalid form submission.")
		return
	}

	_, token, err := s.accounts.SignIn(c.Request.Context(), c.Request.PostForm, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		s.failMutation(c, "/login", err)
		return
	}

	s.setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/worlds")
}

func (s *Server) signOut(c *gin.Context) {
	if id, ok := s.sessionID(c); ok {
		if err := s.accounts.SignOut(c.Request.Context(), id); err != nil {
			slog.WarnContext(c.Request.Context(), "sign-out failed", "error", err)
		}
		s.states.Drop(id)
	}
	s.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
