// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/realmwright/realmwright/internal/auth"
)

const sessionIDKey = "web.session_id"

// withSession resolves the session cookie into a principal on the request
// context. Requests without a valid session pass through unauthenticated;
// requireAuth decides what that means per route.
func (s *Server) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		sess, principal, err := s.accounts.Authenticate(c.Request.Context(), token)
		if err != nil {
			// Expired or forged cookie. Clear it so the client stops
			// sending it, then continue unauthenticated.
			s.clearSessionCookie(c)
			c.Next()
			return
		}

		c.Set(sessionIDKey, sess.ID)
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// requireAuth redirects unauthenticated requests to the login page.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.PrincipalFrom(c.Request.Context()); !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// observe logs each request and counts it by route and status.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		if s.metrics != nil {
			s.metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		}
		slog.DebugContext(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration", time.Since(start),
		)
	}
}

// sessionID returns the authenticated session's id, if any.
func (s *Server) sessionID(c *gin.Context) (ulid.ULID, bool) {
	v, ok := c.Get(sessionIDKey)
	if !ok {
		return ulid.ULID{}, false
	}
	id, ok := v.(ulid.ULID)
	return id, ok
}

func (s *Server) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(auth.SessionTokenExpiry.Seconds()), "/", "", s.cookieSecure, true)
}

func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", s.cookieSecure, true)
}
