// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/realmwright/realmwright/internal/session"
)

func (s *Server) getUIState(c *gin.Context) {
	id, ok := s.sessionID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, s.states.Get(id))
}

// putUIState applies the submitted fields to the session's UI state. Fields
// absent from the form are left as they were, so the sidebar toggle, world
// selector, and search box can each post independently.
func (s *Server) putUIState(c *gin.Context) {
	id, ok := s.sessionID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}
	form := c.Request.PostForm

	updated := s.states.Mutate(id, func(st *session.State) {
		if v, present := form["sidebar_open"]; present {
			st.SidebarOpen = len(v) > 0 && v[0] == "true"
		}
		if v, present := form["global_search"]; present && len(v) > 0 {
			st.GlobalSearch = v[0]
		}
		if v, present := form["selected_world_id"]; present && len(v) > 0 {
			if v[0] == "" {
				st.SelectedWorldID = nil
			} else if wid, err := ulid.Parse(v[0]); err == nil {
				st.SelectedWorldID = &wid
			}
		}
	})
	c.JSON(http.StatusOK, updated)
}
