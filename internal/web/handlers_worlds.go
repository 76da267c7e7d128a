// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

// pathULID parses a ULID path parameter. A malformed id aborts with a 404,
// the same answer a well-formed but absent id would get.
func pathULID(c *gin.Context, name string) (ulid.ULID, bool) {
	id, err := ulid.Parse(c.Param(name))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return ulid.ULID{}, false
	}
	return id, true
}

func (s *Server) listWorlds(c *gin.Context) {
	worlds, err := s.worlds.ListWorlds(c.Request.Context())
	if err != nil {
		s.failRead(c, err)
		return
	}
	s.serveFresh(c, "/worlds", gin.H{"worlds": worlds})
}

func (s *Server) createWorld(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		redirectError(c, "/worlds", "Invalid form submission.")
		return
	}
	id, err := s.worlds.CreateWorld(c.Request.Context(), c.Request.PostForm)
	if err != nil {
		s.failMutation(c, "/worlds", err)
		return
	}
	s.countMutation("world", "create")
	redirectOutcome(c, "/worlds/"+id.String(), "created")
}

func (s *Server) getWorld(c *gin.Context) {
	id, ok := pathULID(c, "world_id")
	if !ok {
		return
	}
	w, err := s.worlds.GetWorld(c.Request.Context(), id)
	if err != nil {
		s.failDetailRead(c, "/worlds", "World", err)
		return
	}
	s.serveFresh(c, "/worlds/"+id.String(), gin.H{"world": w})
}

func (s *Server) dashboard(c *gin.Context) {
	id, ok := pathULID(c, "world_id")
	if !ok {
		return
	}
	counts, err := s.worlds.DashboardCounts(c.Request.Context(), id)
	if err != nil {
		s.failRead(c, err)
		return
	}
	s.serveFresh(c, "/worlds/"+id.String()+"/dashboard", gin.H{"counts": counts})
}

func (s *Server) search(c *gin.Context) {
	id, ok := pathULID(c, "world_id")
	if !ok {
		return
	}
	results, err := s.worlds.Search(c.Request.Context(), id, c.Query("q"))
	if err != nil {
		s.countSearch("error")
		s.failRead(c, err)
		return
	}
	s.countSearch("ok")
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (s *Server) countMutation(kind, op string) {
	if s.metrics != nil {
		s.metrics.EntityMutationsTotal.WithLabelValues(kind, op).Inc()
	}
}

func (s *Server) countSearch(outcome string) {
	if s.metrics != nil {
		s.metrics.SearchQueriesTotal.WithLabelValues(outcome).Inc()
	}
}
