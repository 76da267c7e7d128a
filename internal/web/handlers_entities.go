// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package web

import (
	"context"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/realmwright/realmwright/internal/world"
)

// entityOps bundles the per-kind service operations so the route shape and
// redirect outcomes are defined once for all four entity kinds.
type entityOps struct {
	list   gin.HandlerFunc
	get    gin.HandlerFunc
	create func(ctx context.Context, worldID ulid.ULID, form url.Values) (ulid.ULID, error)
	update func(ctx context.Context, worldID, id ulid.ULID, form url.Values) error
	del    func(ctx context.Context, worldID, id ulid.ULID) error
}

func (s *Server) registerEntityRoutes(group *gin.RouterGroup, kind world.Kind, ops entityOps) {
	g := group.Group("/:world_id/" + kind.Plural())
	g.GET("", ops.list)
	g.POST("", s.createEntity(kind, ops.create))
	g.GET("/:id", ops.get)
	g.POST("/:id", s.updateEntity(kind, ops.update))
	g.POST("/:id/delete", s.deleteEntity(kind, ops.del))
}

func entityListPath(worldID ulid.ULID, kind world.Kind) string {
	return "/worlds/" + worldID.String() + "/" + kind.Plural()
}

func (s *Server) createEntity(kind world.Kind, create func(context.Context, ulid.ULID, url.Values) (ulid.ULID, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		worldID, ok := pathULID(c, "world_id")
		if !ok {
			return
		}
		listPath := entityListPath(worldID, kind)
		if err := c.Request.ParseForm(); err != nil {
			redirectError(c, listPath, "Invalid form submission.")
			return
		}
		id, err := create(c.Request.Context(), worldID, c.Request.PostForm)
		if err != nil {
			s.failMutation(c, listPath, err)
			return
		}
		s.countMutation(kind.String(), "create")
		redirectOutcome(c, listPath+"/"+id.String(), "created")
	}
}

func (s *Server) updateEntity(kind world.Kind, update func(context.Context, ulid.ULID, ulid.ULID, url.Values) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		worldID, ok := pathULID(c, "world_id")
		if !ok {
			return
		}
		id, ok := pathULID(c, "id")
		if !ok {
			return
		}
		detailPath := entityListPath(worldID, kind) + "/" + id.String()
		if err := c.Request.ParseForm(); err != nil {
			redirectError(c, detailPath, "Invalid form submission.")
			return
		}
		if err := update(c.Request.Context(), worldID, id, c.Request.PostForm); err != nil {
			s.failMutation(c, detailPath, err)
			return
		}
		s.countMutation(kind.String(), "update")
		redirectOutcome(c, detailPath, "saved")
	}
}

func (s *Server) deleteEntity(kind world.Kind, del func(context.Context, ulid.ULID, ulid.ULID) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		worldID, ok := pathULID(c, "world_id")
		if !ok {
			return
		}
		id, ok := pathULID(c, "id")
		if !ok {
			return
		}
		listPath := entityListPath(worldID, kind)
		if err := del(c.Request.Context(), worldID, id); err != nil {
			s.failMutation(c, listPath+"/"+id.String(), err)
			return
		}
		s.countMutation(kind.String(), "delete")
		redirectOutcome(c, listPath, "deleted")
	}
}

func (s *Server) listLocations(c *gin.Context) {
	worldID, ok := pathULID(c, "world_id")
	if !ok {
		return
	}
	rows, err := s.worlds.ListLocations(c.Request.Context(), worldID)
	if err != nil {
		s.failRead(c, err)
		return
	}
	s.serveFresh(c, entityListPath(worldID, world.KindLocation), gin.H{"locations": rows})
}

func (s *Server) getLocation(c *gin.Context) {
	worldID, ok := pathULID(c, "world_id")
	if !ok {
		return
	}
	id, ok := pathULID(c, "id")
	if !ok {
		return
	}
	row, err := s.worlds.GetLocation(c.Request.Context(), worldID, id)
	if err != nil {
		s.failDetailRead(c, entityListPath(worldID, world.KindLocation), "Location", err)
		return
	}
	s.serveFresh(c, entityListPath(worldID, world.KindLocation)+"/"+id.String(), gin.H{"location": row})
}

func (s *Server) listNPCs(c *gin.Context) {
	worldID, ok := pathULID(c, "world_id")
	if !ok {
		return
	}
	rows, err := s.worlds.ListNPCs(c.Request.Context(), worldID)
	if err != nil {
		s.failRead(c, err)
		return
	}
	s.serveFresh(c, entityListPath(worldID, world.KindNPC), gin.H{"npcs": rows})
}

func (s *Server) getNPC(c *gin.Context) {
	worldID, ok := pathULID(c, "world_id")
	if !ok {
		return
	}
	id, ok := pathULID(c, "id")
	if !ok {
		return
	}
	row, err := s.worlds.GetNPC(c.Request.Context(), worldID, id)
	if err != nil {
		s.failDetailRead(c, entityListPath(worldID, world.KindNPC), "NPC", err)
		return
	}
	s.serveFresh(c, entityListPath(worldID, world.KindNPC)+"/"+id.String(), gin.H{"npc": row})
}

func (s *Server) listItems(c *gin.Context) {
	worldID, ok := pathULID(c, "world_id")
	if !ok {
		return
	}
	rows, err := s.worlds.ListItems(c.Request.Context(), worldID)
	if err != nil {
		s.failRead(c, err)
		return
	}
	s.serveFresh(c, entityListPath(worldID, world.KindItem), gin.H{"items": rows})
}

func (s *Server) getItem(c *gin.Context) {
	worldID, ok := pathULID(c, "world_id")
	if !ok {
		return
	}
	id, ok := pathULID(c, "id")
	if !ok {
		return
	}
	row, err := s.worlds.GetItem(c.Request.Context(), worldID, id)
	if err != nil {
		s.failDetailRead(c, entityListPath(worldID, world.KindItem), "Item", err)
		return
	}
	s.serveFresh(c, entityListPath(worldID, world.KindItem)+"/"+id.String(), gin.H{"item": row})
}

func (s *Server) listGods(c *gin.Context) {
	worldID, ok := pathULID(c, "world_id")
	if !ok {
		return
	}
	rows, err := s.worlds.ListGods(c.Request.Context(), worldID)
	if err != nil {
		s.failRead(c, err)
		return
	}
	s.serveFresh(c, entityListPath(worldID, world.KindGod), gin.H{"gods": rows})
}

func (s *Server) getGod(c *gin.Context) {
	worldID, ok := pathULID(c, "world_id")
	if !ok {
		return
	}
	id, ok := pathULID(c, "id")
	if !ok {
		return
	}
	row, err := s.worlds.GetGod(c.Request.Context(), worldID, id)
	if err != nil {
		s.failDetailRead(c, entityListPath(worldID, world.KindGod), "God", err)
		return
	}
	s.serveFresh(c, entityListPath(worldID, world.KindGod)+"/"+id.String(), gin.H{"god": row})
}
