// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

// Package web is the HTTP surface: form-driven mutations with redirect
// outcomes, JSON reads, and the session cookie plumbing.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/realmwright/realmwright/internal/auth"
	"github.com/realmwright/realmwright/internal/observability"
	"github.com/realmwright/realmwright/internal/session"
	"github.com/realmwright/realmwright/internal/view"
	"github.com/realmwright/realmwright/internal/world"
)

// SessionCookie is the name of the session token cookie.
const SessionCookie = "rw_session"

// Config holds dependencies for the web server.
type Config struct {
	Worlds   *world.Service
	Accounts *auth.Service
	States   *session.Store
	Views    *view.Broker
	Metrics  *observability.Metrics

	// CookieSecure sets the Secure attribute on the session cookie.
	CookieSecure bool
}

// Server routes HTTP requests to the world and account services.
type Server struct {
	engine       *gin.Engine
	worlds       *world.Service
	accounts     *auth.Service
	states       *session.Store
	metrics      *observability.Metrics
	freshness    *freshnessTracker
	cookieSecure bool
}

// NewServer creates the web server and registers all routes.
func NewServer(cfg Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:       gin.New(),
		worlds:       cfg.Worlds,
		accounts:     cfg.Accounts,
		states:       cfg.States,
		metrics:      cfg.Metrics,
		freshness:    newFreshnessTracker(),
		cookieSecure: cfg.CookieSecure,
	}
	if cfg.Views != nil {
		cfg.Views.Subscribe(s.freshness.Bump)
	}

	s.engine.Use(gin.Recovery(), s.observe())
	s.registerRoutes()
	return s
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes() {
	// Account routes carry no session requirement.
	s.engine.POST("/signup", s.signUp)
	s.engine.POST("/login", s.signIn)

	authed := s.engine.Group("/", s.withSession())
	authed.POST("/logout", s.signOut)

	authed.GET("/ui/state", s.requireAuth(), s.getUIState)
	authed.POST("/ui/state", s.requireAuth(), s.putUIState)

	worlds := authed.Group("/worlds", s.requireAuth())
	worlds.GET("", s.listWorlds)
	worlds.POST("", s.createWorld)
	worlds.GET("/:world_id", s.getWorld)
	worlds.GET("/:world_id/dashboard", s.dashboard)
	worlds.GET("/:world_id/search", s.search)

	s.registerEntityRoutes(worlds, world.KindLocation, entityOps{
		list:   s.listLocations,
		get:    s.getLocation,
		create: s.worlds.CreateLocation,
		update: s.worlds.UpdateLocation,
		del:    s.worlds.DeleteLocation,
	})
	s.registerEntityRoutes(worlds, world.KindNPC, entityOps{
		list:   s.listNPCs,
		get:    s.getNPC,
		create: s.worlds.CreateNPC,
		update: s.worlds.UpdateNPC,
		del:    s.worlds.DeleteNPC,
	})
	s.registerEntityRoutes(worlds, world.KindItem, entityOps{
		list:   s.listItems,
		get:    s.getItem,
		create: s.worlds.CreateItem,
		update: s.worlds.UpdateItem,
		del:    s.worlds.DeleteItem,
	})
	s.registerEntityRoutes(worlds, world.KindGod, entityOps{
		list:   s.listGods,
		get:    s.getGod,
		create: s.worlds.CreateGod,
		update: s.worlds.UpdateGod,
		del:    s.worlds.DeleteGod,
	})
}
