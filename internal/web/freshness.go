// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package web

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// freshnessTracker assigns a monotonically increasing version to each page
// path. Mutations bump the versions of the paths they touch via the view
// broker, which moves every cached copy of those pages out of date at once.
type freshnessTracker struct {
	mu       sync.RWMutex
	versions map[string]uint64
}

func newFreshnessTracker() *freshnessTracker {
	return &freshnessTracker{versions: make(map[string]uint64)}
}

// Bump advances the version of path, invalidating prior ETags for it.
func (t *freshnessTracker) Bump(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.versions[path]++
}

// Version returns the current version of path. Unbumped paths are version 0.
func (t *freshnessTracker) Version(path string) uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.versions[path]
}

// serveFresh answers with 304 when the client already holds the current
// version of the page, and otherwise tags the JSON body with its ETag.
func (s *Server) serveFresh(c *gin.Context, path string, body any) {
	etag := fmt.Sprintf(`W/"v%d"`, s.freshness.Version(path))
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.JSON(http.StatusOK, body)
}
