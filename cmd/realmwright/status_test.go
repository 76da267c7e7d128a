// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeServerHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/healthz/liveness", "/healthz/readiness":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	addr := strings.TrimPrefix(srv.URL, "http://")
	status := probeServer(addr)

	assert.Equal(t, addr, status.Addr)
	assert.True(t, status.Live)
	assert.True(t, status.Ready)
	assert.Empty(t, status.Error)
}

func TestProbeServerNotReady(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/healthz/liveness" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	status := probeServer(strings.TrimPrefix(srv.URL, "http://"))

	assert.True(t, status.Live)
	assert.False(t, status.Ready)
}

func TestProbeServerUnreachable(t *testing.T) {
	// Port 1 is reserved and should refuse the connection immediately.
	status := probeServer("127.0.0.1:1")

	assert.False(t, status.Live)
	assert.Contains(t, status.Error, "failed to connect")
}

func TestProbeServerUnconfigured(t *testing.T) {
	status := probeServer("")

	assert.Equal(t, "metrics_addr is not configured", status.Error)
}

func TestFormatStatusTable(t *testing.T) {
	out := formatStatusTable(serverStatus{Addr: "127.0.0.1:9100", Live: true, Ready: false})

	require.Contains(t, out, "ADDR")
	assert.Contains(t, out, "127.0.0.1:9100")
	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "no")
	assert.Contains(t, out, "-")
}

func TestFormatMigrationVersion(t *testing.T) {
	assert.Equal(t, "Schema at version 0 (empty)", formatMigrationVersion(0, false))
	assert.Equal(t, "Schema at version 1 (000001_users)", formatMigrationVersion(1, false))
	assert.Contains(t, formatMigrationVersion(2, true), "dirty, manual intervention required")
}
