// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/realmwright/realmwright/internal/config"
)

// serverStatus holds the probed health of a running server.
type serverStatus struct {
	Addr  string `json:"addr"`
	Live  bool   `json:"live"`
	Ready bool   `json:"ready"`
	Error string `json:"error,omitempty"`
}

// statusConfig holds configuration for the status subcommand.
type statusConfig struct {
	jsonOutput bool
}

// newStatusCmd creates the status subcommand with all flags configured.
func newStatusCmd() *cobra.Command {
	cfg := &statusConfig{}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show health of a running Realmwright server",
		Long:  `Probe the liveness and readiness endpoints of a running server.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, cfg)
		},
	}

	cmd.Flags().BoolVar(&cfg.jsonOutput, "json", false, "output status as JSON")

	return cmd
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, cfg *statusConfig) error {
	conf, err := config.Load(configFile, nil)
	if err != nil {
		return err
	}

	status := probeServer(conf.MetricsAddr)

	if cfg.jsonOutput {
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal status: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(formatStatusTable(status))
	return nil
}

// probeServer checks the liveness and readiness endpoints at addr.
func probeServer(addr string) serverStatus {
	status := serverStatus{Addr: addr}
	if addr == "" {
		status.Error = "metrics_addr is not configured"
		return status
	}

	client := &http.Client{Timeout: 2 * time.Second}

	live, err := probeEndpoint(client, "http://"+addr+"/healthz/liveness")
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.Live = live

	ready, err := probeEndpoint(client, "http://"+addr+"/healthz/readiness")
	if err != nil {
		// Liveness succeeded so the process is up; record the readiness
		// failure without discarding that.
		status.Error = err.Error()
		return status
	}
	status.Ready = ready

	return status
}

func probeEndpoint(client *http.Client, url string) (bool, error) {
	resp, err := client.Get(url)
	if err != nil {
		return false, fmt.Errorf("failed to connect: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK, nil
}

// formatStatusTable formats the status as a human-readable table.
func formatStatusTable(status serverStatus) string {
	var buf []byte
	w := tabwriter.NewWriter((*byteWriter)(&buf), 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "ADDR\tLIVE\tREADY\tERROR")
	errText := "-"
	if status.Error != "" {
		errText = status.Error
	}
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		status.Addr, yesNo(status.Live), yesNo(status.Ready), errText)

	_ = w.Flush()
	return string(buf)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// byteWriter is a simple writer that appends to a byte slice.
type byteWriter []byte

func (w *byteWriter) Write(p []byte) (int, error) {
	*w = append(*w, p...)
	return len(p), nil
}
