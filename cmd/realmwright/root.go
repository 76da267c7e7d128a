// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the Realmwright CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "realmwright",
		Short: "Realmwright - a worldbuilding content manager",
		Long: `Realmwright manages worldbuilding content: worlds and the
locations, NPCs, items, and gods that live inside them.`,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	// Add subcommands
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSeedCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}
