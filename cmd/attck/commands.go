// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	matrixPath       string // CLI override for matrix.path in the config
	personalityLevel string // UX personality level (full/standard/minimal/machine)
	logLevel         string // CLI override for logging.level in the config

	rootCmd = &cobra.Command{
		Use:   "attck",
		Short: "A cli to browse the MITRE ATT&CK matrix from your terminal",
		Long: `attck answers quick threat-intelligence questions against a local
				copy of the MITRE ATT&CK dataset: which techniques a group uses,
				which groups use a technique, and what falls under a tactic.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// First pass covers flag/env/TTY so config-load failures
			// already print in the right mode; the second pass lets
			// output.personality from the loaded config take effect.
			applyPersonality()
			initRuntime()
			applyPersonality()
		},
	}

	// --- Groups ---
	aptListCmd = &cobra.Command{
		Use:   "apt-list",
		Short: "List every adversary group in the dataset",
		Run:   runAptList, // Defined in cmd_groups.go
	}
	aptCmd = &cobra.Command{
		Use:   "apt [name]",
		Short: "Show the techniques a group uses, bucketed by tactic",
		Args:  cobra.MinimumNArgs(1),
		Run:   runApt, // Defined in cmd_groups.go
	}

	// --- Techniques ---
	tidCmd = &cobra.Command{
		Use:   "tid [technique-id]",
		Short: "Look a technique up by its MITRE id (e.g. T1055)",
		Args:  cobra.ExactArgs(1),
		Run:   runTid, // Defined in cmd_techniques.go
	}
	tnCmd = &cobra.Command{
		Use:   "tn [name]",
		Short: "Search techniques by name fragment",
		Args:  cobra.MinimumNArgs(1),
		Run:   runTn, // Defined in cmd_techniques.go
	}

	// --- Tactics ---
	tacticCmd = &cobra.Command{
		Use:   "tactic [name]",
		Short: "Show a tactic and the techniques that fall under it",
		Args:  cobra.MinimumNArgs(1),
		Run:   runTactic, // Defined in cmd_tactics.go
	}
)

// init runs when the Go program starts
func init() {
	rootCmd.PersistentFlags().StringVar(&matrixPath, "matrix", "",
		"Path to the ATT&CK matrix JSON file (default: matrix.path from ~/.attck/attck.yaml)")
	rootCmd.PersistentFlags().StringVar(&personalityLevel, "personality", "",
		"Output style: full (default), standard, minimal, or machine (scripting)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Diagnostic log level: debug, info, warn, or error")

	rootCmd.AddCommand(aptListCmd)
	rootCmd.AddCommand(aptCmd)
	rootCmd.AddCommand(tidCmd)
	rootCmd.AddCommand(tnCmd)
	rootCmd.AddCommand(tacticCmd)
}
