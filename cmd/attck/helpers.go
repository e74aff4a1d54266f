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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AleutianAI/attck/cmd/attck/config"
	"github.com/AleutianAI/attck/pkg/attack"
	"github.com/AleutianAI/attck/pkg/logging"
	"github.com/AleutianAI/attck/pkg/ux"
)

var logger *logging.Logger

// initRuntime loads the config singleton and builds the logger. Runs
// once per invocation from the root command's PersistentPreRun.
func initRuntime() {
	if err := config.Load(); err != nil {
		ux.Error(fmt.Sprintf("Failed to load config: %v", err))
		os.Exit(1)
	}

	level := config.Global.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	logDir := config.Global.Logging.Dir
	if logDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			logDir = filepath.Join(home, ".attck", "logs")
		}
	}
	// Query results go to stdout; the logger stays off stderr so piped
	// output carries nothing but the answer.
	logger = logging.New(logging.Config{
		Level:  logging.ParseLevel(level),
		LogDir: logDir,
		Quiet:  true,
	})
}

// applyPersonality resolves the output personality once the config is
// loaded. Precedence: --personality flag, then the ATTCK_PERSONALITY
// environment variable, then output.personality from the config file,
// then the TTY default.
func applyPersonality() {
	if personalityLevel != "" {
		ux.SetPersonalityLevel(ux.ParsePersonalityLevel(personalityLevel))
		return
	}
	if env := os.Getenv("ATTCK_PERSONALITY"); env != "" {
		ux.SetPersonalityLevel(ux.ParsePersonalityLevel(env))
		return
	}
	if cfg := config.Global.Output.Personality; cfg != "" {
		ux.SetPersonalityLevel(ux.ParsePersonalityLevel(cfg))
		return
	}
	ux.InitPersonality()
}

// resolveMatrixPath picks the dataset location: the --matrix flag wins,
// then the config file, then the installer default.
func resolveMatrixPath() string {
	if matrixPath != "" {
		return expandPath(matrixPath)
	}
	if config.Global.Matrix.Path != "" {
		return expandPath(config.Global.Matrix.Path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".mitre", "matrix.json")
	}
	return filepath.Join(home, ".mitre", "matrix.json")
}

// openEngine loads the dataset and wraps it in a query engine. A
// missing or malformed matrix file is fatal; a query with no matches
// is not, and is handled downstream by the presenters.
func openEngine() (*attack.Engine, *attack.Dataset) {
	path := resolveMatrixPath()
	logger.Debug("loading matrix", "path", path)

	ds, err := attack.Load(path)
	if err != nil {
		logger.Error("matrix load failed", "path", path, "error", err)
		if errors.Is(err, attack.ErrNotFound) {
			ux.Error(fmt.Sprintf("Could not find the ATT&CK dataset at %s", path))
			ux.Muted("Run the installation script to download it, or point --matrix at an existing copy.")
		} else {
			ux.Error(fmt.Sprintf("Could not parse the ATT&CK dataset: %v", err))
		}
		os.Exit(1)
	}

	logger.Debug("matrix loaded", "objects", len(ds.Objects))
	return attack.NewEngine(ds), ds
}

// queryFrom joins the positional args into a single query string so
// multi-word names work without quoting.
func queryFrom(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
