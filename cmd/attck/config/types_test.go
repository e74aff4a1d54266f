// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig verifies the built-in defaults pass validation.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate(), "defaults must validate")

	assert.NotEmpty(t, cfg.Matrix.Path)
	assert.Equal(t, ".mitre", filepath.Base(filepath.Dir(cfg.Matrix.Path)))
	assert.Equal(t, "matrix.json", filepath.Base(cfg.Matrix.Path))
	assert.Equal(t, "full", cfg.Output.Personality)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

// TestValidate_MatrixPathRequired verifies an empty matrix path is rejected.
func TestValidate_MatrixPathRequired(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Matrix.Path = ""

	assert.Error(t, cfg.Validate())
}

// TestValidate_PersonalityValues verifies the personality enum.
func TestValidate_PersonalityValues(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"full", false},
		{"standard", false},
		{"minimal", false},
		{"machine", false},
		{"", false},
		{"loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Output.Personality = tt.value
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err, "personality %q should be rejected", tt.value)
			} else {
				assert.NoError(t, err, "personality %q should be accepted", tt.value)
			}
		})
	}
}

// TestValidate_LogLevelValues verifies the log level enum.
func TestValidate_LogLevelValues(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg.Logging.Level = "debug"
	assert.NoError(t, cfg.Validate())
}
