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
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type AttckConfig struct {
	// Matrix: where the ATT&CK dataset lives on disk
	Matrix MatrixConfig `yaml:"matrix"`

	// Output: terminal presentation settings
	Output OutputConfig `yaml:"output"`

	// Logging: diagnostic log settings
	Logging LoggingConfig `yaml:"logging"`
}

type MatrixConfig struct {
	Path string `yaml:"path" validate:"required"` // e.g. ~/.mitre/matrix.json
}

type OutputConfig struct {
	// Personality can be "full", "standard", "minimal", or "machine"
	Personality string `yaml:"personality" validate:"omitempty,oneof=full standard minimal machine"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Dir   string `yaml:"dir,omitempty"`
}

// Validate checks the loaded config for structural problems
func (c *AttckConfig) Validate() error {
	return validate.Struct(c)
}

func DefaultConfig() AttckConfig {
	matrixPath := filepath.Join(".mitre", "matrix.json")
	if home, err := os.UserHomeDir(); err == nil {
		matrixPath = filepath.Join(home, ".mitre", "matrix.json")
	}
	return AttckConfig{
		Matrix: MatrixConfig{
			Path: matrixPath,
		},
		Output: OutputConfig{
			Personality: "full",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}
