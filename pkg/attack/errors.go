// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package attack loads and queries a local copy of the MITRE ATT&CK matrix.
//
// The package is split into four concerns:
//
//   - store.go: reads the matrix JSON file into a Dataset of typed objects
//   - resolver.go: resolves canonical MITRE identifiers (T1055, G0034, ...)
//   - relations.go: traverses "uses" relationships between groups and techniques
//   - query.go: the query operations the CLI exposes
//
// A Dataset is loaded once per invocation and is read-only afterwards.
// Nothing in this package touches the network or writes to disk.
//
// # Thread Safety
//
// Dataset and Engine are safe for concurrent reads after Load returns.
// The CLI itself is single-shot and never exercises that.
package attack

import (
	"errors"
	"fmt"
)

// Sentinel errors for dataset loading.
var (
	// ErrNotFound is returned by Load when the matrix file does not exist.
	// The CLI treats this as fatal and tells the user to run the installer.
	ErrNotFound = errors.New("matrix file not found")

	// ErrParse is returned by Load when the matrix file is not valid JSON
	// or an object is missing a mandatory field (type, id). Loads are
	// all-or-nothing: a single bad object fails the whole load.
	ErrParse = errors.New("matrix file is malformed")
)

// ObjectError reports which object in the matrix failed to decode.
//
// Index is the position in the top-level objects array, which is the only
// stable way to point at a record that may not even have an id.
type ObjectError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *ObjectError) Error() string {
	return fmt.Sprintf("object %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ObjectError) Unwrap() error {
	return e.Err
}
