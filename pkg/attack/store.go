// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package attack

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Dataset is the fully loaded matrix: every object from the file, in file
// order, plus the load path for diagnostics.
//
// A Dataset is immutable after Load. Queries never add, remove or mutate
// objects; they only scan.
type Dataset struct {
	// Objects holds every decoded object in original file order.
	// File order is load-bearing: canonical id resolution and the
	// "first match wins" id lookup both depend on it.
	Objects []Object

	// Path is where the dataset was loaded from.
	Path string
}

// envelope is the minimal shape every object must satisfy before the
// kind-specific decode runs. Everything else is optional.
type envelope struct {
	Type string `json:"type" validate:"required"`
	ID   string `json:"id" validate:"required"`
}

// matrixFile mirrors the top level of the STIX bundle we consume.
type matrixFile struct {
	Objects []json.RawMessage `json:"objects"`
}

var envelopeValidate = validator.New()

// Load reads and decodes the matrix file at path.
//
// # Description
//
// The whole file is read and decoded in one pass. Objects are dispatched
// on their "type" field into the concrete types in record.go; types this
// tool does not understand become Generic objects and are retained.
// Unknown fields inside an object are ignored.
//
// The load is all-or-nothing. If any object fails to decode or is missing
// a mandatory field, no Dataset is returned.
//
// # Outputs
//
//   - *Dataset: every object in file order.
//   - error: ErrNotFound if path does not exist, ErrParse (wrapping the
//     decode detail, with the object index where applicable) otherwise.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read matrix file: %w", err)
	}

	var file matrixFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	ds := &Dataset{
		Objects: make([]Object, 0, len(file.Objects)),
		Path:    path,
	}
	for i, msg := range file.Objects {
		obj, err := decodeObject(msg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, &ObjectError{Index: i, Err: err})
		}
		ds.Objects = append(ds.Objects, obj)
	}
	return ds, nil
}

// decodeObject decodes one raw object, dispatching on its type field.
func decodeObject(msg json.RawMessage) (Object, error) {
	var env envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		return nil, err
	}
	if err := envelopeValidate.Struct(env); err != nil {
		return nil, fmt.Errorf("missing mandatory field: %w", err)
	}

	switch Kind(env.Type) {
	case KindGroup:
		var g Group
		if err := json.Unmarshal(msg, &g); err != nil {
			return nil, err
		}
		return &g, nil
	case KindTechnique:
		var t Technique
		if err := json.Unmarshal(msg, &t); err != nil {
			return nil, err
		}
		return &t, nil
	case KindTactic:
		var t Tactic
		if err := json.Unmarshal(msg, &t); err != nil {
			return nil, err
		}
		return &t, nil
	case KindRelationship:
		var r Relationship
		if err := json.Unmarshal(msg, &r); err != nil {
			return nil, err
		}
		return &r, nil
	default:
		return &Generic{ID: env.ID, Type: env.Type}, nil
	}
}

// Groups returns every group in file order.
func (d *Dataset) Groups() []*Group {
	var groups []*Group
	for _, obj := range d.Objects {
		if g, ok := obj.(*Group); ok {
			groups = append(groups, g)
		}
	}
	return groups
}

// Techniques returns every technique in file order.
func (d *Dataset) Techniques() []*Technique {
	var techniques []*Technique
	for _, obj := range d.Objects {
		if t, ok := obj.(*Technique); ok {
			techniques = append(techniques, t)
		}
	}
	return techniques
}

// Tactics returns every tactic in file order.
func (d *Dataset) Tactics() []*Tactic {
	var tactics []*Tactic
	for _, obj := range d.Objects {
		if t, ok := obj.(*Tactic); ok {
			tactics = append(tactics, t)
		}
	}
	return tactics
}
