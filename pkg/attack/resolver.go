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

// mitreSource is the source_name that carries canonical identifiers.
const mitreSource = "mitre-attack"

// MitreID resolves the canonical MITRE identifier of an object.
//
// It scans the object's external references in original order and returns
// the ExternalID of the first reference sourced from "mitre-attack". The
// scan must not sort or deduplicate: datasets can carry a deprecated
// mitre-attack reference after the current one, and the first entry is
// the authoritative one.
//
// Returns ok=false when the object has no mitre-attack reference or the
// matching reference has an empty external_id.
func MitreID(obj Object) (id string, ok bool) {
	for _, ref := range obj.References() {
		if ref.SourceName == mitreSource {
			if ref.ExternalID == "" {
				return "", false
			}
			return ref.ExternalID, true
		}
	}
	return "", false
}

// MitreIDOr returns the canonical MITRE identifier, or fallback when the
// object has none. Convenience for display code.
func MitreIDOr(obj Object, fallback string) string {
	if id, ok := MitreID(obj); ok {
		return id
	}
	return fallback
}
