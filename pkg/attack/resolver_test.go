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

import "testing"

func TestMitreID(t *testing.T) {
	t.Run("first mitre-attack reference wins", func(t *testing.T) {
		tech := &Technique{
			ID: "attack-pattern--1",
			ExternalReferences: []ExternalReference{
				{SourceName: "capec", ExternalID: "CAPEC-242"},
				{SourceName: "mitre-attack", ExternalID: "T1055"},
				{SourceName: "mitre-attack", ExternalID: "T9999"}, // deprecated duplicate
			},
		}
		id, ok := MitreID(tech)
		if !ok {
			t.Fatal("MitreID: ok = false, want true")
		}
		if id != "T1055" {
			t.Errorf("MitreID = %s, want T1055 (first entry must win)", id)
		}
	})

	t.Run("no references means absent", func(t *testing.T) {
		if _, ok := MitreID(&Group{ID: "intrusion-set--1"}); ok {
			t.Error("MitreID: ok = true, want false")
		}
	})

	t.Run("no mitre-attack source means absent", func(t *testing.T) {
		g := &Group{
			ID: "intrusion-set--1",
			ExternalReferences: []ExternalReference{
				{SourceName: "capec", ExternalID: "CAPEC-1"},
			},
		}
		if _, ok := MitreID(g); ok {
			t.Error("MitreID: ok = true, want false")
		}
	})

	t.Run("empty external_id on the first match means absent", func(t *testing.T) {
		g := &Group{
			ID: "intrusion-set--1",
			ExternalReferences: []ExternalReference{
				{SourceName: "mitre-attack", URL: "https://attack.mitre.org"},
				{SourceName: "mitre-attack", ExternalID: "G0001"},
			},
		}
		// The first mitre-attack entry is authoritative even when it
		// carries no id; the resolver must not fall through to later ones.
		if _, ok := MitreID(g); ok {
			t.Error("MitreID: ok = true, want false")
		}
	})

	t.Run("relationships never resolve", func(t *testing.T) {
		if _, ok := MitreID(&Relationship{ID: "relationship--1"}); ok {
			t.Error("MitreID: ok = true, want false")
		}
	})

	t.Run("MitreIDOr falls back", func(t *testing.T) {
		if got := MitreIDOr(&Group{ID: "intrusion-set--1"}, "N/A"); got != "N/A" {
			t.Errorf("MitreIDOr = %s, want N/A", got)
		}
	})
}
