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
	"testing"

	"github.com/AleutianAI/attck/pkg/attack"
)

// =============================================================================
// Levenshtein Distance Tests
// =============================================================================

func TestLevenshtein_IdenticalStrings(t *testing.T) {
	tests := []struct {
		name string
		s    string
	}{
		{"empty", ""},
		{"single char", "a"},
		{"word", "sandworm"},
		{"phrase", "cozy bear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist := levenshtein(tt.s, tt.s)
			if dist != 0 {
				t.Errorf("levenshtein(%q, %q) = %d, want 0", tt.s, tt.s, dist)
			}
		})
	}
}

func TestLevenshtein_SingleEdits(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"both empty", "", "", 0},
		{"a empty", "", "abc", 3},
		{"b empty", "abc", "", 3},
		{"substitution", "cat", "bat", 1},
		{"insertion", "cat", "cart", 1},
		{"deletion", "cart", "cat", 1},
		{"transposition needs 2", "ab", "ba", 2}, // Levenshtein doesn't have transposition
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist := levenshtein(tt.a, tt.b)
			if dist != tt.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, dist, tt.want)
			}
		})
	}
}

func TestLevenshtein_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"sandworm", "sandwrom"},
		{"phishing", "pishing"},
	}

	for _, pair := range pairs {
		d1 := levenshtein(pair[0], pair[1])
		d2 := levenshtein(pair[1], pair[0])
		if d1 != d2 {
			t.Errorf("levenshtein not symmetric for %q/%q: %d vs %d", pair[0], pair[1], d1, d2)
		}
	}
}

// =============================================================================
// Suggester Tests
// =============================================================================

func suggestFixture() *attack.Dataset {
	return &attack.Dataset{
		Objects: []attack.Object{
			&attack.Group{ID: "intrusion-set--1", Name: "Sandworm Team", Aliases: []string{"Voodoo Bear"}},
			&attack.Group{ID: "intrusion-set--2", Name: "APT29", Aliases: []string{"Cozy Bear"}},
			&attack.Technique{ID: "attack-pattern--1", Name: "Process Injection"},
			&attack.Technique{ID: "attack-pattern--2", Name: "Spearphishing Attachment"},
			&attack.Tactic{ID: "x-mitre-tactic--1", Name: "Privilege Escalation", Shortname: "privilege-escalation"},
		},
	}
}

func TestSuggester_CorrectsTypos(t *testing.T) {
	s := newSuggester(suggestFixture())

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"swapped letters", "sandwrom", "sandworm"},
		{"missing letter", "injecton", "injection"},
		{"wrong letter", "bexr", "bear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.suggest(tt.query)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("suggest(%q) = %v, want [%q]", tt.query, got, tt.want)
			}
		})
	}
}

func TestSuggester_ExactMatchSkipped(t *testing.T) {
	s := newSuggester(suggestFixture())

	if got := s.suggest("sandworm"); len(got) != 0 {
		t.Errorf("suggest of an exact vocabulary word = %v, want none", got)
	}
}

func TestSuggester_ShortWordsSkipped(t *testing.T) {
	s := newSuggester(suggestFixture())

	// "ap" is two characters, below the check threshold
	if got := s.suggest("ap"); len(got) != 0 {
		t.Errorf("suggest(%q) = %v, want none", "ap", got)
	}
}

func TestSuggester_NothingClose(t *testing.T) {
	s := newSuggester(suggestFixture())

	if got := s.suggest("xylophone"); len(got) != 0 {
		t.Errorf("suggest(%q) = %v, want none", "xylophone", got)
	}
}

func TestSuggester_FrequencyBreaksTies(t *testing.T) {
	ds := &attack.Dataset{
		Objects: []attack.Object{
			// "bear" appears twice in the vocabulary, "beam" once
			&attack.Group{ID: "intrusion-set--1", Name: "Voodoo Bear"},
			&attack.Group{ID: "intrusion-set--2", Name: "Cozy Bear"},
			&attack.Group{ID: "intrusion-set--3", Name: "Ion Beam"},
		},
	}
	s := newSuggester(ds)

	got := s.suggest("beat")
	if len(got) != 1 || got[0] != "bear" {
		t.Errorf("suggest(%q) = %v, want [%q]", "beat", got, "bear")
	}
}

func TestSuggester_DeduplicatesAcrossWords(t *testing.T) {
	s := newSuggester(suggestFixture())

	// Both words correct to "bear"; it should appear once
	got := s.suggest("bexr baer")
	if len(got) != 1 || got[0] != "bear" {
		t.Errorf("suggest(%q) = %v, want [%q]", "bexr baer", got, "bear")
	}
}

func TestExtractWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain phrase", "Cozy Bear", []string{"Cozy", "Bear"}},
		{"technique id is all separators", "T1055.001", []string{"T"}},
		{"punctuation splits", "spear-phishing", []string{"spear", "phishing"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractWords(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("extractWords(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("extractWords(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}
