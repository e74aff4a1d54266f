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
	"strings"
	"unicode"

	"github.com/AleutianAI/attck/pkg/attack"
)

// maxSuggestDistance is the largest edit distance still offered as a
// correction. Anything further off reads as a guess, not a suggestion.
const maxSuggestDistance = 2

// suggester offers "did you mean" corrections for queries that matched
// nothing. The vocabulary is built from the loaded dataset itself, so
// every suggested word is guaranteed to appear in at least one group,
// technique, or tactic name.
//
// Safe for concurrent reads after construction; never mutated afterwards.
type suggester struct {
	terms map[string]int
}

// newSuggester indexes every word of every group name, alias, technique
// name, tactic name and shortname. Frequency counts how many records a
// word appears in, so ties between equally close corrections resolve to
// the more common word.
func newSuggester(ds *attack.Dataset) *suggester {
	s := &suggester{terms: make(map[string]int)}

	for _, g := range ds.Groups() {
		s.index(g.Name)
		for _, alias := range g.Aliases {
			s.index(alias)
		}
	}
	for _, t := range ds.Techniques() {
		s.index(t.Name)
	}
	for _, t := range ds.Tactics() {
		s.index(t.Name)
		s.index(t.Shortname)
	}

	return s
}

func (s *suggester) index(name string) {
	for _, word := range extractWords(name) {
		s.terms[strings.ToLower(word)]++
	}
}

// suggest returns corrections for the misspelled words of a query, in
// query order, one correction per word. Words under three characters
// and words already in the vocabulary are skipped. An empty result
// means no close-enough correction exists.
func (s *suggester) suggest(query string) []string {
	var corrections []string
	seen := make(map[string]struct{})

	for _, word := range extractWords(query) {
		if len(word) < 3 {
			continue
		}
		lower := strings.ToLower(word)
		if _, exact := s.terms[lower]; exact {
			continue
		}
		best, ok := s.closest(lower)
		if !ok {
			continue
		}
		if _, dup := seen[best]; dup {
			continue
		}
		seen[best] = struct{}{}
		corrections = append(corrections, best)
	}

	return corrections
}

// closest scans the vocabulary for the term nearest to word. Prefers
// lower distance, then higher frequency.
func (s *suggester) closest(word string) (string, bool) {
	var (
		best     string
		bestDist = maxSuggestDistance + 1
		bestFreq int
	)

	for term, freq := range s.terms {
		// Length gap alone can rule a term out before the DP runs.
		lenDiff := len(term) - len(word)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > maxSuggestDistance {
			continue
		}

		dist := levenshtein(word, term)
		if dist > maxSuggestDistance {
			continue
		}
		if dist < bestDist || (dist == bestDist && freq > bestFreq) {
			best = term
			bestDist = dist
			bestFreq = freq
		}
	}

	return best, best != ""
}

// levenshtein computes the edit distance between two strings using
// two-row dynamic programming, O(min(m,n)) space.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Keep a as the shorter string so the rows stay small
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			if a[i-1] == b[j-1] {
				curr[i] = prev[i-1]
			} else {
				curr[i] = 1 + minOf3(prev[i-1], prev[i], curr[i-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

func minOf3(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}

// extractWords splits text into runs of letters. Digits and punctuation
// act as separators, so "T1055.001" yields nothing and "Cozy Bear"
// yields two words.
func extractWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) {
			current.WriteRune(r)
		} else if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
