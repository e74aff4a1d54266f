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
	"sort"
	"strings"
)

// Engine implements the query operations the CLI exposes.
//
// Every operation is a pure function of the loaded Dataset: same dataset,
// same query, same result, in the same order. The Engine holds no state
// besides the Dataset pointer and performs no I/O, which keeps it
// independently testable away from the presentation layer.
type Engine struct {
	ds *Dataset
}

// NewEngine creates an Engine over a loaded dataset.
func NewEngine(ds *Dataset) *Engine {
	return &Engine{ds: ds}
}

// GroupEntry pairs a group with its resolved MITRE identifier.
type GroupEntry struct {
	Group   *Group
	MitreID string
}

// TechniqueEntry pairs a technique with its resolved MITRE identifier.
type TechniqueEntry struct {
	Technique *Technique
	MitreID   string
}

// TacticEntry pairs a tactic with its resolved MITRE identifier.
type TacticEntry struct {
	Tactic  *Tactic
	MitreID string
}

// TacticTechniques is one tactic bucket inside a group detail: the
// tactic's display name and the group's techniques that fall under it.
type TacticTechniques struct {
	Tactic     string
	Techniques []TechniqueEntry
}

// GroupDetail is the full answer for one matched group.
type GroupDetail struct {
	Group   *Group
	MitreID string

	// TacticGroups buckets the group's techniques by tactic display
	// name, tactics sorted alphabetically, techniques within each
	// bucket sorted by name. A technique with phases under several
	// tactics appears in each of those buckets.
	TacticGroups []TacticTechniques

	// TotalTechniques counts distinct techniques the group uses,
	// including ones with no mitre-attack kill chain phase (those
	// appear in no bucket but still count).
	TotalTechniques int
}

// TechniqueDetail is the full answer for one matched technique.
type TechniqueDetail struct {
	Technique *Technique
	MitreID   string

	// UsedBy lists the groups using this technique, sorted by name.
	UsedBy []GroupEntry
}

// TacticResult is the answer of a tactic search.
//
// Exactly one of the two shapes is populated: when Matches is non-empty,
// RelatedTechniques carries the techniques whose phases match the query;
// when Matches is empty, AllTactics carries the fallback listing. The
// presenter uses Matched to pick the negative-result message.
type TacticResult struct {
	Matches           []TacticEntry
	RelatedTechniques []TechniqueEntry
	AllTactics        []TacticEntry
}

// Matched reports whether the query hit at least one tactic record.
func (r TacticResult) Matched() bool {
	return len(r.Matches) > 0
}

// ListGroups returns every group in the dataset, sorted ascending by
// name. A group with no name sorts as the empty string, before any
// named group.
func (e *Engine) ListGroups() []GroupEntry {
	var entries []GroupEntry
	for _, g := range e.ds.Groups() {
		entries = append(entries, GroupEntry{Group: g, MitreID: MitreIDOr(g, "N/A")})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Group.Name < entries[j].Group.Name
	})
	return entries
}

// FindGroups returns every group whose name or any alias contains the
// fragment, case-insensitively, in dataset order. All matches are
// returned, not just the first; the presenter renders each as its own
// block. An empty result means "no such group", which is distinct from
// a matched group that happens to use zero techniques.
func (e *Engine) FindGroups(fragment string) []GroupDetail {
	var details []GroupDetail
	for _, g := range e.ds.Groups() {
		if !groupMatches(g, fragment) {
			continue
		}
		details = append(details, e.groupDetail(g))
	}
	return details
}

// groupMatches checks the group's name and aliases for the fragment.
func groupMatches(g *Group, fragment string) bool {
	if containsFold(g.Name, fragment) {
		return true
	}
	for _, alias := range g.Aliases {
		if containsFold(alias, fragment) {
			return true
		}
	}
	return false
}

// groupDetail assembles the tactic-bucketed technique view of a group.
func (e *Engine) groupDetail(g *Group) GroupDetail {
	techniques := e.ds.TechniquesUsedBy(g.ID)

	buckets := make(map[string][]TechniqueEntry)
	for _, t := range techniques {
		entry := TechniqueEntry{Technique: t, MitreID: MitreIDOr(t, "N/A")}
		for _, phase := range t.MitrePhases() {
			name := TacticDisplayName(phase.PhaseName)
			buckets[name] = append(buckets[name], entry)
		}
	}

	var tacticGroups []TacticTechniques
	for tactic, entries := range buckets {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Technique.Name < entries[j].Technique.Name
		})
		tacticGroups = append(tacticGroups, TacticTechniques{Tactic: tactic, Techniques: entries})
	}
	sort.Slice(tacticGroups, func(i, j int) bool {
		return tacticGroups[i].Tactic < tacticGroups[j].Tactic
	})

	return GroupDetail{
		Group:           g,
		MitreID:         MitreIDOr(g, "N/A"),
		TacticGroups:    tacticGroups,
		TotalTechniques: len(techniques),
	}
}

// FindTechniqueByID looks a technique up by its canonical MITRE id.
//
// The match is exact but case-insensitive ("t1055" finds T1055). Only
// the first technique in dataset order is returned: canonical ids are
// expected to be unique, so unlike the name-fragment lookups this one
// deliberately stops at the first hit.
func (e *Engine) FindTechniqueByID(id string) (TechniqueDetail, bool) {
	want := strings.ToUpper(id)
	for _, t := range e.ds.Techniques() {
		mitreID, ok := MitreID(t)
		if !ok {
			continue
		}
		if strings.EqualFold(mitreID, want) {
			return e.techniqueDetail(t), true
		}
	}
	return TechniqueDetail{}, false
}

// FindTechniquesByName returns every technique whose name contains the
// fragment, case-insensitively, in dataset order.
func (e *Engine) FindTechniquesByName(fragment string) []TechniqueDetail {
	var details []TechniqueDetail
	for _, t := range e.ds.Techniques() {
		if containsFold(t.Name, fragment) {
			details = append(details, e.techniqueDetail(t))
		}
	}
	return details
}

// techniqueDetail attaches the used-by group list, sorted by name.
func (e *Engine) techniqueDetail(t *Technique) TechniqueDetail {
	var usedBy []GroupEntry
	for _, g := range e.ds.GroupsUsing(t.ID) {
		usedBy = append(usedBy, GroupEntry{Group: g, MitreID: MitreIDOr(g, "N/A")})
	}
	sort.SliceStable(usedBy, func(i, j int) bool {
		return usedBy[i].Group.Name < usedBy[j].Group.Name
	})
	return TechniqueDetail{
		Technique: t,
		MitreID:   MitreIDOr(t, "N/A"),
		UsedBy:    usedBy,
	}
}

// FindTactics searches tactics by name or shortname fragment.
//
// Query and candidates are both normalized (lower-case, hyphens and
// spaces to underscores) before substring matching, so
// "privilege-escalation", "Privilege Escalation" and
// "privilege_escalation" are the same query. A tactic matching on both
// its name and shortname is returned once.
//
// When at least one tactic matches, RelatedTechniques is filled with an
// independent pass over all techniques: any technique carrying a
// mitre-attack phase whose normalized phase name contains the normalized
// query, sorted by technique name. The pass is keyed on the query, not
// on which tactic records matched.
//
// When nothing matches, AllTactics carries every tactic sorted by name
// so the presenter can list what is available.
func (e *Engine) FindTactics(fragment string) TacticResult {
	query := NormalizeTacticQuery(fragment)

	var result TacticResult
	for _, t := range e.ds.Tactics() {
		if tacticMatches(t, query) {
			result.Matches = append(result.Matches, TacticEntry{Tactic: t, MitreID: MitreIDOr(t, "N/A")})
		}
	}

	if len(result.Matches) == 0 {
		for _, t := range e.ds.Tactics() {
			result.AllTactics = append(result.AllTactics, TacticEntry{Tactic: t, MitreID: MitreIDOr(t, "N/A")})
		}
		sort.SliceStable(result.AllTactics, func(i, j int) bool {
			return result.AllTactics[i].Tactic.Name < result.AllTactics[j].Tactic.Name
		})
		return result
	}

	for _, t := range e.ds.Techniques() {
		if techniquePhaseMatches(t, query) {
			result.RelatedTechniques = append(result.RelatedTechniques,
				TechniqueEntry{Technique: t, MitreID: MitreIDOr(t, "N/A")})
		}
	}
	sort.SliceStable(result.RelatedTechniques, func(i, j int) bool {
		return result.RelatedTechniques[i].Technique.Name < result.RelatedTechniques[j].Technique.Name
	})
	return result
}

// tacticMatches checks a tactic's name and shortname against a
// normalized query.
func tacticMatches(t *Tactic, query string) bool {
	if t.Name != "" && strings.Contains(NormalizeTacticQuery(t.Name), query) {
		return true
	}
	if t.Shortname != "" && strings.Contains(NormalizeTacticQuery(t.Shortname), query) {
		return true
	}
	return false
}

// techniquePhaseMatches checks a technique's mitre-attack phases against
// a normalized query.
func techniquePhaseMatches(t *Technique, query string) bool {
	for _, phase := range t.MitrePhases() {
		if strings.Contains(NormalizeTacticQuery(phase.PhaseName), query) {
			return true
		}
	}
	return false
}
