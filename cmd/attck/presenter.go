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
	"fmt"
	"strconv"
	"strings"

	"github.com/AleutianAI/attck/pkg/attack"
	"github.com/AleutianAI/attck/pkg/ux"
)

// Presenters render query results through the ux package so the same
// result switches between rich and machine output with the personality
// level. They never decide what matched; that happened in pkg/attack.

// printGroupList renders the apt-list output.
func printGroupList(entries []attack.GroupEntry) {
	ux.Title(fmt.Sprintf("Adversary Groups (%d)", len(entries)))
	for _, e := range entries {
		name := e.Group.Name
		if name == "" {
			name = "(unnamed)"
		}
		line := fmt.Sprintf("%s %s", ux.MitreTag(e.MitreID), name)
		if len(e.Group.Aliases) > 0 {
			line += " (" + strings.Join(e.Group.Aliases, ", ") + ")"
		}
		fmt.Println(line)
	}
}

// printGroupDetail renders one matched group with its techniques
// bucketed by tactic.
func printGroupDetail(d attack.GroupDetail) {
	ux.Separator()
	ux.Field("Name", d.Group.Name)
	ux.Field("MITRE ID", d.MitreID)
	if len(d.Group.Aliases) > 0 {
		ux.Field("Aliases", strings.Join(d.Group.Aliases, ", "))
	}
	if d.Group.Description != "" {
		fmt.Println()
		fmt.Println(d.Group.Description)
	}

	for _, bucket := range d.TacticGroups {
		ux.Section(bucket.Tactic)
		for _, t := range bucket.Techniques {
			ux.Bullet(fmt.Sprintf("%s %s", ux.MitreTag(t.MitreID), t.Technique.Name))
		}
	}

	fmt.Println()
	ux.Field("Total Techniques", strconv.Itoa(d.TotalTechniques))
	printReferences(d.Group.References())
}

// printTechniqueDetail renders one matched technique.
func printTechniqueDetail(d attack.TechniqueDetail) {
	t := d.Technique

	ux.Separator()
	ux.Field("Name", t.Name)
	ux.Field("MITRE ID", d.MitreID)

	if phases := t.MitrePhases(); len(phases) > 0 {
		names := make([]string, 0, len(phases))
		for _, p := range phases {
			names = append(names, attack.TacticDisplayName(p.PhaseName))
		}
		ux.Field("Tactics", strings.Join(names, ", "))
	}
	if len(t.Platforms) > 0 {
		ux.Field("Platforms", strings.Join(t.Platforms, ", "))
	}
	if len(t.PermissionsRequired) > 0 {
		ux.Field("Permissions Required", strings.Join(t.PermissionsRequired, ", "))
	}
	if len(t.EffectivePermissions) > 0 {
		ux.Field("Effective Permissions", strings.Join(t.EffectivePermissions, ", "))
	}
	if len(t.DefenseBypassed) > 0 {
		ux.Field("Defense Bypassed", strings.Join(t.DefenseBypassed, ", "))
	}
	if len(t.DataSources) > 0 {
		ux.Field("Data Sources", strings.Join(t.DataSources, ", "))
	}
	if len(t.SystemRequirements) > 0 {
		ux.Field("System Requirements", strings.Join(t.SystemRequirements, ", "))
	}
	if t.RemoteSupport {
		ux.Field("Remote Support", "yes")
	}

	if t.Description != "" {
		fmt.Println()
		fmt.Println(t.Description)
	}
	if t.Detection != "" {
		ux.Section("Detection")
		fmt.Println(t.Detection)
	}

	if len(d.UsedBy) > 0 {
		ux.Section("Used by Groups")
		for _, g := range d.UsedBy {
			ux.Bullet(fmt.Sprintf("%s %s", ux.MitreTag(g.MitreID), g.Group.Name))
		}
	}

	printReferences(t.References())
}

// printTacticResult renders a tactic search: the matched tactics and
// their related techniques, or the fallback listing when nothing hit.
func printTacticResult(query string, r attack.TacticResult) {
	if !r.Matched() {
		ux.NotFound(fmt.Sprintf("No tactic matches %q.", query))
		ux.Section("Available Tactics")
		for _, t := range r.AllTactics {
			line := fmt.Sprintf("%s %s", ux.MitreTag(t.MitreID), t.Tactic.Name)
			if t.Tactic.Shortname != "" {
				line += " (" + t.Tactic.Shortname + ")"
			}
			ux.Bullet(line)
		}
		return
	}

	for _, m := range r.Matches {
		ux.Separator()
		ux.Field("Name", m.Tactic.Name)
		ux.Field("MITRE ID", m.MitreID)
		if m.Tactic.Shortname != "" {
			ux.Field("Shortname", m.Tactic.Shortname)
		}
		if m.Tactic.Description != "" {
			fmt.Println()
			fmt.Println(m.Tactic.Description)
		}
		printReferences(m.Tactic.References())
	}

	if len(r.RelatedTechniques) > 0 {
		ux.Section("Related Techniques")
		for _, t := range r.RelatedTechniques {
			ux.Bullet(fmt.Sprintf("%s %s", ux.MitreTag(t.MitreID), t.Technique.Name))
		}
	}
}

// printReferences renders an object's external references as links,
// skipping entries without a URL.
func printReferences(refs []attack.ExternalReference) {
	var linked []attack.ExternalReference
	for _, ref := range refs {
		if ref.URL != "" {
			linked = append(linked, ref)
		}
	}
	if len(linked) == 0 {
		return
	}

	ux.Section("References")
	for _, ref := range linked {
		ux.Link(ref.SourceName, ref.URL)
	}
}

// printSuggestions offers corrections after a no-match result.
func printSuggestions(s *suggester, query string) {
	corrections := s.suggest(query)
	if len(corrections) == 0 {
		return
	}
	ux.Muted(fmt.Sprintf("Did you mean: %s?", strings.Join(corrections, ", ")))
}
