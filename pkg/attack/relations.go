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

// relationshipUses is the only relationship type this tool traverses.
const relationshipUses = "uses"

// TechniquesUsedBy returns every technique a group uses.
//
// Two linear passes: collect the target_refs of all "uses" relationships
// whose source is groupID, then gather the techniques those refs point
// at. Refs that point at nothing (or at non-techniques) are silently
// dropped. Both passes are O(objects); no index is kept between calls
// because each CLI invocation performs at most one query.
//
// Result order follows file order and is not part of the contract;
// callers sort for display.
func (d *Dataset) TechniquesUsedBy(groupID string) []*Technique {
	targets := make(map[string]struct{})
	for _, obj := range d.Objects {
		rel, ok := obj.(*Relationship)
		if !ok {
			continue
		}
		if rel.RelationshipType == relationshipUses && rel.SourceRef == groupID {
			targets[rel.TargetRef] = struct{}{}
		}
	}

	var techniques []*Technique
	for _, obj := range d.Objects {
		if t, ok := obj.(*Technique); ok {
			if _, hit := targets[t.ID]; hit {
				techniques = append(techniques, t)
			}
		}
	}
	return techniques
}

// GroupsUsing returns every group that uses a technique.
//
// Symmetric to TechniquesUsedBy: collect source_refs of "uses"
// relationships targeting techniqueID, then gather the matching groups.
func (d *Dataset) GroupsUsing(techniqueID string) []*Group {
	sources := make(map[string]struct{})
	for _, obj := range d.Objects {
		rel, ok := obj.(*Relationship)
		if !ok {
			continue
		}
		if rel.RelationshipType == relationshipUses && rel.TargetRef == techniqueID {
			sources[rel.SourceRef] = struct{}{}
		}
	}

	var groups []*Group
	for _, obj := range d.Objects {
		if g, ok := obj.(*Group); ok {
			if _, hit := sources[g.ID]; hit {
				groups = append(groups, g)
			}
		}
	}
	return groups
}
