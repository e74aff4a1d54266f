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

// Kind discriminates the STIX object types the matrix file contains.
//
// Only the four kinds below have query semantics. Every other type is
// decoded into a Generic object so the dataset round-trips future
// additions to the schema without breaking.
type Kind string

const (
	// KindGroup is an adversary group (STIX "intrusion-set").
	KindGroup Kind = "intrusion-set"

	// KindTechnique is an attack technique (STIX "attack-pattern").
	KindTechnique Kind = "attack-pattern"

	// KindTactic is a tactic category ("x-mitre-tactic").
	KindTactic Kind = "x-mitre-tactic"

	// KindRelationship is an edge between two objects ("relationship").
	KindRelationship Kind = "relationship"
)

// ExternalReference is one entry of an object's external_references list.
//
// The reference whose SourceName is "mitre-attack" carries the canonical
// MITRE identifier in ExternalID. Order matters: a dataset may carry both
// a current and a deprecated mitre-attack reference and the first one in
// file order is authoritative (see MitreID in resolver.go).
type ExternalReference struct {
	SourceName  string `json:"source_name"`
	ExternalID  string `json:"external_id,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// KillChainPhase ties a technique to one tactic stage.
//
// Only phases with KillChainName "mitre-attack" are meaningful here;
// other kill chains (e.g. lockheed) are carried but never matched.
type KillChainPhase struct {
	KillChainName string `json:"kill_chain_name"`
	PhaseName     string `json:"phase_name"`
}

// Object is the common contract of every record in a Dataset.
//
// The matrix file is a tagged union keyed by the "type" field. Rather
// than one struct with two dozen optional fields, each kind gets its own
// concrete type so that invalid combinations (a relationship with
// aliases, a tactic with a target_ref) cannot be represented at all.
type Object interface {
	// ObjectID returns the STIX id, the join key for relationships.
	ObjectID() string

	// ObjectKind returns the discriminant the object was decoded under.
	ObjectKind() Kind

	// References returns the external_references list in file order.
	// May be nil for objects that carry none.
	References() []ExternalReference
}

// Group is an adversary group (intrusion-set).
type Group struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name,omitempty"`
	Description        string              `json:"description,omitempty"`
	Aliases            []string            `json:"aliases,omitempty"`
	ExternalReferences []ExternalReference `json:"external_references,omitempty"`
	Version            string              `json:"x_mitre_version,omitempty"`
	Deprecated         bool                `json:"x_mitre_deprecated,omitempty"`
}

func (g *Group) ObjectID() string                { return g.ID }
func (g *Group) ObjectKind() Kind                { return KindGroup }
func (g *Group) References() []ExternalReference { return g.ExternalReferences }

// Technique is an attack technique (attack-pattern).
//
// The x_mitre_* fields past KillChainPhases have no traversal semantics;
// they are carried for display only.
type Technique struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name,omitempty"`
	Description          string              `json:"description,omitempty"`
	ExternalReferences   []ExternalReference `json:"external_references,omitempty"`
	KillChainPhases      []KillChainPhase    `json:"kill_chain_phases,omitempty"`
	Platforms            []string            `json:"x_mitre_platforms,omitempty"`
	PermissionsRequired  []string            `json:"x_mitre_permissions_required,omitempty"`
	EffectivePermissions []string            `json:"x_mitre_effective_permissions,omitempty"`
	Detection            string              `json:"x_mitre_detection,omitempty"`
	DataSources          []string            `json:"x_mitre_data_sources,omitempty"`
	SystemRequirements   []string            `json:"x_mitre_system_requirements,omitempty"`
	DefenseBypassed      []string            `json:"x_mitre_defense_bypassed,omitempty"`
	RemoteSupport        bool                `json:"x_mitre_remote_support,omitempty"`
	Version              string              `json:"x_mitre_version,omitempty"`
	Deprecated           bool                `json:"x_mitre_deprecated,omitempty"`
}

func (t *Technique) ObjectID() string                { return t.ID }
func (t *Technique) ObjectKind() Kind                { return KindTechnique }
func (t *Technique) References() []ExternalReference { return t.ExternalReferences }

// MitrePhases returns the kill chain phases belonging to the mitre-attack
// kill chain, in file order.
func (t *Technique) MitrePhases() []KillChainPhase {
	var phases []KillChainPhase
	for _, p := range t.KillChainPhases {
		if p.KillChainName == "mitre-attack" {
			phases = append(phases, p)
		}
	}
	return phases
}

// Tactic is a tactic category (x-mitre-tactic).
type Tactic struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name,omitempty"`
	Shortname          string              `json:"x_mitre_shortname,omitempty"`
	Description        string              `json:"description,omitempty"`
	ExternalReferences []ExternalReference `json:"external_references,omitempty"`
	Version            string              `json:"x_mitre_version,omitempty"`
}

func (t *Tactic) ObjectID() string                { return t.ID }
func (t *Tactic) ObjectKind() Kind                { return KindTactic }
func (t *Tactic) References() []ExternalReference { return t.ExternalReferences }

// Relationship is a typed edge between two objects.
//
// SourceRef and TargetRef are plain id strings. Referential integrity is
// not enforced anywhere: a ref that points at nothing is simply never a
// match during traversal.
type Relationship struct {
	ID               string `json:"id"`
	RelationshipType string `json:"relationship_type,omitempty"`
	SourceRef        string `json:"source_ref,omitempty"`
	TargetRef        string `json:"target_ref,omitempty"`
}

func (r *Relationship) ObjectID() string                { return r.ID }
func (r *Relationship) ObjectKind() Kind                { return KindRelationship }
func (r *Relationship) References() []ExternalReference { return nil }

// Generic is any object whose type this tool does not understand.
//
// Generics are retained in the Dataset so counts stay honest, but no
// query ever looks at them.
type Generic struct {
	ID   string
	Type string
}

func (g *Generic) ObjectID() string                { return g.ID }
func (g *Generic) ObjectKind() Kind                { return Kind(g.Type) }
func (g *Generic) References() []ExternalReference { return nil }
