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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var tacticTitler = cases.Title(language.English)

// TacticDisplayName turns a kill chain phase name into its display form:
// hyphens become spaces and each word is title-cased, so
// "privilege-escalation" renders as "Privilege Escalation".
func TacticDisplayName(phaseName string) string {
	return tacticTitler.String(strings.ReplaceAll(phaseName, "-", " "))
}

// NormalizeTacticQuery canonicalizes a tactic name, shortname or phase
// name for matching: lower-cased, with hyphens and spaces collapsed to
// underscores. "privilege-escalation", "Privilege Escalation" and
// "privilege_escalation" all normalize to the same string.
func NormalizeTacticQuery(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// containsFold reports whether s contains fragment, case-insensitively.
func containsFold(s, fragment string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(fragment))
}
