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
	"github.com/spf13/cobra"
)

func runTactic(cmd *cobra.Command, args []string) {
	eng, ds := openEngine()
	query := queryFrom(args)

	result := eng.FindTactics(query)
	logger.Info("tactic query", "query", query,
		"matches", len(result.Matches), "related", len(result.RelatedTechniques))

	printTacticResult(query, result)
	if !result.Matched() {
		printSuggestions(newSuggester(ds), query)
	}
}
