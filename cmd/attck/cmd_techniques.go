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

	"github.com/AleutianAI/attck/pkg/ux"
	"github.com/spf13/cobra"
)

func runTid(cmd *cobra.Command, args []string) {
	eng, _ := openEngine()
	id := args[0]

	detail, found := eng.FindTechniqueByID(id)
	logger.Info("tid query", "id", id, "found", found)

	if !found {
		ux.NotFound(fmt.Sprintf("No technique has the id %q.", id))
		return
	}

	printTechniqueDetail(detail)
}

func runTn(cmd *cobra.Command, args []string) {
	eng, ds := openEngine()
	query := queryFrom(args)

	matches := eng.FindTechniquesByName(query)
	logger.Info("tn query", "query", query, "matches", len(matches))

	if len(matches) == 0 {
		ux.NotFound(fmt.Sprintf("No technique name contains %q.", query))
		printSuggestions(newSuggester(ds), query)
		return
	}

	for _, d := range matches {
		printTechniqueDetail(d)
	}
}
