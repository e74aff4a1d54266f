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

func runAptList(cmd *cobra.Command, args []string) {
	eng, _ := openEngine()
	entries := eng.ListGroups()
	logger.Info("apt-list", "groups", len(entries))
	printGroupList(entries)
}

func runApt(cmd *cobra.Command, args []string) {
	eng, ds := openEngine()
	query := queryFrom(args)

	matches := eng.FindGroups(query)
	logger.Info("apt query", "query", query, "matches", len(matches))

	// An unknown group is an answer, not a failure: report it on stdout
	// and exit clean so scripted callers can tell it apart from a
	// missing dataset.
	if len(matches) == 0 {
		ux.NotFound(fmt.Sprintf("No group matches %q.", query))
		printSuggestions(newSuggester(ds), query)
		return
	}

	for _, d := range matches {
		printGroupDetail(d)
	}
}
