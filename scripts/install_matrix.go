//go:build ignore

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// install_matrix downloads the MITRE ATT&CK enterprise dataset to the
// location attck reads it from.
//
// Usage:
//
//	go run scripts/install_matrix.go
//	go run scripts/install_matrix.go -o /custom/path/matrix.json
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const matrixURL = "https://raw.githubusercontent.com/mitre/cti/master/enterprise-attack/enterprise-attack.json"

func main() {
	var out string
	flag.StringVar(&out, "o", "", "Output path (default: ~/.mitre/matrix.json)")
	flag.Parse()

	if out == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not find the home directory: %v\n", err)
			os.Exit(1)
		}
		out = filepath.Join(home, ".mitre", "matrix.json")
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "could not create %s: %v\n", filepath.Dir(out), err)
		os.Exit(1)
	}

	fmt.Printf("Downloading the ATT&CK enterprise dataset...\n")
	client := &http.Client{Timeout: 5 * time.Minute}
	resp, err := client.Get(matrixURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "download failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "download failed: HTTP %d\n", resp.StatusCode)
		os.Exit(1)
	}

	// Write to a temp file first so a failed download never clobbers a
	// working dataset.
	tmp, err := os.CreateTemp(filepath.Dir(out), "matrix-*.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create the temp file: %v\n", err)
		os.Exit(1)
	}
	n, err := io.Copy(tmp, resp.Body)
	tmp.Close()
	if err != nil {
		os.Remove(tmp.Name())
		fmt.Fprintf(os.Stderr, "download interrupted: %v\n", err)
		os.Exit(1)
	}
	if err := os.Rename(tmp.Name(), out); err != nil {
		os.Remove(tmp.Name())
		fmt.Fprintf(os.Stderr, "could not move the dataset into place: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d bytes to %s\n", n, out)
}
