// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides rich terminal output styling for the attck CLI.
package ux

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// attck color palette - ember reds and smoke grays
var (
	// Primary palette (brightest to darkest)
	ColorEmberBright  = lipgloss.Color("#FF6B5A") // Bright ember - highlights
	ColorEmberPrimary = lipgloss.Color("#E5484D") // Primary ember - main brand color
	ColorEmberDeep    = lipgloss.Color("#B2373C") // Deep ember - borders, accents
	ColorAmber        = lipgloss.Color("#F4D03F") // Amber - identifiers, warnings
	ColorSteel        = lipgloss.Color("#6C8EAD") // Steel blue - links, references

	// Dark palette (for muted elements)
	ColorSmoke = lipgloss.Color("#8A8F98") // Smoke - secondary text
	ColorAsh   = lipgloss.Color("#4C5058") // Ash - separators, muted text

	// Semantic colors
	ColorSuccess = lipgloss.Color("#46A758") // Green for success
	ColorWarning = lipgloss.Color("#F4D03F") // Amber for warnings
	ColorError   = lipgloss.Color("#E5484D") // Red for errors
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	// Text styles
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style

	// Domain styles
	MitreID lipgloss.Style // canonical identifiers like [T1055]
	Tactic  lipgloss.Style // tactic names
	URL     lipgloss.Style // reference links
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorEmberBright),
	Subtitle:  lipgloss.NewStyle().Foreground(ColorEmberPrimary),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorAsh),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorEmberBright).Bold(true),

	MitreID: lipgloss.NewStyle().Foreground(ColorAmber),
	Tactic:  lipgloss.NewStyle().Foreground(ColorEmberPrimary).Bold(true),
	URL:     lipgloss.NewStyle().Foreground(ColorSteel).Underline(true),
}

// Icon provides themed status icons
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconArrow   Icon = "→"
	IconBullet  Icon = "•"
)

// Render returns the icon with appropriate styling
func (i Icon) Render() string {
	switch i {
	case IconSuccess:
		return Styles.Success.Render(string(i))
	case IconWarning:
		return Styles.Warning.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	default:
		return string(i)
	}
}

// separatorWidth matches the classic 80-column block separator.
const separatorWidth = 80

// Print helpers that respect personality level

// Title prints a styled title
func Title(text string) {
	if GetPersonality().Level == PersonalityMachine {
		fmt.Println(text)
		return
	}
	fmt.Println(Styles.Title.Render(text))
}

// Warning prints a warning message
func Warning(text string) {
	p := GetPersonality()
	switch p.Level {
	case PersonalityMachine:
		fmt.Fprintf(os.Stderr, "WARN: %s\n", text)
	case PersonalityMinimal:
		fmt.Printf("%s %s\n", IconWarning.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconWarning.Render(), Styles.Warning.Render(text))
	}
}

// Error prints an error message
func Error(text string) {
	p := GetPersonality()
	switch p.Level {
	case PersonalityMachine:
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", text)
	case PersonalityMinimal:
		fmt.Printf("%s %s\n", IconError.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconError.Render(), Styles.Error.Render(text))
	}
}

// NotFound prints a negative-result message. Unlike Error it goes to
// stdout: an empty query result is an answer, not a failure.
func NotFound(text string) {
	if GetPersonality().Level == PersonalityMachine {
		fmt.Printf("NO_MATCH: %s\n", text)
		return
	}
	fmt.Println(Styles.Error.Render(text))
}

// Muted prints muted/secondary text
func Muted(text string) {
	if GetPersonality().Level == PersonalityMachine {
		return
	}
	fmt.Println(Styles.Muted.Render(text))
}

// Separator prints an 80-column divider between result blocks
func Separator() {
	if GetPersonality().Level == PersonalityMachine {
		fmt.Println("--")
		return
	}
	fmt.Println(Styles.Muted.Render(strings.Repeat("─", separatorWidth)))
}

// Field prints a "Label: value" line with the label emphasized
func Field(label, value string) {
	if GetPersonality().Level == PersonalityMachine {
		fmt.Printf("%s: %s\n", label, value)
		return
	}
	fmt.Printf("%s %s\n", Styles.Bold.Render(label+":"), value)
}

// Section prints a bold section heading preceded by a blank line
func Section(text string) {
	if GetPersonality().Level == PersonalityMachine {
		fmt.Printf("\n%s:\n", text)
		return
	}
	fmt.Printf("\n%s\n", Styles.Bold.Render(text+":"))
}

// Bullet prints an indented bullet item
func Bullet(text string) {
	if GetPersonality().Level == PersonalityMachine {
		fmt.Printf("- %s\n", text)
		return
	}
	fmt.Printf("  %s %s\n", IconBullet, text)
}

// MitreTag renders a bracketed canonical identifier like [T1055]
func MitreTag(id string) string {
	if GetPersonality().Level == PersonalityMachine {
		return "[" + id + "]"
	}
	return Styles.MitreID.Render("[" + id + "]")
}

// Link prints a reference entry with its source and URL
func Link(source, url string) {
	if GetPersonality().Level == PersonalityMachine {
		fmt.Printf("- %s %s\n", source, url)
		return
	}
	fmt.Printf("  %s %s - %s\n", IconBullet, Styles.Success.Render(source), Styles.URL.Render(url))
}
