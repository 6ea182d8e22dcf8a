// ============================================================================
// cpplite - C++Lite Front End
// ============================================================================
//
// Package:     astviewer
// Description: Styles for the AST viewer TUI
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package astviewer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/cpplite/internal/tui"
)

// Panel styles
var (
	ContentPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(tui.ColorDimmed).
				Padding(0, 1)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(tui.ColorPrimary).
			Padding(0, 2)
)

// Text styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(tui.ColorPrimary).
			Bold(true)

	SourceNameStyle = lipgloss.NewStyle().
			Foreground(tui.ColorSecondary).
			Bold(true)

	StatsStyle = lipgloss.NewStyle().
			Foreground(tui.ColorTextMuted)

	ReloadErrorStyle = lipgloss.NewStyle().
				Foreground(tui.ColorError).
				Bold(true)
)

// Logo
const Logo = "cpplite AST Viewer"
