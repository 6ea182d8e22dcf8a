// ============================================================================
// cpplite - C++Lite Front End
// ============================================================================
//
// Package:     version
// Description: Central version information for the cpplite toolchain
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for the cpplite components
const (
	// Toolchain version
	Toolchain = "0.1.0"

	// Component versions
	Lexer  = "0.1.0"
	Parser = "0.1.0"
	AST    = "0.1.0"
	CLI    = "0.1.0"
)

// Language is the name of the accepted source language
const Language = "C++Lite"

// Set at build time via -ldflags "-X github.com/msto63/cpplite/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "ast":
		return AST
	case "cli":
		return CLI
	default:
		return Toolchain
	}
}

// String returns the full version line printed by `cpplite version`
func String() string {
	return fmt.Sprintf("cpplite %s (%s front end, commit %s, built %s)", Toolchain, Language, Commit, BuildDate)
}
