// File: doc.go
// Title: Structured Logging Package
// Description: Package log provides the structured logger used by the cpplite
//              front end, the engine and the CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial package documentation

// Package log provides structured, leveled logging with persistent context
// fields and pluggable output formats (JSON, text, console, logfmt).
//
// Loggers are immutable: every With* method returns a modified copy, so a
// component can derive its own logger without affecting its parent.
//
//	logger := cllog.NewWithConfig(cllog.Config{
//		Level:  cllog.LevelDebug,
//		Format: cllog.FormatText,
//		Output: os.Stderr,
//	}).WithField("component", "parser")
//
//	logger.Debug("parse started", cllog.Fields{"file": "prog.cpp"})
//
//	timer := logger.StartTimer("parse")
//	defer timer.Stop()
//
// Errors created with the core error package are logged with their code,
// severity and details through LogError; the log level follows the error
// severity.
package log
