// Package error provides structured error handling for the cpplite toolchain.
//
// Package: error
// Title: cpplite Error Handling
// Description: Implements a coded error type with severity, contextual details and
//              wrapping. Front-end failures (lexical, syntax, validation) and
//              configuration failures are reported through this type so the CLI
//              and the logger can classify them uniformly.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation with codes, severity and wrapping
//
// Usage:
//   import clerror "github.com/msto63/cpplite/pkg/core/error"
//
//   err := clerror.Wrap(syntaxErr, "parse failed").
//     WithCode(clerror.CodeLiteSyntax).
//     WithDetail("file", "prog.cpp")
//
//   if clerror.HasCode(err, clerror.CodeLiteSyntax) {
//     // report the diagnostic
//   }
package error
