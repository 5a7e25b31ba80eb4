// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and user-facing remediation guidance.
//
// ActionableError carries an operation, a resource and suggestions so the CLI
// can print a concise message, and Issue holds Markdown guidance that is
// rendered with glamour when verbose output is requested.
package issue
