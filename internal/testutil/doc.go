// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test doubles and helpers shared by the package
// tests: a fake TeX Live tool runner and fixture writers that fail the test
// on error instead of returning it.
package testutil
