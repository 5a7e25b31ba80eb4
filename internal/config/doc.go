// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from the --config path when given, otherwise from
// $XDG_CONFIG_HOME/tlpkgs/config.cue (~/Library/Application Support/tlpkgs on
// macOS, %APPDATA%\tlpkgs on Windows), otherwise from ./config.cue. Files are
// validated against the embedded #Config schema. TLPKGS_* environment
// variables override file values.
package config
