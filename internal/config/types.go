// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
var ErrInvalidConfig = errors.New("invalid config")

type (
	// Config holds the application configuration.
	Config struct {
		// Kpsewhich is the command line used to locate TEXMFDIST.
		Kpsewhich string `json:"kpsewhich" mapstructure:"kpsewhich"`
		// Tlmgr is the command line used to dump the package database.
		Tlmgr string `json:"tlmgr" mapstructure:"tlmgr"`
		// Preinstalled seeds the set of packages a baseline installation provides.
		Preinstalled []string `json:"preinstalled" mapstructure:"preinstalled"`
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Format is the output format, "text" or "json".
		Format string `json:"format" mapstructure:"format"`
	}

	// InvalidConfigError is returned when a loaded Config violates a
	// constraint. It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		Field  string
		Reason string
	}
)

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

func (e *InvalidConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// DefaultPreinstalled returns the packages a stock CI TeX Live image installs
// directly. A fresh slice is returned on every call.
func DefaultPreinstalled() []string {
	return []string{
		"scheme-small",
		"collection-fontsrecommended",
		"biblatex",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Kpsewhich:    "kpsewhich",
		Tlmgr:        "tlmgr",
		Preinstalled: DefaultPreinstalled(),
		Verbose:      false,
		Format:       "text",
	}
}

// Validate checks constraints that also apply to values coming from the
// environment, which the CUE schema never sees.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Kpsewhich) == "" {
		return &InvalidConfigError{Field: "kpsewhich", Reason: "must not be empty"}
	}
	if strings.TrimSpace(c.Tlmgr) == "" {
		return &InvalidConfigError{Field: "tlmgr", Reason: "must not be empty"}
	}
	if slices.ContainsFunc(c.Preinstalled, func(s string) bool { return strings.TrimSpace(s) == "" }) {
		return &InvalidConfigError{Field: "preinstalled", Reason: "package names must not be empty"}
	}
	return nil
}
