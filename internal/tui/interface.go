// Package tui provides terminal user interface components.
package tui

import (
	pkgConfig "github.com/smykla-skalski/appdirs/pkg/config"
)

// UI defines the interface for terminal user interface operations.
// This interface abstracts the TUI implementation to allow for both
// interactive (huh) and fallback (simple prompt) implementations.
type UI interface {
	// RunInitForm runs the configuration setup form.
	// Returns the config assembled from the answers and whether the config
	// file should be added to .git/info/exclude.
	RunInitForm(opts InitFormOptions) (*pkgConfig.Config, bool, error)

	// IsInteractive returns true if running in an interactive terminal.
	IsInteractive() bool
}

// InitFormOptions contains options for the init form.
type InitFormOptions struct {
	// Global indicates whether this is a global or project config.
	Global bool

	// DefaultDomain pre-fills the application domain field.
	DefaultDomain string

	// DefaultAuthor pre-fills the application author field.
	DefaultAuthor string

	// DefaultName pre-fills the application name field.
	DefaultName string

	// ShowGitExclude indicates whether to show the git exclude option.
	ShowGitExclude bool
}

// InitFormResult contains the raw answers from the init form.
type InitFormResult struct {
	// Domain is the reverse-DNS prefix, e.g. "org".
	Domain string

	// Author is the application author or organization.
	Author string

	// Name is the application name with its original casing.
	Name string

	// Kind is the selected directory strategy, or "auto".
	Kind string

	// Native indicates whether platform-native conventions are preferred.
	Native bool

	// Format is the selected output format.
	Format string

	// AddToExclude indicates whether to add the config to .git/info/exclude.
	AddToExclude bool
}
