// Package config provides configuration schema types for the appdirs CLI.
package config

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/smykla-skalski/appdirs/pkg/appdir"
)

// CurrentConfigVersion is the latest config schema version.
const CurrentConfigVersion = 1

// Config represents the root configuration for appdirs.
type Config struct {
	// Version is the config schema version. Defaults to 1 when omitted.
	Version int `json:"version,omitempty" koanf:"version" toml:"version,omitempty"`

	// App identifies the application whose directories are resolved.
	App *AppConfig `json:"app,omitempty" koanf:"app" toml:"app,omitempty"`

	// Output controls how resolved directories are rendered.
	Output *OutputConfig `json:"output,omitempty" koanf:"output" toml:"output,omitempty"`

	// Strategy selects the directory layout convention.
	Strategy *StrategyConfig `json:"strategy,omitempty" koanf:"strategy" toml:"strategy,omitempty"`
}

// AppConfig identifies the application whose directories are resolved.
type AppConfig struct {
	// Domain is the reverse-DNS top level domain, e.g. "org".
	Domain string `json:"domain,omitempty" koanf:"domain" toml:"domain,omitempty"`

	// Author is the organization or person producing the app, e.g. "Mozilla".
	Author string `json:"author,omitempty" koanf:"author" toml:"author,omitempty"`

	// Name is the application name with its original casing, e.g. "Firefox".
	Name string `json:"name,omitempty" koanf:"name" toml:"name,omitempty"`
}

// OutputConfig controls how resolved directories are rendered.
type OutputConfig struct {
	// Format is the rendering format: "table", "plain", "json", or "yaml".
	Format Format `json:"format,omitempty" koanf:"format" toml:"format,omitempty"`
}

// StrategyConfig selects the directory layout convention.
type StrategyConfig struct {
	// Kind pins a specific convention: "xdg", "apple", "windows", or
	// "unix". Leave empty to select by platform.
	Kind appdir.Kind `json:"kind,omitempty" koanf:"kind" toml:"kind,omitempty"`

	// Native prefers the platform's native convention when no kind is
	// pinned. On macOS this selects the Library layout instead of XDG.
	Native *bool `json:"native,omitempty" koanf:"native" toml:"native,omitempty"`

	// Overrides pin conventions for app names matching a glob pattern.
	// The first matching override wins.
	Overrides []Override `json:"overrides,omitempty" koanf:"overrides" toml:"overrides,omitempty"`
}

// Override pins a convention for app names matching a glob pattern.
type Override struct {
	// Match is a glob pattern matched against the app name, e.g. "Intellij*".
	Match string `json:"match,omitempty" koanf:"match" toml:"match,omitempty"`

	// Kind is the convention to use for matching apps.
	Kind appdir.Kind `json:"kind,omitempty" koanf:"kind" toml:"kind,omitempty"`
}

// Identity returns the app identity assembled from the app section.
func (c *Config) Identity() appdir.App {
	if c == nil || c.App == nil {
		return appdir.App{}
	}

	return appdir.App{
		TopLevelDomain: c.App.Domain,
		Author:         c.App.Author,
		Name:           c.App.Name,
	}
}

// FormatValue returns the configured output format.
// Defaults to FormatTable when unset.
func (o *OutputConfig) FormatValue() Format {
	if o == nil || o.Format == FormatUnknown {
		return FormatTable
	}

	return o.Format
}

// KindValue returns the pinned strategy kind.
// Returns KindUnknown when no kind is pinned.
func (s *StrategyConfig) KindValue() appdir.Kind {
	if s == nil {
		return appdir.KindUnknown
	}

	return s.Kind
}

// IsNative returns whether the platform's native convention is preferred.
// Defaults to false when unset.
func (s *StrategyConfig) IsNative() bool {
	if s == nil || s.Native == nil {
		return false
	}

	return *s.Native
}

// KindFor returns the strategy kind selected for the given app name,
// consulting overrides before the pinned kind.
// Returns KindUnknown when neither an override nor a pinned kind applies.
func (s *StrategyConfig) KindFor(name string) appdir.Kind {
	if s == nil {
		return appdir.KindUnknown
	}

	for _, override := range s.Overrides {
		if override.Matches(name) {
			return override.Kind
		}
	}

	return s.Kind
}

// Matches reports whether the override's glob pattern matches the given
// app name. Malformed patterns never match.
func (o *Override) Matches(name string) bool {
	if o == nil || o.Match == "" {
		return false
	}

	matched, err := doublestar.Match(o.Match, name)
	if err != nil {
		return false
	}

	return matched
}
