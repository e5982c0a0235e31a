// Package config provides configuration loading and processing for the
// appdirs CLI.
package config

import (
	"github.com/smykla-skalski/appdirs/pkg/appdir"
	"github.com/smykla-skalski/appdirs/pkg/config"
)

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *config.Config {
	return &config.Config{
		Version:  config.CurrentConfigVersion,
		App:      DefaultAppConfig(),
		Output:   DefaultOutputConfig(),
		Strategy: DefaultStrategyConfig(),
	}
}

// DefaultAppConfig returns the default app identity configuration.
// All fields stay empty until set by the user.
func DefaultAppConfig() *config.AppConfig {
	return &config.AppConfig{}
}

// DefaultOutputConfig returns the default output configuration.
func DefaultOutputConfig() *config.OutputConfig {
	return &config.OutputConfig{
		Format: config.FormatTable,
	}
}

// DefaultStrategyConfig returns the default strategy configuration.
// No kind is pinned, so the convention is selected by platform.
func DefaultStrategyConfig() *config.StrategyConfig {
	native := false

	return &config.StrategyConfig{
		Native:    &native,
		Overrides: []config.Override{},
	}
}

// SelfApp returns the identity of the appdirs CLI itself. The global
// configuration file lives under the directories this identity
// resolves to.
func SelfApp() appdir.App {
	return appdir.App{
		TopLevelDomain: "com",
		Author:         "smykla-skalski",
		Name:           "appdirs",
	}
}
