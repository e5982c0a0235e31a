// Package config provides configuration loading and processing for the
// appdirs CLI.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/maps"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-skalski/appdirs/pkg/appdir"
	"github.com/smykla-skalski/appdirs/pkg/config"
)

var (
	// ErrConfigNotFound is returned when no configuration file is found.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidTOML is returned when the TOML file cannot be parsed.
	ErrInvalidTOML = errors.New("invalid TOML")

	// ErrInvalidPermissions is returned when config file has insecure permissions.
	ErrInvalidPermissions = errors.New("config file has insecure permissions")
)

const (
	// GlobalConfigFile is the name of the global configuration file.
	GlobalConfigFile = "config.toml"

	// ProjectConfigFile is the primary project configuration file name.
	ProjectConfigFile = ".appdirs.toml"

	// ProjectConfigFileAlt is the alternative project configuration file name.
	ProjectConfigFileAlt = "appdirs.toml"
)

// Default configuration constants for koanf map defaults.
const (
	defaultFormatStr = "table"
)

// KoanfLoader handles configuration loading from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. CLI Flags
// 2. Environment Variables (APPDIRS_*)
// 3. Project Config (.appdirs.toml or appdirs.toml)
// 4. Global Config (config.toml in the CLI's own config directory)
// 5. Defaults
type KoanfLoader struct {
	k          *koanf.Koanf
	globalDir  string
	workDir    string
	configFile string
	tomlOpts   koanf.UnmarshalConf
}

// NewKoanfLoader creates a new KoanfLoader with default directories.
// The global config directory is resolved through the CLI's own app
// identity.
func NewKoanfLoader() (*KoanfLoader, error) {
	strategy, err := appdir.Default(SelfApp())
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve global config directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewKoanfLoaderWithDirs(strategy.ConfigDir(), workDir)
}

// NewKoanfLoaderWithDirs creates a new KoanfLoader with custom directories (for testing).
func NewKoanfLoaderWithDirs(globalDir, workDir string) (*KoanfLoader, error) {
	k := koanf.New(".")

	return &KoanfLoader{
		k:         k,
		globalDir: globalDir,
		workDir:   workDir,
		tomlOpts: koanf.UnmarshalConf{
			Tag:           "koanf",
			FlatPaths:     false,
			DecoderConfig: CustomDecoderConfig(),
		},
	}, nil
}

// NewKoanfLoaderWithFile creates a new KoanfLoader that reads an explicit
// config file instead of discovering global and project configs.
func NewKoanfLoaderWithFile(path string) (*KoanfLoader, error) {
	loader, err := NewKoanfLoader()
	if err != nil {
		return nil, err
	}

	loader.configFile = path

	return loader, nil
}

// Load loads configuration from all sources with precedence.
// Defaults → Global TOML → Project TOML → Env Vars → CLI Flags
//
// Strategy overrides have special merge semantics:
// - Overrides with the same match pattern: project overrides global
// - Overrides with different patterns: combined (both included)
func (l *KoanfLoader) Load(flags map[string]any) (*config.Config, error) {
	cfg, err := l.LoadWithoutValidation(flags)
	if err != nil {
		return nil, err
	}

	// Validate
	validator := NewValidator()
	if err := validator.Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// LoadWithoutValidation loads configuration without running validation.
// This is useful for tools that need to fix invalid configurations.
func (l *KoanfLoader) LoadWithoutValidation(flags map[string]any) (*config.Config, error) {
	// Reset koanf instance for fresh load
	l.k = koanf.New(".")

	// Track overrides from each source for proper merging
	var globalOverrides []config.Override

	var projectOverrides []config.Override

	// 1. Load defaults first (lowest priority)
	defaults := defaultsToMap()
	if err := l.k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if l.configFile != "" {
		// 2. Explicit config file replaces global and project discovery
		if !fileExists(l.configFile) {
			return nil, errors.Wrapf(ErrConfigNotFound, "%s", l.configFile)
		}

		if err := l.loadTOMLFile(l.configFile); err != nil {
			return nil, errors.Wrap(err, "failed to load config file")
		}

		projectOverrides = l.extractOverrides()
	} else {
		// 2. Global config: config.toml in the CLI's own config directory
		globalPath := l.GlobalConfigPath()
		if err := l.loadTOMLFile(globalPath); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to load global config")
		} else if err == nil {
			globalOverrides = l.extractOverrides()
		}

		// 3. Project config: .appdirs.toml or appdirs.toml
		projectPath := l.findProjectConfig()
		if projectPath != "" {
			if err := l.loadTOMLFile(projectPath); err != nil {
				return nil, errors.Wrap(err, "failed to load project config")
			}

			projectOverrides = l.extractOverrides()
		}
	}

	// 4. Environment variables: APPDIRS_*
	envOpt := env.Opt{
		Prefix:        "APPDIRS_",
		TransformFunc: l.envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	// 5. CLI flags (highest priority)
	if len(flags) > 0 {
		flagConfig := l.flagsToConfig(flags)
		if err := l.k.Load(confmap.Provider(flagConfig, "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	// Unmarshal into config struct
	var cfg config.Config
	if err := l.k.UnmarshalWithConf("", &cfg, l.tomlOpts); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	// Merge overrides: project overrides global by match pattern,
	// different patterns are combined
	mergedOverrides := mergeOverrides(globalOverrides, projectOverrides)

	if cfg.Strategy == nil {
		cfg.Strategy = &config.StrategyConfig{}
	}

	cfg.Strategy.Overrides = mergedOverrides

	return &cfg, nil
}

// extractOverrides extracts strategy overrides from the current koanf state.
// Override kinds that do not parse are left as KindUnknown for the
// validator to report.
func (l *KoanfLoader) extractOverrides() []config.Override {
	overrideSlice := l.k.Slices("strategy.overrides")
	overrides := make([]config.Override, 0, len(overrideSlice))

	for _, overrideK := range overrideSlice {
		var override config.Override

		override.Match = overrideK.String("match")

		if kind, err := appdir.ParseKind(overrideK.String("kind")); err == nil {
			override.Kind = kind
		}

		overrides = append(overrides, override)
	}

	return overrides
}

// mergeOverrides merges global and project strategy overrides.
// Overrides with the same match pattern: project overrides global.
// Overrides with different patterns: combined (both included).
func mergeOverrides(globalOverrides, projectOverrides []config.Override) []config.Override {
	if len(globalOverrides) == 0 {
		return projectOverrides
	}

	if len(projectOverrides) == 0 {
		return globalOverrides
	}

	// Build a map of project overrides by match pattern for quick lookup
	projectByMatch := make(map[string]config.Override)

	for _, override := range projectOverrides {
		if override.Match != "" {
			projectByMatch[override.Match] = override
		}
	}

	// Start with global overrides, replacing with project overrides
	// where match patterns collide
	merged := make([]config.Override, 0, len(globalOverrides)+len(projectOverrides))
	seenMatches := make(map[string]bool)

	for _, globalOverride := range globalOverrides {
		if globalOverride.Match == "" {
			// Overrides without patterns are always included
			merged = append(merged, globalOverride)

			continue
		}

		if projectOverride, exists := projectByMatch[globalOverride.Match]; exists {
			merged = append(merged, projectOverride)
		} else {
			merged = append(merged, globalOverride)
		}

		seenMatches[globalOverride.Match] = true
	}

	// Add project overrides that weren't in global

	for _, projectOverride := range projectOverrides {
		if projectOverride.Match != "" && !seenMatches[projectOverride.Match] {
			merged = append(merged, projectOverride)
		} else if projectOverride.Match == "" {
			// Overrides without patterns are always included
			merged = append(merged, projectOverride)
		}
	}

	return merged
}

// loadTOMLFile loads a TOML configuration file with security checks.
func (l *KoanfLoader) loadTOMLFile(path string) error {
	// Check if file exists
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	// Security check: reject world-writable files
	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			path,
			info.Mode().Perm(),
		)
	}

	if err := l.k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		return errors.Wrapf(ErrInvalidTOML, "%s: %v", path, err)
	}

	return nil
}

// envTransform transforms environment variable names to config paths.
// APPDIRS_STRATEGY_KIND → strategy.kind
func (*KoanfLoader) envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, "APPDIRS_")
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", ".")

	return key, value
}

// GlobalConfigPath returns the path to the global configuration file.
func (l *KoanfLoader) GlobalConfigPath() string {
	return filepath.Join(l.globalDir, GlobalConfigFile)
}

// ProjectConfigPaths returns the paths to check for project configuration.
func (l *KoanfLoader) ProjectConfigPaths() []string {
	return []string{
		filepath.Join(l.workDir, ProjectConfigFile),
		filepath.Join(l.workDir, ProjectConfigFileAlt),
	}
}

// findProjectConfig checks for project config files and returns the first found.
func (l *KoanfLoader) findProjectConfig() string {
	for _, path := range l.ProjectConfigPaths() {
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// HasGlobalConfig checks if a global configuration file exists.
func (l *KoanfLoader) HasGlobalConfig() bool {
	return fileExists(l.GlobalConfigPath())
}

// HasProjectConfig checks if a project configuration file exists.
func (l *KoanfLoader) HasProjectConfig() bool {
	return l.findProjectConfig() != ""
}

// FindProjectConfigPath returns the path to the project config file if one exists.
// Returns empty string if no project config file is found.
func (l *KoanfLoader) FindProjectConfigPath() string {
	return l.findProjectConfig()
}

// LoadGlobalConfigOnly loads only the global configuration file without
// merging defaults, project config, or environment variables.
// This is useful for tools that need to edit and write back the global
// config without contaminating it with values from other sources.
// Returns nil if no global config file exists.
func (l *KoanfLoader) LoadGlobalConfigOnly() (*config.Config, string, error) {
	path := l.GlobalConfigPath()
	if !fileExists(path) {
		return nil, "", nil
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// LoadProjectConfigOnly loads only the project configuration file without
// merging defaults, global config, or environment variables.
// This is useful for tools that need to edit and write back the project
// config without contaminating it with values from other sources.
// Returns nil if no project config file exists.
func (l *KoanfLoader) LoadProjectConfigOnly() (*config.Config, string, error) {
	projectPath := l.findProjectConfig()
	if projectPath == "" {
		return nil, "", nil
	}

	cfg, err := loadConfigFile(projectPath)
	if err != nil {
		return nil, projectPath, err
	}

	return cfg, projectPath, nil
}

// loadConfigFile loads a single TOML file into a fresh Config without
// merging any other source.
func loadConfigFile(path string) (*config.Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		return nil, errors.Wrap(err, "failed to load config file")
	}

	var cfg config.Config

	tomlOpts := koanf.UnmarshalConf{
		Tag:           "koanf",
		FlatPaths:     false,
		DecoderConfig: CustomDecoderConfig(),
	}

	if err := k.UnmarshalWithConf("", &cfg, tomlOpts); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config file")
	}

	return &cfg, nil
}

// flagsToConfig converts CLI flags to a configuration map.
func (*KoanfLoader) flagsToConfig(flags map[string]any) map[string]any {
	flat := make(map[string]any)

	for key, value := range flags {
		switch key {
		case "domain":
			flat["app.domain"] = value

		case "author":
			flat["app.author"] = value

		case "name":
			flat["app.name"] = value

		case "output":
			flat["output.format"] = value

		case "strategy":
			flat["strategy.kind"] = value

		case "native":
			flat["strategy.native"] = value
		}
	}

	return maps.Unflatten(flat, ".")
}

// defaultsToMap converts DefaultConfig to a map for koanf loading.
func defaultsToMap() map[string]any {
	return map[string]any{
		"version":  config.CurrentConfigVersion,
		"app":      defaultAppMap(),
		"output":   defaultOutputMap(),
		"strategy": defaultStrategyMap(),
	}
}

func defaultAppMap() map[string]any {
	return map[string]any{
		"domain": "",
		"author": "",
		"name":   "",
	}
}

func defaultOutputMap() map[string]any {
	return map[string]any{
		"format": defaultFormatStr,
	}
}

func defaultStrategyMap() map[string]any {
	return map[string]any{
		"kind":      "",
		"native":    false,
		"overrides": []any{},
	}
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// mustGetwd returns the current working directory or panics.
func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		panic("failed to get working directory: " + err.Error())
	}

	return wd
}
