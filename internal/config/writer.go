// Package config provides configuration loading and processing for the
// appdirs CLI.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/smykla-skalski/appdirs/internal/schema"
	"github.com/smykla-skalski/appdirs/pkg/appdir"
	"github.com/smykla-skalski/appdirs/pkg/config"
)

const (
	// ConfigFileMode is the file mode for configuration files (user read/write only).
	ConfigFileMode = 0o600

	// ConfigDirMode is the file mode for configuration directories (user rwx only).
	ConfigDirMode = 0o700
)

// Writer handles writing configuration to TOML files.
type Writer struct {
	// globalDir is the global configuration directory (for testing).
	globalDir string

	// workDir is the current working directory (for testing).
	workDir string
}

// NewWriter creates a new Writer with default directories.
func NewWriter() (*Writer, error) {
	strategy, err := appdir.Default(SelfApp())
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve global config directory")
	}

	return NewWriterWithDirs(strategy.ConfigDir(), mustGetwd()), nil
}

// NewWriterWithDirs creates a new Writer with custom directories (for testing).
func NewWriterWithDirs(globalDir, workDir string) *Writer {
	return &Writer{
		globalDir: globalDir,
		workDir:   workDir,
	}
}

// WriteGlobal writes the configuration to the global config file.
func (w *Writer) WriteGlobal(cfg *config.Config) error {
	path := w.GlobalConfigPath()

	return w.WriteFile(path, cfg)
}

// WriteProject writes the configuration to the project config file.
// Uses the primary location (.appdirs.toml).
func (w *Writer) WriteProject(cfg *config.Config) error {
	path := w.ProjectConfigPath()

	return w.WriteFile(path, cfg)
}

// WriteFile writes the configuration to the given path.
func (w *Writer) WriteFile(path string, cfg *config.Config) error {
	if cfg == nil {
		return errors.Wrap(ErrInvalidConfig, "config is nil")
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, ConfigDirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	encoded, err := Encode(cfg)
	if err != nil {
		return err
	}

	// Write to file with secure permissions
	if err := os.WriteFile(path, encoded, ConfigFileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}

// Encode renders the configuration as indented TOML with the schema
// directive prepended.
func Encode(cfg *config.Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "config is nil")
	}

	var buf bytes.Buffer

	// Prepend Taplo schema directive
	buf.WriteString(schema.SchemaDirective())
	buf.WriteByte('\n')

	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)

	if err := encoder.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to encode config to TOML")
	}

	return buf.Bytes(), nil
}

// GlobalConfigPath returns the path to the global configuration file.
func (w *Writer) GlobalConfigPath() string {
	return filepath.Join(w.globalDir, GlobalConfigFile)
}

// ProjectConfigPath returns the path to the primary project configuration file.
func (w *Writer) ProjectConfigPath() string {
	return filepath.Join(w.workDir, ProjectConfigFile)
}

// IsGlobalConfigExists checks if the global config file exists.
func (w *Writer) IsGlobalConfigExists() bool {
	path := w.GlobalConfigPath()
	_, err := os.Stat(path)

	return err == nil
}

// IsProjectConfigExists checks if the project config file exists.
func (w *Writer) IsProjectConfigExists() bool {
	path := w.ProjectConfigPath()
	_, err := os.Stat(path)

	return err == nil
}
