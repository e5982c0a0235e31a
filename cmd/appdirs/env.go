// Package main provides the CLI entry point for appdirs.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"

	"github.com/smykla-skalski/appdirs/internal/color"
	"github.com/smykla-skalski/appdirs/pkg/basedir"
)

const (
	envNameWidth   = 15
	envStatusWidth = 22
)

var envExportFlag bool

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the XDG override variables and their effect",
	Long: `Show the four XDG override variables, whether each one takes effect,
and the base directory it resolves to.

An override is used only when set to an absolute path; relative values
are ignored per the freedesktop rules. Use --export to emit shell export
lines pinning the effective directories.`,
	RunE: runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)

	envCmd.Flags().BoolVar(
		&envExportFlag,
		"export",
		false,
		"Emit export lines for the effective directories",
	)
}

// envEntry describes one XDG override variable and its effect.
type envEntry struct {
	name  string
	dir   string
	value string
	set   bool
}

func runEnv(_ *cobra.Command, _ []string) error {
	base, err := basedir.NewXDG()
	if err != nil {
		return err
	}

	entries := xdgEntries(base)

	if envExportFlag {
		return printExports(entries)
	}

	printEnvTable(entries)

	return nil
}

// xdgEntries pairs each override variable with the directory the base
// strategy resolves for it.
func xdgEntries(base *basedir.XDG) []envEntry {
	state, _ := base.StateDir()

	specs := []struct {
		name string
		dir  string
	}{
		{name: "XDG_CONFIG_HOME", dir: base.ConfigDir()},
		{name: "XDG_DATA_HOME", dir: base.DataDir()},
		{name: "XDG_CACHE_HOME", dir: base.CacheDir()},
		{name: "XDG_STATE_HOME", dir: state},
	}

	entries := make([]envEntry, 0, len(specs))

	for _, spec := range specs {
		value, ok := os.LookupEnv(spec.name)

		entries = append(entries, envEntry{
			name:  spec.name,
			dir:   spec.dir,
			value: value,
			set:   ok && value != "",
		})
	}

	return entries
}

// envStatus describes whether the override takes effect.
func envStatus(entry envEntry) string {
	switch {
	case entry.set && filepath.IsAbs(entry.value):
		return "used"
	case entry.set:
		return "ignored (not absolute)"
	default:
		return "unset"
	}
}

func printEnvTable(entries []envEntry) {
	theme := color.NewTheme(color.Profile(noColorFlag))

	for _, entry := range entries {
		status := envStatus(entry)

		var statusStyle = theme.Muted

		switch status {
		case "used":
			statusStyle = theme.Success
		case "ignored (not absolute)":
			statusStyle = theme.Warning
		}

		fmt.Printf("%s  %s  %s\n",
			theme.Key.Render(fmt.Sprintf("%-*s", envNameWidth, entry.name)),
			statusStyle.Render(fmt.Sprintf("%-*s", envStatusWidth, status)),
			theme.Path.Render(entry.dir),
		)
	}
}

// printExports emits export lines for the effective directories, quoted
// for bash.
func printExports(entries []envEntry) error {
	for _, entry := range entries {
		quoted, err := syntax.Quote(entry.dir, syntax.LangBash)
		if err != nil {
			return errors.Wrapf(err, "failed to quote %s", entry.name)
		}

		fmt.Printf("export %s=%s\n", entry.name, quoted)
	}

	return nil
}
