// Package main provides the CLI entry point for appdirs.
package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/appdirs/internal/color"
	"github.com/smykla-skalski/appdirs/internal/report"
	"github.com/smykla-skalski/appdirs/pkg/appdir"
	"github.com/smykla-skalski/appdirs/pkg/config"
)

var listAllFlag bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the directory set for an application",
	Long: `List the directories the resolved application identity should use for
its configuration, data, cache, state, and runtime files.

The identity comes from --domain/--author/--name and the [app] section of
the configuration file. The convention follows the strategy selection
order; use --all to render the directory set under every convention.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(
		&listAllFlag,
		"all",
		false,
		"Render the directory set under all four conventions",
	)
}

func runList(_ *cobra.Command, _ []string) error {
	log := newLogger()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	app, err := resolveIdentity(cfg)
	if err != nil {
		return err
	}

	var sets []report.Dirs

	if listAllFlag {
		kinds := []appdir.Kind{
			appdir.KindXDG,
			appdir.KindApple,
			appdir.KindWindows,
			appdir.KindUnix,
		}

		for _, kind := range kinds {
			strategy, err := appdir.New(kind, app)
			if err != nil {
				return errors.Wrapf(err, "failed to build %s strategy", kind)
			}

			sets = append(sets, report.New(kind, strategy))
		}
	} else {
		strategy, kind, err := resolveAppStrategy(cfg, app)
		if err != nil {
			return err
		}

		sets = append(sets, report.New(kind, strategy))
	}

	return renderDirs(cfg, sets)
}

// renderDirs renders directory sets in the configured output format.
func renderDirs(cfg *config.Config, sets []report.Dirs) error {
	theme := color.NewTheme(color.Profile(noColorFlag))

	out, err := report.Render(cfg.Output.FormatValue(), sets, theme)
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}
