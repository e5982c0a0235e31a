// Package main provides the CLI entry point for appdirs.
package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/appdirs/internal/report"
	"github.com/smykla-skalski/appdirs/pkg/appdir"
	"github.com/smykla-skalski/appdirs/pkg/basedir"
	"github.com/smykla-skalski/appdirs/pkg/config"
)

var baseCmd = &cobra.Command{
	Use:   "base",
	Short: "List the base directories of a convention",
	Long: `List the per-user base directories defined by a platform convention,
without an application identity.

Only the xdg, apple, and windows conventions have a base tier; the unix
dotfile convention exists solely for application directories.`,
	RunE: runBase,
}

func init() {
	rootCmd.AddCommand(baseCmd)
}

func runBase(_ *cobra.Command, _ []string) error {
	log := newLogger()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	kind, err := baseKind(cfg)
	if err != nil {
		return err
	}

	strategy, err := newBaseStrategy(kind)
	if err != nil {
		return err
	}

	return renderDirs(cfg, []report.Dirs{report.New(kind, strategy)})
}

// baseKind resolves the convention for the base tier. Overrides are keyed
// by app name and do not apply here.
func baseKind(cfg *config.Config) (appdir.Kind, error) {
	if strategyFlag != "" {
		if strings.EqualFold(strategyFlag, kindAuto) {
			return defaultKind(), nil
		}

		return appdir.ParseKind(strategyFlag)
	}

	if kind := cfg.Strategy.KindValue(); kind != appdir.KindUnknown {
		return kind, nil
	}

	if cfg.Strategy.IsNative() {
		return nativeKind(), nil
	}

	return defaultKind(), nil
}

// newBaseStrategy builds the base-tier strategy of the given kind.
//
//nolint:ireturn // callers pick behavior through Strategy
func newBaseStrategy(kind appdir.Kind) (basedir.Strategy, error) {
	switch kind {
	case appdir.KindXDG:
		return basedir.NewXDG()
	case appdir.KindApple:
		return basedir.NewApple()
	case appdir.KindWindows:
		return basedir.NewWindows()
	case appdir.KindUnix:
		return nil, errors.Errorf("the %s convention has no base tier", kind)
	case appdir.KindUnknown:
		return basedir.Default()
	}

	return basedir.Default()
}
