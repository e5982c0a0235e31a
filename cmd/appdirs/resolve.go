// Package main provides the CLI entry point for appdirs.
package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/appdirs/pkg/appdir"
)

var resolveFileFlag string

var resolveCmd = &cobra.Command{
	Use:   "resolve {config|data|cache|state|runtime}",
	Short: "Print a single resolved directory",
	Long: `Print one resolved directory for the application identity on stdout,
suitable for command substitution in scripts.

The state and runtime purposes fail for conventions that define no such
directory. Use --file to resolve a path inside the config, data, or
cache directory.`,
	ValidArgs: []string{"config", "data", "cache", "state", "runtime"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE:      runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(
		&resolveFileFlag,
		"file",
		"",
		"Resolve a file name inside the directory",
	)
}

func runResolve(_ *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	app, err := resolveIdentity(cfg)
	if err != nil {
		return err
	}

	strategy, kind, err := resolveAppStrategy(cfg, app)
	if err != nil {
		return err
	}

	path, err := resolvePath(strategy, kind, args[0], resolveFileFlag)
	if err != nil {
		return err
	}

	fmt.Println(path)

	return nil
}

// resolvePath resolves one directory purpose, joining file inside it
// when given.
func resolvePath(
	strategy appdir.Strategy,
	kind appdir.Kind,
	purpose string,
	file string,
) (string, error) {
	switch purpose {
	case "config":
		if file != "" {
			return strategy.InConfigDir(file), nil
		}

		return strategy.ConfigDir(), nil

	case "data":
		if file != "" {
			return strategy.InDataDir(file), nil
		}

		return strategy.DataDir(), nil

	case "cache":
		if file != "" {
			return strategy.InCacheDir(file), nil
		}

		return strategy.CacheDir(), nil

	case "state":
		if file != "" {
			return "", errors.New("--file applies only to config, data, and cache")
		}

		state, ok := strategy.StateDir()
		if !ok {
			return "", errors.Errorf("the %s convention defines no state directory", kind)
		}

		return state, nil

	case "runtime":
		if file != "" {
			return "", errors.New("--file applies only to config, data, and cache")
		}

		runtimeDir, ok := strategy.RuntimeDir()
		if !ok {
			return "", errors.Errorf("the %s convention defines no runtime directory", kind)
		}

		return runtimeDir, nil
	}

	// Unreachable: cobra rejects other args via OnlyValidArgs.
	return "", errors.Errorf("unknown directory purpose %q", purpose)
}
