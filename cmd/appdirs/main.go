// Package main provides the CLI entry point for appdirs.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/smykla-skalski/appdirs/internal/config"
	"github.com/smykla-skalski/appdirs/pkg/appdir"
	"github.com/smykla-skalski/appdirs/pkg/config"
	"github.com/smykla-skalski/appdirs/pkg/logger"
)

const (
	// ExitCodeOK indicates the command completed successfully.
	ExitCodeOK = 0

	// ExitCodeCrash indicates an unexpected panic/crash occurred.
	ExitCodeCrash = 3
)

// kindAuto selects the OS default convention when passed to --strategy.
const kindAuto = "auto"

var (
	configFlag   string
	debugFlag    bool
	noColorFlag  bool
	outputFlag   string
	domainFlag   string
	authorFlag   string
	nameFlag     string
	strategyFlag string
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)

			exitCode = ExitCodeCrash
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	return ExitCodeOK
}

var rootCmd = &cobra.Command{
	Use:   "appdirs",
	Short: "Resolve platform application directories",
	Long: `Resolve the directories an application should use for its configuration,
data, cache, state, and runtime files under one of the platform
conventions: XDG, Apple, Windows, or legacy Unix dotfiles.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
	SilenceErrors:     true,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFlag,
		"config",
		"c",
		"",
		"Path to configuration file (default: discovered global and project configs)",
	)
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(
		&noColorFlag,
		"no-color",
		false,
		"Disable colored output",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFlag,
		"output",
		"o",
		"",
		"Output format (table, plain, json, yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&domainFlag,
		"domain",
		"",
		"Application domain prefix, e.g. org",
	)
	rootCmd.PersistentFlags().StringVar(
		&authorFlag,
		"author",
		"",
		"Application author or organization, e.g. Mozilla",
	)
	rootCmd.PersistentFlags().StringVar(
		&nameFlag,
		"name",
		"",
		"Application name, e.g. Firefox",
	)
	rootCmd.PersistentFlags().StringVar(
		&strategyFlag,
		"strategy",
		"",
		"Directory strategy (xdg, apple, windows, unix, auto)",
	)
}

// newLogger returns a stderr logger when --debug is set, a no-op
// logger otherwise.
//
//nolint:ireturn // callers log through the Logger interface
func newLogger() logger.Logger {
	if debugFlag {
		return logger.New(os.Stderr, true, false)
	}

	return logger.NewNoOpLogger()
}

// loadConfig loads configuration from all sources with precedence.
func loadConfig(log logger.Logger) (*config.Config, error) {
	flags := buildFlagsMap()

	var (
		loader *internalconfig.KoanfLoader
		err    error
	)

	if configFlag != "" {
		loader, err = internalconfig.NewKoanfLoaderWithFile(configFlag)
	} else {
		loader, err = internalconfig.NewKoanfLoader()
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to create config loader")
	}

	cfg, err := loader.Load(flags)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	log.Debug("configuration loaded",
		"name", cfg.Identity().Name,
		"format", cfg.Output.FormatValue().String(),
	)

	return cfg, nil
}

// buildFlagsMap converts CLI flags to a map for the config provider.
func buildFlagsMap() map[string]any {
	flags := make(map[string]any)

	if domainFlag != "" {
		flags["domain"] = domainFlag
	}

	if authorFlag != "" {
		flags["author"] = authorFlag
	}

	if nameFlag != "" {
		flags["name"] = nameFlag
	}

	if outputFlag != "" {
		flags["output"] = outputFlag
	}

	return flags
}

// resolveIdentity returns the app identity assembled from config and flags.
// The name is required; domain and author may stay empty.
func resolveIdentity(cfg *config.Config) (appdir.App, error) {
	app := cfg.Identity()
	if app.Name == "" {
		return appdir.App{}, errors.New(
			"application name is required: pass --name or set [app] name in the config file",
		)
	}

	return app, nil
}

// resolveAppStrategy builds the directory strategy selected for the given
// identity, together with the effective kind.
//
//nolint:ireturn // callers pick behavior through Strategy
func resolveAppStrategy(cfg *config.Config, app appdir.App) (appdir.Strategy, appdir.Kind, error) {
	kind, err := effectiveKind(cfg, app.Name)
	if err != nil {
		return nil, appdir.KindUnknown, err
	}

	strategy, err := appdir.New(kind, app)
	if err != nil {
		return nil, appdir.KindUnknown, err
	}

	return strategy, kind, nil
}

// effectiveKind resolves the strategy kind for the given app name.
// Selection order: --strategy flag, config override glob match, config
// strategy.kind, strategy.native, OS default. An explicit --strategy auto
// forces the OS default past config overrides.
func effectiveKind(cfg *config.Config, appName string) (appdir.Kind, error) {
	if strategyFlag != "" {
		if strings.EqualFold(strategyFlag, kindAuto) {
			return defaultKind(), nil
		}

		return appdir.ParseKind(strategyFlag)
	}

	if kind := cfg.Strategy.KindFor(appName); kind != appdir.KindUnknown {
		return kind, nil
	}

	if cfg.Strategy.IsNative() {
		return nativeKind(), nil
	}

	return defaultKind(), nil
}

// defaultKind is the conventional kind for the current operating system.
func defaultKind() appdir.Kind {
	if runtime.GOOS == "windows" {
		return appdir.KindWindows
	}

	return appdir.KindXDG
}

// nativeKind is the kind users of the current operating system expect.
func nativeKind() appdir.Kind {
	if runtime.GOOS == "darwin" {
		return appdir.KindApple
	}

	return defaultKind()
}
