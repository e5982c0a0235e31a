// Package main provides the CLI entry point for appdirs.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/appdirs/internal/config"
	"github.com/smykla-skalski/appdirs/internal/git"
	"github.com/smykla-skalski/appdirs/internal/tui"
	pkgConfig "github.com/smykla-skalski/appdirs/pkg/config"
)

const diffContextLines = 3

var (
	globalFlag bool
	forceFlag  bool
	noTUIFlag  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize appdirs configuration",
	Long: `Initialize the appdirs configuration file.

By default, creates a project-local configuration file (.appdirs.toml).
Use --global or -g to create a global configuration file in the tool's
own config directory.

The initialization process will prompt you to configure:
- The application identity (domain, author, name)
- The directory strategy and output format
- Whether to add the config file to .git/info/exclude (project-local only)

Use --force to overwrite an existing configuration file.
Use --no-tui to use simple prompts instead of the interactive TUI.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(
		&globalFlag,
		"global",
		"g",
		false,
		"Initialize global configuration",
	)

	initCmd.Flags().BoolVarP(
		&forceFlag,
		"force",
		"f",
		false,
		"Overwrite existing configuration file",
	)

	initCmd.Flags().BoolVar(
		&noTUIFlag,
		"no-tui",
		false,
		"Use simple prompts instead of interactive TUI",
	)
}

func runInit(_ *cobra.Command, _ []string) error {
	writer, err := config.NewWriter()
	if err != nil {
		return err
	}

	// Check if config already exists
	configPath, existingConfig, err := checkExistingConfig(writer)
	if err != nil {
		return err
	}

	// Determine if we should show git exclude option
	showGitExclude := !globalFlag && git.IsInGitRepo()

	// Create UI (TUI or fallback based on terminal capabilities and flags)
	ui := tui.NewWithFallback(noTUIFlag)

	// Run the init form
	cfg, addToExclude, err := ui.RunInitForm(tui.InitFormOptions{
		Global:         globalFlag,
		DefaultDomain:  domainFlag,
		DefaultAuthor:  authorFlag,
		DefaultName:    nameFlag,
		ShowGitExclude: showGitExclude,
	})
	if err != nil {
		return errors.Wrap(err, "configuration form failed")
	}

	// Show what --force is about to replace
	if forceFlag && existingConfig {
		if diffErr := showConfigDiff(configPath, cfg); diffErr != nil {
			fmt.Fprintf(
				os.Stderr,
				"⚠️  Warning: failed to diff existing config: %v\n",
				diffErr,
			)
		}
	}

	// Write configuration
	if err := writeConfig(writer, cfg, configPath); err != nil {
		return err
	}

	// Handle .git/info/exclude for project config
	if addToExclude && showGitExclude {
		if err := addConfigToExclude(); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"⚠️  Warning: failed to add to .git/info/exclude: %v\n",
				err,
			)
		} else {
			fmt.Println("✅ Added to .git/info/exclude")
		}
	}

	fmt.Println()
	fmt.Println("Configuration initialized successfully!")

	return nil
}

// checkExistingConfig checks if config already exists and returns the path and existence flag.
func checkExistingConfig(writer *config.Writer) (string, bool, error) {
	var (
		configPath   string
		configExists bool
	)

	if globalFlag {
		configPath = writer.GlobalConfigPath()
		configExists = writer.IsGlobalConfigExists()
	} else {
		configPath = writer.ProjectConfigPath()
		configExists = writer.IsProjectConfigExists()
	}

	if configExists && !forceFlag {
		return "", false, errors.Errorf(
			"configuration file already exists: %s\nUse --force to overwrite",
			configPath,
		)
	}

	return configPath, configExists, nil
}

// showConfigDiff prints a unified diff between the existing config file
// and the config about to replace it.
func showConfigDiff(configPath string, cfg *pkgConfig.Config) error {
	//nolint:gosec // G304: path comes from the config writer
	existing, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", configPath)
	}

	replacement, err := config.Encode(cfg)
	if err != nil {
		return err
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(replacement)),
		FromFile: configPath,
		ToFile:   configPath + " (new)",
		Context:  diffContextLines,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return errors.Wrap(err, "failed to build diff")
	}

	if text == "" {
		return nil
	}

	fmt.Println("Replacing existing configuration:")
	fmt.Println()
	fmt.Print(text)

	return nil
}

// writeConfig writes the configuration to the appropriate location.
func writeConfig(writer *config.Writer, cfg *pkgConfig.Config, configPath string) error {
	if globalFlag {
		if err := writer.WriteGlobal(cfg); err != nil {
			return errors.Wrap(err, "failed to write global configuration")
		}
	} else {
		if err := writer.WriteProject(cfg); err != nil {
			return errors.Wrap(err, "failed to write project configuration")
		}
	}

	fmt.Printf("\n✅ Configuration written to: %s\n", configPath)

	return nil
}

// addConfigToExclude adds the config file names to .git/info/exclude.
func addConfigToExclude() error {
	excludeMgr, err := git.NewExcludeManager()
	if err != nil {
		return errors.Wrap(err, "failed to create exclude manager")
	}

	// Add both config file patterns
	patterns := []string{
		config.ProjectConfigFile,
		config.ProjectConfigFileAlt,
	}

	for _, pattern := range patterns {
		if err := excludeMgr.AddEntry(pattern); err != nil {
			if !errors.Is(err, git.ErrEntryAlreadyExists) {
				return errors.Wrapf(err, "failed to add %s", pattern)
			}
		}
	}

	return nil
}
