package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/appdirs/internal/release"
)

const (
	shortCommitLength   = 12
	releaseCheckTimeout = 10 * time.Second
)

// Build information set by ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print detailed version and build information for appdirs.",
	Run:   runVersion,
}

// versionRequested is set by the --version/-v flag.
var versionRequested bool

// versionCheckFlag is set by the --check flag.
var versionCheckFlag bool

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Flags().BoolVarP(
		&versionRequested,
		"version",
		"v",
		false,
		"Print version information",
	)

	versionCmd.Flags().BoolVar(
		&versionCheckFlag,
		"check",
		false,
		"Check GitHub for a newer release",
	)
}

func checkVersionFlag() {
	if versionRequested {
		fmt.Print(versionString())
		os.Exit(0)
	}
}

func runVersion(_ *cobra.Command, _ []string) {
	fmt.Print(versionString())

	if versionCheckFlag {
		checkLatestRelease()
	}
}

func versionString() string {
	var b strings.Builder

	fmt.Fprintf(&b, "appdirs %s\n", version)
	fmt.Fprintf(&b, "  commit:    %s\n", commit)
	fmt.Fprintf(&b, "  built:     %s\n", date)
	fmt.Fprintf(&b, "  go:        %s\n", runtime.Version())
	fmt.Fprintf(&b, "  os/arch:   %s/%s\n", runtime.GOOS, runtime.GOARCH)

	if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Fprintf(&b, "  module:    %s\n", info.Main.Path)

		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				if commit == "unknown" {
					fmt.Fprintf(&b,
						"  vcs.rev:   %s\n",
						setting.Value[:min(shortCommitLength, len(setting.Value))],
					)
				}
			}

			if setting.Key == "vcs.modified" && setting.Value == "true" {
				b.WriteString("  modified:  true\n")
			}
		}
	}

	return b.String()
}

// checkLatestRelease compares the running version against the latest
// GitHub release. Failures degrade to a warning; the version command
// never exits non-zero over a network problem.
func checkLatestRelease() {
	ctx, cancel := context.WithTimeout(context.Background(), releaseCheckTimeout)
	defer cancel()

	checker := release.NewChecker(release.NewClient())

	latest, err := checker.CheckLatest(ctx, version)
	if err != nil {
		if errors.Is(err, release.ErrAlreadyLatest) {
			fmt.Printf("\nAlready up to date (version %s)\n", version)

			return
		}

		fmt.Fprintf(os.Stderr, "\n⚠️  Warning: release check failed: %v\n", err)

		return
	}

	fmt.Printf("\nNewer release available: %s", latest.TagName)

	if age := release.Age(latest.PublishedAt); age != "" {
		fmt.Printf(" (published %s ago)", age)
	}

	fmt.Println()
	fmt.Printf("  %s\n", latest.HTMLURL)
}
