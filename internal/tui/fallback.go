package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/appdirs/internal/prompt"
	"github.com/smykla-skalski/appdirs/pkg/appdir"
	pkgConfig "github.com/smykla-skalski/appdirs/pkg/config"
)

// FallbackUI implements UI using simple stdin/stdout prompts.
// This is used when the terminal is not interactive (CI, piped input, etc.).
type FallbackUI struct {
	prompter prompt.Prompter
}

// NewFallbackUI creates a new FallbackUI instance.
func NewFallbackUI() *FallbackUI {
	return &FallbackUI{
		prompter: prompt.NewStdPrompter(),
	}
}

// NewFallbackUIWithPrompter creates a FallbackUI with a custom prompter.
func NewFallbackUIWithPrompter(p prompt.Prompter) *FallbackUI {
	return &FallbackUI{
		prompter: p,
	}
}

// IsInteractive returns false as FallbackUI is for non-interactive terminals.
func (*FallbackUI) IsInteractive() bool {
	return false
}

// RunInitForm runs the configuration setup form using simple prompts.
func (f *FallbackUI) RunInitForm(opts InitFormOptions) (*pkgConfig.Config, bool, error) {
	result := InitFormResult{
		Kind:   kindAuto,
		Format: pkgConfig.FormatTable.String(),
	}

	// Display header
	f.displayHeader(opts.Global)

	// Prompt for the app identity
	if err := f.promptIdentity(opts, &result); err != nil {
		return nil, false, err
	}

	fmt.Println()

	// Prompt for the directory strategy
	if err := f.promptStrategy(&result); err != nil {
		return nil, false, err
	}

	fmt.Println()

	// Prompt for the output format
	if err := f.promptOutput(&result); err != nil {
		return nil, false, err
	}

	// Prompt for git exclude if applicable
	if opts.ShowGitExclude {
		fmt.Println()

		if err := f.promptGitExclude(&result); err != nil {
			return nil, false, err
		}
	}

	// Convert result to config
	cfg, err := buildConfigFromResult(&result)
	if err != nil {
		return nil, false, err
	}

	return cfg, result.AddToExclude, nil
}

// displayHeader displays the configuration header.
func (*FallbackUI) displayHeader(global bool) {
	fmt.Println("╔═══════════════════════════════════════════════╗")

	if global {
		fmt.Println("║   Appdirs Global Configuration Setup          ║")
	} else {
		fmt.Println("║   Appdirs Project Configuration Setup         ║")
	}

	fmt.Println("╚═══════════════════════════════════════════════╝")
	fmt.Println()
}

// promptIdentity prompts for the application identity.
//
//nolint:unparam // error return kept for consistent API
func (f *FallbackUI) promptIdentity(opts InitFormOptions, result *InitFormResult) error {
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("Application Identity")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("Identifies the application whose directories are resolved.")
	fmt.Println("Leave fields empty to rely on command line flags.")
	fmt.Println()

	domain, err := f.prompter.Input("Domain (reverse-DNS prefix)", opts.DefaultDomain)
	if err != nil {
		// Allow empty input
		domain = ""
	}

	author, err := f.prompter.Input("Author (organization or person)", opts.DefaultAuthor)
	if err != nil {
		author = ""
	}

	name, err := f.prompter.Input("Name (original casing)", opts.DefaultName)
	if err != nil {
		name = ""
	}

	result.Domain = domain
	result.Author = author
	result.Name = name

	if name == "" {
		fmt.Println("✓ Identity left to command line flags")
	} else {
		fmt.Printf("✓ Identity configured: %s\n", name)
	}

	return nil
}

// promptStrategy prompts for the directory strategy.
func (f *FallbackUI) promptStrategy(result *InitFormResult) error {
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("Directory Strategy")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("Convention used to lay out directories.")
	fmt.Printf("Choose one of: %s.\n", strings.Join(kindChoices(), ", "))
	fmt.Println()

	kind, err := f.prompter.Input("Strategy", kindAuto)
	if err != nil {
		return err
	}

	kind = strings.ToLower(strings.TrimSpace(kind))
	if !slices.Contains(kindChoices(), kind) {
		return errors.Wrapf(prompt.ErrInvalidInput, "unknown strategy %q", kind)
	}

	result.Kind = kind

	native, err := f.prompter.Confirm("Prefer native conventions", false)
	if err != nil {
		return err
	}

	result.Native = native

	fmt.Printf("✓ Strategy configured: %s\n", kind)

	return nil
}

// promptOutput prompts for the default output format.
func (f *FallbackUI) promptOutput(result *InitFormResult) error {
	format, err := f.prompter.Input(
		fmt.Sprintf("Output format (%s)", strings.Join(formatChoices(), "/")),
		pkgConfig.FormatTable.String(),
	)
	if err != nil {
		return err
	}

	parsed, err := pkgConfig.ParseFormat(format)
	if err != nil {
		return err
	}

	result.Format = parsed.String()

	return nil
}

// promptGitExclude prompts for git exclude configuration.
func (f *FallbackUI) promptGitExclude(result *InitFormResult) error {
	addToExclude, err := f.prompter.Confirm("Add config file to .git/info/exclude?", true)
	if err != nil {
		return err
	}

	result.AddToExclude = addToExclude

	return nil
}

// kindChoices lists the accepted strategy answers, auto first.
func kindChoices() []string {
	choices := []string{kindAuto}

	for _, kind := range appdir.KindValues() {
		if kind == appdir.KindUnknown {
			continue
		}

		choices = append(choices, kind.String())
	}

	return choices
}

// formatChoices lists the accepted output format answers.
func formatChoices() []string {
	choices := make([]string, 0, len(pkgConfig.FormatValues()))

	for _, format := range pkgConfig.FormatValues() {
		if format == pkgConfig.FormatUnknown {
			continue
		}

		choices = append(choices, format.String())
	}

	return choices
}
