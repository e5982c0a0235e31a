package tui

import (
	"charm.land/huh/v2"

	"github.com/smykla-skalski/appdirs/pkg/appdir"
	pkgConfig "github.com/smykla-skalski/appdirs/pkg/config"
)

// kindAuto selects the directory strategy by platform at run time.
const kindAuto = "auto"

// HuhUI implements UI using charm.land/huh.
type HuhUI struct{}

// NewHuhUI creates a new HuhUI instance.
func NewHuhUI() *HuhUI {
	return &HuhUI{}
}

// IsInteractive returns true as HuhUI is for interactive terminals.
func (*HuhUI) IsInteractive() bool {
	return true
}

// RunInitForm runs the configuration setup form using huh.
func (*HuhUI) RunInitForm(opts InitFormOptions) (*pkgConfig.Config, bool, error) {
	result := InitFormResult{
		Domain: opts.DefaultDomain,
		Author: opts.DefaultAuthor,
		Name:   opts.DefaultName,
		Kind:   kindAuto,
		Format: pkgConfig.FormatTable.String(),
	}

	// Build the form
	form := buildInitForm(opts, &result)

	// Run the form
	if err := form.Run(); err != nil {
		return nil, false, err
	}

	// Convert result to config
	cfg, err := buildConfigFromResult(&result)
	if err != nil {
		return nil, false, err
	}

	return cfg, result.AddToExclude, nil
}

// buildInitForm creates the huh form for configuration setup.
func buildInitForm(opts InitFormOptions, result *InitFormResult) *huh.Form {
	domainInput := huh.NewInput().
		Title("Application Domain").
		Description("Reverse-DNS prefix used for Apple bundle identifiers.\nLeave empty for no prefix.").
		Placeholder("org").
		Value(&result.Domain)

	authorInput := huh.NewInput().
		Title("Application Author").
		Description("Organization or person producing the application.").
		Placeholder("Mozilla").
		Value(&result.Author)

	nameInput := huh.NewInput().
		Title("Application Name").
		Description("Application name with its original casing.").
		Placeholder("Firefox").
		Value(&result.Name)

	kindSelect := huh.NewSelect[string]().
		Title("Directory Strategy").
		Description("Convention used to lay out directories.").
		Options(kindOptions()...).
		Value(&result.Kind)

	nativeConfirm := huh.NewConfirm().
		Title("Prefer Native Conventions").
		Description("Use the platform's native layout when no strategy is pinned.\nOn macOS this selects Library paths instead of XDG.").
		Affirmative("Yes").
		Negative("No").
		Value(&result.Native)

	formatSelect := huh.NewSelect[string]().
		Title("Output Format").
		Description("Default rendering for resolved directories.").
		Options(formatOptions()...).
		Value(&result.Format)

	// Build groups
	groups := []*huh.Group{
		huh.NewGroup(domainInput, authorInput, nameInput),
		huh.NewGroup(kindSelect, nativeConfirm, formatSelect),
	}

	// Add git exclude option if applicable
	if opts.ShowGitExclude {
		result.AddToExclude = true // Default to yes

		excludeConfirm := huh.NewConfirm().
			Title("Add to .git/info/exclude").
			Description("Add config file to .git/info/exclude to prevent accidental commits.").
			Affirmative("Yes").
			Negative("No").
			Value(&result.AddToExclude)

		groups = append(groups, huh.NewGroup(excludeConfirm))
	}

	return huh.NewForm(groups...)
}

// kindOptions lists the selectable directory strategies, auto first.
func kindOptions() []huh.Option[string] {
	options := []huh.Option[string]{
		huh.NewOption("Auto (select by platform)", kindAuto),
	}

	for _, kind := range kindChoices()[1:] {
		options = append(options, huh.NewOption(kind, kind))
	}

	return options
}

// formatOptions lists the selectable output formats.
func formatOptions() []huh.Option[string] {
	choices := formatChoices()
	options := make([]huh.Option[string], 0, len(choices))

	for _, format := range choices {
		options = append(options, huh.NewOption(format, format))
	}

	return options
}

// buildConfigFromResult converts the form result to a config struct.
func buildConfigFromResult(result *InitFormResult) (*pkgConfig.Config, error) {
	cfg := &pkgConfig.Config{
		Version: pkgConfig.CurrentConfigVersion,
	}

	// Set the app identity if any field was provided
	if result.Domain != "" || result.Author != "" || result.Name != "" {
		cfg.App = &pkgConfig.AppConfig{
			Domain: result.Domain,
			Author: result.Author,
			Name:   result.Name,
		}
	}

	format, err := pkgConfig.ParseFormat(result.Format)
	if err != nil {
		return nil, err
	}

	cfg.Output = &pkgConfig.OutputConfig{Format: format}

	native := result.Native
	strategy := &pkgConfig.StrategyConfig{Native: &native}

	// "auto" leaves the kind unset so the platform picks it
	if result.Kind != "" && result.Kind != kindAuto {
		kind, parseErr := appdir.ParseKind(result.Kind)
		if parseErr != nil {
			return nil, parseErr
		}

		strategy.Kind = kind
	}

	cfg.Strategy = strategy

	return cfg, nil
}
