package report

import (
	"bytes"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"

	"github.com/smykla-skalski/appdirs/internal/color"
)

// kindTitles maps kind names to display names.
var kindTitles = map[string]string{
	"xdg":     "XDG",
	"apple":   "Apple",
	"windows": "Windows",
	"unix":    "Unix",
}

// kindTitle returns the display name for a kind.
func kindTitle(kind string) string {
	if title, ok := kindTitles[kind]; ok {
		return title
	}

	if kind == "" {
		return "Unknown"
	}

	return strings.ToUpper(kind[:1]) + kind[1:]
}

// RenderTable builds a table from directory sets using tablewriter.
// Kind headers span both columns via horizontal merge. Long paths wrap
// within cells.
func RenderTable(dirs []Dirs, theme color.Theme) string {
	if len(dirs) == 0 {
		return ""
	}

	headers := []string{"Purpose", "Path"}

	colWidths := calcColumnWidths()

	var buf bytes.Buffer

	opts := []tablewriter.Option{
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
			Settings: tw.Settings{
				Separators: tw.Separators{
					BetweenRows: tw.On,
				},
			},
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
		tablewriter.WithConfig(tablewriter.NewConfigBuilder().
			WithTrimSpace(tw.Off).
			Row().Merging().WithMode(tw.MergeHorizontal).Build().
			Formatting().WithAutoWrap(tw.WrapNormal).Build().
			Build().Build()),
	}

	if colWidths != nil {
		opts = append(opts, tablewriter.WithColumnWidths(toCellWidths(colWidths)))
	}

	t := tablewriter.NewTable(&buf, opts...)

	t.Header(headers)

	for _, d := range dirs {
		appendKindRows(t, d, colWidths, theme)
	}

	_ = t.Render()

	output := strings.TrimRight(buf.String(), "\n")

	return dimBorders(output, theme)
}

// appendKindRows adds a kind header row and all directory rows for one
// directory set. Cells are padded to colWidths when set.
func appendKindRows(
	t *tablewriter.Table,
	d Dirs,
	colWidths map[int]int,
	theme color.Theme,
) {
	title := theme.Header.Render(kindTitle(d.Kind))

	_ = t.Append([]string{title, title})

	for _, e := range d.entries() {
		row := buildDirRow(e, colWidths, theme)
		_ = t.Append(row)
	}
}

// buildDirRow creates a table row for a single purpose/path pair, padding
// cells to the target column widths when set.
func buildDirRow(e entry, colWidths map[int]int, theme color.Theme) []string {
	purpose := theme.Key.Render(e.purpose)

	path := shortenPath(e.path)
	if !e.present {
		path = theme.Missing.Render("(none)")
	}

	row := []string{purpose, path}

	if colWidths != nil {
		for i, cell := range row {
			if w, ok := colWidths[i]; ok {
				row[i] = padToWidth(cell, w)
			}
		}
	}

	return row
}

// toCellWidths converts content widths to cell widths (content + left/right
// padding) for WithColumnWidths. Tablewriter subtracts padding from these
// values to get the effective content wrapping width.
func toCellWidths(contentWidths map[int]int) tw.Mapper[int, int] {
	const padW = 2 // " " left + " " right

	m := make(tw.Mapper[int, int], len(contentWidths))
	for col, w := range contentWidths {
		m[col] = w + padW
	}

	return m
}

// padToWidth right-pads s with spaces so its display width reaches w.
// ANSI escape codes are excluded from width calculation.
func padToWidth(s string, w int) string {
	visible := runewidth.StringWidth(ansi.Strip(s))
	if visible >= w {
		return s
	}

	return s + strings.Repeat(" ", w-visible)
}

// dimBorders applies the muted theme style to all box-drawing border
// characters in the rendered table output.
func dimBorders(s string, theme color.Theme) string {
	for _, ch := range []string{
		"╭", "╮", "╰", "╯", "│", "─", "┬", "┴", "├", "┤", "┼",
	} {
		s = strings.ReplaceAll(s, ch, theme.Muted.Render(ch))
	}

	return s
}

// calcColumnWidths computes per-column content widths that fill the terminal.
// Returns nil when not a terminal or terminal is too narrow for a table.
// Widths are content-only (padding and borders accounted for separately).
func calcColumnWidths() map[int]int {
	return calcColumnWidthsFor(termWidth())
}

// calcColumnWidthsFor computes per-column content widths for a given terminal
// width. Extracted from calcColumnWidths to allow testing with injected widths.
func calcColumnWidthsFor(w int) map[int]int {
	const minTableW = 40

	if w < minTableW {
		return nil
	}

	// Purpose column fits its longest value ("runtime").
	const purposeW = 7

	// Each column has: 1 border char + 1 left pad + 1 right pad = 3.
	// Plus 1 trailing border on the right.
	const colOverhead = 3

	const numCols = 2

	overhead := numCols*colOverhead + 1
	available := w - overhead - purposeW

	// Ensure the path column always gets at least minPathW chars.
	const minPathW = 20

	if available < minPathW {
		return nil
	}

	return map[int]int{
		0: purposeW,
		1: available,
	}
}

// termWidth returns the terminal width or 0 if not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(
		int(os.Stdout.Fd()), //nolint:gosec // fd fits int
	); err == nil && w > 0 {
		return w
	}

	if w, _, err := term.GetSize(
		int(os.Stderr.Fd()), //nolint:gosec // fd fits int
	); err == nil && w > 0 {
		return w
	}

	return 0
}

// homeDir caches the user's home directory for path shortening.
var homeDir string

func init() {
	homeDir, _ = os.UserHomeDir()
}

// shortenPath replaces the user's home directory prefix with ~.
func shortenPath(s string) string {
	if homeDir == "" {
		return s
	}

	return strings.ReplaceAll(s, homeDir, "~")
}
