package report

// Export unexported functions for external tests.
var (
	PadToWidth          = padToWidth
	ToCellWidths        = toCellWidths
	CalcColumnWidthsFor = calcColumnWidthsFor
	ShortenPath         = shortenPath
	DimBorders          = dimBorders
	KindTitle           = kindTitle
)

// SetHomeDir overrides the homeDir package variable for testing shortenPath.
func SetHomeDir(dir string) {
	homeDir = dir
}
