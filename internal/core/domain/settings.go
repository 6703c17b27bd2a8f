package domain

const unknownDescription = "Unknown"

// Setting keys, in display order.
const (
	SettingGearSymbol   = "scan.gear_symbol"
	SettingDataDir      = "input.data_dir"
	SettingOutputFormat = "output.format"
	SettingOutputColor  = "output.color"
)

// OutputFormat controls how answers are printed.
type OutputFormat string

// Available output formats.
const (
	// OutputText prints "label: answer" lines.
	OutputText OutputFormat = "text"

	// OutputJSON prints indented JSON reports.
	OutputJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	return f == OutputText || f == OutputJSON
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// ScanSettings holds scanner configuration.
type ScanSettings struct {
	// GearSymbol is the character treated as a gear.
	GearSymbol rune
}

// InputSettings holds input resolution configuration.
type InputSettings struct {
	// DataDir is searched for relative paths that do not exist as given.
	DataDir string
}

// OutputSettings holds output configuration.
type OutputSettings struct {
	// Format is the default output format for solve.
	Format OutputFormat

	// Color enables highlighting when stdout is a terminal.
	Color bool
}

// AppSettings is the aggregate of all application settings.
type AppSettings struct {
	Scan   ScanSettings
	Input  InputSettings
	Output OutputSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Scan: ScanSettings{
			GearSymbol: DefaultGearSymbol,
		},
		Output: OutputSettings{
			Format: OutputText,
			Color:  true,
		},
	}
}

// ValidGearSymbol reports whether r can serve as a gear symbol: it must be
// a symbol character under the grid classification.
func ValidGearSymbol(r rune) bool {
	return IsSymbol(r) && r != '\n' && r != '\r'
}
