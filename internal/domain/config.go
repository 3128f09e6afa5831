package domain

// Config mirrors ~/.cligui/config.yaml.
type Config struct {
	ConfigFormatVersion string              `yaml:"config_format_version"`
	PrimaryCommand      string              `yaml:"primary_command"`
	Version             string              `yaml:"version"`
	Prompt              string              `yaml:"prompt"`
	Interpreter         InterpreterSettings `yaml:"interpreter"`
	History             HistorySettings     `yaml:"history"`
	Catalog             CatalogSettings     `yaml:"catalog"`
	Preferences         Preferences         `yaml:"preferences"`
}

// InterpreterSettings tunes command parsing.
type InterpreterSettings struct {
	// LegacyFlagWindow restores the narrow scan bound, which stops two
	// tokens before the end of the line.
	LegacyFlagWindow bool `yaml:"legacy_flag_window"`
}

// HistorySettings controls recall behaviour.
type HistorySettings struct {
	Clamp bool `yaml:"clamp"`
}

// CatalogSettings selects where the cat catalog is loaded from.
type CatalogSettings struct {
	Source string `yaml:"source"`
	Path   string `yaml:"path"`
}

// Preferences captures user level toggles.
type Preferences struct {
	Verbose bool   `yaml:"verbose"`
	LogFile string `yaml:"log_file"`
}
