package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for configuration files (rw-------)
	SecureFilePermissions = 0o600
)

// Interpreter constants
const (
	// DefaultPrimaryCommand is the leading token every valid line starts with
	DefaultPrimaryCommand = "cli-gui"
	// DefaultVersion is the identity string printed by the version command
	DefaultVersion = "cli-gui@0.0.0 https://github.com/kyoyababa/cli-gui"
	// DefaultPrompt is the label echoed before each submitted line
	DefaultPrompt = "-(cli-gui)"
)

// Catalog flags and values
const (
	FlagCountry    = "--country"
	FlagSortBy     = "--sortBy"
	SortAscending  = "ASC"
	SortDescending = "DESC"
)

// Catalog sources
const (
	CatalogSourceEmbedded = "embedded"
	CatalogSourceYAML     = "yaml"
	CatalogSourceSQLite   = "sqlite"
)

// Time formats
const (
	// LoginTimeFormat renders timestamps like "Sat Oct 17 09:04:05"
	LoginTimeFormat = "Mon Jan 2 15:04:05"
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
