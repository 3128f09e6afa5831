package interpreter

import "github.com/doeshing/cligui-go/internal/domain"

// Subcommand codes understood by the interpreter.
const (
	CodeClear   = "clear"
	CodeHelp    = "help"
	CodeCats    = "cats"
	CodeVersion = "version"
)

// DefaultCommands returns the built-in command table.
func DefaultCommands() domain.CommandTable {
	return domain.CommandTable{
		{
			Code:        CodeClear,
			Alias:       "-c",
			Description: "clear log",
		},
		{
			Code:        CodeHelp,
			Alias:       "-h",
			Description: "quick help on all <command>",
		},
		{
			Code:        CodeCats,
			Alias:       "-l",
			Options:     []string{domain.FlagCountry, domain.FlagSortBy},
			Description: "list cat types",
		},
		{
			Code:        CodeVersion,
			Alias:       "-v",
			Description: "see version of this service",
		},
	}
}
