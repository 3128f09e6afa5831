// Package domain defines the core entities and value objects for cli-gui.
//
// This file contains the command table definitions. The table is static: it is
// built once at startup and never mutated while a session is running.
package domain

import "fmt"

// CommandDefinition describes one subcommand of the primary command.
type CommandDefinition struct {
	Code        string   `yaml:"code"`
	Alias       string   `yaml:"alias"`
	Options     []string `yaml:"options"`
	Description string   `yaml:"description"`
}

// Matches reports whether token selects this command by code or alias.
// Matching is exact and case-sensitive.
func (c CommandDefinition) Matches(token string) bool {
	return token != "" && (token == c.Code || token == c.Alias)
}

// CommandTable is the ordered list of subcommands.
type CommandTable []CommandDefinition

// Lookup returns the command selected by token.
func (t CommandTable) Lookup(token string) (CommandDefinition, bool) {
	for _, cmd := range t {
		if cmd.Matches(token) {
			return cmd, true
		}
	}
	return CommandDefinition{}, false
}

// Codes returns the command codes in table order.
func (t CommandTable) Codes() []string {
	codes := make([]string, 0, len(t))
	for _, cmd := range t {
		codes = append(codes, cmd.Code)
	}
	return codes
}

// Validate ensures every code and alias is unique across the table.
// A code may not collide with another command's alias either.
func (t CommandTable) Validate() error {
	seen := make(map[string]string, len(t)*2)
	for _, cmd := range t {
		if cmd.Code == "" {
			return fmt.Errorf("command with alias %q has no code", cmd.Alias)
		}
		for _, name := range []string{cmd.Code, cmd.Alias} {
			if name == "" {
				continue
			}
			if owner, ok := seen[name]; ok {
				return fmt.Errorf("command name %q of %s already used by %s", name, cmd.Code, owner)
			}
			seen[name] = cmd.Code
		}
	}
	return nil
}
