// Package interpreter parses raw input lines and renders their output.
//
// A line must start with the primary command name followed by a subcommand
// code or alias:
//
//	cli-gui <command|alias> [options...]
//
// Every submission yields exactly one fragment. Failures are informational:
// they are rendered as error segments and never returned as Go errors.
package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/doeshing/cligui-go/internal/domain"
	"github.com/doeshing/cligui-go/internal/ports"
)

// Options configures a Service.
type Options struct {
	PrimaryCommand string
	Version        string
	// LegacyFlagWindow stops the cats flag scan two tokens before the end of
	// the line, so a trailing "--flag value" pair is skipped.
	LegacyFlagWindow bool
	Commands         domain.CommandTable
	Catalog          domain.Catalog
	Logger           ports.Logger
}

// Service is the command interpreter. It owns the command table and catalog.
type Service struct {
	primary      string
	version      string
	legacyWindow bool
	commands     domain.CommandTable
	catalog      domain.Catalog
	logger       ports.Logger
}

// New validates the command table and builds a Service.
func New(opts Options) (*Service, error) {
	if opts.Logger == nil {
		return nil, errors.New("interpreter.Service dependencies not satisfied")
	}
	commands := opts.Commands
	if commands == nil {
		commands = DefaultCommands()
	}
	if err := commands.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command table: %w", err)
	}
	primary := opts.PrimaryCommand
	if primary == "" {
		primary = domain.DefaultPrimaryCommand
	}
	version := opts.Version
	if version == "" {
		version = domain.DefaultVersion
	}
	return &Service{
		primary:      primary,
		version:      version,
		legacyWindow: opts.LegacyFlagWindow,
		commands:     commands,
		catalog:      opts.Catalog.Clone(),
		logger:       opts.Logger,
	}, nil
}

// PrimaryCommand returns the leading token valid lines must start with.
func (s *Service) PrimaryCommand() string {
	return s.primary
}

// Submit interprets one raw input line.
func (s *Service) Submit(raw string) domain.Result {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return domain.Result{}
	}

	s.logger.Debug("submit", map[string]interface{}{
		"tokens": len(tokens),
		"head":   tokens[0],
	})

	if tokens[0] != s.primary {
		return failure(&domain.CommandError{Kind: domain.ErrCommandNotFound, Token: tokens[0]})
	}
	if len(tokens) < 2 {
		return failure(&domain.CommandError{Kind: domain.ErrArgumentsRequired})
	}

	cmd, ok := s.commands.Lookup(tokens[1])
	if !ok {
		return failure(&domain.CommandError{Kind: domain.ErrCommandNotDefined, Token: tokens[1]})
	}

	switch cmd.Code {
	case CodeClear:
		return domain.Result{Clear: true}
	case CodeHelp:
		return domain.Result{Fragment: s.help()}
	case CodeCats:
		return domain.Result{Fragment: s.listCats(tokens)}
	case CodeVersion:
		var out domain.Fragment
		out.Add(domain.Plain(s.version))
		return domain.Result{Fragment: out}
	default:
		s.logger.Warn("command has no behaviour", map[string]interface{}{"code": cmd.Code})
		return failure(&domain.CommandError{Kind: domain.ErrCommandNotDefined, Token: tokens[1]})
	}
}

func failure(err error) domain.Result {
	var out domain.Fragment
	out.Add(domain.Emphasis(err.Error()))
	return domain.Result{Fragment: out}
}

var _ ports.Interpreter = (*Service)(nil)
