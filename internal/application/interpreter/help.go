package interpreter

import (
	"strings"

	"github.com/doeshing/cligui-go/internal/domain"
)

// Banner renders the usage text shown at login and on top of help.
func (s *Service) Banner() domain.Fragment {
	var out domain.Fragment
	out.Add(domain.Plain("Usage: " + s.primary + " <command>"))
	out.Blank()
	out.Add(domain.Plain("where <command> is one of:"))
	out.Add(domain.Plain("  " + strings.Join(s.commands.Codes(), ", ")))
	out.Blank()
	out.Add(domain.Plain(s.primary + " " + CodeHelp + " : quick help on all <command>"))
	out.Blank()
	out.Add(domain.Plain("example usage:"))
	out.Add(domain.Plain("  " + s.primary + " " + CodeHelp))
	out.Blank()
	out.Add(domain.Plain(s.version))
	return out
}

func (s *Service) help() domain.Fragment {
	out := s.Banner()
	out.Blank()
	for _, cmd := range s.commands {
		out.Add(domain.Highlight(cmd.Code), domain.Plain(" | "), domain.Highlight(cmd.Alias))
		out.Add(domain.Plain("  options:" + formatOptions(cmd.Options)))
		out.Add(domain.Plain("  " + cmd.Description))
	}
	return out
}

func formatOptions(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return " <" + strings.Join(options, "> <") + ">"
}
