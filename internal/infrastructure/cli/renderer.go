package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/cligui-go/internal/domain"
)

const outputIndent = "  "

// Styles maps segment kinds to terminal styles.
type Styles struct {
	Error     lipgloss.Style
	Highlight lipgloss.Style
	Prompt    lipgloss.Style
	Dim       lipgloss.Style
}

// DefaultStyles returns the styles used by the terminal UI.
func DefaultStyles() Styles {
	return Styles{
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Italic(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Renderer turns fragments and log entries into display text.
type Renderer struct {
	styles Styles
	plain  bool
}

// NewPlainRenderer renders text without any escape sequences.
func NewPlainRenderer() *Renderer {
	return &Renderer{plain: true}
}

// NewStyledRenderer renders with lipgloss styles.
func NewStyledRenderer(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

func (r *Renderer) segment(seg domain.Segment) string {
	if r.plain {
		return seg.Text
	}
	switch seg.Kind {
	case domain.SegmentError:
		return r.styles.Error.Render(seg.Text)
	case domain.SegmentHighlight:
		return r.styles.Highlight.Render(seg.Text)
	default:
		return seg.Text
	}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

// Fragment renders every output line indented under its prompt.
func (r *Renderer) Fragment(f domain.Fragment) string {
	var b strings.Builder
	for i, line := range f.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if len(line) == 0 {
			continue
		}
		b.WriteString(outputIndent)
		for _, seg := range line {
			b.WriteString(r.segment(seg))
		}
	}
	return b.String()
}

// Entry renders one log entry: the prompt echo followed by its output.
func (r *Renderer) Entry(e domain.Entry) string {
	if e.Greeting {
		return r.Fragment(e.Output)
	}
	var b strings.Builder
	b.WriteString(r.style(r.styles.Prompt, e.Prompt))
	b.WriteString(r.style(r.styles.Dim, " : "+e.At.Format(domain.LoginTimeFormat)))
	b.WriteByte('\n')
	b.WriteString(r.style(r.styles.Prompt, "$"))
	b.WriteString(" " + e.Input)
	if !e.Output.Empty() {
		b.WriteByte('\n')
		b.WriteString(r.Fragment(e.Output))
	}
	return b.String()
}

// Log renders the whole session log, entries separated by a blank line.
func (r *Renderer) Log(entries []domain.Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, r.Entry(e))
	}
	return strings.Join(parts, "\n\n")
}
