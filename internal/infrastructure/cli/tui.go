package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/doeshing/cligui-go/internal/application/session"
	"github.com/doeshing/cligui-go/internal/domain"
)

type keyMap struct {
	Submit   key.Binding
	Previous key.Binding
	Next     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

var defaultKeys = keyMap{
	Submit:   key.NewBinding(key.WithKeys("enter")),
	Previous: key.NewBinding(key.WithKeys("up")),
	Next:     key.NewBinding(key.WithKeys("down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d")),
}

// model is the Bubble Tea host around one session. It owns focus, scrolling
// and styling; the session owns the log, input buffer and history.
type model struct {
	session  *session.Session
	renderer *Renderer
	keys     keyMap
	input    textinput.Model
	log      viewport.Model
	ready    bool
}

func newModel(s *session.Session, renderer *Renderer) model {
	input := textinput.New()
	input.Prompt = "$ "
	input.Focus()

	return model{
		session:  s,
		renderer: renderer,
		keys:     defaultKeys,
		input:    input,
		log:      viewport.New(0, 0),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.log.Width = msg.Width
		m.log.Height = max(msg.Height-2, 1)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.session.SetInput(m.input.Value())
			m.session.SubmitInput()
			m.input.SetValue(m.session.Input())
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Previous):
			m.recall(domain.DirectionPrevious)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.recall(domain.DirectionNext)
			return m, nil
		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			var cmd tea.Cmd
			m.log, cmd = m.log.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.SetInput(m.input.Value())
	return m, cmd
}

func (m *model) recall(dir domain.Direction) {
	m.session.Recall(dir)
	m.input.SetValue(m.session.Input())
	m.input.CursorEnd()
}

// refresh re-renders the log and scrolls to the newest entry.
func (m *model) refresh() {
	m.log.SetContent(m.renderer.Log(m.session.Log()))
	m.log.GotoBottom()
}

func (m model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	var b strings.Builder
	b.WriteString(m.log.View())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	return b.String()
}

// RunTUI starts the interactive terminal UI for s and blocks until the user quits.
func RunTUI(s *session.Session, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(newModel(s, NewStyledRenderer(DefaultStyles())), opts...)
	_, err := p.Run()
	return err
}
