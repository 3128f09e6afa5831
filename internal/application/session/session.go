// Package session holds the state of one emulated terminal: the scrollback
// log, the input buffer and the command history.
package session

import (
	"errors"
	"time"

	"github.com/doeshing/cligui-go/internal/domain"
	"github.com/doeshing/cligui-go/internal/ports"
)

// Options configures a Session.
type Options struct {
	Prompt string
	// Now is the clock used for timestamps. Defaults to time.Now.
	Now func() time.Time
	// SkipGreeting starts with an empty log instead of the login banner.
	SkipGreeting bool
}

// Session is the explicit replacement for page-level UI state. Hosts own one
// Session per terminal and drive it from their event loop.
type Session struct {
	interpreter ports.Interpreter
	history     ports.HistoryTracker
	logger      ports.Logger
	prompt      string
	now         func() time.Time
	log         []domain.Entry
	input       string
}

// New creates a session and seeds the log with the login greeting.
func New(interp ports.Interpreter, history ports.HistoryTracker, logger ports.Logger, opts Options) (*Session, error) {
	if interp == nil || history == nil || logger == nil {
		return nil, errors.New("session.Session dependencies not satisfied")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "-(" + interp.PrimaryCommand() + ")"
	}
	s := &Session{
		interpreter: interp,
		history:     history,
		logger:      logger,
		prompt:      prompt,
		now:         now,
	}
	if !opts.SkipGreeting {
		s.log = append(s.log, s.greeting())
	}
	return s, nil
}

func (s *Session) greeting() domain.Entry {
	at := s.now()
	var out domain.Fragment
	out.Add(domain.Plain("Last login: " + at.Format(domain.LoginTimeFormat)))
	out.Blank()
	out.Append(s.interpreter.Banner())
	return domain.Entry{At: at, Output: out, Greeting: true}
}

// Submit interprets raw, records it in history and appends the result to the
// log. The returned fragment is the output of this line alone.
func (s *Session) Submit(raw string) domain.Fragment {
	entry := domain.Entry{
		Prompt: s.prompt,
		At:     s.now(),
		Input:  raw,
	}

	res := s.interpreter.Submit(raw)
	s.history.Record(raw)

	if res.Clear {
		s.log = nil
		s.input = ""
		s.logger.Debug("log cleared", nil)
		return res.Fragment
	}

	entry.Output = res.Fragment
	s.log = append(s.log, entry)
	s.input = ""
	return res.Fragment
}

// SubmitInput submits the current input buffer.
func (s *Session) SubmitInput() domain.Fragment {
	return s.Submit(s.input)
}

// Recall navigates history and overwrites the input buffer with the result.
// A miss clears the buffer. With no history the buffer is left alone.
// It reports whether an entry was found.
func (s *Session) Recall(dir domain.Direction) (string, bool) {
	if s.history.Len() == 0 {
		return "", false
	}
	line, ok := s.history.Recall(dir)
	s.input = line
	s.logger.Debug("recall", map[string]interface{}{
		"direction": dir.String(),
		"hit":       ok,
	})
	return line, ok
}

// Log returns a copy of the session log.
func (s *Session) Log() []domain.Entry {
	out := make([]domain.Entry, len(s.log))
	copy(out, s.log)
	return out
}

// Input returns the current input buffer.
func (s *Session) Input() string {
	return s.input
}

// SetInput replaces the input buffer, e.g. as the user types.
func (s *Session) SetInput(value string) {
	s.input = value
}

// Prompt returns the label echoed before each submitted line.
func (s *Session) Prompt() string {
	return s.prompt
}
