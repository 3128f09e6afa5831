package domain

import "fmt"

// ErrorKind classifies interpreter failures. None of them is fatal.
type ErrorKind int

const (
	ErrCommandNotFound ErrorKind = iota + 1
	ErrArgumentsRequired
	ErrCommandNotDefined
	ErrFilterArgumentMissing
	ErrInvalidSortOrder
)

// CommandError is an informational failure rendered into the session log.
type CommandError struct {
	Kind  ErrorKind
	Token string
}

func (e *CommandError) Error() string {
	switch e.Kind {
	case ErrCommandNotFound:
		return fmt.Sprintf("command %s is not found.", e.Token)
	case ErrArgumentsRequired:
		return "argument(s) must be supplied."
	case ErrCommandNotDefined:
		return fmt.Sprintf("command %s is not defined.", e.Token)
	case ErrFilterArgumentMissing:
		return fmt.Sprintf("'%s' filter must be supplied an argument.", e.Token)
	case ErrInvalidSortOrder:
		return fmt.Sprintf("'%s' must be supplied an argument '%s' || '%s'.", e.Token, SortAscending, SortDescending)
	default:
		return "unknown command error"
	}
}

// Is lets errors.Is match on the kind alone.
func (e *CommandError) Is(target error) bool {
	t, ok := target.(*CommandError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Token == "" || t.Token == e.Token)
}
