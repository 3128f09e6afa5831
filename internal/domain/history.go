package domain

import "time"

// Direction is a history navigation request from the host.
type Direction int

const (
	// DirectionPrevious moves toward older entries (arrow up).
	DirectionPrevious Direction = iota
	// DirectionNext moves toward newer entries (arrow down).
	DirectionNext
)

func (d Direction) String() string {
	if d == DirectionNext {
		return "next"
	}
	return "previous"
}

// Entry is one item of the session log.
// Input is empty and Greeting is true for the login banner shown at startup.
type Entry struct {
	Prompt   string
	At       time.Time
	Input    string
	Output   Fragment
	Greeting bool
}
