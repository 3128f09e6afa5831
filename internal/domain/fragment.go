package domain

import "strings"

// SegmentKind tags a piece of rendered output so hosts can style it.
type SegmentKind int

const (
	// SegmentPlain is ordinary output text.
	SegmentPlain SegmentKind = iota
	// SegmentError is an emphasized error message.
	SegmentError
	// SegmentHighlight marks a highlighted token such as a command or cat name.
	SegmentHighlight
)

// String returns the kind name.
func (k SegmentKind) String() string {
	switch k {
	case SegmentPlain:
		return "plain"
	case SegmentError:
		return "error"
	case SegmentHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}

// Segment is a run of text with a single kind.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Plain builds a plain segment.
func Plain(text string) Segment { return Segment{Kind: SegmentPlain, Text: text} }

// Emphasis builds an error segment.
func Emphasis(text string) Segment { return Segment{Kind: SegmentError, Text: text} }

// Highlight builds a highlighted segment.
func Highlight(text string) Segment { return Segment{Kind: SegmentHighlight, Text: text} }

// Line is one output line.
type Line []Segment

// Text returns the line without any markup.
func (l Line) Text() string {
	var b strings.Builder
	for _, seg := range l {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Fragment is the output produced by a single submitted line.
// A fragment with no lines is empty and renders as nothing.
type Fragment struct {
	Lines []Line
}

// Empty reports whether the fragment has no output.
func (f Fragment) Empty() bool {
	return len(f.Lines) == 0
}

// Add appends a line made of the given segments.
func (f *Fragment) Add(segments ...Segment) {
	f.Lines = append(f.Lines, Line(segments))
}

// Blank appends an empty line.
func (f *Fragment) Blank() {
	f.Lines = append(f.Lines, Line{})
}

// Append adds all lines of other to f.
func (f *Fragment) Append(other Fragment) {
	f.Lines = append(f.Lines, other.Lines...)
}

// HasErrors reports whether any segment is an error.
func (f Fragment) HasErrors() bool {
	for _, line := range f.Lines {
		for _, seg := range line {
			if seg.Kind == SegmentError {
				return true
			}
		}
	}
	return false
}

// Text returns the fragment as plain text, one line per output line.
func (f Fragment) Text() string {
	lines := make([]string, 0, len(f.Lines))
	for _, line := range f.Lines {
		lines = append(lines, line.Text())
	}
	return strings.Join(lines, "\n")
}

// Result is what the interpreter hands back for one submitted line.
// Clear asks the session to reset its log and input buffer.
type Result struct {
	Fragment Fragment
	Clear    bool
}
