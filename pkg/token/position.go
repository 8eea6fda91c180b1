package token

import "fmt"

// Position represents a location in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 0-based byte column within the line
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column+1)
}

// Span represents a half-open range [Start, End) in source code.
type Span struct {
	Start Position
	End   Position
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Overlaps reports whether two spans share at least one byte.
// Empty spans overlap a span that strictly contains their offset.
func (s Span) Overlaps(o Span) bool {
	if s.Len() == 0 && o.Len() == 0 {
		return false
	}
	if s.Len() == 0 {
		return o.Start.Offset < s.Start.Offset && s.Start.Offset < o.End.Offset
	}
	if o.Len() == 0 {
		return s.Start.Offset < o.Start.Offset && o.Start.Offset < s.End.Offset
	}
	return s.Start.Offset < o.End.Offset && o.Start.Offset < s.End.Offset
}
