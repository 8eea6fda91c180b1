package rewrite

import (
	"fmt"
	"strconv"
	"strings"
)

// IndentUnit is the configured indentation step: Size spaces, or one tab.
type IndentUnit struct {
	Tab  bool
	Size int
}

// DefaultIndent is two spaces.
var DefaultIndent = IndentUnit{Size: 2}

// String returns the whitespace of one unit.
func (u IndentUnit) String() string {
	if u.Tab {
		return "\t"
	}
	return strings.Repeat(" ", u.Size)
}

// Add returns indent deepened by one unit.
func (u IndentUnit) Add(indent string) string {
	return indent + u.String()
}

// Sub returns indent with one unit's worth of characters removed from its end.
// An indent shorter than the unit becomes empty.
func (u IndentUnit) Sub(indent string) string {
	n := len(u.String())
	if n >= len(indent) {
		return ""
	}
	return indent[:len(indent)-n]
}

// ParseIndentUnit accepts a positive space count (as a number or numeric
// string) or the word "tab".
func ParseIndentUnit(v any) (IndentUnit, error) {
	switch v := v.(type) {
	case IndentUnit:
		return v, nil
	case int:
		return spaces(v)
	case int64:
		return spaces(int(v))
	case float64:
		if v != float64(int(v)) {
			return IndentUnit{}, fmt.Errorf("indent must be a whole number, got %v", v)
		}
		return spaces(int(v))
	case string:
		s := strings.TrimSpace(strings.ToLower(v))
		if s == "tab" || v == "\t" {
			return IndentUnit{Tab: true, Size: 1}, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return IndentUnit{}, fmt.Errorf("indent must be a number or \"tab\", got %q", v)
		}
		return spaces(n)
	default:
		return IndentUnit{}, fmt.Errorf("unsupported indent value %v (%T)", v, v)
	}
}

func spaces(n int) (IndentUnit, error) {
	if n < 1 {
		return IndentUnit{}, fmt.Errorf("indent must be at least 1, got %d", n)
	}
	return IndentUnit{Size: n}, nil
}

// IndentCache records the corrected indentation of lines during one pass over
// one file. It is not safe for concurrent use.
type IndentCache struct {
	lines map[int]string
}

// NewIndentCache creates an empty cache.
func NewIndentCache() *IndentCache {
	return &IndentCache{lines: make(map[int]string)}
}

// Get returns the corrected indent of the 1-based line, if one was recorded.
func (c *IndentCache) Get(line int) (string, bool) {
	s, ok := c.lines[line]
	return s, ok
}

// Set records the corrected indent of the 1-based line.
func (c *IndentCache) Set(line int, indent string) {
	c.lines[line] = indent
}

// Len returns the number of corrected lines.
func (c *IndentCache) Len() int { return len(c.lines) }
