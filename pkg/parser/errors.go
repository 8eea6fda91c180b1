package parser

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/leapstyle/pkg/token"
)

var (
	// ErrSyntax is wrapped by every ParseError.
	ErrSyntax = errors.New("syntax error")

	// ErrUnsupported is returned for files whose extension has no grammar.
	ErrUnsupported = errors.New("unsupported file type")
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	Filename string
	Pos      token.Position
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Pos.Line, e.Pos.Column+1, e.Message)
}

// Unwrap makes errors.Is(err, ErrSyntax) hold for parse errors.
func (e *ParseError) Unwrap() error { return ErrSyntax }
