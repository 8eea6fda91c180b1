package rewrite

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// QuoteStyle describes one of the three quoting conventions.
type QuoteStyle struct {
	Name          string
	Quote         string
	Alternate     string
	Interpolation bool // honors ${ substitutions
}

// Quote styles.
var (
	Single   = QuoteStyle{Name: "single", Quote: "'", Alternate: `"`}
	Double   = QuoteStyle{Name: "double", Quote: `"`, Alternate: "'"}
	Backtick = QuoteStyle{Name: "backtick", Quote: "`", Alternate: `"`, Interpolation: true}
)

func (s QuoteStyle) String() string { return s.Name }

// ParseQuoteStyle returns the style named single, double or backtick.
func ParseQuoteStyle(name string) (QuoteStyle, error) {
	switch strings.ToLower(name) {
	case "single":
		return Single, nil
	case "double":
		return Double, nil
	case "backtick":
		return Backtick, nil
	default:
		return QuoteStyle{}, fmt.Errorf("unknown quote style %q", name)
	}
}

// StyleOf returns the style whose quote character opens raw.
func StyleOf(raw string) (QuoteStyle, bool) {
	if raw == "" {
		return QuoteStyle{}, false
	}
	switch raw[0] {
	case '\'':
		return Single, true
	case '"':
		return Double, true
	case '`':
		return Backtick, true
	}
	return QuoteStyle{}, false
}

// ConvertQuotes rewrites the raw text of a string literal, or of a template
// literal without substitutions, into the target style. The result denotes
// the same value as raw. It refuses when raw is malformed, when raw is a
// template with substitutions, or when the target is backtick and raw holds
// an octal or non-octal decimal escape, which templates reject.
func ConvertQuotes(raw string, target QuoteStyle) (string, bool) {
	from, ok := StyleOf(raw)
	if !ok || len(raw) < 2 || raw[len(raw)-1] != raw[0] {
		return "", false
	}
	if from == target {
		return raw, true
	}
	body := raw[1 : len(raw)-1]
	if target.Interpolation && HasOctalEscape(body) {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(raw) + 2)
	b.WriteString(target.Quote)
	for i := 0; i < len(body); {
		c := body[i]
		switch {
		case c == '\\':
			if i+1 >= len(body) {
				return "", false
			}
			esc := escapedUnit(body[i+1:])
			if esc == from.Quote || from.Interpolation && esc == "${" {
				b.WriteString(esc)
			} else {
				b.WriteByte('\\')
				b.WriteString(esc)
			}
			i += 1 + len(esc)

		case strings.HasPrefix(body[i:], "${"):
			if from.Interpolation {
				return "", false
			}
			if target.Interpolation {
				b.WriteByte('\\')
			}
			b.WriteString("${")
			i += 2

		case c == '\'' || c == '"' || c == '`':
			if string(c) == target.Quote {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
			i++

		case c == '\r' || c == '\n':
			n := 1
			if c == '\r' && i+1 < len(body) && body[i+1] == '\n' {
				n = 2
			}
			if from.Interpolation {
				b.WriteString(`\n`)
			} else {
				b.WriteString(body[i : i+n])
			}
			i += n

		default:
			b.WriteByte(c)
			i++
		}
	}
	b.WriteString(target.Quote)
	return b.String(), true
}

// escapedUnit returns the text an escape applies to: ${, a CRLF pair, or one
// character.
func escapedUnit(s string) string {
	switch {
	case strings.HasPrefix(s, "${"):
		return "${"
	case strings.HasPrefix(s, "\r\n"):
		return "\r\n"
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// HasOctalEscape reports whether body contains an escape such as \1 or \01.
// A lone \0 not followed by a digit is the null character and is allowed.
func HasOctalEscape(body string) bool {
	for i := 0; i < len(body); i++ {
		if body[i] != '\\' || i+1 >= len(body) {
			continue
		}
		d := body[i+1]
		if d >= '1' && d <= '9' {
			return true
		}
		if d == '0' && i+2 < len(body) && body[i+2] >= '0' && body[i+2] <= '9' {
			return true
		}
		i++
	}
	return false
}

// HasUnescaped reports whether body contains quote outside an escape.
func HasUnescaped(body, quote string) bool {
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' {
			i++
			continue
		}
		if strings.HasPrefix(body[i:], quote) {
			return true
		}
	}
	return false
}
