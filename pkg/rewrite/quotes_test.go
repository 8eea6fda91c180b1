package rewrite

import (
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// valueOf lets esbuild print the literal in its canonical form, so two raw
// literals denote the same value exactly when their canonical forms match.
func valueOf(t *testing.T, raw string) string {
	t.Helper()
	res := api.Transform("x="+raw, api.TransformOptions{
		Loader:           api.LoaderJS,
		MinifyWhitespace: true,
		MinifySyntax:     true,
		LegalComments:    api.LegalCommentsNone,
		LogLevel:         api.LogLevelSilent,
	})
	require.Empty(t, res.Errors, "esbuild rejected %s", raw)
	return string(res.Code)
}

func TestConvertQuotes(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		target QuoteStyle
		want   string
	}{
		{"single to double", `'abc'`, Double, `"abc"`},
		{"double to single", `"abc"`, Single, `'abc'`},
		{"unescape old quote", `'it\'s'`, Double, `"it's"`},
		{"escape new quote", `'say "hi"'`, Double, `"say \"hi\""`},
		{"keep foreign escape", `"a\'b"`, Single, `'a\'b'`},
		{"to backtick escapes interpolation", `'${x}'`, Backtick, "`\\${x}`"},
		{"to backtick escapes backtick", "'a`b'", Backtick, "`a\\`b`"},
		{"from backtick unescapes interpolation", "`\\${x}`", Double, `"${x}"`},
		{"from backtick unescapes backtick", "`a\\`b`", Single, "'a`b'"},
		{"from backtick escapes newline", "`a\nb`", Double, `"a\nb"`},
		{"from backtick escapes crlf", "`a\r\nb`", Single, `'a\nb'`},
		{"line continuation kept", "'a\\\nb'", Double, "\"a\\\nb\""},
		{"backslash pairs kept", `'a\\'`, Double, `"a\\"`},
		{"null escape allowed in backtick", `'\0'`, Backtick, "`\\0`"},
		{"unicode escape kept", `'\u{1F600}'`, Double, `"\u{1F600}"`},
		{"same style is identity", `"x"`, Double, `"x"`},
		{"dollar without brace", `'$a'`, Backtick, "`$a`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ConvertQuotes(tt.raw, tt.target)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, valueOf(t, tt.raw), valueOf(t, got))
		})
	}
}

func TestConvertQuotes_Refuses(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		target QuoteStyle
	}{
		{"octal escape into backtick", `'\1'`, Backtick},
		{"leading zero octal into backtick", `"\01"`, Backtick},
		{"non-octal decimal into backtick", `'\8'`, Backtick},
		{"template with substitution", "`a${b}`", Single},
		{"unbalanced quotes", `'abc"`, Double},
		{"not a literal", `abc`, Double},
		{"trailing backslash", `'abc\'`, Double},
		{"too short", `'`, Double},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ConvertQuotes(tt.raw, tt.target)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}

	// octal escapes are fine when the target is not a template
	got, ok := ConvertQuotes(`'\1'`, Double)
	require.True(t, ok)
	assert.Equal(t, `"\1"`, got)
}

func TestConvertQuotes_RoundTripAndIdempotence(t *testing.T) {
	raws := []string{
		`'plain'`,
		`'it\'s "quoted"'`,
		`"mixed ' and \" and ` + "`" + `"`,
		`'${not.interpolated}'`,
		"`multi\nline`",
		"`has \\` and \\${}`",
		`'\t\x41B\\'`,
	}
	styles := []QuoteStyle{Single, Double, Backtick}

	for _, raw := range raws {
		for _, a := range styles {
			for _, b := range styles {
				t.Run(raw+"/"+a.Name+"/"+b.Name, func(t *testing.T) {
					mid, ok := ConvertQuotes(raw, b)
					require.True(t, ok)

					again, ok := ConvertQuotes(mid, b)
					require.True(t, ok)
					assert.Equal(t, mid, again, "converting twice must be a no-op")

					back, ok := ConvertQuotes(mid, a)
					require.True(t, ok)
					assert.Equal(t, valueOf(t, raw), valueOf(t, back))
				})
			}
		}
	}
}

func TestHasOctalEscape(t *testing.T) {
	assert.True(t, HasOctalEscape(`a\1`))
	assert.True(t, HasOctalEscape(`\07`))
	assert.True(t, HasOctalEscape(`\9`))
	assert.False(t, HasOctalEscape(`\0`))
	assert.False(t, HasOctalEscape(`\0a`))
	assert.False(t, HasOctalEscape(`\\1`))
	assert.False(t, HasOctalEscape(`plain`))
}

func TestHasUnescaped(t *testing.T) {
	assert.True(t, HasUnescaped(`a'b`, "'"))
	assert.False(t, HasUnescaped(`a\'b`, "'"))
	assert.True(t, HasUnescaped(`a${b`, "${"))
	assert.False(t, HasUnescaped(`a\${b`, "${"))
}

func TestParseQuoteStyle(t *testing.T) {
	s, err := ParseQuoteStyle("Double")
	require.NoError(t, err)
	assert.Equal(t, Double, s)

	_, err = ParseQuoteStyle("curly")
	assert.Error(t, err)
}
