package fix

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

var loaders = map[string]api.Loader{
	".js":  api.LoaderJS,
	".mjs": api.LoaderJS,
	".cjs": api.LoaderJS,
	".jsx": api.LoaderJSX,
	".ts":  api.LoaderTS,
	".mts": api.LoaderTS,
	".cts": api.LoaderTS,
	".tsx": api.LoaderTSX,
}

// Verify compiles before and after with esbuild, minifying whitespace and
// syntax, and requires identical output. Layout, quoting and redundant
// parentheses vanish under minification, so any difference means a fix
// changed what the program does.
func Verify(filename, before, after string) error {
	want, err := compile(filename, before)
	if err != nil {
		return fmt.Errorf("verify %s: original: %w", filename, err)
	}
	got, err := compile(filename, after)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSemanticsChanged, filename, err)
	}
	if want != got {
		return fmt.Errorf("%w: %s", ErrSemanticsChanged, filename)
	}
	return nil
}

func compile(filename, src string) (string, error) {
	loader, ok := loaders[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		loader = api.LoaderJS
	}
	result := api.Transform(src, api.TransformOptions{
		Loader:           loader,
		Sourcefile:       filename,
		MinifyWhitespace: true,
		MinifySyntax:     true,
		LegalComments:    api.LegalCommentsNone,
		LogLevel:         api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		e := result.Errors[0]
		if e.Location != nil {
			return "", fmt.Errorf("%d:%d: %s", e.Location.Line, e.Location.Column+1, e.Text)
		}
		return "", fmt.Errorf("%s", e.Text)
	}
	return string(result.Code), nil
}
