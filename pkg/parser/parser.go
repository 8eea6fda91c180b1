// Package parser turns JavaScript, TypeScript and JSX files into a
// source.Code: the token stream, the comments and an ESTree-shaped syntax
// tree.
//
// Parsing is delegated to tree-sitter. The concrete tree is then lowered:
// parenthesized expressions disappear into a Parens count on the wrapped
// node, binary expressions split into binary and logical ones, and nested
// unions, intersections and sequences are flattened into one node each.
//
// # Usage
//
//	code, err := parser.Parse(ctx, "app.ts", src)
//	if errors.Is(err, parser.ErrSyntax) {
//	    // report and skip the file
//	}
package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/leapstack-labs/leapstyle/pkg/ast"
	"github.com/leapstack-labs/leapstyle/pkg/source"
)

// Language identifies the grammar used for a file.
type Language string

// Supported languages.
const (
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	TSX        Language = "tsx"
)

var extensions = map[string]Language{
	".js":  JavaScript,
	".jsx": JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
}

// Extensions returns the file extensions Parse accepts.
func Extensions() []string {
	out := make([]string, 0, len(extensions))
	for ext := range extensions {
		out = append(out, ext)
	}
	return out
}

// LanguageFor returns the language of filename by its extension.
func LanguageFor(filename string) (Language, error) {
	lang, ok := extensions[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filename)
	}
	return lang, nil
}

func (l Language) grammar() *sitter.Language {
	switch l {
	case TypeScript:
		return typescript.GetLanguage()
	case TSX:
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// Parse parses src as the language implied by filename.
func Parse(ctx context.Context, filename string, src []byte) (*source.Code, error) {
	lang, err := LanguageFor(filename)
	if err != nil {
		return nil, err
	}
	return ParseLanguage(ctx, lang, filename, src)
}

// ParseLanguage parses src with an explicit grammar.
func ParseLanguage(ctx context.Context, lang Language, filename string, src []byte) (*source.Code, error) {
	p := sitter.NewParser()
	p.SetLanguage(lang.grammar())

	tree, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	defer tree.Close()

	code := source.New(filename, string(src), nil, nil)
	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(code, root)
	}

	b := &builder{code: code, src: src, tree: ast.NewTree(int(root.ChildCount()) * 4)}
	b.convert(root, ast.NoNode, "", 0)
	markDirectives(b.tree, code)

	var tc tokenCollector
	tc.code = code
	tc.src = src
	tc.collect(root, false)

	code.Attach(tc.tokens, b.tree)
	return code, nil
}

// syntaxError locates the first ERROR or MISSING node under n.
func syntaxError(code *source.Code, n *sitter.Node) error {
	bad := firstError(n)
	if bad == nil {
		bad = n
	}
	msg := "unexpected input"
	if bad.IsMissing() {
		msg = fmt.Sprintf("missing %q", bad.Type())
	} else if bad.Type() == "ERROR" && bad.ChildCount() > 0 {
		msg = fmt.Sprintf("unexpected %q", bad.Child(0).Content([]byte(code.Text)))
	}
	return &ParseError{
		Filename: code.Filename,
		Pos:      code.LocFromIndex(int(bad.StartByte())),
		Message:  msg,
	}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}
