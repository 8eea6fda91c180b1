package parser_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapstyle/pkg/ast"
	"github.com/leapstack-labs/leapstyle/pkg/parser"
	"github.com/leapstack-labs/leapstyle/pkg/source"
	"github.com/leapstack-labs/leapstyle/pkg/token"
)

func parse(t *testing.T, filename, src string) *source.Code {
	t.Helper()
	code, err := parser.Parse(context.Background(), filename, []byte(src))
	require.NoError(t, err)
	return code
}

// find returns the first node of kind in pre-order.
func find(code *source.Code, kind ast.Kind) ast.NodeID {
	found := ast.NoNode
	code.Tree.Walk(code.Tree.Root(), func(id ast.NodeID) bool {
		if found == ast.NoNode && code.Tree.Kind(id) == kind {
			found = id
		}
		return found == ast.NoNode
	})
	return found
}

func TestLanguageFor(t *testing.T) {
	tests := []struct {
		file string
		want parser.Language
	}{
		{"a.js", parser.JavaScript},
		{"a.jsx", parser.JavaScript},
		{"a.mjs", parser.JavaScript},
		{"a.ts", parser.TypeScript},
		{"a.MTS", parser.TypeScript},
		{"a.tsx", parser.TSX},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got, err := parser.LanguageFor(tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parser.LanguageFor("a.sql")
	assert.ErrorIs(t, err, parser.ErrUnsupported)
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := parser.Parse(context.Background(), "bad.js", []byte("function (\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrSyntax))

	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad.js", perr.Filename)
	assert.Equal(t, 1, perr.Pos.Line)
}

func TestParse_Tokens(t *testing.T) {
	code := parse(t, "a.js", "// hi\nconst x = `a${b}c` + 'd' / 2; /* end */")

	var got []string
	for _, tok := range code.Tokens {
		got = append(got, tok.Kind.String()+":"+tok.Value)
	}
	assert.Equal(t, []string{
		"Keyword:const",
		"Identifier:x",
		"Punctuator:=",
		"Template:`a${",
		"Identifier:b",
		"Template:}c`",
		"Punctuator:+",
		"String:'d'",
		"Punctuator:/",
		"Numeric:2",
		"Punctuator:;",
	}, got)

	require.Len(t, code.Comments, 2)
	assert.Equal(t, token.LineComment, code.Comments[0].Kind)
	assert.Equal(t, token.BlockComment, code.Comments[1].Kind)
	assert.Equal(t, 2, code.Tokens[0].Line())
}

func TestParse_Shebang(t *testing.T) {
	code := parse(t, "cli.js", "#!/usr/bin/env node\nrun()\n")
	require.NotEmpty(t, code.Tokens)
	assert.Equal(t, token.Shebang, code.Tokens[0].Kind)
}

func TestParse_LogicalAndBinary(t *testing.T) {
	code := parse(t, "a.js", "x = a + b && c || d;")
	tree := code.Tree

	assign := find(code, ast.AssignmentExpression)
	require.NotEqual(t, ast.NoNode, assign)
	assert.Equal(t, "=", tree.Node(assign).Operator)

	bin := find(code, ast.BinaryExpression)
	require.NotEqual(t, ast.NoNode, bin)
	assert.Equal(t, "+", tree.Node(bin).Operator)
	assert.Equal(t, "a", code.NodeText(tree.Left(bin)))
	assert.Equal(t, "b", code.NodeText(tree.Right(bin)))

	logical := find(code, ast.LogicalExpression)
	require.NotEqual(t, ast.NoNode, logical)
	assert.Contains(t, []string{"&&", "||"}, tree.Node(logical).Operator)
}

func TestParse_Parens(t *testing.T) {
	code := parse(t, "a.js", "if ((a)) { f(((b))) }")
	tree := code.Tree

	var parens []int
	tree.Walk(tree.Root(), func(id ast.NodeID) bool {
		n := tree.Node(id)
		if n.Kind == ast.Identifier {
			parens = append(parens, n.Parens)
		}
		return true
	})
	// the if condition's parens and the call's argument parens are syntax
	assert.Equal(t, []int{1, 0, 2}, parens)

	call := find(code, ast.CallExpression)
	require.NotEqual(t, ast.NoNode, call)
	arg := tree.ChildByField(call, "arguments")
	require.NotEqual(t, ast.NoNode, arg)
	assert.Equal(t, "b", code.NodeText(arg))
}

func TestParse_FlattenUnion(t *testing.T) {
	code := parse(t, "a.ts", "type Foo = A | B\n| C | D\n  | E")
	tree := code.Tree

	union := find(code, ast.TSUnionType)
	require.NotEqual(t, ast.NoNode, union)
	assert.Len(t, tree.Children(union), 5)
	assert.Equal(t, ast.TSTypeAliasDeclaration, tree.Kind(tree.Parent(union)))

	var names []string
	for _, c := range tree.Children(union) {
		names = append(names, code.NodeText(c))
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, names)

	first, ok := code.FirstTokenOnLine(1)
	require.True(t, ok)
	assert.Equal(t, token.Identifier, first.Kind)
	assert.Equal(t, "type", first.Value)
}

func TestParse_Directives(t *testing.T) {
	code := parse(t, "a.js", "'use strict';\n\"other\";\nfoo();\n'late';\n")
	tree := code.Tree

	var flags []bool
	for _, stmt := range tree.Children(tree.Root()) {
		flags = append(flags, tree.Node(stmt).Has(ast.FlagDirective))
	}
	assert.Equal(t, []bool{true, true, false, false}, flags)
}

func TestParse_JSX(t *testing.T) {
	code := parse(t, "a.jsx", `const el = <div className="x">{y}</div>;`)

	attr := find(code, ast.JSXAttribute)
	require.NotEqual(t, ast.NoNode, attr)

	var kinds []token.Kind
	for _, tok := range code.Tokens {
		if tok.Value == "div" || tok.Value == "className" {
			kinds = append(kinds, tok.Kind)
		}
		if tok.Value == "y" {
			assert.Equal(t, token.Identifier, tok.Kind)
		}
	}
	assert.Equal(t, []token.Kind{token.JSXIdentifier, token.JSXIdentifier, token.JSXIdentifier}, kinds)
}
