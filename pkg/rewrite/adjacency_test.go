package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/leapstyle/pkg/token"
)

func TestIsSafeAdjacent(t *testing.T) {
	tests := []struct {
		name        string
		left, right any
		want        bool
	}{
		{"plus plus", "+", "+", false},
		{"plus increment", "+", "++", false},
		{"increment plus", "a++", "+b", false},
		{"plus minus", "+", "-", true},
		{"minus minus", "-", "-", false},
		{"minus decrement", "-", "--", false},
		{"equals equals", "a =", "= b", false},
		{"arrow pieces", "a =", "> b", false},
		{"numeric then dot number", "1", ".5", false},
		{"string then identifier", `"a"`, "b", true},
		{"identifier then string", "a", "'b'", true},
		{"template then identifier", "`x`", "y", true},
		{"identifier then dot number", "a", ".5", false},
		{"identifier identifier", "a", "b", false},
		{"keyword identifier", "typeof", "x", false},
		{"punctuator identifier", "(", "a", true},
		{"identifier punctuator", "a", ")", true},
		{"slash then line comment", "a /", "// c", false},
		{"slash then block comment", "a /", "/* c */", false},
		{"slash then regex", "a /", "/re/", false},
		{"slash then star", "a /", "*", false},
		{"slash then identifier", "a /", "b", true},
		{"block comment left", "/* c */", "a", true},
		{"block comment right", "a", "/* c */", true},
		{"line comment right", "a", "// c", true},
		{"line comment left", "// c", "a", false},
		{"private identifier", "a", "#b", true},
		{"shebang left", "#!/usr/bin/env node", "a", false},
		{"dot then number", "a.", "5", false},
		{"malformed left", "'abc", "x", false},
		{"malformed right", "x", "`abc", false},
		{"empty fragment", "", "x", false},
		{"unsupported input", 42, "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSafeAdjacent(tt.left, tt.right))
		})
	}
}

func TestIsSafeAdjacent_Tokens(t *testing.T) {
	plus := token.Token{Kind: token.Punctuator, Value: "+"}
	minus := token.Token{Kind: token.Punctuator, Value: "-"}
	shebang := token.Token{Kind: token.Shebang, Value: "#!/bin/node"}
	str := token.Token{Kind: token.String, Value: `"s"`}

	assert.False(t, IsSafeAdjacent(plus, plus))
	assert.True(t, IsSafeAdjacent(plus, minus))
	assert.True(t, IsSafeAdjacent(&minus, "+"))
	assert.False(t, IsSafeAdjacent(shebang, str))
	assert.False(t, IsSafeAdjacent(str, shebang))
	assert.True(t, IsSafeAdjacent(str, "x"))
	assert.False(t, IsSafeAdjacent(token.Token{}, "x"))

	// hand-built tokens may carry no text
	assert.NotPanics(t, func() {
		assert.False(t, IsSafeAdjacent("a", token.Token{Kind: token.Numeric}))
		assert.False(t, IsSafeAdjacent(token.Token{Kind: token.Numeric}, token.Token{Kind: token.Numeric}))
		assert.False(t, IsSafeAdjacent(token.Token{Kind: token.Punctuator}, token.Token{Kind: token.Punctuator}))
	})
}
