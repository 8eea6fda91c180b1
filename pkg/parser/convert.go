package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/leapstyle/pkg/ast"
	"github.com/leapstack-labs/leapstyle/pkg/source"
)

// nodeKinds maps tree-sitter node types with a fixed ESTree counterpart.
// Types needing context are resolved in kindOf.
var nodeKinds = map[string]ast.Kind{
	"program":                         ast.Program,
	"expression_statement":            ast.ExpressionStatement,
	"statement_block":                 ast.BlockStatement,
	"empty_statement":                 ast.EmptyStatement,
	"debugger_statement":              ast.DebuggerStatement,
	"with_statement":                  ast.WithStatement,
	"return_statement":                ast.ReturnStatement,
	"labeled_statement":               ast.LabeledStatement,
	"break_statement":                 ast.BreakStatement,
	"continue_statement":              ast.ContinueStatement,
	"if_statement":                    ast.IfStatement,
	"switch_statement":                ast.SwitchStatement,
	"switch_case":                     ast.SwitchCase,
	"switch_default":                  ast.SwitchCase,
	"throw_statement":                 ast.ThrowStatement,
	"try_statement":                   ast.TryStatement,
	"catch_clause":                    ast.CatchClause,
	"while_statement":                 ast.WhileStatement,
	"do_statement":                    ast.DoWhileStatement,
	"for_statement":                   ast.ForStatement,
	"function_declaration":            ast.FunctionDeclaration,
	"generator_function_declaration":  ast.FunctionDeclaration,
	"lexical_declaration":             ast.VariableDeclaration,
	"variable_declaration":            ast.VariableDeclaration,
	"variable_declarator":             ast.VariableDeclarator,
	"class_declaration":               ast.ClassDeclaration,
	"abstract_class_declaration":      ast.ClassDeclaration,
	"class":                           ast.ClassExpression,
	"class_body":                      ast.ClassBody,
	"method_definition":               ast.MethodDefinition,
	"field_definition":                ast.PropertyDefinition,
	"public_field_definition":         ast.PropertyDefinition,
	"class_static_block":              ast.StaticBlock,
	"import_statement":                ast.ImportDeclaration,
	"import_specifier":                ast.ImportSpecifier,
	"export_specifier":                ast.ExportSpecifier,
	"identifier":                      ast.Identifier,
	"property_identifier":             ast.Identifier,
	"shorthand_property_identifier":   ast.Identifier,
	"statement_identifier":            ast.Identifier,
	"undefined":                       ast.Identifier,
	"private_property_identifier":     ast.PrivateIdentifier,
	"string":                          ast.Literal,
	"number":                          ast.Literal,
	"regex":                           ast.Literal,
	"true":                            ast.Literal,
	"false":                           ast.Literal,
	"null":                            ast.Literal,
	"template_string":                 ast.TemplateLiteral,
	"this":                            ast.ThisExpression,
	"super":                           ast.Super,
	"array":                           ast.ArrayExpression,
	"object":                          ast.ObjectExpression,
	"pair":                            ast.Property,
	"pair_pattern":                    ast.Property,
	"function_expression":             ast.FunctionExpression,
	"function":                        ast.FunctionExpression,
	"generator_function":              ast.FunctionExpression,
	"arrow_function":                  ast.ArrowFunctionExpression,
	"sequence_expression":             ast.SequenceExpression,
	"unary_expression":                ast.UnaryExpression,
	"update_expression":               ast.UpdateExpression,
	"assignment_expression":           ast.AssignmentExpression,
	"augmented_assignment_expression": ast.AssignmentExpression,
	"ternary_expression":              ast.ConditionalExpression,
	"new_expression":                  ast.NewExpression,
	"member_expression":               ast.MemberExpression,
	"subscript_expression":            ast.MemberExpression,
	"meta_property":                   ast.MetaProperty,
	"await_expression":                ast.AwaitExpression,
	"yield_expression":                ast.YieldExpression,
	"spread_element":                  ast.SpreadElement,
	"object_pattern":                  ast.ObjectPattern,
	"array_pattern":                   ast.ArrayPattern,
	"rest_pattern":                    ast.RestElement,
	"assignment_pattern":              ast.AssignmentPattern,
	"object_assignment_pattern":       ast.AssignmentPattern,
	"jsx_element":                     ast.JSXElement,
	"jsx_self_closing_element":        ast.JSXElement,
	"jsx_opening_element":             ast.JSXOpeningElement,
	"jsx_closing_element":             ast.JSXClosingElement,
	"jsx_attribute":                   ast.JSXAttribute,
	"jsx_expression":                  ast.JSXExpressionContainer,
	"jsx_text":                        ast.JSXText,
	"jsx_namespace_name":              ast.JSXNamespacedName,
	"nested_identifier":               ast.JSXMemberExpression,
	"type_alias_declaration":          ast.TSTypeAliasDeclaration,
	"interface_declaration":           ast.TSInterfaceDeclaration,
	"enum_declaration":                ast.TSEnumDeclaration,
	"enum_assignment":                 ast.TSEnumMember,
	"internal_module":                 ast.TSModuleDeclaration,
	"module":                          ast.TSModuleDeclaration,
	"type_annotation":                 ast.TSTypeAnnotation,
	"union_type":                      ast.TSUnionType,
	"intersection_type":               ast.TSIntersectionType,
	"conditional_type":                ast.TSConditionalType,
	"array_type":                      ast.TSArrayType,
	"tuple_type":                      ast.TSTupleType,
	"object_type":                     ast.TSTypeLiteral,
	"type_identifier":                 ast.TSTypeReference,
	"nested_type_identifier":          ast.TSTypeReference,
	"generic_type":                    ast.TSTypeReference,
	"predefined_type":                 ast.TSTypeReference,
	"function_type":                   ast.TSFunctionType,
	"literal_type":                    ast.TSLiteralType,
	"index_type_query":                ast.TSTypeOperator,
	"readonly_type":                   ast.TSTypeOperator,
	"as_expression":                   ast.TSAsExpression,
	"satisfies_expression":            ast.TSSatisfiesExpression,
	"non_null_expression":             ast.TSNonNullExpression,
}

// syntacticParens lists the statements whose parenthesized child belongs to
// the statement syntax rather than to the expression.
var syntacticParens = map[ast.Kind]string{
	ast.IfStatement:      "condition",
	ast.WhileStatement:   "condition",
	ast.DoWhileStatement: "condition",
	ast.SwitchStatement:  "value",
	ast.WithStatement:    "object",
}

// transparent node types have no ESTree counterpart; their children attach
// to the enclosing node.
var transparent = map[string]bool{
	"arguments":             true,
	"else_clause":           true,
	"finally_clause":        true,
	"switch_body":           true,
	"enum_body":             true,
	"class_heritage":        true,
	"extends_clause":        true,
	"template_substitution": true,
	"import_clause":         true,
	"named_imports":         true,
	"export_clause":         true,
	"optional_chain":        true,
	"formal_parameters":     true,
	"required_parameter":    true,
	"optional_parameter":    true,
}

var logicalOperators = map[string]bool{"&&": true, "||": true, "??": true}

type builder struct {
	code *source.Code
	src  []byte
	tree *ast.Tree
}

func (b *builder) content(n *sitter.Node) string {
	return n.Content(b.src)
}

// convert lowers n and its named descendants under parent.
func (b *builder) convert(n *sitter.Node, parent ast.NodeID, field string, parens int) {
	switch n.Type() {
	case "parenthesized_expression", "parenthesized_type":
		inner := firstNamed(n)
		if inner == nil {
			return
		}
		b.convert(inner, parent, field, parens+1)
		return
	case "comment", "html_comment", "hash_bang_line":
		return
	}
	if !n.IsNamed() {
		return
	}
	if transparent[n.Type()] {
		b.convertChildren(n, parent, field)
		return
	}

	node := ast.Node{
		Kind:   b.kindOf(n, parent),
		Field:  field,
		Span:   b.code.SpanOf(int(n.StartByte()), int(n.EndByte())),
		Parens: parens,
	}
	b.decorate(n, &node)
	id := b.tree.Add(parent, node)

	switch n.Type() {
	case "union_type", "intersection_type":
		b.flatten(n, n.Type(), id, "types")
		return
	case "sequence_expression":
		b.flatten(n, n.Type(), id, "expressions")
		return
	}
	b.convertChildren(n, id, "")
}

// convertChildren converts the named children of n under id. A non-empty
// field overrides the children's own field names.
func (b *builder) convertChildren(n *sitter.Node, id ast.NodeID, field string) {
	syntactic, hasSyntactic := syntacticParens[b.tree.Kind(id)]
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !child.IsNamed() {
			continue
		}
		f := field
		if f == "" {
			f = n.FieldNameForChild(i)
		}
		if hasSyntactic && f == syntactic && child.Type() == "parenthesized_expression" {
			if inner := firstNamed(child); inner != nil {
				b.convert(inner, id, f, 0)
			}
			continue
		}
		b.convert(child, id, f, 0)
	}
}

// flatten adds the operands of a left-nested chain of typ directly under id.
func (b *builder) flatten(n *sitter.Node, typ string, id ast.NodeID, field string) {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !child.IsNamed() || child.Type() == "comment" {
			continue
		}
		if child.Type() == typ {
			b.flatten(child, typ, id, field)
			continue
		}
		b.convert(child, id, field, 0)
	}
}

func (b *builder) kindOf(n *sitter.Node, parent ast.NodeID) ast.Kind {
	switch n.Type() {
	case "binary_expression":
		if op := n.ChildByFieldName("operator"); op != nil && logicalOperators[op.Type()] {
			return ast.LogicalExpression
		}
		return ast.BinaryExpression

	case "call_expression":
		if fn := n.ChildByFieldName("function"); fn != nil && fn.Type() == "import" {
			return ast.ImportExpression
		}
		if args := n.ChildByFieldName("arguments"); args != nil && args.Type() == "template_string" {
			return ast.TaggedTemplateExpression
		}
		return ast.CallExpression

	case "for_in_statement":
		if op := n.ChildByFieldName("operator"); op != nil && op.Type() == "of" {
			return ast.ForOfStatement
		}
		return ast.ForInStatement

	case "export_statement":
		for i := 0; i < int(n.ChildCount()); i++ {
			switch n.Child(i).Type() {
			case "default":
				return ast.ExportDefaultDeclaration
			case "*":
				return ast.ExportAllDeclaration
			}
		}
		return ast.ExportNamedDeclaration

	case "jsx_element":
		if open := n.ChildByFieldName("open_tag"); open != nil && open.ChildByFieldName("name") == nil {
			return ast.JSXFragment
		}
		return ast.JSXElement

	case "shorthand_property_identifier_pattern":
		return ast.Identifier

	case "property_identifier":
		if b.tree.Kind(parent) == ast.TSEnumDeclaration {
			return ast.TSEnumMember
		}
		if b.tree.Kind(parent) == ast.JSXAttribute {
			return ast.JSXIdentifier
		}

	case "identifier":
		switch b.tree.Kind(parent) {
		case ast.JSXOpeningElement, ast.JSXClosingElement, ast.JSXElement, ast.JSXMemberExpression:
			return ast.JSXIdentifier
		}
	}
	if k, ok := nodeKinds[n.Type()]; ok {
		return k
	}
	return ast.Unknown
}

// decorate fills the operator and flags of a node.
func (b *builder) decorate(n *sitter.Node, node *ast.Node) {
	switch node.Kind {
	case ast.BinaryExpression, ast.LogicalExpression, ast.UnaryExpression,
		ast.UpdateExpression, ast.AssignmentExpression:
		if op := n.ChildByFieldName("operator"); op != nil {
			node.Operator = b.content(op)
		} else if node.Kind == ast.AssignmentExpression {
			node.Operator = "="
		}
		if node.Kind == ast.UpdateExpression && n.ChildCount() > 0 && !n.Child(0).IsNamed() {
			node.Flags |= ast.FlagPrefix
		}

	case ast.MemberExpression, ast.CallExpression:
		if n.Type() == "subscript_expression" {
			node.Flags |= ast.FlagComputed
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			if n.Child(i).Type() == "optional_chain" {
				node.Flags |= ast.FlagOptional
			}
		}
	}
}

func firstNamed(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() != "comment" {
			return c
		}
	}
	return nil
}

// markDirectives flags the leading string statements of programs and
// function bodies.
func markDirectives(tree *ast.Tree, code *source.Code) {
	tree.Walk(tree.Root(), func(id ast.NodeID) bool {
		n := tree.Node(id)
		if n.Kind != ast.Program && !(n.Kind == ast.BlockStatement && isFunction(tree.Kind(n.Parent))) {
			return true
		}
		for _, stmt := range n.Children {
			s := tree.Node(stmt)
			if s.Kind != ast.ExpressionStatement || len(s.Children) == 0 {
				break
			}
			expr := tree.Node(s.Children[0])
			text := code.Slice(expr.Span)
			if expr.Kind != ast.Literal || expr.Parens > 0 || text == "" || (text[0] != '"' && text[0] != '\'') {
				break
			}
			s.Flags |= ast.FlagDirective
		}
		return true
	})
}

func isFunction(k ast.Kind) bool {
	switch k {
	case ast.FunctionDeclaration, ast.FunctionExpression, ast.ArrowFunctionExpression, ast.MethodDefinition:
		return true
	}
	return false
}
