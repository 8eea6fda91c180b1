package ast

import "fmt"

// Kind is the syntactic category of a node. The set is closed: every parser
// node that has no ESTree counterpart maps to Unknown.
type Kind uint8

// Node kinds.
const (
	Unknown Kind = iota

	// Program and statements
	Program
	ExpressionStatement
	BlockStatement
	EmptyStatement
	DebuggerStatement
	WithStatement
	ReturnStatement
	LabeledStatement
	BreakStatement
	ContinueStatement
	IfStatement
	SwitchStatement
	SwitchCase
	ThrowStatement
	TryStatement
	CatchClause
	WhileStatement
	DoWhileStatement
	ForStatement
	ForInStatement
	ForOfStatement

	// Declarations
	FunctionDeclaration
	VariableDeclaration
	VariableDeclarator
	ClassDeclaration
	ClassBody
	MethodDefinition
	PropertyDefinition
	StaticBlock
	ImportDeclaration
	ImportSpecifier
	ExportNamedDeclaration
	ExportDefaultDeclaration
	ExportAllDeclaration
	ExportSpecifier

	// Expressions
	Identifier
	PrivateIdentifier
	Literal
	TemplateLiteral
	TemplateElement
	TaggedTemplateExpression
	ThisExpression
	Super
	ArrayExpression
	ObjectExpression
	Property
	FunctionExpression
	ArrowFunctionExpression
	ClassExpression
	SequenceExpression
	UnaryExpression
	UpdateExpression
	BinaryExpression
	LogicalExpression
	AssignmentExpression
	ConditionalExpression
	CallExpression
	NewExpression
	MemberExpression
	ChainExpression
	ImportExpression
	MetaProperty
	AwaitExpression
	YieldExpression
	SpreadElement

	// Patterns
	ObjectPattern
	ArrayPattern
	RestElement
	AssignmentPattern

	// JSX
	JSXElement
	JSXFragment
	JSXOpeningElement
	JSXClosingElement
	JSXAttribute
	JSXSpreadAttribute
	JSXExpressionContainer
	JSXText
	JSXIdentifier
	JSXMemberExpression
	JSXNamespacedName

	// TypeScript
	TSTypeAliasDeclaration
	TSInterfaceDeclaration
	TSEnumDeclaration
	TSEnumMember
	TSModuleDeclaration
	TSTypeAnnotation
	TSUnionType
	TSIntersectionType
	TSConditionalType
	TSArrayType
	TSImportType
	TSTupleType
	TSTypeLiteral
	TSTypeReference
	TSTypeOperator
	TSFunctionType
	TSLiteralType
	TSAsExpression
	TSSatisfiesExpression
	TSNonNullExpression

	kindCount
)

var kindNames = [...]string{
	Unknown:                  "Unknown",
	Program:                  "Program",
	ExpressionStatement:      "ExpressionStatement",
	BlockStatement:           "BlockStatement",
	EmptyStatement:           "EmptyStatement",
	DebuggerStatement:        "DebuggerStatement",
	WithStatement:            "WithStatement",
	ReturnStatement:          "ReturnStatement",
	LabeledStatement:         "LabeledStatement",
	BreakStatement:           "BreakStatement",
	ContinueStatement:        "ContinueStatement",
	IfStatement:              "IfStatement",
	SwitchStatement:          "SwitchStatement",
	SwitchCase:               "SwitchCase",
	ThrowStatement:           "ThrowStatement",
	TryStatement:             "TryStatement",
	CatchClause:              "CatchClause",
	WhileStatement:           "WhileStatement",
	DoWhileStatement:         "DoWhileStatement",
	ForStatement:             "ForStatement",
	ForInStatement:           "ForInStatement",
	ForOfStatement:           "ForOfStatement",
	FunctionDeclaration:      "FunctionDeclaration",
	VariableDeclaration:      "VariableDeclaration",
	VariableDeclarator:       "VariableDeclarator",
	ClassDeclaration:         "ClassDeclaration",
	ClassBody:                "ClassBody",
	MethodDefinition:         "MethodDefinition",
	PropertyDefinition:       "PropertyDefinition",
	StaticBlock:              "StaticBlock",
	ImportDeclaration:        "ImportDeclaration",
	ImportSpecifier:          "ImportSpecifier",
	ExportNamedDeclaration:   "ExportNamedDeclaration",
	ExportDefaultDeclaration: "ExportDefaultDeclaration",
	ExportAllDeclaration:     "ExportAllDeclaration",
	ExportSpecifier:          "ExportSpecifier",
	Identifier:               "Identifier",
	PrivateIdentifier:        "PrivateIdentifier",
	Literal:                  "Literal",
	TemplateLiteral:          "TemplateLiteral",
	TemplateElement:          "TemplateElement",
	TaggedTemplateExpression: "TaggedTemplateExpression",
	ThisExpression:           "ThisExpression",
	Super:                    "Super",
	ArrayExpression:          "ArrayExpression",
	ObjectExpression:         "ObjectExpression",
	Property:                 "Property",
	FunctionExpression:       "FunctionExpression",
	ArrowFunctionExpression:  "ArrowFunctionExpression",
	ClassExpression:          "ClassExpression",
	SequenceExpression:       "SequenceExpression",
	UnaryExpression:          "UnaryExpression",
	UpdateExpression:         "UpdateExpression",
	BinaryExpression:         "BinaryExpression",
	LogicalExpression:        "LogicalExpression",
	AssignmentExpression:     "AssignmentExpression",
	ConditionalExpression:    "ConditionalExpression",
	CallExpression:           "CallExpression",
	NewExpression:            "NewExpression",
	MemberExpression:         "MemberExpression",
	ChainExpression:          "ChainExpression",
	ImportExpression:         "ImportExpression",
	MetaProperty:             "MetaProperty",
	AwaitExpression:          "AwaitExpression",
	YieldExpression:          "YieldExpression",
	SpreadElement:            "SpreadElement",
	ObjectPattern:            "ObjectPattern",
	ArrayPattern:             "ArrayPattern",
	RestElement:              "RestElement",
	AssignmentPattern:        "AssignmentPattern",
	JSXElement:               "JSXElement",
	JSXFragment:              "JSXFragment",
	JSXOpeningElement:        "JSXOpeningElement",
	JSXClosingElement:        "JSXClosingElement",
	JSXAttribute:             "JSXAttribute",
	JSXSpreadAttribute:       "JSXSpreadAttribute",
	JSXExpressionContainer:   "JSXExpressionContainer",
	JSXText:                  "JSXText",
	JSXIdentifier:            "JSXIdentifier",
	JSXMemberExpression:      "JSXMemberExpression",
	JSXNamespacedName:        "JSXNamespacedName",
	TSTypeAliasDeclaration:   "TSTypeAliasDeclaration",
	TSInterfaceDeclaration:   "TSInterfaceDeclaration",
	TSEnumDeclaration:        "TSEnumDeclaration",
	TSEnumMember:             "TSEnumMember",
	TSModuleDeclaration:      "TSModuleDeclaration",
	TSTypeAnnotation:         "TSTypeAnnotation",
	TSUnionType:              "TSUnionType",
	TSIntersectionType:       "TSIntersectionType",
	TSConditionalType:        "TSConditionalType",
	TSArrayType:              "TSArrayType",
	TSImportType:             "TSImportType",
	TSTupleType:              "TSTupleType",
	TSTypeLiteral:            "TSTypeLiteral",
	TSTypeReference:          "TSTypeReference",
	TSTypeOperator:           "TSTypeOperator",
	TSFunctionType:           "TSFunctionType",
	TSLiteralType:            "TSLiteralType",
	TSAsExpression:           "TSAsExpression",
	TSSatisfiesExpression:    "TSSatisfiesExpression",
	TSNonNullExpression:      "TSNonNullExpression",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k < kindCount
}

// IsTS reports whether the kind belongs to the TypeScript extension.
func (k Kind) IsTS() bool {
	return k >= TSTypeAliasDeclaration && k < kindCount
}

// IsJSX reports whether the kind belongs to the JSX extension.
func (k Kind) IsJSX() bool {
	return k >= JSXElement && k <= JSXNamespacedName
}

// ParseKind returns the kind with the given ESTree name.
func ParseKind(name string) (Kind, bool) {
	for k := Unknown; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return Unknown, false
}
