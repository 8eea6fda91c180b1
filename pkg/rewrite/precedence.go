package rewrite

import "github.com/leapstack-labs/leapstyle/pkg/ast"

// Precedence ranks.
const (
	PrecUnknown        = -1
	PrecSequence       = 0
	PrecAssignment     = 1
	PrecConditional    = 3
	PrecLogicalOr      = 4
	PrecLogicalAnd     = 5
	PrecBitwiseOr      = 6
	PrecBitwiseXor     = 7
	PrecBitwiseAnd     = 8
	PrecEquality       = 9
	PrecRelational     = 10
	PrecShift          = 11
	PrecAdditive       = 12
	PrecMultiplicative = 13
	PrecExponent       = 15
	PrecUnary          = 16
	PrecUpdate         = 17
	PrecCall           = 18
	PrecNew            = 19
	PrecAtom           = 20
)

var binaryPrecedence = map[string]int{
	"|":          PrecBitwiseOr,
	"^":          PrecBitwiseXor,
	"&":          PrecBitwiseAnd,
	"==":         PrecEquality,
	"!=":         PrecEquality,
	"===":        PrecEquality,
	"!==":        PrecEquality,
	"<":          PrecRelational,
	"<=":         PrecRelational,
	">":          PrecRelational,
	">=":         PrecRelational,
	"in":         PrecRelational,
	"instanceof": PrecRelational,
	"<<":         PrecShift,
	">>":         PrecShift,
	">>>":        PrecShift,
	"+":          PrecAdditive,
	"-":          PrecAdditive,
	"*":          PrecMultiplicative,
	"/":          PrecMultiplicative,
	"%":          PrecMultiplicative,
	"**":         PrecExponent,
}

// Precedence returns the binding rank of a node kind. op is consulted for
// logical and binary expressions. Higher binds tighter. Kinds with no rank,
// including Unknown, return PrecUnknown so that callers keep parentheses.
func Precedence(kind ast.Kind, op string) int {
	switch kind {
	case ast.SequenceExpression:
		return PrecSequence

	case ast.AssignmentExpression, ast.ArrowFunctionExpression, ast.YieldExpression:
		return PrecAssignment

	case ast.ConditionalExpression, ast.TSConditionalType:
		return PrecConditional

	case ast.LogicalExpression:
		switch op {
		case "||", "??":
			return PrecLogicalOr
		case "&&":
			return PrecLogicalAnd
		}
		return binaryRank(op)

	case ast.BinaryExpression:
		return binaryRank(op)

	case ast.TSUnionType:
		return PrecBitwiseOr

	case ast.TSIntersectionType:
		return PrecBitwiseAnd

	case ast.UnaryExpression, ast.AwaitExpression:
		return PrecUnary

	case ast.UpdateExpression:
		return PrecUpdate

	case ast.CallExpression, ast.ChainExpression, ast.ImportExpression:
		return PrecCall

	case ast.NewExpression:
		return PrecNew

	case ast.TSArrayType, ast.TSImportType:
		return PrecAtom

	case ast.Unknown,
		ast.TSTypeAliasDeclaration, ast.TSInterfaceDeclaration, ast.TSEnumDeclaration,
		ast.TSEnumMember, ast.TSModuleDeclaration, ast.TSTypeAnnotation,
		ast.TSTupleType, ast.TSTypeLiteral, ast.TSTypeReference, ast.TSTypeOperator,
		ast.TSFunctionType, ast.TSLiteralType, ast.TSAsExpression,
		ast.TSSatisfiesExpression, ast.TSNonNullExpression:
		return PrecUnknown
	}

	if !kind.IsValid() || kind.IsTS() {
		return PrecUnknown
	}
	return PrecAtom
}

func binaryRank(op string) int {
	if p, ok := binaryPrecedence[op]; ok {
		return p
	}
	// unrecognised operators bind like unary ones
	return PrecUnary
}
