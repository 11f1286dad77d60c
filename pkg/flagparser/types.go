package flagparser

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"strings"
)

// DataType is the semantic type of an argument or token.
type DataType int

const (
	Text DataType = iota
	Integer
	Decimal
	Boolean
)

// String returns the lowercase type name.
func (d DataType) String() string {
	switch d {
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	case Boolean:
		return "boolean"
	default:
		return "text"
	}
}

// Label returns the label used in typed syntax strings.
func (d DataType) Label() string {
	switch d {
	case Integer:
		return "Number"
	case Decimal:
		return "Decimal"
	case Boolean:
		return "State"
	default:
		return "Text"
	}
}

// ParseDataType parses a type name such as "int", "float", "str" or "bool".
func ParseDataType(s string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int", "integer", "number":
		return Integer, nil
	case "float", "decimal":
		return Decimal, nil
	case "str", "string", "text":
		return Text, nil
	case "bool", "boolean", "state":
		return Boolean, nil
	}
	return Text, fmt.Errorf("unknown data type %q", s)
}

// Infer guesses the type of a raw token. It never fails; tokens that are
// not an integer, floating point or boolean literal are Text.
func Infer(tok string) DataType {
	expr, err := parser.ParseExpr(tok)
	if err != nil {
		return Text
	}
	return literalType(expr)
}

func literalType(expr ast.Expr) DataType {
	switch e := expr.(type) {
	case *ast.ParenExpr:
		return literalType(e.X)
	case *ast.UnaryExpr:
		if e.Op != token.ADD && e.Op != token.SUB {
			return Text
		}
		if t := literalType(e.X); t == Integer || t == Decimal {
			return t
		}
		return Text
	case *ast.Ident:
		if e.Name == "true" || e.Name == "false" {
			return Boolean
		}
		return Text
	case *ast.BasicLit:
		if e.Kind != token.INT && e.Kind != token.FLOAT {
			return Text
		}
		// MakeFromLiteral reports Unknown for malformed literals.
		switch constant.MakeFromLiteral(e.Value, e.Kind, 0).Kind() {
		case constant.Int:
			return Integer
		case constant.Float:
			return Decimal
		}
	}
	return Text
}

// Compatible reports whether a token of the observed type may fill a slot
// of the declared type.
//
// Integers fill decimal slots unless strictFloat is set. Decimals fill
// integer slots only when strictInt is unset. Numbers always fill text
// slots, but not the other way round.
func Compatible(observed, declared DataType, strictInt, strictFloat bool) bool {
	switch {
	case declared == Decimal && observed == Integer:
		return !strictFloat
	case declared == Integer && observed == Decimal:
		return !strictInt
	case observed == declared:
		return true
	case declared == Text:
		return observed == Integer || observed == Decimal
	}
	return false
}
