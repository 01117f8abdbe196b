package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/alexhholmes/wiregen/internal/schema"
)

// ParseLength parses a list length.
//
//	"", "slot"   → count read from the list's length slot
//	"remaining"  → rest of the input
//	"8"          → constant
//	"(w*h)/8"    → expression over earlier fields, with + - * /
func ParseLength(s string) (schema.Length, error) {
	switch s = strings.TrimSpace(s); s {
	case "", "slot":
		return schema.SlotLength{}, nil
	case "remaining":
		return schema.RemainingLength{}, nil
	}

	expr, err := parser.ParseExpr(s)
	if err != nil {
		return nil, fmt.Errorf("invalid length %q: %w", s, err)
	}
	l, err := lengthFromExpr(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid length %q: %w", s, err)
	}
	return l, nil
}

func lengthFromExpr(expr ast.Expr) (schema.Length, error) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.INT {
			return nil, fmt.Errorf("%s is not an integer", e.Value)
		}
		n, err := strconv.ParseInt(e.Value, 0, 32)
		if err != nil {
			return nil, err
		}
		return schema.ConstLength{N: int(n)}, nil

	case *ast.Ident:
		return schema.FieldLength{Name: e.Name}, nil

	case *ast.ParenExpr:
		return lengthFromExpr(e.X)

	case *ast.BinaryExpr:
		var op byte
		switch e.Op {
		case token.ADD:
			op = '+'
		case token.SUB:
			op = '-'
		case token.MUL:
			op = '*'
		case token.QUO:
			op = '/'
		default:
			return nil, fmt.Errorf("unsupported operator %s", e.Op)
		}
		left, err := lengthFromExpr(e.X)
		if err != nil {
			return nil, err
		}
		right, err := lengthFromExpr(e.Y)
		if err != nil {
			return nil, err
		}
		if c, ok := right.(schema.ConstLength); ok && op == '/' && c.N == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return schema.BinaryLength{Op: op, Left: left, Right: right}, nil
	}
	return nil, fmt.Errorf("unsupported expression %T", expr)
}

// lengthFields returns the field names a length refers to
func lengthFields(l schema.Length) []string {
	switch l := l.(type) {
	case schema.FieldLength:
		return []string{l.Name}
	case schema.BinaryLength:
		return append(lengthFields(l.Left), lengthFields(l.Right)...)
	}
	return nil
}
