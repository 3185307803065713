package vm

import (
	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/object"
	"github.com/quietloop/serpent/op"
)

func asFloat(v object.Value) (float64, bool) {
	switch n := v.(type) {
	case *object.Int:
		return float64(n.Value), true
	case *object.Float:
		return n.Value, true
	}
	return 0, false
}

// arith implements Add/Sub/Mul/Div's coercion rules:
// Int op Int stays Int (except Div, always true division to Float);
// any Int/Float mix promotes to Float; Add additionally concatenates two
// Str operands.
func arith(code op.Code, left, right object.Value) (object.Value, error) {
	if code == op.Add {
		if l, ok := left.(*object.Str); ok {
			if r, ok := right.(*object.Str); ok {
				return object.NewStr(l.Value + r.Value), nil
			}
		}
	}

	li, lIsInt := left.(*object.Int)
	ri, rIsInt := right.(*object.Int)
	if lIsInt && rIsInt && code != op.Div {
		switch code {
		case op.Add:
			return object.NewInt(li.Value + ri.Value), nil
		case op.Sub:
			return object.NewInt(li.Value - ri.Value), nil
		case op.Mul:
			return object.NewInt(li.Value * ri.Value), nil
		}
	}

	lf, lOk := asFloat(left)
	rf, rOk := asFloat(right)
	if !lOk || !rOk {
		return nil, errors.Typef("unsupported operand type(s) for %s: %s and %s", arithSymbol(code), left.Type(), right.Type())
	}
	switch code {
	case op.Add:
		return object.NewFloat(lf + rf), nil
	case op.Sub:
		return object.NewFloat(lf - rf), nil
	case op.Mul:
		return object.NewFloat(lf * rf), nil
	case op.Div:
		if rf == 0 {
			return nil, errors.Valuef("division by zero")
		}
		return object.NewFloat(lf / rf), nil
	}
	return nil, errors.Runtimef("unreachable arithmetic opcode %s", code)
}

func arithSymbol(code op.Code) string {
	switch code {
	case op.Add:
		return "+"
	case op.Sub:
		return "-"
	case op.Mul:
		return "*"
	case op.Div:
		return "/"
	default:
		return code.String()
	}
}

func unary(code op.Code, operand object.Value) (object.Value, error) {
	switch v := operand.(type) {
	case *object.Int:
		if code == op.UnaryNeg {
			return object.NewInt(-v.Value), nil
		}
		return v, nil
	case *object.Float:
		if code == op.UnaryNeg {
			return object.NewFloat(-v.Value), nil
		}
		return v, nil
	}
	return nil, errors.Typef("bad operand type for unary %s: %s", arithSymbol(code), operand.Type())
}

func compareSymbol(code op.Code) string {
	switch code {
	case op.Lt:
		return "<"
	case op.Le:
		return "<="
	case op.Gt:
		return ">"
	case op.Ge:
		return ">="
	default:
		return code.String()
	}
}

// compare implements Lt/Le/Gt/Ge over the Comparable variants: Int,
// Float (mixed Int/Float coerces through Compare's own rules), and Str.
func compare(code op.Code, left, right object.Value) (object.Value, error) {
	cmp, ok := left.(object.Comparable)
	if !ok {
		return nil, errors.Typef("'%s' not supported between instances of %s and %s", compareSymbol(code), left.Type(), right.Type())
	}
	n, err := cmp.Compare(right)
	if err != nil {
		return nil, err
	}
	switch code {
	case op.Lt:
		return object.NewBool(n < 0), nil
	case op.Le:
		return object.NewBool(n <= 0), nil
	case op.Gt:
		return object.NewBool(n > 0), nil
	case op.Ge:
		return object.NewBool(n >= 0), nil
	}
	return nil, errors.Runtimef("unreachable comparison opcode %s", code)
}

// moduleAttrs exposes a Module or NativeModule's attribute map for
// ImportStar; both back onto an exported Attrs field.
func moduleAttrs(v object.Value) map[string]object.Value {
	switch m := v.(type) {
	case *object.Module:
		return m.Attrs
	case *object.NativeModule:
		return m.Attrs
	default:
		return nil
	}
}
