// Package mathmod is a native module binding of Go's math package: a
// flat dict of constants and native functions registered under "math".
package mathmod

import (
	"math"

	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/object"
)

// New builds the flat dict registered as the "math" native module.
func New() map[string]object.Value {
	return map[string]object.Value{
		"pi":    object.NewFloat(math.Pi),
		"e":     object.NewFloat(math.E),
		"abs":   object.NewNativeFunction("math.abs", 1, mathAbs),
		"sqrt":  object.NewNativeFunction("math.sqrt", 1, unary1("math.sqrt", math.Sqrt)),
		"floor": object.NewNativeFunction("math.floor", 1, unary1("math.floor", math.Floor)),
		"ceil":  object.NewNativeFunction("math.ceil", 1, unary1("math.ceil", math.Ceil)),
		"max":   object.NewNativeFunction("math.max", 2, binary2("math.max", math.Max)),
		"min":   object.NewNativeFunction("math.min", 2, binary2("math.min", math.Min)),
		"pow":   object.NewNativeFunction("math.pow", 2, binary2("math.pow", math.Pow)),
	}
}

func toFloat(name string, v object.Value) (float64, error) {
	switch n := v.(type) {
	case *object.Int:
		return float64(n.Value), nil
	case *object.Float:
		return n.Value, nil
	default:
		return 0, errors.Typef("%s: argument must be int or float, not %s", name, v.Type())
	}
}

func mathAbs(args []object.Value) (object.Value, error) {
	switch v := args[0].(type) {
	case *object.Int:
		if v.Value < 0 {
			return object.NewInt(-v.Value), nil
		}
		return v, nil
	case *object.Float:
		return object.NewFloat(math.Abs(v.Value)), nil
	default:
		return nil, errors.Typef("math.abs: argument must be int or float, not %s", v.Type())
	}
}

func unary1(name string, fn func(float64) float64) func([]object.Value) (object.Value, error) {
	return func(args []object.Value) (object.Value, error) {
		v, err := toFloat(name, args[0])
		if err != nil {
			return nil, err
		}
		return object.NewFloat(fn(v)), nil
	}
}

func binary2(name string, fn func(float64, float64) float64) func([]object.Value) (object.Value, error) {
	return func(args []object.Value) (object.Value, error) {
		a, err := toFloat(name, args[0])
		if err != nil {
			return nil, err
		}
		b, err := toFloat(name, args[1])
		if err != nil {
			return nil, err
		}
		return object.NewFloat(fn(a, b)), nil
	}
}
