package object

import (
	"math"
	"strconv"

	"github.com/quietloop/serpent/errors"
)

// Int wraps a 64-bit signed integer.
type Int struct {
	Value int64
}

func NewInt(v int64) *Int { return &Int{Value: v} }

func (i *Int) Type() Type { return IntType }
func (i *Int) Inspect() string { return strconv.FormatInt(i.Value, 10) }
func (i *Int) Truthy() bool { return i.Value != 0 }
func (i *Int) HashKey() HashKey { return HashKey{Type: IntType, Val: i.Value} }

func (i *Int) Equals(other Value) bool {
	switch o := other.(type) {
	case *Int:
		return i.Value == o.Value
	case *Float:
		return float64(i.Value) == o.Value
	}
	return false
}

func (i *Int) Compare(other Value) (int, error) {
	switch o := other.(type) {
	case *Int:
		return cmpInt(i.Value, o.Value), nil
	case *Float:
		return cmpFloat(float64(i.Value), o.Value), nil
	}
	return 0, errors.Typef("unable to compare int and %s", other.Type())
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Float wraps a 64-bit IEEE-754 float.
type Float struct {
	Value float64
}

func NewFloat(v float64) *Float { return &Float{Value: v} }

func (f *Float) Type() Type { return FloatType }
func (f *Float) Inspect() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }
func (f *Float) Truthy() bool { return f.Value != 0 }

// HashKey hashes by raw bit pattern, so NaN hashes consistently with itself
// even though NaN != NaN under Equals; this is intentional.
func (f *Float) HashKey() HashKey {
	return HashKey{Type: FloatType, Val: math.Float64bits(f.Value)}
}

func (f *Float) Equals(other Value) bool {
	switch o := other.(type) {
	case *Float:
		return f.Value == o.Value
	case *Int:
		return f.Value == float64(o.Value)
	}
	return false
}

func (f *Float) Compare(other Value) (int, error) {
	switch o := other.(type) {
	case *Float:
		return cmpFloat(f.Value, o.Value), nil
	case *Int:
		return cmpFloat(f.Value, float64(o.Value)), nil
	}
	return 0, errors.Typef("unable to compare float and %s", other.Type())
}

// Bool wraps a boolean.
type Bool struct {
	Value bool
}

var (
	True  = &Bool{Value: true}
	False = &Bool{Value: false}
)

func NewBool(v bool) *Bool {
	if v {
		return True
	}
	return False
}

func (b *Bool) Type() Type { return BoolType }
func (b *Bool) Inspect() string { return strconv.FormatBool(b.Value) }
func (b *Bool) Truthy() bool { return b.Value }
func (b *Bool) HashKey() HashKey {
	return HashKey{Type: BoolType, Val: b.Value}
}

func (b *Bool) Equals(other Value) bool {
	o, ok := other.(*Bool)
	return ok && b.Value == o.Value
}

// Str wraps a UTF-8 string.
type Str struct {
	Value string
}

func NewStr(v string) *Str { return &Str{Value: v} }

func (s *Str) Type() Type { return StrType }
func (s *Str) Inspect() string { return strconv.Quote(s.Value) }
func (s *Str) Truthy() bool { return len(s.Value) > 0 }
func (s *Str) HashKey() HashKey {
	return HashKey{Type: StrType, Val: s.Value}
}

func (s *Str) Equals(other Value) bool {
	o, ok := other.(*Str)
	return ok && s.Value == o.Value
}

func (s *Str) Compare(other Value) (int, error) {
	o, ok := other.(*Str)
	if !ok {
		return 0, errors.Typef("unable to compare str and %s", other.Type())
	}
	switch {
	case s.Value < o.Value:
		return -1, nil
	case s.Value > o.Value:
		return 1, nil
	default:
		return 0, nil
	}
}

// Nil is the single value of the None/nil variant.
type Nil struct{}

var NilValue = &Nil{}

func (n *Nil) Type() Type { return NilKind }
func (n *Nil) Inspect() string { return "None" }
func (n *Nil) Truthy() bool { return false }
func (n *Nil) HashKey() HashKey { return HashKey{Type: NilKind, Val: nil} }
func (n *Nil) Equals(other Value) bool {
	_, ok := other.(*Nil)
	return ok
}
