package object

import (
	"strings"

	"github.com/quietloop/serpent/errors"
)

// Tuple is an immutable ordered sequence of Values. It is value-shared
// (a reference to the same backing array may be aliased) but its elements
// can never be replaced: StoreIndex is not defined for Tuple.
type Tuple struct {
	Items []Value
}

func NewTuple(items []Value) *Tuple {
	return &Tuple{Items: items}
}

func (t *Tuple) Type() Type { return TupleType }

func (t *Tuple) Inspect() string {
	parts := make([]string, len(t.Items))
	for i, v := range t.Items {
		parts[i] = v.Inspect()
	}
	suffix := ""
	if len(parts) == 1 {
		suffix = ","
	}
	return "(" + strings.Join(parts, ", ") + suffix + ")"
}

func (t *Tuple) Truthy() bool { return len(t.Items) > 0 }

func (t *Tuple) Equals(other Value) bool {
	o, ok := other.(*Tuple)
	if !ok || len(t.Items) != len(o.Items) {
		return false
	}
	for i, v := range t.Items {
		if !v.Equals(o.Items[i]) {
			return false
		}
	}
	return true
}

func (t *Tuple) Len() int { return len(t.Items) }
func (t *Tuple) At(i int) Value { return t.Items[i] }

func (t *Tuple) GetIndex(key Value) (Value, error) {
	idxObj, ok := key.(*Int)
	if !ok {
		return nil, errors.Typef("tuple indices must be int, not %s", key.Type())
	}
	idx, err := normalizeIndex(int(idxObj.Value), len(t.Items))
	if err != nil {
		return nil, err
	}
	return t.Items[idx], nil
}
