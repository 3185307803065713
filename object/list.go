package object

import (
	"strings"

	"github.com/quietloop/serpent/errors"
)

// List is a shared, mutable, ordered sequence of Values. Two bindings to
// the same List observe each other's mutations.
type List struct {
	Items []Value
}

func NewList(items []Value) *List {
	return &List{Items: items}
}

func (l *List) Type() Type { return ListType }

func (l *List) Inspect() string {
	parts := make([]string, len(l.Items))
	for i, v := range l.Items {
		parts[i] = v.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) Truthy() bool { return len(l.Items) > 0 }

func (l *List) Equals(other Value) bool {
	o, ok := other.(*List)
	if !ok || len(l.Items) != len(o.Items) {
		return false
	}
	for i, v := range l.Items {
		if !v.Equals(o.Items[i]) {
			return false
		}
	}
	return true
}

func (l *List) Len() int { return len(l.Items) }
func (l *List) At(i int) Value { return l.Items[i] }

// normalizeIndex resolves a negative index relative to length; an index
// that is still out of range afterwards is an IndexError.
func normalizeIndex(i, length int) (int, error) {
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, errors.Indexf("index out of range")
	}
	return i, nil
}

func (l *List) GetIndex(key Value) (Value, error) {
	idxObj, ok := key.(*Int)
	if !ok {
		return nil, errors.Typef("list indices must be int, not %s", key.Type())
	}
	idx, err := normalizeIndex(int(idxObj.Value), len(l.Items))
	if err != nil {
		return nil, err
	}
	return l.Items[idx], nil
}

func (l *List) SetIndex(key, v Value) error {
	idxObj, ok := key.(*Int)
	if !ok {
		return errors.Typef("list indices must be int, not %s", key.Type())
	}
	idx, err := normalizeIndex(int(idxObj.Value), len(l.Items))
	if err != nil {
		return err
	}
	l.Items[idx] = v
	return nil
}
