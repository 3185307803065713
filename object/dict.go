package object

import (
	"strconv"
	"strings"

	"github.com/quietloop/serpent/errors"
)

// Dict is a shared, mutable, insertion-ordered mapping from string keys to
// Values. Insertion order is preserved across StoreIndex
// and iteration/printing.
type Dict struct {
	keys   []string
	values map[string]Value
}

func NewDict() *Dict {
	return &Dict{values: map[string]Value{}}
}

func (d *Dict) Type() Type { return DictType }

func (d *Dict) Inspect() string {
	parts := make([]string, len(d.keys))
	for i, k := range d.keys {
		parts[i] = strconv.Quote(k) + ": " + d.values[k].Inspect()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (d *Dict) Truthy() bool { return len(d.keys) > 0 }

func (d *Dict) Equals(other Value) bool {
	o, ok := other.(*Dict)
	if !ok || len(d.keys) != len(o.keys) {
		return false
	}
	for _, k := range d.keys {
		ov, ok := o.values[k]
		if !ok || !d.values[k].Equals(ov) {
			return false
		}
	}
	return true
}

// Keys returns the dict's keys in insertion order.
func (d *Dict) Keys() []string {
	return d.keys
}

// Get looks up a key without the GetIndex error-shaping, reporting whether
// the key is present.
func (d *Dict) Get(key string) (Value, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Set inserts or replaces a key, appending to the key order on first
// insertion.
func (d *Dict) Set(key string, v Value) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

func (d *Dict) GetIndex(key Value) (Value, error) {
	strKey, ok := key.(*Str)
	if !ok {
		return nil, errors.Typef("dict keys must be str, not %s", key.Type())
	}
	v, ok := d.values[strKey.Value]
	if !ok {
		return nil, errors.Keyf("%s", strKey.Inspect())
	}
	return v, nil
}

func (d *Dict) SetIndex(key, v Value) error {
	strKey, ok := key.(*Str)
	if !ok {
		return errors.Typef("dict keys must be str, not %s", key.Type())
	}
	d.Set(strKey.Value, v)
	return nil
}
