package object

import (
	"strings"

	"github.com/quietloop/serpent/errors"
)

// Set is a shared, mutable, unordered collection of hashable Values. Set
// iteration order is unspecified but stable within a process;
// this implementation preserves insertion order, which happens to satisfy
// that requirement without needing to define one.
type Set struct {
	keys   []HashKey
	lookup map[HashKey]Value
}

func NewSet() *Set {
	return &Set{lookup: map[HashKey]Value{}}
}

func (s *Set) Type() Type { return SetType }

func (s *Set) Inspect() string {
	if len(s.keys) == 0 {
		return "set()"
	}
	parts := make([]string, len(s.keys))
	for i, k := range s.keys {
		parts[i] = s.lookup[k].Inspect()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s *Set) Truthy() bool { return len(s.keys) > 0 }

func (s *Set) Equals(other Value) bool {
	o, ok := other.(*Set)
	if !ok || len(s.keys) != len(o.keys) {
		return false
	}
	for _, k := range s.keys {
		if _, ok := o.lookup[k]; !ok {
			return false
		}
	}
	return true
}

// Add inserts v into the set. v must be Hashable; Add rejects a
// non-hashable variant with a TypeError.
func (s *Set) Add(v Value) error {
	h, ok := v.(Hashable)
	if !ok {
		return errors.Typef("unhashable type: %s", v.Type())
	}
	key := h.HashKey()
	if _, exists := s.lookup[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.lookup[key] = v
	return nil
}

func (s *Set) Len() int { return len(s.keys) }

// Items returns the set's members in insertion order.
func (s *Set) Items() []Value {
	out := make([]Value, len(s.keys))
	for i, k := range s.keys {
		out[i] = s.lookup[k]
	}
	return out
}
