package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNegativeIndex(t *testing.T) {
	l := NewList([]Value{NewInt(1), NewInt(2), NewInt(3)})

	v, err := l.GetIndex(NewInt(-1))
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.(*Int).Value)

	_, err = l.GetIndex(NewInt(3))
	assert.Error(t, err)
	_, err = l.GetIndex(NewInt(-4))
	assert.Error(t, err)
}

func TestListSharedMutation(t *testing.T) {
	l := NewList([]Value{NewInt(1)})
	alias := l
	require.NoError(t, l.SetIndex(NewInt(0), NewInt(99)))
	assert.Equal(t, int64(99), alias.Items[0].(*Int).Value)
}

func TestListEquals(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewInt(2)})
	b := NewList([]Value{NewInt(1), NewInt(2)})
	c := NewList([]Value{NewInt(1), NewInt(3)})
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestDictInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("b", NewInt(2))
	d.Set("a", NewInt(1))
	d.Set("b", NewInt(20))
	assert.Equal(t, []string{"b", "a"}, d.Keys())

	v, err := d.GetIndex(NewStr("b"))
	require.NoError(t, err)
	assert.Equal(t, int64(20), v.(*Int).Value)
}

func TestDictMissingKeyIsKeyError(t *testing.T) {
	d := NewDict()
	_, err := d.GetIndex(NewStr("missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KeyError")
}

func TestDictInspectRoundTripsQuoting(t *testing.T) {
	d := NewDict()
	d.Set("a", NewInt(1))
	assert.Equal(t, `{"a": 1}`, d.Inspect())
}

func TestTupleImmutableNoSetIndex(t *testing.T) {
	tup := NewTuple([]Value{NewInt(1), NewInt(2)})
	_, ok := interface{}(tup).(IndexSettable)
	assert.False(t, ok)
}

func TestTupleNegativeIndex(t *testing.T) {
	tup := NewTuple([]Value{NewInt(1), NewInt(2), NewInt(3)})
	v, err := tup.GetIndex(NewInt(-2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.(*Int).Value)
}

func TestSetDedupesAndPreservesOrder(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Add(NewInt(1)))
	require.NoError(t, s.Add(NewInt(2)))
	require.NoError(t, s.Add(NewInt(1)))
	assert.Equal(t, 2, s.Len())
	items := s.Items()
	assert.Equal(t, int64(1), items[0].(*Int).Value)
	assert.Equal(t, int64(2), items[1].(*Int).Value)
}

func TestSetRejectsUnhashable(t *testing.T) {
	s := NewSet()
	err := s.Add(NewList(nil))
	assert.Error(t, err)
}
