package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietloop/serpent/object"
)

func TestSearchOverDictTree(t *testing.T) {
	d := object.NewDict()
	d.Set("name", object.NewStr("alice"))
	inner := object.NewDict()
	inner.Set("age", object.NewInt(30))
	d.Set("info", inner)

	m := New()
	search := m["search"].(*object.NativeFunction)

	v, err := search.Call([]object.Value{object.NewStr("info.age"), d})
	require.NoError(t, err)
	assert.Equal(t, int64(30), v.(*object.Int).Value)
}

func TestSearchOverList(t *testing.T) {
	list := object.NewList([]object.Value{object.NewInt(1), object.NewInt(2), object.NewInt(3)})
	m := New()
	search := m["search"].(*object.NativeFunction)

	v, err := search.Call([]object.Value{object.NewStr("[1]"), list})
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.(*object.Int).Value)
}

func TestSearchInvalidExpressionIsValueError(t *testing.T) {
	m := New()
	search := m["search"].(*object.NativeFunction)
	_, err := search.Call([]object.Value{object.NewStr("("), object.NewDict()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ValueError")
}
