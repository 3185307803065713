package strmod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietloop/serpent/object"
)

func call(t *testing.T, m map[string]object.Value, name string, args ...object.Value) object.Value {
	t.Helper()
	fn := m[name].(*object.NativeFunction)
	v, err := fn.Call(args)
	require.NoError(t, err)
	return v
}

func TestUpperLowerTrim(t *testing.T) {
	m := New()
	assert.Equal(t, "HI", call(t, m, "upper", object.NewStr("hi")).(*object.Str).Value)
	assert.Equal(t, "hi", call(t, m, "lower", object.NewStr("HI")).(*object.Str).Value)
	assert.Equal(t, "hi", call(t, m, "trim_space", object.NewStr("  hi  ")).(*object.Str).Value)
}

func TestSplitAndJoin(t *testing.T) {
	m := New()
	parts := call(t, m, "split", object.NewStr("a,b,c"), object.NewStr(","))
	list := parts.(*object.List)
	require.Equal(t, 3, list.Len())

	joined := call(t, m, "join", list, object.NewStr("-"))
	assert.Equal(t, "a-b-c", joined.(*object.Str).Value)
}

func TestContains(t *testing.T) {
	m := New()
	v := call(t, m, "contains", object.NewStr("hello"), object.NewStr("ell"))
	assert.True(t, v.(*object.Bool).Value)
}

func TestJoinRejectsNonStrList(t *testing.T) {
	m := New()
	fn := m["join"].(*object.NativeFunction)
	_, err := fn.Call([]object.Value{object.NewList([]object.Value{object.NewInt(1)}), object.NewStr(",")})
	require.Error(t, err)
}
