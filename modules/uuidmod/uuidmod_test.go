package uuidmod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietloop/serpent/object"
)

func TestV4ReturnsDistinctStrings(t *testing.T) {
	m := New()
	v4 := m["v4"].(*object.NativeFunction)

	a, err := v4.Call(nil)
	require.NoError(t, err)
	b, err := v4.Call(nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.(*object.Str).Value, b.(*object.Str).Value)
}

func TestUUIDClassConstructAndStringMethod(t *testing.T) {
	class := NewClassConstructor()
	assert.Equal(t, "native_class", object.TypeNameOf(class))

	inst, err := class.Construct.Call([]object.Value{object.NewStr("123e4567-e89b-12d3-a456-426614174000")})
	require.NoError(t, err)
	assert.Equal(t, "native_class", object.TypeNameOf(inst))

	method, ok := inst.(*object.NativeClass).GetAttr("string")
	require.True(t, ok)
	v, err := method.(*object.NativeFunction).Call(nil)
	require.NoError(t, err)
	assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", v.(*object.Str).Value)
}

func TestUUIDRejectsMalformedString(t *testing.T) {
	class := NewClassConstructor()
	_, err := class.Construct.Call([]object.Value{object.NewStr("not-a-uuid")})
	require.Error(t, err)
}
