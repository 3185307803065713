package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietloop/serpent/object"
)

func TestBuiltinTypeNames(t *testing.T) {
	all := All()
	typeFn := all["type"].(*object.NativeFunction)

	cases := []struct {
		v    object.Value
		name string
	}{
		{object.NewInt(1), "int"},
		{object.NewStr("s"), "str"},
		{object.NewList(nil), "list"},
	}
	for _, tc := range cases {
		v, err := typeFn.Call([]object.Value{tc.v})
		require.NoError(t, err)
		assert.Equal(t, tc.name, v.(*object.TypeValue).Name)
	}
}

func TestBuiltinRangeOneArg(t *testing.T) {
	all := All()
	rangeFn := all["range"].(*object.NativeFunction)

	v, err := rangeFn.Call([]object.Value{object.NewInt(3)})
	require.NoError(t, err)
	list := v.(*object.List)
	require.Equal(t, 3, list.Len())
	assert.Equal(t, int64(0), list.Items[0].(*object.Int).Value)
	assert.Equal(t, int64(2), list.Items[2].(*object.Int).Value)
}

func TestBuiltinRangeThreeArgsNegativeStep(t *testing.T) {
	all := All()
	rangeFn := all["range"].(*object.NativeFunction)

	v, err := rangeFn.Call([]object.Value{object.NewInt(10), object.NewInt(0), object.NewInt(-2)})
	require.NoError(t, err)
	list := v.(*object.List)
	want := []int64{10, 8, 6, 4, 2}
	require.Equal(t, len(want), list.Len())
	for i, w := range want {
		assert.Equal(t, w, list.Items[i].(*object.Int).Value)
	}
}

func TestBuiltinRangeStepZeroIsValueError(t *testing.T) {
	all := All()
	rangeFn := all["range"].(*object.NativeFunction)
	_, err := rangeFn.Call([]object.Value{object.NewInt(0), object.NewInt(10), object.NewInt(0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ValueError")
}

func TestBuiltinSetReturnsEmptySet(t *testing.T) {
	all := All()
	setFn := all["set"].(*object.NativeFunction)
	v, err := setFn.Call(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, v.(*object.Set).Len())
}

func TestAllReturnsIndependentMaps(t *testing.T) {
	a := All()
	b := All()
	a["print"] = nil
	assert.NotNil(t, b["print"])
}
