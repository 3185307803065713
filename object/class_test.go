package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietloop/serpent/errors"
)

func TestBindNativeClassConstructsInstanceShapedValue(t *testing.T) {
	methods := map[string]Value{
		"get": NewNativeFunction("get", Unbounded, func(args []Value) (Value, error) {
			return args[0].(*Instance).Attrs["v"], nil
		}),
	}
	class := BindNativeClass("Box", 1, func(self *Instance, args []Value) error {
		self.Attrs["v"] = args[0]
		return nil
	}, methods)

	require.NotNil(t, class.Construct)
	assert.Equal(t, "native_class", TypeNameOf(class))

	inst, err := class.Construct.Call([]Value{NewInt(7)})
	require.NoError(t, err)
	assert.Equal(t, "native_class", TypeNameOf(inst))

	instClass := inst.(*NativeClass)
	assert.Nil(t, instClass.Construct, "instances carry no constructor")

	bound, ok := instClass.GetAttr("get")
	require.True(t, ok)
	v, err := bound.(*NativeFunction).Call(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.(*Int).Value)
}

func TestBindNativeClassInstancesDoNotShareAttrs(t *testing.T) {
	methods := map[string]Value{
		"get": NewNativeFunction("get", Unbounded, func(args []Value) (Value, error) {
			return args[0].(*Instance).Attrs["v"], nil
		}),
	}
	class := BindNativeClass("Box", 1, func(self *Instance, args []Value) error {
		self.Attrs["v"] = args[0]
		return nil
	}, methods)

	a, err := class.Construct.Call([]Value{NewInt(1)})
	require.NoError(t, err)
	b, err := class.Construct.Call([]Value{NewInt(2)})
	require.NoError(t, err)

	getA, _ := a.(*NativeClass).GetAttr("get")
	getB, _ := b.(*NativeClass).GetAttr("get")
	va, err := getA.(*NativeFunction).Call(nil)
	require.NoError(t, err)
	vb, err := getB.(*NativeFunction).Call(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), va.(*Int).Value)
	assert.Equal(t, int64(2), vb.(*Int).Value)
}

func TestBindNativeClassInitErrorPropagates(t *testing.T) {
	class := BindNativeClass("Strict", 1, func(self *Instance, args []Value) error {
		return errors.Valuef("bad argument")
	}, map[string]Value{})

	_, err := class.Construct.Call([]Value{NewInt(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ValueError")
}
