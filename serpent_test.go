package serpent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietloop/serpent/object"
)

func TestExecuteSimpleExpression(t *testing.T) {
	v, err := Execute("1 + 2")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.(*object.Int).Value)
}

func TestExecuteEmptySourceReturnsNone(t *testing.T) {
	v, err := Execute("")
	require.NoError(t, err)
	assert.Equal(t, object.NilValue, v)
}

func TestExecuteSyntaxErrorPropagates(t *testing.T) {
	_, err := Execute("def :\n  pass")
	require.Error(t, err)
}

func TestWithNativeExposesToTopLevel(t *testing.T) {
	v, err := Execute("double(21)", WithNative(NativeFunc{
		Name:  "double",
		Arity: 1,
		Fn: func(args []object.Value) (object.Value, error) {
			n := args[0].(*object.Int)
			return object.NewInt(n.Value * 2), nil
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.(*object.Int).Value)
}

func TestWithNativeModuleResolvesWithoutFilesystem(t *testing.T) {
	v, err := Execute("import m\nm.answer", WithNativeModule(NativeModule{
		Name:  "m",
		Attrs: map[string]object.Value{"answer": object.NewInt(7)},
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.(*object.Int).Value)
}

func TestWithNativeClassConstructsAndBindsMethods(t *testing.T) {
	v, err := Execute("Counter(5).value()", WithNativeClass(NativeClass{
		Name:  "Counter",
		Arity: 1,
		Construct: func(inst *object.Instance, args []object.Value) error {
			inst.Attrs["n"] = args[0]
			return nil
		},
		Methods: map[string]object.Value{
			"value": object.NewNativeFunction("value", object.Unbounded, func(args []object.Value) (object.Value, error) {
				self := args[0].(*object.Instance)
				return self.Attrs["n"], nil
			}),
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.(*object.Int).Value)
}

func TestNativeClassValuesReportNativeClassType(t *testing.T) {
	counter := NativeClass{
		Name:  "Counter",
		Arity: 1,
		Construct: func(inst *object.Instance, args []object.Value) error {
			inst.Attrs["n"] = args[0]
			return nil
		},
		Methods: map[string]object.Value{},
	}

	v, err := Execute("type(Counter)", WithNativeClass(counter))
	require.NoError(t, err)
	assert.Equal(t, "native_class", v.(*object.TypeValue).Name)

	v, err = Execute("type(Counter(5))", WithNativeClass(counter))
	require.NoError(t, err)
	assert.Equal(t, "native_class", v.(*object.TypeValue).Name)

	_, err = Execute("Counter(5)()", WithNativeClass(counter))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TypeError")
}

func TestDefaultUUIDClassGoesThroughNativeClassPath(t *testing.T) {
	v, err := Execute("import uuid\nu = uuid.UUID('123e4567-e89b-12d3-a456-426614174000')\nu.string()", WithDefaultModules())
	require.NoError(t, err)
	assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", v.(*object.Str).Value)

	v, err = Execute("import uuid\ntype(uuid.UUID('123e4567-e89b-12d3-a456-426614174000'))", WithDefaultModules())
	require.NoError(t, err)
	assert.Equal(t, "native_class", v.(*object.TypeValue).Name)
}

func TestWithDefaultModulesRegistersMathAndUUID(t *testing.T) {
	v, err := Execute("import math\nmath.sqrt(9.0)", WithDefaultModules())
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.(*object.Float).Value)

	v, err = Execute("import uuid\ntype(uuid.v4())", WithDefaultModules())
	require.NoError(t, err)
	assert.Equal(t, "str", v.(*object.TypeValue).Name)
}

func TestDuplicateNativeRegistrationCollectsAllConflicts(t *testing.T) {
	dup := NativeFunc{Name: "f", Arity: 0, Fn: func(args []object.Value) (object.Value, error) {
		return object.NilValue, nil
	}}
	dupMod := NativeModule{Name: "m", Attrs: map[string]object.Value{}}
	_, err := Execute("f()", WithNative(dup), WithNative(dup), WithNativeModule(dupMod), WithNativeModule(dupMod))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"f"`)
	assert.Contains(t, err.Error(), `"m"`)
}
