package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntCompare(t *testing.T) {
	one := NewInt(1)
	twoFloat := NewFloat(2.0)
	three := NewInt(3)

	tests := []struct {
		first, second Value
		expected      int
	}{
		{one, twoFloat, -1},
		{twoFloat, one, 1},
		{one, one, 0},
		{twoFloat, three, -1},
	}
	for _, tc := range tests {
		n, err := tc.first.(Comparable).Compare(tc.second)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, n)
	}
}

func TestIntFloatEquals(t *testing.T) {
	assert.True(t, NewInt(2).Equals(NewFloat(2.0)))
	assert.True(t, NewFloat(2.0).Equals(NewInt(2)))
	assert.False(t, NewInt(2).Equals(NewInt(3)))
	assert.False(t, NewInt(2).Equals(NewStr("2")))
}

func TestIntTruthy(t *testing.T) {
	assert.False(t, NewInt(0).Truthy())
	assert.True(t, NewInt(1).Truthy())
	assert.True(t, NewInt(-1).Truthy())
}

func TestFloatHashKeyStable(t *testing.T) {
	a := NewFloat(1.5)
	b := NewFloat(1.5)
	assert.Equal(t, a.HashKey(), b.HashKey())
}

func TestStrCompareAndEquals(t *testing.T) {
	a, b := NewStr("apple"), NewStr("banana")
	n, err := a.Compare(b)
	require.NoError(t, err)
	assert.Equal(t, -1, n)
	assert.True(t, NewStr("x").Equals(NewStr("x")))
	assert.False(t, NewStr("x").Equals(NewInt(1)))
}

func TestBoolSingletons(t *testing.T) {
	assert.Same(t, True, NewBool(true))
	assert.Same(t, False, NewBool(false))
}

func TestNilTruthyAndEquals(t *testing.T) {
	assert.False(t, NilValue.Truthy())
	assert.True(t, NilValue.Equals(NilValue))
	assert.False(t, NilValue.Equals(NewInt(0)))
}

func TestTypeNameOfScalars(t *testing.T) {
	cases := []struct {
		v    Value
		name string
	}{
		{NewInt(1), "int"},
		{NewFloat(1.0), "float"},
		{NewBool(true), "bool"},
		{NewStr("s"), "str"},
		{NilValue, "NoneType"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.name, TypeNameOf(tc.v))
	}
}
