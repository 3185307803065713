package mathmod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietloop/serpent/object"
)

func TestSqrtAndAbs(t *testing.T) {
	m := New()
	sqrt := m["sqrt"].(*object.NativeFunction)
	v, err := sqrt.Call([]object.Value{object.NewFloat(9)})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.(*object.Float).Value)

	abs := m["abs"].(*object.NativeFunction)
	v, err = abs.Call([]object.Value{object.NewInt(-5)})
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.(*object.Int).Value)
}

func TestConstants(t *testing.T) {
	m := New()
	assert.InDelta(t, 3.14159, m["pi"].(*object.Float).Value, 0.001)
}

func TestRejectsNonNumeric(t *testing.T) {
	m := New()
	sqrt := m["sqrt"].(*object.NativeFunction)
	_, err := sqrt.Call([]object.Value{object.NewStr("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TypeError")
}
