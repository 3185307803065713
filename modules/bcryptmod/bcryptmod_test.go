package bcryptmod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietloop/serpent/object"
)

func TestHashAndCompareRoundTrip(t *testing.T) {
	m := New()
	hash := m["hash"].(*object.NativeFunction)
	compare := m["compare"].(*object.NativeFunction)

	hashed, err := hash.Call([]object.Value{object.NewStr("s3cret")})
	require.NoError(t, err)

	ok, err := compare.Call([]object.Value{hashed, object.NewStr("s3cret")})
	require.NoError(t, err)
	assert.True(t, ok.(*object.Bool).Value)

	ok, err = compare.Call([]object.Value{hashed, object.NewStr("wrong")})
	require.NoError(t, err)
	assert.False(t, ok.(*object.Bool).Value)
}
