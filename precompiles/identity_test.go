package precompiles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityReturnsInputUnchanged(t *testing.T) {
	in := []byte{1, 2, 3, 4, 5}
	out, err := identity{}.Run(in)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestIdentityGasScalesWithWordCount(t *testing.T) {
	require.Equal(t, uint64(15+3), identity{}.RequiredGas(make([]byte, 1)))
	require.Equal(t, uint64(15+3), identity{}.RequiredGas(make([]byte, 32)))
	require.Equal(t, uint64(15+6), identity{}.RequiredGas(make([]byte, 33)))
}
