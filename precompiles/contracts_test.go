package precompiles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContractsDispatchTable(t *testing.T) {
	_, ok := Contracts[addr(0x01)]
	require.True(t, ok)
	_, ok = Contracts[addr(0x04)]
	require.True(t, ok)
	_, ok = Contracts[addr(0x05)]
	require.True(t, ok)
	_, ok = Contracts[addr(0x06)]
	require.True(t, ok)
	_, ok = Contracts[addr(0x07)]
	require.True(t, ok)
	_, ok = Contracts[addr(0x08)]
	require.True(t, ok)
	_, ok = Contracts[addr(0x01, 0x00)]
	require.True(t, ok)
}

func TestRunPrecompiledContractChargesGas(t *testing.T) {
	ret, remaining, err := RunPrecompiledContract(identity{}, []byte{1, 2, 3}, 100)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, ret)
	require.Equal(t, uint64(100-18), remaining)
}

func TestRunPrecompiledContractOutOfGas(t *testing.T) {
	_, _, err := RunPrecompiledContract(identity{}, []byte{1, 2, 3}, 1)
	require.ErrorIs(t, err, ErrOutOfGas)
}

func TestRunPrecompiledContractPropagatesRunError(t *testing.T) {
	_, _, err := RunPrecompiledContract(ecrecover{}, make([]byte, ecrecoverInputLength), 1_000_000)
	require.Error(t, err)
}
