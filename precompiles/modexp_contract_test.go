package precompiles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigModExpGasHasFloor(t *testing.T) {
	in := buildModExpInput([]byte{1}, []byte{}, []byte{1})
	require.Equal(t, uint64(200), bigModExp{}.RequiredGas(in))
}

func TestBigModExpGasGrowsWithModulusAndExponent(t *testing.T) {
	small := buildModExpInput([]byte{1}, []byte{1}, []byte{1})
	bigExp := make([]byte, 64)
	bigExp[0] = 0xff
	big := buildModExpInput(make([]byte, 64), bigExp, make([]byte, 64))
	require.Greater(t, bigModExp{}.RequiredGas(big), bigModExp{}.RequiredGas(small))
}

func TestBigModExpRunMatchesModexpPackage(t *testing.T) {
	in := buildModExpInput([]byte{3}, []byte{5}, []byte{7})
	out, err := bigModExp{}.Run(in)
	require.NoError(t, err)
	require.Equal(t, []byte{5}, out) // 3^5 mod 7 = 5
}

func TestBigModExpRunRejectsOperandsOverBound(t *testing.T) {
	oversized := make([]byte, modExpOperandLimit+1)

	_, err := bigModExp{}.Run(buildModExpInput(oversized, []byte{5}, []byte{7}))
	require.ErrorIs(t, err, errModExpBaseLengthTooLarge)

	_, err = bigModExp{}.Run(buildModExpInput([]byte{3}, oversized, []byte{7}))
	require.ErrorIs(t, err, errModExpExponentLengthTooLarge)

	_, err = bigModExp{}.Run(buildModExpInput([]byte{3}, []byte{5}, oversized))
	require.ErrorIs(t, err, errModExpModulusLengthTooLarge)
}

func TestBigModExpRunAcceptsOperandsAtBound(t *testing.T) {
	atBound := make([]byte, modExpOperandLimit)
	atBound[modExpOperandLimit-1] = 3
	in := buildModExpInput(atBound, []byte{1}, []byte{7})
	_, err := bigModExp{}.Run(in)
	require.NoError(t, err)
}

func buildModExpInput(base, exp, mod []byte) []byte {
	be32 := func(v int) []byte {
		out := make([]byte, 32)
		out[31] = byte(v)
		return out
	}
	out := append([]byte{}, be32(len(base))...)
	out = append(out, be32(len(exp))...)
	out = append(out, be32(len(mod))...)
	out = append(out, base...)
	out = append(out, exp...)
	out = append(out, mod...)
	return out
}
