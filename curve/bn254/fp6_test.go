package bn254

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fp6elem(seed uint64) Fp6Elem {
	f := Descriptor().Fp
	return fp6(
		fp2elem(f, seed, seed+1),
		fp2elem(f, seed+2, seed+3),
		fp2elem(f, seed+4, seed+5),
	)
}

func TestFp6MulMatchesSquare(t *testing.T) {
	x := fp6elem(1)
	require.True(t, x.Mul(x).Equal(x.Square()))
}

func TestFp6InvIsMultiplicativeInverse(t *testing.T) {
	f := Descriptor().Fp
	x := fp6elem(3)
	one := fp6One(fp2Zero(f), fp2One(f))
	require.True(t, x.Mul(x.Inv()).Equal(one))
}

func TestFp6MulByNonResidueShiftsCoefficients(t *testing.T) {
	x := fp6elem(5)
	shifted := x.MulByNonResidue()
	require.True(t, shifted.C1.Equal(x.C0))
	require.True(t, shifted.C2.Equal(x.C1))
}
