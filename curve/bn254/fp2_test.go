package bn254

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erigontech/erigon-precompiles/field"
)

func fp2elem(f field.Field, a, b uint64) Fp2Elem {
	return fp2(f.FromUint64(a), f.FromUint64(b))
}

func TestFp2MulMatchesSquare(t *testing.T) {
	f := Descriptor().Fp
	x := fp2elem(f, 3, 5)
	require.True(t, x.Mul(x).Equal(x.Square()))
}

func TestFp2InvIsMultiplicativeInverse(t *testing.T) {
	f := Descriptor().Fp
	x := fp2elem(f, 7, 11)
	require.True(t, x.Mul(x.Inv()).Equal(fp2One(f)))
}

func TestFp2ConjugateNormIsRealSquareSum(t *testing.T) {
	f := Descriptor().Fp
	x := fp2elem(f, 4, 9)
	norm := x.Mul(x.Conjugate())
	require.True(t, norm.B.IsZero())
}

func TestFp2AddSubRoundTrip(t *testing.T) {
	f := Descriptor().Fp
	x := fp2elem(f, 21, 34)
	y := fp2elem(f, 55, 89)
	require.True(t, x.Add(y).Sub(y).Equal(x))
}
