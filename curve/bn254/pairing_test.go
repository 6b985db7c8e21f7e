package bn254

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/erigontech/erigon-precompiles/bigint"
	"github.com/erigontech/erigon-precompiles/curve"
)

func TestPairWithInfinityG1IsOne(t *testing.T) {
	f := Descriptor().Fp
	p := curve.InfinityAffine(Descriptor())
	q := G2Generator()
	got := Pair(p, q)
	require.True(t, got.Equal(fp12One(f)))
}

func TestPairWithInfinityG2IsOne(t *testing.T) {
	f := Descriptor().Fp
	p := Generator()
	q := G2Affine{} // X=Y=0 is the infinity sentinel
	got := Pair(p, q)
	require.True(t, got.Equal(fp12One(f)))
}

func TestPairingCheckEmptyIsTrue(t *testing.T) {
	require.True(t, PairingCheck(nil))
}

func TestPairingCheckSingleInfinityTermIsTrue(t *testing.T) {
	p := curve.InfinityAffine(Descriptor())
	q := G2Generator()
	require.True(t, PairingCheck([]Pairing{{G1: p, G2: q}}))
}

// TestPairIsBilinear checks e(a*P, b*Q) == e(P, Q)^(a*b) for small random
// scalars a, b — the defining property ECPAIRING's whole batched-product
// check rests on. A broken Frobenius map or final-exponentiation hard part
// would fail this for almost every nonzero (a, b) pair.
func TestPairIsBilinear(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	g1 := Generator()
	g2 := G2Generator()
	base := FinalExponentiation(Pair(g1, g2))

	properties := gopter.NewProperties(parameters)
	properties.Property("e(a*G1, b*G2) == e(G1, G2)^(a*b)", prop.ForAll(
		func(a, b uint32) bool {
			av := bigint.New(4)
			av[0] = uint64(a%997) + 1
			bv := bigint.New(4)
			bv[0] = uint64(b%997) + 1

			aP := curve.ScalarMul(g1.ToJacobian(), av).ToAffine()
			bQ := g2.ToJacobian(fp2One(Descriptor().Fp)).ScalarMul(bitsOfUint(bv[0])).ToAffine()

			lhs := FinalExponentiation(Pair(aP, bQ))

			ab := bigint.New(4)
			ab[0] = av[0] * bv[0]
			rhs := base.Exp(ab.Bytes(32))

			return lhs.Equal(rhs)
		},
		gen.UInt32(),
		gen.UInt32(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// bitsOfUint returns the big-endian bit sequence of x with no leading zero
// bits, the scalarBits format G2Jacobian.ScalarMul expects.
func bitsOfUint(x uint64) []bool {
	out := make([]bool, 0, 64)
	started := false
	for i := 63; i >= 0; i-- {
		bit := (x>>uint(i))&1 == 1
		if bit {
			started = true
		}
		if started {
			out = append(out, bit)
		}
	}
	if len(out) == 0 {
		out = []bool{false}
	}
	return out
}
