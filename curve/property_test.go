package curve_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/erigontech/erigon-precompiles/bigint"
	"github.com/erigontech/erigon-precompiles/curve"
	"github.com/erigontech/erigon-precompiles/curve/secp256k1"
)

func TestScalarMulAdditiveProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	g := secp256k1.Generator().ToJacobian()

	properties := gopter.NewProperties(parameters)
	properties.Property("(a+b)*G == a*G + b*G", prop.ForAll(
		func(a, b uint32) bool {
			n := 4
			av := bigint.New(n)
			av[0] = uint64(a)
			bv := bigint.New(n)
			bv[0] = uint64(b)
			sum := bigint.New(n)
			sum[0] = uint64(a) + uint64(b)

			lhs := curve.ScalarMul(g, sum).ToAffine()
			rhs := curve.ScalarMul(g, av).ToAffine().ToJacobian().Add(curve.ScalarMul(g, bv)).ToAffine()
			return lhs.Equal(rhs)
		},
		gen.UInt32(),
		gen.UInt32(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestAddMutualNegationIsInfinityProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	g := secp256k1.Generator()

	properties := gopter.NewProperties(parameters)
	properties.Property("P + (-P) == infinity for random P = c*G", prop.ForAll(
		func(c uint32) bool {
			n := 4
			cv := bigint.New(n)
			cv[0] = uint64(c) + 1 // avoid c == 0, the trivial infinity case

			p := curve.ScalarMul(g.ToJacobian(), cv).ToAffine()
			neg := curve.Affine{X: p.X, Y: p.Y.Neg(), D: p.D}
			return p.ToJacobian().Add(neg.ToJacobian()).ToAffine().IsInfinity()
		},
		gen.UInt32(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
