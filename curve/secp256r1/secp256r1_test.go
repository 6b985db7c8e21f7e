package secp256r1

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erigontech/erigon-precompiles/curve"
)

func TestGeneratorOnCurve(t *testing.T) {
	g := Generator()
	require.True(t, g.IsOnCurve())
}

func TestGeneratorTimesOrderIsInfinity(t *testing.T) {
	d := Descriptor()
	g := Generator()
	got := curve.ScalarMul(g.ToJacobian(), d.N).ToAffine()
	require.True(t, got.IsInfinity())
}

func TestDoublingMatchesAddingToSelf(t *testing.T) {
	g := Generator()
	dbl := g.ToJacobian().Double().ToAffine()
	added := g.ToJacobian().Add(g.ToJacobian()).ToAffine()
	require.True(t, dbl.Equal(added))
}
