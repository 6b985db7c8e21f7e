package secp256k1

import (
	"testing"

	decredsecp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"github.com/erigontech/erigon-precompiles/bigint"
	"github.com/erigontech/erigon-precompiles/curve"
)

// TestScalarMulMatchesDecredOracle cross-checks this package's scalar
// multiplication against an independent secp256k1 implementation: for a
// handful of private-key scalars, the public point this module derives via
// curve.ScalarMul must match the one decred/dcrd's library derives.
func TestScalarMulMatchesDecredOracle(t *testing.T) {
	g := Generator()
	d := Descriptor()

	for _, scalarHex := range []string{
		"0000000000000000000000000000000000000000000000000000000000002a",
		"0000000000000000000000000000000000000000000000000000000000d431",
		"00000000000000000000000000000000000000000000000000000000abcdef",
	} {
		buf := mustHex(scalarHex)

		priv := decredsecp256k1.PrivKeyFromBytes(buf)
		want := priv.PubKey().SerializeUncompressed() // 0x04 || X(32) || Y(32)

		scalar := bigint.New(len(d.N)).SetBytes(buf)
		got := curve.ScalarMul(g.ToJacobian(), scalar).ToAffine()

		require.Equal(t, want[1:33], got.X.Bytes(32))
		require.Equal(t, want[33:65], got.Y.Bytes(32))
	}
}
