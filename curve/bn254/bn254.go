// Package bn254 implements the BN254 pairing-friendly curve used by
// ECADD/ECMUL/ECPAIRING: G1 is y^2 = x^3 + 3 over Fp (a=0);
// G2 is the same equation over Fp2 with a twisted constant term; the
// pairing target group lives in Fp12.
package bn254

import (
	"encoding/hex"
	"sync"

	"github.com/erigontech/erigon-precompiles/bigint"
	"github.com/erigontech/erigon-precompiles/curve"
	"github.com/erigontech/erigon-precompiles/field"
	"github.com/erigontech/erigon-precompiles/montgomery"
)

const (
	pHex = "30644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd47"
	nHex = "30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001"

	// G2 generator, real/imaginary coefficients (EIP-197 test vectors).
	g2xReHex = "1800deef121f1e76426a00665e5c4479674322d4f75edadd46debd5cd992f6ed"
	g2xImHex = "198e9393920d483a7260bfb731fb5d25f1aa493335a9e71297e485b7aef312c2"
	g2yReHex = "12c85ea5db8c6deb4aab71808dcb408fe3d1e7690c43d37b4ce6cc0166fa7daa"
	g2yImHex = "090689d0585ff075ec9e99ad690c3395bc4b313370b38ef355acdadcd122975b"

	// twist constant b2 such that the G2 curve is y^2 = x^3 + b2 over Fp2.
	b2ReHex = "2b149d40ceb8aaae81be18991be06ac3b5b4c5e559dbefa33267e6dc24a138e5"
	b2ImHex = "009713b03af0fed4cd2cafadeed8fdf4a74fa084e52d1852e4a2bd0685c315d2"
)

var (
	once sync.Once
	desc curve.Descriptor

	g2Gen G2Affine
	b2    Fp2Elem
)

// Descriptor returns the (process-lifetime singleton) G1 curve descriptor.
func Descriptor() *curve.Descriptor {
	initOnce()
	return &desc
}

// Generator returns the G1 base point (1, 2).
func Generator() curve.Affine {
	d := Descriptor()
	return curve.Affine{X: d.Fp.FromUint64(1), Y: d.Fp.FromUint64(2), D: d}
}

// G2Generator returns the G2 base point.
func G2Generator() G2Affine {
	initOnce()
	return g2Gen
}

// TwistB returns the G2 curve constant b2.
func TwistB() Fp2Elem {
	initOnce()
	return b2
}

func initOnce() {
	once.Do(func() {
		p := bigint.New(4).SetBytes(mustHex(pHex))
		n := bigint.New(4).SetBytes(mustHex(nHex))
		fp := field.New(montgomery.New(p))
		fr := field.New(montgomery.New(n))
		desc = curve.Descriptor{
			Fp: fp,
			Fr: fr,
			A:  fp.Zero(),
			B:  fp.FromUint64(3),
			Gx: fp.FromUint64(1),
			Gy: fp.FromUint64(2),
			N:  n,
		}
		g2Gen = G2Affine{
			X: fp2(fp.FromBytes(mustHex(g2xReHex)), fp.FromBytes(mustHex(g2xImHex))),
			Y: fp2(fp.FromBytes(mustHex(g2yReHex)), fp.FromBytes(mustHex(g2yImHex))),
		}
		b2 = fp2(fp.FromBytes(mustHex(b2ReHex)), fp.FromBytes(mustHex(b2ImHex)))
	})
}

// Validate reports whether p satisfies y^2 = x^3 + 3, accepting (0,0) as
// infinity.
func Validate(p curve.Affine) bool { return p.IsOnCurve() }

// ValidateG2 reports whether p is on the twist and in the order-n subgroup.
// Unlike G1 (cofactor 1, on-curve implies correct order), the twist's
// cofactor is not 1, so both checks are required.
func ValidateG2(p G2Affine) bool { return p.IsOnTwist(TwistB()) && InSubgroupG2(p) }

// Mul computes c*p using the curve-generic double-and-add scalar
// multiplication (curve.ScalarMul). A GLV endomorphism-accelerated path was
// considered but not built: it needs exact lattice-basis decomposition
// constants that this module has no way to verify digit by digit without
// running the result through an independent implementation, so the slower
// generic path stays authoritative (see DESIGN.md).
func Mul(p curve.Affine, c bigint.Uint) curve.Affine {
	return curve.ScalarMul(p.ToJacobian(), c).ToAffine()
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
