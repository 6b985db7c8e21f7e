// Package secp256r1 supplies the curve descriptor used by P256VERIFY:
// y^2 = x^3 + a*x + b over Fp, a = p-3.
package secp256r1

import (
	"encoding/hex"
	"sync"

	"github.com/erigontech/erigon-precompiles/bigint"
	"github.com/erigontech/erigon-precompiles/curve"
	"github.com/erigontech/erigon-precompiles/field"
	"github.com/erigontech/erigon-precompiles/montgomery"
)

const (
	pHex  = "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"
	nHex  = "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"
	bHex  = "5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"
	gxHex = "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"
	gyHex = "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"
)

var (
	once sync.Once
	desc curve.Descriptor
)

// Descriptor returns the (process-lifetime singleton) secp256r1 curve
// descriptor.
func Descriptor() *curve.Descriptor {
	once.Do(func() {
		p := bigint.New(4).SetBytes(mustHex(pHex))
		n := bigint.New(4).SetBytes(mustHex(nHex))
		fp := field.New(montgomery.New(p))
		fr := field.New(montgomery.New(n))

		three := bigint.New(4)
		three[0] = 3
		aCanon := bigint.New(4)
		aCanon.SubBorrow(p, three) // a = p - 3

		desc = curve.Descriptor{
			Fp: fp,
			Fr: fr,
			A:  fp.FromCanonical(aCanon),
			B:  fp.FromBytes(mustHex(bHex)),
			Gx: fp.FromBytes(mustHex(gxHex)),
			Gy: fp.FromBytes(mustHex(gyHex)),
			N:  n,
		}
	})
	return &desc
}

// Generator returns the base point G in affine coordinates.
func Generator() curve.Affine {
	d := Descriptor()
	return curve.Affine{X: d.Gx, Y: d.Gy, D: d}
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
