// Package secp256k1 supplies the curve descriptor used by ECRECOVER:
// y^2 = x^3 + 7 over Fp, a = 0.
package secp256k1

import (
	"encoding/hex"
	"sync"

	"github.com/erigontech/erigon-precompiles/bigint"
	"github.com/erigontech/erigon-precompiles/curve"
	"github.com/erigontech/erigon-precompiles/field"
	"github.com/erigontech/erigon-precompiles/montgomery"
)

const (
	pHex  = "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"
	nHex  = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	gxHex = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	gyHex = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
)

var (
	once sync.Once
	desc curve.Descriptor
)

// Descriptor returns the (process-lifetime singleton) secp256k1 curve
// descriptor, constructing the Montgomery contexts for Fp and Fr on first
// use.
func Descriptor() *curve.Descriptor {
	once.Do(func() {
		p := bigint.New(4).SetBytes(mustHex(pHex))
		n := bigint.New(4).SetBytes(mustHex(nHex))
		fp := field.New(montgomery.New(p))
		fr := field.New(montgomery.New(n))
		desc = curve.Descriptor{
			Fp: fp,
			Fr: fr,
			A:  fp.Zero(),
			B:  fp.FromUint64(7),
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
