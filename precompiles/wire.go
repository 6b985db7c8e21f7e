package precompiles

import (
	"github.com/holiman/uint256"

	"github.com/erigontech/erigon-precompiles/bigint"
	"github.com/erigontech/erigon-precompiles/field"
)

// decodeScalar256 parses a 32-byte big-endian field through uint256.Int —
// the fixed-width type this package uses for every exactly-32-byte wire
// value — then widens it into a bigint.Uint of the given limb width for
// the curve/field/modexp engines underneath. inRange reports whether the
// value is strictly less than bound (both compared as uint256, so bound
// must itself fit in 256 bits — true for every curve order and prime this
// module uses).
func decodeScalar256(buf []byte, limbs int, bound *uint256.Int) (bigint.Uint, bool) {
	v := new(uint256.Int).SetBytes(buf)
	if bound != nil && v.Cmp(bound) >= 0 {
		return nil, false
	}
	return bigint.New(limbs).SetBytes(v.Bytes32()[:]), true
}

// decodeFieldElem parses a 32-byte big-endian value as an element of f,
// rejecting anything >= f's modulus. Curve coordinates arrive on the wire
// as plain fixed-width integers with no canonicality guarantee; feeding an
// out-of-range value straight into field.FromBytes would silently lift the
// wrong element into Montgomery form rather than reject the input, so
// every coordinate decode goes through this instead.
func decodeFieldElem(f field.Field, buf []byte) (field.Elem, bool) {
	limbs := f.Arith().Limbs()
	bound := new(uint256.Int).SetBytes(f.Arith().Modulus().Bytes(limbs * 8))
	v, ok := decodeScalar256(buf, limbs, bound)
	if !ok {
		return field.Elem{}, false
	}
	return f.FromCanonical(v), true
}

// allZero reports whether every byte of b is zero, used to check that a
// wire word's unused high-order bytes (e.g. v's padding ahead of its
// low-order recovery-id byte) weren't smuggling a nonzero value.
func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

func rightPad(b []byte, n int) []byte {
	if len(b) >= n {
		return b[:n]
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}
