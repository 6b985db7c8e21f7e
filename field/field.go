// Package field provides Field<Fp>: a thin value wrapper around a
// montgomery.Arith context. Every Elem's underlying limbs are always held
// in Montgomery form; FromBytes/Bytes convert to/from canonical big-endian
// integers at the boundary.
package field

import (
	"github.com/erigontech/erigon-precompiles/bigint"
	"github.com/erigontech/erigon-precompiles/montgomery"
)

// Field binds arithmetic operators to one Montgomery context.
type Field struct {
	arith *montgomery.Arith
}

// New returns a Field bound to arith.
func New(arith *montgomery.Arith) Field {
	return Field{arith: arith}
}

// Arith exposes the underlying Montgomery context, e.g. for curve code
// that needs Limbs() or Modulus().
func (f Field) Arith() *montgomery.Arith { return f.arith }

// Elem is a field element; limbs are always in Montgomery form.
type Elem struct {
	v bigint.Uint
	f Field
}

// Zero returns the additive identity.
func (f Field) Zero() Elem {
	return Elem{v: bigint.New(f.arith.Limbs()), f: f}
}

// One returns the multiplicative identity, in Montgomery form.
func (f Field) One() Elem {
	one := bigint.New(f.arith.Limbs())
	one[0] = 1
	return Elem{v: f.arith.ToMont(one), f: f}
}

// FromUint64 returns the element for a small canonical integer.
func (f Field) FromUint64(x uint64) Elem {
	v := bigint.New(f.arith.Limbs())
	v[0] = x
	return Elem{v: f.arith.ToMont(v), f: f}
}

// FromCanonical wraps an already-canonical (non-Montgomery) integer as a
// Montgomery-form element, without a byte round-trip.
func (f Field) FromCanonical(x bigint.Uint) Elem {
	return Elem{v: f.arith.ToMont(x), f: f}
}

// FromBytes interprets buf as a big-endian canonical integer and returns
// its Montgomery-form element. buf longer than the modulus's byte width is
// truncated from the high-order end. FromBytes performs no reduction: if
// the resulting integer is >= the modulus, ToMont's precondition is
// violated and the returned element is silently wrong, not just
// non-canonical. Only call this on values already known to be < modulus
// (e.g. curve coordinates rejected upstream by a range check); for
// attacker-controlled integers that are conceptually taken mod the
// modulus (an ECDSA message hash mod the curve order, for instance), use
// FromBytesReduced instead.
func (f Field) FromBytes(buf []byte) Elem {
	canon := bigint.New(f.arith.Limbs())
	canon.SetBytes(buf)
	return Elem{v: f.arith.ToMont(canon), f: f}
}

// FromBytesReduced interprets buf as a big-endian integer of arbitrary
// size, reduces it mod the field's modulus, and returns the Montgomery-form
// result. Unlike FromBytes, the input need not already be canonical — this
// is the correct decode for values that are mathematically integers mod
// the modulus but arrive as a fixed-width, unbounded bit pattern (e.g. a
// 256-bit hash reduced mod a curve's order before use in ECDSA
// verification).
func (f Field) FromBytesReduced(buf []byte) Elem {
	wide := bigint.New((len(buf) + 7) / 8)
	wide.SetBytes(buf)
	return f.FromCanonical(bigint.Mod(wide, f.arith.Modulus()))
}

// Bytes renders the element as big-endian canonical bytes, left-padded to
// size bytes.
func (e Elem) Bytes(size int) []byte {
	return e.f.arith.FromMont(e.v).Bytes(size)
}

// IsZero reports whether the element is zero.
func (e Elem) IsZero() bool { return e.f.arith.IsZero(e.v) }

// Equal reports whether e and o represent the same element.
func (e Elem) Equal(o Elem) bool { return e.f.arith.Equal(e.v, o.v) }

// Add returns e+o.
func (e Elem) Add(o Elem) Elem { return Elem{v: e.f.arith.Add(e.v, o.v), f: e.f} }

// Sub returns e-o.
func (e Elem) Sub(o Elem) Elem { return Elem{v: e.f.arith.Sub(e.v, o.v), f: e.f} }

// Neg returns -e.
func (e Elem) Neg() Elem { return Elem{v: e.f.arith.Neg(e.v), f: e.f} }

// Mul returns e*o.
func (e Elem) Mul(o Elem) Elem { return Elem{v: e.f.arith.Mul(e.v, o.v), f: e.f} }

// Square returns e*e.
func (e Elem) Square() Elem { return e.Mul(e) }

// Inv returns e^-1, or the zero element if e is zero or otherwise not
// invertible.
func (e Elem) Inv() Elem { return Elem{v: e.f.arith.Inv(e.v), f: e.f} }

// Double returns e+e.
func (e Elem) Double() Elem { return e.Add(e) }

// Field returns the Field this element belongs to.
func (e Elem) Field() Field { return e.f }

// Pow returns e^exp, exp a canonical (non-Montgomery) exponent, via
// left-to-right square-and-multiply.
func (e Elem) Pow(exp bigint.Uint) Elem {
	acc := e.f.One()
	for i := exp.BitLen() - 1; i >= 0; i-- {
		acc = acc.Square()
		if exp.Bit(i) == 1 {
			acc = acc.Mul(e)
		}
	}
	return acc
}
