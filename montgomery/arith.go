// Package montgomery implements the Montgomery modular arithmetic engine
// (ModArith<N> in the design) that every field and curve in this module is
// built on. An Arith value is bound to one odd modulus and is immutable and
// reentrant once constructed — it carries no hidden state, so callers may
// share one instance across goroutines freely.
package montgomery

import (
	"fmt"
	"math/bits"

	"github.com/rs/zerolog/log"

	"github.com/erigontech/erigon-precompiles/bigint"
)

// Arith is a Montgomery context bound to a fixed odd modulus of n limbs.
// R is implicitly 2^(64*n).
type Arith struct {
	mod      bigint.Uint // the modulus, n limbs, odd
	n        int
	rSquared bigint.Uint // R^2 mod mod, used to enter Montgomery form
	modInv   uint64      // -mod[0]^-1 mod 2^64
	inv2     bigint.Uint // modular inverse of 2, used by Inv
}

// New builds a Montgomery context for the given odd modulus. mod's width
// (len(mod)) fixes N for every value this context will operate on. Panics
// if mod is even or zero — those are caller preconditions, not runtime
// failure modes.
func New(mod bigint.Uint) *Arith {
	if mod.IsZero() {
		panic("montgomery: modulus must be nonzero")
	}
	if mod[0]&1 == 0 {
		panic("montgomery: modulus must be odd")
	}
	n := len(mod)
	a := &Arith{
		mod:    mod.Clone(),
		n:      n,
		modInv: negInverseModWord(mod[0]),
	}
	a.rSquared = computeRSquared(mod, n)
	a.inv2 = computeInv2(mod, n)
	log.Debug().Int("limbs", n).Int("bits", mod.BitLen()).Msg("montgomery: context constructed")
	return a
}

// negInverseModWord returns -a^-1 mod 2^64 for odd a, via Newton-Raphson
// doubling: inv=1 is correct mod 2, and each iteration inv <- inv*(2-a*inv)
// doubles the number of correct low bits, so six iterations take it from 1
// bit to 64.
func negInverseModWord(a uint64) uint64 {
	inv := uint64(1)
	for i := 0; i < 6; i++ {
		inv = inv * (2 - a*inv)
	}
	return -inv
}

// computeRSquared returns R^2 mod mod where R = 2^(64n), by building the
// literal bit pattern of R^2 (a single set bit at position 128n) and
// reducing it down with bigint.Mod. Only run once, at construction.
func computeRSquared(mod bigint.Uint, n int) bigint.Uint {
	wide := bigint.New(2*n + 1)
	bitPos := 128 * n
	wide[bitPos/64] = uint64(1) << uint(bitPos%64)
	return bigint.Mod(wide, mod)
}

// computeInv2 returns floor(mod/2)+1, the modular inverse of 2 mod mod
// (valid because mod is odd): 2*(floor(mod/2)+1) = mod+1 if mod is odd,
// i.e. congruent to 1 mod mod.
func computeInv2(mod bigint.Uint, n int) bigint.Uint {
	half := bigint.New(n)
	half.Rsh(mod, 1)
	half.AddWord(1)
	return half
}

// Modulus returns the modulus this context was constructed with.
func (a *Arith) Modulus() bigint.Uint { return a.mod }

// Limbs returns N, the limb width of every value this context operates on.
func (a *Arith) Limbs() int { return a.n }

// one returns the literal integer 1 (not in Montgomery form) at this
// context's width — used internally to drive FromMont via Mul.
func (a *Arith) one() bigint.Uint {
	one := bigint.New(a.n)
	one[0] = 1
	return one
}

// ToMont converts a canonical integer x into Montgomery form, i.e. x*R mod
// mod. x must already satisfy 0 <= x < mod (the same precondition Mul has
// on both its operands) — ToMont performs no reduction of its own, so an
// unreduced x silently produces the wrong element instead of failing.
func (a *Arith) ToMont(x bigint.Uint) bigint.Uint {
	return a.Mul(x, a.rSquared)
}

// FromMont converts a Montgomery-form value back to a canonical integer.
func (a *Arith) FromMont(x bigint.Uint) bigint.Uint {
	return a.Mul(x, a.one())
}

// Mul computes x*y*R^-1 mod mod via CIOS (Coarsely Integrated Operand
// Scanning): operands in Montgomery form in, Montgomery-form product out.
// x and y must already be reduced (0 <= x, y < mod), the same precondition
// Add documents: the loop's single final conditional subtraction only ever
// removes one multiple of mod, which is enough to cancel the algorithm's
// own overflow but not an operand that started out >= mod.
func (a *Arith) Mul(x, y bigint.Uint) bigint.Uint {
	n := a.n
	t := make(bigint.Uint, n+2)
	for i := 0; i < n; i++ {
		// t[0..n-1] += x * y[i], carry flows into t[n] and then t[n+1].
		carry := addMulRow(t[:n], x, y[i])
		var c uint64
		t[n], c = bits.Add64(t[n], carry, 0)
		t[n+1] += c

		m := t[0] * a.modInv
		carry = addMulRow(t[:n], a.mod, m)
		t[n], c = bits.Add64(t[n], carry, 0)
		t[n+1] += c

		// Shift right by one limb: t[0] is now zero by construction of m.
		copy(t[0:n+1], t[1:n+2])
		t[n+1] = 0
	}
	result := t[:n]
	if t[n] != 0 || result.Cmp(a.mod) >= 0 {
		result.SubBorrow(result, a.mod)
	}
	return result
}

// addMulRow computes z += x*w for single-limb w and returns the carry out
// of the top limb of z (z and x share width).
func addMulRow(z, x bigint.Uint, w uint64) uint64 {
	var carry uint64
	for j := range z {
		hi, lo := bits.Mul64(x[j], w)
		lo, c1 := bits.Add64(lo, z[j], 0)
		lo, c2 := bits.Add64(lo, carry, 0)
		z[j] = lo
		carry = hi + c1 + c2
	}
	return carry
}

// Add returns x+y mod mod. x and y must already be reduced (0 <= x, y < mod).
func (a *Arith) Add(x, y bigint.Uint) bigint.Uint {
	z := bigint.New(a.n)
	carry := z.AddCarry(x, y)
	if carry != 0 || z.Cmp(a.mod) >= 0 {
		z.SubBorrow(z, a.mod)
	}
	return z
}

// Sub returns x-y mod mod.
func (a *Arith) Sub(x, y bigint.Uint) bigint.Uint {
	z := bigint.New(a.n)
	borrow := z.SubBorrow(x, y)
	if borrow != 0 {
		z.AddCarry(z, a.mod)
	}
	return z
}

// Neg returns -x mod mod.
func (a *Arith) Neg(x bigint.Uint) bigint.Uint {
	return a.Sub(bigint.New(a.n), x)
}

// IsZero reports whether x is the zero element (in either form — zero is
// its own Montgomery representation).
func (a *Arith) IsZero(x bigint.Uint) bool { return x.IsZero() }

// Equal reports whether x and y represent the same element.
func (a *Arith) Equal(x, y bigint.Uint) bool { return x.Equal(y) }

// Inv returns the Montgomery-form inverse of x (also in Montgomery form),
// or the zero sentinel if x is not invertible mod mod. Uses Pornin's binary
// extended GCD ("Optimized Binary GCD for Modular Inversion", Algorithm 1).
func (a *Arith) Inv(x bigint.Uint) bigint.Uint {
	n := a.n
	av := x.Clone()
	bv := a.mod.Clone()
	u := a.rSquared.Clone()
	v := bigint.New(n)

	for !av.IsZero() {
		for av[0]&1 == 0 {
			av.ShrOne()
			u = a.halve(u)
		}
		if av.Cmp(bv) < 0 {
			av, bv = bv, av
			u, v = v, u
		}
		av.SubBorrow(av, bv)
		u = a.Sub(u, v)
	}
	if !bv.Equal(a.one()) {
		return bigint.New(n) // not invertible: zero sentinel
	}
	return v
}

// halve returns u/2 mod mod, adding inv2's contribution when u is odd.
func (a *Arith) halve(u bigint.Uint) bigint.Uint {
	odd := u[0]&1 != 0
	z := u.Clone()
	z.ShrOne()
	if odd {
		z = a.Add(z, a.inv2)
	}
	return z
}

func (a *Arith) String() string {
	return fmt.Sprintf("montgomery.Arith{mod=%x}", a.mod.Bytes(a.n*8))
}
