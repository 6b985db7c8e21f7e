// Package curve implements the curve-generic group law shared by every
// curve specialisation in this module: affine and Jacobian point
// arithmetic, scalar multiplication, and Straus–Shamir simultaneous
// double-scalar multiplication.
package curve

import (
	"github.com/erigontech/erigon-precompiles/bigint"
	"github.com/erigontech/erigon-precompiles/field"
)

// Descriptor describes a short Weierstrass curve y^2 = x^3 + a*x + b over
// Fp, together with its prime-order subgroup generated by G. Fp is the
// base field; Fr is the scalar field bound to the curve order n — kept
// separate because it is a different modulus with its own Montgomery
// context.
type Descriptor struct {
	Fp     field.Field
	Fr     field.Field
	A, B   field.Elem
	Gx, Gy field.Elem
	N      bigint.Uint // curve order n, canonical (non-Montgomery) integer, same limb width as Fp
}

// aIsZero reports whether this curve's a coefficient is zero — the
// dispatch point between the dbl-2009-l and dbl-2001-b doubling formulas.
func (d *Descriptor) aIsZero() bool { return d.A.IsZero() }

// Affine is an affine point. The point at infinity is represented by
// X = Y = 0, which is safe for every curve this module supports: (0,0) is
// never an actual curve point on BN254, secp256k1, or secp256r1, since
// their b (or a*0+b) is never a square-of-zero coincidence.
type Affine struct {
	X, Y field.Elem
	D    *Descriptor
}

// Jacobian is a Jacobian point (X, Y, Z) representing affine (X/Z^2,
// Y/Z^3). Z = 0 encodes infinity.
type Jacobian struct {
	X, Y, Z field.Elem
	D       *Descriptor
}

// InfinityAffine returns the point at infinity in affine form.
func InfinityAffine(d *Descriptor) Affine {
	return Affine{X: d.Fp.Zero(), Y: d.Fp.Zero(), D: d}
}

// InfinityJacobian returns the point at infinity in Jacobian form.
func InfinityJacobian(d *Descriptor) Jacobian {
	return Jacobian{X: d.Fp.Zero(), Y: d.Fp.Zero(), Z: d.Fp.Zero(), D: d}
}

// IsInfinity reports whether p is the point at infinity.
func (p Affine) IsInfinity() bool { return p.X.IsZero() && p.Y.IsZero() }

// IsInfinity reports whether p is the point at infinity.
func (p Jacobian) IsInfinity() bool { return p.Z.IsZero() }

// ToJacobian lifts an affine point to Jacobian coordinates.
func (p Affine) ToJacobian() Jacobian {
	if p.IsInfinity() {
		return InfinityJacobian(p.D)
	}
	return Jacobian{X: p.X, Y: p.Y, Z: p.D.Fp.One(), D: p.D}
}

// ToAffine projects a Jacobian point down to affine coordinates.
func (p Jacobian) ToAffine() Affine {
	if p.IsInfinity() {
		return InfinityAffine(p.D)
	}
	zInv := p.Z.Inv()
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return Affine{X: p.X.Mul(zInv2), Y: p.Y.Mul(zInv3), D: p.D}
}

// Equal reports whether two affine points are the same point.
func (p Affine) Equal(q Affine) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + a*x + b, treating
// infinity as always on-curve.
func (p Affine) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}
	lhs := p.Y.Square()
	rhs := p.X.Square().Mul(p.X).Add(p.D.A.Mul(p.X)).Add(p.D.B)
	return lhs.Equal(rhs)
}

// AffineAdd adds two affine points using the classical slope formulas.
// Used for reference/testing; the hot path uses Jacobian coordinates.
func AffineAdd(p, q Affine) Affine {
	d := p.D
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	if p.X.Equal(q.X) {
		if p.Y.Equal(q.Y.Neg()) {
			return InfinityAffine(d)
		}
		return AffineDouble(p)
	}
	lambda := q.Y.Sub(p.Y).Mul(q.X.Sub(p.X).Inv())
	x3 := lambda.Square().Sub(p.X).Sub(q.X)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return Affine{X: x3, Y: y3, D: d}
}

// AffineDouble doubles an affine point using the classical slope formula.
func AffineDouble(p Affine) Affine {
	d := p.D
	if p.IsInfinity() || p.Y.IsZero() {
		return InfinityAffine(d)
	}
	three := d.Fp.FromUint64(3)
	two := d.Fp.FromUint64(2)
	lambda := three.Mul(p.X.Square()).Add(d.A).Mul(two.Mul(p.Y).Inv())
	x3 := lambda.Square().Sub(p.X).Sub(p.X)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return Affine{X: x3, Y: y3, D: d}
}

// Double returns 2*p in Jacobian coordinates, dispatching on the curve's a
// coefficient: dbl-2009-l when a=0 (BN254, secp256k1), dbl-2001-b when
// a=p-3 (secp256r1).
func (p Jacobian) Double() Jacobian {
	d := p.D
	if p.IsInfinity() || p.Y.IsZero() {
		return InfinityJacobian(d)
	}
	if d.aIsZero() {
		return dbl2009l(p)
	}
	return dbl2001b(p)
}

// dbl2009l is the a=0 Jacobian doubling formula.
func dbl2009l(p Jacobian) Jacobian {
	x1, y1, z1 := p.X, p.Y, p.Z
	a := x1.Square()
	b := y1.Square()
	c := b.Square()
	xb := x1.Add(b)
	d := xb.Square().Sub(a).Sub(c).Double()
	e := a.Double().Add(a) // 3*A
	f := e.Square()
	x3 := f.Sub(d).Sub(d)
	y3 := e.Mul(d.Sub(x3)).Sub(c.Double().Double().Double())
	z3 := y1.Mul(z1).Double()
	return Jacobian{X: x3, Y: y3, Z: z3, D: p.D}
}

// dbl2001b is the a=p-3 Jacobian doubling formula.
func dbl2001b(p Jacobian) Jacobian {
	x1, y1, z1 := p.X, p.Y, p.Z
	delta := z1.Square()
	gamma := y1.Square()
	beta := x1.Mul(gamma)
	alphaBase := x1.Sub(delta).Mul(x1.Add(delta))
	alpha := alphaBase.Double().Add(alphaBase) // 3*(X1-delta)*(X1+delta)
	x3 := alpha.Square().Sub(beta.Double().Double().Double())
	z3 := y1.Add(z1).Square().Sub(gamma).Sub(delta)
	fourBeta := beta.Double().Double()
	y3 := alpha.Mul(fourBeta.Sub(x3)).Sub(gamma.Square().Double().Double().Double())
	return Jacobian{X: x3, Y: y3, Z: z3, D: p.D}
}

// Add returns p+q in Jacobian coordinates using add-1998-cmo-2, the
// general (a-independent) addition formula. Falls through to
// Double when p == q, and naturally yields infinity (Z3=0) when p and q
// are mutual negations (h=0, r!=0).
func (p Jacobian) Add(q Jacobian) Jacobian {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	z1z1 := p.Z.Square()
	z2z2 := q.Z.Square()
	u1 := p.X.Mul(z2z2)
	u2 := q.X.Mul(z1z1)
	s1 := p.Y.Mul(q.Z).Mul(z2z2)
	s2 := q.Y.Mul(p.Z).Mul(z1z1)
	h := u2.Sub(u1)
	r := s2.Sub(s1)
	if h.IsZero() {
		if r.IsZero() {
			return p.Double()
		}
		return InfinityJacobian(p.D)
	}
	rr := r.Double()
	ii := h.Double().Square()
	jj := h.Mul(ii)
	v := u1.Mul(ii)
	x3 := rr.Square().Sub(jj).Sub(v).Sub(v)
	y3 := rr.Mul(v.Sub(x3)).Sub(s1.Mul(jj).Double())
	z3 := h.Mul(p.Z).Mul(q.Z).Double()
	return Jacobian{X: x3, Y: y3, Z: z3, D: p.D}
}

// MixedAdd adds an affine point to a Jacobian point. It is the Z2=1
// specialisation of Add, kept as a named operation for callers that expect
// "madd" terminology even though this module shares one implementation.
func (p Jacobian) MixedAdd(q Affine) Jacobian {
	return p.Add(q.ToJacobian())
}

// reduceScalar reduces a scalar (canonical bytes, base-field-unrelated
// width — it is Fr-width) modulo the curve order by conditional
// subtraction (at most two iterations for valid inputs).
func reduceScalar(d *Descriptor, scalar bigint.Uint) bigint.Uint {
	s := scalar.Clone()
	for s.Cmp(d.N) >= 0 {
		s.SubBorrow(s, d.N)
	}
	return s
}

// ScalarMul computes scalar*p via left-to-right double-and-add. The
// scalar is first reduced mod the curve order, which guarantees the
// running accumulator never collides with p, so Add never needs to fall
// back to Double inside the loop.
func ScalarMul(p Jacobian, scalar bigint.Uint) Jacobian {
	s := reduceScalar(p.D, scalar)
	acc := InfinityJacobian(p.D)
	for i := s.BitLen() - 1; i >= 0; i-- {
		acc = acc.Double()
		if s.Bit(i) == 1 {
			acc = acc.Add(p)
		}
	}
	return acc
}

// MSM2 computes u*p + v*q in one double-and-add pass using the
// Straus–Shamir trick: precompute p, q, p+q, then at each bit step double
// the accumulator and add the precomputed combination selected by the
// current (v-bit, u-bit) pair.
func MSM2(p, q Jacobian, u, v bigint.Uint) Jacobian {
	d := p.D
	ured := reduceScalar(d, u)
	vred := reduceScalar(d, v)
	pq := p.Add(q)

	bitLen := ured.BitLen()
	if l := vred.BitLen(); l > bitLen {
		bitLen = l
	}
	acc := InfinityJacobian(d)
	for i := bitLen - 1; i >= 0; i-- {
		acc = acc.Double()
		ub := ured.Bit(i)
		vb := vred.Bit(i)
		switch {
		case ub == 1 && vb == 1:
			acc = acc.Add(pq)
		case ub == 1:
			acc = acc.Add(p)
		case vb == 1:
			acc = acc.Add(q)
		}
	}
	return acc
}
