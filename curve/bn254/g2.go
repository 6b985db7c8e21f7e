package bn254

// G2Affine is an affine point on the BN254 twist E': y^2 = x^3 + b2 over
// Fp2. Infinity is X=Y=0, the same sentinel convention as the base curve —
// (0,0) is not a point on the twist either.
type G2Affine struct {
	X, Y Fp2Elem
}

// G2Jacobian is a Jacobian point on the twist.
type G2Jacobian struct {
	X, Y, Z Fp2Elem
}

func (p G2Affine) IsInfinity() bool { return p.X.IsZero() && p.Y.IsZero() }
func (p G2Jacobian) IsInfinity() bool { return p.Z.IsZero() }

func g2Infinity(zero2 Fp2Elem) G2Jacobian { return G2Jacobian{X: zero2, Y: zero2, Z: zero2} }

func (p G2Affine) ToJacobian(one2 Fp2Elem) G2Jacobian {
	if p.IsInfinity() {
		return g2Infinity(one2.Sub(one2))
	}
	return G2Jacobian{X: p.X, Y: p.Y, Z: one2}
}

func (p G2Jacobian) ToAffine() G2Affine {
	if p.IsInfinity() {
		return G2Affine{X: p.Z, Y: p.Z} // zero, zero
	}
	zInv := p.Z.Inv()
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return G2Affine{X: p.X.Mul(zInv2), Y: p.Y.Mul(zInv3)}
}

// IsOnTwist reports whether p satisfies y^2 = x^3 + b2.
func (p G2Affine) IsOnTwist(b2 Fp2Elem) bool {
	if p.IsInfinity() {
		return true
	}
	lhs := p.Y.Square()
	rhs := p.X.Square().Mul(p.X).Add(b2)
	return lhs.Equal(rhs)
}

// InSubgroupG2 reports whether p lies in the order-n subgroup of the twist.
// G2's cofactor is not 1 the way G1's is, so on-curve membership alone does
// not imply correct order: a point satisfying the curve equation in a
// smaller subgroup would otherwise pass validation and be fed straight into
// the Miller loop. Checked by the same left-to-right double-and-add scalar
// multiplication curve.ScalarMul uses over Fp, applied here to the G2
// group's own Double/Add.
func InSubgroupG2(p G2Affine) bool {
	if p.IsInfinity() {
		return true
	}
	f := p.X.A.Field()
	n := Descriptor().N
	t := p.ToJacobian(fp2One(f))
	acc := g2Infinity(fp2Zero(f))
	for i := n.BitLen() - 1; i >= 0; i-- {
		acc = acc.Double()
		if n.Bit(i) == 1 {
			acc = acc.Add(t)
		}
	}
	return acc.IsInfinity()
}

// Double doubles a G2 Jacobian point using the a=0 dbl-2009-l formula over
// Fp2, identical in shape to curve.dbl2009l over Fp.
func (p G2Jacobian) Double() G2Jacobian {
	if p.IsInfinity() || p.Y.IsZero() {
		return g2Infinity(p.Z.Sub(p.Z))
	}
	x1, y1, z1 := p.X, p.Y, p.Z
	a := x1.Square()
	b := y1.Square()
	c := b.Square()
	xb := x1.Add(b)
	d := xb.Square().Sub(a).Sub(c).Double()
	e := a.Double().Add(a)
	f := e.Square()
	x3 := f.Sub(d).Sub(d)
	y3 := e.Mul(d.Sub(x3)).Sub(c.Double().Double().Double())
	z3 := y1.Mul(z1).Double()
	return G2Jacobian{X: x3, Y: y3, Z: z3}
}

// Add adds two G2 Jacobian points using add-1998-cmo-2 over Fp2, identical
// in shape to curve.Jacobian.Add.
func (p G2Jacobian) Add(q G2Jacobian) G2Jacobian {
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
		return g2Infinity(p.Z.Sub(p.Z))
	}
	rr := r.Double()
	ii := h.Double().Square()
	jj := h.Mul(ii)
	v := u1.Mul(ii)
	x3 := rr.Square().Sub(jj).Sub(v).Sub(v)
	y3 := rr.Mul(v.Sub(x3)).Sub(s1.Mul(jj).Double())
	z3 := h.Mul(p.Z).Mul(q.Z).Double()
	return G2Jacobian{X: x3, Y: y3, Z: z3}
}

// ScalarMul computes scalar*p for a scalar given as its bits, most
// significant first, via left-to-right double-and-add — used only by tests
// that need an
// independently-structured (non-endomorphism) G2 multiplication.
// InSubgroupG2 above inlines the same shape directly rather than calling
// this, since it walks bigint.Uint's Bit/BitLen instead of a []bool.
func (p G2Jacobian) ScalarMul(scalarBits []bool) G2Jacobian {
	acc := g2Infinity(p.Z.Sub(p.Z))
	for _, bit := range scalarBits {
		acc = acc.Double()
		if bit {
			acc = acc.Add(p)
		}
	}
	return acc
}

func (p G2Jacobian) Neg() G2Jacobian {
	return G2Jacobian{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}
