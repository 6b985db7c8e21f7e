package bn254

// Fp6Elem is an element of Fp6 = Fp2[v]/(v^3-xi): C0 + C1*v + C2*v^2.
type Fp6Elem struct {
	C0, C1, C2 Fp2Elem
}

func fp6(c0, c1, c2 Fp2Elem) Fp6Elem { return Fp6Elem{C0: c0, C1: c1, C2: c2} }

func (x Fp6Elem) Add(y Fp6Elem) Fp6Elem {
	return fp6(x.C0.Add(y.C0), x.C1.Add(y.C1), x.C2.Add(y.C2))
}
func (x Fp6Elem) Sub(y Fp6Elem) Fp6Elem {
	return fp6(x.C0.Sub(y.C0), x.C1.Sub(y.C1), x.C2.Sub(y.C2))
}
func (x Fp6Elem) Neg() Fp6Elem { return fp6(x.C0.Neg(), x.C1.Neg(), x.C2.Neg()) }
func (x Fp6Elem) IsZero() bool { return x.C0.IsZero() && x.C1.IsZero() && x.C2.IsZero() }
func (x Fp6Elem) Equal(y Fp6Elem) bool {
	return x.C0.Equal(y.C0) && x.C1.Equal(y.C1) && x.C2.Equal(y.C2)
}

// MulByNonResidue multiplies by v (shifts coefficients up, wrapping C2
// through the xi non-residue): (c0+c1 v+c2 v^2)*v = c2*xi + c0 v + c1 v^2.
func (x Fp6Elem) MulByNonResidue() Fp6Elem {
	return fp6(x.C2.MulByNonResidue(), x.C0, x.C1)
}

// Mul multiplies two Fp6 elements using the Toom-Cook-ish 3-term schoolbook
// reduction standard for towers of this shape.
func (x Fp6Elem) Mul(y Fp6Elem) Fp6Elem {
	v0 := x.C0.Mul(y.C0)
	v1 := x.C1.Mul(y.C1)
	v2 := x.C2.Mul(y.C2)

	t0 := x.C1.Add(x.C2).Mul(y.C1.Add(y.C2)).Sub(v1).Sub(v2).MulByNonResidue().Add(v0)
	t1 := x.C0.Add(x.C1).Mul(y.C0.Add(y.C1)).Sub(v0).Sub(v1).Add(v2.MulByNonResidue())
	t2 := x.C0.Add(x.C2).Mul(y.C0.Add(y.C2)).Sub(v0).Sub(v2).Add(v1)

	return fp6(t0, t1, t2)
}

func (x Fp6Elem) Square() Fp6Elem { return x.Mul(x) }

// Inv computes the inverse of an Fp6 element via the standard cubic-tower
// formula (Devegili-Ó hÉigeartaigh-Scott-Dahab "multiplication and squaring
// on pairing-friendly fields", inversion in cubic extensions).
func (x Fp6Elem) Inv() Fp6Elem {
	c0 := x.C0.Square().Sub(x.C1.Mul(x.C2).MulByNonResidue())
	c1 := x.C2.Square().MulByNonResidue().Sub(x.C0.Mul(x.C1))
	c2 := x.C1.Square().Sub(x.C0.Mul(x.C2))

	t := x.C2.Mul(c1).Add(x.C1.Mul(c2)).MulByNonResidue().Add(x.C0.Mul(c0))
	tInv := t.Inv()
	return fp6(c0.Mul(tInv), c1.Mul(tInv), c2.Mul(tInv))
}

func fp6Zero(zero2 Fp2Elem) Fp6Elem { return fp6(zero2, zero2, zero2) }
func fp6One(zero2, one2 Fp2Elem) Fp6Elem { return fp6(one2, zero2, zero2) }
