package bn254

import (
	"github.com/erigontech/erigon-precompiles/field"
)

// Fp2Elem is an element of Fp2 = Fp[i]/(i^2+1): A + B*i.
type Fp2Elem struct {
	A, B field.Elem
}

func fp2(a, b field.Elem) Fp2Elem { return Fp2Elem{A: a, B: b} }

func (x Fp2Elem) Add(y Fp2Elem) Fp2Elem { return fp2(x.A.Add(y.A), x.B.Add(y.B)) }
func (x Fp2Elem) Sub(y Fp2Elem) Fp2Elem { return fp2(x.A.Sub(y.A), x.B.Sub(y.B)) }
func (x Fp2Elem) Neg() Fp2Elem          { return fp2(x.A.Neg(), x.B.Neg()) }
func (x Fp2Elem) Double() Fp2Elem       { return fp2(x.A.Double(), x.B.Double()) }
func (x Fp2Elem) IsZero() bool          { return x.A.IsZero() && x.B.IsZero() }
func (x Fp2Elem) Equal(y Fp2Elem) bool  { return x.A.Equal(y.A) && x.B.Equal(y.B) }

// Conjugate returns A - B*i.
func (x Fp2Elem) Conjugate() Fp2Elem { return fp2(x.A, x.B.Neg()) }

// Mul computes (a+bi)(c+di) = (ac-bd) + (ad+bc)i via Karatsuba.
func (x Fp2Elem) Mul(y Fp2Elem) Fp2Elem {
	ac := x.A.Mul(y.A)
	bd := x.B.Mul(y.B)
	adPbc := x.A.Add(x.B).Mul(y.A.Add(y.B)).Sub(ac).Sub(bd)
	return fp2(ac.Sub(bd), adPbc)
}

// Square computes (a+bi)^2 = (a^2-b^2) + 2ab*i = (a+b)(a-b) + 2ab*i.
func (x Fp2Elem) Square() Fp2Elem {
	sum := x.A.Add(x.B)
	diff := x.A.Sub(x.B)
	a2 := sum.Mul(diff)
	b2 := x.A.Mul(x.B).Double()
	return fp2(a2, b2)
}

// MulByNonResidue multiplies by the sextic non-residue xi = 9+i used to
// build Fp6 = Fp2[v]/(v^3-xi): (a+bi)(9+i) = (9a-b) + (a+9b)i.
func (x Fp2Elem) MulByNonResidue() Fp2Elem {
	nine := x.A.Field().FromUint64(9)
	return fp2(nine.Mul(x.A).Sub(x.B), x.A.Add(nine.Mul(x.B)))
}

// scaleByFp multiplies by a scalar known to lie in the base field Fp (i.e.
// an Fp2 element with a zero imaginary part), used by the Frobenius-squared
// map's per-coordinate constants.
func (x Fp2Elem) scaleByFp(k field.Elem) Fp2Elem {
	return fp2(x.A.Mul(k), x.B.Mul(k))
}

// Inv returns the inverse of a+bi: conjugate / norm, norm = a^2+b^2.
func (x Fp2Elem) Inv() Fp2Elem {
	norm := x.A.Square().Add(x.B.Square())
	normInv := norm.Inv()
	return fp2(x.A.Mul(normInv), x.B.Neg().Mul(normInv))
}

func fp2Zero(f field.Field) Fp2Elem { return fp2(f.Zero(), f.Zero()) }
func fp2One(f field.Field) Fp2Elem  { return fp2(f.One(), f.Zero()) }
