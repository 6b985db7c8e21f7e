package bn254

import "github.com/erigontech/erigon-precompiles/field"

// Fp12Elem is an element of Fp12 = Fp6[w]/(w^2-v): C0 + C1*w.
type Fp12Elem struct {
	C0, C1 Fp6Elem
}

func fp12(c0, c1 Fp6Elem) Fp12Elem { return Fp12Elem{C0: c0, C1: c1} }

func (x Fp12Elem) Add(y Fp12Elem) Fp12Elem { return fp12(x.C0.Add(y.C0), x.C1.Add(y.C1)) }
func (x Fp12Elem) Sub(y Fp12Elem) Fp12Elem { return fp12(x.C0.Sub(y.C0), x.C1.Sub(y.C1)) }
func (x Fp12Elem) Neg() Fp12Elem           { return fp12(x.C0.Neg(), x.C1.Neg()) }
func (x Fp12Elem) IsZero() bool            { return x.C0.IsZero() && x.C1.IsZero() }
func (x Fp12Elem) Equal(y Fp12Elem) bool   { return x.C0.Equal(y.C0) && x.C1.Equal(y.C1) }

func (x Fp12Elem) fieldOf() field.Field { return x.C0.C0.A.Field() }

func fp12Zero(f field.Field) Fp12Elem {
	z2 := fp2Zero(f)
	return fp12(fp6Zero(z2), fp6Zero(z2))
}

func fp12One(f field.Field) Fp12Elem {
	z2, o2 := fp2Zero(f), fp2One(f)
	return fp12(fp6One(z2, o2), fp6Zero(z2))
}

// Conjugate returns C0 - C1*w, the p^6-power Frobenius map that the final
// exponentiation's easy part uses.
func (x Fp12Elem) Conjugate() Fp12Elem { return fp12(x.C0, x.C1.Neg()) }

// Mul multiplies two Fp12 elements: (a+bw)(c+dw) = (ac+bd*v) + (ad+bc)w,
// since w^2 = v.
func (x Fp12Elem) Mul(y Fp12Elem) Fp12Elem {
	v0 := x.C0.Mul(y.C0)
	v1 := x.C1.Mul(y.C1)
	c0 := v0.Add(v1.MulByNonResidue())
	c1 := x.C0.Add(x.C1).Mul(y.C0.Add(y.C1)).Sub(v0).Sub(v1)
	return fp12(c0, c1)
}

func (x Fp12Elem) Square() Fp12Elem { return x.Mul(x) }

// Inv computes the Fp12 inverse via the standard quadratic-tower formula.
func (x Fp12Elem) Inv() Fp12Elem {
	t := x.C0.Square().Sub(x.C1.Square().MulByNonResidue())
	tInv := t.Inv()
	return fp12(x.C0.Mul(tInv), x.C1.Neg().Mul(tInv))
}

// Exp raises x to a non-negative canonical exponent via left-to-right
// square-and-multiply, used by the final exponentiation's hard part and by
// property-based tests exercising pairing bilinearity.
func (x Fp12Elem) Exp(exp []byte) Fp12Elem {
	acc := fp12One(x.fieldOf())
	for _, b := range exp {
		for bit := 7; bit >= 0; bit-- {
			acc = acc.Square()
			if (b>>uint(bit))&1 == 1 {
				acc = acc.Mul(x)
			}
		}
	}
	return acc
}
