package bn254

import (
	"math/big"

	"github.com/erigontech/erigon-precompiles/curve"
)

// loopBits6uPlus2 is the binary expansion (MSB first, leading 1 included) of
// 6u+2 for BN254's parameter u = 4965661367192848881 — the optimal ate
// pairing's Miller loop length; Pair's loop starts at index 1, skipping the
// leading 1. The value exceeds 64 bits, so it is held as a big.Int literal.
// Precomputed once rather than derived at runtime, the way fixed-curve
// pairing implementations hardcode their loop constant.
var loopBits6uPlus2 = bitsOf(new(big.Int).SetBytes(decimalBytes("29793968203157093288")))

func bitsOf(x *big.Int) []bool {
	out := make([]bool, 0, x.BitLen())
	for i := x.BitLen() - 1; i >= 0; i-- {
		out = append(out, x.Bit(i) == 1)
	}
	if len(out) == 0 {
		out = []bool{false}
	}
	return out
}

// Pair lifts a G1 point and a G2 point into Fp12 via the optimal ate Miller
// loop: doubling and mixed-addition steps walk a G2 accumulator while each
// step's line function is evaluated at the fixed G1 point and multiplied
// into the running Fp12 product.
func Pair(p curve.Affine, q G2Affine) Fp12Elem {
	f := p.D.Fp
	if p.IsInfinity() || q.IsInfinity() {
		return fp12One(f)
	}

	t := q.ToJacobian(fp2One(f))
	acc := fp12One(f)

	for i := 1; i < len(loopBits6uPlus2); i++ {
		pre := t
		t = t.Double()
		acc = acc.Square().Mul(evalLine(pre, t, p))

		if loopBits6uPlus2[i] {
			pre = t
			t = t.Add(q.ToJacobian(fp2One(f)))
			acc = acc.Mul(evalLine(pre, t, p))
		}
	}

	// BN254's optimal ate pairing (loop length 6u+2) needs two more mixed-
	// addition steps after the main loop, adding Q1 = pi_p(Q) and
	// -Q2 = -pi_p^2(Q) — without these the loop computes a function that
	// is not bilinear. Cf. https://eprint.iacr.org/2010/354.pdf.
	q1, negQ2 := frobeniusTwist(q)
	pre := t
	t = t.Add(q1.ToJacobian(fp2One(f)))
	acc = acc.Mul(evalLine(pre, t, p))

	pre = t
	t = t.Add(negQ2.ToJacobian(fp2One(f)))
	acc = acc.Mul(evalLine(pre, t, p))

	return acc
}

// g2FrobTwistCoeffs are BN254's Frobenius-twist untwisting scalars: gamma12/
// gamma13 untwist the p-power Frobenius map on G2 (Q1 = pi_p(Q)), and
// gamma22 untwists the p^2-power Frobenius's X coordinate (Q2.X). The p^2
// Frobenius acts as -1 on the Y coordinate for this twist, so -Q2 needs no
// third constant: -Q2 = (Q.X*gamma22, Q.Y).
var g2FrobTwistCoeffs = struct {
	gamma12A, gamma12B []byte
	gamma13A, gamma13B []byte
	gamma22            []byte
}{
	gamma12A: decimalBytes("21575463638280843010398324269430826099269044274347216827212613867836435027261"),
	gamma12B: decimalBytes("10307601595873709700152284273816112264069230130616436755625194854815875713954"),
	gamma13A: decimalBytes("2821565182194536844548159561693502659359617185244120367078079554186484126554"),
	gamma13B: decimalBytes("3505843767911556378687030309984248845540243509899259641013678093033130930403"),
	gamma22:  decimalBytes("21888242871839275220042445260109153167277707414472061641714758635765020556616"),
}

// frobeniusTwist computes Q1 = pi_p(Q) and -Q2 = -pi_p^2(Q), the two
// correction points Pair's post-loop steps add.
func frobeniusTwist(q G2Affine) (q1, negQ2 G2Affine) {
	f := q.X.A.Field()
	gamma12 := fp2(f.FromBytes(g2FrobTwistCoeffs.gamma12A), f.FromBytes(g2FrobTwistCoeffs.gamma12B))
	gamma13 := fp2(f.FromBytes(g2FrobTwistCoeffs.gamma13A), f.FromBytes(g2FrobTwistCoeffs.gamma13B))
	gamma22 := f.FromBytes(g2FrobTwistCoeffs.gamma22)

	q1 = G2Affine{
		X: q.X.Conjugate().Mul(gamma12),
		Y: q.Y.Conjugate().Mul(gamma13),
	}
	negQ2 = G2Affine{
		X: q.X.scaleByFp(gamma22),
		Y: q.Y,
	}
	return q1, negQ2
}

// evalLine evaluates, at the fixed affine G1 point p, the line of the step
// from "before" to "after" (the tangent at before for a doubling step, the
// chord through before and the added point for an addition step). Both
// lines pass through before and -after, so that is the line computed here.
// The result is embedded into Fp12 via the D-type sextic twist
// (x, y) -> (x*w^2, y*w^3): for the line y = lambda*x + c over Fp2 its value
// at (x0,y0) = (p.X, p.Y) is y0 - lambda*x0*w - c*v*w, filling the C0.C0,
// C1.C0 and C1.C1 slots.
func evalLine(before, after G2Jacobian, p curve.Affine) Fp12Elem {
	f := p.D.Fp
	if before.IsInfinity() || after.IsInfinity() {
		return fp12One(f)
	}
	b0 := before.ToAffine()
	b1 := after.ToAffine()
	b1.Y = b1.Y.Neg()

	var lambda Fp2Elem
	if b0.X.Equal(b1.X) {
		three := fp2(f.FromUint64(3), f.Zero())
		two := fp2(f.FromUint64(2), f.Zero())
		lambda = three.Mul(b0.X.Square()).Mul(two.Mul(b0.Y).Inv())
	} else {
		lambda = b1.Y.Sub(b0.Y).Mul(b1.X.Sub(b0.X).Inv())
	}
	// a*x + b*y + c = 0 with a = lambda, b = -1, c = b0.Y - lambda*b0.X.
	a := lambda
	c := b0.Y.Sub(lambda.Mul(b0.X))

	zero2 := fp2Zero(f)
	px := fp2(p.X, f.Zero())
	py := fp2(p.Y, f.Zero())

	c0 := fp6(py, zero2, zero2)
	c1 := fp6(a.Neg().Mul(px), c.Neg(), zero2)
	return fp12(c0, c1)
}

// bn254FieldModulus and bn254GroupOrder are BN254's base field prime p and
// subgroup order n (the same values Ethereum's alt_bn128 precompiles and
// gnark-crypto use), needed here only to derive finalExpHardPartExp below.
var (
	bn254FieldModulus, _ = new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)
	bn254GroupOrder, _   = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)
)

// finalExpHardPartExp is (p^4-p^2+1)/n, the hard-part exponent of BN254's
// final exponentiation: (p^12-1)/n = (p^6-1)(p^2+1)*(p^4-p^2+1)/n, the
// standard decomposition for BN-family curves (Devegili-Scott-Dahab
// "Multiplication and Squaring on Pairing-Friendly Fields", sec. 4). Derived
// once via big.Int rather than hardcoded as a literal, since it has no
// compact closed form.
var finalExpHardPartExp = func() []byte {
	p2 := new(big.Int).Mul(bn254FieldModulus, bn254FieldModulus)
	p4 := new(big.Int).Mul(p2, p2)
	num := new(big.Int).Sub(p4, p2)
	num.Add(num, big.NewInt(1))
	exp := new(big.Int).Div(num, bn254GroupOrder)
	return exp.Bytes()
}()

// FinalExponentiation raises a Miller-loop output to (p^12-1)/n, split into
// an easy part (cheap Frobenius-based conjugation/inversion) and a hard
// part (exponentiation by finalExpHardPartExp), the standard decomposition
// for BN-family curves.
func FinalExponentiation(x Fp12Elem) Fp12Elem {
	f := x.fieldOf()
	if x.IsZero() {
		return fp12Zero(f)
	}

	// Easy part: f^((p^6-1)(p^2+1)). p^6 acts on Fp12 = Fp6[w]/(w^2-v) as
	// conjugation (w -> -w) since Fp6 is fixed by Frobenius^6 up to sign
	// flip at this tower depth for BN curves' chosen non-residues.
	t0 := x.Conjugate().Mul(x.Inv())
	t1 := t0.frobeniusP2().Mul(t0)

	// Hard part: t1 already lies in the order-(p^4-p^2+1) cyclotomic
	// subgroup after the easy part, so this exponentiation lands exactly
	// on (p^12-1)/n overall.
	return t1.Exp(finalExpHardPartExp)
}

// frobeniusP2Coeffs are the p^2-power Frobenius map's per-coordinate
// scalars for Fp12 = Fp6[w]/(w^2-v), Fp6 = Fp2[v]/(v^3-xi), xi = 9+i.
// Conjugation composed with itself is the identity on Fp2, so the p^2
// Frobenius acts purely by multiplying each v/w-graded coefficient by a
// power of xi^((p^2-1)/6); those powers reduce to real (non-imaginary) Fp
// scalars for this tower. The constant for C0.C0 is 1 (xi^0) and is applied
// as an identity, so only the other five are listed.
var frobeniusP2Coeffs = struct {
	c0c1, c0c2, c1c0, c1c1, c1c2 []byte
}{
	c0c1: decimalBytes("21888242871839275220042445260109153167277707414472061641714758635765020556616"),
	c0c2: decimalBytes("2203960485148121921418603742825762020974279258880205651966"),
	c1c0: decimalBytes("21888242871839275220042445260109153167277707414472061641714758635765020556617"),
	c1c1: decimalBytes("21888242871839275222246405745257275088696311157297823662689037894645226208582"),
	c1c2: decimalBytes("2203960485148121921418603742825762020974279258880205651967"),
}

func decimalBytes(s string) []byte {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bn254: invalid Frobenius constant literal: " + s)
	}
	return v.Bytes()
}

// frobeniusP2 computes x^(p^2) on Fp12 via frobeniusP2Coeffs.
func (x Fp12Elem) frobeniusP2() Fp12Elem {
	f := x.fieldOf()
	c0c1 := f.FromBytes(frobeniusP2Coeffs.c0c1)
	c0c2 := f.FromBytes(frobeniusP2Coeffs.c0c2)
	c1c0 := f.FromBytes(frobeniusP2Coeffs.c1c0)
	c1c1 := f.FromBytes(frobeniusP2Coeffs.c1c1)
	c1c2 := f.FromBytes(frobeniusP2Coeffs.c1c2)

	c0 := fp6(
		x.C0.C0,
		x.C0.C1.scaleByFp(c0c1),
		x.C0.C2.scaleByFp(c0c2),
	)
	c1 := fp6(
		x.C1.C0.scaleByFp(c1c0),
		x.C1.C1.scaleByFp(c1c1),
		x.C1.C2.scaleByFp(c1c2),
	)
	return fp12(c0, c1)
}

// Pairing is a single (G1, G2) term of a pairing-product check.
type Pairing struct {
	G1 curve.Affine
	G2 G2Affine
}

// PairingCheck reports whether the product of e(G1_i, G2_i) over all terms
// equals the identity in Fp12, the predicate ECPAIRING is built on.
func PairingCheck(terms []Pairing) bool {
	if len(terms) == 0 {
		return true
	}
	f := terms[0].G1.D.Fp
	acc := fp12One(f)
	for _, t := range terms {
		acc = acc.Mul(Pair(t.G1, t.G2))
	}
	result := FinalExponentiation(acc)
	return result.Equal(fp12One(f))
}
