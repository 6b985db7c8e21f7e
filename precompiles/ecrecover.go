package precompiles

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/erigontech/erigon-precompiles/bigint"
	"github.com/erigontech/erigon-precompiles/curve"
	"github.com/erigontech/erigon-precompiles/curve/secp256k1"
	"github.com/erigontech/erigon-precompiles/field"
)

// ecrecoverInputLength is hash(32) || v(32) || r(32) || s(32).
const ecrecoverInputLength = 128

// ecrecover recovers the 20-byte address that signed hash with (v, r, s),
// the ECRECOVER precompile at address 0x01.
type ecrecover struct{}

func (ecrecover) RequiredGas([]byte) uint64 { return 3000 }

func (ecrecover) Run(input []byte) ([]byte, error) {
	in := rightPad(input, ecrecoverInputLength)
	hash := in[0:32]
	vPad := in[32:63]
	vByte := in[63]
	r := in[64:96]
	s := in[96:128]

	d := secp256k1.Descriptor()
	n := d.N
	bound := new(uint256.Int).SetBytes(n.Bytes(32))

	rVal, rOK := decodeScalar256(r, len(n), bound)
	sVal, sOK := decodeScalar256(s, len(n), bound)
	if !rOK || !sOK || rVal.IsZero() || sVal.IsZero() {
		return nil, errors.New("ecrecover: r or s out of range")
	}
	// v is a full 32-byte word; only 27/28 in its low-order byte with every
	// other byte zero is valid — a nonzero high byte is malformed input, not
	// a don't-care.
	if !allZero(vPad) || (vByte != 27 && vByte != 28) {
		return nil, errors.New("ecrecover: invalid recovery id")
	}

	point, err := recoverPoint(d, rVal, sVal, bigint.New(len(n)).SetBytes(hash), vByte == 28)
	if err != nil {
		return nil, err
	}

	addr := publicKeyToAddress(point)
	out := make([]byte, 32)
	copy(out[12:], addr)
	return out, nil
}

// recoverPoint implements ECDSA public-key recovery: lift r to a curve
// point R with the y-parity indicated by odd, then compute
// Q = r^-1*s*R - r^-1*e*G using the curve's Straus-Shamir double-scalar
// multiplication.
func recoverPoint(d *curve.Descriptor, r, s, e bigint.Uint, odd bool) (curve.Affine, error) {
	fr := d.Fr
	n := d.N

	x := d.Fp.FromBytes(r.Bytes(len(n) * 8))
	y, ok := decompress(d, x, odd)
	if !ok {
		return curve.Affine{}, errors.New("ecrecover: r is not a valid curve x-coordinate")
	}
	R := curve.Affine{X: x, Y: y, D: d}

	rFr := fr.FromBytes(r.Bytes(len(n) * 8))
	sFr := fr.FromBytes(s.Bytes(len(n) * 8))
	// e is the message hash: a 256-bit value with no guarantee it's < n,
	// taken mod n per the ECDSA recovery equations, not rejected out of
	// range the way r/s already were above.
	eFr := fr.FromBytesReduced(e.Bytes(len(n) * 8))
	rInv := rFr.Inv()
	if rInv.IsZero() {
		return curve.Affine{}, errors.New("ecrecover: r has no inverse mod n")
	}

	u := rInv.Mul(sFr)
	v := rInv.Mul(eFr).Neg()

	uCanon := bigint.New(len(n)).SetBytes(u.Bytes(len(n) * 8))
	vCanon := bigint.New(len(n)).SetBytes(v.Bytes(len(n) * 8))

	q := curve.MSM2(R.ToJacobian(), curve.Affine{X: d.Gx, Y: d.Gy, D: d}.ToJacobian(), uCanon, vCanon)
	qa := q.ToAffine()
	if qa.IsInfinity() {
		return curve.Affine{}, errors.New("ecrecover: recovered point is infinity")
	}
	return qa, nil
}

// decompress finds y such that y^2 = x^3+ax+b over Fp with the given
// parity, using y = (x^3+ax+b)^((p+1)/4) — valid because secp256k1's prime
// is congruent to 3 mod 4, so every quadratic residue has this closed-form
// square root.
func decompress(d *curve.Descriptor, x field.Elem, odd bool) (field.Elem, bool) {
	rhs := x.Square().Mul(x).Add(d.A.Mul(x)).Add(d.B)
	p := d.Fp.Arith().Modulus()
	exp := p.Clone()
	exp.AddWord(1)
	exp.Rsh(exp, 2)
	y := rhs.Pow(exp)
	if !y.Square().Equal(rhs) {
		return field.Elem{}, false
	}
	if (y.Bytes(len(p)*8)[len(p)*8-1]&1 == 1) != odd {
		y = y.Neg()
	}
	return y, true
}

func publicKeyToAddress(p curve.Affine) []byte {
	buf := make([]byte, 64)
	copy(buf[0:32], p.X.Bytes(32))
	copy(buf[32:64], p.Y.Bytes(32))
	h := sha3.NewLegacyKeccak256()
	h.Write(buf)
	sum := h.Sum(nil)
	return sum[12:]
}

