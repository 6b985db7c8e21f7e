package precompiles

import (
	"github.com/holiman/uint256"

	"github.com/erigontech/erigon-precompiles/bigint"
	"github.com/erigontech/erigon-precompiles/curve"
	"github.com/erigontech/erigon-precompiles/curve/secp256r1"
)

// p256VerifyInputLength is hash(32) || r(32) || s(32) || qx(32) || qy(32).
const p256VerifyInputLength = 160

// p256Verify implements P256VERIFY at address 0x100: ECDSA signature
// verification over secp256r1. Output is a single 32-byte word, 1 for a
// valid signature, empty for anything else. Run never returns an error:
// malformed input (wrong length, out-of-range values, an off-curve key) and
// an invalid signature all yield empty output.
type p256Verify struct{}

func (p256Verify) RequiredGas([]byte) uint64 { return 3450 }

func (p256Verify) Run(input []byte) ([]byte, error) {
	if len(input) != p256VerifyInputLength {
		return nil, nil
	}
	hash := input[0:32]
	r := input[32:64]
	s := input[64:96]
	qx := input[96:128]
	qy := input[128:160]

	d := secp256r1.Descriptor()
	n := d.N
	bound := new(uint256.Int).SetBytes(n.Bytes(32))

	rVal, rOK := decodeScalar256(r, len(n), bound)
	sVal, sOK := decodeScalar256(s, len(n), bound)
	if !rOK || !sOK || rVal.IsZero() || sVal.IsZero() {
		return nil, nil
	}

	qxVal, qxOK := decodeFieldElem(d.Fp, qx)
	qyVal, qyOK := decodeFieldElem(d.Fp, qy)
	if !qxOK || !qyOK {
		return nil, nil
	}
	q := curve.Affine{X: qxVal, Y: qyVal, D: d}
	if q.IsInfinity() || !q.IsOnCurve() {
		return nil, nil
	}

	fr := d.Fr
	// hash is the message digest: a 256-bit value with no guarantee it's
	// < n, taken mod n per the ECDSA verification equations, not rejected
	// out of range the way r/s already were above.
	e := fr.FromBytesReduced(hash)
	rFr := fr.FromBytes(r)
	sFr := fr.FromBytes(s)
	sInv := sFr.Inv()
	if sInv.IsZero() {
		return nil, nil
	}

	u1 := e.Mul(sInv)
	u2 := rFr.Mul(sInv)

	width := len(n) * 8
	u1Canon := bigint.New(len(n)).SetBytes(u1.Bytes(width))
	u2Canon := bigint.New(len(n)).SetBytes(u2.Bytes(width))

	g := curve.Affine{X: d.Gx, Y: d.Gy, D: d}
	point := curve.MSM2(g.ToJacobian(), q.ToJacobian(), u1Canon, u2Canon).ToAffine()
	if point.IsInfinity() {
		return nil, nil
	}

	xCanon := bigint.New(len(n)).SetBytes(point.X.Bytes(width))
	for xCanon.Cmp(n) >= 0 {
		xCanon.SubBorrow(xCanon, n)
	}
	if xCanon.Cmp(rVal) != 0 {
		return nil, nil
	}

	out := make([]byte, 32)
	out[31] = 1
	return out, nil
}
