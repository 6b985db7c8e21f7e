package precompiles

import (
	"github.com/pkg/errors"

	"github.com/erigontech/erigon-precompiles/curve"
	"github.com/erigontech/erigon-precompiles/curve/bn254"
)

const fieldElemSize = 32

// bn256Add implements ECADD at address 0x06: two uncompressed G1 points in,
// one uncompressed G1 point out.
type bn256Add struct{}

func (bn256Add) RequiredGas([]byte) uint64 { return 150 }

func (bn256Add) Run(input []byte) ([]byte, error) {
	in := rightPad(input, 4*fieldElemSize)
	p, err := decodeG1(in[0:64])
	if err != nil {
		return nil, err
	}
	q, err := decodeG1(in[64:128])
	if err != nil {
		return nil, err
	}
	sum := p.ToJacobian().Add(q.ToJacobian()).ToAffine()
	return encodeG1(sum), nil
}

// bn256ScalarMul implements ECMUL at address 0x07.
type bn256ScalarMul struct{}

func (bn256ScalarMul) RequiredGas([]byte) uint64 { return 6000 }

func (bn256ScalarMul) Run(input []byte) ([]byte, error) {
	in := rightPad(input, 3*fieldElemSize)
	p, err := decodeG1(in[0:64])
	if err != nil {
		return nil, err
	}
	scalar, _ := decodeScalar256(in[64:96], 4, nil)
	res := bn254.Mul(p, scalar)
	return encodeG1(res), nil
}

// bn256Pairing implements ECPAIRING at address 0x08: zero or more (G1, G2)
// pairs, output is a single 32-byte boolean (left-padded 0 or 1).
type bn256Pairing struct{}

const pairElemSize = 192

func (bn256Pairing) RequiredGas(input []byte) uint64 {
	return 45000 + uint64(len(input)/pairElemSize)*34000
}

func (bn256Pairing) Run(input []byte) ([]byte, error) {
	if len(input)%pairElemSize != 0 {
		return nil, errors.New("ecpairing: invalid input length")
	}
	count := len(input) / pairElemSize
	terms := make([]bn254.Pairing, 0, count)
	for i := 0; i < count; i++ {
		chunk := input[i*pairElemSize : (i+1)*pairElemSize]
		p, err := decodeG1(chunk[0:64])
		if err != nil {
			return nil, err
		}
		q, err := decodeG2(chunk[64:192])
		if err != nil {
			return nil, err
		}
		if !p.IsInfinity() && !bn254.Validate(p) {
			return nil, errors.New("ecpairing: g1 point not on curve")
		}
		if !q.IsInfinity() && !bn254.ValidateG2(q) {
			return nil, errors.New("ecpairing: g2 point not on twist")
		}
		terms = append(terms, bn254.Pairing{G1: p, G2: q})
	}

	out := make([]byte, 32)
	if bn254.PairingCheck(terms) {
		out[31] = 1
	}
	return out, nil
}

func decodeG1(buf []byte) (curve.Affine, error) {
	d := bn254.Descriptor()
	x, xOK := decodeFieldElem(d.Fp, buf[0:32])
	y, yOK := decodeFieldElem(d.Fp, buf[32:64])
	if !xOK || !yOK {
		return curve.Affine{}, errors.New("bn254: coordinate out of range")
	}
	p := curve.Affine{X: x, Y: y, D: d}
	if !p.IsInfinity() && !bn254.Validate(p) {
		return curve.Affine{}, errors.New("bn254: point not on curve")
	}
	return p, nil
}

func encodeG1(p curve.Affine) []byte {
	out := make([]byte, 64)
	if p.IsInfinity() {
		return out
	}
	copy(out[0:32], p.X.Bytes(32))
	copy(out[32:64], p.Y.Bytes(32))
	return out
}

func decodeG2(buf []byte) (bn254.G2Affine, error) {
	d := bn254.Descriptor()
	// Wire order is (x_im, x_re, y_im, y_re) per EIP-197's big-endian
	// imaginary-then-real encoding of each Fp2 coordinate.
	xIm, xImOK := decodeFieldElem(d.Fp, buf[0:32])
	xRe, xReOK := decodeFieldElem(d.Fp, buf[32:64])
	yIm, yImOK := decodeFieldElem(d.Fp, buf[64:96])
	yRe, yReOK := decodeFieldElem(d.Fp, buf[96:128])
	if !xImOK || !xReOK || !yImOK || !yReOK {
		return bn254.G2Affine{}, errors.New("bn254: coordinate out of range")
	}
	return bn254.G2Affine{
		X: bn254.Fp2Elem{A: xRe, B: xIm},
		Y: bn254.Fp2Elem{A: yRe, B: yIm},
	}, nil
}
