// Package modexp implements fixed-point big-number modular exponentiation
// over the byte-length-prefixed input layout used by the EVM's MODEXP
// precompile: a triple of big-endian operands (base, exponent, modulus),
// each preceded by its own 32-byte big-endian length field.
//
// The modulus parity decides the algorithm: an odd modulus runs through
// the Montgomery ladder built on package montgomery; an even modulus
// (including powers of two) runs a generic bigint square-and-multiply with
// long-division reduction after every step, mirroring the double-and-add
// shape package curve uses for scalar multiplication.
package modexp

import (
	"github.com/holiman/uint256"

	"github.com/erigontech/erigon-precompiles/bigint"
	"github.com/erigontech/erigon-precompiles/montgomery"
)

// LengthFieldSize is the width of each of the three length prefixes.
const LengthFieldSize = 32

// ParsedInput holds the three decoded operands of a MODEXP call, still as
// raw big-endian byte slices (no byte length implies zero).
type ParsedInput struct {
	Base, Exp, Mod []byte
}

// ParseInput decodes the MODEXP wire layout: three 32-byte big-endian
// length fields followed by base||exponent||modulus, each truncated or
// zero-extended to its declared length. Short trailing input is treated as
// implicitly zero-padded, matching the lenient EVM precompile convention.
func ParseInput(input []byte) ParsedInput {
	baseLen := readLength(input, 0)
	expLen := readLength(input, LengthFieldSize)
	modLen := readLength(input, 2*LengthFieldSize)

	rest := input[minInt(len(input), 3*LengthFieldSize):]
	return ParsedInput{
		Base: sliceOrZero(rest, 0, baseLen),
		Exp:  sliceOrZero(rest, baseLen, expLen),
		Mod:  sliceOrZero(rest, baseLen+expLen, modLen),
	}
}

// readLength decodes one of the three 32-byte length words with
// uint256.Int, the fixed-width type this module uses at precompile
// boundaries for exactly-32-byte fields (the deeper bigint/montgomery
// engine below takes over once operands may run to hundreds of limbs).
func readLength(input []byte, offset int) int {
	field := sliceOrZero(input, offset, LengthFieldSize)
	v := new(uint256.Int).SetBytes(field)
	if !v.IsUint64() || v.Uint64() > 1<<24 {
		// Absurdly large declared lengths cannot be satisfied by any real
		// input; clamping avoids allocating on attacker-controlled length
		// fields further down the pipeline.
		return 1 << 24
	}
	return int(v.Uint64())
}

func sliceOrZero(b []byte, start, length int) []byte {
	if start >= len(b) {
		return make([]byte, length)
	}
	end := start + length
	if end > len(b) {
		end = len(b)
	}
	out := make([]byte, length)
	copy(out, b[start:end])
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Exec computes base^exp mod mod and renders the result left-padded to
// len(mod) bytes, the full MODEXP evaluation.
func Exec(in ParsedInput) []byte {
	modLen := len(in.Mod)
	if modLen == 0 {
		return nil
	}

	n := limbWidth(modLen)
	mod := bigint.New(n).SetBytes(in.Mod)

	if mod.IsZero() {
		return make([]byte, modLen)
	}

	base := bigint.Mod(bigint.New(limbWidth(len(in.Base))).SetBytes(in.Base), mod)
	exp := bigint.New(limbWidth(len(in.Exp))).SetBytes(in.Exp)

	var result bigint.Uint
	if mod[0]&1 == 1 {
		result = montgomeryPow(base, exp, mod)
	} else {
		result = genericPow(base, exp, mod)
	}
	return result.Bytes(modLen)
}

func limbWidth(byteLen int) int {
	n := (byteLen + 7) / 8
	if n == 0 {
		n = 1
	}
	return n
}

// montgomeryPow computes base^exp mod mod for an odd modulus via the
// Montgomery ladder: base is lifted into Montgomery form once, every
// squaring and multiplication runs through the CIOS multiplier, and the
// accumulator is lowered back at the end.
func montgomeryPow(base, exp, mod bigint.Uint) bigint.Uint {
	a := montgomery.New(mod)
	b := a.ToMont(bigint.Mod(base, mod))
	one := bigint.New(len(mod))
	one[0] = 1
	acc := a.ToMont(one)

	for i := exp.BitLen() - 1; i >= 0; i-- {
		acc = a.Mul(acc, acc)
		if exp.Bit(i) == 1 {
			acc = a.Mul(acc, b)
		}
	}
	return a.FromMont(acc)
}

// genericPow computes base^exp mod mod for an arbitrary modulus (used for
// even moduli, where the Montgomery ladder does not apply) via left-to-
// right square-and-multiply, reducing the double-width product with
// bigint.Mod after every step.
func genericPow(base, exp, mod bigint.Uint) bigint.Uint {
	n := len(mod)
	b := bigint.Mod(padTo(base, n), mod)
	one := bigint.New(n)
	one[0] = 1
	if mod.Equal(one) {
		return bigint.New(n)
	}
	result := one.Clone()

	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = mulMod(result, result, mod)
		if exp.Bit(i) == 1 {
			result = mulMod(result, b, mod)
		}
	}
	return result
}

func mulMod(x, y, mod bigint.Uint) bigint.Uint {
	n := len(mod)
	wide := bigint.New(2 * n)
	bigint.MulWide(wide, padTo(x, n), padTo(y, n))
	return bigint.Mod(wide, mod)
}

func padTo(x bigint.Uint, n int) bigint.Uint {
	if len(x) == n {
		return x
	}
	z := bigint.New(n)
	copy(z, x)
	return z
}
