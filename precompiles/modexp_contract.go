package precompiles

import (
	"github.com/pkg/errors"

	"github.com/erigontech/erigon-precompiles/modexp"
)

// modExpOperandLimit is EIP-7823's per-operand length bound: base,
// exponent, and modulus may each run to at most this many bytes.
const modExpOperandLimit = 1024

var (
	errModExpBaseLengthTooLarge     = errors.New("modexp: base length exceeds 1024 bytes")
	errModExpExponentLengthTooLarge = errors.New("modexp: exponent length exceeds 1024 bytes")
	errModExpModulusLengthTooLarge  = errors.New("modexp: modulus length exceeds 1024 bytes")
)

// bigModExp implements MODEXP at address 0x05.
type bigModExp struct{}

func (bigModExp) RequiredGas(input []byte) uint64 {
	parsed := modexp.ParseInput(input)
	words := uint64((len(parsed.Mod) + 7) / 8)
	multComplexity := words * words
	expBitLen := uint64(0)
	if v := bigEndianBitLen(parsed.Exp); v > 0 {
		expBitLen = v
	}
	iterCount := expBitLen
	if iterCount == 0 {
		iterCount = 1
	}
	gas := multComplexity * iterCount / 3
	if gas < 200 {
		gas = 200
	}
	return gas
}

func (bigModExp) Run(input []byte) ([]byte, error) {
	parsed := modexp.ParseInput(input)
	// EIP-7823: reject operands beyond the bound before they reach the
	// bigint/Montgomery engine, rather than let an attacker-declared
	// length field drive an unbounded allocation or exponentiation.
	if len(parsed.Base) > modExpOperandLimit {
		return nil, errModExpBaseLengthTooLarge
	}
	if len(parsed.Exp) > modExpOperandLimit {
		return nil, errModExpExponentLengthTooLarge
	}
	if len(parsed.Mod) > modExpOperandLimit {
		return nil, errModExpModulusLengthTooLarge
	}
	return modexp.Exec(parsed), nil
}

func bigEndianBitLen(b []byte) uint64 {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	if i == len(b) {
		return 0
	}
	top := b[i]
	bits := uint64(8 - leadingZerosByte(top))
	return bits + uint64(len(b)-i-1)*8
}

func leadingZerosByte(b byte) int {
	n := 0
	for i := 7; i >= 0; i-- {
		if (b>>uint(i))&1 == 1 {
			break
		}
		n++
	}
	return n
}
