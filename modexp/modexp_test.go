package modexp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func be32(v uint64) []byte {
	out := make([]byte, 32)
	for i := 0; i < 8; i++ {
		out[31-i] = byte(v >> (8 * i))
	}
	return out
}

func buildInput(base, exp, mod []byte) []byte {
	out := append([]byte{}, be32(uint64(len(base)))...)
	out = append(out, be32(uint64(len(exp)))...)
	out = append(out, be32(uint64(len(mod)))...)
	out = append(out, base...)
	out = append(out, exp...)
	out = append(out, mod...)
	return out
}

func TestExecOddModulusSmall(t *testing.T) {
	// 3^5 mod 7 = 243 mod 7 = 5
	in := ParseInput(buildInput([]byte{3}, []byte{5}, []byte{7}))
	got := Exec(in)
	require.Equal(t, []byte{5}, got)
}

func TestExecEvenModulusSmall(t *testing.T) {
	// 3^5 mod 8 = 243 mod 8 = 3
	in := ParseInput(buildInput([]byte{3}, []byte{5}, []byte{8}))
	got := Exec(in)
	require.Equal(t, []byte{3}, got)
}

func TestExecExponentZeroIsOne(t *testing.T) {
	in := ParseInput(buildInput([]byte{9}, []byte{}, []byte{100}))
	got := Exec(in)
	require.Equal(t, []byte{1}, got)
}

func TestExecOddModulusLargerExponent(t *testing.T) {
	// 4^3 mod 5 = 64 mod 5 = 4
	in := ParseInput(buildInput([]byte{4}, []byte{3}, []byte{5}))
	got := Exec(in)
	require.Equal(t, []byte{4}, got)
}

func TestExecModulusZeroReturnsZeroBytes(t *testing.T) {
	in := ParseInput(buildInput([]byte{9}, []byte{3}, []byte{0, 0}))
	got := Exec(in)
	require.Equal(t, []byte{0, 0}, got)
}

func TestParseInputZeroPadsShortTrailingInput(t *testing.T) {
	full := buildInput([]byte{1, 2}, []byte{3}, []byte{4, 5})
	truncated := full[:len(full)-1] // drop the last modulus byte
	in := ParseInput(truncated)
	require.Equal(t, []byte{4, 0}, in.Mod)
}

func TestExecResultLeftPaddedToModulusLength(t *testing.T) {
	in := ParseInput(buildInput([]byte{3}, []byte{5}, []byte{0, 7}))
	got := Exec(in)
	require.Equal(t, []byte{0, 5}, got)
}
