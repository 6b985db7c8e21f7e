package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetBytesAndBytesRoundTrip(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a}
	x := New(2).SetBytes(buf)
	require.Equal(t, buf, x.Bytes(10))
}

func TestSetBytesTruncatesHighOrder(t *testing.T) {
	buf := make([]byte, 16)
	buf[0] = 0xff // dropped: only the low 8 bytes fit in one limb
	buf[15] = 0x01
	x := New(1).SetBytes(buf)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, x.Bytes(8))
}

func TestAddCarrySubBorrowRoundTrip(t *testing.T) {
	a := New(2).SetBytes([]byte{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0})
	b := New(2).SetBytes([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5})
	sum := New(2)
	carry := sum.AddCarry(a, b)
	require.Zero(t, carry)

	diff := New(2)
	borrow := diff.SubBorrow(sum, b)
	require.Zero(t, borrow)
	require.True(t, diff.Equal(a))
}

func TestCmp(t *testing.T) {
	a := New(2).SetBytes([]byte{0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0})
	b := New(2).SetBytes([]byte{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0})
	require.Equal(t, 1, a.Cmp(b))
	require.Equal(t, -1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(a))
}

func TestMulWideMatchesNativeProduct(t *testing.T) {
	x := New(1)
	x[0] = 12345
	y := New(1)
	y[0] = 6789
	wide := New(2)
	MulWide(wide, x, y)
	got := wide[0] | 0 // low limb is the full product since it fits in 64 bits
	require.Equal(t, uint64(12345*6789), got)
	require.Zero(t, wide[1])
}

func TestLshRshRoundTrip(t *testing.T) {
	x := New(2)
	x[0] = 0x0102030405060708
	shifted := New(2)
	shifted.Lsh(x, 13)
	back := New(2)
	back.Rsh(shifted, 13)
	require.True(t, back.Equal(x))
}

func TestBitLenAndBit(t *testing.T) {
	x := New(2)
	x[0] = 1 << 5
	require.Equal(t, 6, x.BitLen())
	require.Equal(t, uint(1), x.Bit(5))
	require.Equal(t, uint(0), x.Bit(6))
}

func TestShrOne(t *testing.T) {
	x := New(1)
	x[0] = 3
	carry := x.ShrOne()
	require.Equal(t, uint64(1), carry)
	require.Equal(t, uint64(1), x[0])
}

func TestModReduceKnownValues(t *testing.T) {
	mod := New(1)
	mod[0] = 7
	value := New(1)
	value[0] = 23
	rem := Mod(value, mod)
	require.Equal(t, uint64(2), rem[0])
}

func TestModWiderThanModulus(t *testing.T) {
	mod := New(1)
	mod[0] = 1000000007
	value := New(2)
	value[0] = 0xffffffffffffffff
	value[1] = 0xffffffffffffffff
	rem := Mod(value, mod)
	require.Less(t, rem[0], mod[0])
}
