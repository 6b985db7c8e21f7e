package field

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erigontech/erigon-precompiles/bigint"
	"github.com/erigontech/erigon-precompiles/montgomery"
)

func testField(t *testing.T) Field {
	t.Helper()
	mod := bigint.New(1)
	mod[0] = 1000000007
	return New(montgomery.New(mod))
}

func elemOf(f Field, v uint64) Elem {
	x := bigint.New(1)
	x[0] = v
	return f.FromBytes(x.Bytes(8))
}

func TestArithmeticConsistency(t *testing.T) {
	f := testField(t)
	a := elemOf(f, 123456)
	b := elemOf(f, 987654)

	require.True(t, a.Add(b).Sub(b).Equal(a))
	require.True(t, a.Mul(f.One()).Equal(a))
	require.True(t, a.Add(f.Zero()).Equal(a))
	require.True(t, a.Square().Equal(a.Mul(a)))
	require.True(t, a.Double().Equal(a.Add(a)))
}

func TestInvIsMultiplicativeInverse(t *testing.T) {
	f := testField(t)
	a := elemOf(f, 42)
	require.True(t, a.Mul(a.Inv()).Equal(f.One()))
}

func TestBytesRoundTrip(t *testing.T) {
	f := testField(t)
	a := elemOf(f, 555555)
	require.Equal(t, uint64(555555), bigint.New(1).SetBytes(a.Bytes(8))[0])
}

func TestPowMatchesRepeatedMul(t *testing.T) {
	f := testField(t)
	a := elemOf(f, 7)
	exp := bigint.New(1)
	exp[0] = 5
	got := a.Pow(exp)
	want := a.Mul(a).Mul(a).Mul(a).Mul(a)
	require.True(t, got.Equal(want))
}

func TestFromCanonicalMatchesFromBytes(t *testing.T) {
	f := testField(t)
	canon := bigint.New(1)
	canon[0] = 31337
	viaCanonical := f.FromCanonical(canon)
	viaBytes := f.FromBytes(canon.Bytes(8))
	require.True(t, viaCanonical.Equal(viaBytes))
}
