package bigint

// Mod computes value mod modulus by simple bit-serial long division,
// returning a remainder the same width as modulus. value may be wider than
// modulus. Used to fold R^2 down to R^2 mod mod at ModArith construction,
// by package modexp's reductions, and by field.FromBytesReduced.
func Mod(value, modulus Uint) Uint {
	n := len(modulus)
	rem := New(n)
	bitLen := value.BitLen()
	for i := bitLen - 1; i >= 0; i-- {
		top := rem[n-1] >> 63
		rem.shiftInBit(value.Bit(i))
		if top != 0 || rem.Cmp(modulus) >= 0 {
			rem.SubBorrow(rem, modulus)
		}
	}
	return rem
}

// shiftInBit shifts z left by one bit, bringing in bit as the new least
// significant bit. High-order overflow is dropped; Mod reads the top bit
// before the shift and, when it was set, subtracts modulus regardless of
// the truncated comparison.
func (z Uint) shiftInBit(bit uint) {
	var carry uint64 = uint64(bit)
	for i := range z {
		next := z[i] >> 63
		z[i] = z[i]<<1 | carry
		carry = next
	}
}
