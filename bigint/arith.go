package bigint

import "math/bits"

// Add returns a+b, wrapping modulo 2^256. Arithmetic ops never signal
// overflow; only decimal parsing does (see parse.go).
func (a BigInt256) Add(b BigInt256) BigInt256 {
	sum, _ := addCarry(a, b)
	return sum
}

// addCarry returns a+b along with the carry out of the top limb. Used
// internally by Add and by decimal-string overflow detection.
func addCarry(a, b BigInt256) (BigInt256, bool) {
	var out BigInt256
	var c uint64
	out.c0, c = bits.Add64(a.c0, b.c0, 0)
	out.c1, c = bits.Add64(a.c1, b.c1, c)
	out.c2, c = bits.Add64(a.c2, b.c2, c)
	out.c3, c = bits.Add64(a.c3, b.c3, c)
	return out, c != 0
}

// Sub returns a-b, wrapping modulo 2^256.
func (a BigInt256) Sub(b BigInt256) BigInt256 {
	var out BigInt256
	var brw uint64
	out.c0, brw = bits.Sub64(a.c0, b.c0, 0)
	out.c1, brw = bits.Sub64(a.c1, b.c1, brw)
	out.c2, brw = bits.Sub64(a.c2, b.c2, brw)
	out.c3, _ = bits.Sub64(a.c3, b.c3, brw)
	return out
}

// mac computes acc + a*b + carry as a 128-bit value, returning (low, high).
// This is the multiply-accumulate primitive every schoolbook routine below
// is built from.
func mac(acc, a, b, carry uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	var c0, c1 uint64
	lo, c0 = bits.Add64(lo, acc, 0)
	lo, c1 = bits.Add64(lo, carry, 0)
	hi += c0 + c1
	return lo, hi
}

// Mul returns a*b truncated to the low 256 bits.
func (a BigInt256) Mul(b BigInt256) BigInt256 {
	al, bl := a.Limbs(), b.Limbs()
	var t [4]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j+i < 4; j++ {
			lo, hi := mac(t[i+j], al[i], bl[j], carry)
			t[i+j] = lo
			carry = hi
		}
	}
	return FromLimbs(t[0], t[1], t[2], t[3])
}

// MulFull returns the full 512-bit product of a and b as (low, high) halves.
func MulFull(a, b BigInt256) (lo, hi BigInt256) {
	al, bl := a.Limbs(), b.Limbs()
	var t [8]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			v, h := mac(t[i+j], al[i], bl[j], carry)
			t[i+j] = v
			carry = h
		}
		t[i+4] += carry
	}
	return FromLimbs(t[0], t[1], t[2], t[3]), FromLimbs(t[4], t[5], t[6], t[7])
}

// SqrFull returns the full 512-bit square of a as (low, high) halves,
// computing the off-diagonal limb products once and doubling them rather
// than recomputing each symmetric pair.
func SqrFull(a BigInt256) (lo, hi BigInt256) {
	al := a.Limbs()
	var t [8]uint64

	// off-diagonal terms a[i]*a[j], i<j
	for i := 0; i < 3; i++ {
		var carry uint64
		for j := i + 1; j < 4; j++ {
			v, h := mac(t[i+j], al[i], al[j], carry)
			t[i+j] = v
			carry = h
		}
		t[i+4] += carry
	}

	// double the off-diagonal sum
	var shiftCarry uint64
	for i := 0; i < 8; i++ {
		v := t[i]
		t[i] = v<<1 | shiftCarry
		shiftCarry = v >> 63
	}

	// add the diagonal terms a[i]^2 at limb position 2i
	for i := 0; i < 4; i++ {
		h, l := bits.Mul64(al[i], al[i])
		addWide(&t, 2*i, l, h)
	}

	return FromLimbs(t[0], t[1], t[2], t[3]), FromLimbs(t[4], t[5], t[6], t[7])
}

// addWide adds the 128-bit value (lo at idx, hi at idx+1) into t, propagating
// carry past idx+1 as far as needed.
func addWide(t *[8]uint64, idx int, lo, hi uint64) {
	s, c := bits.Add64(t[idx], lo, 0)
	t[idx] = s
	i := idx + 1
	val := hi
	for (val != 0 || c != 0) && i < len(t) {
		s, c2 := bits.Add64(t[i], val, c)
		t[i] = s
		c = c2
		val = 0
		i++
	}
}

// Lsh returns a shifted left by n bits (0..255), wrapping bits off the top.
func (a BigInt256) Lsh(n uint) BigInt256 {
	if n == 0 {
		return a
	}
	if n >= 256 {
		return Zero
	}
	limbShift := n / 64
	bitShift := n % 64
	src := a.Limbs()
	var shifted [4]uint64
	for i := 3; i >= int(limbShift); i-- {
		shifted[i] = src[i-int(limbShift)]
	}
	if bitShift == 0 {
		return FromLimbs(shifted[0], shifted[1], shifted[2], shifted[3])
	}
	var out [4]uint64
	for i := 3; i >= 0; i-- {
		out[i] = shifted[i] << bitShift
		if i > 0 {
			out[i] |= shifted[i-1] >> (64 - bitShift)
		}
	}
	return FromLimbs(out[0], out[1], out[2], out[3])
}

// Rsh returns a shifted right by n bits (0..255), shifting in zeros.
func (a BigInt256) Rsh(n uint) BigInt256 {
	if n == 0 {
		return a
	}
	if n >= 256 {
		return Zero
	}
	limbShift := n / 64
	bitShift := n % 64
	src := a.Limbs()
	var shifted [4]uint64
	for i := 0; i < 4-int(limbShift); i++ {
		shifted[i] = src[i+int(limbShift)]
	}
	if bitShift == 0 {
		return FromLimbs(shifted[0], shifted[1], shifted[2], shifted[3])
	}
	var out [4]uint64
	for i := 0; i < 4; i++ {
		out[i] = shifted[i] >> bitShift
		if i < 3 {
			out[i] |= shifted[i+1] << (64 - bitShift)
		}
	}
	return FromLimbs(out[0], out[1], out[2], out[3])
}
