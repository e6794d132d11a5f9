package bigint

import "math/bits"

// DivRem computes (q, r) such that a = q*b + r, 0 <= r < b. Returns ok=false
// on a zero divisor instead of panicking, the same contract DivRemU64 and
// MulMod use.
func DivRem(a, b BigInt256) (q, r BigInt256, ok bool) {
	bl := trimLimbs(b.Limbs())
	if len(bl) == 0 {
		return Zero, Zero, false
	}
	al := a.Limbs()
	if len(bl) == 1 {
		qw, rw := divRemSingleLimb(al[:], bl[0])
		return limbsToBig(qw), FromUint64(rw), true
	}
	qw, rw := divRemKnuth(al[:], bl)
	return limbsToBig(qw), limbsToBig(rw), true
}

// DivRemU64 is the single-limb-divisor specialization of DivRem.
func DivRemU64(a BigInt256, b uint64) (q BigInt256, r uint64, ok bool) {
	if b == 0 {
		return Zero, 0, false
	}
	al := a.Limbs()
	qw, rw := divRemSingleLimb(al[:], b)
	return limbsToBig(qw), rw, true
}

// Mod returns a mod b, or (Zero, false) if b is zero.
func Mod(a, b BigInt256) (BigInt256, bool) {
	_, r, ok := DivRem(a, b)
	return r, ok
}

// trimLimbs drops leading (most significant) zero limbs, returning the
// shortest little-endian slice with a nonzero top limb, or an empty slice
// for zero.
func trimLimbs(l [4]uint64) []uint64 {
	n := 4
	for n > 0 && l[n-1] == 0 {
		n--
	}
	return l[:n]
}

func limbsToBig(l []uint64) BigInt256 {
	var out [4]uint64
	copy(out[:], l)
	return FromLimbs(out[0], out[1], out[2], out[3])
}

// divRemSingleLimb performs schoolbook long division by a single 64-bit
// divisor, one machine word at a time from the most significant limb down —
// the n-by-1 case, handled by hardware division rather than the general
// multi-limb Knuth kernel below.
func divRemSingleLimb(u []uint64, v uint64) (q []uint64, r uint64) {
	n := len(u)
	q = make([]uint64, n)
	var rem uint64
	for i := n - 1; i >= 0; i-- {
		if rem >= v {
			panic("bigint: invariant violated, remainder exceeds divisor")
		}
		var quo uint64
		quo, rem = bits.Div64(rem, u[i], v)
		q[i] = quo
	}
	return q, rem
}

// divRemKnuth implements Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) for a
// divisor of two or more limbs. u and v are little-endian limb slices with
// len(v) >= 2 and v's top limb nonzero. Returns the quotient (len(u)-len(v)+1
// limbs, unnormalized/untrimmed) and the remainder (len(v) limbs).
func divRemKnuth(uIn, v []uint64) (q, r []uint64) {
	n := len(v)
	m := len(uIn) - n
	if m < 0 {
		// dividend shorter than divisor: quotient 0, remainder = dividend
		rem := make([]uint64, n)
		copy(rem, uIn)
		return []uint64{0}, rem
	}

	s := uint(bits.LeadingZeros64(v[n-1]))

	vn := make([]uint64, n)
	shlLimbs(vn, v, s)

	un := make([]uint64, m+n+1)
	shlLimbsExtend(un, uIn, s)

	q = make([]uint64, m+1)

	for j := m; j >= 0; j-- {
		var qhat, rhat uint64
		top := un[j+n]
		if top == vn[n-1] {
			qhat = ^uint64(0)
			var carry uint64
			rhat, carry = bits.Add64(top, un[j+n-1], 0)
			if carry != 0 {
				rhat = ^uint64(0) // rhat "overflowed" base: treat as >= base, skip adjust loop
				goto multiplySubtract
			}
		} else {
			qhat, rhat = bits.Div64(top, un[j+n-1], vn[n-1])
		}

		for {
			hi, lo := bits.Mul64(qhat, vn[n-2])
			rhs1 := rhat
			rhs0 := un[j+n-2]
			if hi < rhs1 || (hi == rhs1 && lo <= rhs0) {
				break
			}
			qhat--
			newRhat, carry := bits.Add64(rhat, vn[n-1], 0)
			if carry != 0 {
				break
			}
			rhat = newRhat
		}

	multiplySubtract:
		var borrow, carry uint64
		for i := 0; i < n; i++ {
			hi, lo := bits.Mul64(qhat, vn[i])
			lo, c := bits.Add64(lo, carry, 0)
			hi += c
			t, b := bits.Sub64(un[j+i], lo, borrow)
			un[j+i] = t
			borrow = b
			carry = hi
		}
		t, b := bits.Sub64(un[j+n], carry, borrow)
		un[j+n] = t
		borrow = b

		if borrow != 0 {
			qhat--
			var addCarry uint64
			for i := 0; i < n; i++ {
				t, c := bits.Add64(un[j+i], vn[i], addCarry)
				un[j+i] = t
				addCarry = c
			}
			un[j+n], _ = bits.Add64(un[j+n], addCarry, 0)
		}

		q[j] = qhat
	}

	rem := make([]uint64, n)
	shrLimbs(rem, un[:n], s)
	return q, rem
}

// shlLimbs shifts src left by s bits (0 <= s < 64) into dst, both length n,
// discarding any carry out of the top limb.
func shlLimbs(dst, src []uint64, s uint) {
	if s == 0 {
		copy(dst, src)
		return
	}
	n := len(src)
	var carry uint64
	for i := 0; i < n; i++ {
		dst[i] = src[i]<<s | carry
		carry = src[i] >> (64 - s)
	}
}

// shlLimbsExtend shifts src (length n) left by s bits into dst (length n+1),
// placing the carry out of the top limb into dst's extra high limb.
func shlLimbsExtend(dst, src []uint64, s uint) {
	n := len(src)
	if s == 0 {
		copy(dst, src)
		dst[n] = 0
		return
	}
	var carry uint64
	for i := 0; i < n; i++ {
		dst[i] = src[i]<<s | carry
		carry = src[i] >> (64 - s)
	}
	dst[n] = carry
}

// shrLimbs shifts src right by s bits (0 <= s < 64) into dst, both length n.
func shrLimbs(dst, src []uint64, s uint) {
	if s == 0 {
		copy(dst, src)
		return
	}
	n := len(src)
	var carry uint64
	for i := n - 1; i >= 0; i-- {
		dst[i] = src[i]>>s | carry
		carry = src[i] << (64 - s)
	}
}
