package bigint

// MulMod returns a*b mod m via a full 512-bit product followed by a
// multi-limb reduction. Returns ok=false for a zero modulus, the same
// contract DivRem uses rather than panicking.
func MulMod(a, b, m BigInt256) (BigInt256, bool) {
	lo, hi := MulFull(a, b)
	ml := trimLimbs(m.Limbs())
	if len(ml) == 0 {
		return Zero, false
	}
	wide := make([]uint64, 8)
	ll, hl := lo.Limbs(), hi.Limbs()
	copy(wide[0:4], ll[:])
	copy(wide[4:8], hl[:])

	if len(ml) == 1 {
		_, r := divRemSingleLimb(wide, ml[0])
		return FromUint64(r), true
	}
	_, r := divRemKnuth(wide, ml)
	return limbsToBig(r), true
}

// Pow returns a raised to the given exponent, truncated to 256 bits at each
// squaring. Returns ok=false for the 0^0 case, which this type leaves
// undefined rather than silently returning 1.
func (a BigInt256) Pow(exp uint64) (BigInt256, bool) {
	if exp == 0 && a.IsZero() {
		return Zero, false
	}
	result := One
	base := a
	e := exp
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return result, true
}

// InvMod256 computes a's multiplicative inverse modulo 2^256 via a
// Hensel-lifted Newton iteration: a 4-bit seed doubled to 8, 16, 32, 64, 128
// and finally 256 bits. Returns ok=false when a is even (no inverse exists).
func InvMod256(a BigInt256) (BigInt256, bool) {
	if a.IsEven() {
		return Zero, false
	}
	// (3*a) XOR 2 is the classical 4-bit-correct seed for a 2-adic inverse;
	// Newton doubling below only ever reads low-order bits of r, so seeding
	// with more (mostly garbage) bits than strictly necessary is harmless.
	r := FromUint64((3 * a.AsU64()) ^ 2)
	two := FromUint64(2)
	for i := 0; i < 6; i++ { // widths 8, 16, 32, 64, 128, 256
		r = r.Mul(two.Sub(a.Mul(r)))
	}
	return r, true
}

// sbig is a signed magnitude wrapper used only by InvMod's Bezout coefficient
// bookkeeping; BigInt256 itself stays unsigned.
type sbig struct {
	neg bool
	mag BigInt256
}

func sFromU(v BigInt256) sbig { return sbig{false, v} }

func (s sbig) isEven() bool { return s.mag.IsEven() }

func (s sbig) half() sbig { return sbig{s.neg, s.mag.Rsh(1)} }

func sAdd(a, b sbig) sbig {
	if a.neg == b.neg {
		return sbig{a.neg, a.mag.Add(b.mag)}
	}
	if a.mag.Cmp(b.mag) >= 0 {
		return sbig{a.neg, a.mag.Sub(b.mag)}
	}
	return sbig{b.neg, b.mag.Sub(a.mag)}
}

func sSub(a, b sbig) sbig { return sAdd(a, sbig{!b.neg, b.mag}) }

// mod reduces a signed value into [0, m).
func (s sbig) mod(m BigInt256) BigInt256 {
	_, rem, ok := DivRem(s.mag, m)
	if !ok {
		return Zero
	}
	if !s.neg || rem.IsZero() {
		return rem
	}
	return m.Sub(rem)
}

// InvMod computes n's multiplicative inverse modulo m for an arbitrary
// modulus via the binary extended GCD algorithm (Handbook of Applied
// Cryptography, Algorithm 14.61). Returns ok=false when gcd(n, m) != 1.
func InvMod(n, m BigInt256) (BigInt256, bool) {
	if m.IsZero() {
		return Zero, false
	}
	if m.Equal(One) {
		return Zero, true
	}
	y, ok := Mod(n, m)
	if !ok || y.IsZero() {
		return Zero, false
	}
	x := m

	// If both operands are even they share a factor of two and gcd != 1:
	// fail fast instead of running the loop with a spurious common factor.
	if x.IsEven() && y.IsEven() {
		return Zero, false
	}

	u, v := x, y
	A, B := sFromU(One), sFromU(Zero)
	C, D := sFromU(Zero), sFromU(One)

	for !u.IsZero() {
		for u.IsEven() {
			u = u.Rsh(1)
			if A.isEven() && B.isEven() {
				A, B = A.half(), B.half()
			} else {
				A = sAdd(A, sFromU(y)).half()
				B = sSub(B, sFromU(x)).half()
			}
		}
		for v.IsEven() {
			v = v.Rsh(1)
			if C.isEven() && D.isEven() {
				C, D = C.half(), D.half()
			} else {
				C = sAdd(C, sFromU(y)).half()
				D = sSub(D, sFromU(x)).half()
			}
		}
		if u.Cmp(v) >= 0 {
			u = u.Sub(v)
			A, B = sSub(A, C), sSub(B, D)
		} else {
			v = v.Sub(u)
			C, D = sSub(C, A), sSub(D, B)
		}
	}

	if !v.Equal(One) {
		return Zero, false
	}
	return D.mod(m), true
}
