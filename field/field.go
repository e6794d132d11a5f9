// Package field implements prime-field arithmetic over the fixed 252-bit
// STARK prime p = 2^251 + 17*2^192 + 1, internally in Montgomery form.
// External callers only ever see the reduced form; Montgomery form is an
// implementation detail reachable through an explicit accessor, per the
// core's layering contract (field depends only on bigint).
package field

import "starkcore.dev/core/bigint"

// FieldElement is an element of Fp, stored internally as x*R mod p with
// R = 2^256 (Montgomery form). Invariant: the internal limbs are < p.
type FieldElement struct {
	m bigint.BigInt256
}

// p is the field modulus 2^251 + 17*2^192 + 1.
var p = bigint.FromLimbs(
	0x0000000000000001,
	0x0000000000000000,
	0x0000000000000000,
	0x0800000000000011,
)

// r2 is R^2 mod p, used to convert a reduced value into Montgomery form via
// MontMul(x, r2) = x*R^2*R^-1 = x*R mod p.
var r2 = bigint.FromLimbs(
	0xfffffd737e000401,
	0x00000001330fffff,
	0xffffffffff6f8000,
	0x07ffd4ab5e008810,
)

// pInvNeg is -p^-1 mod 2^256, the Montgomery reduction constant.
var pInvNeg = bigint.FromLimbs(
	0xffffffffffffffff,
	0xffffffffffffffff,
	0xffffffffffffffff,
	0x0800000000000010,
)

// montOne is R mod p, the Montgomery-form representation of the field element 1.
var montOne = bigint.FromLimbs(
	0xffffffffffffffe1,
	0xffffffffffffffff,
	0xffffffffffffffff,
	0x07fffffffffffdf0,
)

// ZERO and ONE are the additive and multiplicative identities.
var (
	ZERO = FieldElement{m: bigint.Zero}
	ONE  = FieldElement{m: montOne}
)

// Modulus returns the field prime p.
func Modulus() bigint.BigInt256 { return p }

// montMul computes a*b*R^-1 mod p via separated-operand Montgomery
// reduction (REDC), built directly on the bigint primitives rather than the
// generic MulMod: the Montgomery constants above make this faster than a
// general-modulus reduction and keep the conversion-in/out path uniform
// with every other field multiply.
func montMul(a, b bigint.BigInt256) bigint.BigInt256 {
	tLo, tHi := bigint.MulFull(a, b)
	mLo := tLo.Mul(pInvNeg) // m = (t mod R) * pInvNeg mod R
	uLo, uHi := bigint.MulFull(mLo, p)

	sumLo, carry := addWithCarry(tLo, uLo)
	sumHi := tHi.Add(uHi)
	if carry {
		sumHi = sumHi.Add(bigint.One)
	}
	// sumLo must be exactly zero by construction of m (t + m*p ≡ 0 mod R);
	// the result is sumHi, reduced once if it overflowed p.
	_ = sumLo
	if sumHi.Cmp(p) >= 0 {
		sumHi = sumHi.Sub(p)
	}
	return sumHi
}

func addWithCarry(a, b bigint.BigInt256) (bigint.BigInt256, bool) {
	sum := a.Add(b)
	// carry occurred iff the wrapped sum is smaller than either operand
	return sum, sum.Cmp(a) < 0
}

// FromBigInt reduces any BigInt256 into the field, converting it into
// Montgomery form.
func FromBigInt(v bigint.BigInt256) FieldElement {
	reduced, ok := bigint.Mod(v, p)
	if !ok {
		reduced = v // unreachable: p is a nonzero compile-time constant
	}
	return FieldElement{m: montMul(reduced, r2)}
}

// ToBigInt converts back to the external reduced form, stripping the
// Montgomery factor.
func (a FieldElement) ToBigInt() bigint.BigInt256 {
	return montMul(a.m, bigint.One)
}

// AsMontgomery returns the raw internal Montgomery-form representation.
// Montgomery form is not part of the public contract of this package except
// through this explicit accessor — see the claim serialization format in
// the transcript package, which embeds this representation directly.
func (a FieldElement) AsMontgomery() bigint.BigInt256 { return a.m }

// FromMontgomery builds a FieldElement directly from an already-Montgomery
// value, performing no conversion. The caller is responsible for the value
// being < p and actually representing x*R mod p for some x.
func FromMontgomery(raw bigint.BigInt256) FieldElement { return FieldElement{m: raw} }

// IsZero reports whether the element is the additive identity.
func (a FieldElement) IsZero() bool { return a.m.IsZero() }

// Equal reports value equality in Fp.
func (a FieldElement) Equal(b FieldElement) bool { return a.m.Equal(b.m) }

// Neg returns -a mod p.
func (a FieldElement) Neg() FieldElement {
	if a.m.IsZero() {
		return a
	}
	return FieldElement{m: p.Sub(a.m)}
}

// Add returns a+b mod p. Both operands are < p < 2^252, so the sum never
// wraps 2^256; a single conditional subtraction suffices to reduce it.
func (a FieldElement) Add(b FieldElement) FieldElement {
	sum := a.m.Add(b.m)
	if sum.Cmp(p) >= 0 {
		sum = sum.Sub(p)
	}
	return FieldElement{m: sum}
}

// Sub returns a-b mod p.
func (a FieldElement) Sub(b FieldElement) FieldElement {
	if a.m.Cmp(b.m) >= 0 {
		return FieldElement{m: a.m.Sub(b.m)}
	}
	return FieldElement{m: p.Sub(b.m.Sub(a.m))}
}

// Mul returns a*b mod p.
func (a FieldElement) Mul(b FieldElement) FieldElement {
	return FieldElement{m: montMul(a.m, b.m)}
}

// Sqr returns a^2 mod p.
func (a FieldElement) Sqr() FieldElement { return a.Mul(a) }

// Double returns 2a mod p.
func (a FieldElement) Double() FieldElement { return a.Add(a) }

// Triple returns 3a mod p.
func (a FieldElement) Triple() FieldElement { return a.Add(a).Add(a) }

// Halve returns a/2 mod p. p is odd, so every element has a unique half:
// if a is even in its reduced form, halve directly; otherwise add p (making
// the sum even) before halving.
func (a FieldElement) Halve() FieldElement {
	reduced := a.ToBigInt()
	if reduced.IsEven() {
		return FromBigInt(reduced.Rsh(1))
	}
	return FromBigInt(reduced.Add(p).Rsh(1))
}

// Inv returns a's multiplicative inverse, or (ZERO, false) if a is zero.
func (a FieldElement) Inv() (FieldElement, bool) {
	if a.m.IsZero() {
		return ZERO, false
	}
	reduced := a.ToBigInt()
	invReduced, ok := bigint.InvMod(reduced, p)
	if !ok {
		return ZERO, false // unreachable: p is prime, every nonzero element is invertible
	}
	return FromBigInt(invReduced), true
}

// Div returns a/b, or (ZERO, false) if b is zero.
func (a FieldElement) Div(b FieldElement) (FieldElement, bool) {
	invB, ok := b.Inv()
	if !ok {
		return ZERO, false
	}
	return a.Mul(invB), true
}

// String renders the element in its external reduced hex form.
func (a FieldElement) String() string { return a.ToBigInt().String() }
