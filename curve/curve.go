// Package curve implements the short-Weierstrass curve group y² = x³ +
// α·x + β over the field package's prime, with an affine public surface and
// a Jacobian projective accumulator used internally for chains of additions.
// Scalar multiplication is a plain MSB-to-LSB double-and-add: it is not
// constant-time, and callers needing side-channel resistance must
// reimplement the loop themselves.
package curve

import (
	"starkcore.dev/core/bigint"
	"starkcore.dev/core/field"
)

// alpha and beta are the fixed curve parameters.
var (
	alpha = field.ONE
	beta  = field.FromBigInt(bigint.FromLimbs(
		0xf4cdfcb99cee9e89,
		0x609ad26c15c915c1,
		0x150e596d72f7a8c5,
		0x06f21413efbe40de,
	))
)

// Gen is the fixed base point used for scalar multiplication throughout the
// higher-level system.
var Gen = NewAffine(
	field.FromBigInt(bigint.FromLimbs(0x3d723d8bc943cfca, 0xdeacfd9b0d1819e0, 0x7beced415a40f0c7, 0x01ef15c18599971b)),
	field.FromBigInt(bigint.FromLimbs(0x2873000c36e8dc1f, 0xde53ecd11abe43a3, 0xb7be4801df46ec62, 0x005668060aa49730)),
)

// Affine is a curve point in (x, y) coordinates, or the distinguished
// neutral element Zero. Reading the coordinates of Zero is a programming
// error.
type Affine struct {
	x, y     field.FieldElement
	infinity bool
}

// AffineZero is the neutral element / point at infinity.
var AffineZero = Affine{infinity: true}

// NewAffine builds a non-neutral point. The caller is responsible for it
// satisfying the curve equation; use OnCurve to check.
func NewAffine(x, y field.FieldElement) Affine { return Affine{x: x, y: y} }

// IsZero reports whether this is the neutral element.
func (a Affine) IsZero() bool { return a.infinity }

// X returns the x-coordinate. Panics on the neutral element.
func (a Affine) X() field.FieldElement {
	if a.infinity {
		panic("curve: Zero has no coordinates")
	}
	return a.x
}

// Y returns the y-coordinate. Panics on the neutral element.
func (a Affine) Y() field.FieldElement {
	if a.infinity {
		panic("curve: Zero has no coordinates")
	}
	return a.y
}

// Neg flips the y-coordinate; Zero negates to itself.
func (a Affine) Neg() Affine {
	if a.infinity {
		return a
	}
	return Affine{x: a.x, y: a.y.Neg()}
}

// Equal reports point equality.
func (a Affine) Equal(b Affine) bool {
	if a.infinity || b.infinity {
		return a.infinity == b.infinity
	}
	return a.x.Equal(b.x) && a.y.Equal(b.y)
}

// OnCurve reports whether the point satisfies y² = x³ + α·x + β. Zero is
// trivially on-curve.
func (a Affine) OnCurve() bool {
	if a.infinity {
		return true
	}
	lhs := a.y.Sqr()
	rhs := a.x.Sqr().Mul(a.x).Add(alpha.Mul(a.x)).Add(beta)
	return lhs.Equal(rhs)
}

// Jacobian is the projective accumulator {x, y, z} representing the affine
// point (x/z², y/z³) when z != 0, and the neutral element when z = 0. The
// canonical neutral representation is {1, 1, 0}.
type Jacobian struct {
	x, y, z field.FieldElement
}

// JacobianZero is the neutral element in its canonical {1,1,0} encoding.
var JacobianZero = Jacobian{x: field.ONE, y: field.ONE, z: field.ZERO}

// FromAffine lifts an affine point into Jacobian coordinates (z=1); Zero
// maps to the canonical Jacobian neutral.
func FromAffine(a Affine) Jacobian {
	if a.infinity {
		return JacobianZero
	}
	return Jacobian{x: a.x, y: a.y, z: field.ONE}
}

// IsZero reports whether this is the neutral element (z=0).
func (j Jacobian) IsZero() bool { return j.z.IsZero() }

// ToAffine converts back to affine coordinates, inverting z.
func (j Jacobian) ToAffine() Affine {
	if j.IsZero() {
		return AffineZero
	}
	zInv, _ := j.z.Inv() // z != 0 here, inverse always exists
	zInv2 := zInv.Sqr()
	zInv3 := zInv2.Mul(zInv)
	return Affine{x: j.x.Mul(zInv2), y: j.y.Mul(zInv3)}
}

// Neg flips the y-coordinate.
func (j Jacobian) Neg() Jacobian { return Jacobian{x: j.x, y: j.y.Neg(), z: j.z} }

// Equal reports whether the two values represent the same affine point,
// via cross-multiplied coordinate comparison rather than inverting either z.
func (j Jacobian) Equal(o Jacobian) bool {
	if j.IsZero() || o.IsZero() {
		return j.IsZero() == o.IsZero()
	}
	z1z1 := j.z.Sqr()
	z2z2 := o.z.Sqr()
	u1 := j.x.Mul(z2z2)
	u2 := o.x.Mul(z1z1)
	if !u1.Equal(u2) {
		return false
	}
	s1 := j.y.Mul(o.z).Mul(z2z2)
	s2 := o.y.Mul(j.z).Mul(z1z1)
	return s1.Equal(s2)
}

// Double implements dbl-2007-bl. If y = 0 the result is the neutral element.
func (j Jacobian) Double() Jacobian {
	if j.IsZero() || j.y.IsZero() {
		return JacobianZero
	}
	xx := j.x.Sqr()
	yy := j.y.Sqr()
	yyyy := yy.Sqr()
	zz := j.z.Sqr()

	s := j.x.Add(yy).Sqr().Sub(xx).Sub(yyyy).Double()
	m := xx.Triple().Add(alpha.Mul(zz.Sqr()))
	zp := j.y.Add(j.z).Sqr().Sub(yy).Sub(zz)
	xp := m.Sqr().Sub(s.Double())
	yp := m.Mul(s.Sub(xp)).Sub(yyyy.Double().Double().Double())

	return Jacobian{x: xp, y: yp, z: zp}
}

// Add implements add-2007-bl, Jacobian+Jacobian addition.
func (j Jacobian) Add(o Jacobian) Jacobian {
	if o.IsZero() {
		return j
	}
	if j.IsZero() {
		return o
	}

	z1z1 := j.z.Sqr()
	z2z2 := o.z.Sqr()
	u1 := j.x.Mul(z2z2)
	u2 := o.x.Mul(z1z1)
	s1 := j.y.Mul(o.z).Mul(z2z2)
	s2 := o.y.Mul(j.z).Mul(z1z1)

	if u1.Equal(u2) {
		if s1.Equal(s2) {
			return j.Double()
		}
		return JacobianZero
	}

	h := u2.Sub(u1)
	i := h.Double().Sqr()
	jTerm := h.Mul(i)
	r := s2.Sub(s1).Double()
	v := u1.Mul(i)

	x3 := r.Sqr().Sub(jTerm).Sub(v.Double())
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(jTerm).Double())
	z3 := j.z.Add(o.z).Sqr().Sub(z1z1).Sub(z2z2).Mul(h)

	return Jacobian{x: x3, y: y3, z: z3}
}

// AddAffine implements madd-2007-bl, the mixed Jacobian+Affine addition
// that specializes add-2007-bl for z2=1.
func (j Jacobian) AddAffine(o Affine) Jacobian {
	if o.infinity {
		return j
	}
	if j.IsZero() {
		return FromAffine(o)
	}

	z1z1 := j.z.Sqr()
	u2 := o.x.Mul(z1z1)
	s2 := o.y.Mul(j.z).Mul(z1z1)

	if j.x.Equal(u2) {
		if j.y.Equal(s2) {
			return j.Double()
		}
		return JacobianZero
	}

	h := u2.Sub(j.x)
	hh := h.Sqr()
	i := hh.Double().Double()
	jTerm := h.Mul(i)
	r := s2.Sub(j.y).Double()
	v := j.x.Mul(i)

	x3 := r.Sqr().Sub(jTerm).Sub(v.Double())
	y3 := r.Mul(v.Sub(x3)).Sub(j.y.Mul(jTerm).Double())
	z3 := j.z.Add(h).Sqr().Sub(z1z1).Sub(hh)

	return Jacobian{x: x3, y: y3, z: z3}
}

// Mul computes k*p via MSB-to-LSB double-and-add, starting the accumulator
// at p itself and consuming bits below the top one. Returns the neutral
// element for k=0.
func Mul(p Affine, k bigint.BigInt256) Jacobian {
	if k.IsZero() {
		return JacobianZero
	}
	r := FromAffine(p)
	for i := k.Msb() - 1; i >= 0; i-- {
		r = r.Double()
		if k.Bit(i) {
			r = r.AddAffine(p)
		}
	}
	return r
}
