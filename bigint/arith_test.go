package bigint

import (
	"testing"

	"starkcore.dev/core/internal/fuzzseed"
)

func TestAddSubWrap(t *testing.T) {
	if !Max.Add(One).Equal(Zero) {
		t.Error("Max+1 should wrap to Zero")
	}
	if !Zero.Sub(One).Equal(Max) {
		t.Error("0-1 should wrap to Max")
	}
}

func TestShiftScenarioSC1(t *testing.T) {
	in := FromLimbs(0x9050e39a8638969f, 0xd7cc21c004c428d1, 0x9026e34ec8fb83ac, 0x03d4679634263e15)
	want := FromLimbs(0xcd431c4b4f800000, 0xe002621468c82871, 0xa7647dc1d66be610, 0xcb1a131f0ac81371)
	got := in.Lsh(23)
	if !got.Equal(want) {
		t.Errorf("shift left 23 = %s, want %s", got, want)
	}
}

func TestShiftRoundTrip(t *testing.T) {
	s := fuzzseed.New(1)
	for i := 0; i < 64; i++ {
		a := randomBigInt(s)
		n := uint(s.Uint64() % 255)
		got := a.Lsh(n).Rsh(n)
		mask := Max.Rsh(n) // low (256-n) bits set
		want := a.And(mask)
		if !got.Equal(want) {
			t.Fatalf("shift round trip n=%d: got %s want %s", n, got, want)
		}
	}
}

func TestMulFullLowBitsMatchMul(t *testing.T) {
	s := fuzzseed.New(2)
	for i := 0; i < 128; i++ {
		a := randomBigInt(s)
		b := randomBigInt(s)
		lo, _ := MulFull(a, b)
		if !lo.Equal(a.Mul(b)) {
			t.Fatalf("mul/mul_full mismatch for a=%s b=%s", a, b)
		}
	}
}

func TestSqrFullMatchesMulFull(t *testing.T) {
	s := fuzzseed.New(3)
	for i := 0; i < 128; i++ {
		a := randomBigInt(s)
		slo, shi := SqrFull(a)
		mlo, mhi := MulFull(a, a)
		if !slo.Equal(mlo) || !shi.Equal(mhi) {
			t.Fatalf("sqr_full(%s) = (%s,%s), want (%s,%s)", a, slo, shi, mlo, mhi)
		}
	}
}

func TestMulFullKnownProduct(t *testing.T) {
	a := FromUint64(0xFFFFFFFFFFFFFFFF)
	lo, hi := MulFull(a, a)
	// (2^64-1)^2 = 2^128 - 2^65 + 1, entirely within the low 256-bit half.
	want := FromLimbs(1, 0xFFFFFFFFFFFFFFFE, 0, 0)
	if !hi.IsZero() {
		t.Errorf("hi = %s, want 0", hi)
	}
	if !lo.Equal(want) {
		t.Errorf("lo = %s, want %s", lo, want)
	}
}

// randomBigInt draws a deterministic pseudo-random BigInt256 from a fuzzseed stream.
func randomBigInt(s *fuzzseed.Stream) BigInt256 {
	return FromLimbs(s.Uint64(), s.Uint64(), s.Uint64(), s.Uint64())
}
