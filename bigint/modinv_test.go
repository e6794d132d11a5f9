package bigint

import (
	"testing"

	"starkcore.dev/core/internal/fuzzseed"
)

func TestInvMod256EvenFails(t *testing.T) {
	if _, ok := InvMod256(FromUint64(4)); ok {
		t.Error("InvMod256 of an even value should fail")
	}
}

func TestInvMod256Property(t *testing.T) {
	s := fuzzseed.New(20)
	for i := 0; i < 128; i++ {
		a := randomBigInt(s)
		a.c0 |= 1 // force odd
		inv, ok := InvMod256(a)
		if !ok {
			t.Fatalf("InvMod256(%s) unexpectedly failed", a)
		}
		if !a.Mul(inv).Equal(One) {
			t.Fatalf("a*invmod256(a) = %s, want 1 (a=%s)", a.Mul(inv), a)
		}
	}
}

// TestInvMod256ScenarioSC2 fixes a 256-bit odd value and checks its 2^256
// inverse against an independently computed vector.
func TestInvMod256ScenarioSC2(t *testing.T) {
	a := FromLimbs(0xe0f1e2d3c4b5a697, 0xf13579bdf02468ac, 0xf0123456789abcde, 0x09c1f5e3a2b4d6e8)
	wantInv := FromLimbs(0x1b03e08a3f243927, 0x0091d53fdd6cecdc, 0xdbb52bd4780c408a, 0x48e8baace2c547f5)
	inv, ok := InvMod256(a)
	if !ok {
		t.Fatal("InvMod256 unexpectedly failed")
	}
	if !inv.Equal(wantInv) {
		t.Errorf("InvMod256(%s) = %s, want %s", a, inv, wantInv)
	}
	if !a.Mul(inv).Equal(One) {
		t.Errorf("a*inv = %s, want 1", a.Mul(inv))
	}
}

func TestInvModProperty(t *testing.T) {
	// secp256k1 order, prime, guaranteed coprime with anything not a multiple of it.
	m := FromLimbs(0xBFD25E8CD0364141, 0xBAAEDCE6AF48A03B, 0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFF)
	s := fuzzseed.New(30)
	for i := 0; i < 64; i++ {
		n := randomBigInt(s)
		if n.IsZero() {
			continue
		}
		inv, ok := InvMod(n, m)
		if !ok {
			continue // n might not be coprime with m in rare cases (n a multiple of m)
		}
		got, _ := MulMod(n, inv, m)
		if !got.Equal(One) {
			t.Fatalf("n*invmod(n,m) mod m = %s, want 1 (n=%s)", got, n)
		}
	}
}

func TestInvModNonInvertible(t *testing.T) {
	m := FromUint64(10)
	if _, ok := InvMod(FromUint64(4), m); ok {
		t.Error("gcd(4,10)=2, InvMod should fail")
	}
}

// TestMulModScenarioSC3 uses a 252-bit modulus close to the STARK prime.
func TestMulModScenarioSC3(t *testing.T) {
	p := FromLimbs(1, 0, 0, 0x0800000000000011)
	a := FromLimbs(0xf0123456789abcde, 0xf0123456789abcde, 0xf0123456789abcde, 0x0123456789abcde)
	b := FromLimbs(0x210fedcba9876543, 0x210fedcba9876543, 0x210fedcba9876543, 0x000fedcba9876543)
	want := FromLimbs(0x6d15a3544aa469a5, 0x28dd04625d5bc5f0, 0x259d98490521f4d2, 0x01f875d7eb36cbe6)
	got, ok := MulMod(a, b, p)
	if !ok {
		t.Fatal("MulMod unexpectedly failed")
	}
	if !got.Equal(want) {
		t.Errorf("MulMod = %s, want %s", got, want)
	}
}

func TestMulModZeroModulus(t *testing.T) {
	if _, ok := MulMod(One, One, Zero); ok {
		t.Error("MulMod with zero modulus should fail, not panic")
	}
}

func TestPowZeroZeroUndefined(t *testing.T) {
	if _, ok := Zero.Pow(0); ok {
		t.Error("0^0 should be undefined")
	}
}

func TestPowProperty(t *testing.T) {
	two := FromUint64(2)
	got, ok := two.Pow(10)
	if !ok || !got.Equal(FromUint64(1024)) {
		t.Errorf("2^10 = %s, want 1024", got)
	}
	// anything to the 0 is 1, except 0^0
	five := FromUint64(5)
	got, ok = five.Pow(0)
	if !ok || !got.Equal(One) {
		t.Errorf("5^0 = %s, want 1", got)
	}
}
