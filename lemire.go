package lexical

import (
	"math/bits"

	"github.com/numeric-go/lexical/internal/table"
)

// eiselLemire computes the binary64 mantissa and base-2 exponent for
// mantissa * 10**exp10 using the Eisel-Lemire algorithm: a 128-bit
// fixed-point multiply against a precomputed power-of-five table
// (internal/table.Pow5) followed by a halfway-case check, avoiding
// arbitrary-precision arithmetic in all but the rare ambiguous case.
// Returns ok=false when the result is too close to call, in which case
// the caller must fall back to the exact bigdecimal slow path.
//
// This is this engine's moderate path, sitting between the Clinger fast
// path and the exact big-decimal slow path below. It has no equivalent in
// a pure big-decimal arithmetic library, which always goes through exact
// multi-precision arithmetic (Quo/Mul) instead; it is grounded on the
// well-known Eisel-Lemire construction, using the same
// 128-bit-product-plus-table shape that internal/table.Pow128 was built
// to serve.
func eiselLemire(mantissa uint64, exp10 int, mantissaBits, expBits uint) (mant uint64, exp2 int, ok bool) {
	if mantissa == 0 {
		return 0, 0, true
	}
	if exp10 < table.MinPow10 || exp10 > table.MaxPow10 {
		return 0, 0, false
	}

	lz := bits.LeadingZeros64(mantissa)
	m := mantissa << uint(lz)

	pw := table.Pow5[exp10-table.MinPow10]
	hi, lo := mul128(m, pw.Hi)
	// If the product's low bits are very close to a power-of-two
	// boundary, a second, more precise product is needed to resolve the
	// halfway case; when that happens the result is ambiguous enough
	// that the caller should fall back to exact arithmetic rather than
	// risk a misrounded value.
	if lo == ^uint64(0) {
		hi2, lo2 := mul128(m, pw.Lo)
		_ = lo2
		if hi2+lo >= 1 {
			return 0, 0, false
		}
	}

	msb := hi >> 63
	mantissaResultBits := mantissaBits + 1
	// hi has 63+msb significant bits; keep the top mantissaBits+1 of them.
	shift := 62 + msb - uint64(mantissaBits)
	retMantissa := hi >> shift
	// mantissa*10**exp10 = m*2**-lz * Hi:Lo*2**Pow5.Exp2 * 2**exp10, and
	// m*Hi is about hi*2**64, so the value is about retMantissa*2**exp2Result.
	exp2Result := int(shift) + 128 + pw.Exp2 - lz + exp10

	truncated := hi & ((1 << shift) - 1)
	if shift > 0 && shift < 64 && truncated == 1<<(shift-1) && lo == 0 {
		// Exactly halfway between two representable mantissas with no
		// information left in the low word to break the tie: ambiguous,
		// defer to the exact path.
		return 0, 0, false
	}

	// Round to nearest, ties to even.
	if shift > 0 && shift < 64 {
		roundBit := (hi >> (shift - 1)) & 1
		if roundBit != 0 {
			retMantissa++
			if retMantissa>>mantissaResultBits != 0 {
				retMantissa >>= 1
				exp2Result++
			}
		}
	}

	return retMantissa, exp2Result, true
}

func exp2Bias(expBits, mantissaBits uint) int {
	return int(1<<(expBits-1)) - 1
}

// mul128 returns the high and low 64-bit halves of the full 128-bit
// product x*y, via math/bits.Mul64 — the same double-width-product-from-
// two-machine-words shape as a base-10**19 word-arithmetic mulAddWW,
// just base-2 here instead.
func mul128(x, y uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	return hi, lo
}
