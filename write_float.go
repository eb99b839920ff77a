package lexical

import (
	"math"

	"github.com/numeric-go/lexical/internal/bigdecimal"
	"github.com/numeric-go/lexical/internal/table"
)

// WriteFloat writes v into out as the shortest decimal string that reads
// back to exactly v, in the style the format's exponent rules select
// ('e'/'E' scientific notation below -4 or above a threshold exponent,
// plain decimal otherwise — the same threshold Go's own strconv and
// Decimal.Format both use). out must be at least MaxFloatWidth(10)
// bytes long.
//
// Grounded directly on decimal_toa.go (fmtE/fmtF, the digit-placement
// logic once a decimal expansion and point position are known) combined
// with the shortest-digit-count algorithm from other_examples' ftoa.go
// (roundShortest), ported here onto internal/bigdecimal.Decimal instead
// of strconv's unexported decimal type or dec/Decimal, since neither of
// those is reachable from outside their own packages.
func WriteFloat[T Float](v T, opts WriteFloatOptions, out []byte) int {
	if err := opts.validate(); err != nil {
		panic(err)
	}
	var mantissaBits, expBits uint
	var bits uint64
	switch x := any(v).(type) {
	case float32:
		mantissaBits, expBits = layout32.mantissaBits, layout32.expBits
		bits = uint64(math.Float32bits(x))
	default:
		mantissaBits, expBits = layout64.mantissaBits, layout64.expBits
		bits = math.Float64bits(any(v).(float64))
	}

	neg := bits&(1<<(mantissaBits+expBits)) != 0
	expField := (bits >> mantissaBits) & (1<<expBits - 1)
	mantField := bits & (1<<mantissaBits - 1)

	n := 0
	if neg {
		out[0] = '-'
		n = 1
	}

	if expField == 1<<expBits-1 {
		if mantField != 0 {
			n += copy(out[n:], opts.nanString())
		} else {
			n += copy(out[n:], opts.infString())
		}
		return n
	}

	if expField == 0 && mantField == 0 {
		out[n] = '0'
		return n + 1
	}

	var mant uint64
	var exp2 int
	bias := int(1<<(expBits-1)) - 1
	if expField == 0 {
		mant = mantField
		exp2 = 1 - bias - int(mantissaBits)
	} else {
		mant = mantField | 1<<mantissaBits
		exp2 = int(expField) - bias - int(mantissaBits)
	}

	var d bigdecimal.Decimal
	d.Assign(mant)
	d.Shift(exp2)

	radix := opts.radix()
	if radix == 10 {
		roundShortest(&d, mant, exp2+int(mantissaBits), mantissaBits, -bias)
		return writeDecimal(&d, opts, out, n)
	}
	return writeRadix(&d, radix, mantissaBits, opts, out, n)
}

// writeDecimal renders d (already rounded to its shortest round-trip
// digit count by roundShortest) in base 10, in scientific or plain
// notation per the format's threshold, matching fmtE/fmtF
// (decimal_toa.go).
func writeDecimal(d *bigdecimal.Decimal, opts WriteFloatOptions, out []byte, n int) int {
	nd, dp := d.ND, d.DP
	expDecimal := dp - 1

	useExp := expDecimal < -4 || expDecimal >= 21
	if opts.Format.NoExponentNotation() {
		useExp = false
	}

	if useExp {
		out[n] = digitOrZero(d, 0)
		n++
		if nd > 1 {
			out[n] = '.'
			n++
			for i := 1; i < nd; i++ {
				out[n] = digitOrZero(d, i)
				n++
			}
		}
		out[n] = opts.exponentChar()
		n++
		if expDecimal < 0 {
			out[n] = '-'
		} else {
			out[n] = '+'
		}
		n++
		n += writeSmallInt(out[n:], abs(expDecimal))
		return n
	}

	if dp <= 0 {
		out[n] = '0'
		n++
		out[n] = '.'
		n++
		for i := 0; i < -dp; i++ {
			out[n] = '0'
			n++
		}
		for i := 0; i < nd; i++ {
			out[n] = digitOrZero(d, i)
			n++
		}
		return n
	}
	if dp >= nd {
		for i := 0; i < nd; i++ {
			out[n] = digitOrZero(d, i)
			n++
		}
		for i := nd; i < dp; i++ {
			out[n] = '0'
			n++
		}
		return n
	}
	for i := 0; i < dp; i++ {
		out[n] = digitOrZero(d, i)
		n++
	}
	out[n] = '.'
	n++
	for i := dp; i < nd; i++ {
		out[n] = digitOrZero(d, i)
		n++
	}
	return n
}

// writeRadix renders d's exact decimal value in a non-decimal radix.
// Unlike the base-10 path, this does not search for the shortest
// round-tripping digit count (roundShortest's digit-comparison window
// is inherently decimal, built on top of a decimal Decimal): it instead
// emits the integer part exactly (via repeated DivModSmall) and the
// fraction part to a fixed, generous digit budget (via repeated
// MulSmall digit extraction), which is sufficient precision to recover
// the original value by re-parsing but is not guaranteed to be the
// shortest such string.
func writeRadix(d *bigdecimal.Decimal, radix int, mantissaBits uint, opts WriteFloatOptions, out []byte, n int) int {
	var ipart, fpart bigdecimal.Decimal
	switch {
	case d.DP <= 0:
		fpart = *d
	case d.DP >= d.ND:
		ipart.ND, ipart.DP = d.DP, d.DP
		for i := 0; i < d.DP; i++ {
			if i < d.ND {
				ipart.D[i] = d.D[i]
			} else {
				ipart.D[i] = '0'
			}
		}
	default:
		ipart.ND, ipart.DP = d.DP, d.DP
		copy(ipart.D[:d.DP], d.D[:d.DP])
		fpart.ND = d.ND - d.DP
		copy(fpart.D[:fpart.ND], d.D[d.DP:d.ND])
		fpart.DP = 0
	}

	var ibuf [2 * bigdecimalMaxDigits]byte
	iw := len(ibuf)
	if ipart.ND == 0 {
		iw--
		ibuf[iw] = '0'
	}
	for ipart.ND > 0 {
		rem := ipart.DivModSmall(uint32(radix))
		iw--
		ibuf[iw] = table.Digit(uint8(rem), radix, opts.Uppercase)
	}
	n += copy(out[n:], ibuf[iw:])

	maxFracDigits := int(mantissaBits)/log2Floor(radix) + 2
	var fbuf [256]byte
	fw := 0
	for fw < maxFracDigits && fpart.ND > 0 {
		fpart.MulSmall(uint32(radix))
		v := 0
		digits := fpart.DP
		if digits < 0 {
			digits = 0
		}
		for i := 0; i < digits; i++ {
			dv := byte('0')
			if i < fpart.ND {
				dv = fpart.D[i]
			}
			v = v*10 + int(dv-'0')
		}
		fbuf[fw] = table.Digit(uint8(v), radix, opts.Uppercase)
		fw++
		if digits >= fpart.ND {
			fpart.Reset()
		} else {
			fpart.ND -= digits
			copy(fpart.D[:fpart.ND], fpart.D[digits:digits+fpart.ND])
			fpart.DP -= digits
		}
	}
	for fw > 0 && fbuf[fw-1] == '0' {
		fw--
	}
	if fw > 0 {
		out[n] = '.'
		n++
		n += copy(out[n:], fbuf[:fw])
	}
	return n
}

// log2Floor returns floor(log2(radix)) for radix in [2,36], used only to
// size the fixed fractional-digit budget writeRadix spends on a
// non-decimal, non-terminating radix conversion.
func log2Floor(radix int) int {
	n := 0
	for radix > 1 {
		radix >>= 1
		n++
	}
	if n == 0 {
		return 1
	}
	return n
}

const bigdecimalMaxDigits = 1200

func digitOrZero(d *bigdecimal.Decimal, i int) byte {
	if i < d.ND {
		return d.D[i]
	}
	return '0'
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func writeSmallInt(out []byte, v int) int {
	if v == 0 {
		out[0] = '0'
		return 1
	}
	var buf [8]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return copy(out, buf[i:])
}

// roundShortest finds the minimal digit count for d (already set to
// mant * 2**(exp-mantissaBits)) such that the resulting decimal is the
// shortest string that reads back to exactly the original float. exp and
// bias here follow the raw, mantissa-width-inclusive convention of
// other_examples ftoa.go's roundShortest, which this is a direct
// transcription of, onto internal/bigdecimal's fixed-capacity Decimal in
// place of strconv's unexported decimal type.
func roundShortest(d *bigdecimal.Decimal, mant uint64, exp int, mantissaBits uint, bias int) {
	if mant == 0 {
		d.ND = 0
		return
	}
	minExp := bias + 1
	if exp > minExp && 332*(d.DP-d.ND) >= 100*(exp-int(mantissaBits)) {
		return
	}

	var upper bigdecimal.Decimal
	upper.Assign(mant*2 + 1)
	upper.Shift(exp - int(mantissaBits) - 1)

	var mantLo uint64
	var expLo int
	if mant > 1<<mantissaBits || exp == minExp {
		mantLo = mant - 1
		expLo = exp
	} else {
		mantLo = mant*2 - 1
		expLo = exp - 1
	}
	var lower bigdecimal.Decimal
	lower.Assign(mantLo*2 + 1)
	lower.Shift(expLo - int(mantissaBits) - 1)

	inclusive := mant%2 == 0

	var upperDelta uint8
	for ui := 0; ; ui++ {
		mi := ui - upper.DP + d.DP
		if mi >= d.ND {
			break
		}
		li := ui - upper.DP + lower.DP
		l := byte('0')
		if li >= 0 && li < lower.ND {
			l = lower.D[li]
		}
		m := byte('0')
		if mi >= 0 {
			m = digitOrZero(d, mi)
		}
		u := byte('0')
		if ui < upper.ND {
			u = upper.D[ui]
		}

		okDown := l != m || (inclusive && li+1 == lower.ND)

		switch {
		case upperDelta == 0 && m+1 < u:
			upperDelta = 2
		case upperDelta == 0 && m != u:
			upperDelta = 1
		case upperDelta == 1 && (m != '9' || u != '0'):
			upperDelta = 2
		}
		okUp := upperDelta > 0 && (inclusive || upperDelta > 1 || ui+1 < upper.ND)

		switch {
		case okDown && okUp:
			d.Round(mi+1, bigdecimal.RoundNearestEven, false)
			return
		case okDown:
			d.RoundDown(mi + 1)
			return
		case okUp:
			d.RoundUp(mi + 1)
			return
		}
	}
}
