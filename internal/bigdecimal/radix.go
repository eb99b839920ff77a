package bigdecimal

// MulSmall multiplies d in place by the small positive integer m, digit
// by digit from least to most significant with carry — the same
// long-multiplication shape leftShift (shift.go) uses for its
// multiply-by-2**k special case, generalized to an arbitrary small
// multiplier so a non-decimal-radix mantissa can be accumulated one
// source digit at a time (value = value*radix + digit).
func (d *Decimal) MulSmall(m uint32) {
	if d.ND == 0 || m == 0 {
		d.Reset()
		return
	}
	if m == 1 {
		return
	}
	var buf [maxDigits + 8]byte
	w := len(buf)
	var carry uint64
	for r := d.ND - 1; r >= 0; r-- {
		n := uint64(d.D[r]-'0')*uint64(m) + carry
		w--
		buf[w] = byte(n%10) + '0'
		carry = n / 10
	}
	for carry > 0 {
		w--
		buf[w] = byte(carry%10) + '0'
		carry /= 10
	}
	n := len(buf) - w
	growth := n - d.ND
	if n > maxDigits {
		// Drop least-significant digits rather than overflow the fixed
		// buffer; only affects mantissas far longer than any realistic
		// radix literal.
		drop := n - maxDigits
		n = maxDigits
		w += drop
	}
	copy(d.D[:n], buf[w:w+n])
	d.ND = n
	d.DP += growth
	normalize(d)
}

// AddSmall adds the small non-negative integer v to d, which must
// currently represent a plain non-negative integer (DP >= ND, as it
// always does mid-accumulation, before the fractional point is folded
// in). Trailing zeros removed by MulSmall's trim (DP > ND) are restored
// first, so v is added at the units digit. Paired with MulSmall to
// accumulate an arbitrary-radix mantissa into decimal form one source
// digit at a time.
func (d *Decimal) AddSmall(v uint32) {
	if v == 0 {
		return
	}
	if d.ND == 0 {
		assignUint32(d, v)
		return
	}
	for d.ND < d.DP && d.ND < maxDigits {
		d.D[d.ND] = '0'
		d.ND++
	}
	carry := uint64(v)
	for i := d.ND - 1; i >= 0 && carry > 0; i-- {
		s := uint64(d.D[i]-'0') + carry
		d.D[i] = byte(s%10) + '0'
		carry = s / 10
	}
	for carry > 0 && d.ND < maxDigits {
		copy(d.D[1:d.ND+1], d.D[:d.ND])
		d.D[0] = byte(carry%10) + '0'
		carry /= 10
		d.ND++
		d.DP++
	}
	normalize(d)
}

func assignUint32(d *Decimal, v uint32) {
	var buf [10]byte
	n := 0
	for v > 0 {
		buf[n] = byte(v%10) + '0'
		v /= 10
		n++
	}
	for i := 0; i < n; i++ {
		d.D[i] = buf[n-1-i]
	}
	d.ND = n
	d.DP = n
}

// DivSmall divides d's value in place by the small positive integer m,
// extending the digit buffer past its original width (and DP stays
// fixed, since this operates on the whole value rather than just its
// integer part) until either the remainder reaches zero or the
// fixed-capacity buffer is exhausted. Reports whether any nonzero
// remainder was discarded at the capacity limit (a sticky bit for the
// caller to round by, rather than silently truncating) — the same
// digit-by-digit long-division shape rightShift (shift.go) uses for
// its divide-by-2**k special case, generalized to an arbitrary small
// divisor so a non-decimal-radix fractional exponent can be applied
// exactly.
func (d *Decimal) DivSmall(m uint32) (inexact bool) {
	if d.ND == 0 || m == 0 {
		return false
	}
	var out [maxDigits]byte
	w := 0
	rem := uint64(0)
	i := 0
	for w < maxDigits {
		var dig uint64
		if i < d.ND {
			dig = uint64(d.D[i] - '0')
		} else if rem == 0 {
			break
		}
		cur := rem*10 + dig
		out[w] = byte(cur/uint64(m)) + '0'
		rem = cur % uint64(m)
		w++
		i++
	}
	inexact = rem != 0 || i < d.ND
	copy(d.D[:w], out[:w])
	d.ND = w
	normalize(d)
	return inexact
}

// DivModSmall divides d, which must currently hold a plain
// non-negative integer (DP == ND), by the small positive integer m,
// replacing d with the exact integer quotient and returning the
// remainder. Used by the writer to peel off a value's radix digits one
// at a time, least-significant first.
func (d *Decimal) DivModSmall(m uint32) uint32 {
	if d.ND == 0 || m == 0 {
		return 0
	}
	var out [maxDigits]byte
	w := 0
	rem := uint64(0)
	for i := 0; i < d.ND; i++ {
		cur := rem*10 + uint64(d.D[i]-'0')
		q := cur / uint64(m)
		rem = cur % uint64(m)
		if w > 0 || q > 0 {
			out[w] = byte(q) + '0'
			w++
		}
	}
	copy(d.D[:w], out[:w])
	d.ND = w
	d.DP = w
	if w == 0 {
		d.Reset()
	}
	return uint32(rem)
}

// normalize strips any leading zero digits DivSmall/DivModSmall can
// produce when a quotient has fewer significant digits than its
// dividend, adjusting DP to match, then applies the package's usual
// trailing-zero trim. MulSmall/AddSmall never introduce a leading
// zero (their carry-extension loop's final digit is always nonzero),
// but calling this unconditionally after every arbitrary-radix
// accumulation step keeps the "D[0] is always significant when ND>0"
// invariant (decimal.go) obviously true rather than proven once and
// trusted forever.
func normalize(d *Decimal) {
	lead := 0
	for lead < d.ND && d.D[lead] == '0' {
		lead++
	}
	if lead > 0 {
		if lead == d.ND {
			d.Reset()
			return
		}
		copy(d.D[:d.ND-lead], d.D[lead:d.ND])
		d.ND -= lead
		d.DP -= lead
	}
	trim(d)
}
