package bigdecimal

// Shift multiplies d by 2**k (k > 0) or divides d by 2**-k (k < 0),
// digit by digit, exactly as a person doing long multiplication or long
// division by two would. Ported from the classic Steele & White /
// Gay free-format algorithm — the same decimal-base shl/shr dec_arith.go
// implements, just at word granularity instead of digit granularity.
func (d *Decimal) Shift(k int) {
	switch {
	case d.ND == 0:
		// value is zero, no shift changes that
	case k > 0:
		for k > maxShift {
			d.leftShift(maxShift)
			k -= maxShift
		}
		d.leftShift(uint(k))
	case k < 0:
		for k < -maxShift {
			d.rightShift(maxShift)
			k += maxShift
		}
		d.rightShift(uint(-k))
	}
}

// maxShift bounds a single leftShift/rightShift call so its internal
// multiply-by-2**maxShift table fits in a uint and never overflows
// during the digit-by-digit carry propagation below.
const maxShift = 60

// leftShift multiplies d by 2**k in place, k in [0,maxShift].
func (d *Decimal) leftShift(k uint) {
	delta := leftCheats[k].delta
	if prefixIsLessThan(d, leftCheats[k].cutoff) {
		delta--
	}

	r := d.ND
	w := d.ND + delta
	var n uint
	for r--; r >= 0; r-- {
		n += (uint(d.digit(r)) - '0') << k
		quo := n / 10
		rem := n - 10*quo
		w--
		if w < maxDigits {
			d.D[w] = byte(rem + '0')
		}
		n = quo
	}
	for n > 0 {
		quo := n / 10
		rem := n - 10*quo
		w--
		if w < maxDigits {
			d.D[w] = byte(rem + '0')
		}
		n = quo
	}

	d.ND += delta
	if d.ND >= maxDigits {
		d.ND = maxDigits
	}
	d.DP += delta
	trim(d)
}

// rightShift divides d by 2**k in place, k in [0,maxShift].
func (d *Decimal) rightShift(k uint) {
	r := 0
	w := 0
	var n uint
	for ; r < d.ND; r++ {
		n = n*10 + uint(d.digit(r)) - '0'
		quo := n >> k
		n -= quo << k
		if w == 0 && quo == 0 {
			// leading zero digit, discard
			d.DP--
			continue
		}
		d.D[w] = byte(quo + '0')
		w++
	}
	for n > 0 {
		n = n * 10
		quo := n >> k
		n -= quo << k
		if w == 0 && quo == 0 {
			d.DP--
			continue
		}
		if w < maxDigits {
			d.D[w] = byte(quo + '0')
			w++
		}
	}

	d.ND = w
	trim(d)
}

// prefixIsLessThan reports whether d's digits, read as a plain integer
// (ignoring the decimal point), are lexicographically less than s —
// used by leftShift to decide between a delta and delta-1 digit-count
// increase depending on exactly how close d's leading digits are to a
// power of ten.
func prefixIsLessThan(d *Decimal, s string) bool {
	for i := 0; i < len(s); i++ {
		if i >= d.ND {
			return true
		}
		if d.digit(i) != s[i] {
			return d.digit(i) < s[i]
		}
	}
	return false
}

// leftCheats[k] gives, for a left shift by k bits, the resulting increase
// in digit count (delta, the number of decimal digits of 2**k) along with
// the threshold prefix (cutoff, the decimal digits of 5**k) below which
// the increase is one smaller. Computed at init from first principles
// rather than hand-transcribed, since 61 precomputed string cutoffs would
// otherwise need to be independently verified digit by digit. Entry 0 is
// {0, ""}: a shift by zero adds no digits.
var leftCheats [maxShift + 1]struct {
	delta  int
	cutoff string
}

func init() {
	five := []byte{'1'} // decimal digits of 5**k
	for k := 1; k <= maxShift; k++ {
		carry := byte(0)
		for i := len(five) - 1; i >= 0; i-- {
			v := (five[i]-'0')*5 + carry
			five[i] = v%10 + '0'
			carry = v / 10
		}
		if carry > 0 {
			five = append([]byte{carry + '0'}, five...)
		}
		leftCheats[k].delta = len(formatUint64(uint64(1) << uint(k)))
		leftCheats[k].cutoff = string(five)
	}
}

func formatUint64(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
