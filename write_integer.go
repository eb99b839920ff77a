package lexical

import "github.com/numeric-go/lexical/internal/table"

// WriteInteger writes v into out in the given radix, returning the number
// of bytes written. out must be at least MaxFormattedWidth[T](opts.Radix)
// bytes long. Uses a digit-pair technique (consume two digits per
// iteration via a 100-entry lookup table, see internal/table.DigitPairs)
// rather than one digit at a time, the same optimization Go's own
// strconv.formatBits applies (other_examples ftoa.go).
func WriteInteger[T Integer](v T, opts WriteIntegerOptions, out []byte) int {
	if err := opts.validate(); err != nil {
		panic(err)
	}
	neg := false
	mag := uint64(v)
	switch any(v).(type) {
	case int, int8, int16, int32, int64:
		sv := int64(v)
		if sv < 0 {
			neg = true
			mag = uint64(-sv)
		} else {
			mag = uint64(sv)
		}
	}

	if mag == 0 {
		out[0] = '0'
		return 1
	}

	var buf [96]byte
	i := len(buf)
	radix := uint64(opts.Radix)
	if radix == 10 {
		for mag >= 100 {
			pair := table.DigitPairs[mag%100]
			i -= 2
			buf[i] = pair[0]
			buf[i+1] = pair[1]
			mag /= 100
		}
		if mag >= 10 {
			pair := table.DigitPairs[mag]
			i -= 2
			buf[i] = pair[0]
			buf[i+1] = pair[1]
		} else {
			i--
			buf[i] = table.Digit(uint8(mag), 10, opts.Uppercase)
		}
	} else {
		for mag > 0 {
			d := uint8(mag % radix)
			mag /= radix
			i--
			buf[i] = table.Digit(d, opts.Radix, opts.Uppercase)
		}
	}

	n := 0
	if neg {
		out[0] = '-'
		n = 1
	}
	n += copy(out[n:], buf[i:])
	return n
}
