package lexical

import (
	"github.com/numeric-go/lexical/internal/table"
)

// ParseInteger parses the entirety of b as a base-Radix integer of type T
// under the given grammar, failing if any trailing byte remains unread.
func ParseInteger[T Integer](b []byte, opts ParseIntegerOptions) Result[T] {
	r := ParseIntegerPartial[T](b, opts)
	if r.Err != nil {
		return r
	}
	if r.Consumed != len(b) {
		return errResult[T](ErrInvalidDigit, r.Consumed)
	}
	return r
}

// ParseIntegerPartial parses a base-Radix integer from the start of b,
// returning how many bytes were consumed and leaving any trailing input
// unexamined. The scan follows the same shape as scanExponent (stdlib.go):
// walk a signed run of separator-aware digits and report how far it got,
// generalized here from exponents to arbitrary-radix integers.
func ParseIntegerPartial[T Integer](b []byte, opts ParseIntegerOptions) Result[T] {
	if err := opts.validate(); err != nil {
		return Result[T]{Err: err}
	}
	f := opts.Format
	i := 0
	n := len(b)

	if i < n && f.StartsDigitSeparator() && f.DigitSeparators() && b[i] == f.Separator() {
		i++
	}

	neg := false
	if i < n {
		switch b[i] {
		case '-':
			if !signedAllowed[T]() {
				return errResult[T](ErrInvalidDigit, i)
			}
			neg = true
			i++
		case '+':
			if f.NoPositiveMantissaSign() {
				return errResult[T](ErrInvalidPositiveSign, i)
			}
			i++
		default:
			if f.RequiredMantissaSign() {
				return errResult[T](ErrMissingSign, i)
			}
		}
	} else if f.RequiredMantissaSign() {
		return errResult[T](ErrMissingSign, i)
	}

	start := i
	var mag uint64
	digits := 0
	sawSeparator := false
	lastWasSeparator := false
	for i < n {
		c := b[i]
		if f.DigitSeparators() && c == f.Separator() {
			isLeading := digits == 0
			isConsecutive := lastWasSeparator
			if isLeading && !f.IntegerLeadingSeparator() {
				return errResult[T](ErrUnsupportedDigitSeparator, i)
			}
			if isConsecutive && !f.IntegerConsecutiveSeparator() {
				return errResult[T](ErrUnsupportedDigitSeparator, i)
			}
			if !isLeading && !isConsecutive && !f.IntegerInternalSeparator() {
				return errResult[T](ErrUnsupportedDigitSeparator, i)
			}
			sawSeparator = true
			lastWasSeparator = true
			i++
			continue
		}
		v, ok := table.DigitValue(c, opts.Radix)
		if !ok {
			break
		}
		if digits == 0 && c == '0' && f.NoIntegerLeadingZeros() {
			// A single "0" is always legal; only a zero followed by
			// another digit is a leading zero.
			if i+1 < n {
				if nv, nok := table.DigitValue(b[i+1], opts.Radix); nok {
					_ = nv
					return errResult[T](ErrInvalidLeadingZeros, i)
				}
			}
		}
		nmag := mag*uint64(opts.Radix) + uint64(v)
		if nmag < mag { // uint64 overflow; keep scanning for Consumed but remember overflow.
			return errResult[T](ErrOverflow, i)
		}
		mag = nmag
		digits++
		lastWasSeparator = false
		i++
	}
	if lastWasSeparator && !f.IntegerTrailingSeparator() {
		return errResult[T](ErrUnsupportedDigitSeparator, i-1)
	}
	_ = sawSeparator
	_ = start

	if digits == 0 {
		if f.RequiredIntegerDigits() {
			return errResult[T](ErrEmptyInteger, i)
		}
		return errResult[T](ErrEmpty, i)
	}

	v, err := fitInteger[T](mag, neg)
	if err != nil {
		return errResult[T](*err, i)
	}
	return ok[T](v, i)
}

func signedAllowed[T Integer]() bool {
	var z T
	switch any(z).(type) {
	case int, int8, int16, int32, int64:
		return true
	default:
		return false
	}
}

// fitInteger converts an accumulated unsigned magnitude plus sign into T,
// reporting ErrOverflow if it does not fit.
func fitInteger[T Integer](mag uint64, neg bool) (T, *ErrorKind) {
	var z T
	switch any(z).(type) {
	case int8:
		return fitSigned[T](mag, neg, 1<<7)
	case int16:
		return fitSigned[T](mag, neg, 1<<15)
	case int32:
		return fitSigned[T](mag, neg, 1<<31)
	case int64, int:
		return fitSigned[T](mag, neg, 1<<63)
	case uint8:
		return fitUnsigned[T](mag, neg, 1<<8-1)
	case uint16:
		return fitUnsigned[T](mag, neg, 1<<16-1)
	case uint32:
		return fitUnsigned[T](mag, neg, 1<<32-1)
	case uint64, uint:
		return fitUnsigned[T](mag, neg, ^uint64(0))
	default:
		k := ErrOverflow
		return z, &k
	}
}

func fitSigned[T Integer](mag uint64, neg bool, limit uint64) (T, *ErrorKind) {
	if neg {
		if mag > limit {
			k := ErrUnderflow
			return T(0), &k
		}
		return T(-int64(mag)), nil
	}
	if mag > limit-1 {
		k := ErrOverflow
		return T(0), &k
	}
	return T(int64(mag)), nil
}

func fitUnsigned[T Integer](mag uint64, neg bool, limit uint64) (T, *ErrorKind) {
	if neg && mag != 0 {
		k := ErrUnderflow
		return T(0), &k
	}
	if mag > limit {
		k := ErrOverflow
		return T(0), &k
	}
	return T(mag), nil
}
