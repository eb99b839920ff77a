package lexical

import "golang.org/x/exp/constraints"

// Integer is the type set this package's integer engine operates over,
// built on golang.org/x/exp/constraints rather than a hand-rolled
// interface, keeping the exported capability surface small and
// matching modernc.org/ccgo's own use of golang.org/x/exp for generic
// numeric code.
type Integer = constraints.Integer

// Float is the type set the float engine operates over: the two IEEE-754
// binary formats Go exposes natively. (constraints.Float also admits no
// other types, but naming it here keeps every exported generic signature
// in this package spelled the same way.)
type Float = constraints.Float

// maxIntegerDigits returns the maximum number of radix-digits the
// absolute value of any T can require, plus one for a sign byte; it is
// the value MaxFormattedWidth reports. Computed from the type's bit width
// rather than hardcoded per kind, since the bit width already determines
// it exactly.
func maxIntegerDigits[T Integer](radix int) int {
	bits := integerBits[T]()
	// log_radix(2^bits), plus one for a possible sign byte.
	return bitsToDigits(bits, radix) + 1
}

func bitsToDigits(bits, radix int) int {
	// Smallest radix (2) needs the most digits; iterate rather than use
	// floating point log so every kind's bound is an exact integer
	// ceiling, the same float-arithmetic avoidance dec_arith.go's
	// decDigits64 uses (a table lookup, not a log call).
	count := 0
	v := uint64(1)<<uint(bits-1) - 1
	if v == 0 {
		v = 1
	}
	for v > 0 {
		v /= uint64(radix)
		count++
	}
	return count
}

func integerBits[T Integer]() int {
	var z T
	switch any(z).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	case int64, uint64, int, uint:
		return 64
	default:
		return 64
	}
}

// MaxFormattedWidth returns the widest buffer WriteInteger[T] could ever
// need for the given radix, including a sign byte, so a caller can
// size its buffer once up front.
func MaxFormattedWidth[T Integer](radix int) int {
	return maxIntegerDigits[T](radix)
}

// MaxFloatWidth returns the widest buffer WriteFloat could ever need to
// write a binary64 value in the given radix.
//
// For radix 10, WriteFloat always finds the shortest round-tripping
// digit string (roundShortest), so the bound is sign, up to 17
// significant decimal digits, a decimal point, "e", an exponent sign,
// and up to 3 exponent digits — roughly 25 characters.
//
// For any other radix, WriteFloat does not search for the shortest
// string; it writes the integer part exactly and the fraction part to
// a fixed digit budget (write_float.go's writeRadix), so the bound
// instead comes from binary64's largest finite magnitude (just under
// 2**1024) and smallest mantissa (52 bits), converted to radix-digit
// counts via the same floor-of-log2 approximation writeRadix uses to
// size its own fraction-digit budget.
func MaxFloatWidth(radix int) int {
	if radix == 10 {
		return 24
	}
	if radix < 2 {
		radix = 2
	}
	lg := log2Floor(radix)
	intDigits := 1024/lg + 2
	fracDigits := 52/lg + 2
	return 1 + intDigits + 1 + fracDigits + 1 + 1 + 4
}
