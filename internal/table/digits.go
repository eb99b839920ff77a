// Package table holds the fixed lookup tables shared by the integer and
// float engines: digit classification for radixes 2-36, decimal digit
// counting, and the extended-precision power-of-ten tables the float
// engine's moderate (Eisel-Lemire) and slow paths compare against.
package table

import "math/bits"

// lowerDigits and upperDigits map a digit value 0-35 to its ASCII byte,
// lower and upper case, used by the integer and float writers for any
// radix up to 36.
const lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
const upperDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Digit returns the ASCII byte for value v in the given radix and case.
// v must be < radix.
func Digit(v uint8, radix int, uppercase bool) byte {
	if uppercase {
		return upperDigits[v]
	}
	return lowerDigits[v]
}

// digitValues maps an ASCII byte to its digit value plus one, 0 meaning
// "not a digit in any supported radix". Built once at init time covering
// '0'-'9', 'a'-'z', 'A'-'Z'.
var digitValues [256]uint8

func init() {
	for i := byte('0'); i <= '9'; i++ {
		digitValues[i] = i - '0' + 1
	}
	for i := byte('a'); i <= 'z'; i++ {
		digitValues[i] = i - 'a' + 10 + 1
	}
	for i := byte('A'); i <= 'Z'; i++ {
		digitValues[i] = i - 'A' + 10 + 1
	}
}

// DigitValue reports the value of c as a digit in the given radix, and
// whether c is a valid digit for that radix at all.
func DigitValue(c byte, radix int) (value uint8, ok bool) {
	v := digitValues[c]
	if v == 0 || int(v-1) >= radix {
		return 0, false
	}
	return v - 1, true
}

// Pow10 is a table of 10**n for n in [0,19], the full range representable
// in a uint64 without overflow. Ported from pow10tab (dec_arith.go),
// which serves the identical purpose for decimal-base word arithmetic.
var Pow10 = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

// pow10f holds 10**n for n in [0,22], the range in which the value is
// exactly representable as a float64 — the table the Clinger fast path
// (float.go's tryClinger) multiplies or divides by instead of calling
// math.Pow, matching dec_arith.go's own preference (its pow10 table)
// for small lookup tables over transcendental calls on a hot path.
var pow10f [23]float64

func init() {
	v := 1.0
	for i := range pow10f {
		pow10f[i] = v
		v *= 10
	}
}

// Pow10f returns 10**n as an exact float64 for n in [0,22].
func Pow10f(n int) float64 {
	return pow10f[n]
}

// pow2digitsTab[k] is an upper bound on the number of decimal digits of an
// integer with k significant bits, off by at most one (corrected by
// comparing against Pow10 below). Ported verbatim from dec_arith.go's
// pow2digitsTab.
var pow2digitsTab = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// DecimalDigits returns n such that 10**(n-1) <= x < 10**n, i.e. the number
// of decimal digits required to print x. Returns 0 for x == 0. Grounded
// on decDigits64 (dec_arith.go): a bit-length lookup corrected by a
// single comparison, avoiding a division or loop per digit.
func DecimalDigits(x uint64) (n uint) {
	if x == 0 {
		return 0
	}
	n = pow2digitsTab[bits.Len64(x)]
	if x < Pow10[n-1] {
		n--
	}
	return n
}

// DigitPairs is a 100-entry table of two-ASCII-digit strings "00".."99",
// letting the integer and decimal writers consume two digits per
// iteration instead of one. Grounded on the same technique used by Go's
// own strconv.formatBits (other_examples ftoa.go) and named explicitly by
// the digit-pair optimization in the engine's design notes.
var DigitPairs = [100]string{
	"00", "01", "02", "03", "04", "05", "06", "07", "08", "09",
	"10", "11", "12", "13", "14", "15", "16", "17", "18", "19",
	"20", "21", "22", "23", "24", "25", "26", "27", "28", "29",
	"30", "31", "32", "33", "34", "35", "36", "37", "38", "39",
	"40", "41", "42", "43", "44", "45", "46", "47", "48", "49",
	"50", "51", "52", "53", "54", "55", "56", "57", "58", "59",
	"60", "61", "62", "63", "64", "65", "66", "67", "68", "69",
	"70", "71", "72", "73", "74", "75", "76", "77", "78", "79",
	"80", "81", "82", "83", "84", "85", "86", "87", "88", "89",
	"90", "91", "92", "93", "94", "95", "96", "97", "98", "99",
}
