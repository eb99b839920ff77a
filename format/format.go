// Package format describes the grammar a number parser or writer accepts:
// the digit separator byte and where it may appear, required/optional sign
// and digit positions, exponent rules, and whether and how special values
// are matched (their spellings and the exponent character are set in the
// parse/write options, not here). A Format is a single immutable
// 64-bit value, built once through Builder and then shared across any
// number of parse/write calls — exactly the "assemble once, validate
// eagerly, use many times" shape small stringer-annotated enum types
// like RoundingMode/Accuracy (stdlib.go) use at a much smaller scale.
package format

import "fmt"

// Format is a bit-packed description of a number grammar: a digit
// separator byte in its low byte, and a closed set of boolean grammar
// flags above it. It is a plain value type (comparable, zero-allocation
// to construct, cheap to pass by value) so parser and writer entry points
// can take one by value without indirection.
type Format uint64

const (
	separatorShift = 0
	separatorBits  = 8
	separatorMask  = Format(1<<separatorBits - 1)

	flagsShift = separatorShift + separatorBits
)

// Grammar flags, one bit each above the separator byte. Grouped by
// concern: digit-separator placement, required/optional components, and
// exponent/special-value spelling.
const (
	flagDigitSeparators Format = 1 << (flagsShift + iota)
	flagIntegerInternalSeparator
	flagIntegerLeadingSeparator
	flagIntegerTrailingSeparator
	flagIntegerConsecutiveSeparator
	flagFractionInternalSeparator
	flagFractionLeadingSeparator
	flagFractionTrailingSeparator
	flagFractionConsecutiveSeparator
	flagExponentInternalSeparator
	flagExponentLeadingSeparator
	flagExponentTrailingSeparator
	flagExponentConsecutiveSeparator
	flagRequiredIntegerDigits
	flagRequiredFractionDigits
	flagRequiredExponentDigits
	flagRequiredMantissaDigits
	flagNoPositiveMantissaSign
	flagRequiredMantissaSign
	flagNoExponentNotation
	flagNoPositiveExponentSign
	flagRequiredExponentSign
	flagNoExponentWithoutFraction
	flagNoSpecial
	flagCaseSensitiveSpecial
	flagNoIntegerLeadingZeros
	flagNoFloatLeadingZeros
	flagIntegerExponentNoFraction
	flagStartsDigitSeparator
)

// Separator returns the digit-group separator byte, or 0 if the format
// uses none.
func (f Format) Separator() byte { return byte(f & separatorMask) }

func (f Format) has(flag Format) bool { return f&flag != 0 }

// DigitSeparators reports whether any digit separator is permitted at
// all.
func (f Format) DigitSeparators() bool { return f.has(flagDigitSeparators) }

// IntegerInternalSeparator reports whether a separator may appear between
// two integer-part digits.
func (f Format) IntegerInternalSeparator() bool { return f.has(flagIntegerInternalSeparator) }

// IntegerLeadingSeparator reports whether a separator may appear before
// the first integer-part digit.
func (f Format) IntegerLeadingSeparator() bool { return f.has(flagIntegerLeadingSeparator) }

// IntegerTrailingSeparator reports whether a separator may appear after
// the last integer-part digit.
func (f Format) IntegerTrailingSeparator() bool { return f.has(flagIntegerTrailingSeparator) }

// IntegerConsecutiveSeparator reports whether two separators may appear
// back to back within the integer part.
func (f Format) IntegerConsecutiveSeparator() bool { return f.has(flagIntegerConsecutiveSeparator) }

// FractionInternalSeparator reports whether a separator may appear
// between two fraction-part digits.
func (f Format) FractionInternalSeparator() bool { return f.has(flagFractionInternalSeparator) }

// FractionLeadingSeparator reports whether a separator may appear before
// the first fraction-part digit.
func (f Format) FractionLeadingSeparator() bool { return f.has(flagFractionLeadingSeparator) }

// FractionTrailingSeparator reports whether a separator may appear after
// the last fraction-part digit.
func (f Format) FractionTrailingSeparator() bool { return f.has(flagFractionTrailingSeparator) }

// FractionConsecutiveSeparator reports whether two separators may appear
// back to back within the fraction part.
func (f Format) FractionConsecutiveSeparator() bool {
	return f.has(flagFractionConsecutiveSeparator)
}

// ExponentInternalSeparator reports whether a separator may appear
// between two exponent digits.
func (f Format) ExponentInternalSeparator() bool { return f.has(flagExponentInternalSeparator) }

// ExponentLeadingSeparator reports whether a separator may appear before
// the first exponent digit.
func (f Format) ExponentLeadingSeparator() bool { return f.has(flagExponentLeadingSeparator) }

// ExponentTrailingSeparator reports whether a separator may appear after
// the last exponent digit.
func (f Format) ExponentTrailingSeparator() bool { return f.has(flagExponentTrailingSeparator) }

// ExponentConsecutiveSeparator reports whether two separators may appear
// back to back within the exponent.
func (f Format) ExponentConsecutiveSeparator() bool {
	return f.has(flagExponentConsecutiveSeparator)
}

// RequiredIntegerDigits reports whether the integer part must contain at
// least one digit.
func (f Format) RequiredIntegerDigits() bool { return f.has(flagRequiredIntegerDigits) }

// RequiredFractionDigits reports whether a fraction part, once a decimal
// point is present, must contain at least one digit.
func (f Format) RequiredFractionDigits() bool { return f.has(flagRequiredFractionDigits) }

// RequiredExponentDigits reports whether an exponent, once an exponent
// character is present, must contain at least one digit.
func (f Format) RequiredExponentDigits() bool { return f.has(flagRequiredExponentDigits) }

// RequiredMantissaDigits reports whether the mantissa (integer part plus
// fraction part together) must contain at least one digit.
func (f Format) RequiredMantissaDigits() bool { return f.has(flagRequiredMantissaDigits) }

// NoPositiveMantissaSign reports whether a leading '+' before the
// mantissa is rejected.
func (f Format) NoPositiveMantissaSign() bool { return f.has(flagNoPositiveMantissaSign) }

// RequiredMantissaSign reports whether the mantissa's sign must always
// be written explicitly.
func (f Format) RequiredMantissaSign() bool { return f.has(flagRequiredMantissaSign) }

// NoExponentNotation reports whether scientific notation (an exponent
// character and exponent digits) is rejected entirely.
func (f Format) NoExponentNotation() bool { return f.has(flagNoExponentNotation) }

// NoPositiveExponentSign reports whether a leading '+' before the
// exponent is rejected.
func (f Format) NoPositiveExponentSign() bool { return f.has(flagNoPositiveExponentSign) }

// RequiredExponentSign reports whether the exponent's sign must always
// be written explicitly.
func (f Format) RequiredExponentSign() bool { return f.has(flagRequiredExponentSign) }

// NoExponentWithoutFraction reports whether scientific notation is
// rejected unless a fraction part is also present.
func (f Format) NoExponentWithoutFraction() bool { return f.has(flagNoExponentWithoutFraction) }

// NoSpecial reports whether NaN/Infinity spellings are rejected
// entirely.
func (f Format) NoSpecial() bool { return f.has(flagNoSpecial) }

// CaseSensitiveSpecial reports whether NaN/Infinity spellings must match
// case exactly.
func (f Format) CaseSensitiveSpecial() bool { return f.has(flagCaseSensitiveSpecial) }

// NoIntegerLeadingZeros reports whether an integer part may not begin
// with a zero digit that is directly followed by another digit ("01" and
// "00" are rejected, "0" and "0.5" are not).
func (f Format) NoIntegerLeadingZeros() bool { return f.has(flagNoIntegerLeadingZeros) }

// NoFloatLeadingZeros reports whether a float mantissa may not begin
// with a zero digit that is directly followed by another digit. The
// parser applies it exactly as NoIntegerLeadingZeros: a zero followed by
// a decimal point ("0.5") is accepted.
func (f Format) NoFloatLeadingZeros() bool { return f.has(flagNoFloatLeadingZeros) }

// IntegerExponentNoFraction reports whether an integer written with an
// exponent (e.g. "1e10") must not also carry a fraction part.
func (f Format) IntegerExponentNoFraction() bool { return f.has(flagIntegerExponentNoFraction) }

// StartsDigitSeparator reports whether the entire mantissa may begin
// with a digit separator before any sign or digit.
func (f Format) StartsDigitSeparator() bool { return f.has(flagStartsDigitSeparator) }

// String renders f in a debug-friendly, non-grammar form: the separator
// byte (if any) followed by the flag bits as a hexadecimal number. Mirrors the spirit of
// RoundingMode/Accuracy's String methods (a readable label, not a wire
// format).
func (f Format) String() string {
	if sep := f.Separator(); sep != 0 {
		return fmt.Sprintf("Format(sep=%q, flags=%#x)", sep, uint64(f&^separatorMask))
	}
	return fmt.Sprintf("Format(flags=%#x)", uint64(f))
}
