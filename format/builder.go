package format

import "errors"

// Errors returned by Builder.Build. Grounded on the validation style of
// context.Context (context/context.go), which rejects invalid
// precision/rounding-mode combinations at configuration time rather
// than deferring to the first operation that would misbehave.
var (
	ErrInvalidSeparator         = errors.New("format: separator must be a non-digit, non-sign, non-letter ASCII byte")
	ErrSeparatorWithoutFlags    = errors.New("format: digit separator byte set but no separator position enabled")
	ErrConflictingLeadingZeros  = errors.New("format: NoFloatLeadingZeros implies NoIntegerLeadingZeros")
	ErrConflictingExponentFlags = errors.New("format: NoExponentNotation forbids setting any exponent flag")
)

// Builder constructs a Format through named, validated steps instead of
// raw bit manipulation. The zero Builder is ready to use.
type Builder struct {
	f   Format
	sep byte
}

// NewBuilder returns a Builder with every flag cleared.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) set(flag Format, v bool) *Builder {
	if v {
		b.f |= flag
	} else {
		b.f &^= flag
	}
	return b
}

// DigitSeparator sets the byte used as a digit-group separator and
// enables digit separator support. A zero byte disables separators
// entirely.
func (b *Builder) DigitSeparator(c byte) *Builder {
	b.sep = c
	return b.set(flagDigitSeparators, c != 0)
}

func (b *Builder) IntegerInternalSeparator(v bool) *Builder {
	return b.set(flagIntegerInternalSeparator, v)
}
func (b *Builder) IntegerLeadingSeparator(v bool) *Builder {
	return b.set(flagIntegerLeadingSeparator, v)
}
func (b *Builder) IntegerTrailingSeparator(v bool) *Builder {
	return b.set(flagIntegerTrailingSeparator, v)
}
func (b *Builder) IntegerConsecutiveSeparator(v bool) *Builder {
	return b.set(flagIntegerConsecutiveSeparator, v)
}
func (b *Builder) FractionInternalSeparator(v bool) *Builder {
	return b.set(flagFractionInternalSeparator, v)
}
func (b *Builder) FractionLeadingSeparator(v bool) *Builder {
	return b.set(flagFractionLeadingSeparator, v)
}
func (b *Builder) FractionTrailingSeparator(v bool) *Builder {
	return b.set(flagFractionTrailingSeparator, v)
}
func (b *Builder) FractionConsecutiveSeparator(v bool) *Builder {
	return b.set(flagFractionConsecutiveSeparator, v)
}
func (b *Builder) ExponentInternalSeparator(v bool) *Builder {
	return b.set(flagExponentInternalSeparator, v)
}
func (b *Builder) ExponentLeadingSeparator(v bool) *Builder {
	return b.set(flagExponentLeadingSeparator, v)
}
func (b *Builder) ExponentTrailingSeparator(v bool) *Builder {
	return b.set(flagExponentTrailingSeparator, v)
}
func (b *Builder) ExponentConsecutiveSeparator(v bool) *Builder {
	return b.set(flagExponentConsecutiveSeparator, v)
}

// DigitSeparatorFlags sets all twelve separator-position flags (integer,
// fraction, exponent x {internal, leading, trailing, consecutive}) to v
// in one call, the common case for formats that just want "separators
// allowed everywhere" or "no separators at all".
func (b *Builder) DigitSeparatorFlags(v bool) *Builder {
	return b.
		IntegerInternalSeparator(v).IntegerLeadingSeparator(v).
		IntegerTrailingSeparator(v).IntegerConsecutiveSeparator(v).
		FractionInternalSeparator(v).FractionLeadingSeparator(v).
		FractionTrailingSeparator(v).FractionConsecutiveSeparator(v).
		ExponentInternalSeparator(v).ExponentLeadingSeparator(v).
		ExponentTrailingSeparator(v).ExponentConsecutiveSeparator(v)
}

func (b *Builder) RequiredIntegerDigits(v bool) *Builder {
	return b.set(flagRequiredIntegerDigits, v)
}
func (b *Builder) RequiredFractionDigits(v bool) *Builder {
	return b.set(flagRequiredFractionDigits, v)
}
func (b *Builder) RequiredExponentDigits(v bool) *Builder {
	return b.set(flagRequiredExponentDigits, v)
}
func (b *Builder) RequiredMantissaDigits(v bool) *Builder {
	return b.set(flagRequiredMantissaDigits, v)
}
func (b *Builder) NoPositiveMantissaSign(v bool) *Builder {
	return b.set(flagNoPositiveMantissaSign, v)
}
func (b *Builder) RequiredMantissaSign(v bool) *Builder {
	return b.set(flagRequiredMantissaSign, v)
}
func (b *Builder) NoExponentNotation(v bool) *Builder {
	return b.set(flagNoExponentNotation, v)
}
func (b *Builder) NoPositiveExponentSign(v bool) *Builder {
	return b.set(flagNoPositiveExponentSign, v)
}
func (b *Builder) RequiredExponentSign(v bool) *Builder {
	return b.set(flagRequiredExponentSign, v)
}
func (b *Builder) NoExponentWithoutFraction(v bool) *Builder {
	return b.set(flagNoExponentWithoutFraction, v)
}
func (b *Builder) NoSpecial(v bool) *Builder {
	return b.set(flagNoSpecial, v)
}
func (b *Builder) CaseSensitiveSpecial(v bool) *Builder {
	return b.set(flagCaseSensitiveSpecial, v)
}
func (b *Builder) NoIntegerLeadingZeros(v bool) *Builder {
	return b.set(flagNoIntegerLeadingZeros, v)
}
func (b *Builder) NoFloatLeadingZeros(v bool) *Builder {
	return b.set(flagNoFloatLeadingZeros, v)
}
func (b *Builder) IntegerExponentNoFraction(v bool) *Builder {
	return b.set(flagIntegerExponentNoFraction, v)
}
func (b *Builder) StartsDigitSeparator(v bool) *Builder {
	return b.set(flagStartsDigitSeparator, v)
}

// Build validates the accumulated flags and returns the resulting
// Format. Mirrors context.Context's eager-validation style
// (SetPrec/SetMode returning an error immediately rather than
// deferring to the first failing operation).
func (b *Builder) Build() (Format, error) {
	if b.sep != 0 {
		if _, ok := asciiDigit(b.sep); ok || b.sep > 127 || b.sep == '+' || b.sep == '-' || b.sep == '.' || asciiLetter(b.sep) {
			return 0, ErrInvalidSeparator
		}
		if b.f&separatorPositionMask == 0 {
			return 0, ErrSeparatorWithoutFlags
		}
	}
	if b.f.has(flagNoFloatLeadingZeros) && !b.f.has(flagNoIntegerLeadingZeros) {
		return 0, ErrConflictingLeadingZeros
	}
	if b.f.has(flagNoExponentNotation) && b.f&exponentFlagsMask != 0 {
		return 0, ErrConflictingExponentFlags
	}
	return b.f | Format(b.sep), nil
}

const separatorPositionMask = flagIntegerInternalSeparator | flagIntegerLeadingSeparator |
	flagIntegerTrailingSeparator | flagIntegerConsecutiveSeparator |
	flagFractionInternalSeparator | flagFractionLeadingSeparator |
	flagFractionTrailingSeparator | flagFractionConsecutiveSeparator |
	flagExponentInternalSeparator | flagExponentLeadingSeparator |
	flagExponentTrailingSeparator | flagExponentConsecutiveSeparator

// exponentFlagsMask covers every flag that only makes sense when
// exponent notation is allowed at all; NoExponentNotation and any of
// these are mutually exclusive in the Number Format data model.
const exponentFlagsMask = flagExponentInternalSeparator | flagExponentLeadingSeparator |
	flagExponentTrailingSeparator | flagExponentConsecutiveSeparator |
	flagRequiredExponentDigits | flagNoPositiveExponentSign |
	flagRequiredExponentSign | flagNoExponentWithoutFraction |
	flagIntegerExponentNoFraction

func asciiDigit(c byte) (uint8, bool) {
	if c >= '0' && c <= '9' {
		return c - '0', true
	}
	return 0, false
}

func asciiLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
