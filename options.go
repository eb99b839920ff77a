package lexical

import "github.com/numeric-go/lexical/format"

// ParseIntegerOptions configures ParseInteger/ParseIntegerPartial: the
// number grammar and the radix digits are read in.
type ParseIntegerOptions struct {
	Format format.Format
	Radix  int
}

// DefaultParseIntegerOptions returns the options strconv.ParseInt itself
// would use: base 10, Standard grammar.
func DefaultParseIntegerOptions() ParseIntegerOptions {
	return ParseIntegerOptions{Format: format.Standard, Radix: 10}
}

func (o ParseIntegerOptions) validate() *Error {
	if o.Radix < 2 || o.Radix > 36 {
		return &Error{Kind: ErrInvalidBase}
	}
	return nil
}

// WriteIntegerOptions configures WriteInteger: the radix digits are
// written in, and the letter case used for radixes above 10.
type WriteIntegerOptions struct {
	Radix     int
	Uppercase bool
}

// DefaultWriteIntegerOptions returns base-10 options.
func DefaultWriteIntegerOptions() WriteIntegerOptions {
	return WriteIntegerOptions{Radix: 10}
}

func (o WriteIntegerOptions) validate() *Error {
	if o.Radix < 2 || o.Radix > 36 {
		return &Error{Kind: ErrInvalidBase}
	}
	return nil
}

// ParseFloatOptions configures ParseFloat/ParseFloatPartial.
type ParseFloatOptions struct {
	Format   format.Format
	Rounding RoundingMode
	// Radix is the digit radix of both the mantissa and (for a
	// power-of-two radix) the implicit binary scaling of the exponent.
	// Zero means base 10, the only radix the fast (Clinger) and
	// moderate (Eisel-Lemire) paths handle; any other radix always goes
	// through the exact multi-precision path.
	Radix int
	// ExponentChar is the byte introducing an exponent, matched
	// case-insensitively. Zero means the radix-appropriate default:
	// 'e' for every radix except 16, where 'p' is idiomatic (matching
	// C's and Go's own hexadecimal float literals, which always use
	// 'p' since 'e' is itself a valid hex digit).
	ExponentChar byte
	// Lossy permits the fast (Clinger) and moderate (Eisel-Lemire) paths
	// to return their result even when they cannot prove it is
	// correctly rounded, skipping the exact big-decimal fallback. Lossy
	// parsing is only meaningful under NearestTiesEven: any other
	// combination is rejected outright rather than defining what "lossy
	// ties-away" would even mean, the eager-validation stance DESIGN.md
	// records for this decision.
	Lossy bool
	// NanString and InfString override the format's default special
	// value spellings ("NaN", "Infinity" / "Inf"). A nil slice means
	// "use the format default".
	NanString []byte
	InfString []byte
}

// DefaultParseFloatOptions returns Standard-grammar, base-10,
// correctly-rounded, ties-to-even options.
func DefaultParseFloatOptions() ParseFloatOptions {
	return ParseFloatOptions{Format: format.Standard, Rounding: NearestTiesEven, Radix: 10}
}

func (o ParseFloatOptions) validate() *Error {
	if o.Lossy && o.Rounding != NearestTiesEven {
		return &Error{Kind: ErrInvalidOptions}
	}
	if r := o.radix(); r < 2 || r > 36 {
		return &Error{Kind: ErrInvalidBase}
	}
	return nil
}

func (o ParseFloatOptions) radix() int {
	if o.Radix == 0 {
		return 10
	}
	return o.Radix
}

func (o ParseFloatOptions) exponentChar() byte {
	if o.ExponentChar != 0 {
		return o.ExponentChar
	}
	if o.radix() == 16 {
		return 'p'
	}
	return 'e'
}

func (o ParseFloatOptions) nanString() []byte {
	if o.NanString != nil {
		return o.NanString
	}
	return []byte("NaN")
}

func (o ParseFloatOptions) infString() []byte {
	if o.InfString != nil {
		return o.InfString
	}
	return []byte("Infinity")
}

// WriteFloatOptions configures WriteFloat.
type WriteFloatOptions struct {
	Format format.Format
	// Radix is the digit radix to write the mantissa in. Zero means
	// base 10.
	Radix int
	// ExponentChar is the byte written before a written exponent. Zero
	// means the radix-appropriate default (see ParseFloatOptions).
	ExponentChar byte
	// Uppercase selects uppercase letters for digit values above 9 when
	// Radix exceeds 10, mirroring WriteIntegerOptions.Uppercase.
	Uppercase bool
	// NanString and InfString override the written special-value
	// spellings; nil means "use the conventional spelling".
	NanString []byte
	InfString []byte
}

// DefaultWriteFloatOptions returns Standard-grammar, base-10 options
// with the conventional NaN/Infinity spellings and the radix-appropriate
// default exponent marker (see exponentChar).
func DefaultWriteFloatOptions() WriteFloatOptions {
	return WriteFloatOptions{Format: format.Standard, Radix: 10}
}

func (o WriteFloatOptions) validate() *Error {
	if r := o.radix(); r < 2 || r > 36 {
		return &Error{Kind: ErrInvalidBase}
	}
	return nil
}

func (o WriteFloatOptions) radix() int {
	if o.Radix == 0 {
		return 10
	}
	return o.Radix
}

func (o WriteFloatOptions) exponentChar() byte {
	if o.ExponentChar != 0 {
		return o.ExponentChar
	}
	if o.radix() == 16 {
		return 'p'
	}
	return 'e'
}

func (o WriteFloatOptions) nanString() []byte {
	if o.NanString != nil {
		return o.NanString
	}
	return []byte("NaN")
}

func (o WriteFloatOptions) infString() []byte {
	if o.InfString != nil {
		return o.InfString
	}
	return []byte("Infinity")
}
