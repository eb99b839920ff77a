package format

// must builds a Format from the already configured Builder b, panicking
// on error. Used only for the package-level preset constants below, all
// of which are fixed, hand-checked configurations — a panic here would
// mean this package itself is broken, not that caller input is bad.
func must(b *Builder) Format {
	fmt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return fmt
}

// Standard is the permissive default: no digit separators, leading zeros
// and special values allowed, signs optional except a required leading
// digit. Equivalent to what strconv.ParseFloat/ParseInt accept.
var Standard = must(NewBuilder().
	RequiredIntegerDigits(true).
	RequiredExponentDigits(true))

// Permissive accepts nearly anything: optional digits everywhere,
// leading zeros, no sign restrictions. Suitable for best-effort ingestion
// of loosely-formatted numeric text.
var Permissive = must(NewBuilder())

// Ignore returns a Format identical to Standard but accepting sep as a
// digit separator anywhere within the mantissa and exponent. Named after
// rust-lexical's format of the same name: "ignore this character
// wherever it appears between digits".
func Ignore(sep byte) Format {
	return must(NewBuilder().
		RequiredIntegerDigits(true).
		RequiredExponentDigits(true).
		DigitSeparator(sep).
		DigitSeparatorFlags(true))
}

// JSON matches RFC 8259: no leading zeros, no leading '+', a required
// digit before and after any decimal point, no digit separators, no
// special values.
var JSON = must(NewBuilder().
	NoPositiveMantissaSign(true).
	RequiredIntegerDigits(true).
	RequiredFractionDigits(true).
	RequiredExponentDigits(true).
	NoIntegerLeadingZeros(true).
	NoSpecial(true))

// JSON5 relaxes JSON: leading/trailing decimal points and Infinity/NaN
// are allowed, still no digit separators.
var JSON5 = must(NewBuilder().
	RequiredExponentDigits(true))

// TOML matches the TOML v1.0 float/integer grammar: underscores allowed
// between digits only (never leading, trailing, or consecutive), no
// leading zeros.
var TOML = must(NewBuilder().
	RequiredIntegerDigits(true).
	RequiredFractionDigits(true).
	RequiredExponentDigits(true).
	NoIntegerLeadingZeros(true).
	DigitSeparator('_').
	IntegerInternalSeparator(true).
	FractionInternalSeparator(true).
	ExponentInternalSeparator(true))

// YAML matches YAML 1.2's core number schema: no digit separators,
// leading zeros on the integer part allowed, optional sign.
var YAML = must(NewBuilder().
	RequiredIntegerDigits(true).
	RequiredExponentDigits(true))

// Rust matches Rust's str::parse::<f64> grammar: no digit separators, no
// leading-zero restriction, case-sensitive inf/NaN spelling.
var Rust = must(NewBuilder().
	RequiredMantissaDigits(true).
	RequiredExponentDigits(true).
	CaseSensitiveSpecial(true))

// RustLiteral matches a Rust source-code floating point literal: '_' is
// a legal digit separator between, after, and repeated among the digits
// of the integer, fraction, and exponent parts, but never leading one of
// those parts; an exponent-bearing literal with no fraction part is legal
// ("1e10" is a valid f64 literal).
var RustLiteral = must(NewBuilder().
	RequiredIntegerDigits(true).
	RequiredExponentDigits(true).
	DigitSeparator('_').
	IntegerInternalSeparator(true).IntegerTrailingSeparator(true).
	FractionInternalSeparator(true).FractionTrailingSeparator(true).
	ExponentInternalSeparator(true).ExponentTrailingSeparator(true).
	IntegerConsecutiveSeparator(true).FractionConsecutiveSeparator(true).
	ExponentConsecutiveSeparator(true).
	CaseSensitiveSpecial(true))

// C matches C11's strtod grammar: no digit separators, hex float
// notation is a distinct radix handled by the caller's options, not this
// grammar.
var C = must(NewBuilder().
	RequiredMantissaDigits(true).
	RequiredExponentDigits(true))

// CLiteral matches a C source floating point literal: a digit is
// required before or after the decimal point but not both, no separators.
var CLiteral = must(NewBuilder().
	RequiredMantissaDigits(true).
	RequiredExponentDigits(true))

// CXX14 matches C++14, which added single-quote digit separators to
// numeric literals.
var CXX14 = must(NewBuilder().
	RequiredExponentDigits(true).
	DigitSeparator('\'').
	DigitSeparatorFlags(true).
	IntegerLeadingSeparator(false).FractionLeadingSeparator(false))

// Python matches Python 3.6+'s float() and literal grammar: '_' digit
// separators between digits only, no leading zeros on decimal integer
// literals handled separately by the caller (this grammar covers float
// parsing, where a leading zero like "0.5" is legal).
var Python = must(NewBuilder().
	RequiredMantissaDigits(true).
	RequiredExponentDigits(true).
	DigitSeparator('_').
	IntegerInternalSeparator(true).
	FractionInternalSeparator(true).
	ExponentInternalSeparator(true))

// Java matches Java's Double.parseDouble grammar: no digit separators in
// strings (only in source literals, see JavaLiteral), case-insensitive
// Infinity/NaN.
var Java = must(NewBuilder().
	RequiredMantissaDigits(true).
	RequiredExponentDigits(true))

// JavaLiteral matches a Java source floating point literal: '_' allowed
// between digits, never adjacent to a sign, decimal point, or exponent
// character.
var JavaLiteral = must(NewBuilder().
	RequiredMantissaDigits(true).
	RequiredExponentDigits(true).
	DigitSeparator('_').
	IntegerInternalSeparator(true).
	FractionInternalSeparator(true).
	ExponentInternalSeparator(true))

// JavaScript matches ECMA-262's Number() / parseFloat grammar: no digit
// separators; leading zeros are not rejected.
var JavaScript = must(NewBuilder().
	RequiredIntegerDigits(true).
	RequiredExponentDigits(true))

// Go matches Go's strconv.ParseFloat grammar directly: underscores are
// legal in Go's own numeric literals (not via ParseFloat, which rejects
// them) so this preset models ParseFloat's actual, stricter acceptance:
// no separators, optional leading zeros, case-insensitive inf/nan.
var Go = must(NewBuilder().
	RequiredMantissaDigits(true).
	RequiredExponentDigits(true))

// GoLiteral matches a Go source floating point literal, where '_' may
// separate any two digits but never lead or trail a digit run.
var GoLiteral = must(NewBuilder().
	RequiredMantissaDigits(true).
	RequiredExponentDigits(true).
	DigitSeparator('_').
	IntegerInternalSeparator(true).
	FractionInternalSeparator(true).
	ExponentInternalSeparator(true))

// CSharp matches C#'s double.Parse default grammar: no digit separators,
// optional thousands/leading zero handling left to NumberStyles (not
// modeled here, since NumberStyles is a caller-side option rather than a
// grammar fact).
var CSharp = must(NewBuilder().
	RequiredMantissaDigits(true).
	RequiredExponentDigits(true))

// Ruby matches Ruby's Float() and literal grammar: '_' separators
// between digits only, a digit required both before and after any
// decimal point (Ruby rejects "1." and ".1").
var Ruby = must(NewBuilder().
	RequiredIntegerDigits(true).
	RequiredFractionDigits(true).
	RequiredExponentDigits(true).
	DigitSeparator('_').
	IntegerInternalSeparator(true).
	FractionInternalSeparator(true))

// Swift matches Swift's floating point literal grammar: '_' between
// digits only, digit required on both sides of the decimal point.
var Swift = must(NewBuilder().
	RequiredIntegerDigits(true).
	RequiredFractionDigits(true).
	RequiredExponentDigits(true).
	DigitSeparator('_').
	IntegerInternalSeparator(true).
	FractionInternalSeparator(true).
	ExponentInternalSeparator(true))

// Kotlin mirrors Java's literal grammar.
var Kotlin = JavaLiteral

// Haskell matches Haskell 2010's Read Double grammar: a digit required
// on both sides of the decimal point, no separators, no leading '+'.
var Haskell = must(NewBuilder().
	RequiredIntegerDigits(true).
	RequiredFractionDigits(true).
	RequiredExponentDigits(true).
	NoPositiveMantissaSign(true))

// Julia matches Julia's literal grammar: '_' between digits anywhere.
var Julia = must(NewBuilder().
	RequiredIntegerDigits(true).
	RequiredExponentDigits(true).
	DigitSeparator('_').
	IntegerInternalSeparator(true).
	FractionInternalSeparator(true).
	ExponentInternalSeparator(true))

// PHP matches PHP's (float) cast / is_numeric grammar: no digit
// separators (PHP 7.4 added '_' only inside source literals, see
// PHPLiteral).
var PHP = must(NewBuilder().
	RequiredMantissaDigits(true).
	RequiredExponentDigits(true))

// PHPLiteral matches a PHP 7.4+ source numeric literal: '_' between
// digits only.
var PHPLiteral = must(NewBuilder().
	RequiredMantissaDigits(true).
	RequiredExponentDigits(true).
	DigitSeparator('_').
	IntegerInternalSeparator(true).
	FractionInternalSeparator(true).
	ExponentInternalSeparator(true))

// XML matches the XML Schema "double" datatype grammar: digit required
// on both sides of the decimal point, no separators, case-sensitive
// INF/NaN spelling.
var XML = must(NewBuilder().
	RequiredIntegerDigits(true).
	RequiredFractionDigits(true).
	RequiredExponentDigits(true).
	CaseSensitiveSpecial(true))

// SQLite matches SQLite's numeric literal grammar, which is close to
// C's: digit required before or after the point but not necessarily
// both.
var SQLite = must(NewBuilder().
	RequiredMantissaDigits(true).
	RequiredExponentDigits(true))

// PostgreSQL matches PostgreSQL's numeric literal grammar: a digit
// required before or after the decimal point.
var PostgreSQL = SQLite

// CSV has no single universal float grammar; this preset models the
// common "permissive, no separators, no special values" convention most
// CSV consumers assume in the absence of a documented dialect.
var CSV = must(NewBuilder().
	NoSpecial(true))

// INI mirrors CSV's permissive-but-no-specials convention.
var INI = CSV
