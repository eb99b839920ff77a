// Package context bundles a number grammar together with parse and write
// options so a caller that repeatedly converts numbers under the same
// grammar does not have to reconstruct those options on every call.
// Adapted from the context.Context convention of bundling a precision
// and a rounding mode around repeated Decimal operations; here the
// bundled state is a format.Format plus the four options types in the
// root package, but the shape — a small struct built once through a
// constructor, then handed to many conversions — is the same.
package context

import (
	"math/big"

	lexical "github.com/numeric-go/lexical"
	"github.com/numeric-go/lexical/format"
)

// Context is a reusable bundle of a number grammar and the parse/write
// options derived from it.
type Context struct {
	format      format.Format
	parseInt    lexical.ParseIntegerOptions
	writeInt    lexical.WriteIntegerOptions
	parseFloat  lexical.ParseFloatOptions
	writeFloat  lexical.WriteFloatOptions
	intRadix    int
	uppercase   bool
}

// New builds a Context from f, using base 10 and NearestTiesEven
// rounding for both the integer and float options. Use the With*
// methods to adjust either before first use.
func New(f format.Format) *Context {
	c := &Context{format: f, intRadix: 10}
	c.parseInt = lexical.ParseIntegerOptions{Format: f, Radix: 10}
	c.writeInt = lexical.WriteIntegerOptions{Radix: 10}
	c.parseFloat = lexical.ParseFloatOptions{Format: f, Rounding: lexical.NearestTiesEven}
	c.writeFloat = lexical.WriteFloatOptions{Format: f, ExponentChar: 'e'}
	return c
}

// WithRadix sets the integer radix used by ParseInt/WriteInt and returns
// c for chaining.
func (c *Context) WithRadix(radix int) *Context {
	c.intRadix = radix
	c.parseInt.Radix = radix
	c.writeInt.Radix = radix
	return c
}

// WithUppercase sets whether WriteInt emits uppercase digits for radixes
// above 10.
func (c *Context) WithUppercase(uppercase bool) *Context {
	c.uppercase = uppercase
	c.writeInt.Uppercase = uppercase
	return c
}

// WithLossy enables or disables the float parser's lossy fast/moderate
// path acceptance. See ParseFloatOptions.Lossy.
func (c *Context) WithLossy(lossy bool) *Context {
	c.parseFloat.Lossy = lossy
	return c
}

// Format returns the grammar this context was built from.
func (c *Context) Format() format.Format { return c.format }

// ParseInt parses b as an integer of type T under c's grammar and radix.
func ParseInt[T lexical.Integer](c *Context, b []byte) lexical.Result[T] {
	return lexical.ParseInteger[T](b, c.parseInt)
}

// WriteInt writes v into out under c's radix and case settings.
func WriteInt[T lexical.Integer](c *Context, v T, out []byte) int {
	return lexical.WriteInteger[T](v, c.writeInt, out)
}

// ParseFloat parses b as a float of type T under c's grammar.
func ParseFloat[T lexical.Float](c *Context, b []byte) lexical.Result[T] {
	return lexical.ParseFloat[T](b, c.parseFloat)
}

// WriteFloat writes v into out under c's grammar.
func WriteFloat[T lexical.Float](c *Context, v T, out []byte) int {
	return lexical.WriteFloat[T](v, c.writeFloat, out)
}

// NewFloatFromBig converts x to the nearest float64 and writes it under
// c's write options into out, returning the byte count. Exists for
// interop with callers already holding a *big.Float; precision beyond
// float64 is not kept.
func NewFloatFromBig(c *Context, x *big.Float, out []byte) int {
	f64, _ := x.Float64()
	return WriteFloat(c, f64, out)
}
