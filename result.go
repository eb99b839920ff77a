package lexical

// Result is the outcome of a parse: either a successfully parsed value of
// T together with the number of input bytes it consumed, or a failure
// describing why and where. Modeled as a plain struct rather than
// returning (T, int, error) so the three fields always travel together
// and a caller cannot accidentally read Value after discarding a non-nil
// Err, the same accident-by-construction concern an Accuracy return
// value avoids (stdlib.go: an operation's rounding Accuracy is always
// returned alongside the rounded Decimal, never separately).
type Result[T any] struct {
	Value    T
	Consumed int
	Err      *Error
}

// Ok reports whether the parse succeeded.
func (r Result[T]) Ok() bool { return r.Err == nil }

// ok constructs a successful Result.
func ok[T any](v T, consumed int) Result[T] {
	return Result[T]{Value: v, Consumed: consumed}
}

// errResult constructs a failed Result at the given byte index.
func errResult[T any](kind ErrorKind, index int) Result[T] {
	return Result[T]{Err: &Error{Kind: kind, Index: index}}
}
