package context_test

import (
	"fmt"

	"github.com/numeric-go/lexical/context"
	"github.com/numeric-go/lexical/format"
)

// Example demonstrates building a Context once and reusing it to both
// write and parse numbers under the same grammar.
func Example() {
	ctx := context.New(format.JSON)

	var buf [32]byte
	n := context.WriteFloat[float64](ctx, 3.14159, buf[:])
	fmt.Println(string(buf[:n]))

	r := context.ParseInt[int](ctx, []byte("42"))
	fmt.Println(r.Value, r.Ok())

	// Output:
	// 3.14159
	// 42 true
}
