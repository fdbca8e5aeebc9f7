package record_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/andys/csvrec/engine"
	"github.com/andys/csvrec/record"
)

func Example() {
	in := strings.NewReader("Name,Given Name,factor1,factor2\nHurtig,Hugo,5.4,4.6\n")
	eng := engine.New(in)
	r := record.New(eng, record.WithHeaderRow(), record.WithCombiner(eng))

	rec, err := r.Fetch()
	if err != nil {
		panic(err)
	}
	fmt.Println(rec["Name"], rec["factor1"])

	// Positional access and pass-through formatting.
	if err := r.Print(os.Stdout, r.Fields()); err != nil {
		panic(err)
	}
	// Output:
	// Hurtig 5.4
	// Hurtig,Hugo,5.4,4.6
}
