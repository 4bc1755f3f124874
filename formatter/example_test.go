package formatter_test

import (
	"fmt"

	"github.com/routelog/routelog/core"
	"github.com/routelog/routelog/formatter"
)

func ExampleNewLineFormatter() {
	f := formatter.NewLineFormatter()

	out, _ := f.Format(core.New(core.Error, "some_error"))
	fmt.Printf("%q\n", out)
	// Output:
	// "some_error\n"
}

func ExampleNewTagFormatter() {
	f := formatter.NewTagFormatter()

	out, _ := f.Format(core.New(core.Warning, "real warning"))
	fmt.Print(string(out))
	// Output:
	// [WARNING] real warning
}
