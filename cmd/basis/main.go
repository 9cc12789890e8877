// Command basis is the CLI front end for the compiler: lexing, parsing,
// and an interactive REPL built on the same pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/basis-lang/basis/cmd/basis/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
