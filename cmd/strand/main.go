// Command strand is the interpreter's required external interface: a
// single positional argument naming the program file, exit 0 on a
// clean run, non-zero on any diagnostic (spec.md §6 "CLI").
package main

import (
	"fmt"
	"os"

	"strand/internal/driver"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <program-file>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := driver.Run(f, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
