package main

import (
	"fmt"
	"io"

	"heystupid/pkg/version"
)

// printVersion prints the version information
func printVersion(w io.Writer) {
	fmt.Fprint(w, version.Info())
}
