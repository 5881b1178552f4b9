// Command inspectgen describes annotated types and generates static
// inspector functions for them.
package main

import (
	"os"

	"inspector-kit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
