// Command stitch is the command-line entry point for the gradient-domain
// image compositor.
package main

import (
	"fmt"
	"os"

	"github.com/Fepozopo/stitch/pkg/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "stitch: %v\n", err)
		os.Exit(1)
	}
}
