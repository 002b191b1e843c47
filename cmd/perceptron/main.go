// Command perceptron trains a two-class linear classifier from a text file.
//
// Usage:
//
//	perceptron [flags] <input-file>
//
// The input file holds class 1 points on its first line and class 2 points on
// its second, e.g.
//
//	(1, 1) (2, 2)
//	(-1, -1) (-2, -2)
//
// On convergence the solution vector and epoch count are printed; otherwise
// the literal "failed". Invalid arguments, missing files and malformed input
// exit with status 1.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
