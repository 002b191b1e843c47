// Package report renders training results as the human-readable text the
// command line prints.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/perceptron/perceptron"
)

// Failed is the literal line printed when training does not converge.
const Failed = "failed"

// FormatVector renders v as "(a, b, c)" with two significant digits per
// component ("%.2g").
func FormatVector(v []float64) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%.2g", x)
	}
	b.WriteByte(')')

	return b.String()
}

// WriteHeader prints the starting weights and the training parameters.
func WriteHeader(w io.Writer, initial []float64, maxIter int, rate float64) error {
	_, err := fmt.Fprintf(w, "initial weight vector w = %s\nmax iterations = %d, learning rate C = %g\n",
		FormatVector(initial), maxIter, rate)
	return err
}

// Write prints the solution vector and epoch count on convergence, or the
// literal Failed line otherwise.
func Write(w io.Writer, res perceptron.Result) error {
	if !res.Converged() {
		_, err := fmt.Fprintln(w, Failed)
		return err
	}
	_, err := fmt.Fprintf(w, "solution vector w = %s\nconverged after %d epochs\n",
		FormatVector(res.Weights), res.Epochs)
	return err
}
