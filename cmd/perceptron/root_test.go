package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeInput stores content in a temp file and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{}, args...)) // nil would fall back to os.Args
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

const diagonals = "(1, 1) (2, 2)\n(-1, -1) (-2, -2)\n"

// TestRun_Converges is the end-to-end happy path.
func TestRun_Converges(t *testing.T) {
	out, _, err := execute(t, "--init", "zeros", writeInput(t, diagonals))
	require.NoError(t, err)
	assert.Equal(t,
		"initial weight vector w = (0, 0, 0)\n"+
			"max iterations = 1000, learning rate C = 1\n"+
			"solution vector w = (1, 1, 1)\n"+
			"converged after 2 epochs\n",
		out)
}

// TestRun_RandomInitIsReproducible checks that seed 0 selects the fixed
// default seed, so repeated runs print the same initial weights.
func TestRun_RandomInitIsReproducible(t *testing.T) {
	path := writeInput(t, diagonals)
	first, errOut, err := execute(t, path)
	require.NoError(t, err)
	assert.Contains(t, errOut, `"seed": 1`)

	second, _, err := execute(t, "--seed", "0", path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "converged after")

	explicit, _, err := execute(t, "--seed", "1", path)
	require.NoError(t, err)
	assert.Equal(t, first, explicit)

	other, errOut, err := execute(t, "--seed", "7", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, `"seed": 7`)
	assert.NotEqual(t, first, other)
}

// TestRun_NotConverged prints the literal failure line and exits cleanly.
func TestRun_NotConverged(t *testing.T) {
	out, _, err := execute(t, "--max-iter", "5", writeInput(t, "(0)\n(0)\n"))
	require.NoError(t, err, "non-convergence is not an error")
	assert.Contains(t, out, "max iterations = 5")
	assert.Contains(t, out, "\nfailed\n")
}

// TestRun_DebugLogsEpochs wires the epoch hook to the logger.
func TestRun_DebugLogsEpochs(t *testing.T) {
	_, errOut, err := execute(t, "--log-level", "debug", "--init", "zeros", writeInput(t, diagonals))
	require.NoError(t, err)
	assert.Contains(t, errOut, "training started")
	assert.Contains(t, errOut, "epoch finished")
	assert.Contains(t, errOut, "training finished")
	assert.Contains(t, errOut, "root.go:", "debug entries carry the caller line")

	_, errOut, err = execute(t, "--init", "zeros", writeInput(t, diagonals))
	require.NoError(t, err)
	assert.Contains(t, errOut, "training started")
	assert.NotContains(t, errOut, "root.go:")
}

// TestRun_ConfigFileAndEnv covers viper-backed configuration sources.
func TestRun_ConfigFileAndEnv(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "perceptron.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("max-iter: 3\ninit: ones\n"), 0o600))

	out, _, err := execute(t, "--config", cfgPath, writeInput(t, "(0)\n(0)\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "initial weight vector w = (1, 1)")
	assert.Contains(t, out, "max iterations = 3")

	t.Setenv("PERCEPTRON_RATE", "0.5")
	out, _, err = execute(t, "--init", "zeros", writeInput(t, diagonals))
	require.NoError(t, err)
	assert.Contains(t, out, "solution vector w = (0.5, 0.5, 0.5)")

	out, _, err = execute(t, "--init", "zeros", "--rate", "2", writeInput(t, diagonals))
	require.NoError(t, err)
	assert.Contains(t, out, "solution vector w = (2, 2, 2)", "flags override the environment")
}

// TestRun_Plot writes the optional figure.
func TestRun_Plot(t *testing.T) {
	plotPath := filepath.Join(t.TempDir(), "boundary.svg")
	_, errOut, err := execute(t, "--init", "zeros", "--plot", plotPath, writeInput(t, diagonals))
	require.NoError(t, err)
	assert.FileExists(t, plotPath)
	assert.Contains(t, errOut, "plot written")

	// 1-D data cannot be drawn; the run still succeeds.
	_, errOut, err = execute(t, "--plot", plotPath, writeInput(t, "(1)\n(-1)\n"))
	require.NoError(t, err)
	assert.Contains(t, errOut, "plot skipped")
}

// TestRun_Errors checks that each failure class has its own message.
func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
		msg  string
	}{
		{"no arguments", func(*testing.T) []string { return nil }, "expected exactly one input file, got 0"},
		{"two arguments", func(*testing.T) []string { return []string{"a", "b"} }, "expected exactly one input file, got 2"},
		{"missing file", func(t *testing.T) []string {
			return []string{filepath.Join(t.TempDir(), "nope.txt")}
		}, "cannot open input"},
		{"one line", func(t *testing.T) []string { return []string{writeInput(t, "(1, 2)\n")} }, "input must contain two lines"},
		{"bad tuple", func(t *testing.T) []string { return []string{writeInput(t, "(1, 2)\n(3, x)\n")} }, "malformed input file"},
		{"dimension mismatch", func(t *testing.T) []string {
			return []string{writeInput(t, "(1, 2)\n(1, 2, 3)\n")}
		}, "inconsistent feature dimension"},
		{"empty sample set", func(t *testing.T) []string { return []string{writeInput(t, "\n\n")} }, "empty sample set"},
		{"bad init", func(t *testing.T) []string {
			return []string{"--init", "gaussian", writeInput(t, diagonals)}
		}, "unknown init mode"},
		{"bad max iter", func(t *testing.T) []string {
			return []string{"--max-iter", "0", writeInput(t, diagonals)}
		}, "max-iter must be > 0"},
		{"bad rate", func(t *testing.T) []string {
			return []string{"--rate", "-1", writeInput(t, diagonals)}
		}, "rate must be > 0"},
		{"bad log level", func(t *testing.T) []string {
			return []string{"--log-level", "loud", writeInput(t, diagonals)}
		}, "unknown level"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			out, errOut, err := execute(t, tc.args(t)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
			assert.Contains(t, errOut, "Error:")
			assert.NotContains(t, out, "solution vector")
		})
	}
}

// TestParseInitMode covers accepted spellings.
func TestParseInitMode(t *testing.T) {
	for in, want := range map[string]string{
		"":       "random",
		"random": "random",
		"Zeros":  "zeros",
		"zero":   "zeros",
		" ones ": "ones",
		"one":    "ones",
	} {
		got, err := parseInitMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}
	_, err := parseInitMode("normal")
	assert.ErrorIs(t, err, errBadInitMode)
}
