package bodymetrics

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// runCLI executes rootCmd and returns stdout. Flag variables are package
// globals, so they are reset to their defaults before each run.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Setenv("BODYMETRICS_OUTPUT", "text")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestRootHelp(t *testing.T) {
	out, err := runCLI(t, "--help")
	require.NoError(t, err)
	require.Contains(t, out, "bodymetrics")
	require.Contains(t, out, "macros")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "bodymetrics dev")
}

func TestRejectsUnknownOutputFormat(t *testing.T) {
	_, err := runCLI(t, "--output", "xml", "bmi", "--height", "176", "--weight", "73")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid output format")
}

func TestOutputFallsBackToConfigAfterFlaggedRun(t *testing.T) {
	_, err := runCLI(t, "--output", "json", "bmi", "--height", "176", "--weight", "73")
	require.NoError(t, err)

	out, err := runCLI(t, "bmi", "--height", "176", "--weight", "73")
	require.NoError(t, err)
	require.Equal(t, "BMI: 23.57 (normal)\n", out)
}
