package validator

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFakeValidator writes an executable shell script standing in for the
// java binary. The script sees the same argument vector the real runtime
// would: -Dfile.encoding=UTF-8 -cp <classpath> <class> <inputFile>.
func writeFakeValidator(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "java")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755)
	require.NoError(t, err)
	return path
}

func newTestRunner(t *testing.T, script string) *Runner {
	t.Helper()
	r := NewRunner(writeFakeValidator(t, script), "libs", "JsonValidator")
	r.TempDir = t.TempDir()
	return r
}

func TestRunnerValidate_ValidVerdict(t *testing.T) {
	r := newTestRunner(t, `echo "Status: VALID JSON"
echo "JSON is well-formed and structurally valid"`)

	result, err := r.Validate(context.Background(), `{"a": 1}`)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "JSON is well-formed and structurally valid", result.Message)
	assert.Empty(t, result.Errors)
}

func TestRunnerValidate_InvalidVerdictWithNonZeroExit(t *testing.T) {
	// The validator's exit code is not part of the contract; only the
	// captured output determines the verdict.
	r := newTestRunner(t, `echo "Status: INVALID JSON"
echo "Syntax error at line 1"
echo ""
echo "Errors Found:"
echo "  1. Unexpected character"
echo "=========="
exit 2`)

	result, err := r.Validate(context.Background(), `{bad`)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "Syntax error at line 1", result.Message)
	assert.Equal(t, []string{"Unexpected character"}, result.Errors)
}

func TestRunnerValidate_InputFilePassedThrough(t *testing.T) {
	// The script echoes the input file content back, proving the candidate
	// text reaches the process via the temp file path argument.
	r := newTestRunner(t, `echo "Status: VALID JSON"
cat "$5"`)

	result, err := r.Validate(context.Background(), "the candidate text")
	require.NoError(t, err)
	assert.Equal(t, "the candidate text", result.Message)
}

func TestRunnerValidate_Timeout(t *testing.T) {
	r := newTestRunner(t, `sleep 5`)
	r.Timeout = 100 * time.Millisecond

	result, err := r.Validate(context.Background(), "{}")
	assert.Nil(t, result)

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, 100*time.Millisecond, timeoutErr.Limit)
}

func TestRunnerValidate_TempFileRemoved(t *testing.T) {
	tests := []struct {
		name   string
		script string
		limit  time.Duration
	}{
		{name: "normal completion", script: `echo "Status: VALID JSON"`, limit: ValidationTimeout},
		{name: "timeout", script: `sleep 5`, limit: 100 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRunner(t, tc.script)
			r.Timeout = tc.limit

			_, _ = r.Validate(context.Background(), "{}")

			entries, err := os.ReadDir(r.TempDir)
			require.NoError(t, err)
			assert.Empty(t, entries, "temp input file must be removed on every exit path")
		})
	}
}

func TestRunnerValidate_LaunchFailure(t *testing.T) {
	r := NewRunner(filepath.Join(t.TempDir(), "no-such-java"), "libs", "JsonValidator")
	r.TempDir = t.TempDir()

	result, err := r.Validate(context.Background(), "{}")
	assert.Nil(t, result)

	var procErr *ProcessError
	require.ErrorAs(t, err, &procErr)
	assert.NotNil(t, procErr.Cause)
}

func TestRunnerProbe(t *testing.T) {
	r := newTestRunner(t, `exit 0`)
	assert.True(t, r.Probe(context.Background()))

	r = NewRunner(filepath.Join(t.TempDir(), "no-such-java"), "libs", "JsonValidator")
	assert.False(t, r.Probe(context.Background()))
}

func TestNewRunner_Defaults(t *testing.T) {
	r := NewRunner("", "libs", "")
	assert.Equal(t, "java", r.JavaBin)
	assert.Equal(t, DefaultClass, r.Class)
	assert.Equal(t, ValidationTimeout, r.Timeout)
	assert.Equal(t, ProbeTimeout, r.ProbeTimeout)
}
