package validator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/json-validator-api/internal/types"
)

const (
	// ValidationTimeout is the maximum time to wait for a validator run.
	ValidationTimeout = 10 * time.Second
	// ProbeTimeout is the maximum time to wait for the java -version probe.
	ProbeTimeout = 5 * time.Second
	// DefaultClass is the entry class of the Java validator.
	DefaultClass = "JsonValidator"
)

// Runner invokes the external Java validator. The validator is treated as an
// opaque executable: it takes a file path, prints its verdict to stdout, and
// its exit code is not part of the contract.
type Runner struct {
	JavaBin   string
	Classpath string
	Class     string

	// Timeout and ProbeTimeout override the package defaults; tests use
	// short limits here.
	Timeout      time.Duration
	ProbeTimeout time.Duration

	// TempDir is where per-request input files are written. Defaults to
	// the system temp directory.
	TempDir string

	probes singleflight.Group
}

// NewRunner creates a Runner with defaults applied for empty fields.
func NewRunner(javaBin, classpath, class string) *Runner {
	if javaBin == "" {
		javaBin = "java"
	}
	if class == "" {
		class = DefaultClass
	}
	return &Runner{
		JavaBin:      javaBin,
		Classpath:    classpath,
		Class:        class,
		Timeout:      ValidationTimeout,
		ProbeTimeout: ProbeTimeout,
		TempDir:      os.TempDir(),
	}
}

// Validate writes input to a private temp file, runs the validator against it
// and parses the captured stdout. The temp file is removed on every exit
// path, including timeouts. Concurrent calls do not interfere: each gets its
// own uniquely named file.
func (r *Runner) Validate(ctx context.Context, input string) (*types.ValidationResult, error) {
	tempPath := filepath.Join(r.TempDir, fmt.Sprintf("json-input-%s.txt", uuid.New()))
	if err := os.WriteFile(tempPath, []byte(input), 0600); err != nil {
		return nil, &ProcessError{Message: "failed to write validator input file", Cause: err}
	}
	defer func() { _ = os.Remove(tempPath) }()

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.JavaBin, "-Dfile.encoding=UTF-8", "-cp", r.Classpath, r.Class, tempPath)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, &TimeoutError{Limit: r.Timeout}
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, &ProcessError{Message: "failed to run validator", Output: stderr.String(), Cause: runErr}
		}
		// A non-zero exit is a rejected input, not a failure; the verdict
		// is carried in the captured output.
	}
	if stderr.Len() > 0 {
		log.Printf("validator stderr: %s", strings.TrimSpace(stderr.String()))
	}

	return ParseOutput(stdout.String()), nil
}

// Probe reports whether the Java runtime is reachable. Concurrent probes are
// collapsed into a single java -version invocation.
func (r *Runner) Probe(ctx context.Context) bool {
	ok, _, _ := r.probes.Do("java-version", func() (any, error) {
		probeCtx, cancel := context.WithTimeout(ctx, r.ProbeTimeout)
		defer cancel()
		return exec.CommandContext(probeCtx, r.JavaBin, "-version").Run() == nil, nil
	})
	available, _ := ok.(bool)
	return available
}
