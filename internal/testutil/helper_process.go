package testutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"
)

// Environment variables used by the helper process pattern.
const (
	// EnvWantHelperProcess signals that the test binary should run as the CLI.
	EnvWantHelperProcess = "GO_WANT_HELPER_PROCESS"
	// EnvHelperProcessArgs contains the CLI arguments (JSON array).
	EnvHelperProcessArgs = "GO_HELPER_PROCESS_ARGS"
)

// CommandResult captures the result of running the CLI in a subprocess.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// HelperArgs reports whether the current test binary was started by
// RunHelperProcess, and with which CLI arguments. It panics when the
// arguments cannot be decoded.
//
// Usage in a main package test:
//
//	func TestHelperProcess(t *testing.T) {
//	    args, ok := testutil.HelperArgs()
//	    if !ok {
//	        return
//	    }
//	    os.Args = append([]string{"changelog-split"}, args...)
//	    main()
//	    os.Exit(0)
//	}
func HelperArgs() ([]string, bool) {
	if os.Getenv(EnvWantHelperProcess) != "1" {
		return nil, false
	}

	var args []string
	if raw := os.Getenv(EnvHelperProcessArgs); raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			panic(fmt.Sprintf("decoding %s: %v", EnvHelperProcessArgs, err))
		}
	}
	return args, true
}

// RunHelperProcess re-executes the test binary as the CLI in dir and waits
// for it to exit. env entries are appended to the inherited environment.
func RunHelperProcess(t *testing.T, dir string, env []string, args ...string) CommandResult {
	t.Helper()

	encoded, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("encoding helper args: %v", err)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestHelperProcess$")
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		EnvWantHelperProcess+"=1",
		EnvHelperProcessArgs+"="+string(encoded),
	)
	cmd.Env = append(cmd.Env, env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	result := CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		t.Fatalf("running helper process: %v", err)
	}
	return result
}
