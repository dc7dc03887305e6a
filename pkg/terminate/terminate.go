//go:generate mockgen -source=terminate.go -destination=mocks/mock_terminate.go -package=mocks

// Package terminate implements the one-shot `kill <pid>` command.
package terminate

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// ErrInvalidPID marks an argument that is not a positive integer pid.
var ErrInvalidPID = errors.New("invalid pid")

// ProcessTerminator asks the operating system to end a process immediately.
type ProcessTerminator interface {
	Terminate(pid int32) error
}

// ProcessKiller sends SIGKILL through gopsutil.
type ProcessKiller struct{}

// Terminate kills pid. It fails when the pid does not exist or the caller
// lacks permission.
func (ProcessKiller) Terminate(pid int32) error {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return fmt.Errorf("pid %d: %w", pid, err)
	}
	if err := proc.Kill(); err != nil {
		return fmt.Errorf("pid %d: %w", pid, err)
	}
	return nil
}

// Outcome is the result of one termination request.
type Outcome int

const (
	Terminated Outcome = iota
	Rejected
	InvalidInput
)

func (o Outcome) String() string {
	switch o {
	case Terminated:
		return "terminated"
	case Rejected:
		return "rejected"
	default:
		return "invalid input"
	}
}

// ExitCode maps the outcome to the process exit status.
func (o Outcome) ExitCode() int {
	switch o {
	case Terminated:
		return 0
	case Rejected:
		return 1
	default:
		return 2
	}
}

// ParsePID accepts a positive decimal pid. Zero and negative values would
// address process groups and are rejected.
func ParsePID(arg string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 32)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPID, arg)
	}
	return int32(n), nil
}

// Run validates arg, asks t to terminate it and reports the result: a success
// line on stdout, or the error on stderr. t is never called for invalid input.
func Run(t ProcessTerminator, arg string, stdout, stderr io.Writer) (Outcome, error) {
	pid, err := ParsePID(arg)
	if err != nil {
		fmt.Fprintln(stderr, "Error: Invalid PID.")
		return InvalidInput, err
	}
	if err := t.Terminate(pid); err != nil {
		fmt.Fprintf(stderr, "kill: %v\n", err)
		return Rejected, err
	}
	fmt.Fprintf(stdout, "Successfully sent SIGKILL to PID %d\n", pid)
	return Terminated, nil
}
