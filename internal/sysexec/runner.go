// Package sysexec runs the external package and service managers.
// A command's exit status is the only success signal it reports.
package sysexec

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/AvengeMedia/webinstall/internal/log"
	"github.com/alessio/shellescape"
)

// Command is a single external program invocation.
type Command struct {
	Name string
	Args []string
	// Env entries are appended to the current environment.
	Env []string
}

// NewCommand builds a Command without extra environment.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// String renders the command as a copy-pasteable shell line.
func (c Command) String() string {
	var sb strings.Builder
	for _, kv := range c.Env {
		sb.WriteString(shellescape.Quote(kv))
		sb.WriteByte(' ')
	}
	sb.WriteString(shellescape.QuoteCommand(append([]string{c.Name}, c.Args...)))
	return sb.String()
}

// Runner executes commands and reports failure through the returned error.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExitError is returned when a command could not start or exited non-zero.
type ExitError struct {
	Command string
	Output  string
	Err     error
}

func (e *ExitError) Error() string {
	if last := lastLine(e.Output); last != "" {
		return fmt.Sprintf("%s: %v: %s", e.Command, e.Err, last)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

type execRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, c Command) error {
	line := c.String()
	log.Debugf("running %s", line)

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Debugf("%s failed: %s", line, strings.TrimSpace(string(output)))
		return &ExitError{Command: line, Output: string(output), Err: err}
	}
	return nil
}

func lastLine(output string) string {
	output = strings.TrimSpace(output)
	if i := strings.LastIndexByte(output, '\n'); i >= 0 {
		return strings.TrimSpace(output[i+1:])
	}
	return output
}
