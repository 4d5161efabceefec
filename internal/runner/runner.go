package runner

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"unicode/utf8"

	"conch/internal/model"
)

var (
	// ErrEmptyCommand is returned for a blank or whitespace-only line.
	ErrEmptyCommand = errors.New("empty command")
	// ErrUnresolvedProgram is returned when the program is not on the search path.
	ErrUnresolvedProgram = errors.New("program not found on search path")
	// ErrSpawnFailed is returned when the OS could not start the process.
	ErrSpawnFailed = errors.New("failed to start process")
	// ErrInvalidOutputEncoding is returned when stdout is not valid UTF-8.
	ErrInvalidOutputEncoding = errors.New("output is not valid UTF-8")
)

// Resolver locates a program by name.
type Resolver interface {
	Resolve(name string) (string, bool)
}

// Config tunes how command lines become processes.
type Config struct {
	// SkipArgZero drops the program name from the arguments. By default the
	// name is passed again as the first argument, so "echo hi" starts echo
	// with the arguments "echo" and "hi".
	SkipArgZero bool
}

// Runner executes command lines synchronously and captures their output.
type Runner struct {
	resolver Resolver
	cfg      Config
	logger   *slog.Logger
}

// New returns a Runner. A nil logger uses slog.Default.
func New(resolver Resolver, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{resolver: resolver, cfg: cfg, logger: logger}
}

// Prepare splits line into tokens and resolves the program.
func (r *Runner) Prepare(line string) (model.ResolvedCommand, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return model.ResolvedCommand{}, ErrEmptyCommand
	}

	name := tokens[0]
	path, ok := r.resolver.Resolve(name)
	if !ok {
		return model.ResolvedCommand{}, fmt.Errorf("%w: %s", ErrUnresolvedProgram, name)
	}

	args := tokens
	if r.cfg.SkipArgZero {
		args = tokens[1:]
	}
	return model.ResolvedCommand{Path: path, Name: name, Args: args}, nil
}

// Run executes line and returns what the program wrote to stdout. It blocks
// until the process exits. Stdin is not forwarded, stderr is discarded and a
// non-zero exit status is not an error.
func (r *Runner) Run(line string) (string, error) {
	rc, err := r.Prepare(line)
	if err != nil {
		return "", err
	}
	return r.Exec(rc)
}

// Exec starts a resolved command and captures its stdout.
func (r *Runner) Exec(rc model.ResolvedCommand) (string, error) {
	var stdout bytes.Buffer
	cmd := exec.Command(rc.Path, rc.Args...)
	// Run exactly the resolved file; exec must not search PATH again.
	cmd.Path = rc.Path
	cmd.Err = nil
	cmd.Stdout = &stdout

	r.logger.Debug("spawning", "path", rc.Path, "args", rc.Args)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s: %w", ErrSpawnFailed, rc.Path, err)
		}
		r.logger.Debug("process exited", "path", rc.Path, "status", exitErr.ExitCode())
	}

	if !utf8.Valid(stdout.Bytes()) {
		return "", fmt.Errorf("%w: %s", ErrInvalidOutputEncoding, rc.Path)
	}
	return stdout.String(), nil
}
