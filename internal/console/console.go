package console

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"conch/internal/editor"
	"conch/internal/model"
	"conch/internal/runner"
)

// Runner executes a finished command line and returns its stdout.
type Runner interface {
	Run(line string) (string, error)
}

// Presenter is the display the console draws into and reads input from.
type Presenter interface {
	// PollEvents returns the input events that arrived since the last call.
	PollEvents() ([]editor.Event, error)
	// Draw displays a frame.
	Draw(Frame) error
}

// Frame is everything a presenter needs to draw one iteration.
type Frame struct {
	Transcript string
	Prompt     string
	Pending    string
}

func (f Frame) String() string {
	return f.Transcript + "\n" + f.Prompt + f.Pending
}

// Options tune console behaviour.
type Options struct {
	// NoEcho stops the submitted prompt line from being copied into the
	// transcript ahead of the command output.
	NoEcho bool
}

// Console ties the line editor, the transcript and the runner together.
type Console struct {
	editor     *editor.LineEditor
	transcript Transcript
	runner     Runner
	opts       Options
	logger     *slog.Logger
}

// New returns a console with an empty transcript. A nil logger uses
// slog.Default.
func New(r Runner, opts Options, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{
		editor: editor.New(logger),
		runner: r,
		opts:   opts,
		logger: logger,
	}
}

// Pending returns the line being edited.
func (c *Console) Pending() string {
	return c.editor.Line()
}

// Transcript returns everything printed so far.
func (c *Console) Transcript() string {
	return c.transcript.String()
}

// Frame returns the current frame.
func (c *Console) Frame() Frame {
	return Frame{
		Transcript: c.transcript.String(),
		Prompt:     model.Prompt,
		Pending:    c.editor.Line(),
	}
}

// Step applies one iteration worth of events and reports whether the session
// should end. At most one command runs per call; later submits in the same
// batch are dropped.
func (c *Console) Step(events []editor.Event) (quit bool) {
	executed := false
	for _, ev := range events {
		switch c.editor.Apply(ev) {
		case editor.ActionCancel:
			return true
		case editor.ActionSubmit:
			if executed {
				c.logger.Debug("dropping extra submit", "line", c.editor.Line())
				continue
			}
			executed = c.Submit()
		}
	}
	return false
}

// Submit runs the pending line and reports whether a program was executed.
// The pending line is cleared only when the run succeeds.
func (c *Console) Submit() bool {
	line := c.editor.Line()
	if strings.TrimSpace(line) == "" {
		return false
	}
	out, err := c.runner.Run(line)
	switch {
	case err == nil:
		c.echo(line)
		c.transcript.Append(out)
		c.editor.Clear()
		return true
	case errors.Is(err, runner.ErrEmptyCommand):
		return false
	case errors.Is(err, runner.ErrUnresolvedProgram):
		c.logger.Debug("command not found", "line", line, "err", err)
		return false
	default:
		c.logger.Warn("command failed", "line", line, "err", err)
		c.echo(line)
		c.transcript.Append(model.ErrorPrefix + err.Error() + "\n")
		return true
	}
}

func (c *Console) echo(line string) {
	if c.opts.NoEcho {
		return
	}
	c.transcript.Append(model.EchoPrefix + line + "\n")
}

// Run drives the frame loop until the user cancels or the presenter fails.
// Presenter failures are fatal and returned.
func (c *Console) Run(p Presenter) error {
	for {
		events, err := p.PollEvents()
		if err != nil {
			c.logger.Error("presenter input failed", "err", err)
			return fmt.Errorf("poll events: %w", err)
		}
		if c.Step(events) {
			c.logger.Info("session closed")
			return nil
		}
		if err := p.Draw(c.Frame()); err != nil {
			c.logger.Error("presenter draw failed", "err", err)
			return fmt.Errorf("draw: %w", err)
		}
	}
}
