// Package headless drives the console from a plain stream, for when stdin or
// stdout is not a terminal.
package headless

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"conch/internal/console"
	"conch/internal/editor"
)

// Presenter reads one command per input line and prints transcript output
// as it appears.
type Presenter struct {
	in      *bufio.Reader
	out     io.Writer
	printed int
	pending string
	eof     bool
	closed  bool
}

// New returns a Presenter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Presenter {
	return &Presenter{in: bufio.NewReader(in), out: out}
}

// PollEvents turns the next input line into key presses followed by Enter.
// A line left over from a command that did not run is deleted first. The
// call after end of input returns a quit event.
func (p *Presenter) PollEvents() ([]editor.Event, error) {
	if p.closed {
		return nil, errors.New("presenter closed")
	}
	if p.eof {
		return []editor.Event{editor.Quit()}, nil
	}

	line, err := p.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF):
		p.eof = true
	case err != nil:
		return nil, err
	}
	if line == "" {
		return nil, nil
	}

	events := clearEvents(p.pending)
	for _, r := range strings.TrimRight(line, "\r\n") {
		events = append(events, editor.RuneEvent(r))
	}
	return append(events, editor.KeyDown(editor.KeyEnter, editor.ModNone)), nil
}

// clearEvents returns the word deletions that empty line.
func clearEvents(line string) []editor.Event {
	if line == "" {
		return nil
	}
	n := len(strings.Fields(line))
	if n == 0 {
		n = 1
	}
	events := make([]editor.Event, n)
	for i := range events {
		events[i] = editor.KeyDown(editor.KeyBackspace, editor.ModCtrl)
	}
	return events
}

// Draw writes the part of the transcript not yet printed. The prompt and
// pending line are not echoed back.
func (p *Presenter) Draw(f console.Frame) error {
	if p.closed {
		return errors.New("presenter closed")
	}
	if len(f.Transcript) < p.printed {
		return fmt.Errorf("transcript shrank from %d to %d bytes", p.printed, len(f.Transcript))
	}
	if _, err := io.WriteString(p.out, f.Transcript[p.printed:]); err != nil {
		return err
	}
	p.printed = len(f.Transcript)
	p.pending = f.Pending
	return nil
}

// Close releases the presenter. Later calls fail.
func (p *Presenter) Close() error {
	p.closed = true
	return nil
}
