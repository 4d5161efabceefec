package editor

import (
	"log/slog"
	"strings"
)

// InsertChar appends c to line. Only printable ASCII is accepted; anything
// else leaves line unchanged.
func InsertChar(line string, c byte) string {
	if c < ' ' || c > '~' {
		return line
	}
	return line + string(c)
}

// DeleteChar removes the last character of line.
func DeleteChar(line string) string {
	if line == "" {
		return line
	}
	return line[:len(line)-1]
}

// DeleteWord drops the last whitespace-delimited token and joins what is
// left with single spaces.
func DeleteWord(line string) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return ""
	}
	return strings.Join(words[:len(words)-1], " ")
}

// LineEditor holds the pending command line.
type LineEditor struct {
	line   string
	logger *slog.Logger
}

// New returns an empty editor. A nil logger uses slog.Default.
func New(logger *slog.Logger) *LineEditor {
	if logger == nil {
		logger = slog.Default()
	}
	return &LineEditor{logger: logger}
}

// Line returns the pending command line.
func (e *LineEditor) Line() string {
	return e.line
}

// Clear empties the pending line.
func (e *LineEditor) Clear() {
	e.line = ""
}

// Apply performs the edit bound to ev and reports the action taken. Submit
// and cancel are left for the caller to act on.
func (e *LineEditor) Apply(ev Event) Action {
	action, c := Lookup(ev)
	switch action {
	case ActionInsert:
		e.line = InsertChar(e.line, c)
	case ActionDeleteChar:
		e.line = DeleteChar(e.line)
	case ActionDeleteWord:
		e.line = DeleteWord(e.line)
	case ActionNone:
		e.logger.Debug("unhandled key", "event", ev.String(), "key", int(ev.Key), "mod", int(ev.Mod))
	}
	return action
}
