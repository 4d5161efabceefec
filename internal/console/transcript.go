package console

import "strings"

// Transcript is the append-only scrollback shown above the prompt.
type Transcript struct {
	b strings.Builder
}

// Append adds s to the end of the transcript.
func (t *Transcript) Append(s string) {
	t.b.WriteString(s)
}

// Len reports the transcript size in bytes.
func (t *Transcript) Len() int {
	return t.b.Len()
}

func (t *Transcript) String() string {
	return t.b.String()
}
