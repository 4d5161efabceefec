package headless

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conch/internal/console"
	"conch/internal/editor"
	"conch/internal/runner"
)

type echoRunner struct{}

func (echoRunner) Run(line string) (string, error) {
	if strings.HasPrefix(line, "echo ") {
		return strings.TrimPrefix(line, "echo ") + "\n", nil
	}
	return "", runner.ErrUnresolvedProgram
}

func TestPollEvents(t *testing.T) {
	p := New(strings.NewReader("ls\nab"), &bytes.Buffer{})

	events, err := p.PollEvents()
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, editor.KeyL, events[0].Key)
	assert.Equal(t, editor.KeyS, events[1].Key)
	assert.Equal(t, editor.KeyEnter, events[2].Key)

	events, err = p.PollEvents()
	require.NoError(t, err)
	require.Len(t, events, 3, "last line without newline still submits")

	events, err = p.PollEvents()
	require.NoError(t, err)
	assert.Equal(t, []editor.Event{editor.Quit()}, events)
}

func TestDrawWritesTranscriptDelta(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out)

	require.NoError(t, p.Draw(console.Frame{Transcript: "a\n", Prompt: "> "}))
	require.NoError(t, p.Draw(console.Frame{Transcript: "a\n", Prompt: "> ", Pending: "x"}))
	require.NoError(t, p.Draw(console.Frame{Transcript: "a\nb\n", Prompt: "> "}))
	assert.Equal(t, "a\nb\n", out.String())

	assert.Error(t, p.Draw(console.Frame{Transcript: ""}))
}

func TestClosedPresenterFails(t *testing.T) {
	p := New(strings.NewReader("ls\n"), &bytes.Buffer{})
	require.NoError(t, p.Close())

	_, err := p.PollEvents()
	assert.Error(t, err)
	assert.Error(t, p.Draw(console.Frame{}))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestPollEventsReadError(t *testing.T) {
	p := New(failingReader{}, &bytes.Buffer{})
	_, err := p.PollEvents()
	assert.Error(t, err)
}

func TestSessionThroughConsole(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("echo one\nnosuch\necho two\n"), &out)
	c := console.New(echoRunner{}, console.Options{NoEcho: true}, nil)

	require.NoError(t, c.Run(p))
	assert.Equal(t, "one\ntwo\n", out.String())
	assert.Equal(t, "", c.Pending())
}
