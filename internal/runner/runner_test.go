package runner

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conch/internal/pathsearch"
)

// mapResolver resolves from a fixed table.
type mapResolver map[string]string

func (m mapResolver) Resolve(name string) (string, bool) {
	p, ok := m[name]
	return p, ok
}

func writeScript(t *testing.T, dir, name, body string, perm os.FileMode) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"+body+"\n"), perm))
	return p
}

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not runnable on windows")
	}
}

func TestRunEmptyCommand(t *testing.T) {
	r := New(mapResolver{}, Config{}, nil)
	for _, line := range []string{"", " ", "\t  \n"} {
		_, err := r.Run(line)
		assert.ErrorIs(t, err, ErrEmptyCommand, "line %q", line)
	}
}

func TestRunUnresolved(t *testing.T) {
	r := New(mapResolver{}, Config{}, nil)
	out, err := r.Run("nothing here")
	assert.ErrorIs(t, err, ErrUnresolvedProgram)
	assert.Empty(t, out)
}

func TestPrepareArgumentVector(t *testing.T) {
	res := mapResolver{"tool": "/bin/tool"}

	rc, err := New(res, Config{}, nil).Prepare("  tool   a  b ")
	require.NoError(t, err)
	assert.Equal(t, "/bin/tool", rc.Path)
	assert.Equal(t, "tool", rc.Name)
	assert.Equal(t, []string{"tool", "a", "b"}, rc.Args)

	rc, err = New(res, Config{SkipArgZero: true}, nil).Prepare("tool a b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rc.Args)
}

func TestRunCapturesStdout(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	script := writeScript(t, dir, "say", `echo "$@"; echo oops >&2; exit 3`, 0o755)

	r := New(mapResolver{"say": script}, Config{}, nil)
	out, err := r.Run("say hi there")
	require.NoError(t, err)
	assert.Equal(t, "say hi there\n", out, "program name is repeated as the first argument")

	r = New(mapResolver{"say": script}, Config{SkipArgZero: true}, nil)
	out, err = r.Run("say hi there")
	require.NoError(t, err)
	assert.Equal(t, "hi there\n", out)
}

func TestRunThroughSearchPath(t *testing.T) {
	requireShell(t)
	first, second := t.TempDir(), t.TempDir()
	writeScript(t, first, "which1", `echo first`, 0o755)
	writeScript(t, second, "which1", `echo second`, 0o755)
	t.Setenv(pathsearch.EnvPath, first+string(filepath.ListSeparator)+second)

	r := New(pathsearch.New(), Config{}, nil)
	out, err := r.Run("which1")
	require.NoError(t, err)
	assert.Equal(t, "first\n", out)
}

func TestRunSpawnFailed(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	script := writeScript(t, dir, "noexec", `echo never`, 0o644)

	r := New(mapResolver{"noexec": script}, Config{}, nil)
	_, err := r.Run("noexec")
	assert.ErrorIs(t, err, ErrSpawnFailed)
}

func TestRunInvalidOutputEncoding(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	script := writeScript(t, dir, "binary", `printf '\377\376'`, 0o755)

	r := New(mapResolver{"binary": script}, Config{}, nil)
	_, err := r.Run("binary")
	assert.ErrorIs(t, err, ErrInvalidOutputEncoding)
}

func TestRunEmptyOutput(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	script := writeScript(t, dir, "quiet", `exit 1`, 0o755)

	r := New(mapResolver{"quiet": script}, Config{}, nil)
	out, err := r.Run("quiet")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRunFromCurrentDirectoryEntry(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	writeScript(t, dir, "hello", `echo hello`, 0o755)
	t.Chdir(dir)
	t.Setenv(pathsearch.EnvPath, "."+string(filepath.ListSeparator)+"/usr/bin:/bin")

	r := New(pathsearch.New(), Config{SkipArgZero: true}, nil)
	out, err := r.Run("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestRunExecutesTheResolvedFile(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	writeScript(t, dir, "ls", `echo shadow`, 0o644)
	t.Chdir(dir)
	t.Setenv(pathsearch.EnvPath, "."+string(filepath.ListSeparator)+"/usr/bin:/bin")

	r := New(pathsearch.New(), Config{}, nil)
	rc, err := r.Prepare("ls")
	require.NoError(t, err)
	assert.Equal(t, "./ls", rc.Path)

	// The file in "." is not executable; a later ls on the search path must
	// not be run in its place.
	_, err = r.Run("ls")
	assert.ErrorIs(t, err, ErrSpawnFailed)
}

func TestRunRelativeDirectoryEntry(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "bin"), 0o755))
	writeScript(t, filepath.Join(dir, "bin"), "greet", `echo greeted`, 0o755)
	t.Chdir(dir)
	t.Setenv(pathsearch.EnvPath, "bin")

	r := New(pathsearch.New(), Config{}, nil)
	out, err := r.Run("greet")
	require.NoError(t, err)
	assert.Equal(t, "greeted\n", out)
}
