package pathsearch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// EnvPath is the environment variable holding the search path.
const EnvPath = "PATH"

// Resolver locates programs on the search path. The search path is read on
// every call, so changes to the environment are picked up immediately.
type Resolver struct {
	fs     afero.Fs
	getenv func(string) string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFs replaces the filesystem probed for candidates.
func WithFs(fs afero.Fs) Option {
	return func(r *Resolver) { r.fs = fs }
}

// WithGetenv replaces the environment lookup.
func WithGetenv(getenv func(string) string) Option {
	return func(r *Resolver) { r.getenv = getenv }
}

// New returns a Resolver backed by the OS filesystem and environment.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		fs:     afero.NewOsFs(),
		getenv: os.Getenv,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SearchPath returns the directories of the search path in precedence order.
// Empty entries are dropped.
func (r *Resolver) SearchPath() []string {
	var dirs []string
	for _, dir := range filepath.SplitList(r.getenv(EnvPath)) {
		if dir == "" {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// Resolve returns the first entry named name found in a search path
// directory. Only existence is checked; permission bits are not.
func (r *Resolver) Resolve(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, dir := range r.SearchPath() {
		if !r.isDir(dir) {
			continue
		}
		if candidate := candidate(dir, name); r.exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// ResolveAll resolves every name in a single pass over the search path.
// Unresolved names are returned as "". Element i always matches
// Resolve(names[i]).
func (r *Resolver) ResolveAll(names []string) []string {
	found := make([]string, len(names))
	pending := 0
	for _, name := range names {
		if name != "" {
			pending++
		}
	}

	for _, dir := range r.SearchPath() {
		if pending == 0 {
			break
		}
		if !r.isDir(dir) {
			continue
		}
		for i, name := range names {
			if name == "" || found[i] != "" {
				continue
			}
			if c := candidate(dir, name); r.exists(c) {
				found[i] = c
				pending--
			}
		}
	}
	return found
}

func (r *Resolver) isDir(dir string) bool {
	info, err := r.fs.Stat(dir)
	return err == nil && info.IsDir()
}

func (r *Resolver) exists(path string) bool {
	ok, err := afero.Exists(r.fs, path)
	return err == nil && ok
}

// candidate joins dir and name. An absolute name replaces the directory. The
// result always carries a separator, so a match in "." stays "./name" and is
// never looked up on the search path a second time.
func candidate(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	joined := filepath.Join(dir, name)
	if !strings.ContainsRune(joined, filepath.Separator) {
		joined = "." + string(filepath.Separator) + joined
	}
	return joined
}
