package scope

// This file defines the default built-in symbol table consulted as the
// lowest-priority read fallback of every Closure. The table is a closed,
// explicitly injected set: nothing is inherited from the host process beyond
// what is listed here, and callers may replace or disable it per closure
// tree with [WithBuiltins].
//
// The table is lazily initialized once per process and cloned on every
// access so callers may mutate the returned map without affecting the
// shared cache.
//
// Built-in names are shadowed by any local, target, or parent binding.

import (
	"bufio"
	"maps"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/ardnew/mung"
)

// Private singleton cache.
//
//nolint:gochecknoglobals
var (
	builtinCacheOnce sync.Once
	builtinCache     map[string]any
)

// makeBuiltinCache returns a clone of the lazily-initialized, process-scoped
// table of built-in symbols.
func makeBuiltinCache() map[string]any {
	builtinCacheOnce.Do(func() {
		builtinCache = map[string]any{
			// System information (struct/string values).
			"target":   getTarget(),
			"platform": getPlatform(),
			"hostname": getHostname(),
			"user":     getUser(),
			"shell":    getShell(),

			// Working directory.
			"cwd": getCwd,

			// Process environment access.
			"env": os.Getenv,

			// Filesystem functions.
			"file": map[string]any{
				"exists":    fileExists,
				"isDir":     fileIsDir,
				"isRegular": fileIsRegular,
				"isSymlink": fileIsSymlink,
			},

			// Path manipulation functions.
			"path": map[string]any{
				"abs": pathAbs,
				"cat": pathCat,
				"rel": pathRel,
			},

			// PATH-like string manipulation via mung.
			"mung": map[string]any{
				"prefix":   mungPrefix,
				"prefixif": mungPrefixIf,
			},
		}
	})

	return maps.Clone(builtinCache)
}

// builtinTable exposes the built-in symbols as a read-only [Context].
// Writes fail [ErrNameNotFound] so composite scopes pass them along to a
// writable candidate instead of mutating the shared table.
type builtinTable struct {
	env map[string]any
}

// DefaultBuiltins returns the default built-in symbol table as a read-only
// Context. Each call returns an independent view over a fresh clone of the
// shared cache.
func DefaultBuiltins() Context {
	return &builtinTable{env: makeBuiltinCache()}
}

// Get returns the built-in symbol named key.
func (b *builtinTable) Get(key string) (any, error) {
	value, ok := b.env[key]
	if !ok {
		return nil, nameNotFound(key, "built-in symbols")
	}

	return value, nil
}

// Set always fails: built-in symbols are read-only.
func (b *builtinTable) Set(key string, _ any) error {
	return nameNotFound(key, "read-only built-in symbols")
}

// Delete always fails: built-in symbols are read-only.
func (b *builtinTable) Delete(key string) error {
	return nameNotFound(key, "read-only built-in symbols")
}

// Keys returns the top-level built-in symbol names in sorted order.
func (b *builtinTable) Keys() []string {
	keys := make([]string, 0, len(b.env))
	for key := range b.env {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// ---------------------------------------------------------------------------
// System information helpers
// ---------------------------------------------------------------------------

// hostTarget contains string identifiers for a target operating system and
// instruction set architecture.
//
// Leaving the conventions unspecified allows this type to be used
// in a variety of contexts.
type hostTarget struct {
	OS   string
	Arch string
}

// getTarget returns the host target using GNU GCC/LLVM naming conventions.
func getTarget() hostTarget {
	t := getPlatform()

	switch t.Arch {
	case "386":
		t.Arch = "i386"
	case "amd64":
		t.Arch = "x86_64"
	case "arm":
		arm, ok := os.LookupEnv("GOARM")
		if ok {
			arm, _, _ = strings.Cut(arm, ",")
			switch strings.TrimSpace(arm) {
			case "5", "6", "7":
				t.Arch = "armv" + arm
			}
		}
	case "arm64":
		if t.OS != "darwin" {
			t.Arch = "aarch64"
		}
	case "mipsle":
		t.Arch = "mipsel"
	}

	return t
}

// getPlatform returns the host target using Go conventions.
//
// [Go conventions]:
// https://cs.opensource.google/go/go/+/master:src/cmd/dist/build.go
func getPlatform() hostTarget {
	var (
		o, a string
		ok   bool
	)

	if o, ok = os.LookupEnv("GOHOSTOS"); !ok {
		if o, ok = os.LookupEnv("GOOS"); !ok {
			o = runtime.GOOS
		}
	}

	if a, ok = os.LookupEnv("GOHOSTARCH"); !ok {
		if a, ok = os.LookupEnv("GOARCH"); !ok {
			a = runtime.GOARCH
		}
	}

	return hostTarget{
		OS:   o,
		Arch: a,
	}
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return ""
	}

	return hostname
}

func getUser() *user.User {
	u, err := user.Current()
	if err != nil {
		return nil
	}

	return u
}

func getShell() string {
	shell, ok := os.LookupEnv("SHELL")
	if ok {
		return shell
	}

	u := getUser()
	if u == nil || u.Username == "" {
		return ""
	}

	f, err := os.Open("/etc/passwd")
	if err != nil {
		return ""
	}

	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		l := s.Text()

		e := strings.Split(l, ":")
		if len(e) > 6 && e[0] == u.Username {
			return e[6]
		}
	}

	return ""
}

// ---------------------------------------------------------------------------
// Working directory
// ---------------------------------------------------------------------------

func getCwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return pathAbs(".")
	}

	return cwd
}

// ---------------------------------------------------------------------------
// Filesystem functions
// ---------------------------------------------------------------------------

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return !os.IsNotExist(err)
}

func fileIsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}

func fileIsRegular(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

func fileIsSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeSymlink != 0
}

// ---------------------------------------------------------------------------
// Path manipulation functions
// ---------------------------------------------------------------------------

func pathAbs(path string) string {
	p, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	return p
}

func pathCat(elem ...string) string {
	return filepath.Join(elem...)
}

func pathRel(from, to string) string {
	p, err := filepath.Rel(pathAbs(from), pathAbs(to))
	if err != nil {
		return pathCat(from, to)
	}

	return p
}

// ---------------------------------------------------------------------------
// PATH-like string manipulation (mung)
// ---------------------------------------------------------------------------

func mungPrefix(key string, prefix ...string) string {
	return mung.Make(
		mung.WithSubjectItems(key),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
	).String()
}

func mungPrefixIf(
	key string,
	predicate func(string) bool,
	prefix ...string,
) string {
	return mung.Make(
		mung.WithSubjectItems(key),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
		mung.WithFilter(predicate),
	).String()
}
