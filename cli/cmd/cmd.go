package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/dynscope/scope"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special document path indicating standard input.
const stdinSource = "-"

// defaultFileMode is the permission mode for written document files.
var defaultFileMode os.FileMode = 0o600

// Scope carries the document state shared by all subcommands: the parsed
// document, the root closure resolving names against it, and the path the
// document was loaded from.
type Scope struct {
	Root     *scope.Closure
	Document map[string]any
	Path     string
	Output   io.Writer
}

type scopeKey struct{}

// WithScope returns a new context.Context containing the given Scope.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// scopeFrom retrieves the Scope stored in ctx by WithScope.
// Returns nil if no Scope was stored.
func scopeFrom(ctx context.Context) *Scope {
	s, _ := ctx.Value(scopeKey{}).(*Scope)

	return s
}

// OpenScope loads the YAML document at path and constructs the root closure
// resolving names against it. An empty path yields an empty document, and
// "-" reads the document from stdin.
//
// Keys of the document's top-level mapping become the names visible at the
// root of the scope. Values remain untyped; nested mappings are resolved
// per-key when a command descends into them.
func OpenScope(path string) (*Scope, error) {
	doc := map[string]any{}

	if path != "" {
		data, err := readDocument(path)
		if err != nil {
			return nil, ErrReadDocument.
				With(slog.String("file", path)).
				Wrap(err)
		}

		if len(data) > 0 {
			err = yaml.Unmarshal(data, &doc)
			if err != nil {
				return nil, ErrParseDocument.
					With(slog.String("file", path)).
					Wrap(err)
			}
		}
	}

	return &Scope{
		Root:     scope.FromMap(doc),
		Document: doc,
		Path:     path,
		Output:   os.Stdout,
	}, nil
}

func readDocument(path string) ([]byte, error) {
	if path == stdinSource {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

// Save writes the document back to the path it was loaded from.
// Documents read from stdin or constructed without a path are not persisted.
func (s *Scope) Save() error {
	if s.Path == "" || s.Path == stdinSource {
		return nil
	}

	data, err := yaml.Marshal(s.Document)
	if err != nil {
		return ErrYAMLMarshal.
			With(slog.String("file", s.Path)).
			Wrap(err)
	}

	err = os.WriteFile(s.Path, data, defaultFileMode)
	if err != nil {
		return ErrWriteDocument.
			With(slog.String("file", s.Path)).
			Wrap(err)
	}

	return nil
}
