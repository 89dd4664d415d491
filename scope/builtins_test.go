package scope

import (
	"errors"
	"testing"
)

func TestDefaultBuiltins_ClosedSymbolSet(t *testing.T) {
	builtins := DefaultBuiltins()

	e, ok := builtins.(Enumerator)
	if !ok {
		t.Fatalf("builtins must be enumerable")
	}

	keys := e.Keys()
	for _, want := range []string{"cwd", "env", "file", "path", "mung"} {
		found := false

		for _, key := range keys {
			if key == want {
				found = true

				break
			}
		}

		if !found {
			t.Errorf("expected builtin %q in %v", want, keys)
		}
	}
}

func TestDefaultBuiltins_ReadOnly(t *testing.T) {
	builtins := DefaultBuiltins()

	err := builtins.Set("cwd", "elsewhere")
	if !errors.Is(err, ErrNameNotFound) {
		t.Fatalf("expected NameNotFound on set, got %v", err)
	}

	err = builtins.Delete("cwd")
	if !errors.Is(err, ErrNameNotFound) {
		t.Fatalf("expected NameNotFound on delete, got %v", err)
	}
}

func TestDefaultBuiltins_IndependentViews(t *testing.T) {
	a := DefaultBuiltins().(*builtinTable)
	b := DefaultBuiltins().(*builtinTable)

	// Each call clones the cache; mutating one view must not leak.
	a.env["cwd"] = "mutated"

	value, err := b.Get("cwd")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}

	if value == "mutated" {
		t.Errorf("builtin views must not share storage")
	}
}

func TestClosureGet_DefaultBuiltinFallback(t *testing.T) {
	c := New()

	value, err := c.Get("platform")
	if err != nil {
		t.Fatalf("expected builtin fallback, got %v", err)
	}

	platform, ok := value.(hostTarget)
	if !ok {
		t.Fatalf("expected hostTarget, got %T", value)
	}

	if platform.OS == "" || platform.Arch == "" {
		t.Errorf("expected populated platform, got %+v", platform)
	}
}
