package scope

import (
	"errors"
	"testing"
)

func TestMapContextGet_ExistingKey(t *testing.T) {
	ctx := NewMapContext(map[string]any{"a": 1}, "test scope")

	value, err := ctx.Get("a")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}

	if value != 1 {
		t.Errorf("expected 1, got %v", value)
	}
}

func TestMapContextGet_MissingKey(t *testing.T) {
	ctx := NewMapContext(map[string]any{"a": 1}, "test scope")

	_, err := ctx.Get("b")
	if !errors.Is(err, ErrNameNotFound) {
		t.Fatalf("expected NameNotFound, got %v", err)
	}
}

func TestMapContextSet_NeverInserts(t *testing.T) {
	backing := map[string]any{"a": 1}
	ctx := NewMapContext(backing, "test scope")

	err := ctx.Set("b", 2)
	if !errors.Is(err, ErrNameNotFound) {
		t.Fatalf("expected NameNotFound for absent key, got %v", err)
	}

	if _, ok := backing["b"]; ok {
		t.Errorf("set must never insert new keys")
	}

	err = ctx.Set("a", 2)
	if err != nil {
		t.Fatalf("set error: %v", err)
	}

	if backing["a"] != 2 {
		t.Errorf("expected backing store updated to 2, got %v", backing["a"])
	}
}

func TestMapContextDelete_ExistingAndMissing(t *testing.T) {
	backing := map[string]any{"a": 1}
	ctx := NewMapContext(backing, "test scope")

	err := ctx.Delete("missing")
	if !errors.Is(err, ErrNameNotFound) {
		t.Fatalf("expected NameNotFound, got %v", err)
	}

	err = ctx.Delete("a")
	if err != nil {
		t.Fatalf("delete error: %v", err)
	}

	if _, ok := backing["a"]; ok {
		t.Errorf("expected key removed from backing store")
	}
}

func TestMapContextKeys_Sorted(t *testing.T) {
	ctx := NewMapContext(map[string]any{"b": 2, "a": 1, "c": 3}, "test scope")

	keys := ctx.Keys()

	want := []string{"a", "b", "c"}
	for i, key := range want {
		if keys[i] != key {
			t.Errorf("expected keys[%d]=%q, got %q", i, key, keys[i])
		}
	}
}
