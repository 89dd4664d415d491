package scope

import (
	"errors"
	"testing"
)

func TestClosureEval_MapBindings(t *testing.T) {
	root := FromMap(map[string]any{"a": 2, "b": 3})

	result, err := root.Eval("a + b")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	if result != 5 {
		t.Errorf("expected 5, got %v (%T)", result, result)
	}
}

func TestClosureEval_LocalsShadowInEnv(t *testing.T) {
	root := FromMap(map[string]any{"a": 2, "b": 3})
	child := New(
		WithParent(root),
		WithLocals(Locals{"a": 10}),
	)

	result, err := child.Eval("a + b")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	if result != 13 {
		t.Errorf("expected 13, got %v (%T)", result, result)
	}
}

func TestClosureEval_BuiltinFunctions(t *testing.T) {
	root := FromMap(map[string]any{"dir": "a", "base": "b"})

	result, err := root.Eval(`path.cat(dir, base)`)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	if result != "a/b" {
		t.Errorf("expected joined path, got %v", result)
	}
}

func TestClosureEval_CompileFailure(t *testing.T) {
	root := FromMap(map[string]any{})

	_, err := root.Eval("1 +")
	if !errors.Is(err, ErrExprCompile) {
		t.Fatalf("expected ExprCompile, got %v", err)
	}
}

func TestClosureCompile_ReusableProgram(t *testing.T) {
	backing := map[string]any{"a": 1}
	root := FromMap(backing)

	program, err := root.Compile("a * 2")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	result, err := root.RunProgram(program)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	if result != 2 {
		t.Errorf("expected 2, got %v", result)
	}

	// A second run observes the mutated scope.
	if err := root.Set("a", 5); err != nil {
		t.Fatalf("set error: %v", err)
	}

	result, err = root.RunProgram(program)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	if result != 10 {
		t.Errorf("expected 10 after mutation, got %v", result)
	}
}

func TestClosureEnv_InnermostWins(t *testing.T) {
	root := New(
		WithTargetContext(NewMapContext(map[string]any{"k": "outer", "o": 1}, "root")),
		WithBuiltins(nil),
	)
	child := New(
		WithParent(root),
		WithTargetContext(NewMapContext(map[string]any{"k": "inner"}, "child")),
	)

	env := child.Env()

	if env["k"] != "inner" {
		t.Errorf("expected inner binding, got %v", env["k"])
	}

	if env["o"] != 1 {
		t.Errorf("expected outer-only binding visible, got %v", env["o"])
	}
}
