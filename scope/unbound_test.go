package scope

import (
	"errors"
	"testing"
)

func TestUnboundBind_RoundTrip(t *testing.T) {
	parent := FromMap(map[string]any{"version": "1.0"})
	locals := Locals{"index": 3}
	target := &service{Host: "localhost"}

	var bound *Closure

	unbound := parent.Subclosure(locals, func(c *Closure, args ...any) (any, error) {
		bound = c

		if len(args) != 1 || args[0] != target {
			t.Errorf("expected target prepended to args, got %v", args)
		}

		return c.Get("Host")
	})

	value, err := unbound.Bind(target)
	if err != nil {
		t.Fatalf("bind error: %v", err)
	}

	if value != "localhost" {
		t.Errorf("expected target resolution, got %v", value)
	}

	if bound.Parent() != parent {
		t.Errorf("expected captured parent, got %v", bound.Parent())
	}

	if bound.Target() != target {
		t.Errorf("expected args[0] as target, got %v", bound.Target())
	}

	if local, _ := bound.Get("index"); local != 3 {
		t.Errorf("expected captured locals visible, got %v", local)
	}
}

func TestUnboundBind_NoTarget(t *testing.T) {
	parent := FromMap(map[string]any{"version": "1.0"})

	unbound := parent.Subclosure(nil, func(c *Closure, args ...any) (any, error) {
		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}

		// Without a target of its own, resolution goes to the parent.
		return c.Get("version")
	})

	value, err := unbound.Bind()
	if err != nil {
		t.Fatalf("bind error: %v", err)
	}

	if value != "1.0" {
		t.Errorf("expected parent resolution, got %v", value)
	}
}

func TestUnboundBind_NestedConfigurationBlocks(t *testing.T) {
	// Models two nested blocks: an outer block configuring a service and an
	// inner block that still sees the root mapping through the parent chain.
	backing := map[string]any{"region": "us-east"}
	root := FromMap(backing)
	outer := &service{Host: "localhost", Port: 80}

	configure := root.Subclosure(nil, func(c *Closure, _ ...any) (any, error) {
		if err := c.Set("Port", 8080); err != nil {
			return nil, err
		}

		inner := c.Subclosure(nil, func(c *Closure, _ ...any) (any, error) {
			return c.Get("region")
		})

		return inner.Bind()
	})

	value, err := configure.Bind(outer)
	if err != nil {
		t.Fatalf("bind error: %v", err)
	}

	if value != "us-east" {
		t.Errorf("expected root mapping via grandparent, got %v", value)
	}

	if outer.Port != 8080 {
		t.Errorf("expected block to configure target, got %d", outer.Port)
	}
}

func TestUnboundBind_CallableErrorPropagates(t *testing.T) {
	parent := FromMap(map[string]any{})

	unbound := parent.Subclosure(nil, func(c *Closure, _ ...any) (any, error) {
		return nil, c.Delete("missing")
	})

	_, err := unbound.Bind()
	if !errors.Is(err, ErrNameNotFound) {
		t.Fatalf("expected NameNotFound from callable, got %v", err)
	}
}
