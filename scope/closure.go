package scope

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
)

// ContextFactory builds the [Context] adapting a raw target value.
// A Closure applies its factory whenever it, or a descendant created through
// [Closure.Subclosure] and [UnboundClosure.Bind], is given a target value
// without an explicit target context.
type ContextFactory func(target any) Context

// AttributeFactory is the default [ContextFactory]: it wraps targets in an
// [AttributeContext].
func AttributeFactory(target any) Context {
	return NewAttributeContext(target)
}

// Program is a compiled top-level unit. It receives the root scope it
// executes against as its only argument.
type Program func(ctx context.Context, c *Closure) error

// Func is the generated form of a nested configuration block or function
// literal. The Closure prepended by [UnboundClosure.Bind] is the scope for
// every dynamic name reference inside the block; args carries the values the
// block was applied to, target first.
type Func func(c *Closure, args ...any) (any, error)

// Closure is a node in the lexical-scope tree. It resolves names in a fixed
// order: local snapshot, own target context, parent, and, for reads only,
// the built-in symbol table.
//
// A Closure holds its parent by plain reference and does not keep it alive
// beyond its own use; closures are created at scope entry and discarded with
// the activation that created them.
type Closure struct {
	parent   *Closure
	locals   Locals
	target   any
	context  Context
	factory  ContextFactory
	builtins Context
}

// Option applies a configuration option to a Closure under construction.
type Option func(Closure) Closure

// New creates a Closure from the given options.
//
// Without options the Closure has no locals, no target, and no parent, and
// resolves only built-in symbols. If a raw target was supplied via
// [WithTarget] and no explicit context via [WithTargetContext], the target
// context is derived using the closure's factory (default
// [AttributeFactory]).
func New(opts ...Option) *Closure {
	c := Closure{
		factory:  AttributeFactory,
		builtins: DefaultBuiltins(),
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.context == nil && c.target != nil {
		c.context = c.factory(c.target)
	}

	return &c
}

// WithParent returns an option setting the parent Closure. The child also
// inherits the parent's factory and builtins unless later options override
// them.
func WithParent(parent *Closure) Option {
	return func(c Closure) Closure {
		c.parent = parent

		if parent != nil {
			c.factory = parent.factory
			c.builtins = parent.builtins
		}

		return c
	}
}

// WithLocals returns an option attaching a local-scope snapshot.
// The snapshot is cloned so the closure observes it read-only.
func WithLocals(locals Locals) Option {
	return func(c Closure) Closure {
		c.locals = Locals(maps.Clone(locals))

		return c
	}
}

// WithTarget returns an option setting the raw target value this closure
// configures. The target context is derived from it via the closure's
// factory unless [WithTargetContext] provides one explicitly.
func WithTarget(target any) Option {
	return func(c Closure) Closure {
		c.target = target

		return c
	}
}

// WithTargetContext returns an option setting the target context explicitly,
// bypassing the factory.
func WithTargetContext(ctx Context) Option {
	return func(c Closure) Closure {
		c.context = ctx

		return c
	}
}

// WithFactory returns an option setting the context-construction strategy
// used for this closure and its descendants.
func WithFactory(factory ContextFactory) Option {
	return func(c Closure) Closure {
		if factory != nil {
			c.factory = factory
		}

		return c
	}
}

// WithBuiltins returns an option setting the built-in symbol table consulted
// as the final read fallback. Pass nil to disable the fallback entirely.
func WithBuiltins(builtins Context) Option {
	return func(c Closure) Closure {
		c.builtins = builtins

		return c
	}
}

// FromMap produces a root Closure whose own target context is a [MapContext]
// over the given map, letting a flat mapping serve as an initial top-level
// scope without requiring it to look like an object. Descendants still
// derive their contexts with [AttributeFactory].
func FromMap(m map[string]any) *Closure {
	return New(
		WithTarget(m),
		WithTargetContext(NewMapContext(m, "scope.FromMap")),
	)
}

// Parent returns the enclosing lexical scope's Closure, or nil at the root.
func (c *Closure) Parent() *Closure { return c.parent }

// Target returns the raw value this closure's own context wraps, if any.
func (c *Closure) Target() any { return c.target }

// String identifies the closure by its target in diagnostics.
func (c *Closure) String() string {
	return fmt.Sprintf("closure(target=%T)", c.target)
}

// Get resolves key against this scope: the local snapshot first, then the
// target context, then the parent chain, and finally the built-in symbol
// table. Only [ErrNameNotFound] failures continue the walk.
func (c *Closure) Get(key string) (any, error) {
	if value, ok := c.locals[key]; ok {
		return value, nil
	}

	if c.context != nil {
		value, err := c.context.Get(key)
		if err == nil {
			return value, nil
		}

		if !errors.Is(err, ErrNameNotFound) {
			return nil, err
		}
	}

	if c.parent != nil {
		value, err := c.parent.Get(key)
		if err == nil {
			return value, nil
		}

		if !errors.Is(err, ErrNameNotFound) {
			return nil, err
		}
	}

	if c.builtins != nil {
		value, err := c.builtins.Get(key)
		if err == nil {
			return value, nil
		}

		if !errors.Is(err, ErrNameNotFound) {
			return nil, err
		}
	}

	return nil, nameNotFound(key, c.String())
}

// Set assigns value to key in the nearest scope that recognizes it: the
// target context first, then the parent chain. Built-ins are read-only and
// never consulted.
//
// A key present in the local snapshot fails [ErrIllegalLocalMutation]: true
// lexical locals must be mutated through the generated code's own variable
// machinery, never the dynamic path.
func (c *Closure) Set(key string, value any) error {
	if c.locals.Has(key) {
		return illegalLocalMutation("set", key)
	}

	if c.context != nil {
		err := c.context.Set(key, value)
		if err == nil {
			return nil
		}

		if !errors.Is(err, ErrNameNotFound) {
			return err
		}
	}

	if c.parent != nil {
		err := c.parent.Set(key, value)
		if err == nil {
			return nil
		}

		if !errors.Is(err, ErrNameNotFound) {
			return err
		}
	}

	// Unclear where to set: no scope in the chain recognizes the key.
	return nameNotFound(key, c.String())
}

// Delete removes key from the nearest scope that recognizes it, with the
// same shape and local-mutation guard as [Closure.Set].
func (c *Closure) Delete(key string) error {
	if c.locals.Has(key) {
		return illegalLocalMutation("delete", key)
	}

	if c.context != nil {
		err := c.context.Delete(key)
		if err == nil {
			return nil
		}

		if !errors.Is(err, ErrNameNotFound) {
			return err
		}
	}

	if c.parent != nil {
		err := c.parent.Delete(key)
		if err == nil {
			return nil
		}

		if !errors.Is(err, ErrNameNotFound) {
			return err
		}
	}

	return nameNotFound(key, c.String())
}

// Subclosure captures this Closure as parent together with the caller's
// local-scope snapshot, returning the deferred binding for a nested block
// that does not yet know its eventual target.
func (c *Closure) Subclosure(locals Locals, fn Func) *UnboundClosure {
	return &UnboundClosure{
		Parent: c,
		Locals: locals,
		Fn:     fn,
	}
}

// Run executes a compiled top-level unit with this Closure as its root
// scope. Any resolution failure raised during execution surfaces to the
// caller unmodified.
func (c *Closure) Run(ctx context.Context, program Program) error {
	return program(ctx, c)
}

// Names returns every name resolvable from this scope in sorted order:
// locals, enumerable target contexts along the parent chain, and built-ins.
func (c *Closure) Names() []string {
	seen := make(map[string]struct{})
	c.collectNames(seen)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (c *Closure) collectNames(seen map[string]struct{}) {
	for key := range c.locals {
		seen[key] = struct{}{}
	}

	if e, ok := c.context.(Enumerator); ok {
		for _, key := range e.Keys() {
			seen[key] = struct{}{}
		}
	}

	if c.parent != nil {
		c.parent.collectNames(seen)
	}

	if e, ok := c.builtins.(Enumerator); ok {
		for _, key := range e.Keys() {
			seen[key] = struct{}{}
		}
	}
}

// Env flattens every name resolvable from this scope into a map, innermost
// bindings winning. The result is a point-in-time copy suitable as an
// expression-evaluation environment; mutating it does not affect the scope.
func (c *Closure) Env() map[string]any {
	env := make(map[string]any)
	c.collectEnv(env)

	return env
}

// collectEnv writes bindings outermost-first so inner scopes overwrite.
func (c *Closure) collectEnv(env map[string]any) {
	if e, ok := c.builtins.(Enumerator); ok {
		for _, key := range e.Keys() {
			if value, err := c.builtins.Get(key); err == nil {
				env[key] = value
			}
		}
	}

	if c.parent != nil {
		c.parent.collectEnv(env)
	}

	if e, ok := c.context.(Enumerator); ok {
		for _, key := range e.Keys() {
			if value, err := c.context.Get(key); err == nil {
				env[key] = value
			}
		}
	}

	maps.Copy(env, c.locals)
}
