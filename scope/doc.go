// Package scope implements dynamic name resolution for code compiled from a
// configuration DSL.
//
// Wherever the compiler cannot resolve a variable reference statically, the
// generated code performs a get, set, or delete call against a [Closure]
// passed as an explicit argument. A Closure is a node in a tree mirroring the
// DSL's lexical nesting: each node combines a read-only snapshot of the true
// lexical locals, a [Context] adapting the value the enclosing block
// configures, a parent Closure, and a closed table of built-in symbols
// consulted only on reads.
//
// # Contexts
//
// A [Context] adapts one backing store for name resolution. Three concrete
// adapters are provided: [AttributeContext] over a struct's exported fields
// and methods, [MapContext] over an existing-keys-only map, and
// [ChainContext] composing an ordered sequence of contexts. Failure to
// recognize a key is reported as [ErrNameNotFound], which composite layers
// treat as "try the next candidate". Any other failure is terminal.
//
// # Closures
//
// A root scope is typically seeded from a flat configuration mapping:
//
//	root := scope.FromMap(map[string]any{"version": "1.0"})
//	v, err := root.Get("version")
//
// Nested configuration blocks compile to a [Closure.Subclosure] call that
// captures the enclosing scope, followed by [UnboundClosure.Bind] applying
// the block to its target value:
//
//	unbound := root.Subclosure(locals, func(c *scope.Closure, args ...any) (any, error) {
//		return nil, c.Set("name", "example") // resolves against args[0]
//	})
//	_, err := unbound.Bind(target)
//
// Resolution is a bounded, synchronous walk with no internal locking.
// Concurrent writers against contexts sharing a backing store require
// external synchronization.
package scope
