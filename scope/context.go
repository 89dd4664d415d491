package scope

import (
	"errors"
	"slices"
)

// Context adapts a single backing store for dynamic name resolution.
//
// Each operation either succeeds or fails. A failure matching
// [ErrNameNotFound] means only that this particular context does not
// recognize the key; composite contexts use it as a signal to try the next
// candidate. Any other failure is terminal and propagates unconditionally.
//
// A Context never owns the keys it resolves. It holds only a reference to
// its backing store, which remains owned by the caller.
type Context interface {
	Get(key string) (any, error)
	Set(key string, value any) error
	Delete(key string) error
}

// Enumerator is implemented by contexts that can list the keys they resolve.
// Enumeration is advisory: it feeds diagnostics, suggestions, and the
// expression bridge, never resolution itself.
type Enumerator interface {
	Keys() []string
}

// ChainContext composes an ordered, fixed sequence of contexts.
// Every operation tries the sub-contexts strictly in construction order and
// returns on the first outcome that is not [ErrNameNotFound].
type ChainContext struct {
	contexts []Context
}

// Chain creates a ChainContext over the given contexts.
// The sequence is fixed at construction; the sub-contexts are borrowed, not
// owned.
func Chain(contexts ...Context) *ChainContext {
	return &ChainContext{contexts: slices.Clone(contexts)}
}

// ChainWith returns a new ChainContext whose sequence is this chain's
// sequence followed by other. Neither operand is mutated.
func (c *ChainContext) ChainWith(other Context) *ChainContext {
	seq := make([]Context, 0, len(c.contexts)+1)
	seq = append(seq, c.contexts...)
	seq = append(seq, other)

	return &ChainContext{contexts: seq}
}

// Get returns the value of key from the first sub-context that recognizes
// it. If every sub-context fails with [ErrNameNotFound], so does the chain.
func (c *ChainContext) Get(key string) (any, error) {
	for _, ctx := range c.contexts {
		value, err := ctx.Get(key)
		if err == nil {
			return value, nil
		}

		if !errors.Is(err, ErrNameNotFound) {
			return nil, err
		}
	}

	return nil, nameNotFound(key, "chain")
}

// Set updates key in the first sub-context that recognizes it.
func (c *ChainContext) Set(key string, value any) error {
	for _, ctx := range c.contexts {
		err := ctx.Set(key, value)
		if err == nil {
			return nil
		}

		if !errors.Is(err, ErrNameNotFound) {
			return err
		}
	}

	return nameNotFound(key, "chain")
}

// Delete removes key from the first sub-context that recognizes it.
func (c *ChainContext) Delete(key string) error {
	for _, ctx := range c.contexts {
		err := ctx.Delete(key)
		if err == nil {
			return nil
		}

		if !errors.Is(err, ErrNameNotFound) {
			return err
		}
	}

	return nameNotFound(key, "chain")
}

// Keys returns the union of the sub-contexts' keys, in sub-context order,
// with duplicates removed. Sub-contexts that do not implement [Enumerator]
// contribute nothing.
func (c *ChainContext) Keys() []string {
	var keys []string

	seen := make(map[string]struct{})

	for _, ctx := range c.contexts {
		e, ok := ctx.(Enumerator)
		if !ok {
			continue
		}

		for _, key := range e.Keys() {
			if _, dup := seen[key]; dup {
				continue
			}

			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	return keys
}
