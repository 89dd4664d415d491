package scope

import (
	"maps"
	"sort"
)

// Locals is a read-only snapshot of the names bound as true lexical locals
// in the activation that created a [Closure]. The generated code supplies a
// fresh snapshot at every scope entry; the core never inspects call-stack
// internals.
//
// Locals always shadow a Closure's target and parent on reads, and are never
// writable through the dynamic path: the compiler rewrites true-local
// mutations to direct variable access, so a dynamic Set or Delete against a
// local name is a compiler-contract violation reported as
// [ErrIllegalLocalMutation].
type Locals map[string]any

// Snapshot clones m into a Locals value so later mutations of m are not
// observed by closures holding the snapshot.
func Snapshot(m map[string]any) Locals {
	return Locals(maps.Clone(m))
}

// Has reports whether key is bound as a lexical local.
func (l Locals) Has(key string) bool {
	_, ok := l[key]

	return ok
}

// Keys returns the local names in sorted order.
func (l Locals) Keys() []string {
	if len(l) == 0 {
		return nil
	}

	keys := make([]string, 0, len(l))
	for key := range l {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
