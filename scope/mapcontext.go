package scope

import "sort"

// MapContext adapts a mutable map for dynamic name resolution.
//
// Every operation requires the key to already exist in the backing map:
// Set updates, never inserts, and Delete removes only known keys. Absent
// keys fail [ErrNameNotFound] carrying the context's description.
type MapContext struct {
	target      map[string]any
	description string
}

// NewMapContext creates a MapContext over the given map.
// The map is borrowed, not owned; mutations through the context are visible
// to every other holder of the map. The description names the backing store
// in failure diagnostics.
func NewMapContext(target map[string]any, description string) *MapContext {
	return &MapContext{
		target:      target,
		description: description,
	}
}

// Get returns the value of key if it is present in the backing map.
func (c *MapContext) Get(key string) (any, error) {
	value, ok := c.target[key]
	if !ok {
		return nil, nameNotFound(key, c.description)
	}

	return value, nil
}

// Set updates the value of key if it is already present in the backing map.
func (c *MapContext) Set(key string, value any) error {
	if _, ok := c.target[key]; !ok {
		return nameNotFound(key, c.description)
	}

	c.target[key] = value

	return nil
}

// Delete removes key if it is present in the backing map.
func (c *MapContext) Delete(key string) error {
	if _, ok := c.target[key]; !ok {
		return nameNotFound(key, c.description)
	}

	delete(c.target, key)

	return nil
}

// Keys returns the keys of the backing map in sorted order.
func (c *MapContext) Keys() []string {
	if len(c.target) == 0 {
		return nil
	}

	keys := make([]string, 0, len(c.target))
	for key := range c.target {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
