package scope

import "github.com/sahilm/fuzzy"

// Suggest returns up to limit names visible from this scope that are close
// matches for key, ranked best first. It is intended for diagnostics after a
// NameNotFound failure escapes the outermost closure; an empty result means
// nothing resembles the key.
func (c *Closure) Suggest(key string, limit int) []string {
	if key == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.Find(key, c.Names())
	if len(matches) > limit {
		matches = matches[:limit]
	}

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match.Str)
	}

	return names
}
