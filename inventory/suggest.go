package inventory

import "github.com/sahilm/fuzzy"

// defaultSuggestions bounds the names attached to an [ErrQueryNotFound].
const defaultSuggestions = 3

// Suggest returns up to limit base names that fuzzily match name, best match
// first.
func (s *Store) Suggest(name string, limit int) []string {
	if name == "" || limit <= 0 || s.Len() == 0 {
		return nil
	}

	matches := fuzzy.Find(name, s.order)

	names := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(names) == limit {
			break
		}

		names = append(names, m.Str)
	}

	return names
}
