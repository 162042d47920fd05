package orbtrade

import (
	"fmt"
	"strings"
)

// Match is one search result: an item, its current unit price, and a
// ready-to-display line for interactive pickers.
type Match struct {
	Name    string
	Price   Amount
	Display string
}

// Search returns the items whose name contains query, case-insensitive on
// both sides, in catalog enumeration order, truncated to limit entries.
//
// An empty query matches nothing rather than everything, so an interactive
// caller clearing its input gets an empty list instead of the full catalog.
func (s *Store) Search(query string, limit int) []Match {
	if query == "" || limit <= 0 {
		return nil
	}
	query = strings.ToLower(query)

	var matches []Match
	for _, name := range s.catalog.names {
		if !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		price := s.catalog.index[name]
		matches = append(matches, Match{
			Name:    name,
			Price:   price,
			Display: fmt.Sprintf("%s (%s)", name, price),
		})
		if len(matches) == limit {
			break
		}
	}
	return matches
}
