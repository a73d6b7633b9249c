// Package views holds the derived-view computations: filtered event lists,
// registration counts, dashboard statistics, and countdowns. Everything here
// is a pure function over a dataset snapshot and, where relevant, a caller
// supplied instant; nothing is cached.
package views

import (
	"iter"
	"strings"

	"eduvent/internal/domain"
)

// FilterEvents returns a lazy, restartable sequence of the events matching
// the search term and category, preserving their original relative order.
// An event matches when the category is "All" or equal to its category, and
// the term is empty or a case-insensitive substring of its title or
// description. The sequence is recomputed fresh on every range.
func FilterEvents(events []domain.Event, searchTerm, category string) iter.Seq[domain.Event] {
	term := strings.ToLower(searchTerm)
	return func(yield func(domain.Event) bool) {
		for _, e := range events {
			if category != domain.CategoryAll && e.Category != category {
				continue
			}
			if term != "" &&
				!strings.Contains(strings.ToLower(e.Title), term) &&
				!strings.Contains(strings.ToLower(e.Description), term) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}
