// Package listing implements the search and filter predicates behind
// the public directory endpoints. One generic engine is configured per
// content type through an immutable Catalog instead of four parallel
// implementations.
package listing

import (
	"sort"
	"strings"
	"time"
)

// fullDateLayout mirrors the long-form date the directory cards render,
// e.g. "Friday, January 10, 2025". Queries match against this string
// too, so searching "january" finds records dated in January.
const fullDateLayout = "Monday, January 2, 2006"

// Option is one entry of a filter menu. The catalogs are the single
// source of truth for the menus the clients render.
type Option struct {
	ID    string      `json:"id"`
	Label string      `json:"label"`
	Value interface{} `json:"value"`
	Group string      `json:"group"`
}

// Rule evaluates a single filter against one record. now is passed in
// so time-window rules stay deterministic under test.
type Rule[T any] func(rec T, now time.Time) bool

// Catalog is the per-type configuration of the engine: the menu
// options, the searchable field set and the rule table. Catalogs are
// package-level constants in catalog.go and must not be mutated.
type Catalog[T any] struct {
	Options      []Option
	SearchFields func(rec T) []string
	Date         func(rec T) time.Time // zero func means no date matching
	IsFree       func(rec T) bool      // nil disables the free/paid search tokens
	Rules        map[string]Rule[T]
}

// Filters is the active filter set: unordered, no duplicates.
type Filters map[string]struct{}

func NewFilters(ids ...string) Filters {
	f := make(Filters, len(ids))
	for _, id := range ids {
		f[id] = struct{}{}
	}
	return f
}

// ParseFilters splits a comma-separated query parameter into a set.
// Blank entries are dropped.
func ParseFilters(raw string) Filters {
	f := Filters{}
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			f[id] = struct{}{}
		}
	}
	return f
}

// Toggle adds the id if absent, removes it if present.
func (f Filters) Toggle(id string) {
	if f.Has(id) {
		delete(f, id)
	} else {
		f[id] = struct{}{}
	}
}

func (f Filters) Has(id string) bool {
	_, ok := f[id]
	return ok
}

// IDs returns the active ids sorted, for logging.
func (f Filters) IDs() []string {
	ids := make([]string, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MatchSearch reports whether the record matches a free-text query.
// The empty query matches everything. Matching is case-insensitive
// substring over the type's field set, plus the free/paid tokens (and
// their truncations) against the cost flag where the type has one, plus
// the record's date rendered in long form.
func (c *Catalog[T]) MatchSearch(rec T, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)

	for _, field := range c.SearchFields(rec) {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}

	if c.IsFree != nil {
		switch q {
		case "free", "fre", "fr":
			if c.IsFree(rec) {
				return true
			}
		case "paid", "pai", "pa":
			if !c.IsFree(rec) {
				return true
			}
		}
	}

	if c.Date != nil {
		rendered := strings.ToLower(c.Date(rec).Format(fullDateLayout))
		if strings.Contains(rendered, q) {
			return true
		}
	}

	return false
}

// MatchFilters reports whether the record satisfies every active
// filter. An empty set passes everything. Ids without a rule pass the
// record: a stale client sees its unknown filter ignored rather than
// an empty page.
func (c *Catalog[T]) MatchFilters(rec T, active Filters, now time.Time) bool {
	if len(active) == 0 {
		return true
	}
	for id := range active {
		rule, ok := c.Rules[id]
		if !ok {
			continue
		}
		if !rule(rec, now) {
			return false
		}
	}
	return true
}

// Match combines search and filters; both must pass.
func (c *Catalog[T]) Match(rec T, query string, active Filters, now time.Time) bool {
	return c.MatchSearch(rec, query) && c.MatchFilters(rec, active, now)
}

// Apply filters a fetched result set, preserving its order.
func (c *Catalog[T]) Apply(recs []T, query string, active Filters, now time.Time) []T {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		if c.Match(rec, query, active, now) {
			out = append(out, rec)
		}
	}
	return out
}

// KnownFilter reports whether the catalog has a rule for the id.
// Callers that want to reject unknown ids at input can use this; the
// listing endpoints deliberately do not.
func (c *Catalog[T]) KnownFilter(id string) bool {
	_, ok := c.Rules[id]
	return ok
}

func sameMonth(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Year() == b.Year()
}

func nextMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
}

// endingSoon: not past, and no more than seven days out. The boundary
// at exactly 7*24h is included.
func endingSoon(deadline, now time.Time) bool {
	if deadline.Before(now) {
		return false
	}
	return !deadline.After(now.Add(7 * 24 * time.Hour))
}
