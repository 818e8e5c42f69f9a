// Package query composes free-text and categorical predicates over in-memory
// collections. Filtering never mutates its input and keeps input order.
package query

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Sentinel values that disable a categorical filter.
const (
	All       = "All"
	AllArabic = "الكل"
)

// Predicate reports whether an item belongs to the filtered view.
type Predicate[T any] func(T) bool

// IsMatchAll reports whether a categorical filter value selects everything.
// An empty value counts as unset.
func IsMatchAll(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || v == All || v == AllArabic
}

// Contains matches items whose field contains term, ignoring case. The
// returned predicate is safe for concurrent use.
func Contains[T any](field func(T) string, term string) Predicate[T] {
	folder := cases.Fold()
	needle := folder.String(strings.TrimSpace(term))
	if needle == "" {
		return func(T) bool { return true }
	}
	// a Caser carries state between calls
	var mu sync.Mutex
	return func(item T) bool {
		mu.Lock()
		folded := folder.String(field(item))
		mu.Unlock()
		return strings.Contains(folded, needle)
	}
}

// Equals matches items whose field equals value exactly, unless value is a
// match-all sentinel.
func Equals[T any](field func(T) string, value string) Predicate[T] {
	if IsMatchAll(value) {
		return func(T) bool { return true }
	}
	return func(item T) bool {
		return field(item) == value
	}
}

// And combines predicates by logical conjunction.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range preds {
			if p != nil && !p(item) {
				return false
			}
		}
		return true
	}
}

// Filter returns a new slice holding the items that satisfy every predicate.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	match := And(preds...)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}
