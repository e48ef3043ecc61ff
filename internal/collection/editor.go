// Package collection implements the shared add/remove algorithm for the
// ordered sub-collections embedded in an aggregate (likes and comments on a
// post, experience and education on a profile). Collections are ordered
// most-recent-first: inserts prepend, and removal takes the first element in
// collection order that satisfies the lookup predicate.
package collection

import "errors"

var (
	// ErrDuplicate is returned by Insert when the duplicate predicate
	// matches an existing element.
	ErrDuplicate = errors.New("collection: duplicate element")
	// ErrNoMatch is returned by Remove when no element satisfies the
	// lookup predicate.
	ErrNoMatch = errors.New("collection: no matching element")
	// ErrNotOwner is returned by Remove when the matched element fails
	// the ownership predicate.
	ErrNotOwner = errors.New("collection: caller does not own element")
)

// Editor mutates an ordered collection on behalf of a caller. Duplicate and
// Owned are optional; a nil predicate disables that check.
type Editor[E any] struct {
	// Duplicate rejects an insert when it matches any existing element.
	Duplicate func(E) bool
	// Owned must hold for the matched element before it may be removed.
	Owned func(E) bool
}

// Insert prepends elem after scanning the collection for duplicates.
// The input slice is not modified.
func (ed Editor[E]) Insert(list []E, elem E) ([]E, error) {
	if ed.Duplicate != nil {
		for _, e := range list {
			if ed.Duplicate(e) {
				return nil, ErrDuplicate
			}
		}
	}

	out := make([]E, 0, len(list)+1)
	out = append(out, elem)
	return append(out, list...), nil
}

// Remove deletes the first element satisfying match, in collection order.
// Checks run in a fixed order: element existence, then ownership. The input
// slice is not modified; the removed element is returned alongside the
// updated collection.
func (ed Editor[E]) Remove(list []E, match func(E) bool) ([]E, E, error) {
	var zero E

	idx := -1
	for i, e := range list {
		if match(e) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, zero, ErrNoMatch
	}

	if ed.Owned != nil && !ed.Owned(list[idx]) {
		return nil, zero, ErrNotOwner
	}

	out := make([]E, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...), list[idx], nil
}
