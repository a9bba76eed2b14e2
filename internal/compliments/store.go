// Package compliments holds the compliment store: categories of text
// entries kept in insertion order, random selection under a category
// filter, and persistence through a key/value backend.
package compliments

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrEmptyCategory is returned by AddEntry when the category label
	// normalizes to an empty name.
	ErrEmptyCategory = errors.New("category name is empty")
	// ErrEmptyText is returned by AddEntry when the entry text is blank.
	ErrEmptyText = errors.New("compliment text is empty")
)

// Rand is the source of randomness used by RandomEntry.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand draws from the math/rand/v2 global source.
var DefaultRand Rand = globalRand{}

// Store maps category names to ordered entries. Categories keep the order
// in which they were first added. A Store is treated as immutable once
// built: AddEntry returns a new Store and leaves the receiver untouched.
type Store struct {
	order   []string
	entries map[string][]string
}

// New returns an empty store.
func New() *Store {
	return &Store{entries: make(map[string][]string)}
}

// Categories returns the category names in first-insertion order.
func (s *Store) Categories() []string {
	return slices.Clone(s.order)
}

// Has reports whether the category exists, even if it has no entries.
func (s *Store) Has(category string) bool {
	_, ok := s.entries[category]
	return ok
}

// Entries returns a copy of the entries of one category. An absent
// category yields nil.
func (s *Store) Entries(category string) []string {
	return slices.Clone(s.entries[category])
}

// Count returns the number of entries in a category.
func (s *Store) Count(category string) int {
	return len(s.entries[category])
}

// AllEntries concatenates every category's entries, in category order and
// then entry order.
func (s *Store) AllEntries() []string {
	return lo.Flatten(lo.Map(s.order, func(category string, _ int) []string {
		return s.entries[category]
	}))
}

// Len returns the total number of entries across all categories.
func (s *Store) Len() int {
	return lo.SumBy(s.order, func(category string) int {
		return len(s.entries[category])
	})
}

// RandomEntry picks an entry uniformly at random. With category "all" or
// "" the pool is every entry; otherwise it is the named category, falling
// back to every entry when that category is absent or empty. ok is false
// only when the whole store is empty.
func (s *Store) RandomEntry(category string, rng Rand) (entry string, ok bool) {
	pool := s.pool(category)
	if len(pool) == 0 {
		return "", false
	}
	if rng == nil {
		rng = DefaultRand
	}
	return pool[rng.IntN(len(pool))], true
}

func (s *Store) pool(category string) []string {
	if category != "" && category != AllCategories {
		if entries := s.entries[category]; len(entries) > 0 {
			return entries
		}
	}
	return s.AllEntries()
}

// AddEntry appends text to the category named by rawCategory after
// normalization, creating the category if needed. It returns the updated
// store together with the normalized category name. On a validation error
// the receiver is returned unchanged.
func (s *Store) AddEntry(rawCategory, text string) (*Store, string, error) {
	category := NormalizeCategory(rawCategory)
	if category == "" {
		return s, "", ErrEmptyCategory
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return s, category, ErrEmptyText
	}

	next := s.Clone()
	next.add(category, text)
	return next, category, nil
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	c := &Store{
		order:   slices.Clone(s.order),
		entries: make(map[string][]string, len(s.entries)),
	}
	for k, v := range s.entries {
		c.entries[k] = slices.Clone(v)
	}
	return c
}

// add appends entries to a category in place. It is only used while a
// store is being built.
func (s *Store) add(category string, entries ...string) {
	if _, ok := s.entries[category]; !ok {
		s.order = append(s.order, category)
	}
	s.entries[category] = append(s.entries[category], entries...)
}

// set replaces a category's entries in place, keeping its original
// position if it already exists.
func (s *Store) set(category string, entries []string) {
	if _, ok := s.entries[category]; !ok {
		s.order = append(s.order, category)
	}
	s.entries[category] = entries
}
