package vowel

import "slices"

// Store holds the training pairs collected for each vowel. Insertion order is
// kept and duplicates are allowed.
//
// Store is not safe for concurrent use; a session owns exactly one and passes
// it to the components that need it.
type Store struct {
	pairs   [labelCount][]Pair
	version uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends pair under label. Sentinel pairs and labels outside the closed
// set are not stored and Add returns false.
func (s *Store) Add(label Label, pair Pair) bool {
	if !label.Valid() || !pair.Valid() {
		return false
	}
	s.pairs[label] = append(s.pairs[label], pair)
	s.version++
	return true
}

// AddAll merges a collected buffer under label and returns how many pairs
// were stored.
func (s *Store) AddAll(label Label, pairs []Pair) int {
	added := 0
	for _, p := range pairs {
		if s.Add(label, p) {
			added++
		}
	}
	return added
}

// Clear empties one label and returns the number of pairs removed.
func (s *Store) Clear(label Label) int {
	if !label.Valid() {
		return 0
	}
	n := len(s.pairs[label])
	s.pairs[label] = nil
	s.version++
	return n
}

// ClearAll empties every label and returns the total removed.
func (s *Store) ClearAll() int {
	total := 0
	for _, label := range Labels() {
		total += s.Clear(label)
	}
	return total
}

// Count returns the number of pairs stored for label.
func (s *Store) Count(label Label) int {
	if !label.Valid() {
		return 0
	}
	return len(s.pairs[label])
}

// Total returns the sum of all per-label counts.
func (s *Store) Total() int {
	total := 0
	for i := range s.pairs {
		total += len(s.pairs[i])
	}
	return total
}

// Counts returns the per-label counts, including labels without data.
func (s *Store) Counts() map[Label]int {
	counts := make(map[Label]int, labelCount)
	for _, label := range Labels() {
		counts[label] = len(s.pairs[label])
	}
	return counts
}

// Pairs returns a copy of the pairs stored for label.
func (s *Store) Pairs(label Label) []Pair {
	if !label.Valid() {
		return nil
	}
	return slices.Clone(s.pairs[label])
}

// Examples flattens the store in canonical label order, each label's pairs in
// insertion order.
func (s *Store) Examples() []Example {
	examples := make([]Example, 0, s.Total())
	for _, label := range Labels() {
		for _, p := range s.pairs[label] {
			examples = append(examples, Example{Pair: p, Label: label})
		}
	}
	return examples
}

// Version changes on every mutation. Consumers caching derived state compare
// versions to detect staleness.
func (s *Store) Version() uint64 {
	return s.version
}
