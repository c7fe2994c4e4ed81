// Package core: contact graph method implementations.
//
// This file provides thread-safe operations for person and contact-record
// management on the Graph type defined in types.go. The arena layout keeps
// each unordered pair's meetings in exactly one record, found in O(1)
// through either endpoint's adjacency map, and keeps every record's time
// sequence sorted and deduplicated at insertion time.

package core

import (
	"sort"
)

// AddPerson inserts a new person with the given ID into the graph.
// Returns ErrEmptyPersonID if id is empty.
// If the person already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddPerson(id string) error {
	if id == "" {
		return ErrEmptyPersonID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensurePerson(id)

	return nil
}

// HasPerson reports whether a person with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasPerson(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.index[id]

	return exists
}

// AddTrace ingests one raw contact observation, creating both people on
// first sight and folding the meeting time into the pair's record.
// Re-submitting an identical trace any number of times is a no-op.
// Returns ErrEmptyPersonID if either endpoint is the empty string.
// Complexity: O(k) where k is the number of recorded times for the pair.
func (g *Graph) AddTrace(tr Trace) error {
	return g.RecordContact(tr.PersonA, tr.PersonB, tr.Time)
}

// RecordContact records that a and b met at time t.
// Both people are created lazily if absent. The pair shares exactly one
// contact record; a repeated meeting time for the same pair is a silent
// no-op, so duplicate submissions never inflate the record.
// Returns ErrEmptyPersonID if either ID is empty.
// Complexity: O(k) for the sorted insert, k = recorded times for the pair.
func (g *Graph) RecordContact(a, b string, t int64) error {
	if a == "" || b == "" {
		return ErrEmptyPersonID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	ai := g.ensurePerson(a)
	bi := g.ensurePerson(b)

	// Existing record for the pair: insert the time, keeping order and uniqueness.
	if h, ok := g.adj[ai][bi]; ok {
		g.records[h].times = insertTime(g.records[h].times, t)
		return nil
	}

	// First contact for this pair: allocate a record and link it from both sides.
	lo, hi := ai, bi
	if lo > hi {
		lo, hi = hi, lo
	}
	h := len(g.records)
	g.records = append(g.records, contactRecord{a: lo, b: hi, times: []int64{t}})
	g.adj[ai][bi] = h
	if ai != bi {
		g.adj[bi][ai] = h
	}

	return nil
}

// ContactTimes returns every recorded meeting time between a and b, in
// ascending order. A known pair that never met yields an empty sequence.
// Returns ErrPersonNotFound if either person is unknown.
// Complexity: O(k) to copy, k = recorded times for the pair.
func (g *Graph) ContactTimes(a, b string) ([]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ai, ok := g.index[a]
	if !ok {
		return nil, ErrPersonNotFound
	}
	bi, ok := g.index[b]
	if !ok {
		return nil, ErrPersonNotFound
	}

	h, ok := g.adj[ai][bi]
	if !ok {
		return []int64{}, nil // known pair, never met
	}
	out := make([]int64, len(g.records[h].times))
	copy(out, g.records[h].times)

	return out, nil
}

// Contacts returns the distinct other people the given person has ever met,
// sorted by ID for determinism. The person itself is never included, even
// when a self-contact was recorded.
// Returns ErrPersonNotFound if id is unknown.
// Complexity: O(d log d), d = number of distinct contacts.
func (g *Graph) Contacts(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pi, ok := g.index[id]
	if !ok {
		return nil, ErrPersonNotFound
	}

	out := make([]string, 0, len(g.adj[pi]))
	for ni := range g.adj[pi] {
		if ni == pi {
			continue // self-contact record
		}
		out = append(out, g.persons[ni])
	}
	sort.Strings(out)

	return out, nil
}

// Persons returns all person IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Persons() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.persons))
	copy(out, g.persons)
	sort.Strings(out)

	return out
}

// PersonCount returns the number of known people. O(1).
func (g *Graph) PersonCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.persons)
}

// RecordCount returns the number of contact records (met pairs). O(1).
func (g *Graph) RecordCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.records)
}

// Clone returns a deep copy of the graph: arenas, records, and adjacency.
// Mutating the clone never affects the original, so a snapshot can keep
// serving trace queries while fresh contacts are ingested elsewhere.
// Complexity: O(V + E + T), T = total recorded times.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		index:   make(map[string]int, len(g.index)),
		persons: make([]string, len(g.persons)),
		records: make([]contactRecord, len(g.records)),
		adj:     make([]map[int]int, len(g.adj)),
	}
	copy(clone.persons, g.persons)
	for id, i := range g.index {
		clone.index[id] = i
	}
	for h, rec := range g.records {
		times := make([]int64, len(rec.times))
		copy(times, rec.times)
		clone.records[h] = contactRecord{a: rec.a, b: rec.b, times: times}
	}
	for i, nbrs := range g.adj {
		clone.adj[i] = make(map[int]int, len(nbrs))
		for ni, h := range nbrs {
			clone.adj[i][ni] = h
		}
	}

	return clone
}

// Internal helpers:
////////////////////

// ensurePerson returns the arena index for id, allocating a slot and an
// empty adjacency map on first sight. Caller must hold the write lock.
func (g *Graph) ensurePerson(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.persons)
	g.index[id] = i
	g.persons = append(g.persons, id)
	g.adj = append(g.adj, make(map[int]int))

	return i
}

// insertTime inserts t into the ascending sequence ts, preserving order
// and uniqueness. Inserting an already-present time returns ts unchanged.
func insertTime(ts []int64, t int64) []int64 {
	i := sort.Search(len(ts), func(j int) bool { return ts[j] >= t })
	if i < len(ts) && ts[i] == t {
		return ts // exact duplicate, no-op
	}
	ts = append(ts, 0)
	copy(ts[i+1:], ts[i:])
	ts[i] = t

	return ts
}
