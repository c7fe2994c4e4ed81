// Package builder generates deterministic synthetic contact networks for
// tests and benchmarks: chains, stars, and random sparse populations.
package builder

import (
	"github.com/ostrello/epitrace/core"
)

// Chain builds a linear contact chain p0–p1–…–p(n-1) where pi meets
// p(i+1) at time i·interval. With an interval larger than the incubation
// latency, a trace from p0 alerts the whole chain; with a smaller one it
// stops after the first hop, which makes chains handy fixtures for both
// regimes.
// Returns ErrTooFewPersons for n < 2.
// Complexity: O(n).
func Chain(n int, interval int64, opts ...Option) (*core.Graph, error) {
	if n < 2 {
		return nil, ErrTooFewPersons
	}
	cfg := newConfig(opts...)
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		if err := g.RecordContact(cfg.personID(i), cfg.personID(i+1), int64(i)*interval); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Star builds a hub-and-leaves network: p0 meets each of p1…p(n-1) at
// time t. A trace from the hub alerts every leaf; a trace from a leaf
// stops at the hub unless the latency is zero.
// Returns ErrTooFewPersons for n < 2.
// Complexity: O(n).
func Star(n int, t int64, opts ...Option) (*core.Graph, error) {
	if n < 2 {
		return nil, ErrTooFewPersons
	}
	cfg := newConfig(opts...)
	g := core.NewGraph()
	hub := cfg.personID(0)
	for i := 1; i < n; i++ {
		if err := g.RecordContact(hub, cfg.personID(i), t); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// RandomSparse builds a population of n people with m random contacts,
// each between a uniformly chosen pair at a uniform time in [0, maxTime).
// Repeated (pair, time) collisions deduplicate silently, so the resulting
// graph may hold fewer than m distinct meetings. Self-contacts are not
// generated. Use WithSeed for reproducible topologies.
// Returns ErrTooFewPersons for n < 2, ErrBadContactCount for m < 0,
// ErrBadTimeRange for maxTime <= 0.
// Complexity: O(n + m·k), k = times accumulated per pair.
func RandomSparse(n, m int, maxTime int64, opts ...Option) (*core.Graph, error) {
	if n < 2 {
		return nil, ErrTooFewPersons
	}
	if m < 0 {
		return nil, ErrBadContactCount
	}
	if maxTime <= 0 {
		return nil, ErrBadTimeRange
	}
	cfg := newConfig(opts...)
	g := core.NewGraph()
	// every person exists even if the RNG never picks them
	for i := 0; i < n; i++ {
		if err := g.AddPerson(cfg.personID(i)); err != nil {
			return nil, err
		}
	}
	for c := 0; c < m; c++ {
		a := cfg.rng.Intn(n)
		b := cfg.rng.Intn(n - 1)
		if b >= a {
			b++ // skip self-contact
		}
		t := cfg.rng.Int63n(maxTime)
		if err := g.RecordContact(cfg.personID(a), cfg.personID(b), t); err != nil {
			return nil, err
		}
	}

	return g, nil
}
