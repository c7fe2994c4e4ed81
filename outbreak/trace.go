// Package outbreak computes temporal reachability over a core.Graph:
// starting from a contagious source, it walks the contact graph forward in
// time and collects everyone who could plausibly have been infected through
// a chain of qualifying contacts.
//
// This is not a plain BFS. Every expanded person carries an exposure time,
// and an edge only counts if the pair met at or after that person's
// contagious threshold (exposure time plus the incubation latency), so the
// validity of each edge depends on the path that reached it.
package outbreak

import (
	"fmt"

	"github.com/ostrello/epitrace/core"
	"github.com/ostrello/epitrace/temporal"
)

// personState tracks a person's progress through one trace run.
// Transitions only move forward: unseen → enqueued → processed.
type personState uint8

const (
	unseen personState = iota
	enqueued
	processed
)

// queueItem pairs a person with their assigned exposure time.
type queueItem struct {
	id        string
	exposedAt int64
}

// walker encapsulates mutable trace state, local to one Trace invocation.
type walker struct {
	graph *core.Graph
	opts  TraceOptions
	queue []queueItem
	state map[string]personState
	res   *Result
}

// Trace walks the contact graph forward in time from source, who became
// contagious at contagionTime, and returns everyone who may have contracted
// the disease. The source itself is never part of the result.
//
// Each person is assigned an exposure time exactly once, at first
// discovery; a later-processed path offering an earlier qualifying contact
// does not revise it (first-discovery-wins).
//
// Returns ErrGraphNil or ErrSourceNotFound for invalid input,
// ErrOptionViolation for bad options, ErrLookup for graph failures, or any
// user-supplied hook error.
func Trace(g *core.Graph, source string, contagionTime int64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate source person
	if !g.HasPerson(source) {
		return nil, ErrSourceNotFound
	}

	// Prepare walker
	n := g.PersonCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		state: make(map[string]personState, n),
		res: &Result{
			Order:     make([]string, 0, n),
			ExposedAt: make(map[string]int64, n),
		},
	}

	// The source is the origin, not an alert: processed immediately so no
	// chain can re-discover it.
	w.state[source] = processed

	// Seed the frontier. The source is already contagious at contagionTime,
	// so its threshold carries no incubation latency.
	if err := w.expand(source, contagionTime); err != nil {
		return nil, err
	}

	// Main loop
	return w.res, w.loop()
}

// loop processes the frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.opts.OnVisit(item.id, item.exposedAt); err != nil {
			return fmt.Errorf("outbreak: OnVisit error at %q: %w", item.id, err)
		}
		// A person exposed at t can transmit from t + latency onward.
		if err := w.expand(item.id, item.exposedAt+w.opts.IncubationLatency); err != nil {
			return err
		}
		w.state[item.id] = processed
	}

	return nil
}

// dequeue pops the first frontier item (FIFO), invokes OnDequeue, and
// returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.exposedAt)

	return item
}

// expand discovers every unseen contact of p reachable at or after
// threshold and enqueues each with its earliest qualifying contact time.
func (w *walker) expand(p string, threshold int64) error {
	candidates, err := temporal.ContactsAtOrAfter(w.graph, p, threshold)
	if err != nil {
		return fmt.Errorf("%w: contacts of %q: %v", ErrLookup, p, err)
	}
	for _, q := range candidates {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// Skip anyone already discovered or expanded: exposure time is
		// assigned exactly once, at first discovery.
		if w.state[q] != unseen {
			continue
		}
		t, ok, err := temporal.EarliestContactAtOrAfter(w.graph, p, q, threshold)
		if err != nil {
			return fmt.Errorf("%w: earliest contact %q-%q: %v", ErrLookup, p, q, err)
		}
		if !ok {
			// q passed the latest-time filter above, so a qualifying
			// contact always exists; kept as a guard.
			continue
		}
		w.enqueue(q, t)
	}

	return nil
}

// enqueue marks id enqueued, records its exposure time, calls OnEnqueue,
// and appends it to the frontier and the result.
//
// The enqueued transition happens here, synchronously at discovery: two
// frontier members expanded in sequence must not both enqueue a shared
// contact, or it would be assigned divergent exposure times.
func (w *walker) enqueue(id string, exposedAt int64) {
	w.state[id] = enqueued
	w.res.ExposedAt[id] = exposedAt
	w.res.Order = append(w.res.Order, id)
	w.opts.OnEnqueue(id, exposedAt)
	w.queue = append(w.queue, queueItem{id: id, exposedAt: exposedAt})
}
