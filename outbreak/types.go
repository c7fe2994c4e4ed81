// Package outbreak provides tunable options and error definitions
// for forward-in-time contagion tracing over a core.Graph.
package outbreak

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// DefaultIncubationLatency is the number of time units that must elapse
// after a person is exposed before they can transmit onward.
const DefaultIncubationLatency int64 = 60

// Sentinel errors for trace execution.
var (
	// ErrSourceNotFound is returned when the source person is absent.
	ErrSourceNotFound = errors.New("outbreak: source person not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("outbreak: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("outbreak: invalid option supplied")

	// ErrLookup is returned when a temporal lookup against the graph fails.
	ErrLookup = errors.New("outbreak: temporal lookup error")
)

// Option configures Trace behavior via functional arguments.
// If an Option is invalid (e.g. negative latency), it is recorded
// internally and surfaced as ErrOptionViolation when Trace is invoked.
type Option func(*TraceOptions)

// TraceOptions holds parameters and callbacks to customize a trace run.
type TraceOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// IncubationLatency is the delay between a person's exposure and the
	// earliest time they can transmit onward.
	IncubationLatency int64

	// OnEnqueue is called the moment a person is discovered and assigned
	// an exposure time, before expansion.
	OnEnqueue func(id string, exposedAt int64)

	// OnDequeue is called when a person is pulled from the frontier for
	// expansion.
	OnDequeue func(id string, exposedAt int64)

	// OnVisit is called when expanding a person. If it returns an error,
	// the trace aborts and propagates that error.
	OnVisit func(id string, exposedAt int64) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns TraceOptions with sane defaults:
//   - context.Background()
//   - IncubationLatency = DefaultIncubationLatency
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() TraceOptions {
	return TraceOptions{
		Ctx:               context.Background(),
		IncubationLatency: DefaultIncubationLatency,
		OnEnqueue:         func(string, int64) {},
		OnDequeue:         func(string, int64) {},
		OnVisit:           func(string, int64) error { return nil },
		err:               nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *TraceOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithIncubationLatency overrides the incubation latency.
//
//	d >= 0: people can transmit d time units after exposure
//	d < 0:  invalid option → ErrOptionViolation
func WithIncubationLatency(d int64) Option {
	return func(o *TraceOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: IncubationLatency cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.IncubationLatency = d
	}
}

// WithOnEnqueue registers a callback to run when a person is discovered.
func WithOnEnqueue(fn func(id string, exposedAt int64)) Option {
	return func(o *TraceOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a person leaves the frontier.
func WithOnDequeue(fn func(id string, exposedAt int64)) Option {
	return func(o *TraceOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run at expansion; returning an error
// from this callback stops the trace.
func WithOnVisit(fn func(id string, exposedAt int64) error) Option {
	return func(o *TraceOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a contagion trace:
//   - Order: people reached, in discovery sequence (source excluded).
//   - ExposedAt: map from person ID to their assigned exposure time, set
//     exactly once at first discovery.
type Result struct {
	Order     []string
	ExposedAt map[string]int64
}

// Alerted returns the alert set as a sorted slice of person IDs.
// The source person is never included.
func (r *Result) Alerted() []string {
	out := make([]string, len(r.Order))
	copy(out, r.Order)
	sort.Strings(out)

	return out
}

// Reached reports whether id was exposed during the trace.
func (r *Result) Reached(id string) bool {
	_, ok := r.ExposedAt[id]

	return ok
}
