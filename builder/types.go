// Package builder: sentinel errors and functional options for the
// contact-network generators.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Generators never panic; invalid parameters return sentinels.
package builder

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for generator parameter validation.
var (
	// ErrTooFewPersons indicates the requested population is below the
	// minimum for the generator (Chain and Star need at least 2).
	ErrTooFewPersons = errors.New("builder: too few persons")

	// ErrBadContactCount indicates a negative number of contacts was requested.
	ErrBadContactCount = errors.New("builder: contact count is negative")

	// ErrBadTimeRange indicates a non-positive sampling range for meeting times.
	ErrBadTimeRange = errors.New("builder: time range must be positive")
)

// defaultIDPrefix is prepended to the numeric person index ("p0", "p1", …).
const defaultIDPrefix = "p"

// Option configures generator behavior via functional arguments.
type Option func(*config)

// config is the resolved generator configuration; immutable once built.
type config struct {
	idPrefix string
	rng      *rand.Rand
}

// newConfig resolves options over the defaults: prefix "p", seed 1.
func newConfig(opts ...Option) config {
	cfg := config{
		idPrefix: defaultIDPrefix,
		rng:      rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDPrefix changes the person-ID prefix. An empty prefix is kept:
// IDs then read as bare indices.
func WithIDPrefix(prefix string) Option {
	return func(c *config) { c.idPrefix = prefix }
}

// WithSeed seeds the RNG used by stochastic generators. Same seed and
// parameters produce an identical graph.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// personID renders the ID for arena slot i under the configured scheme.
func (c config) personID(i int) string {
	return fmt.Sprintf("%s%d", c.idPrefix, i)
}
