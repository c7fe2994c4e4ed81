package outbreak_test

import (
	"testing"

	"github.com/ostrello/epitrace/builder"
	"github.com/ostrello/epitrace/outbreak"
)

// BenchmarkTrace_Chain measures a full-chain trace: every meeting is
// spaced past the incubation latency, so all N people are reached.
func BenchmarkTrace_Chain(b *testing.B) {
	const n = 10000
	g, err := builder.Chain(n, 2*outbreak.DefaultIncubationLatency)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = outbreak.Trace(g, "p0", 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTrace_Star measures the wide-frontier case: one expansion
// discovering N-1 leaves at once.
func BenchmarkTrace_Star(b *testing.B) {
	const n = 10000
	g, err := builder.Star(n, 0)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = outbreak.Trace(g, "p0", 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTrace_RandomSparse measures a mixed random population where
// many candidate edges fail the temporal filter.
func BenchmarkTrace_RandomSparse(b *testing.B) {
	g, err := builder.RandomSparse(2000, 8000, 10000, builder.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = outbreak.Trace(g, "p0", 0); err != nil {
			b.Fatal(err)
		}
	}
}
