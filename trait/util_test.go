package trait

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/tender/genome"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// expressed returns a genome whose resolved values are exactly values.
func expressed(t *testing.T, values []uint8) *genome.Genome {
	t.Helper()
	c1 := make(genome.Chromosome, len(values))
	c2 := make(genome.Chromosome, len(values))
	for i, v := range values {
		c1[i] = genome.Gene{Dominance: 255, Value: v}
		c2[i] = genome.Gene{Dominance: 0, Value: ^v}
	}
	g, err := genome.New(c1, c2)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func filled(n int, v uint8) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = v
	}
	return out
}
