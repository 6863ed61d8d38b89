// Package genome implements diploid gene storage.
//
// A [Genome] holds two chromosomes of equal length. Every gene is a
// (dominance, value) pair; the value expressed at an index is taken from
// whichever chromosome has the higher dominance there, with ties going to
// the first chromosome.
package genome

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

var (
	// ErrIndexOutOfRange is returned when a gene index lies outside the
	// genome.
	ErrIndexOutOfRange = errors.New("gene index out of range")
	// ErrLengthMismatch is returned by [New] when the two chromosomes differ
	// in length.
	ErrLengthMismatch = errors.New("chromosome lengths differ")
)

// Gene is one locus of a chromosome.
type Gene struct {
	Dominance uint8
	Value     uint8
}

// Chromosome is an ordered sequence of genes.
type Chromosome []Gene

// Genome is an immutable pair of chromosomes. The zero value is an empty
// genome for which every lookup fails.
type Genome struct {
	c1, c2 Chromosome
}

// New returns a genome made of copies of c1 and c2.
func New(c1, c2 Chromosome) (*Genome, error) {
	if len(c1) != len(c2) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(c1), len(c2))
	}
	return &Genome{
		c1: slices.Clone(c1),
		c2: slices.Clone(c2),
	}, nil
}

// Random returns a genome of n genes whose dominance and value bytes are
// drawn uniformly from r. The same source state always yields the same
// genome.
func Random(r *rand.Rand, n int) *Genome {
	draw := func() Chromosome {
		c := make(Chromosome, n)
		for i := range c {
			c[i] = Gene{
				Dominance: uint8(r.UintN(256)),
				Value:     uint8(r.UintN(256)),
			}
		}
		return c
	}
	c1 := draw()
	c2 := draw()
	return &Genome{c1: c1, c2: c2}
}

// NewRand returns a PCG-backed source for [Random]. Distinct streams of one
// seed yield unrelated sequences.
func NewRand(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

// Len returns the number of genes per chromosome.
func (g *Genome) Len() int { return len(g.c1) }

// Resolve returns the expressed value at index i. Chromosome 1 wins when its
// dominance is greater than or equal to chromosome 2's.
func (g *Genome) Resolve(i int) (uint8, error) {
	if i < 0 || i >= len(g.c1) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(g.c1))
	}
	a, b := g.c1[i], g.c2[i]
	if a.Dominance >= b.Dominance {
		return a.Value, nil
	}
	return b.Value, nil
}

// Chromosomes returns copies of both chromosomes.
func (g *Genome) Chromosomes() (Chromosome, Chromosome) {
	return slices.Clone(g.c1), slices.Clone(g.c2)
}
