// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package sigdepth

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Statistical parameters of the simulation. These are fixed by design;
// only I/O-oriented options are exposed as command line flags.
const (
	vocabSize      = 100
	depthHigh      = 1000
	depthLow       = 250
	replicates     = 3
	pseudoCount    = 0.001
	signatureCount = 500
	signatureSize  = 10
	randomSeed     = 123
)

// countTable holds per-gene read counts for a set of named samples.
// Counts[g][s] is the count of gene g in sample s. Every vocabulary
// gene has a row in every sample, so column sums equal the sample's
// sequencing depth exactly.
type countTable struct {
	Genes   []string
	Samples []string
	Depths  []int
	Counts  [][]int
}

func geneVocabulary(n int) []string {
	genes := make([]string, n)
	for i := range genes {
		genes[i] = fmt.Sprintf("gene%03d", i+1)
	}
	return genes
}

// sampler draws gene indices from a uniform categorical distribution
// over a fixed vocabulary. The random source is supplied by the
// caller, so reproducibility is determined by seed and call order
// alone.
type sampler struct {
	cat distuv.Categorical
}

func newSampler(nGenes int, src rand.Source) *sampler {
	w := make([]float64, nGenes)
	for i := range w {
		w[i] = 1
	}
	return &sampler{cat: distuv.NewCategorical(w, src)}
}

// Draw returns n independent gene indices drawn with replacement.
func (s *sampler) Draw(n int) []int {
	draws := make([]int, n)
	for i := range draws {
		draws[i] = int(s.cat.Rand())
	}
	return draws
}

// tabulate counts draws per gene. Genes absent from the draws get an
// explicit zero, never a missing row.
func tabulate(draws []int, nGenes int) []int {
	counts := make([]int, nGenes)
	for _, g := range draws {
		counts[g]++
	}
	return counts
}

// simulateCounts builds the full count table: replicates at high depth
// first, then replicates at low depth, all from the same source.
func simulateCounts(src rand.Source) *countTable {
	genes := geneVocabulary(vocabSize)
	s := newSampler(len(genes), src)

	t := &countTable{
		Genes:  genes,
		Counts: make([][]int, len(genes)),
	}
	for g := range t.Counts {
		t.Counts[g] = make([]int, 2*replicates)
	}
	addSample := func(col int, name string, depth int) {
		t.Samples = append(t.Samples, name)
		t.Depths = append(t.Depths, depth)
		for g, n := range tabulate(s.Draw(depth), len(genes)) {
			t.Counts[g][col] = n
		}
	}
	for rep := 0; rep < replicates; rep++ {
		addSample(rep, fmt.Sprintf("high%d", rep+1), depthHigh)
	}
	for rep := 0; rep < replicates; rep++ {
		addSample(replicates+rep, fmt.Sprintf("low%d", rep+1), depthLow)
	}
	return t
}

// columnSum returns the total count in sample column s.
func (t *countTable) columnSum(s int) int {
	sum := 0
	for g := range t.Counts {
		sum += t.Counts[g][s]
	}
	return sum
}
