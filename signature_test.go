// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package sigdepth

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gopkg.in/check.v1"
)

type signatureSuite struct{}

var _ = check.Suite(&signatureSuite{})

func (s *signatureSuite) TestDrawSignatures(c *check.C) {
	sigs := drawSignatures(signatureCount, signatureSize, vocabSize, rand.NewSource(randomSeed))
	c.Assert(sigs, check.HasLen, signatureCount)
	for _, sig := range sigs {
		c.Assert(sig, check.HasLen, signatureSize)
		for _, g := range sig {
			if g < 0 || g >= vocabSize {
				c.Fatalf("gene index %d out of range", g)
			}
		}
	}
	again := drawSignatures(signatureCount, signatureSize, vocabSize, rand.NewSource(randomSeed))
	c.Check(again, check.DeepEquals, sigs)
}

func (s *signatureSuite) TestDuplicateWeightedMean(c *check.C) {
	m := &matrix{
		RowNames: []string{"X", "Y"},
		ColNames: []string{"s1", "s2"},
		Values: [][]float64{
			{3, -1},
			{9, 2},
		},
	}
	// X twice, Y once: mean is (2x+y)/3, not (x+y)/2.
	scores := meanScores(m, []signature{{0, 0, 1}})
	c.Assert(scores.Values, check.HasLen, 1)
	c.Check(fmt.Sprintf("%.6f", scores.Values[0][0]), check.Equals, fmt.Sprintf("%.6f", (2*3.0+9)/3))
	c.Check(fmt.Sprintf("%.6f", scores.Values[0][1]), check.Equals, fmt.Sprintf("%.6f", (2*-1.0+2)/3))
}

func (s *signatureSuite) TestMeanScoresShape(c *check.C) {
	t := simulateCounts(rand.NewSource(randomSeed))
	m := logFreq(t, pseudoCount)
	sigs := drawSignatures(20, signatureSize, vocabSize, rand.NewSource(4))
	scores := meanScores(m, sigs)
	c.Check(scores.RowNames, check.HasLen, 20)
	c.Check(scores.ColNames, check.DeepEquals, t.Samples)
}
