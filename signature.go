// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package sigdepth

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// signature is a fixed-size multiset of gene indices. Signatures are
// drawn with replacement, so a gene can appear more than once within
// one signature and across signatures.
type signature []int

// drawSignatures draws nSig signatures of size genes each from the
// same source used for the count draws. Signatures are immutable once
// drawn.
func drawSignatures(nSig, size, nGenes int, src rand.Source) []signature {
	s := newSampler(nGenes, src)
	sigs := make([]signature, nSig)
	for i := range sigs {
		sigs[i] = signature(s.Draw(size))
	}
	return sigs
}

func signatureNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("sig%03d", i+1)
	}
	return names
}

// meanScores computes the per-signature, per-sample mean of normalised
// values. A gene that repeats within a signature contributes once per
// occurrence, so the mean is duplicate-weighted.
func meanScores(m *matrix, sigs []signature) *matrix {
	out := newMatrix(signatureNames(len(sigs)), m.ColNames)
	for i, sig := range sigs {
		for c := range m.ColNames {
			sum := 0.0
			for _, g := range sig {
				sum += m.Values[g][c]
			}
			out.Values[i][c] = sum / float64(len(sig))
		}
	}
	return out
}
