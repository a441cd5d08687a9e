// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package sigdepth

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// uniformityPvalue returns the chi-squared goodness-of-fit p-value of
// observed per-gene counts against a uniform expectation (df = G−1).
// Returns 1 when the sample is empty.
func uniformityPvalue(counts []int) float64 {
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 || len(counts) < 2 {
		return 1
	}
	exp := float64(total) / float64(len(counts))
	sum := 0.0
	for _, n := range counts {
		d := float64(n) - exp
		sum += d * d / exp
	}
	dist := distuv.ChiSquared{K: float64(len(counts) - 1)}
	return dist.Survival(sum)
}
