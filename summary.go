// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package sigdepth

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/montanaflynn/stats"
)

// fiveNumber returns min, Q1, median, Q3, max of vals.
func fiveNumber(vals []float64) (summary [5]float64, err error) {
	q, err := stats.Quartile(vals)
	if err != nil {
		return summary, err
	}
	min, err := stats.Min(vals)
	if err != nil {
		return summary, err
	}
	max, err := stats.Max(vals)
	if err != nil {
		return summary, err
	}
	return [5]float64{min, q.Q1, q.Q2, q.Q3, max}, nil
}

// printDeltaHistogram prints a terminal histogram of the element-wise
// differences between two score series.
func printDeltaHistogram(w io.Writer, label string, high, low []float64) error {
	if len(high) == 0 || len(high) != len(low) {
		return fmt.Errorf("histogram %q: empty or mismatched series", label)
	}
	deltas := make([]float64, len(high))
	for i := range high {
		deltas[i] = high[i] - low[i]
	}
	fmt.Fprintf(w, "%s: high - low score deltas\n", label)
	return histogram.Fprint(w, histogram.Hist(9, deltas), histogram.Linear(40))
}
