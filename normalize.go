// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package sigdepth

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// matrix is a dense real-valued matrix with named rows and columns.
// Values[r][c] is row r, column c. Normalisation transforms return new
// matrices; inputs are never mutated.
type matrix struct {
	RowNames []string
	ColNames []string
	Values   [][]float64
}

func newMatrix(rowNames, colNames []string) *matrix {
	m := &matrix{RowNames: rowNames, ColNames: colNames}
	m.Values = make([][]float64, len(rowNames))
	for r := range m.Values {
		m.Values[r] = make([]float64, len(colNames))
	}
	return m
}

// Column returns a copy of column c.
func (m *matrix) Column(c int) []float64 {
	col := make([]float64, len(m.Values))
	for r := range m.Values {
		col[r] = m.Values[r][c]
	}
	return col
}

// logFreq converts counts to log2 relative frequencies with a
// pseudo-count: log2(count/depth + pseudo). The pseudo-count keeps the
// argument positive for genes with zero counts in a sample.
func logFreq(t *countTable, pseudo float64) *matrix {
	m := newMatrix(t.Genes, t.Samples)
	for g := range t.Counts {
		for s, n := range t.Counts[g] {
			m.Values[g][s] = math.Log2(float64(n)/float64(t.Depths[s]) + pseudo)
		}
	}
	return m
}

// quantileNormalize forces every column onto the same marginal
// distribution: each column's sorted values are replaced by the
// across-column mean at the corresponding rank, then put back in the
// original row order.
func quantileNormalize(m *matrix) *matrix {
	nrow, ncol := len(m.RowNames), len(m.ColNames)

	// order[c] lists row indices of column c in ascending value order.
	order := make([][]int, ncol)
	for c := 0; c < ncol; c++ {
		col := m.Column(c)
		idx := make([]int, nrow)
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(i, j int) bool { return col[idx[i]] < col[idx[j]] })
		order[c] = idx
	}

	rankMean := make([]float64, nrow)
	for rank := 0; rank < nrow; rank++ {
		sum := 0.0
		for c := 0; c < ncol; c++ {
			sum += m.Values[order[c][rank]][c]
		}
		rankMean[rank] = sum / float64(ncol)
	}

	out := newMatrix(m.RowNames, m.ColNames)
	for c := 0; c < ncol; c++ {
		for rank, r := range order[c] {
			out.Values[r][c] = rankMean[rank]
		}
	}
	return out
}

// centerRows subtracts each row's across-column mean, leaving every
// row with mean zero.
func centerRows(m *matrix) *matrix {
	out := newMatrix(m.RowNames, m.ColNames)
	for r := range m.Values {
		mean := stat.Mean(m.Values[r], nil)
		for c, v := range m.Values[r] {
			out.Values[r][c] = v - mean
		}
	}
	return out
}
