// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package sigdepth

import (
	"github.com/james-bowman/nlp"
	"gonum.org/v1/gonum/mat"
)

// samplePCA projects the samples of a gene-by-sample matrix onto the
// first `components` principal components. The returned matrix is
// samples × components, row order matching m.ColNames.
func samplePCA(m *matrix, components int) ([][]float64, error) {
	nGenes, nSamples := len(m.RowNames), len(m.ColNames)
	data := make([]float64, nGenes*nSamples)
	for g := range m.Values {
		copy(data[g*nSamples:], m.Values[g])
	}
	// nlp expects features as rows and samples as columns, which is
	// already this matrix's orientation.
	mtx := mat.Matrix(mat.NewDense(nGenes, nSamples, data))

	transformer := nlp.NewPCA(components)
	transformer.Fit(mtx)
	mtx, err := transformer.Transform(mtx)
	if err != nil {
		return nil, err
	}
	mtx = mtx.T()

	rows, cols := mtx.Dims()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			out[i][j] = mtx.At(i, j)
		}
	}
	return out, nil
}
