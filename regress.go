// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package sigdepth

import (
	"errors"
	"io"
	"log"

	"github.com/kshedden/statmodel/glm"
	"github.com/kshedden/statmodel/statmodel"
	"gonum.org/v1/gonum/stat"
)

var olsConfig = &glm.Config{
	Family:    glm.NewFamily(glm.GaussianFamily),
	FitMethod: "IRLS",
	Log:       log.New(io.Discard, "", 0),
}

// concordance summarises agreement between a high-depth and a
// low-depth score series: the OLS fit low = Intercept + Slope·high,
// plus the Pearson correlation. Perfect agreement is slope 1,
// intercept 0, r 1.
type concordance struct {
	Slope     float64
	Intercept float64
	R         float64
}

func fitConcordance(high, low []float64) (concordance, error) {
	if len(high) == 0 || len(high) != len(low) {
		return concordance{}, errors.New("concordance: empty or mismatched series")
	}

	outcome := make([]statmodel.Dtype, len(low))
	icept := make([]statmodel.Dtype, len(low))
	pred := make([]statmodel.Dtype, len(low))
	for i := range low {
		outcome[i] = low[i]
		icept[i] = 1
		pred[i] = high[i]
	}
	data := [][]statmodel.Dtype{outcome, icept, pred}
	names := []string{"low", "icept", "high"}
	dataset := statmodel.NewDataset(data, names)

	model, err := glm.NewGLM(dataset, "low", names[1:], olsConfig)
	if err != nil {
		return concordance{}, err
	}
	result := model.Fit()
	params := result.Params()

	return concordance{
		Slope:     params[1],
		Intercept: params[0],
		R:         stat.Correlation(high, low, nil),
	}, nil
}
