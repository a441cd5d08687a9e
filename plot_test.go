// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package sigdepth

import (
	"golang.org/x/exp/rand"
	"gopkg.in/check.v1"
)

type plotSuite struct{}

var _ = check.Suite(&plotSuite{})

func (s *plotSuite) TestScatterRejectsBadInput(c *check.C) {
	tmpdir := c.MkDir()
	err := plotScatter(tmpdir+"/x.png", "t", "x", "y", nil, nil)
	c.Check(err, check.NotNil)
	err = plotScatter(tmpdir+"/x.png", "t", "x", "y", []float64{1}, []float64{1, 2})
	c.Check(err, check.NotNil)
}

func (s *plotSuite) TestBoxesRejectEmptyMatrix(c *check.C) {
	tmpdir := c.MkDir()
	c.Check(plotBoxes(tmpdir+"/x.png", "t", "y", &matrix{}), check.NotNil)
}

func (s *plotSuite) TestRenderScatter(c *check.C) {
	tmpdir := c.MkDir()
	rng := rand.New(rand.NewSource(1))
	x := make([]float64, 100)
	y := make([]float64, 100)
	for i := range x {
		x[i] = rng.Float64()
		y[i] = x[i] + 0.1*rng.Float64()
	}
	c.Check(plotScatter(tmpdir+"/s.png", "t", "x", "y", x, y), check.IsNil)
}
