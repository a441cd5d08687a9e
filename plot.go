// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package sigdepth

import (
	"errors"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotBoxes renders one box-and-whisker per column of m, summarising
// that column's distribution over all rows.
func plotBoxes(filename, title, ylabel string, m *matrix) error {
	if len(m.Values) == 0 || len(m.ColNames) == 0 {
		return errors.New("plot: empty matrix")
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.Y.Label.Text = ylabel
	for c := range m.ColNames {
		box, err := plotter.NewBoxPlot(vg.Points(24), float64(c), plotter.Values(m.Column(c)))
		if err != nil {
			return err
		}
		p.Add(box)
	}
	p.NominalX(m.ColNames...)
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

// plotScatter renders y against x with a slope-1 reference diagonal.
// Both axes share the same [min,max] range so the diagonal marks
// perfect agreement.
func plotScatter(filename, title, xlabel, ylabel string, x, y []float64) error {
	if len(x) == 0 || len(x) != len(y) {
		return errors.New("plot: empty or mismatched series")
	}
	min, max := math.Inf(1), math.Inf(-1)
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X, xys[i].Y = x[i], y[i]
		min = math.Min(min, math.Min(x[i], y[i]))
		max = math.Max(max, math.Max(x[i], y[i]))
	}

	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.X.Min, p.X.Max = min, max
	p.Y.Min, p.Y.Max = min, max

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(1.5)

	diag, err := plotter.NewLine(plotter.XYs{{X: min, Y: min}, {X: max, Y: max}})
	if err != nil {
		return err
	}
	diag.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	p.Add(scatter, diag)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}

// plotLabelled renders points with a text label at each point, used
// for the sample PCA projection.
func plotLabelled(filename, title string, coords [][]float64, names []string) error {
	if len(coords) == 0 || len(coords) != len(names) {
		return errors.New("plot: empty or mismatched series")
	}
	xys := make(plotter.XYs, len(coords))
	for i, xy := range coords {
		xys[i].X, xys[i].Y = xy[0], xy[1]
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.X.Label.Text = "PC1"
	p.Y.Label.Text = "PC2"

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return err
	}
	p.Add(scatter, labels)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}
