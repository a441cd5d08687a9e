// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package sigdepth

import (
	"math"
	"runtime"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// gsvaConfig configures the rank-based single-sample enrichment
// scoring (Hänzelmann, Castelo & Guinney 2013).
type gsvaConfig struct {
	// KernelCDF selects Gaussian-kernel estimation of each gene's
	// expression CDF across samples (bandwidth sd/4). When false an
	// empirical CDF is used instead.
	KernelCDF bool
	// Workers bounds internal parallelism across signatures; 0 means
	// one worker per CPU. The result is identical for any value.
	Workers int
}

// gsvaScores computes one enrichment score per (signature, sample)
// using the full gene-by-sample matrix as background. Each gene's
// expression is first re-expressed as an estimated CDF value across
// samples, genes are ranked per sample by that estimate, and a
// KS-like running sum over the ranking yields the score (τ=1, score =
// max positive deviation + max negative deviation).
func gsvaScores(m *matrix, sigs []signature, cfg gsvaConfig) *matrix {
	nGenes, nSamples := len(m.RowNames), len(m.ColNames)

	z := make([][]float64, nGenes)
	for g := range z {
		z[g] = geneCDF(m.Values[g], cfg.KernelCDF)
	}

	// Per sample: gene order by decreasing z, and the symmetric rank
	// statistic |p/2 − rank| aligned with that order.
	order := make([][]int, nSamples)
	rstat := make([][]float64, nSamples)
	for s := 0; s < nSamples; s++ {
		idx := make([]int, nGenes)
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(i, j int) bool { return z[idx[i]][s] > z[idx[j]][s] })
		rs := make([]float64, nGenes)
		for pos := range idx {
			rank := float64(pos + 1)
			rs[pos] = math.Abs(float64(nGenes)/2 - rank)
		}
		order[s] = idx
		rstat[s] = rs
	}

	out := newMatrix(signatureNames(len(sigs)), m.ColNames)
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	throttle := throttle{Max: workers}
	for i := range sigs {
		i := i
		throttle.Acquire()
		go func() {
			defer throttle.Release()
			member := make([]bool, nGenes)
			for _, g := range sigs[i] {
				member[g] = true
			}
			for s := 0; s < nSamples; s++ {
				out.Values[i][s] = runningSumScore(order[s], rstat[s], member)
			}
		}()
	}
	throttle.Wait()
	return out
}

// geneCDF estimates, for one gene, the CDF value of each sample's
// expression within the gene's own across-sample distribution.
func geneCDF(row []float64, kernel bool) []float64 {
	n := len(row)
	z := make([]float64, n)
	if !kernel {
		for j, x := range row {
			le := 0
			for _, y := range row {
				if y <= x {
					le++
				}
			}
			z[j] = float64(le) / float64(n)
		}
		return z
	}
	h := stat.StdDev(row, nil) / 4
	if h == 0 || math.IsNaN(h) {
		// Constant row: every sample sits at the distribution's
		// midpoint.
		for j := range z {
			z[j] = 0.5
		}
		return z
	}
	for j, x := range row {
		sum := 0.0
		for _, y := range row {
			sum += distuv.UnitNormal.CDF((x - y) / h)
		}
		z[j] = sum / float64(n)
	}
	return z
}

// runningSumScore walks genes in rank order, stepping up (weighted by
// the rank statistic) at signature members and down elsewhere, and
// returns the sum of the largest positive and largest negative
// deviations.
func runningSumScore(order []int, rstat []float64, member []bool) float64 {
	inSum := 0.0
	nIn := 0
	for pos, g := range order {
		if member[g] {
			inSum += rstat[pos]
			nIn++
		}
	}
	nOut := len(order) - nIn
	if nIn == 0 || nOut == 0 || inSum == 0 {
		return 0
	}

	var run, maxPos, maxNeg float64
	stepOut := 1 / float64(nOut)
	for pos, g := range order {
		if member[g] {
			run += rstat[pos] / inSum
		} else {
			run -= stepOut
		}
		if run > maxPos {
			maxPos = run
		}
		if run < maxNeg {
			maxNeg = run
		}
	}
	return maxPos + maxNeg
}
