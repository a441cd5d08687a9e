// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package sigdepth

import (
	"bytes"
	"os"

	"gopkg.in/check.v1"
)

type pipelineSuite struct{}

var _ = check.Suite(&pipelineSuite{})

func (s *pipelineSuite) TestSimulateCommand(c *check.C) {
	tmpdir := c.MkDir()
	var stdout bytes.Buffer
	exited := (&simulatecmd{}).RunCommand("sigdepth simulate", []string{"-output-dir", tmpdir}, &bytes.Buffer{}, &stdout, os.Stderr)
	c.Assert(exited, check.Equals, 0)
	c.Check(stdout.String(), check.Equals, tmpdir+"/counts.tsv.gz\n")
	_, err := os.Stat(tmpdir + "/counts.tsv.gz")
	c.Check(err, check.IsNil)
}

func (s *pipelineSuite) TestRunCommand(c *check.C) {
	tmpdir := c.MkDir()
	var stdout bytes.Buffer
	exited := (&runcmd{}).RunCommand("sigdepth run", []string{
		"-output-dir", tmpdir,
		"-gsva-workers", "2",
	}, &bytes.Buffer{}, &stdout, os.Stderr)
	c.Assert(exited, check.Equals, 0)
	for _, name := range []string{
		"counts.tsv.gz",
		"normalized-log.tsv.gz",
		"normalized-quantile.tsv.gz",
		"scores-log-mean.npy",
		"scores-log-gsva.npy",
		"scores-quantile-mean.npy",
		"scores-quantile-gsva.npy",
		"boxplot-log-mean.png",
		"boxplot-quantile-gsva.png",
		"scatter-log-mean.png",
		"scatter-quantile-gsva.png",
		"concordance.tsv",
		"pca.npy",
		"pca.png",
	} {
		fi, err := os.Stat(tmpdir + "/" + name)
		c.Assert(err, check.IsNil, check.Commentf("%s", name))
		c.Check(fi.Size() > 0, check.Equals, true, check.Commentf("%s", name))
	}
	// stdout carries the delta histograms for all four combinations
	c.Check(bytes.Count(stdout.Bytes(), []byte("high - low score deltas")), check.Equals, 4)
}

func (s *pipelineSuite) TestRunCommandRejectsBadKernel(c *check.C) {
	var stderr bytes.Buffer
	exited := (&runcmd{}).RunCommand("sigdepth run", []string{"-kernel", "triangular"}, &bytes.Buffer{}, &bytes.Buffer{}, &stderr)
	c.Check(exited, check.Equals, 2)
	c.Check(stderr.String(), check.Matches, `(?s).*invalid -kernel.*`)
}

func (s *pipelineSuite) TestUnknownCommand(c *check.C) {
	var stderr bytes.Buffer
	exited := runCommand("sigdepth", []string{"frobnicate"}, &bytes.Buffer{}, &bytes.Buffer{}, &stderr)
	c.Check(exited, check.Equals, 2)
	c.Check(stderr.String(), check.Matches, `(?s).*unrecognized command.*usage:.*`)
}

func (s *pipelineSuite) TestVersionCommand(c *check.C) {
	var stdout bytes.Buffer
	exited := runCommand("sigdepth", []string{"version"}, &bytes.Buffer{}, &stdout, os.Stderr)
	c.Check(exited, check.Equals, 0)
	c.Check(stdout.String(), check.Equals, version+"\n")
}
