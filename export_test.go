// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package sigdepth

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/kshedden/gonpy"
	"gopkg.in/check.v1"
)

type exportSuite struct{}

var _ = check.Suite(&exportSuite{})

func (s *exportSuite) TestCountsTSV(c *check.C) {
	t := &countTable{
		Genes:   []string{"gene001", "gene002"},
		Samples: []string{"high1", "low1"},
		Depths:  []int{10, 5},
		Counts:  [][]int{{7, 0}, {3, 5}},
	}
	var buf bytes.Buffer
	c.Assert(writeCountsTSV(&buf, t), check.IsNil)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	c.Assert(lines, check.HasLen, 3)
	c.Check(lines[0], check.Equals, "gene\thigh1\tlow1")
	c.Check(lines[1], check.Equals, "gene001\t7\t0")
	c.Check(lines[2], check.Equals, "gene002\t3\t5")
}

func (s *exportSuite) TestNpyRoundTrip(c *check.C) {
	m := &matrix{
		RowNames: []string{"r1", "r2"},
		ColNames: []string{"c1", "c2", "c3"},
		Values:   [][]float64{{1, 2, 3}, {4, 5, 6}},
	}
	var buf bytes.Buffer
	c.Assert(writeMatrixNpy(&buf, m), check.IsNil)
	npy, err := gonpy.NewReader(bytes.NewReader(buf.Bytes()))
	c.Assert(err, check.IsNil)
	c.Check(npy.Shape, check.DeepEquals, []int{2, 3})
	data, err := npy.GetFloat64()
	c.Assert(err, check.IsNil)
	c.Check(data, check.DeepEquals, []float64{1, 2, 3, 4, 5, 6})
}

func (s *exportSuite) TestSaveGzTSV(c *check.C) {
	tmpdir := c.MkDir()
	err := saveGzTSV(tmpdir, "x.tsv.gz", func(w io.Writer) error {
		_, err := w.Write([]byte("hello\tworld\n"))
		return err
	})
	c.Assert(err, check.IsNil)
	f, err := os.Open(tmpdir + "/x.tsv.gz")
	c.Assert(err, check.IsNil)
	defer f.Close()
	gzr, err := pgzip.NewReader(f)
	c.Assert(err, check.IsNil)
	body, err := ioutil.ReadAll(gzr)
	c.Assert(err, check.IsNil)
	c.Check(string(body), check.Equals, "hello\tworld\n")
}
