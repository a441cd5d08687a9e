// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package sigdepth

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// runcmd runs the whole experiment: simulate counts at both depths,
// normalise with both pipelines, score the signatures with both
// aggregation variants, and write plots, matrices, and concordance
// summaries for every combination.
type runcmd struct {
	outputDir   string
	gsvaWorkers int
	kernel      string
}

func (cmd *runcmd) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	pprof := flags.String("pprof", "", "serve Go profile data at http://`[addr]:port`")
	flags.StringVar(&cmd.outputDir, "output-dir", "./out", "output `directory`")
	flags.IntVar(&cmd.gsvaWorkers, "gsva-workers", 0, "worker goroutines for enrichment scoring (0 = all CPUs)")
	flags.StringVar(&cmd.kernel, "kernel", "gaussian", "CDF estimation `mode` for enrichment scoring (gaussian or ecdf)")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	}
	if cmd.kernel != "gaussian" && cmd.kernel != "ecdf" {
		err = fmt.Errorf("invalid -kernel %q (want gaussian or ecdf)", cmd.kernel)
		return 2
	}

	if *pprof != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprof, nil))
		}()
	}

	err = cmd.run(stdout)
	if err != nil {
		return 1
	}
	return 0
}

func (cmd *runcmd) run(stdout io.Writer) error {
	err := os.MkdirAll(cmd.outputDir, 0777)
	if err != nil {
		return err
	}

	src := rand.NewSource(randomSeed)
	log.Infof("simulating %d genes, %d+%d replicates at depths %d/%d",
		vocabSize, replicates, replicates, depthHigh, depthLow)
	counts := simulateCounts(src)
	sigs := drawSignatures(signatureCount, signatureSize, vocabSize, src)

	for s, name := range counts.Samples {
		log.Printf("sample %s: depth %d, uniformity p=%.4f",
			name, counts.columnSum(s), uniformityPvalue(countColumn(counts, s)))
	}
	err = saveGzTSV(cmd.outputDir, "counts.tsv.gz", func(w io.Writer) error {
		return writeCountsTSV(w, counts)
	})
	if err != nil {
		return err
	}

	log.Info("normalizing")
	norms := []struct {
		name string
		m    *matrix
	}{
		{"log", logFreq(counts, pseudoCount)},
		{"quantile", centerRows(quantileNormalize(logFreq(counts, pseudoCount)))},
	}
	for _, norm := range norms {
		norm := norm
		err = saveGzTSV(cmd.outputDir, "normalized-"+norm.name+".tsv.gz", func(w io.Writer) error {
			return writeMatrixTSV(w, "gene", norm.m)
		})
		if err != nil {
			return err
		}
	}

	gsvaCfg := gsvaConfig{KernelCDF: cmd.kernel == "gaussian", Workers: cmd.gsvaWorkers}

	concf, err := os.OpenFile(filepath.Join(cmd.outputDir, "concordance.tsv"), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}
	defer concf.Close()
	concw := bufio.NewWriter(concf)
	fmt.Fprintln(concw, "normalization\tvariant\tslope\tintercept\tpearson_r")

	for _, norm := range norms {
		log.Infof("scoring %d signatures (%s)", len(sigs), norm.name)
		variants := []struct {
			name   string
			scores *matrix
		}{
			{"mean", meanScores(norm.m, sigs)},
			{"gsva", gsvaScores(norm.m, sigs, gsvaCfg)},
		}
		for _, variant := range variants {
			label := norm.name + "-" + variant.name
			err = saveNpy(cmd.outputDir, "scores-"+label+".npy", variant.scores)
			if err != nil {
				return err
			}
			err = plotBoxes(filepath.Join(cmd.outputDir, "boxplot-"+label+".png"),
				label, "signature score", variant.scores)
			if err != nil {
				return err
			}

			high := variant.scores.Column(0)
			low := variant.scores.Column(replicates)
			err = plotScatter(filepath.Join(cmd.outputDir, "scatter-"+label+".png"),
				label, counts.Samples[0], counts.Samples[replicates], high, low)
			if err != nil {
				return err
			}

			for c, name := range variant.scores.ColNames {
				s, err := fiveNumber(variant.scores.Column(c))
				if err != nil {
					return err
				}
				log.Printf("%s %s: min %.3f q1 %.3f med %.3f q3 %.3f max %.3f",
					label, name, s[0], s[1], s[2], s[3], s[4])
			}

			conc, err := fitConcordance(high, low)
			if err != nil {
				return err
			}
			log.Printf("%s: slope %.4f intercept %.4f r %.4f", label, conc.Slope, conc.Intercept, conc.R)
			fmt.Fprintf(concw, "%s\t%s\t%g\t%g\t%g\n", norm.name, variant.name, conc.Slope, conc.Intercept, conc.R)

			err = printDeltaHistogram(stdout, label, high, low)
			if err != nil {
				return err
			}
		}
	}
	err = concw.Flush()
	if err != nil {
		return err
	}
	err = concf.Close()
	if err != nil {
		return err
	}

	log.Info("projecting samples (PCA)")
	coords, err := samplePCA(norms[1].m, 2)
	if err != nil {
		return err
	}
	pca := &matrix{RowNames: counts.Samples, ColNames: []string{"pc1", "pc2"}, Values: coords}
	err = saveNpy(cmd.outputDir, "pca.npy", pca)
	if err != nil {
		return err
	}
	err = plotLabelled(filepath.Join(cmd.outputDir, "pca.png"), "sample PCA", coords, counts.Samples)
	if err != nil {
		return err
	}

	log.Info("done")
	return nil
}

func countColumn(t *countTable, s int) []int {
	col := make([]int, len(t.Genes))
	for g := range t.Counts {
		col[g] = t.Counts[g][s]
	}
	return col
}
