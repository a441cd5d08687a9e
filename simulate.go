package sigdepth

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// simulatecmd writes the simulated count table and stops, for
// inspecting the synthetic library without running the full pipeline.
type simulatecmd struct {
	outputDir string
}

func (cmd *simulatecmd) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cmd.outputDir, "output-dir", "./out", "output `directory`")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	}

	err = os.MkdirAll(cmd.outputDir, 0777)
	if err != nil {
		return 1
	}
	counts := simulateCounts(rand.NewSource(randomSeed))
	for s, name := range counts.Samples {
		log.Printf("sample %s: %d reads over %d genes", name, counts.columnSum(s), len(counts.Genes))
	}
	err = saveGzTSV(cmd.outputDir, "counts.tsv.gz", func(w io.Writer) error {
		return writeCountsTSV(w, counts)
	})
	if err != nil {
		return 1
	}
	fmt.Fprintln(stdout, cmd.outputDir+"/counts.tsv.gz")
	return 0
}
