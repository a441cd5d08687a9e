package sigdepth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/pgzip"
	"github.com/kshedden/gonpy"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func writeCountsTSV(w io.Writer, t *countTable) error {
	bufw := bufio.NewWriter(w)
	fmt.Fprint(bufw, "gene")
	for _, s := range t.Samples {
		fmt.Fprintf(bufw, "\t%s", s)
	}
	fmt.Fprint(bufw, "\n")
	for g, gene := range t.Genes {
		fmt.Fprint(bufw, gene)
		for s := range t.Samples {
			fmt.Fprintf(bufw, "\t%d", t.Counts[g][s])
		}
		fmt.Fprint(bufw, "\n")
	}
	return bufw.Flush()
}

func writeMatrixTSV(w io.Writer, label string, m *matrix) error {
	bufw := bufio.NewWriter(w)
	fmt.Fprint(bufw, label)
	for _, s := range m.ColNames {
		fmt.Fprintf(bufw, "\t%s", s)
	}
	fmt.Fprint(bufw, "\n")
	for r, name := range m.RowNames {
		fmt.Fprint(bufw, name)
		for c := range m.ColNames {
			fmt.Fprintf(bufw, "\t%g", m.Values[r][c])
		}
		fmt.Fprint(bufw, "\n")
	}
	return bufw.Flush()
}

func writeMatrixNpy(w io.Writer, m *matrix) error {
	rows, cols := len(m.RowNames), len(m.ColNames)
	out := make([]float64, rows*cols)
	for r := range m.Values {
		copy(out[r*cols:], m.Values[r])
	}
	npw, err := gonpy.NewWriter(nopCloser{w})
	if err != nil {
		return err
	}
	npw.Shape = []int{rows, cols}
	return npw.WriteFloat64(out)
}

// saveGzTSV writes through a pgzip writer to dir/name.
func saveGzTSV(dir, name string, write func(io.Writer) error) error {
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}
	defer f.Close()
	gzw := pgzip.NewWriter(f)
	if err := write(gzw); err != nil {
		return err
	}
	if err := gzw.Close(); err != nil {
		return err
	}
	return f.Close()
}

func saveNpy(dir, name string, m *matrix) error {
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}
	defer f.Close()
	bufw := bufio.NewWriter(f)
	if err := writeMatrixNpy(bufw, m); err != nil {
		return err
	}
	if err := bufw.Flush(); err != nil {
		return err
	}
	return f.Close()
}
