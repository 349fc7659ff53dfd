package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gonum/floats"
	"github.com/gonum/stat"

	"macrostat/infra/errorx"
)

// Table is a rectangular set of named numeric columns in file order.
type Table struct {
	names   []string
	columns map[string][]float64
	rows    int
}

// LoadCSV reads a header-bearing delimited file. Every name in required must
// appear in the header or the load fails before any analysis runs.
func LoadCSV(path string, required []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Read(f, required)
}

func Read(r io.Reader, required []string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errorx.Newf(errorx.EMPTY_VALUE, "read header: %v", err)
	}
	names := make([]string, len(header))
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, `"`))
		names[i] = h
		idx[h] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, errorx.Newf(errorx.MISSING_COLUMN,
				"required column %q not found in header %v", col, names)
		}
	}

	columns := make(map[string][]float64, len(names))
	rows := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errorx.Newf(errorx.INVALID_VALUE, "row %d: %v", rows+1, err)
		}
		for i, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(strings.Trim(cell, `"`)), 64)
			if err != nil {
				return nil, errorx.Newf(errorx.INVALID_VALUE,
					"row %d column %q: %q is not numeric", rows+1, names[i], cell)
			}
			columns[names[i]] = append(columns[names[i]], v)
		}
		rows++
	}
	if rows == 0 {
		return nil, errorx.New(errorx.EMPTY_VALUE, "dataset has no data rows")
	}
	return &Table{names: names, columns: columns, rows: rows}, nil
}

func (t *Table) Len() int {
	return t.rows
}

func (t *Table) Names() []string {
	return t.names
}

func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, errorx.Newf(errorx.MISSING_COLUMN, "no column %q", name)
	}
	return col, nil
}

// Head writes the first n rows.
func (t *Table) Head(w io.Writer, n int) {
	if n > t.rows {
		n = t.rows
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.names, "\t"))
	for i := 0; i < n; i++ {
		cells := make([]string, len(t.names))
		for j, name := range t.names {
			cells[j] = strconv.FormatFloat(t.columns[name][i], 'g', 8, 64)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

// Describe writes count, mean, std, min and max per column.
func (t *Table) Describe(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tcount\tmean\tstd\tmin\tmax")
	for _, name := range t.names {
		col := t.columns[name]
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
			name, len(col), stat.Mean(col, nil), stat.StdDev(col, nil),
			floats.Min(col), floats.Max(col))
	}
	tw.Flush()
}
