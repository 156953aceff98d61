// Package table adapts column-oriented tables to the dependence-measure
// engine: loading numeric tables from CSV or XLSX files and computing
// pairwise measure matrices and test sweeps over their columns.
package table

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/mat"

	"goassoc/internal/errors"
)

// Table is an immutable column-oriented numeric table. Missing cells
// are stored as NaN.
type Table struct {
	Columns []string
	Data    *mat.Dense
}

// NumRows returns the number of observation rows
func (t *Table) NumRows() int {
	r, _ := t.Data.Dims()
	return r
}

// NumCols returns the number of columns
func (t *Table) NumCols() int {
	_, c := t.Data.Dims()
	return c
}

// Column returns a copy of column j
func (t *Table) Column(j int) []float64 {
	return mat.Col(nil, j, t.Data)
}

// LoadCSV reads a headed CSV file into a Table. Empty, "NA", and "NaN"
// cells (and anything non-numeric) become missing values.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening CSV file")
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading CSV file")
	}
	if len(records) < 2 {
		return nil, errors.New(errors.CodeParse, "CSV needs a header row and at least one data row")
	}
	return fromRecords(records)
}

// LoadXLSX reads the given sheet of an XLSX workbook into a Table; an
// empty sheet name selects the first sheet.
func LoadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening XLSX file")
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "reading XLSX sheet")
	}
	if len(rows) < 2 {
		return nil, errors.New(errors.CodeParse, "sheet needs a header row and at least one data row")
	}
	return fromRecords(rows)
}

func fromRecords(records [][]string) (*Table, error) {
	header := records[0]
	cols := len(header)
	rows := len(records) - 1

	data := mat.NewDense(rows, cols, nil)
	for i, record := range records[1:] {
		if len(record) > cols {
			return nil, errors.Newf(errors.CodeParse, "row %d has %d cells, header has %d", i+2, len(record), cols)
		}
		for j := 0; j < cols; j++ {
			// XLSX rows may be ragged on trailing empty cells
			if j >= len(record) {
				data.Set(i, j, math.NaN())
				continue
			}
			data.Set(i, j, parseCell(record[j]))
		}
	}

	columns := make([]string, cols)
	copy(columns, header)
	return &Table{Columns: columns, Data: data}, nil
}

func parseCell(s string) float64 {
	switch s {
	case "", "NA", "NaN", "nan":
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
