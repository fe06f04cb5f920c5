// Package exprtable loads delimited gene-expression tables. Rows are
// genes, columns are dataset-specific samples or cell types; every field
// is parsed as a number where possible so dataset profiles can slice rows
// by their published column offsets.
package exprtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Row is one gene's table row. Values holds every column of the source
// row, with non-numeric fields (symbol, IDs, annotations) as NaN, so the
// published column offsets index directly into it.
type Row struct {
	Symbol string
	Values []float64
}

// Table is an immutable, in-memory expression table with a
// case-insensitive gene symbol index.
type Table struct {
	columns []string
	rows    []Row
	index   map[string]int
}

// Load reads a delimited table from disk. ".gz" files are decompressed
// transparently; the delimiter is a comma for ".csv" and a tab otherwise.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	name := path
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("exprtable: open %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
		name = strings.TrimSuffix(name, ".gz")
	}

	delim := '\t'
	if filepath.Ext(name) == ".csv" {
		delim = ','
	}

	t, err := Parse(r, delim)
	if err != nil {
		return nil, fmt.Errorf("exprtable: parse %s: %w", path, err)
	}
	return t, nil
}

// Parse reads a delimited table with a header row. The header must
// contain a "symbol" column (case-insensitive) naming each gene.
func Parse(r io.Reader, delim rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	symbolCol := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "symbol") {
			symbolCol = i
			break
		}
	}
	if symbolCol < 0 {
		return nil, fmt.Errorf("no symbol column in header %v", header)
	}

	t := &Table{
		columns: header,
		index:   make(map[string]int),
	}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(t.rows)+2, err)
		}
		if symbolCol >= len(record) {
			continue
		}

		row := Row{
			Symbol: strings.TrimSpace(record[symbolCol]),
			Values: make([]float64, len(record)),
		}
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				v = math.NaN()
			}
			row.Values[i] = v
		}

		key := strings.ToLower(row.Symbol)
		if _, dup := t.index[key]; !dup && key != "" {
			t.index[key] = len(t.rows)
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}

// Columns returns the header row.
func (t *Table) Columns() []string {
	return t.columns
}

// Len returns the number of gene rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Lookup finds a gene row by symbol, case-insensitively.
func (t *Table) Lookup(symbol string) (Row, bool) {
	i, ok := t.index[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return Row{}, false
	}
	return t.rows[i], true
}

// LookupAll returns the rows for every requested symbol that exists in
// the table, preserving request order. Missing symbols are skipped.
func (t *Table) LookupAll(symbols []string) []Row {
	rows := make([]Row, 0, len(symbols))
	for _, s := range symbols {
		if row, ok := t.Lookup(s); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// Symbols returns all distinct gene symbols, sorted.
func (t *Table) Symbols() []string {
	symbols := make([]string, 0, len(t.index))
	for _, i := range t.index {
		symbols = append(symbols, t.rows[i].Symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Search returns up to limit symbols with the given case-insensitive
// prefix, sorted.
func (t *Table) Search(prefix string, limit int) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	var matches []string
	for key, i := range t.index {
		if strings.HasPrefix(key, prefix) {
			matches = append(matches, t.rows[i].Symbol)
		}
	}
	sort.Strings(matches)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
