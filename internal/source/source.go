// Package source loads demo rows from CSV, JSON or XLSX files.
package source

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/kungfusheep/datatable"
)

// Data is a loaded table: rows plus one column per header, in file order.
type Data struct {
	Columns []datatable.Column
	Rows    []datatable.Row
}

// Options controls loading.
type Options struct {
	Sheet string // xlsx sheet name, "" = first sheet
}

// ErrUnsupported is returned for file extensions Load does not know.
var ErrUnsupported = errors.New("unsupported file type")

// Load reads path, picking the decoder from its extension.
func Load(path string, opts Options) (*Data, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open csv")
		}
		defer f.Close()
		return ReadCSV(f)
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open json")
		}
		defer f.Close()
		return ReadJSON(f)
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, opts.Sheet)
	}
	return nil, errors.Wrapf(ErrUnsupported, "%s", path)
}

// ReadCSV reads a header line followed by records. Short records leave
// the trailing fields unset.
func ReadCSV(r io.Reader) (*Data, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}
	return fromRecords(records)
}

// ReadJSON reads an array of objects. Columns are the union of object keys,
// ordered by first appearance and then alphabetically within an object.
func ReadJSON(r io.Reader) (*Data, error) {
	var objs []map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&objs); err != nil {
		return nil, errors.Wrap(err, "decode json")
	}

	d := &Data{}
	seen := map[string]bool{}
	for _, obj := range objs {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		row := make(datatable.Row, len(obj))
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				d.Columns = append(d.Columns, column(k))
			}
			row[k] = normalize(obj[k])
		}
		d.Rows = append(d.Rows, row)
	}
	return d, nil
}

// LoadXLSX reads a sheet whose first row holds the column ids.
func LoadXLSX(path, sheet string) (*Data, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open xlsx")
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %q", sheet)
	}
	return fromRecords(records)
}

func fromRecords(records [][]string) (*Data, error) {
	if len(records) == 0 {
		return nil, errors.New("no header row")
	}
	header := records[0]
	d := &Data{Columns: make([]datatable.Column, 0, len(header))}
	for _, h := range header {
		d.Columns = append(d.Columns, column(strings.TrimSpace(h)))
	}
	for _, rec := range records[1:] {
		row := make(datatable.Row, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[strings.TrimSpace(h)] = parseCell(rec[i])
			}
		}
		d.Rows = append(d.Rows, row)
	}
	return d, nil
}

func column(id string) datatable.Column {
	return datatable.NewColumn(id, strings.ToUpper(id[:min(1, len(id))])+id[min(1, len(id)):])
}

// parseCell turns numeric and boolean text into typed values.
func parseCell(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil && len(s) > 1 {
		return b
	}
	return s
}

func normalize(v any) any {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i
		}
		f, _ := n.Float64()
		return f
	}
	return v
}
