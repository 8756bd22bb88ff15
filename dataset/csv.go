package dataset

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ColumnSpec declares the name and kind of one column to load.
type ColumnSpec struct {
	Name string
	Kind Kind
}

// Schema declares the columns a loader should extract from a file.
type Schema []ColumnSpec

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Delimiter rune     // field delimiter (default: ',')
	HasHeader bool     // whether the file has a header row (default: true)
	SkipRows  int      // rows to skip before the header
	NAValues  []string // strings treated as missing (default: "", "NA", "NaN", "null")
}

// DefaultCSVOptions returns the default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ',',
		HasHeader: true,
		NAValues:  []string{"", "NA", "NaN", "null"},
	}
}

// LoadCSV loads a table from a CSV file. Rows with a missing value in any
// schema column are dropped rather than imputed.
func LoadCSV(filename string, schema Schema, opts *CSVOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: opening %s", filename)
	}
	defer file.Close()

	return LoadCSVFromReader(file, schema, opts)
}

// LoadCSVFromReader loads a table from an io.Reader.
func LoadCSVFromReader(r io.Reader, schema Schema, opts *CSVOptions) (*Table, error) {
	if len(schema) == 0 {
		return nil, errors.New("dataset: empty schema")
	}
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrap(err, "dataset: skipping rows")
		}
	}

	// Map schema columns to file positions.
	indices := make([]int, len(schema))
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, errors.Wrap(err, "dataset: reading header")
		}
		byName := make(map[string]int, len(header))
		for i, h := range header {
			byName[strings.TrimSpace(strings.Trim(h, "\""))] = i
		}
		for i, spec := range schema {
			idx, ok := byName[spec.Name]
			if !ok {
				return nil, errors.Wrapf(ErrMissingColumn, "%q not in CSV header", spec.Name)
			}
			indices[i] = idx
		}
	} else {
		// Without a header the schema order is the file order.
		for i := range schema {
			indices[i] = i
		}
	}

	na := make(map[string]struct{}, len(opts.NAValues))
	for _, v := range opts.NAValues {
		na[v] = struct{}{}
	}

	numeric := make([][]float64, len(schema))
	labels := make([][]string, len(schema))

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "dataset: reading row")
		}

		fields := make([]string, len(schema))
		missing := false
		for i, idx := range indices {
			if idx >= len(record) {
				missing = true
				break
			}
			f := strings.TrimSpace(strings.Trim(record[idx], "\""))
			if _, isNA := na[f]; isNA {
				missing = true
				break
			}
			fields[i] = f
		}
		if missing {
			continue
		}

		// Parse every field before committing the row so a bad value
		// never leaves columns with uneven lengths.
		parsed := make([]float64, len(schema))
		ok := true
		for i, spec := range schema {
			if spec.Kind != Numeric {
				continue
			}
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				ok = false
				break
			}
			parsed[i] = v
		}
		if !ok {
			continue
		}

		for i, spec := range schema {
			if spec.Kind == Numeric {
				numeric[i] = append(numeric[i], parsed[i])
			} else {
				labels[i] = append(labels[i], fields[i])
			}
		}
	}

	cols := make([]Column, len(schema))
	for i, spec := range schema {
		if spec.Kind == Numeric {
			cols[i] = NumericColumn(spec.Name, numeric[i])
		} else {
			cols[i] = CategoricalColumn(spec.Name, labels[i])
		}
	}

	table, err := New(cols...)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: no valid rows in CSV")
	}
	return table, nil
}

// SaveCSV writes a table to a CSV file, columns in declaration order.
func SaveCSV(t *Table, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "dataset: creating %s", filename)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	writer.WriteString(strings.Join(t.Columns(), ","))
	writer.WriteString("\n")

	for r := 0; r < t.Len(); r++ {
		for i, c := range t.cols {
			if i > 0 {
				writer.WriteString(",")
			}
			if c.Kind == Numeric {
				writer.WriteString(strconv.FormatFloat(c.Values[r], 'f', -1, 64))
			} else {
				writer.WriteString(c.Labels[r])
			}
		}
		writer.WriteString("\n")
	}

	return nil
}
