package dataset

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// ErrMissingColumn is returned when a requested column does not exist in a
// table or has the wrong kind for the requested access.
var ErrMissingColumn = errors.New("dataset: missing column")

// Kind identifies how a column is typed.
type Kind int

const (
	// Numeric columns hold float64 values.
	Numeric Kind = iota
	// Categorical columns hold string labels drawn from a fixed level set.
	Categorical
)

// Column holds one typed column of observations.
type Column struct {
	Name   string
	Kind   Kind
	Values []float64 // populated for Numeric columns
	Labels []string  // populated for Categorical columns
	Levels []string  // distinct labels in lexical order (Categorical only)
}

// NumericColumn builds a numeric column from values.
func NumericColumn(name string, values []float64) Column {
	return Column{Name: name, Kind: Numeric, Values: values}
}

// CategoricalColumn builds a categorical column from labels. The level set
// is derived during table construction.
func CategoricalColumn(name string, labels []string) Column {
	return Column{Name: name, Kind: Categorical, Labels: labels}
}

// Table is an immutable, schema-typed table of observations. All rows share
// the same column set and columns keep the kind they were constructed with.
type Table struct {
	cols   []Column
	byName map[string]int
	n      int
}

// New creates a table from columns. All columns must be non-empty, have the
// same length, and carry distinct names. Categorical level sets are computed
// here, in lexical order.
func New(cols ...Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, errors.New("dataset: table requires at least one column")
	}

	n := colLen(cols[0])
	if n == 0 {
		return nil, errors.New("dataset: table requires at least one row")
	}

	t := &Table{
		cols:   make([]Column, len(cols)),
		byName: make(map[string]int, len(cols)),
		n:      n,
	}

	for i, c := range cols {
		if c.Name == "" {
			return nil, errors.New("dataset: column has empty name")
		}
		if _, dup := t.byName[c.Name]; dup {
			return nil, errors.Newf("dataset: duplicate column %q", c.Name)
		}
		if colLen(c) != n {
			return nil, errors.Newf("dataset: column %q has %d rows, want %d", c.Name, colLen(c), n)
		}

		stored := Column{Name: c.Name, Kind: c.Kind}
		switch c.Kind {
		case Numeric:
			stored.Values = append([]float64(nil), c.Values...)
		case Categorical:
			stored.Labels = append([]string(nil), c.Labels...)
			stored.Levels = levelsOf(c.Labels)
		default:
			return nil, errors.Newf("dataset: column %q has unknown kind %d", c.Name, c.Kind)
		}

		t.cols[i] = stored
		t.byName[c.Name] = i
	}

	return t, nil
}

func colLen(c Column) int {
	if c.Kind == Categorical {
		return len(c.Labels)
	}
	return len(c.Values)
}

// levelsOf returns the distinct labels in lexical order.
func levelsOf(labels []string) []string {
	seen := make(map[string]struct{}, 8)
	var levels []string
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			levels = append(levels, l)
		}
	}
	sort.Strings(levels)
	return levels
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.n
}

// Columns returns the column names in declaration order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// KindOf returns the kind of the named column.
func (t *Table) KindOf(name string) (Kind, error) {
	i, ok := t.byName[name]
	if !ok {
		return 0, errors.Wrapf(ErrMissingColumn, "%q", name)
	}
	return t.cols[i].Kind, nil
}

// Numeric returns a copy of the named numeric column's values.
func (t *Table) Numeric(name string) ([]float64, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrMissingColumn, "%q", name)
	}
	if t.cols[i].Kind != Numeric {
		return nil, errors.Wrapf(ErrMissingColumn, "%q is categorical, want numeric", name)
	}
	return append([]float64(nil), t.cols[i].Values...), nil
}

// Labels returns a copy of the named categorical column's labels.
func (t *Table) Labels(name string) ([]string, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrMissingColumn, "%q", name)
	}
	if t.cols[i].Kind != Categorical {
		return nil, errors.Wrapf(ErrMissingColumn, "%q is numeric, want categorical", name)
	}
	return append([]string(nil), t.cols[i].Labels...), nil
}

// Levels returns the lexically ordered level set of a categorical column.
func (t *Table) Levels(name string) ([]string, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrMissingColumn, "%q", name)
	}
	if t.cols[i].Kind != Categorical {
		return nil, errors.Wrapf(ErrMissingColumn, "%q is numeric, want categorical", name)
	}
	return append([]string(nil), t.cols[i].Levels...), nil
}

// Select returns a new table holding the given rows, in the given order.
// The full column set is carried over; categorical level sets are preserved
// from the parent so indicator expansion stays stable across subsets.
func (t *Table) Select(rows []int) (*Table, error) {
	if len(rows) == 0 {
		return nil, errors.New("dataset: select requires at least one row")
	}
	for _, r := range rows {
		if r < 0 || r >= t.n {
			return nil, errors.Newf("dataset: row index %d out of range [0,%d)", r, t.n)
		}
	}

	sub := &Table{
		cols:   make([]Column, len(t.cols)),
		byName: make(map[string]int, len(t.cols)),
		n:      len(rows),
	}
	for i, c := range t.cols {
		sc := Column{Name: c.Name, Kind: c.Kind}
		switch c.Kind {
		case Numeric:
			sc.Values = make([]float64, len(rows))
			for j, r := range rows {
				sc.Values[j] = c.Values[r]
			}
		case Categorical:
			sc.Labels = make([]string, len(rows))
			for j, r := range rows {
				sc.Labels[j] = c.Labels[r]
			}
			sc.Levels = append([]string(nil), c.Levels...)
		}
		sub.cols[i] = sc
		sub.byName[c.Name] = i
	}
	return sub, nil
}
