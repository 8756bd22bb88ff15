package dataset

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/montanaflynn/stats"
)

// ColumnSummary holds descriptive statistics for one numeric column.
type ColumnSummary struct {
	Column string
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
}

// Summary computes descriptive statistics for every numeric column.
func Summary(t *Table) ([]ColumnSummary, error) {
	var out []ColumnSummary
	for _, c := range t.cols {
		if c.Kind != Numeric {
			continue
		}
		mean, err := stats.Mean(c.Values)
		if err != nil {
			return nil, errors.Wrapf(err, "dataset: summarizing %q", c.Name)
		}
		std, err := stats.StandardDeviationSample(c.Values)
		if err != nil {
			return nil, errors.Wrapf(err, "dataset: summarizing %q", c.Name)
		}
		min, err := stats.Min(c.Values)
		if err != nil {
			return nil, errors.Wrapf(err, "dataset: summarizing %q", c.Name)
		}
		max, err := stats.Max(c.Values)
		if err != nil {
			return nil, errors.Wrapf(err, "dataset: summarizing %q", c.Name)
		}
		out = append(out, ColumnSummary{Column: c.Name, Mean: mean, Std: std, Min: min, Max: max})
	}
	return out, nil
}

// Correlation holds the Pearson correlation of one column with a response.
type Correlation struct {
	Column string
	R      float64
}

// Correlations computes the Pearson correlation of every numeric column
// (other than the response itself) against the response, sorted descending
// by absolute correlation. Ties keep declaration order. This ranking seeds
// the candidate term universe for model search.
func Correlations(t *Table, response string) ([]Correlation, error) {
	y, err := t.Numeric(response)
	if err != nil {
		return nil, err
	}

	var out []Correlation
	for _, c := range t.cols {
		if c.Kind != Numeric || c.Name == response {
			continue
		}
		r, err := stats.Pearson(c.Values, y)
		if err != nil {
			return nil, errors.Wrapf(err, "dataset: correlating %q with %q", c.Name, response)
		}
		out = append(out, Correlation{Column: c.Name, R: r})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].R) > math.Abs(out[j].R)
	})
	return out, nil
}
