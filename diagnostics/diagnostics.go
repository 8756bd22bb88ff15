package diagnostics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goregress/regress"
)

// Pair is one (x, y) point of a diagnostic plot input.
type Pair struct {
	X float64
	Y float64
}

// Histogram holds binned residual counts. Edges has one more element than
// Counts; bin i covers [Edges[i], Edges[i+1]).
type Histogram struct {
	Edges  []float64
	Counts []int
}

// Report holds the diagnostic artifacts derived from one fitted model.
type Report struct {
	// FittedResiduals pairs each fitted value with its residual, in
	// training-row order.
	FittedResiduals []Pair
	Histogram       Histogram
	// QQ pairs theoretical normal quantiles with standardized residuals.
	QQ           []Pair
	DurbinWatson float64
}

// Diagnose derives the diagnostic artifacts from a fitted model's residual
// and fitted value sequences.
func Diagnose(m *regress.Model) *Report {
	fitted := m.FittedValues()
	residuals := m.Residuals()

	pairs := make([]Pair, len(residuals))
	for i := range residuals {
		pairs[i] = Pair{X: fitted[i], Y: residuals[i]}
	}

	return &Report{
		FittedResiduals: pairs,
		Histogram:       histogram(residuals),
		QQ:              qqPairs(residuals),
		DurbinWatson:    DurbinWatson(residuals),
	}
}

// DurbinWatson computes the Durbin-Watson statistic of a residual sequence.
func DurbinWatson(residuals []float64) float64 {
	if len(residuals) < 2 {
		return math.NaN()
	}
	num := 0.0
	den := 0.0
	for i, r := range residuals {
		den += r * r
		if i > 0 {
			d := r - residuals[i-1]
			num += d * d
		}
	}
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

// histogram bins residuals into equal-width bins, bin count by Sturges'
// rule.
func histogram(residuals []float64) Histogram {
	n := len(residuals)
	bins := int(math.Ceil(math.Log2(float64(n)))) + 1
	if bins < 1 {
		bins = 1
	}

	min := residuals[0]
	max := residuals[0]
	for _, r := range residuals[1:] {
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	if min == max {
		// Degenerate spread; a single bin holds everything.
		return Histogram{Edges: []float64{min, max}, Counts: []int{n}}
	}

	width := (max - min) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	edges[bins] = max

	counts := make([]int, bins)
	for _, r := range residuals {
		b := int((r - min) / width)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}
	return Histogram{Edges: edges, Counts: counts}
}

// qqPairs pairs the sorted standardized residuals against standard normal
// quantiles at the (i-0.5)/n plotting positions.
func qqPairs(residuals []float64) []Pair {
	n := len(residuals)

	mean := 0.0
	for _, r := range residuals {
		mean += r
	}
	mean /= float64(n)
	varSum := 0.0
	for _, r := range residuals {
		d := r - mean
		varSum += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(varSum / float64(n-1))
	}

	sorted := make([]float64, n)
	copy(sorted, residuals)
	sort.Float64s(sorted)

	normal := distuv.UnitNormal
	pairs := make([]Pair, n)
	for i, r := range sorted {
		sample := r - mean
		if std > 0 {
			sample /= std
		}
		pairs[i] = Pair{
			X: normal.Quantile((float64(i) + 0.5) / float64(n)),
			Y: sample,
		}
	}
	return pairs
}
