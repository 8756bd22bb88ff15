package crossval

import (
	"math"
	"math/rand"

	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goregress/dataset"
	"github.com/sartorproj/goregress/regress"
)

// ErrInvalidFoldCount is returned when k is below 2 or above the row count.
var ErrInvalidFoldCount = errors.New("crossval: fold count must satisfy 2 <= k <= rows")

// Result holds the per-fold and aggregate out-of-sample scores of one run.
type Result struct {
	FoldRMSE []float64 // indexed by fold
	Mean     float64
	Std      float64   // sample standard deviation across folds
}

// KFold partitions the indices 0..n-1 into k folds whose sizes differ by at
// most one. The partition is derived from a shuffle seeded with seed, so the
// same (n, k, seed) always produces identical folds.
func KFold(n, k int, seed int64) ([][]int, error) {
	if k < 2 || k > n {
		return nil, errors.Wrapf(ErrInvalidFoldCount, "k=%d, rows=%d", k, n)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)

	folds := make([][]int, k)
	base := n / k
	extra := n % k
	start := 0
	for f := 0; f < k; f++ {
		size := base
		if f < extra {
			size++
		}
		folds[f] = perm[start : start+size]
		start += size
	}
	return folds, nil
}

// Run cross-validates the model defined by response and terms over k folds.
// Each fold is scored by the root mean squared error of its held-out rows;
// the fold scores are combined by fold index, never by completion order, so
// a future parallel driver cannot change the result.
func Run(t *dataset.Table, response string, terms []regress.Term, k int, seed int64) (*Result, error) {
	folds, err := KFold(t.Len(), k, seed)
	if err != nil {
		return nil, err
	}

	result := &Result{FoldRMSE: make([]float64, k)}

	for f, holdout := range folds {
		train := make([]int, 0, t.Len()-len(holdout))
		for g, fold := range folds {
			if g != f {
				train = append(train, fold...)
			}
		}

		trainTable, err := t.Select(train)
		if err != nil {
			return nil, err
		}
		testTable, err := t.Select(holdout)
		if err != nil {
			return nil, err
		}

		model, err := regress.Fit(trainTable, response, terms)
		if err != nil {
			return nil, errors.Wrapf(err, "crossval: fold %d", f)
		}

		preds, err := model.PointPredictions(testTable)
		if err != nil {
			return nil, errors.Wrapf(err, "crossval: fold %d", f)
		}
		actual, err := testTable.Numeric(response)
		if err != nil {
			return nil, err
		}

		sse := 0.0
		for i := range preds {
			d := actual[i] - preds[i]
			sse += d * d
		}
		result.FoldRMSE[f] = math.Sqrt(sse / float64(len(preds)))
	}

	sum := 0.0
	for _, v := range result.FoldRMSE {
		sum += v
	}
	result.Mean = sum / float64(k)

	varSum := 0.0
	for _, v := range result.FoldRMSE {
		d := v - result.Mean
		varSum += d * d
	}
	if k > 1 {
		result.Std = math.Sqrt(varSum / float64(k-1))
	}
	return result, nil
}
