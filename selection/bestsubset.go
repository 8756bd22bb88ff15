package selection

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goregress/dataset"
	"github.com/sartorproj/goregress/regress"
)

// maxExactCandidates bounds exhaustive enumeration; 12 candidates mean 4095
// fits, which stays fast for the table sizes this package targets.
const maxExactCandidates = 12

// ErrTooManyCandidates is returned when the candidate count exceeds the
// exact enumeration bound.
var ErrTooManyCandidates = errors.Newf("selection: more than %d candidates; exhaustive search refused", maxExactCandidates)

// SubsetResult holds the winning subset of one size and its criterion.
type SubsetResult struct {
	Terms []regress.Term
	AdjR2 float64
}

// BestSubsets evaluates every combination of candidate terms of each size
// from 1 to maxSize, fits each, and keeps the subset with the highest
// adjusted R-squared per size. Results are sorted descending by adjusted
// R-squared. Enumeration order is lexicographic over candidate positions, so
// ties resolve to the earliest-declared subset.
func BestSubsets(t *dataset.Table, response string, candidates []regress.Term, maxSize int) ([]SubsetResult, error) {
	if len(candidates) == 0 {
		return nil, errors.New("selection: no candidate terms")
	}
	if len(candidates) > maxExactCandidates {
		return nil, ErrTooManyCandidates
	}
	if maxSize < 1 || maxSize > len(candidates) {
		maxSize = len(candidates)
	}

	results := make([]SubsetResult, 0, maxSize)

	for size := 1; size <= maxSize; size++ {
		var best *SubsetResult

		err := combinations(len(candidates), size, func(idx []int) error {
			terms := make([]regress.Term, size)
			for i, j := range idx {
				terms[i] = candidates[j]
			}
			m, err := regress.Fit(t, response, terms)
			if err != nil {
				return err
			}
			if best == nil || m.AdjR2 > best.AdjR2 {
				best = &SubsetResult{Terms: terms, AdjR2: m.AdjR2}
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "selection: subsets of size %d", size)
		}
		results = append(results, *best)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AdjR2 > results[j].AdjR2
	})
	return results, nil
}

// combinations visits every size-k index combination of 0..n-1 in
// lexicographic order.
func combinations(n, k int, visit func(idx []int) error) error {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if err := visit(idx); err != nil {
			return err
		}

		// Advance to the next combination.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
