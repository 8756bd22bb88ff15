package regress

import "github.com/cockroachdb/errors"

var (
	// ErrDegenerateDesign is returned when the design matrix is rank
	// deficient or the row count is smaller than the parameter count.
	ErrDegenerateDesign = errors.New("regress: degenerate design")

	// ErrDuplicateTerm is returned when a term set contains the same term
	// twice after categorical expansion.
	ErrDuplicateTerm = errors.New("regress: duplicate term")

	// ErrInvalidConfidenceLevel is returned when a confidence level is
	// outside the open interval (0, 1).
	ErrInvalidConfidenceLevel = errors.New("regress: confidence level must be in (0, 1)")
)
