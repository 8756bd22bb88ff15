package regress

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goregress/dataset"
)

// termKind identifies the transformation a term applies.
type termKind int

const (
	identityTerm termKind = iota
	powerTerm
	interactionTerm
	indicatorTerm
)

// Term is a named, pure transformation of one or more base columns, used as
// one column of a model's design matrix. Terms are values and compare by
// Name, which is deterministic for a given construction.
// The zero Term is invalid; use the constructors below. col2 is the second
// interaction column, degree the polynomial power, level the indicator label.
type Term struct {
	kind   termKind
	col    string
	col2   string
	degree int
	level  string
}

// Identity returns the raw-column term for col. If col is categorical, the
// fitter expands it into indicator terms with the lexically first level
// dropped as the reference.
func Identity(col string) Term {
	return Term{kind: identityTerm, col: col}
}

// Power returns the polynomial term col^degree. Degree must be at least 2;
// use Identity for the linear term.
func Power(col string, degree int) Term {
	return Term{kind: powerTerm, col: col, degree: degree}
}

// Interaction returns the pairwise product term a*b of two numeric columns.
func Interaction(a, b string) Term {
	return Term{kind: interactionTerm, col: a, col2: b}
}

// Indicator returns the dummy term that is 1 where col equals level and 0
// elsewhere. Identity expansion produces these automatically; constructing
// one directly is useful for a hand-picked contrast.
func Indicator(col, level string) Term {
	return Term{kind: indicatorTerm, col: col, level: level}
}

// Name returns the display name of the term, e.g. "TEMP", "TEMP^2",
// "TEMP:DEWP", or "cbwd[NW]".
func (tm Term) Name() string {
	switch tm.kind {
	case powerTerm:
		return fmt.Sprintf("%s^%d", tm.col, tm.degree)
	case interactionTerm:
		return tm.col + ":" + tm.col2
	case indicatorTerm:
		return fmt.Sprintf("%s[%s]", tm.col, tm.level)
	default:
		return tm.col
	}
}

// Columns returns the base columns the term reads.
func (tm Term) Columns() []string {
	if tm.kind == interactionTerm {
		return []string{tm.col, tm.col2}
	}
	return []string{tm.col}
}

// eval computes the term's column of the design matrix against a table.
func (tm Term) eval(t *dataset.Table) ([]float64, error) {
	switch tm.kind {
	case identityTerm:
		return t.Numeric(tm.col)

	case powerTerm:
		if tm.degree < 2 {
			return nil, errors.Newf("regress: power term %q needs degree >= 2", tm.Name())
		}
		base, err := t.Numeric(tm.col)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(base))
		for i, v := range base {
			p := v
			for d := 1; d < tm.degree; d++ {
				p *= v
			}
			out[i] = p
		}
		return out, nil

	case interactionTerm:
		a, err := t.Numeric(tm.col)
		if err != nil {
			return nil, err
		}
		b, err := t.Numeric(tm.col2)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(a))
		for i := range a {
			out[i] = a[i] * b[i]
		}
		return out, nil

	case indicatorTerm:
		labels, err := t.Labels(tm.col)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(labels))
		for i, l := range labels {
			if l == tm.level {
				out[i] = 1
			}
		}
		return out, nil

	default:
		return nil, errors.Newf("regress: unknown term kind %d", tm.kind)
	}
}

// expandTerms resolves categorical identity terms into indicator terms
// (reference level dropped, remaining levels in lexical order) and rejects
// duplicates. The result is the concrete column set of the design matrix.
func expandTerms(t *dataset.Table, terms []Term) ([]Term, error) {
	var out []Term
	seen := make(map[string]struct{}, len(terms))

	add := func(tm Term) error {
		name := tm.Name()
		if _, dup := seen[name]; dup {
			return errors.Wrapf(ErrDuplicateTerm, "%q", name)
		}
		seen[name] = struct{}{}
		out = append(out, tm)
		return nil
	}

	for _, tm := range terms {
		if tm.kind == identityTerm {
			kind, err := t.KindOf(tm.col)
			if err != nil {
				return nil, err
			}
			if kind == dataset.Categorical {
				levels, err := t.Levels(tm.col)
				if err != nil {
					return nil, err
				}
				for _, level := range levels[1:] {
					if err := add(Indicator(tm.col, level)); err != nil {
						return nil, err
					}
				}
				continue
			}
		}
		if err := add(tm); err != nil {
			return nil, err
		}
	}
	return out, nil
}
