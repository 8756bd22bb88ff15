package selection

import (
	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goregress/dataset"
	"github.com/sartorproj/goregress/regress"
)

// Direction selects the stepwise search direction.
type Direction int

const (
	// Forward starts from the initial set and adds terms from the universe.
	Forward Direction = iota
	// Backward starts from the initial set and removes terms.
	Backward
)

// Action describes one accepted step of a search.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

// Step records one accepted change and the criterion value after it.
type Step struct {
	Action    Action
	Term      regress.Term
	Criterion float64 // AIC of the model after applying the step
}

// Trace is the ordered sequence of accepted steps of one search.
type Trace []Step

// Stepwise performs forward or backward stepwise selection driven by AIC.
//
// Forward: starting from initial (usually empty), each round refits the
// model once per universe term not yet included and adds the term whose
// inclusion lowers AIC the most; the search stops when no addition improves
// the criterion. Backward is the mirror: each round removes the term whose
// removal lowers AIC the most, stopping when no removal improves it or the
// set is empty.
//
// When several terms tie on the best criterion the one declared first in the
// universe wins. Backward from an empty initial set returns the
// intercept-only fit with an empty trace.
//
// Any fitter error aborts the search immediately.
func Stepwise(t *dataset.Table, response string, initial, universe []regress.Term, dir Direction) (*regress.Model, Trace, error) {
	current := orderByUniverse(initial, universe)

	model, err := regress.Fit(t, response, current)
	if err != nil {
		return nil, nil, err
	}
	best := model.AIC
	trace := Trace{}

	for {
		var candidates []regress.Term
		if dir == Forward {
			candidates = remaining(current, universe)
		} else {
			if len(current) == 0 {
				break
			}
			candidates = current
		}
		if len(candidates) == 0 {
			break
		}

		improved := false
		var bestTerm regress.Term
		var bestModel *regress.Model

		for _, tm := range candidates {
			var trial []regress.Term
			if dir == Forward {
				trial = append(append([]regress.Term(nil), current...), tm)
				trial = orderByUniverse(trial, universe)
			} else {
				trial = without(current, tm)
			}

			m, err := regress.Fit(t, response, trial)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "selection: evaluating %q", tm.Name())
			}
			// Strict improvement only; the first candidate in universe
			// order keeps a tied best.
			if m.AIC < best {
				best = m.AIC
				bestTerm = tm
				bestModel = m
				improved = true
			}
		}

		if !improved {
			break
		}

		if dir == Forward {
			current = orderByUniverse(append(current, bestTerm), universe)
			trace = append(trace, Step{Action: ActionAdd, Term: bestTerm, Criterion: best})
		} else {
			current = without(current, bestTerm)
			trace = append(trace, Step{Action: ActionRemove, Term: bestTerm, Criterion: best})
		}
		model = bestModel
	}

	return model, trace, nil
}

// orderByUniverse returns the terms sorted into the universe's declared
// order. Terms not present in the universe keep their relative order at the
// end, so a caller-supplied initial set outside the universe still works.
func orderByUniverse(terms, universe []regress.Term) []regress.Term {
	rank := make(map[string]int, len(universe))
	for i, tm := range universe {
		rank[tm.Name()] = i
	}

	out := make([]regress.Term, 0, len(terms))
	for _, u := range universe {
		for _, tm := range terms {
			if tm.Name() == u.Name() {
				out = append(out, tm)
				break
			}
		}
	}
	for _, tm := range terms {
		if _, ok := rank[tm.Name()]; !ok {
			out = append(out, tm)
		}
	}
	return out
}

// remaining returns the universe terms not yet in current, in universe order.
func remaining(current, universe []regress.Term) []regress.Term {
	in := make(map[string]struct{}, len(current))
	for _, tm := range current {
		in[tm.Name()] = struct{}{}
	}
	var out []regress.Term
	for _, tm := range universe {
		if _, ok := in[tm.Name()]; !ok {
			out = append(out, tm)
		}
	}
	return out
}

// without returns terms minus the named term.
func without(terms []regress.Term, drop regress.Term) []regress.Term {
	out := make([]regress.Term, 0, len(terms)-1)
	for _, tm := range terms {
		if tm.Name() != drop.Name() {
			out = append(out, tm)
		}
	}
	return out
}
