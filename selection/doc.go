// Package selection implements automated term selection for OLS models.
//
// Two search strategies are provided, both driving the regress fitter over a
// declared term universe and recording every accepted step in a Trace.
//
// # Stepwise search
//
// Stepwise adds (Forward) or removes (Backward) one term at a time, taking
// at each round the single change that most improves the AIC of the refit
// model, and stops when no change improves it:
//
//	model, trace, err := selection.Stepwise(table, "pm2.5", nil, universe, selection.Forward)
//	for _, step := range trace {
//	    fmt.Printf("%s %s (AIC %.1f)\n", step.Action, step.Term.Name(), step.Criterion)
//	}
//
// Ties between equally improving terms resolve to the term declared first in
// the universe, so a search over the same universe is fully deterministic.
//
// # Best-subset search
//
// BestSubsets exhaustively evaluates every combination of candidate terms of
// each size from 1 to maxSize and keeps the highest adjusted R-squared
// subset per size:
//
//	results, err := selection.BestSubsets(table, "pm2.5", candidates, 4)
//
// Enumeration is exact and bounded to 12 candidates (4095 fits); larger
// universes are rejected rather than silently approximated.
//
// Either search surfaces a fitter failure immediately: a candidate whose
// design is degenerate aborts the search instead of being scored as merely
// worse.
package selection
