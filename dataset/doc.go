// Package dataset provides the typed observation table consumed by the modeling packages.
//
// A Table holds an ordered sequence of observations split into named columns.
// Every column is typed exactly once, at construction, as either numeric or
// categorical; the typing never changes afterward and every accessor returns
// a copy, so a Table can be shared freely across fitters and selectors.
//
// # Construction
//
// Build a table from column data:
//
//	table, err := dataset.New(
//	    dataset.NumericColumn("pm2.5", pm),
//	    dataset.NumericColumn("TEMP", temp),
//	    dataset.CategoricalColumn("cbwd", wind),
//	)
//
// Or load it from a CSV file with a declared schema:
//
//	schema := dataset.Schema{
//	    {Name: "pm2.5", Kind: dataset.Numeric},
//	    {Name: "TEMP", Kind: dataset.Numeric},
//	    {Name: "cbwd", Kind: dataset.Categorical},
//	}
//	table, err := dataset.LoadCSV("air.csv", schema, nil)
//
// Categorical levels are discovered at typing time and held in lexical
// order, which keeps indicator expansion deterministic.
//
// # Exploration
//
// Rank predictors against a response:
//
//	corrs, _ := dataset.Correlations(table, "pm2.5")
//	for _, c := range corrs {
//	    fmt.Printf("%s: r=%.3f\n", c.Column, c.R)
//	}
package dataset
