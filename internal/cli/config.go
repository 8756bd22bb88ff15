package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goregress/dataset"
	"github.com/sartorproj/goregress/regress"
)

// Config declares one analysis: the data file and schema, the candidate term
// universe, and the search parameters.
type Config struct {
	CSV          string     `toml:"csv"`
	Response     string     `toml:"response"`
	Predictors   []string   `toml:"predictors"`
	Categorical  []string   `toml:"categorical"`
	PolyDegree   int        `toml:"poly_degree"`  // powers 2..PolyDegree per predictor (0 = none)
	Interactions [][]string `toml:"interactions"` // column pairs
	MaxSubset    int        `toml:"max_subset"`
	Folds        int        `toml:"folds"`
	Seed         int64      `toml:"seed"`
	Level        float64    `toml:"level"`
	OutDir       string     `toml:"out_dir"`
}

// LoadConfig parses a TOML analysis config and applies defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}

	if cfg.CSV == "" {
		return nil, errors.New("config: csv path is required")
	}
	if cfg.Response == "" {
		return nil, errors.New("config: response column is required")
	}
	if len(cfg.Predictors) == 0 {
		return nil, errors.New("config: at least one predictor is required")
	}
	for _, pair := range cfg.Interactions {
		if len(pair) != 2 {
			return nil, errors.Newf("config: interaction %v must name exactly two columns", pair)
		}
	}

	if cfg.Folds == 0 {
		cfg.Folds = 10
	}
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	if cfg.Level == 0 {
		cfg.Level = 0.95
	}
	if cfg.MaxSubset == 0 {
		cfg.MaxSubset = 4
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	return &cfg, nil
}

// Schema builds the loader schema, optionally including the response.
func (c *Config) Schema(withResponse bool) dataset.Schema {
	var schema dataset.Schema
	if withResponse {
		schema = append(schema, dataset.ColumnSpec{Name: c.Response, Kind: dataset.Numeric})
	}
	for _, p := range c.Predictors {
		schema = append(schema, dataset.ColumnSpec{Name: p, Kind: dataset.Numeric})
	}
	for _, cat := range c.Categorical {
		schema = append(schema, dataset.ColumnSpec{Name: cat, Kind: dataset.Categorical})
	}
	return schema
}

// Universe builds the declared candidate term universe: one identity term
// per predictor and categorical column, polynomial powers up to PolyDegree,
// and the configured interactions, in that order.
func (c *Config) Universe() []regress.Term {
	var universe []regress.Term
	for _, p := range c.Predictors {
		universe = append(universe, regress.Identity(p))
	}
	for _, cat := range c.Categorical {
		universe = append(universe, regress.Identity(cat))
	}
	for _, p := range c.Predictors {
		for d := 2; d <= c.PolyDegree; d++ {
			universe = append(universe, regress.Power(p, d))
		}
	}
	for _, pair := range c.Interactions {
		universe = append(universe, regress.Interaction(pair[0], pair[1]))
	}
	return universe
}
