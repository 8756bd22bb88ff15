package dataset

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

var airSchema = Schema{
	{Name: "pm2.5", Kind: Numeric},
	{Name: "TEMP", Kind: Numeric},
	{Name: "cbwd", Kind: Categorical},
}

func TestLoadCSVFromReader(t *testing.T) {
	csv := `No,year,pm2.5,TEMP,cbwd
1,2010,129,-4,SE
2,2010,148,-4,SE
3,2010,159,-5,cv
4,2010,181,-5,NW
`
	table, err := LoadCSVFromReader(strings.NewReader(csv), airSchema, nil)
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	pm, err := table.Numeric("pm2.5")
	require.NoError(t, err)
	require.Equal(t, []float64{129, 148, 159, 181}, pm)

	levels, err := table.Levels("cbwd")
	require.NoError(t, err)
	require.Equal(t, []string{"NW", "SE", "cv"}, levels)
}

func TestLoadCSVDropsMissingRows(t *testing.T) {
	csv := `pm2.5,TEMP,cbwd
129,-4,SE
NA,-4,SE
159,,cv
181,-5,NW
`
	table, err := LoadCSVFromReader(strings.NewReader(csv), airSchema, nil)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	pm, err := table.Numeric("pm2.5")
	require.NoError(t, err)
	require.Equal(t, []float64{129, 181}, pm)
}

func TestLoadCSVMissingSchemaColumn(t *testing.T) {
	csv := "pm2.5,TEMP\n129,-4\n"
	_, err := LoadCSVFromReader(strings.NewReader(csv), airSchema, nil)
	require.True(t, errors.Is(err, ErrMissingColumn))
}

func TestLoadCSVNoValidRows(t *testing.T) {
	csv := "pm2.5,TEMP,cbwd\nNA,NA,NA\n"
	_, err := LoadCSVFromReader(strings.NewReader(csv), airSchema, nil)
	require.Error(t, err)
}

func TestSaveAndReloadCSV(t *testing.T) {
	table, err := New(
		NumericColumn("pm2.5", []float64{12.5, 80}),
		NumericColumn("TEMP", []float64{-4, 3}),
		CategoricalColumn("cbwd", []string{"SE", "NW"}),
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "air.csv")
	require.NoError(t, SaveCSV(table, path))

	loaded, err := LoadCSV(path, airSchema, nil)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	pm, err := loaded.Numeric("pm2.5")
	require.NoError(t, err)
	require.Equal(t, []float64{12.5, 80}, pm)

	wind, err := loaded.Labels("cbwd")
	require.NoError(t, err)
	require.Equal(t, []string{"SE", "NW"}, wind)
}
