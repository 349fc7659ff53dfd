package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macrostat/infra/errorx"
)

const sampleCSV = `year,GDP,population,longevity,mean_taxRate
2000,100.5,30.0,79.1,33.0
2001,103.2,30.4,79.3,33.5
2002,106.9,30.8,79.5,32.8
`

func TestReadTable(t *testing.T) {
	tbl, err := Read(strings.NewReader(sampleCSV), []string{"year", "GDP"})
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"year", "GDP", "population", "longevity", "mean_taxRate"}, tbl.Names())

	gdp, err := tbl.Column("GDP")
	require.NoError(t, err)
	assert.Equal(t, []float64{100.5, 103.2, 106.9}, gdp)
}

func TestMissingRequiredColumn(t *testing.T) {
	_, err := Read(strings.NewReader(sampleCSV), []string{"year", "inflation"})
	require.Error(t, err)
	assert.True(t, errorx.Is(err, errorx.MISSING_COLUMN))
	assert.Contains(t, err.Error(), "inflation")
}

func TestUnknownColumnLookup(t *testing.T) {
	tbl, err := Read(strings.NewReader(sampleCSV), nil)
	require.NoError(t, err)
	_, err = tbl.Column("nope")
	assert.True(t, errorx.Is(err, errorx.MISSING_COLUMN))
}

func TestNonNumericCell(t *testing.T) {
	bad := "year,GDP\n2000,abc\n"
	_, err := Read(strings.NewReader(bad), nil)
	require.Error(t, err)
	assert.True(t, errorx.Is(err, errorx.INVALID_VALUE))
	assert.Contains(t, err.Error(), "GDP")
}

func TestEmptyDataset(t *testing.T) {
	_, err := Read(strings.NewReader("year,GDP\n"), nil)
	require.Error(t, err)
	assert.True(t, errorx.Is(err, errorx.EMPTY_VALUE))
}

func TestHeadAndDescribe(t *testing.T) {
	tbl, err := Read(strings.NewReader(sampleCSV), nil)
	require.NoError(t, err)

	var head bytes.Buffer
	tbl.Head(&head, 2)
	assert.Contains(t, head.String(), "year")
	assert.Contains(t, head.String(), "100.5")

	var desc bytes.Buffer
	tbl.Describe(&desc)
	assert.Contains(t, desc.String(), "mean")
	assert.Contains(t, desc.String(), "GDP")
}
