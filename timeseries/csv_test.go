package timeseries

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVFromReader(t *testing.T) {
	data := `t,x
0,1.5
1,2.25
2,NA
3,3.75
`
	s, err := LoadCSVFromReader(strings.NewReader(data), nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 3}, s.Times)
	assert.Equal(t, []float64{1.5, 2.25, 3.75}, s.Values)
}

func TestLoadCSVFromReaderCustomColumns(t *testing.T) {
	data := `year,station,level
1990,A,10.2
1991,A,10.4
1992,A,10.1
`
	opts := DefaultCSVOptions()
	opts.TimeColumn = "year"
	opts.ValueColumn = "level"

	s, err := LoadCSVFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)

	assert.Equal(t, []float64{1990, 1991, 1992}, s.Times)
	assert.Equal(t, []float64{10.2, 10.4, 10.1}, s.Values)
}

func TestLoadCSVFromReaderNoTimeColumn(t *testing.T) {
	data := `x
5.0
6.0
7.0
`
	s, err := LoadCSVFromReader(strings.NewReader(data), nil)
	require.NoError(t, err)

	// Falls back to row-index time coordinates.
	assert.Equal(t, []float64{0, 1, 2}, s.Times)
	assert.Equal(t, []float64{5, 6, 7}, s.Values)
}

func TestLoadCSVFromReaderNoData(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader("t,x\n"), nil)
	assert.Error(t, err)
}

func TestSaveAndLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")

	s, err := NewWithTimes([]float64{0, 2.5, 5}, []float64{1.25, -3, 4})
	require.NoError(t, err)
	require.NoError(t, SaveCSV(s, path))

	loaded, err := LoadCSV(path, nil)
	require.NoError(t, err)
	assert.Equal(t, s.Times, loaded.Times)
	assert.Equal(t, s.Values, loaded.Values)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "t,x\n"))
}
