package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})

	require.Equal(t, 5, s.Len())
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, s.Times)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, s.Values)
}

func TestNewWithTimes(t *testing.T) {
	s, err := NewWithTimes([]float64{0, 0.5, 3}, []float64{10, 11, 9})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	_, err = NewWithTimes([]float64{0, 1}, []float64{10})
	assert.Error(t, err)
}

func TestDescriptiveStats(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	assert.InDelta(t, 5.0, s.Mean(), 1e-10)
	assert.InDelta(t, 4.571428571, s.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(4.571428571), s.Std(), 1e-9)
	assert.Equal(t, 2.0, s.Min())
	assert.Equal(t, 9.0, s.Max())
	assert.InDelta(t, 4.5, s.Median(), 1e-10)
}

func TestDescriptiveStatsEmpty(t *testing.T) {
	s := New(nil)

	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Variance())
	assert.True(t, math.IsNaN(s.Min()))
	assert.True(t, math.IsNaN(s.Max()))
	assert.True(t, math.IsNaN(s.Median()))
}

func TestQuartiles(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5, 6, 7, 8})

	q1, q2, q3 := s.Quartiles()
	assert.InDelta(t, 2.5, q1, 1e-10)
	assert.InDelta(t, 4.5, q2, 1e-10)
	assert.InDelta(t, 6.5, q3, 1e-10)
}

func TestSlice(t *testing.T) {
	s, err := NewWithTimes([]float64{0, 10, 20, 30, 40}, []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	sub := s.Slice(1, 3)
	assert.Equal(t, []float64{10, 20}, sub.Times)
	assert.Equal(t, []float64{2, 3}, sub.Values)

	// Bounds are clamped
	all := s.Slice(-5, 100)
	assert.Equal(t, 5, all.Len())

	empty := s.Slice(3, 3)
	assert.Equal(t, 0, empty.Len())
}

func TestCopyIsIndependent(t *testing.T) {
	s := New([]float64{1, 2, 3})
	c := s.Copy()

	c.Values[0] = 99
	c.Times[0] = 99
	assert.Equal(t, 1.0, s.Values[0])
	assert.Equal(t, 0.0, s.Times[0])
}

func TestDetrend(t *testing.T) {
	// x = 2t + 1 exactly: detrending with the true line leaves zeros.
	times := []float64{0, 1, 2, 3}
	values := []float64{1, 3, 5, 7}
	s, err := NewWithTimes(times, values)
	require.NoError(t, err)

	d := s.Detrend(2, 1)
	for i, v := range d.Values {
		assert.InDelta(t, 0.0, v, 1e-12, "index %d", i)
	}
	assert.Equal(t, times, d.Times)

	// Original series untouched
	assert.Equal(t, []float64{1, 3, 5, 7}, s.Values)
}
