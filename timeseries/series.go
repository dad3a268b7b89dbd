// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Series represents a time series of measurements taken at real-valued
// time coordinates. Time points need not be evenly spaced.
type Series struct {
	Times  []float64
	Values []float64
	Name   string
}

// New creates a series with unit-spaced time coordinates 0, 1, ..., n-1.
func New(values []float64) *Series {
	times := make([]float64, len(values))
	for i := range times {
		times[i] = float64(i)
	}
	return &Series{
		Times:  times,
		Values: values,
	}
}

// NewWithTimes creates a series with explicit time coordinates.
func NewWithTimes(times, values []float64) (*Series, error) {
	if len(times) != len(values) {
		return nil, errors.New("times and values must have the same length")
	}
	return &Series{
		Times:  times,
		Values: values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series values.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance calculates the sample variance of the series values.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// Std calculates the sample standard deviation of the series values.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	v, err := stats.Min(s.Values)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	v, err := stats.Max(s.Values)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	v, err := stats.Median(s.Values)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Quartiles returns the first, second, and third quartile of the values.
func (s *Series) Quartiles() (q1, q2, q3 float64) {
	q, err := stats.Quartile(s.Values)
	if err != nil {
		return math.NaN(), math.NaN(), math.NaN()
	}
	return q.Q1, q.Q2, q.Q3
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{}
	}

	times := make([]float64, end-start)
	values := make([]float64, end-start)
	copy(times, s.Times[start:end])
	copy(values, s.Values[start:end])

	return &Series{
		Times:  times,
		Values: values,
		Name:   s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	times := make([]float64, len(s.Times))
	values := make([]float64, len(s.Values))
	copy(times, s.Times)
	copy(values, s.Values)

	return &Series{
		Times:  times,
		Values: values,
		Name:   s.Name,
	}
}

// Detrend removes the line slope*t + intercept from the series, returning
// the residuals. Pairs with the slope and intercept reported by the trend
// package.
func (s *Series) Detrend(slope, intercept float64) *Series {
	times := make([]float64, len(s.Times))
	copy(times, s.Times)

	values := make([]float64, len(s.Values))
	for i, v := range s.Values {
		values[i] = v - (slope*s.Times[i] + intercept)
	}

	return &Series{
		Times:  times,
		Values: values,
		Name:   s.Name + "_detrended",
	}
}
