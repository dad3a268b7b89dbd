// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing measurements taken
// at real-valued time coordinates, along with functions for data loading and
// descriptive statistics. Time points need not be evenly spaced, which suits
// the trend package's Mann-Kendall test.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values) // unit-spaced times 0..n-1
//
// Or with explicit time coordinates:
//
//	series, err := timeseries.NewWithTimes(times, values)
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	series, err := timeseries.LoadCSV("data.csv", nil)
//
//	// Customize column names
//	opts := &timeseries.CSVOptions{
//	    TimeColumn:  "year",
//	    ValueColumn: "level",
//	    HasHeader:   true,
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//	median := series.Median()
//	q1, q2, q3 := series.Quartiles()
//
// # Slicing and Manipulation
//
// Work with subsets of the data:
//
//	subset := series.Slice(10, 50)
//	copied := series.Copy()
//
//	// Remove a fitted trend line
//	residuals := series.Detrend(slope, intercept)
package timeseries
