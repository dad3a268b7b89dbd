// Package gotrend provides the Mann-Kendall non-parametric test for
// monotonic trend in time series data.
//
// GoTrend determines whether a time series exhibits a statistically
// significant upward or downward tendency without assuming any particular
// distribution for the data. The test is robust to irregular time spacing
// and to missing observations, which makes it a standard tool in
// climatological, hydrological, environmental, and financial series
// analysis. Alongside the verdict the library reports an ordinary
// least-squares linear fit and the p-value of the test statistic.
//
// # Features
//
//   - Mann-Kendall trend test with one-sided and two-sided alternatives
//   - Tie handling with a configurable tolerance and tie-corrected variance
//   - Continuity-adjusted Z-score and standard-normal p-values
//   - Least-squares slope and intercept of the fitted trend line
//   - Time series container with descriptive statistics and CSV loading
//
// # Quick Start
//
// Test a series for an upward trend:
//
//	result, err := trend.MannKendall(t, x, 1e-6, 0.05, trend.Up)
//	if err != nil {
//	    // invalid arguments or degenerate variance
//	}
//	fmt.Printf("%s (Z=%.3f, p=%.4f)\n", result.Verdict, result.Z, result.PValue)
//	fmt.Printf("fit: x = %.4f*t + %.4f\n", result.Slope, result.Intercept)
//
// Or load observations from CSV and run the two-sided test:
//
//	series, _ := timeseries.LoadCSV("observations.csv", nil)
//	result, _ := trend.MannKendallSeries(series, 1e-3, 0.01, trend.UpOrDown)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - trend: the Mann-Kendall test and the linear trend fit
//   - timeseries: time series data structures and utilities
//
// # References
//
//   - Mann, H.B. (1945). Nonparametric tests against trend. Econometrica 13.
//   - Kendall, M.G. (1975). Rank Correlation Methods. Griffin, London.
//   - Gilbert, R.O. (1987). Statistical Methods for Environmental Pollution
//     Monitoring. Van Nostrand Reinhold.
package gotrend
