// Package trend provides the Mann-Kendall non-parametric test for monotonic
// trend in time series data.
//
// The null hypothesis H0 is that the series has no monotonic trend. It is
// tested against one of three alternative hypotheses Ha: an upward trend, a
// downward trend, or a trend in either direction. The test makes no
// distributional assumption about the data and tolerates irregular time
// spacing.
//
// # Running the Test
//
// Test for an upward trend at the 5% significance level, treating values
// closer than 1e-6 as tied:
//
//	result, err := trend.MannKendall(t, x, 1e-6, 0.05, trend.Up)
//	if err != nil {
//	    // trend.ErrInvalidArgument or trend.ErrDegenerateVariance
//	}
//	fmt.Printf("%s\n", result.Verdict) // "accept Ha := upward trend" or "reject ..."
//	fmt.Printf("S=%d varS=%.2f Z=%.3f p=%.4f\n",
//	    result.S, result.VarS, result.Z, result.PValue)
//
// The two-sided test splits the significance level across both tails:
//
//	result, err := trend.MannKendall(t, x, 1e-3, 0.01, trend.UpOrDown)
//
// A timeseries.Series can be tested directly:
//
//	result, err := trend.MannKendallSeries(series, 1e-6, 0.05, trend.Down)
//
// # Tie Handling
//
// Two measurements whose absolute difference is below the tie tolerance are
// statistically indistinguishable and contribute nothing to the S statistic.
// Detected tie groups shrink the variance of S by the standard correction
// term q(q-1)(2q+5) per group; the sizes are reported in Result.TieGroups.
//
// # Linear Fit
//
// The result includes the ordinary least-squares line through (t, x), also
// available standalone:
//
//	slope, intercept, err := trend.LinearFit(t, x)
//
// # Errors
//
// Validation happens before any numeric work. Out-of-range arguments,
// mismatched or too-short series, and a constant time vector wrap
// ErrInvalidArgument. A dataset whose tie correction drives the variance of
// S to zero or below where its square root is needed wraps
// ErrDegenerateVariance instead of propagating a silent division by zero.
package trend
