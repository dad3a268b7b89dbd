package trend

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// LinearFit computes the ordinary least-squares line through (t, x) as
// slope = corr(t,x) * stdev(x)/stdev(t) and intercept = mean(x) - slope*mean(t).
//
// The standard-deviation ratio cancels the degrees-of-freedom convention, so
// sample and population estimators give identical results here. A constant x
// leaves the correlation undefined and yields NaN slope and intercept.
func LinearFit(t, x []float64) (slope, intercept float64, err error) {
	if len(t) != len(x) {
		return 0, 0, fmt.Errorf("%w: t and x must have the same length (%d != %d)",
			ErrInvalidArgument, len(t), len(x))
	}
	if len(t) < 2 {
		return 0, 0, fmt.Errorf("%w: need at least 2 observations, got %d", ErrInvalidArgument, len(t))
	}

	sdT := stat.StdDev(t, nil)
	if sdT == 0 {
		return 0, 0, fmt.Errorf("%w: time values must not be constant", ErrInvalidArgument)
	}

	slope = stat.Correlation(t, x, nil) * stat.StdDev(x, nil) / sdT
	intercept = stat.Mean(x, nil) - slope*stat.Mean(t, nil)
	return slope, intercept, nil
}
