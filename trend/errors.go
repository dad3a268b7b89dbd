package trend

import "errors"

// ErrInvalidArgument reports a missing or out-of-range input: a non-positive
// tie tolerance, a significance level outside (0,1), an unrecognized
// alternative hypothesis, mismatched or too-short series, or a constant time
// vector (which leaves the fitted slope undefined).
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDegenerateVariance reports a tie-corrected variance of S that came out
// zero or negative where the Z-score needs its square root. This can only
// happen for pathological datasets where overlapping near-ties inflate the
// tie correction past the baseline term.
var ErrDegenerateVariance = errors.New("degenerate variance")
