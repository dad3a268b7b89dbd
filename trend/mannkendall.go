// Package trend implements the Mann-Kendall non-parametric test for
// monotonic trend in time series data.
package trend

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gotrend/timeseries"
)

// Alternative selects the alternative hypothesis tested against the null
// hypothesis of no monotonic trend.
type Alternative string

const (
	// Up tests for an upward monotonic trend.
	Up Alternative = "up"
	// Down tests for a downward monotonic trend.
	Down Alternative = "down"
	// UpOrDown is the two-sided test for a trend in either direction.
	UpOrDown Alternative = "up-or-down"
)

// region tags the position of S relative to the tolerance band around zero.
// The three cases are exhaustive and mutually exclusive.
type region int

const (
	regionPositive region = iota
	regionZeroBand
	regionNegative
)

// Result holds the outcome of a Mann-Kendall trend test.
type Result struct {
	Verdict     string      // Human-readable decision, e.g. "accept Ha := upward trend"
	Accepted    bool        // Whether the alternative hypothesis was accepted
	Alternative Alternative // The alternative hypothesis that was tested
	S           int         // Mann-Kendall S statistic
	VarS        float64     // Tie-corrected variance of S
	Z           float64     // Continuity-adjusted Z-score
	CriticalZ   float64     // Critical value at the requested significance level
	Slope       float64     // Least-squares slope of the trend line
	Intercept   float64     // Least-squares intercept of the trend line
	PValue      float64     // p-value of the Z-score under the alternative
	TieGroups   []int       // Sizes of the detected tie groups
}

// MannKendall runs the Mann-Kendall test for monotonic trend on the paired
// series (t, x). Two values of x whose absolute difference is below
// tieTolerance are treated as tied. alpha is the significance level (Type I
// error rate) of the test.
//
// The inputs are not modified. The returned result carries the verdict, the
// least-squares linear fit through (t, x), and the p-value of the test
// statistic. If every value of x is tied the slope and intercept are NaN
// (the correlation underlying the fit is undefined); Z and the p-value are
// still reported.
func MannKendall(t, x []float64, tieTolerance, alpha float64, alternative Alternative) (*Result, error) {
	if err := validate(t, x, tieTolerance, alpha, alternative); err != nil {
		return nil, err
	}

	n := len(x)

	// Pairwise scan over the strict upper triangle. Pairs within the tie
	// tolerance contribute zero to S; both members are remembered for the
	// tie-group correction below.
	s := 0
	tied := make([]bool, n)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			diff := x[j] - x[i]
			switch {
			case math.Abs(diff) < tieTolerance:
				tied[i] = true
				tied[j] = true
			case diff > 0:
				s++
			default:
				s--
			}
		}
	}

	// Tie groups: each distinct tied value anchors a group of all values
	// within tolerance of it. Overlapping anchors are counted separately.
	varS, groups := tieCorrectedVariance(x, tied, tieTolerance, n)

	reg := classify(float64(s), tieTolerance)

	var z float64
	switch reg {
	case regionPositive:
		if varS <= 0 {
			return nil, fmt.Errorf("%w: varS = %g for S = %d", ErrDegenerateVariance, varS, s)
		}
		z = (float64(s) - 1) / math.Sqrt(varS)
	case regionNegative:
		if varS <= 0 {
			return nil, fmt.Errorf("%w: varS = %g for S = %d", ErrDegenerateVariance, varS, s)
		}
		z = (float64(s) + 1) / math.Sqrt(varS)
	case regionZeroBand:
		z = 0
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1}

	var (
		criticalZ float64
		accepted  bool
		label     string
	)
	switch alternative {
	case Up:
		criticalZ = normal.Quantile(1 - alpha)
		accepted = z >= criticalZ
		label = "upward trend"
	case Down:
		criticalZ = normal.Quantile(1 - alpha)
		accepted = z <= -criticalZ
		label = "downward trend"
	case UpOrDown:
		criticalZ = normal.Quantile(1 - alpha/2)
		accepted = math.Abs(z) >= criticalZ
		label = "upward OR downward trend"
	}

	verdict := "reject Ha := " + label
	if accepted {
		verdict = "accept Ha := " + label
	}

	slope, intercept, err := LinearFit(t, x)
	if err != nil {
		return nil, err
	}

	p := pValue(normal, z, reg, alternative)

	return &Result{
		Verdict:     verdict,
		Accepted:    accepted,
		Alternative: alternative,
		S:           s,
		VarS:        varS,
		Z:           z,
		CriticalZ:   criticalZ,
		Slope:       slope,
		Intercept:   intercept,
		PValue:      p,
		TieGroups:   groups,
	}, nil
}

// MannKendallSeries runs the Mann-Kendall test on a timeseries.Series.
func MannKendallSeries(s *timeseries.Series, tieTolerance, alpha float64, alternative Alternative) (*Result, error) {
	return MannKendall(s.Times, s.Values, tieTolerance, alpha, alternative)
}

// validate checks every argument before any numeric work happens.
func validate(t, x []float64, tieTolerance, alpha float64, alternative Alternative) error {
	if !(tieTolerance > 0) {
		return fmt.Errorf("%w: tie tolerance must be > 0, got %g", ErrInvalidArgument, tieTolerance)
	}
	if !(alpha > 0 && alpha < 1) {
		return fmt.Errorf("%w: alpha must be in (0,1), got %g", ErrInvalidArgument, alpha)
	}
	switch alternative {
	case Up, Down, UpOrDown:
	default:
		return fmt.Errorf("%w: alternative must be %q, %q, or %q, got %q",
			ErrInvalidArgument, Up, Down, UpOrDown, alternative)
	}
	if len(t) != len(x) {
		return fmt.Errorf("%w: t and x must have the same length (%d != %d)",
			ErrInvalidArgument, len(t), len(x))
	}
	if len(x) < 2 {
		return fmt.Errorf("%w: need at least 2 observations, got %d", ErrInvalidArgument, len(x))
	}
	constant := true
	for _, tv := range t[1:] {
		if tv != t[0] {
			constant = false
			break
		}
	}
	if constant {
		return fmt.Errorf("%w: time values must not be constant", ErrInvalidArgument)
	}
	return nil
}

// tieCorrectedVariance computes varS = [n(n-1)(2n+5) - Σ q(q-1)(2q+5)] / 18
// over the detected tie groups, returning the variance and the group sizes.
func tieCorrectedVariance(x []float64, tied []bool, tieTolerance float64, n int) (float64, []int) {
	seen := make(map[float64]struct{})
	var groups []int
	correction := 0

	for i, isTied := range tied {
		if !isTied {
			continue
		}
		anchor := x[i]
		if _, ok := seen[anchor]; ok {
			continue
		}
		seen[anchor] = struct{}{}

		q := 0
		for _, v := range x {
			if math.Abs(v-anchor) < tieTolerance {
				q++
			}
		}
		groups = append(groups, q)
		correction += q * (q - 1) * (2*q + 5)
	}

	varS := float64(n*(n-1)*(2*n+5)-correction) / 18.0
	return varS, groups
}

// classify places S in one of the three tolerance-band regions.
func classify(s, tieTolerance float64) region {
	switch {
	case s-tieTolerance > 0:
		return regionPositive
	case s+tieTolerance < 0:
		return regionNegative
	default:
		return regionZeroBand
	}
}

// pValue computes the tail probability of z under the chosen alternative.
// Note the two-sided negative branch uses 0.5*Phi(Z) where the positive
// branch uses 0.5*(1-Phi(Z)); since Z flips sign with the trend the two
// agree on mirrored data, and both branches are pinned by tests.
func pValue(normal distuv.Normal, z float64, reg region, alternative Alternative) float64 {
	switch reg {
	case regionPositive:
		switch alternative {
		case Up:
			return 1 - normal.CDF(z)
		case Down:
			return normal.CDF(z)
		default:
			return 0.5 * (1 - normal.CDF(z))
		}
	case regionNegative:
		switch alternative {
		case Up:
			return 1 - normal.CDF(z)
		case Down:
			return normal.CDF(z)
		default:
			return 0.5 * normal.CDF(z)
		}
	default:
		return 0.5
	}
}
