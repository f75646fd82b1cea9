// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package significance

import (
	"fmt"
	"math"
)

// MinSampleSize is the smallest per-period total the chi-square test will
// accept. Below this the test returns a nil result ("cannot assess"), never
// "not significant".
const MinSampleSize = 10

// DefaultConfidenceLevel is used when a caller passes a level outside the
// supported set {0.90, 0.95, 0.99}.
const DefaultConfidenceLevel = 0.95

// Strength buckets a p-value into a coarse recommendation label.
type Strength string

const (
	// StrengthStrong means p < 0.01.
	StrengthStrong Strength = "strong"

	// StrengthModerate means p < 0.05.
	StrengthModerate Strength = "moderate"

	// StrengthWeak means p < 0.10.
	StrengthWeak Strength = "weak"

	// StrengthInsufficient means the change is indistinguishable from noise.
	StrengthInsufficient Strength = "insufficient-data"
)

// Result is the outcome of a period-over-period significance test. It is
// derived data, recomputed on demand and never persisted by this core.
type Result struct {
	// ChiSquare is the test statistic over the 2x2 contingency table.
	ChiSquare float64 `json:"chi_square"`

	// PValue is the two-tailed p-value in [0,1].
	PValue float64 `json:"p_value"`

	// IsSignificant is true when ChiSquare exceeds the critical value for
	// the requested confidence level at df=1.
	IsSignificant bool `json:"is_significant"`

	// ConfidenceLevel is the level actually used (0.90, 0.95 or 0.99).
	ConfidenceLevel float64 `json:"confidence_level"`

	// TestType names the test that produced this result.
	TestType string `json:"test_type"`

	// DegreesOfFreedom is fixed at 1 for the 2x2 table.
	DegreesOfFreedom int `json:"degrees_of_freedom"`

	// SignificanceScore is max(0, 1 - PValue); higher means more confidently
	// a real change.
	SignificanceScore float64 `json:"significance_score"`

	// Strength buckets PValue for presentation.
	Strength Strength `json:"strength"`
}

// Interval is a confidence interval for a rate, expressed in percent.
type Interval struct {
	// Lower is the lower bound, in percent.
	Lower float64 `json:"lower"`

	// Upper is the upper bound, in percent.
	Upper float64 `json:"upper"`

	// Mean is the observed point estimate, in percent.
	Mean float64 `json:"mean"`

	// ConfidenceLevel is the level the interval was built at.
	ConfidenceLevel float64 `json:"confidence_level"`
}

// criticalValues holds chi-square critical values for df=1.
var criticalValues = map[float64]float64{
	0.90: 2.706,
	0.95: 3.841,
	0.99: 6.635,
}

// zScores holds standard normal z-scores per confidence level.
var zScores = map[float64]float64{
	0.90: 1.645,
	0.95: 1.96,
	0.99: 2.576,
}

// normalizeLevel maps unsupported confidence levels to the default.
func normalizeLevel(level float64) float64 {
	if _, ok := criticalValues[level]; !ok {
		return DefaultConfidenceLevel
	}
	return level
}

// TestPeriodChange runs a chi-square test of independence on the change in a
// topic's frequency between two periods. currentCount and previousCount are
// the occurrences observed in each period; currentTotal and previousTotal are
// the period sample sizes.
//
// A nil result with a nil error means the samples are too small to assess
// (either total below MinSampleSize). Callers must not collapse that into
// "not significant". A non-nil error indicates invalid input, which is a
// caller bug rather than a data-quality condition.
func TestPeriodChange(currentCount, previousCount, currentTotal, previousTotal int, confidenceLevel float64) (*Result, error) {
	if currentCount < 0 || previousCount < 0 || currentTotal < 0 || previousTotal < 0 {
		return nil, fmt.Errorf("negative count: current %d/%d, previous %d/%d",
			currentCount, currentTotal, previousCount, previousTotal)
	}
	if currentCount > currentTotal || previousCount > previousTotal {
		return nil, fmt.Errorf("count exceeds total: current %d/%d, previous %d/%d",
			currentCount, currentTotal, previousCount, previousTotal)
	}
	if math.IsNaN(confidenceLevel) {
		return nil, fmt.Errorf("confidence level is NaN")
	}

	if currentTotal < MinSampleSize || previousTotal < MinSampleSize {
		return nil, nil
	}

	level := normalizeLevel(confidenceLevel)

	// 2x2 contingency table: observed / not observed x current / previous.
	observed := [4]float64{
		float64(currentCount),
		float64(previousCount),
		float64(currentTotal - currentCount),
		float64(previousTotal - previousCount),
	}

	rowObserved := observed[0] + observed[1]
	rowNotObserved := observed[2] + observed[3]
	colCurrent := float64(currentTotal)
	colPrevious := float64(previousTotal)
	total := colCurrent + colPrevious

	expected := [4]float64{
		rowObserved * colCurrent / total,
		rowObserved * colPrevious / total,
		rowNotObserved * colCurrent / total,
		rowNotObserved * colPrevious / total,
	}

	chiSquare := 0.0
	for i := range observed {
		if expected[i] == 0 {
			continue
		}
		diff := observed[i] - expected[i]
		chiSquare += diff * diff / expected[i]
	}

	pValue := chiSquarePValue(chiSquare)

	return &Result{
		ChiSquare:         chiSquare,
		PValue:            pValue,
		IsSignificant:     chiSquare > criticalValues[level],
		ConfidenceLevel:   level,
		TestType:          "chi-square",
		DegreesOfFreedom:  1,
		SignificanceScore: math.Max(0, 1-pValue),
		Strength:          strengthFor(pValue),
	}, nil
}

// strengthFor buckets a p-value.
func strengthFor(pValue float64) Strength {
	switch {
	case pValue < 0.01:
		return StrengthStrong
	case pValue < 0.05:
		return StrengthModerate
	case pValue < 0.10:
		return StrengthWeak
	default:
		return StrengthInsufficient
	}
}

// chiSquarePValue returns the two-tailed p-value for a chi-square statistic
// at df=1 using sqrt(chi) as a standard normal deviate. This approximation is
// intentional; see the package documentation.
func chiSquarePValue(chiSquare float64) float64 {
	if chiSquare <= 0 {
		return 1
	}
	z := math.Sqrt(chiSquare)
	p := 2 * (1 - normalCDF(z))
	return math.Min(1, math.Max(0, p))
}

// normalCDF is the standard normal CDF via the Abramowitz-Stegun 7.1.26
// rational approximation of erf (max absolute error 1.5e-7).
func normalCDF(z float64) float64 {
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	sign := 1.0
	if z < 0 {
		sign = -1.0
	}
	x := math.Abs(z) / math.Sqrt2

	t := 1.0 / (1.0 + p*x)
	erf := 1.0 - (((((a5*t+a4)*t+a3)*t+a2)*t+a1)*t)*math.Exp(-x*x)

	return 0.5 * (1.0 + sign*erf)
}

// ProportionInterval builds the normal-approximation confidence interval for
// an observed proportion over a sample of size n. The proportion is clamped
// to [0,1] before bounds are computed; all returned values are percentages.
func ProportionInterval(proportion float64, n int, confidenceLevel float64) (*Interval, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sample size must be positive, got %d", n)
	}
	if math.IsNaN(proportion) {
		return nil, fmt.Errorf("proportion is NaN")
	}

	level := normalizeLevel(confidenceLevel)
	p := math.Min(1, math.Max(0, proportion))

	marginOfError := zScores[level] * math.Sqrt(p*(1-p)/float64(n))

	lower := math.Max(0, p-marginOfError)
	upper := math.Min(1, p+marginOfError)

	return &Interval{
		Lower:           lower * 100,
		Upper:           upper * 100,
		Mean:            p * 100,
		ConfidenceLevel: level,
	}, nil
}

// RequiredSampleSize returns the smallest sample size that achieves the given
// margin of error for an expected proportion, n = z^2 * p * (1-p) / E^2,
// rounded up.
func RequiredSampleSize(expectedProportion, marginOfError, confidenceLevel float64) (int, error) {
	if marginOfError <= 0 || math.IsNaN(marginOfError) {
		return 0, fmt.Errorf("margin of error must be positive, got %f", marginOfError)
	}
	if expectedProportion < 0 || expectedProportion > 1 || math.IsNaN(expectedProportion) {
		return 0, fmt.Errorf("expected proportion must be in [0,1], got %f", expectedProportion)
	}

	z := zScores[normalizeLevel(confidenceLevel)]
	n := z * z * expectedProportion * (1 - expectedProportion) / (marginOfError * marginOfError)

	return int(math.Ceil(n)), nil
}
