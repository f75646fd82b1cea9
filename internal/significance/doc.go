// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

// Package significance implements the hypothesis tests and intervals used to
// decide whether an observed period-over-period change in topic or category
// frequency is a real shift rather than noise.
//
// This is deliberately not a general statistics library. It covers exactly
// three things:
//
//   - A chi-square test of independence over a 2x2 contingency table
//     (current vs. previous period, observed vs. not observed), df=1.
//   - A normal-approximation confidence interval for a proportion.
//   - A required-sample-size calculator for a target margin of error.
//
// The p-value for df=1 uses sqrt(chi-square) as a standard normal deviate
// with the Abramowitz-Stegun rational approximation of the normal CDF. The
// significance thresholds and strength buckets downstream are calibrated
// against this approximation; swapping in an exact chi-square CDF would shift
// classification boundaries.
//
// TestPeriodChange returns a nil result when either period's sample is too
// small to assess. Callers must keep that "cannot assess" outcome distinct
// from "not significant".
package significance
