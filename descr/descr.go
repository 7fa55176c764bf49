// Copyright (c) 2024, The CCNeuro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package descr computes the descriptive statistics covered in the
introductory course: mean, variance and standard deviation, standard
error, quartiles, Pearson correlation, ordinary least-squares linear
fits, and bootstrap confidence intervals.

Every statistic is implemented in closed form from its defining
formula, and the test suite cross-checks each against the established
library routines (etable norm / metric / agg, gonum stat), which is
the same exercise the course asks of students.  Table-level summaries
over the dataset bundle are built on etable with agg / split grouped
aggregation.
*/
package descr

import (
	"math"
	"sort"

	"github.com/emer/etable/v2/minmax"
)

// Mean returns the arithmetic mean of vals: Sum(x) / n.
// Returns 0 for an empty slice.
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// Var returns the sample variance of vals: Sum((x - mean)^2) / (n-1).
func Var(vals []float64) float64 {
	n := len(vals)
	if n < 2 {
		return 0
	}
	mn := Mean(vals)
	ss := 0.0
	for _, v := range vals {
		d := v - mn
		ss += d * d
	}
	return ss / float64(n-1)
}

// VarPop returns the population variance: Sum((x - mean)^2) / n.
func VarPop(vals []float64) float64 {
	n := len(vals)
	if n == 0 {
		return 0
	}
	mn := Mean(vals)
	ss := 0.0
	for _, v := range vals {
		d := v - mn
		ss += d * d
	}
	return ss / float64(n)
}

// Std returns the sample standard deviation: sqrt(Var).
func Std(vals []float64) float64 { return math.Sqrt(Var(vals)) }

// StdPop returns the population standard deviation: sqrt(VarPop).
func StdPop(vals []float64) float64 { return math.Sqrt(VarPop(vals)) }

// Sem returns the standard error of the mean: Std / sqrt(n).
func Sem(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return Std(vals) / math.Sqrt(float64(len(vals)))
}

// MinMax returns the range of vals.
func MinMax(vals []float64) minmax.F64 {
	var mm minmax.F64
	mm.SetInfinity()
	for _, v := range vals {
		mm.FitValInRange(v)
	}
	return mm
}

// Quantile returns the q-th quantile (0 <= q <= 1) of vals using
// linear interpolation between closest ranks, matching the upstream
// data tooling's default.  vals need not be sorted.
func Quantile(vals []float64, q float64) float64 {
	n := len(vals)
	if n == 0 {
		return 0
	}
	srt := make([]float64, n)
	copy(srt, vals)
	sort.Float64s(srt)
	if n == 1 {
		return srt[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return srt[lo]
	}
	frac := pos - float64(lo)
	return srt[lo]*(1-frac) + srt[hi]*frac
}

// Median returns the 0.5 quantile of vals.
func Median(vals []float64) float64 { return Quantile(vals, 0.5) }

// Desc is the standard descriptive summary of one variable.
type Desc struct {

	// number of observations
	N int

	// arithmetic mean
	Mean float64

	// sample standard deviation
	Std float64

	// standard error of the mean
	Sem float64

	// observed range
	Range minmax.F64

	// first quartile, median, third quartile
	Q1, Median, Q3 float64
}

// Describe computes the full descriptive summary of vals.
func Describe(vals []float64) Desc {
	return Desc{
		N:      len(vals),
		Mean:   Mean(vals),
		Std:    Std(vals),
		Sem:    Sem(vals),
		Range:  MinMax(vals),
		Q1:     Quantile(vals, 0.25),
		Median: Median(vals),
		Q3:     Quantile(vals, 0.75),
	}
}
