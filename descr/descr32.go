// Copyright (c) 2024, The CCNeuro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descr

import (
	"github.com/emer/etable/v2/minmax"
	"github.com/goki/mat32"
)

// 32-bit variants operate directly on response-matrix rows, which are
// stored float32 -- summing in float64 to avoid accumulation error on
// long timecourses, as the response matrix has ~10k timepoints.

// Mean32 returns the arithmetic mean of vals.
func Mean32(vals []float32) float32 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += float64(v)
	}
	return float32(sum / float64(len(vals)))
}

// Var32 returns the sample variance of vals (n-1 denominator).
func Var32(vals []float32) float32 {
	n := len(vals)
	if n < 2 {
		return 0
	}
	mn := float64(Mean32(vals))
	ss := 0.0
	for _, v := range vals {
		d := float64(v) - mn
		ss += d * d
	}
	return float32(ss / float64(n-1))
}

// Std32 returns the sample standard deviation of vals.
func Std32(vals []float32) float32 { return mat32.Sqrt(Var32(vals)) }

// Sem32 returns the standard error of the mean of vals.
func Sem32(vals []float32) float32 {
	if len(vals) == 0 {
		return 0
	}
	return Std32(vals) / mat32.Sqrt(float32(len(vals)))
}

// MinMax32 returns the range of vals.
func MinMax32(vals []float32) minmax.F32 {
	var mm minmax.F32
	mm.SetInfinity()
	for _, v := range vals {
		mm.FitValInRange(v)
	}
	return mm
}
