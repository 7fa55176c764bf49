// Copyright (c) 2024, The CCNeuro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descr

import (
	"math/rand"
	"sort"
)

// Bootstrap draws nsamp resamples of vals with replacement, applies
// stat to each, and returns the resulting statistic values sorted
// ascending -- the empirical sampling distribution used for
// percentile confidence intervals.
func Bootstrap(vals []float64, stat func([]float64) float64, nsamp int, rnd *rand.Rand) []float64 {
	n := len(vals)
	if n == 0 {
		return nil
	}
	samps := make([]float64, nsamp)
	res := make([]float64, n)
	for s := 0; s < nsamp; s++ {
		for i := range res {
			res[i] = vals[rnd.Intn(n)]
		}
		samps[s] = stat(res)
	}
	sort.Float64s(samps)
	return samps
}

// CI returns the central pct percentile interval (e.g. pct = 95) of a
// sorted bootstrap distribution.
func CI(sorted []float64, pct float64) (lo, hi float64) {
	tail := (100 - pct) / 200
	lo = Quantile(sorted, tail)
	hi = Quantile(sorted, 1-tail)
	return lo, hi
}
