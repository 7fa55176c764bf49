// Copyright (c) 2024, The CCNeuro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descr

import "math"

// Covar returns the sample covariance of x and y:
// Sum((x - mx) * (y - my)) / (n-1).  x and y must be the same length.
func Covar(x, y []float64) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}
	mx, my := Mean(x), Mean(y)
	s := 0.0
	for i, xv := range x {
		s += (xv - mx) * (y[i] - my)
	}
	return s / float64(n-1)
}

// Correl returns the Pearson correlation coefficient of x and y:
// Sum((x - mx) * (y - my)) / sqrt(Sum((x - mx)^2) * Sum((y - my)^2)).
// Returns 0 if either variable has zero variance.
func Correl(x, y []float64) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}
	mx, my := Mean(x), Mean(y)
	var sxy, sxx, syy float64
	for i, xv := range x {
		dx := xv - mx
		dy := y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	den := math.Sqrt(sxx * syy)
	if den == 0 {
		return 0
	}
	return sxy / den
}

// LinFit is an ordinary least-squares simple linear regression
// y = Intercept + Slope * x.
type LinFit struct {

	// slope of the least-squares line: Sxy / Sxx
	Slope float64

	// intercept: my - Slope * mx
	Intercept float64

	// coefficient of determination: 1 - SSres / SStot
	R2 float64

	// standard error of the slope estimate
	SlopeSE float64

	// number of observations fit
	N int
}

// Regress fits the least-squares line predicting y from x.
// x and y must be the same length, with at least 3 points for a
// meaningful SlopeSE (which is 0 below that).
func Regress(x, y []float64) LinFit {
	n := len(x)
	lf := LinFit{N: n}
	if n < 2 {
		return lf
	}
	mx, my := Mean(x), Mean(y)
	var sxy, sxx float64
	for i, xv := range x {
		dx := xv - mx
		sxy += dx * (y[i] - my)
		sxx += dx * dx
	}
	if sxx == 0 {
		return lf
	}
	lf.Slope = sxy / sxx
	lf.Intercept = my - lf.Slope*mx

	var ssres, sstot float64
	for i, xv := range x {
		r := y[i] - lf.Predict(xv)
		ssres += r * r
		d := y[i] - my
		sstot += d * d
	}
	if sstot > 0 {
		lf.R2 = 1 - ssres/sstot
	}
	if n > 2 {
		lf.SlopeSE = math.Sqrt(ssres / float64(n-2) / sxx)
	}
	return lf
}

// Predict returns the fitted value at x.
func (lf *LinFit) Predict(x float64) float64 {
	return lf.Intercept + lf.Slope*x
}

// Residuals returns y - Predict(x) for each observation.
func (lf *LinFit) Residuals(x, y []float64) []float64 {
	res := make([]float64, len(x))
	for i, xv := range x {
		res[i] = y[i] - lf.Predict(xv)
	}
	return res
}
