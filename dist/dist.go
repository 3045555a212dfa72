// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
)

// A Dist is a frozen continuous statistical distribution.
//
// All methods are pure functions of their argument and the frozen
// parameters, so a Dist may be used concurrently without locking.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. CDF is total on the
	// reals: it is 0 left of the support and 1 right of it.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF for p. That is,
	// InvCDF(CDF(x)) = x. The value of p must be in [0, 1];
	// outside that interval the result is NaN.
	InvCDF(p float64) float64

	// Support returns the lower and upper bounds of this
	// distribution's support. Either bound may be infinite.
	Support() (lo, hi float64)
}

// affine is d shifted and stretched: X = loc + scale*Z.
type affine struct {
	d          Dist
	loc, scale float64
}

// Affine returns d relocated and rescaled so that samples become
// loc + scale*Z. This is the universal location/scale
// parameterization: every family in the table is the standard member,
// and Affine derives the rest. scale must be positive and finite.
func Affine(d Dist, loc, scale float64) (Dist, error) {
	if loc == 0 && scale == 1 {
		return d, nil
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return nil, errors.Errorf("scale must be a positive finite number, got %v", scale)
	}
	if math.IsNaN(loc) || math.IsInf(loc, 0) {
		return nil, errors.Errorf("loc must be a finite number, got %v", loc)
	}
	return affine{d, loc, scale}, nil
}

func (a affine) PDF(x float64) float64 {
	return a.d.PDF((x-a.loc)/a.scale) / a.scale
}

func (a affine) CDF(x float64) float64 {
	return a.d.CDF((x - a.loc) / a.scale)
}

func (a affine) InvCDF(p float64) float64 {
	return a.loc + a.scale*a.d.InvCDF(p)
}

func (a affine) Support() (lo, hi float64) {
	lo, hi = a.d.Support()
	return a.loc + a.scale*lo, a.loc + a.scale*hi
}
