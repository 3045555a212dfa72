// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// quantiler is the method set shared by distuv's continuous
// distributions. distuv declares no such interface itself, so one is
// declared here to adapt its concrete types.
type quantiler interface {
	Prob(x float64) float64
	CDF(x float64) float64
	Quantile(p float64) float64
}

// gonumDist adapts a distuv distribution to the Dist interface.
// distuv does not expose support bounds, so the table declares them.
type gonumDist struct {
	quantiler
	lo, hi float64
}

func (d gonumDist) PDF(x float64) float64 { return d.Prob(x) }

// CDF clamps outside the support: not every distuv CDF guards its
// left tail (LogNormal returns NaN for negative x), and the provider
// contract is a CDF total on the reals.
func (d gonumDist) CDF(x float64) float64 {
	switch {
	case x <= d.lo:
		return 0
	case x >= d.hi:
		return 1
	}
	return d.quantiler.CDF(x)
}

func (d gonumDist) InvCDF(p float64) float64 {
	// distuv quantiles panic outside [0, 1]; the provider contract
	// is NaN.
	if !(0 <= p && p <= 1) {
		return nan
	}
	return d.Quantile(p)
}

func (d gonumDist) Support() (lo, hi float64) { return d.lo, d.hi }

// UnitNormal is the frozen standard normal distribution.
var UnitNormal Dist = gonumDist{distuv.UnitNormal, -inf, inf}

func newNorm(args ...float64) (Dist, error) {
	return UnitNormal, nil
}

func newBeta(args ...float64) (Dist, error) {
	if err := positive("beta", "a", args[0]); err != nil {
		return nil, err
	}
	if err := positive("beta", "b", args[1]); err != nil {
		return nil, err
	}
	return gonumDist{distuv.Beta{Alpha: args[0], Beta: args[1]}, 0, 1}, nil
}

func newChi(args ...float64) (Dist, error) {
	if err := positive("chi", "df", args[0]); err != nil {
		return nil, err
	}
	return gonumDist{distuv.Chi{K: args[0]}, 0, inf}, nil
}

func newChi2(args ...float64) (Dist, error) {
	if err := positive("chi2", "df", args[0]); err != nil {
		return nil, err
	}
	return gonumDist{distuv.ChiSquared{K: args[0]}, 0, inf}, nil
}

func newExpon(args ...float64) (Dist, error) {
	return gonumDist{distuv.Exponential{Rate: 1}, 0, inf}, nil
}

func newF(args ...float64) (Dist, error) {
	if err := positive("f", "dfn", args[0]); err != nil {
		return nil, err
	}
	if err := positive("f", "dfd", args[1]); err != nil {
		return nil, err
	}
	return gonumDist{distuv.F{D1: args[0], D2: args[1]}, 0, inf}, nil
}

func newGamma(args ...float64) (Dist, error) {
	if err := positive("gamma", "a", args[0]); err != nil {
		return nil, err
	}
	return gonumDist{distuv.Gamma{Alpha: args[0], Beta: 1}, 0, inf}, nil
}

func newGumbelR(args ...float64) (Dist, error) {
	return gonumDist{distuv.GumbelRight{Mu: 0, Beta: 1}, -inf, inf}, nil
}

func newInvGamma(args ...float64) (Dist, error) {
	if err := positive("invgamma", "a", args[0]); err != nil {
		return nil, err
	}
	return gonumDist{distuv.InverseGamma{Alpha: args[0], Beta: 1}, 0, inf}, nil
}

func newLaplace(args ...float64) (Dist, error) {
	return gonumDist{distuv.Laplace{Mu: 0, Scale: 1}, -inf, inf}, nil
}

func newLogistic(args ...float64) (Dist, error) {
	return gonumDist{distuv.Logistic{Mu: 0, S: 1}, -inf, inf}, nil
}

func newLognorm(args ...float64) (Dist, error) {
	if err := positive("lognorm", "s", args[0]); err != nil {
		return nil, err
	}
	return gonumDist{distuv.LogNormal{Mu: 0, Sigma: args[0]}, 0, inf}, nil
}

func newPareto(args ...float64) (Dist, error) {
	if err := positive("pareto", "b", args[0]); err != nil {
		return nil, err
	}
	return gonumDist{distuv.Pareto{Xm: 1, Alpha: args[0]}, 1, inf}, nil
}

func newT(args ...float64) (Dist, error) {
	if err := positive("t", "df", args[0]); err != nil {
		return nil, err
	}
	return gonumDist{distuv.StudentsT{Mu: 0, Sigma: 1, Nu: args[0]}, -inf, inf}, nil
}

func newTriang(args ...float64) (Dist, error) {
	if !(args[0] > 0 && args[0] < 1) {
		return nil, errors.Errorf("triang: shape parameter c must be in (0, 1), got %v", args[0])
	}
	return gonumDist{distuv.NewTriangle(0, 1, args[0], nil), 0, 1}, nil
}

func newUniform(args ...float64) (Dist, error) {
	return gonumDist{distuv.Uniform{Min: 0, Max: 1}, 0, 1}, nil
}

func newWeibullMin(args ...float64) (Dist, error) {
	if err := positive("weibull_min", "c", args[0]); err != nil {
		return nil, err
	}
	return gonumDist{distuv.Weibull{K: args[0], Lambda: 1}, 0, inf}, nil
}
