// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// This file implements the families whose quantile functions have
// closed forms not covered by distuv. Each type is the standard
// (loc=0, scale=1) member; Affine derives the rest.

// arcsineDist is the arcsine distribution on (0, 1).
type arcsineDist struct{}

func (arcsineDist) PDF(x float64) float64 {
	if x <= 0 || x >= 1 {
		return 0
	}
	return 1 / (math.Pi * math.Sqrt(x*(1-x)))
}

func (arcsineDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return 2 / math.Pi * math.Asin(math.Sqrt(x))
}

func (arcsineDist) InvCDF(p float64) float64 {
	if !(0 <= p && p <= 1) {
		return nan
	}
	s := math.Sin(math.Pi * p / 2)
	return s * s
}

func (arcsineDist) Support() (lo, hi float64) { return 0, 1 }

// cauchyDist is the standard Cauchy distribution.
type cauchyDist struct{}

func (cauchyDist) PDF(x float64) float64 {
	return 1 / (math.Pi * (1 + x*x))
}

func (cauchyDist) CDF(x float64) float64 {
	return 0.5 + math.Atan(x)/math.Pi
}

func (cauchyDist) InvCDF(p float64) float64 {
	if !(0 <= p && p <= 1) {
		return nan
	}
	switch p {
	case 0:
		return -inf
	case 1:
		return inf
	}
	return math.Tan(math.Pi * (p - 0.5))
}

func (cauchyDist) Support() (lo, hi float64) { return -inf, inf }

// fiskDist is the log-logistic (Fisk) distribution with shape c.
type fiskDist struct {
	c float64
}

func (d fiskDist) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	xc := math.Pow(x, d.c)
	return d.c * xc / (x * (1 + xc) * (1 + xc))
}

func (d fiskDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 1 / (1 + math.Pow(x, -d.c))
}

func (d fiskDist) InvCDF(p float64) float64 {
	if !(0 <= p && p <= 1) {
		return nan
	}
	return math.Pow(p/(1-p), 1/d.c)
}

func (d fiskDist) Support() (lo, hi float64) { return 0, inf }

// genLogisticDist is the generalized logistic distribution (type I)
// with shape c.
type genLogisticDist struct {
	c float64
}

func (d genLogisticDist) PDF(x float64) float64 {
	e := math.Exp(-x)
	return d.c * e * math.Pow(1+e, -d.c-1)
}

func (d genLogisticDist) CDF(x float64) float64 {
	return math.Pow(1+math.Exp(-x), -d.c)
}

func (d genLogisticDist) InvCDF(p float64) float64 {
	if !(0 <= p && p <= 1) {
		return nan
	}
	return -math.Log(math.Pow(p, -1/d.c) - 1)
}

func (d genLogisticDist) Support() (lo, hi float64) { return -inf, inf }

// gompertzDist is the Gompertz distribution with shape c.
type gompertzDist struct {
	c float64
}

func (d gompertzDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	ex := math.Exp(x)
	return d.c * ex * math.Exp(-d.c*(ex-1))
}

func (d gompertzDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-d.c * math.Expm1(x))
}

func (d gompertzDist) InvCDF(p float64) float64 {
	if !(0 <= p && p <= 1) {
		return nan
	}
	return math.Log1p(-math.Log1p(-p) / d.c)
}

func (d gompertzDist) Support() (lo, hi float64) { return 0, inf }

// gumbelLDist is the left-skewed (minimum) Gumbel distribution.
type gumbelLDist struct{}

func (gumbelLDist) PDF(x float64) float64 {
	ex := math.Exp(x)
	return ex * math.Exp(-ex)
}

func (gumbelLDist) CDF(x float64) float64 {
	return -math.Expm1(-math.Exp(x))
}

func (gumbelLDist) InvCDF(p float64) float64 {
	if !(0 <= p && p <= 1) {
		return nan
	}
	return math.Log(-math.Log1p(-p))
}

func (gumbelLDist) Support() (lo, hi float64) { return -inf, inf }

// halfNormDist is the half-normal distribution.
type halfNormDist struct{}

func (halfNormDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return math.Sqrt(2/math.Pi) * math.Exp(-x*x/2)
}

func (halfNormDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Erf(x / math.Sqrt2)
}

func (halfNormDist) InvCDF(p float64) float64 {
	if !(0 <= p && p <= 1) {
		return nan
	}
	return UnitNormal.InvCDF((1 + p) / 2)
}

func (halfNormDist) Support() (lo, hi float64) { return 0, inf }

// hypSecantDist is the hyperbolic secant distribution.
type hypSecantDist struct{}

func (hypSecantDist) PDF(x float64) float64 {
	return 1 / (math.Pi * math.Cosh(x))
}

func (hypSecantDist) CDF(x float64) float64 {
	return 2 / math.Pi * math.Atan(math.Exp(x))
}

func (hypSecantDist) InvCDF(p float64) float64 {
	if !(0 <= p && p <= 1) {
		return nan
	}
	if p == 1 {
		// Tan(Pi/2) is finite in floating point.
		return inf
	}
	return math.Log(math.Tan(math.Pi * p / 2))
}

func (hypSecantDist) Support() (lo, hi float64) { return -inf, inf }

// logLaplaceDist is the log-Laplace distribution with shape c.
type logLaplaceDist struct {
	c float64
}

func (d logLaplaceDist) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x < 1 {
		return d.c / 2 * math.Pow(x, d.c-1)
	}
	return d.c / 2 * math.Pow(x, -d.c-1)
}

func (d logLaplaceDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x < 1 {
		return 0.5 * math.Pow(x, d.c)
	}
	return 1 - 0.5*math.Pow(x, -d.c)
}

func (d logLaplaceDist) InvCDF(p float64) float64 {
	if !(0 <= p && p <= 1) {
		return nan
	}
	if p < 0.5 {
		return math.Pow(2*p, 1/d.c)
	}
	return math.Pow(2*(1-p), -1/d.c)
}

func (d logLaplaceDist) Support() (lo, hi float64) { return 0, inf }

// lomaxDist is the Lomax (Pareto II) distribution with shape c.
type lomaxDist struct {
	c float64
}

func (d lomaxDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.c * math.Pow(1+x, -d.c-1)
}

func (d lomaxDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 1 - math.Pow(1+x, -d.c)
}

func (d lomaxDist) InvCDF(p float64) float64 {
	if !(0 <= p && p <= 1) {
		return nan
	}
	return math.Pow(1-p, -1/d.c) - 1
}

func (d lomaxDist) Support() (lo, hi float64) { return 0, inf }

// rayleighDist is the Rayleigh distribution.
type rayleighDist struct{}

func (rayleighDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x * math.Exp(-x*x/2)
}

func (rayleighDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-x * x / 2)
}

func (rayleighDist) InvCDF(p float64) float64 {
	if !(0 <= p && p <= 1) {
		return nan
	}
	return math.Sqrt(-2 * math.Log1p(-p))
}

func (rayleighDist) Support() (lo, hi float64) { return 0, inf }

// weibullMaxDist is the mirrored (maximum) Weibull distribution with
// shape c and support (-inf, 0].
type weibullMaxDist struct {
	c float64
}

func (d weibullMaxDist) PDF(x float64) float64 {
	if x >= 0 {
		return 0
	}
	nx := -x
	return d.c * math.Pow(nx, d.c-1) * math.Exp(-math.Pow(nx, d.c))
}

func (d weibullMaxDist) CDF(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return math.Exp(-math.Pow(-x, d.c))
}

func (d weibullMaxDist) InvCDF(p float64) float64 {
	if !(0 <= p && p <= 1) {
		return nan
	}
	return -math.Pow(-math.Log(p), 1/d.c)
}

func (d weibullMaxDist) Support() (lo, hi float64) { return -inf, 0 }
