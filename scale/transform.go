// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/probscale/go-probscale/dist"
)

// Nonpos selects how probability inputs outside ]0, 1[ are handled by
// the forward transform.
type Nonpos string

const (
	// NonposMask sends values below 0 to -Inf and above 1 to +Inf
	// before the quantile is taken (so they come out as the
	// coerced non-finite sentinels), and nudges exact 0 and 1 to
	// MinProb and MaxProb.
	NonposMask Nonpos = "mask"

	// NonposClip clamps values below MinProb to MinProb and above
	// 1 to MaxProb. Note the upper test is >1, not >=1: exact 1
	// passes through, unlike under NonposMask.
	NonposClip Nonpos = "clip"
)

func (n Nonpos) valid() bool { return n == NonposMask || n == NonposClip }

// adjust applies the policy to a single probability value.
func (n Nonpos) adjust(p float64) float64 {
	if n == NonposClip {
		switch {
		case p < MinProb:
			return MinProb
		case p > 1:
			return MaxProb
		}
		return p
	}
	switch {
	case p < 0:
		return -inf
	case p > 1:
		return inf
	case p == 0:
		return MinProb
	case p == 1:
		return MaxProb
	}
	return p
}

func errBadNonpos(n Nonpos) error {
	return errors.Errorf("nonpos must be %q or %q, got %q", NonposMask, NonposClip, n)
}

// nanToNum coerces non-finite quantiles to plottable extremes: NaN
// becomes 0 and infinities become the largest finite values.
func nanToNum(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case math.IsInf(x, 1):
		return math.MaxFloat64
	case math.IsInf(x, -1):
		return -math.MaxFloat64
	}
	return x
}

// A Transform maps probability space onto a distribution's quantile
// space: forward is p -> InvCDF(p), inverse is x -> CDF(x). Both
// directions are pure and element-wise, so a Transform may be shared
// between goroutines.
type Transform struct {
	dist   dist.Dist
	nonpos Nonpos
}

// NewTransform returns a Transform over d with the given out-of-domain
// policy.
func NewTransform(d dist.Dist, nonpos Nonpos) (*Transform, error) {
	if !nonpos.valid() {
		return nil, errBadNonpos(nonpos)
	}
	return &Transform{dist: d, nonpos: nonpos}, nil
}

// Dist returns the frozen distribution this transform wraps.
func (t *Transform) Dist() dist.Dist { return t.dist }

// Nonpos returns the out-of-domain policy fixed at construction.
func (t *Transform) Nonpos() Nonpos { return t.nonpos }

// ForwardOne transforms a single probability to quantile space.
func (t *Transform) ForwardOne(p float64) float64 {
	p = t.nonpos.adjust(p)
	var x float64
	if p < 0 || p > 1 || math.IsNaN(p) {
		// The provider's quantile is undefined here, matching
		// its NaN for out-of-range input.
		x = nan
	} else {
		x = t.dist.InvCDF(p)
	}
	return nanToNum(x)
}

// Forward transforms probabilities to quantile space element-wise.
func (t *Transform) Forward(ps []float64) []float64 {
	xs := make([]float64, len(ps))
	for i, p := range ps {
		xs[i] = t.ForwardOne(p)
	}
	return xs
}

// InverseOne transforms a single quantile back to probability space.
// The CDF is total on the reals, so no domain policy applies.
func (t *Transform) InverseOne(x float64) float64 {
	return t.dist.CDF(x)
}

// Inverse transforms quantiles back to probability space element-wise.
func (t *Transform) Inverse(xs []float64) []float64 {
	ps := make([]float64, len(xs))
	for i, x := range xs {
		ps[i] = t.InverseOne(x)
	}
	return ps
}

// Inverted returns the CDF-direction transform over the same
// distribution and policy.
func (t *Transform) Inverted() *CDFTransform {
	return &CDFTransform{dist: t.dist, nonpos: t.nonpos}
}

// A CDFTransform is the inverse companion of Transform: its forward
// direction applies the CDF. It carries the distribution and policy so
// that inverting it restores the original Transform.
type CDFTransform struct {
	dist   dist.Dist
	nonpos Nonpos
}

// NewCDFTransform returns the CDF-direction transform over d.
func NewCDFTransform(d dist.Dist, nonpos Nonpos) (*CDFTransform, error) {
	if !nonpos.valid() {
		return nil, errBadNonpos(nonpos)
	}
	return &CDFTransform{dist: d, nonpos: nonpos}, nil
}

// ForwardOne applies the distribution's CDF to a single value.
func (t *CDFTransform) ForwardOne(x float64) float64 {
	return t.dist.CDF(x)
}

// Forward applies the distribution's CDF element-wise.
func (t *CDFTransform) Forward(xs []float64) []float64 {
	ps := make([]float64, len(xs))
	for i, x := range xs {
		ps[i] = t.ForwardOne(x)
	}
	return ps
}

// Inverted returns the quantile-direction transform over the same
// distribution and policy.
func (t *CDFTransform) Inverted() *Transform {
	return &Transform{dist: t.dist, nonpos: t.nonpos}
}

// A ProbitTransform is a Transform fixed to the standard normal
// distribution.
type ProbitTransform struct {
	Transform
}

// NewProbitTransform returns the probit transform, p -> Phi^-1(p).
func NewProbitTransform(nonpos Nonpos) (*ProbitTransform, error) {
	t, err := NewTransform(dist.UnitNormal, nonpos)
	if err != nil {
		return nil, err
	}
	return &ProbitTransform{*t}, nil
}

// Inverted returns the standard normal CDF transform.
func (t *ProbitTransform) Inverted() *NormalCDFTransform {
	return &NormalCDFTransform{CDFTransform{dist: t.dist, nonpos: t.nonpos}}
}

// A NormalCDFTransform is a CDFTransform fixed to the standard normal.
// It computes the CDF directly rather than through the stored handle;
// the result is identical.
type NormalCDFTransform struct {
	CDFTransform
}

// ForwardOne applies the standard normal CDF to a single value.
func (t *NormalCDFTransform) ForwardOne(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// Forward applies the standard normal CDF element-wise.
func (t *NormalCDFTransform) Forward(xs []float64) []float64 {
	ps := make([]float64, len(xs))
	for i, x := range xs {
		ps[i] = t.ForwardOne(x)
	}
	return ps
}

// Inverted returns the probit transform.
func (t *NormalCDFTransform) Inverted() *ProbitTransform {
	return &ProbitTransform{Transform{dist: t.dist, nonpos: t.nonpos}}
}
