// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"github.com/pkg/errors"
)

// The canonical tick values. Each base list is reflected about 0.5.
// The minor list is intentionally not a refinement of the major list;
// it fills the gap between 0.2 and 0.5 where the major list is sparse.
var (
	majorTickValues = reflectTicks([]float64{0.001, 0.005, 0.02, 0.05, 0.1, 0.2}, true)
	minorTickValues = reflectTicks([]float64{0.3, 0.4}, false)
)

// reflectTicks returns base, optionally 0.5, then 1-v for each base
// value in reverse, producing a sorted set symmetric about 0.5.
func reflectTicks(base []float64, center bool) []float64 {
	vs := append([]float64(nil), base...)
	if center {
		vs = append(vs, 0.5)
	}
	for i := len(base) - 1; i >= 0; i-- {
		vs = append(vs, 1-base[i])
	}
	return vs
}

// ErrPolarAxis is reported when tick locations are requested for a
// polar axis, which probability scales do not support.
var ErrPolarAxis = errors.New("polar axes cannot be probability scaled")

// An Axis describes the axis state a Locator queries when placing
// ticks.
type Axis interface {
	// ViewInterval returns the visible interval of the axis.
	ViewInterval() (vmin, vmax float64)

	// MinPos returns the smallest positive value among the
	// plotted data, or NaN if no data has been plotted.
	MinPos() float64

	// Polar reports whether the axis belongs to a polar
	// coordinate system.
	Polar() bool
}

// A Locator selects tick positions for a probability-scaled axis from
// the canonical major or minor tick values.
type Locator struct {
	// Minor selects the minor tick value set.
	Minor bool
}

// TickValues returns the canonical values that fall inside
// [vmin, vmax], in ascending order. The bounds should already be
// normalized with Nonsingular.
func (l Locator) TickValues(vmin, vmax float64) []float64 {
	set := majorTickValues
	if l.Minor {
		set = minorTickValues
	}
	var ticks []float64
	for _, v := range set {
		if vmin <= v && v <= vmax {
			ticks = append(ticks, v)
		}
	}
	return ticks
}

// Nonsingular widens a degenerate or out-of-domain view interval to a
// usable one. minpos is the smallest positive plotted value; it
// replaces a bound that has escaped ]0, 1[. If any input is
// non-finite, no data has been plotted yet and the full default range
// is returned.
func (l Locator) Nonsingular(vmin, vmax, minpos float64) (float64, float64) {
	if !isFinite(vmin) || !isFinite(vmax) || !isFinite(minpos) {
		return MinProb, MaxProb
	}
	if vmin > vmax {
		vmin, vmax = vmax, vmin
	}
	if vmin <= 0 {
		vmin = minpos
	}
	if vmax >= 1 {
		// There is no direct analog of minpos for the upper
		// end, so its reflection stands in.
		vmax = 1 - minpos
	}
	if vmin == vmax {
		return 0.1 * vmin, 1 - 0.1*vmin
	}
	return vmin, vmax
}

// Locate returns the tick positions for ax.
func (l Locator) Locate(ax Axis) ([]float64, error) {
	if ax.Polar() {
		return nil, ErrPolarAxis
	}
	vmin, vmax := ax.ViewInterval()
	vmin, vmax = l.Nonsingular(vmin, vmax, ax.MinPos())
	return l.TickValues(vmin, vmax), nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
