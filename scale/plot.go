// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"sort"

	"gonum.org/v1/plot"
)

// Normalizer adapts a Transform to gonum/plot's axis scaling: data
// coordinates are pushed through the forward transform and then
// normalized linearly, the same construction plot.LogScale uses for
// log axes.
type Normalizer struct {
	T *Transform
}

var _ plot.Normalizer = Normalizer{}

// Normalize returns the fractional position of x between min and max
// in quantile space.
func (n Normalizer) Normalize(min, max, x float64) float64 {
	lo := n.T.ForwardOne(min)
	hi := n.T.ForwardOne(max)
	return (n.T.ForwardOne(x) - lo) / (hi - lo)
}

// Ticker adapts the probability locators and formatter to
// gonum/plot's tick marker. Major ticks carry labels; minor ticks are
// unlabeled, which is how gonum/plot distinguishes them.
type Ticker struct {
	Major, Minor Locator
	Format       Formatter
}

var _ plot.Ticker = Ticker{}

// Ticks returns the ticks for an axis viewing [min, max].
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	// gonum/plot axes don't track a minimum positive data value,
	// so the floor constant stands in for normalization.
	vmin, vmax := t.Major.Nonsingular(min, max, MinProb)

	var ticks []plot.Tick
	for _, v := range t.Major.TickValues(vmin, vmax) {
		ticks = append(ticks, plot.Tick{Value: v, Label: t.Format.Format(v)})
	}
	for _, v := range t.Minor.TickValues(vmin, vmax) {
		ticks = append(ticks, plot.Tick{Value: v})
	}
	sort.Slice(ticks, func(i, j int) bool { return ticks[i].Value < ticks[j].Value })
	return ticks
}

// Normalizer returns the gonum/plot axis scale for s. Assign it to an
// axis's Scale field alongside the Ticker.
func (s *Scale) Normalizer() plot.Normalizer {
	return Normalizer{T: s.transform}
}

// Ticker returns the gonum/plot tick marker for s.
func (s *Scale) Ticker() plot.Ticker {
	major, minor := s.DefaultLocators()
	return Ticker{Major: major, Minor: minor, Format: s.DefaultFormatter()}
}
