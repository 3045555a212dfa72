// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"github.com/probscale/go-probscale/dist"
)

// A Scale binds a probability Transform to default tick locators and
// a formatter under a name. Scales are immutable once built; obtain
// them from a Registry.
type Scale struct {
	name       string
	dist       dist.Dist
	transform  *Transform
	percentage bool
}

// config collects the per-scale options. Defaults: no shape
// arguments, loc 0, scale 1, mask policy, probability labels.
type config struct {
	args       []float64
	loc, scale float64
	nonpos     Nonpos
	percentage bool
}

// An Option configures a Scale at construction.
type Option func(*config)

// WithArgs supplies the ordered shape-parameter values for the
// underlying distribution family.
func WithArgs(args ...float64) Option {
	return func(c *config) { c.args = args }
}

// WithLocScale relocates and rescales the frozen distribution so that
// quantiles become loc + scale*q.
func WithLocScale(loc, scale float64) Option {
	return func(c *config) { c.loc, c.scale = loc, scale }
}

// WithNonpos sets the out-of-domain policy for the forward transform.
func WithNonpos(nonpos Nonpos) Option {
	return func(c *config) { c.nonpos = nonpos }
}

// WithPercentage sets whether tick labels render as percentages.
func WithPercentage(percentage bool) Option {
	return func(c *config) { c.percentage = percentage }
}

// New builds a scale named name over the frozen distribution d.
func New(name string, d dist.Dist, opts ...Option) (*Scale, error) {
	c := config{loc: 0, scale: 1, nonpos: NonposMask}
	for _, opt := range opts {
		opt(&c)
	}
	d, err := dist.Affine(d, c.loc, c.scale)
	if err != nil {
		return nil, err
	}
	t, err := NewTransform(d, c.nonpos)
	if err != nil {
		return nil, err
	}
	return &Scale{
		name:       name,
		dist:       d,
		transform:  t,
		percentage: c.percentage,
	}, nil
}

// Name returns the scale's registered name.
func (s *Scale) Name() string { return s.name }

// Dist returns the frozen distribution underlying the scale.
func (s *Scale) Dist() dist.Dist { return s.dist }

// Transform returns the scale's coordinate transform.
func (s *Scale) Transform() *Transform { return s.transform }

// Percentage reports whether tick labels render as percentages.
func (s *Scale) Percentage() bool { return s.percentage }

// DefaultLocators returns the major and minor tick locators for this
// scale.
func (s *Scale) DefaultLocators() (major, minor Locator) {
	return Locator{}, Locator{Minor: true}
}

// DefaultFormatter returns the tick formatter for this scale. Major
// and minor ticks share it.
func (s *Scale) DefaultFormatter() Formatter {
	return Formatter{Percentage: s.percentage}
}

// LimitRange clamps a requested view range to bounds safe for the
// open interval ]0, 1[. minpos is the smallest positive value among
// the plotted data; it substitutes for a bound at or beyond 0, and its
// reflection for a bound at or beyond 1.
func (s *Scale) LimitRange(vmin, vmax, minpos float64) (float64, float64) {
	if vmin <= 0 {
		vmin = minpos
	}
	if vmax >= 1 {
		vmax = 1 - minpos
	}
	return vmin, vmax
}
