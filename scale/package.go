// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps probability values in ]0, 1[ onto a
// distribution's quantile axis and back, for use as a plot axis
// scale. A scale is a transform (p -> InvCDF(p), x -> CDF(x)), a tick
// locator drawing from fixed canonical probability values, and a tick
// formatter whose precision adapts near 0 and 1.
//
// Scales for every family in the dist package are bound by name in a
// Registry and plug into gonum/plot through the Normalizer and Ticker
// adapters.
package scale // import "github.com/probscale/go-probscale/scale"

import "math"

// MinProb and MaxProb are the floor and ceiling probabilities
// substituted for values at or beyond 0 and 1.
const (
	MinProb = 1e-10
	MaxProb = 1 - 1e-10
)

var inf = math.Inf(1)
var nan = math.NaN()
