// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist provides frozen continuous probability distributions
// for probability-scaled plot axes.
//
// A frozen distribution is fully parameterized at construction and
// exposes only its density, cumulative distribution, and quantile
// functions. Distributions are built through the static Family table,
// which declares the shape parameters each family requires. Where
// gonum's distuv package supplies a quantile function the family wraps
// it; the remaining families implement their closed-form quantiles
// directly.
package dist // import "github.com/probscale/go-probscale/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
