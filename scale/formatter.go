// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
)

// A Formatter renders probability tick values as display strings,
// either as plain probabilities or as percentages. Precision grows as
// values approach 0 or 1 so neighboring extreme ticks stay
// distinguishable.
type Formatter struct {
	// Percentage renders values multiplied by 100 with a %
	// suffix.
	Percentage bool
}

// Format returns the label for the probability x.
//
// In probability mode, values within a decade or three of 0 print as
// fixed-point decimals; closer to 0 exact decades print as TeX
// power-of-ten expressions and other values as TeX-delimited
// decimals. The near-1 branch keeps fixed-point text only (the right
// tail rarely lands on a clean decade) and carries its historical
// trailing "$".
func (f Formatter) Format(x float64) string {
	if f.Percentage {
		x *= 100
		switch {
		case x > 99.9:
			return fmt.Sprintf("%.2f%%", x)
		case x > 99:
			return fmt.Sprintf("%.1f%%", x)
		case x >= 1:
			return fmt.Sprintf("%.0f%%", x)
		case x >= 0.1:
			return fmt.Sprintf("%.1f%%", x)
		default:
			return fmt.Sprintf("%.2f%%", x)
		}
	}

	switch {
	case 0.01 <= x && x <= 0.99:
		return fmt.Sprintf("%.2f", x)
	case x < 0.01:
		lx := math.Floor(math.Log10(x))
		switch {
		case lx >= -3:
			return fmt.Sprintf("%.3f", x)
		case isDecade(x):
			return fmt.Sprintf("$10^{%.0f}$", math.Log10(x))
		default:
			return fmt.Sprintf("$%.3f$", x)
		}
	default: // x > 0.99
		lx := math.Floor(math.Log10(1 - x))
		if lx >= -3 {
			return fmt.Sprintf("%.3f", x)
		}
		return fmt.Sprintf("%.4f$", x)
	}
}

// FormatShort returns a short fixed-width representation of x for
// status-line display, independent of the tick label rules.
func (f Formatter) FormatShort(x float64) string {
	return fmt.Sprintf("%-12g", x)
}

// isDecade reports whether x is an exact power of ten, within
// rounding.
func isDecade(x float64) bool {
	if x <= 0 || math.IsInf(x, 0) {
		return false
	}
	lx := math.Log10(x)
	return math.Abs(lx-math.Round(lx)) < 1e-10
}
