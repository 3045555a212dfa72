// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "testing"

func TestFormatPercentage(t *testing.T) {
	f := Formatter{Percentage: true}
	for _, tc := range []struct {
		x    float64
		want string
	}{
		{0.5, "50%"},
		{0.05, "5%"},
		{0.992, "99.2%"},
		{0.999, "99.9%"},
		{0.9995, "99.95%"},
		{0.001, "0.1%"},
		{0.0001, "0.01%"},
	} {
		if got := f.Format(tc.x); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.x, got, tc.want)
		}
	}
}

func TestFormatProbability(t *testing.T) {
	f := Formatter{}
	for _, tc := range []struct {
		x    float64
		want string
	}{
		{0.5, "0.50"},
		{0.01, "0.01"},
		{0.99, "0.99"},
		{0.005, "0.005"},
		{0.001, "0.001"},
		{0.002, "0.002"},
		// Below three decades, exact decades render as powers
		// of ten and everything else as TeX decimals.
		{1e-4, "$10^{-4}$"},
		{1e-6, "$10^{-6}$"},
		{3e-4, "$0.000$"},
		// The right tail keeps fixed-point text only.
		{0.995, "0.995"},
		{0.999, "0.999"},
		{0.9995, "0.9995$"},
	} {
		if got := f.Format(tc.x); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.x, got, tc.want)
		}
	}
}

func TestFormatShort(t *testing.T) {
	f := Formatter{}
	if got, want := f.FormatShort(0.5), "0.5         "; got != want {
		t.Errorf("FormatShort(0.5) = %q, want %q", got, want)
	}
	if got, want := f.FormatShort(123456), "123456      "; got != want {
		t.Errorf("FormatShort(123456) = %q, want %q", got, want)
	}
}

func TestIsDecade(t *testing.T) {
	for x, want := range map[float64]bool{
		1e-6:  true,
		1e-3:  true,
		1:     true,
		10:    true,
		2e-6:  false,
		0.003: false,
		0:     false,
		-0.1:  false,
	} {
		if got := isDecade(x); got != want {
			t.Errorf("isDecade(%v) = %v, want %v", x, got, want)
		}
	}
}
