// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"reflect"
	"sort"
	"testing"
)

type fakeAxis struct {
	vmin, vmax, minpos float64
	polar              bool
}

func (a fakeAxis) ViewInterval() (float64, float64) { return a.vmin, a.vmax }
func (a fakeAxis) MinPos() float64                  { return a.minpos }
func (a fakeAxis) Polar() bool                      { return a.polar }

func TestCanonicalTickValues(t *testing.T) {
	if len(majorTickValues) != 13 {
		t.Errorf("major set has %d values, want 13", len(majorTickValues))
	}
	if len(minorTickValues) != 4 {
		t.Errorf("minor set has %d values, want 4", len(minorTickValues))
	}
	for _, set := range [][]float64{majorTickValues, minorTickValues} {
		if !sort.Float64sAreSorted(set) {
			t.Errorf("tick set %v is not sorted", set)
		}
		for i, v := range set {
			if !(0 < v && v < 1) {
				t.Errorf("tick value %v outside ]0, 1[", v)
			}
			if r := set[len(set)-1-i]; !aeq(1, v+r) {
				t.Errorf("tick set not symmetric: %v + %v != 1", v, r)
			}
		}
	}
}

func TestTickValues(t *testing.T) {
	major := Locator{}.TickValues(0.001, 0.5)
	want := []float64{0.001, 0.005, 0.02, 0.05, 0.1, 0.2, 0.5}
	if !reflect.DeepEqual(want, major) {
		t.Errorf("major ticks = %v, want %v", major, want)
	}

	minor := Locator{Minor: true}.TickValues(0.001, 0.5)
	if want := []float64{0.3, 0.4}; !reflect.DeepEqual(want, minor) {
		t.Errorf("minor ticks = %v, want %v", minor, want)
	}

	if got := (Locator{}).TickValues(0.21, 0.29); got != nil {
		t.Errorf("ticks in a gap = %v, want none", got)
	}
}

func TestNonsingular(t *testing.T) {
	var l Locator
	for _, tc := range []struct {
		vmin, vmax, minpos float64
		wantMin, wantMax   float64
	}{
		{math.NaN(), 0.5, 1e-10, MinProb, MaxProb},
		{0.2, math.Inf(1), 1e-10, MinProb, MaxProb},
		{0.2, 0.8, math.NaN(), MinProb, MaxProb},
		{0.8, 0.2, 1e-10, 0.2, 0.8},
		{-1, 0.5, 1e-7, 1e-7, 0.5},
		{0.5, 2, 1e-7, 0.5, 1 - 1e-7},
		{0.3, 0.3, 1e-10, 0.03, 0.97},
		{0.2, 0.8, 1e-10, 0.2, 0.8},
	} {
		gotMin, gotMax := l.Nonsingular(tc.vmin, tc.vmax, tc.minpos)
		if !aeq(tc.wantMin, gotMin) || !aeq(tc.wantMax, gotMax) {
			t.Errorf("Nonsingular(%v, %v, %v) = (%v, %v), want (%v, %v)",
				tc.vmin, tc.vmax, tc.minpos, gotMin, gotMax, tc.wantMin, tc.wantMax)
		}
	}
}

func TestLocate(t *testing.T) {
	ticks, err := Locator{}.Locate(fakeAxis{vmin: 0.001, vmax: 0.5, minpos: 1e-10})
	if err != nil {
		t.Fatal(err)
	}
	if len(ticks) != 7 {
		t.Errorf("got %d ticks, want 7", len(ticks))
	}

	// An axis with no data reported yet falls back to the full
	// default range.
	ticks, err = Locator{}.Locate(fakeAxis{vmin: math.Inf(-1), vmax: math.Inf(1), minpos: math.NaN()})
	if err != nil {
		t.Fatal(err)
	}
	if len(ticks) != len(majorTickValues) {
		t.Errorf("got %d ticks, want the full major set", len(ticks))
	}
}

func TestLocatePolar(t *testing.T) {
	_, err := Locator{}.Locate(fakeAxis{vmin: 0.1, vmax: 0.9, minpos: 1e-10, polar: true})
	if err != ErrPolarAxis {
		t.Errorf("got error %v, want ErrPolarAxis", err)
	}
}
