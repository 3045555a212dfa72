// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"sort"
	"strings"
	"testing"

	"github.com/probscale/go-probscale/dist"
)

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry("")
	names := reg.Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	if want := len(dist.Families()) + 1; len(names) != want {
		t.Errorf("got %d names, want %d (families plus probit)", len(names), want)
	}
	for _, name := range []string{"norm", "probit", "beta", "weibull_min"} {
		if _, ok := reg.Lookup(name); !ok {
			t.Errorf("scale %q not registered", name)
		}
	}
}

func TestRegistryPrefix(t *testing.T) {
	reg := NewRegistry("prob-")
	if reg.Prefix() != "prob-" {
		t.Errorf("Prefix() = %q", reg.Prefix())
	}
	if _, ok := reg.Lookup("prob-norm"); !ok {
		t.Error("prob-norm not registered")
	}
	if _, ok := reg.Lookup("norm"); ok {
		t.Error("unprefixed name registered in a prefixed registry")
	}
}

func TestRegistryNew(t *testing.T) {
	reg := NewRegistry("")

	s, err := reg.New("norm")
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != "norm" || s.Percentage() {
		t.Errorf("unexpected defaults: name %q, percentage %v", s.Name(), s.Percentage())
	}
	if got := s.Transform().ForwardOne(0.5); !aeq(0, got) {
		t.Errorf("Forward(0.5) = %v, want 0", got)
	}

	if _, err := reg.New("nope"); err == nil || !strings.Contains(err.Error(), "unknown scale") {
		t.Errorf("unknown name: got error %v", err)
	}
	if _, err := reg.New("beta"); err == nil {
		t.Error("beta without shape arguments did not fail")
	}
	if _, err := reg.New("beta", WithArgs(2, 3)); err != nil {
		t.Errorf("beta with shape arguments failed: %v", err)
	}
	if _, err := reg.New("norm", WithNonpos("banana")); err == nil {
		t.Error("unknown nonpos policy did not fail")
	}
}

func TestRegistryOptions(t *testing.T) {
	reg := NewRegistry("")
	s, err := reg.New("norm",
		WithLocScale(1, 2),
		WithNonpos(NonposClip),
		WithPercentage(true),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Percentage() {
		t.Error("percentage option not applied")
	}
	if s.Transform().Nonpos() != NonposClip {
		t.Error("nonpos option not applied")
	}
	if got := s.Transform().ForwardOne(0.5); !aeq(1, got) {
		t.Errorf("Forward(0.5) = %v, want the location shift 1", got)
	}
	if got := s.Dist().CDF(1); !aeq(0.5, got) {
		t.Errorf("CDF(1) = %v, want 0.5", got)
	}
}

func TestProbitAlias(t *testing.T) {
	reg := NewRegistry("")
	sp, err := reg.New("probit")
	if err != nil {
		t.Fatal(err)
	}
	sn, err := reg.New("norm")
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []float64{0, 1e-10, 0.001, 0.3, 0.5, 0.7, 0.999, 1} {
		got, want := sp.Transform().ForwardOne(p), sn.Transform().ForwardOne(p)
		if got != want {
			t.Errorf("probit Forward(%v) = %v, norm gives %v", p, got, want)
		}
	}
}

func TestLimitRange(t *testing.T) {
	reg := NewRegistry("")
	s, err := reg.New("norm")
	if err != nil {
		t.Fatal(err)
	}
	if lo, hi := s.LimitRange(-1, 2, 1e-10); lo != 1e-10 || hi != 1-1e-10 {
		t.Errorf("LimitRange(-1, 2) = (%v, %v)", lo, hi)
	}
	if lo, hi := s.LimitRange(0, 1, 1e-10); lo != 1e-10 || hi != 1-1e-10 {
		t.Errorf("LimitRange(0, 1) = (%v, %v)", lo, hi)
	}
	if lo, hi := s.LimitRange(0.2, 0.8, 1e-10); lo != 0.2 || hi != 0.8 {
		t.Errorf("LimitRange(0.2, 0.8) = (%v, %v)", lo, hi)
	}
}
