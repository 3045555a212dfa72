// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "github.com/pkg/errors"

// A Family is one supported distribution family. Its shape-parameter
// metadata is declared statically rather than discovered by
// reflection, so the full provider surface is visible in one table.
type Family struct {
	// Name identifies the family. Names follow the conventional
	// statistics shorthand (norm, chi2, weibull_min, ...).
	Name string

	// Params names the required shape parameters, in the order New
	// expects them. Location and scale are not shape parameters;
	// they are applied uniformly through Affine.
	Params []string

	ctor func(args ...float64) (Dist, error)
}

// New builds a frozen standard member of the family from the shape
// arguments. It fails if the argument count does not match Params or
// an argument is outside the shape domain.
func (f Family) New(args ...float64) (Dist, error) {
	if len(args) != len(f.Params) {
		return nil, errors.Errorf("%s: want %d shape argument(s) %v, got %d", f.Name, len(f.Params), f.Params, len(args))
	}
	return f.ctor(args...)
}

// families is the static table of supported families, sorted by name.
// The argument count is checked against Params before the constructor
// runs, so constructors validate shape domains only.
var families = []Family{
	{"arcsine", nil, newArcsine},
	{"beta", []string{"a", "b"}, newBeta},
	{"cauchy", nil, newCauchy},
	{"chi", []string{"df"}, newChi},
	{"chi2", []string{"df"}, newChi2},
	{"expon", nil, newExpon},
	{"f", []string{"dfn", "dfd"}, newF},
	{"fisk", []string{"c"}, newFisk},
	{"gamma", []string{"a"}, newGamma},
	{"genlogistic", []string{"c"}, newGenLogistic},
	{"gompertz", []string{"c"}, newGompertz},
	{"gumbel_l", nil, newGumbelL},
	{"gumbel_r", nil, newGumbelR},
	{"halfnorm", nil, newHalfNorm},
	{"hypsecant", nil, newHypSecant},
	{"invgamma", []string{"a"}, newInvGamma},
	{"laplace", nil, newLaplace},
	{"logistic", nil, newLogistic},
	{"loglaplace", []string{"c"}, newLogLaplace},
	{"lognorm", []string{"s"}, newLognorm},
	{"lomax", []string{"c"}, newLomax},
	{"norm", nil, newNorm},
	{"pareto", []string{"b"}, newPareto},
	{"rayleigh", nil, newRayleigh},
	{"t", []string{"df"}, newT},
	{"triang", []string{"c"}, newTriang},
	{"uniform", nil, newUniform},
	{"weibull_max", []string{"c"}, newWeibullMax},
	{"weibull_min", []string{"c"}, newWeibullMin},
}

// Families returns the table of supported distribution families,
// sorted by name. The caller must not modify the returned slice.
func Families() []Family {
	return families
}

// Lookup returns the family with the given name.
func Lookup(name string) (Family, bool) {
	for _, f := range families {
		if f.Name == name {
			return f, true
		}
	}
	return Family{}, false
}

func positive(name, param string, v float64) error {
	if !(v > 0) {
		return errors.Errorf("%s: shape parameter %s must be positive, got %v", name, param, v)
	}
	return nil
}

func newArcsine(args ...float64) (Dist, error) {
	return arcsineDist{}, nil
}

func newCauchy(args ...float64) (Dist, error) {
	return cauchyDist{}, nil
}

func newFisk(args ...float64) (Dist, error) {
	if err := positive("fisk", "c", args[0]); err != nil {
		return nil, err
	}
	return fiskDist{args[0]}, nil
}

func newGenLogistic(args ...float64) (Dist, error) {
	if err := positive("genlogistic", "c", args[0]); err != nil {
		return nil, err
	}
	return genLogisticDist{args[0]}, nil
}

func newGompertz(args ...float64) (Dist, error) {
	if err := positive("gompertz", "c", args[0]); err != nil {
		return nil, err
	}
	return gompertzDist{args[0]}, nil
}

func newGumbelL(args ...float64) (Dist, error) {
	return gumbelLDist{}, nil
}

func newHalfNorm(args ...float64) (Dist, error) {
	return halfNormDist{}, nil
}

func newHypSecant(args ...float64) (Dist, error) {
	return hypSecantDist{}, nil
}

func newLogLaplace(args ...float64) (Dist, error) {
	if err := positive("loglaplace", "c", args[0]); err != nil {
		return nil, err
	}
	return logLaplaceDist{args[0]}, nil
}

func newLomax(args ...float64) (Dist, error) {
	if err := positive("lomax", "c", args[0]); err != nil {
		return nil, err
	}
	return lomaxDist{args[0]}, nil
}

func newRayleigh(args ...float64) (Dist, error) {
	return rayleighDist{}, nil
}

func newWeibullMax(args ...float64) (Dist, error) {
	if err := positive("weibull_max", "c", args[0]); err != nil {
		return nil, err
	}
	return weibullMaxDist{args[0]}, nil
}
