// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/probscale/go-probscale/dist"
)

// ProbitName is the alias bound to the standard normal family. A
// probit scale is by construction identical to an unparameterized
// "norm" scale.
const ProbitName = "probit"

// A Registry holds the named probability scales, one per distribution
// family plus the probit alias. Build it once at startup and treat it
// as read-only; lookups need no locking after that.
type Registry struct {
	prefix   string
	families map[string]dist.Family
	names    []string
}

// NewRegistry returns a registry binding every family in
// dist.Families. prefix, which may be empty, is prepended to every
// scale name.
func NewRegistry(prefix string) *Registry {
	r := &Registry{
		prefix:   prefix,
		families: make(map[string]dist.Family),
	}
	for _, f := range dist.Families() {
		r.families[prefix+f.Name] = f
	}
	if norm, ok := dist.Lookup("norm"); ok {
		r.families[prefix+ProbitName] = norm
	}
	r.names = make([]string, 0, len(r.families))
	for name := range r.families {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	return r
}

// Prefix returns the prefix applied to the family names when the
// scale names were generated.
func (r *Registry) Prefix() string { return r.prefix }

// Names returns the sorted list of registered scale names. The caller
// must not modify the returned slice.
func (r *Registry) Names() []string { return r.names }

// Lookup returns the distribution family registered under name.
func (r *Registry) Lookup(name string) (dist.Family, bool) {
	f, ok := r.families[name]
	return f, ok
}

// New builds the scale registered under name. Shape arguments,
// location/scale, the out-of-domain policy, and percentage labeling
// come from opts.
func (r *Registry) New(name string, opts ...Option) (*Scale, error) {
	f, ok := r.families[name]
	if !ok {
		return nil, errors.Errorf("unknown scale %q", name)
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	d, err := f.New(c.args...)
	if err != nil {
		return nil, errors.Wrapf(err, "scale %q", name)
	}
	return New(name, d, opts...)
}
