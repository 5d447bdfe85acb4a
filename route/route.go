// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package route

import (
	"maps"
	"slices"
	"strings"

	"rivaas.dev/routeconf/value"
)

// Route is one dispatchable path pattern together with its host, scheme, and
// method constraints and its default/requirement metadata.
//
// Defaults may carry synthesized keys such as "_controller", "_locale",
// "_format", "_stateless", and "_canonical_route"; options may carry the
// synthesized "utf8" key. Routes are mutable until the collection that holds
// them is handed to the dispatch layer.
type Route struct {
	path         string
	host         string
	schemes      []string
	methods      []string
	defaults     map[string]value.Value
	requirements map[string]string
	options      map[string]value.Value
	condition    string
}

// New creates a route for the given path pattern. The path is normalized to
// start with a single "/"; an empty path becomes "/".
func New(path string) *Route {
	r := &Route{
		defaults:     make(map[string]value.Value),
		requirements: make(map[string]string),
		options:      make(map[string]value.Value),
	}
	r.SetPath(path)
	return r
}

// SetPath replaces the path pattern, normalizing it to start with "/".
func (r *Route) SetPath(path string) *Route {
	r.path = "/" + strings.TrimLeft(strings.TrimSpace(path), "/")
	return r
}

// Path returns the normalized path pattern.
func (r *Route) Path() string {
	return r.path
}

// SetHost sets the host pattern. An empty host matches any host.
func (r *Route) SetHost(host string) *Route {
	r.host = host
	return r
}

// Host returns the host pattern (empty = any).
func (r *Route) Host() string {
	return r.host
}

// SetSchemes replaces the allowed URI schemes. Order is preserved.
// An empty set means no scheme restriction.
func (r *Route) SetSchemes(schemes []string) *Route {
	r.schemes = slices.Clone(schemes)
	return r
}

// Schemes returns the allowed URI schemes in declaration order.
func (r *Route) Schemes() []string {
	return r.schemes
}

// SetMethods replaces the allowed HTTP methods. Order is preserved.
// An empty set means no method restriction.
func (r *Route) SetMethods(methods []string) *Route {
	r.methods = slices.Clone(methods)
	return r
}

// Methods returns the allowed HTTP methods in declaration order.
func (r *Route) Methods() []string {
	return r.methods
}

// SetDefault sets one default parameter value, overwriting any existing one.
func (r *Route) SetDefault(name string, v value.Value) *Route {
	r.defaults[name] = v
	return r
}

// Default returns the default parameter value for name.
func (r *Route) Default(name string) (value.Value, bool) {
	v, ok := r.defaults[name]
	return v, ok
}

// HasDefault reports whether a default parameter value exists for name.
func (r *Route) HasDefault(name string) bool {
	_, ok := r.defaults[name]
	return ok
}

// AddDefaults merges the given defaults into the route, overwriting
// existing keys.
func (r *Route) AddDefaults(defaults map[string]value.Value) *Route {
	maps.Copy(r.defaults, defaults)
	return r
}

// Defaults returns the route's default parameter values.
func (r *Route) Defaults() map[string]value.Value {
	return r.defaults
}

// SetRequirement sets the regex requirement for one parameter.
func (r *Route) SetRequirement(name, regex string) *Route {
	r.requirements[name] = regex
	return r
}

// Requirement returns the regex requirement for name.
func (r *Route) Requirement(name string) (string, bool) {
	v, ok := r.requirements[name]
	return v, ok
}

// HasRequirement reports whether a requirement exists for name.
func (r *Route) HasRequirement(name string) bool {
	_, ok := r.requirements[name]
	return ok
}

// AddRequirements merges the given requirements into the route, overwriting
// existing keys.
func (r *Route) AddRequirements(requirements map[string]string) *Route {
	maps.Copy(r.requirements, requirements)
	return r
}

// Requirements returns the route's per-parameter regex requirements.
func (r *Route) Requirements() map[string]string {
	return r.requirements
}

// SetOption sets one route option, overwriting any existing one.
func (r *Route) SetOption(name string, v value.Value) *Route {
	r.options[name] = v
	return r
}

// Option returns the option value for name.
func (r *Route) Option(name string) (value.Value, bool) {
	v, ok := r.options[name]
	return v, ok
}

// HasOption reports whether an option exists for name.
func (r *Route) HasOption(name string) bool {
	_, ok := r.options[name]
	return ok
}

// AddOptions merges the given options into the route, overwriting
// existing keys.
func (r *Route) AddOptions(options map[string]value.Value) *Route {
	maps.Copy(r.options, options)
	return r
}

// Options returns the route's options.
func (r *Route) Options() map[string]value.Value {
	return r.options
}

// SetCondition sets the boolean guard expression evaluated at match time.
// The expression is carried opaquely; this package does not evaluate it.
func (r *Route) SetCondition(condition string) *Route {
	r.condition = condition
	return r
}

// Condition returns the guard expression (empty = unconditional).
func (r *Route) Condition() string {
	return r.condition
}

// Clone returns a deep copy of the route. The copy shares no maps or slices
// with the original, so localized duplication can configure copies freely.
func (r *Route) Clone() *Route {
	return &Route{
		path:         r.path,
		host:         r.host,
		schemes:      slices.Clone(r.schemes),
		methods:      slices.Clone(r.methods),
		defaults:     maps.Clone(r.defaults),
		requirements: maps.Clone(r.requirements),
		options:      maps.Clone(r.options),
		condition:    r.condition,
	}
}
