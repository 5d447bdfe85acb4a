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
	"iter"
	"slices"
	"strings"

	"rivaas.dev/routeconf/value"
)

// Collection is an ordered route table keyed by unique route name.
//
// Adding a route under an existing name replaces the previous entry in
// place: the route keeps its original position instead of moving to the
// end. Collections are built synchronously by a loader and are not safe
// for concurrent mutation.
type Collection struct {
	order  []string
	routes map[string]*Route
}

// NewCollection creates an empty route collection.
func NewCollection() *Collection {
	return &Collection{
		routes: make(map[string]*Route),
	}
}

// Add inserts a route under the given name. If the name already exists the
// new route replaces the old one at its original position.
func (c *Collection) Add(name string, r *Route) {
	if _, exists := c.routes[name]; !exists {
		c.order = append(c.order, name)
	}
	c.routes[name] = r
}

// Get returns the route registered under name.
func (c *Collection) Get(name string) (*Route, bool) {
	r, ok := c.routes[name]
	return r, ok
}

// Remove deletes the route registered under name, if any.
func (c *Collection) Remove(name string) {
	if _, ok := c.routes[name]; !ok {
		return
	}
	delete(c.routes, name)
	c.order = slices.DeleteFunc(c.order, func(n string) bool { return n == name })
}

// Len returns the number of routes in the collection.
func (c *Collection) Len() int {
	return len(c.order)
}

// Names returns the route names in table order.
func (c *Collection) Names() []string {
	return slices.Clone(c.order)
}

// All iterates over the routes in table order.
func (c *Collection) All() iter.Seq2[string, *Route] {
	return func(yield func(string, *Route) bool) {
		for _, name := range c.order {
			if !yield(name, c.routes[name]) {
				return
			}
		}
	}
}

// AddCollection appends another collection after the existing entries,
// preserving its internal order. Name collisions replace the existing entry
// at its original position.
func (c *Collection) AddCollection(other *Collection) {
	for name, r := range other.All() {
		c.Add(name, r)
	}
}

// AddPrefix prepends a path prefix to every route. The prefix is trimmed of
// surrounding whitespace and slashes; an empty prefix is a no-op. Paths keep
// their leading slash, so a route at "/" under prefix "api" ends at "/api/".
func (c *Collection) AddPrefix(prefix string) {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return
	}
	for _, r := range c.All() {
		r.SetPath("/" + prefix + r.Path())
	}
}

// AddNamePrefix prepends a prefix to every route name, keeping table order.
// Canonical-route defaults created by localized expansion are rewritten so
// they keep pointing at the (now prefixed) base name.
func (c *Collection) AddNamePrefix(prefix string) {
	if prefix == "" {
		return
	}
	renamed := make(map[string]*Route, len(c.routes))
	for i, name := range c.order {
		r := c.routes[name]
		c.order[i] = prefix + name
		renamed[prefix+name] = r
		if canonical, ok := r.Default("_canonical_route"); ok {
			if base, isString := canonical.StringValue(); isString {
				r.SetDefault("_canonical_route", value.String(prefix+base))
			}
		}
	}
	c.routes = renamed
}

// SetHost sets the host pattern on every route.
func (c *Collection) SetHost(host string) {
	for _, r := range c.All() {
		r.SetHost(host)
	}
}

// SetCondition sets the guard expression on every route.
func (c *Collection) SetCondition(condition string) {
	for _, r := range c.All() {
		r.SetCondition(condition)
	}
}

// SetSchemes sets the allowed schemes on every route.
func (c *Collection) SetSchemes(schemes []string) {
	for _, r := range c.All() {
		r.SetSchemes(schemes)
	}
}

// SetMethods sets the allowed methods on every route.
func (c *Collection) SetMethods(methods []string) {
	for _, r := range c.All() {
		r.SetMethods(methods)
	}
}

// AddDefaults merges defaults into every route without overwriting keys a
// route already defines.
func (c *Collection) AddDefaults(defaults map[string]value.Value) {
	if len(defaults) == 0 {
		return
	}
	for _, r := range c.All() {
		for name, v := range defaults {
			if !r.HasDefault(name) {
				r.SetDefault(name, v)
			}
		}
	}
}

// AddRequirements merges requirements into every route without overwriting
// keys a route already defines.
func (c *Collection) AddRequirements(requirements map[string]string) {
	if len(requirements) == 0 {
		return
	}
	for _, r := range c.All() {
		for name, regex := range requirements {
			if !r.HasRequirement(name) {
				r.SetRequirement(name, regex)
			}
		}
	}
}

// AddOptions merges options into every route without overwriting keys a
// route already defines.
func (c *Collection) AddOptions(options map[string]value.Value) {
	if len(options) == 0 {
		return
	}
	for _, r := range c.All() {
		for name, v := range options {
			if !r.HasOption(name) {
				r.SetOption(name, v)
			}
		}
	}
}
