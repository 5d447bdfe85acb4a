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

package routeconf

import (
	"fmt"
	"strings"
)

// All loader errors are fatal: a loader never returns a partial route table
// alongside an error. Every error carries the source file path so failures
// in deep import chains stay diagnosable.

// UnknownElementError reports an unrecognized declaration inside a route
// configuration file: an unexpected top-level tag, an unexpected child of a
// route or import, an unexpected typed-value tag, or an unsupported YAML key.
type UnknownElementError struct {
	Element string   // offending tag or key
	Path    string   // source file path
	Allowed []string // recognized set at this position, if bounded
}

// Error returns a message naming the offending element and the source path.
func (e *UnknownElementError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("unknown element %q in %q", e.Element, e.Path)
	}
	return fmt.Sprintf("unknown element %q in %q, expected one of: %s",
		e.Element, e.Path, strings.Join(e.Allowed, ", "))
}

// MissingAttributeError reports a required attribute or key that is absent
// or empty, such as a route without an id or an import without a resource.
type MissingAttributeError struct {
	Attribute string // missing attribute or key
	Element   string // element or entry it was expected on
	Path      string // source file path
}

// Error returns a message naming the attribute, element, and source path.
func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("element %q in %q must have a %q attribute", e.Element, e.Path, e.Attribute)
}

// MutuallyExclusiveError reports two declarations that cannot be combined,
// such as a path attribute next to path children, or an exclude attribute
// next to exclude children.
type MutuallyExclusiveError struct {
	First   string // first declaration
	Second  string // conflicting declaration
	Element string // element or entry carrying both
	Path    string // source file path
}

// Error returns a message naming both declarations and the source path.
func (e *MutuallyExclusiveError) Error() string {
	return fmt.Sprintf("element %q in %q must not declare both %s and %s",
		e.Element, e.Path, e.First, e.Second)
}

// ConflictingDefaultError reports a synthesized default (from an attribute
// such as controller or stateless) that collides with the same key declared
// through a default child.
type ConflictingDefaultError struct {
	Key     string // colliding defaults key, e.g. "_controller"
	Element string // route id or import resource
	Path    string // source file path
}

// Error returns a message naming the key, element, and source path.
func (e *ConflictingDefaultError) Error() string {
	return fmt.Sprintf("%q must not specify both the attribute and the defaults key %q for %q",
		e.Path, e.Key, e.Element)
}

// SchemaError reports a document that failed syntax or schema validation.
// The underlying validator error is wrapped and reachable via Unwrap.
type SchemaError struct {
	Path string // source file path
	Err  error  // underlying parser or validator error
}

// Error returns a message with the source path and the underlying failure.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("document %q does not validate: %v", e.Path, e.Err)
}

// Unwrap returns the underlying validation error.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// DepthError reports typed-value nesting beyond the loader's recursion
// ceiling. Documents can be operator- or attacker-supplied, so nesting
// depth is capped instead of trusting the input.
type DepthError struct {
	Path  string // source file path
	Limit int    // configured ceiling
}

// Error returns a message with the source path and the exceeded limit.
func (e *DepthError) Error() string {
	return fmt.Sprintf("value nesting in %q exceeds the maximum depth of %d", e.Path, e.Limit)
}

// NotFoundError reports a resource that could not be located, either
// directly or relative to the file importing it.
type NotFoundError struct {
	Resource string // resource as written in the configuration
	Referrer string // file the resource was referenced from, if any
	Err      error  // underlying filesystem error, if any
}

// Error returns a message naming the resource and, when known, the referrer.
func (e *NotFoundError) Error() string {
	if e.Referrer != "" {
		return fmt.Sprintf("resource %q referenced from %q could not be found", e.Resource, e.Referrer)
	}
	return fmt.Sprintf("resource %q could not be found", e.Resource)
}

// Unwrap returns the underlying filesystem error, if any.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// LoaderNotFoundError reports that no registered loader supports a resource
// and type-hint combination.
type LoaderNotFoundError struct {
	Resource string // resource as written in the configuration
	Type     string // explicit type hint, if any
}

// Error returns a message naming the resource and the type hint.
func (e *LoaderNotFoundError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("no loader supports resource %q with type %q", e.Resource, e.Type)
	}
	return fmt.Sprintf("no loader supports resource %q", e.Resource)
}

// ImportCycleError reports an import chain that loops back into a file that
// is still being loaded.
type ImportCycleError struct {
	Chain []string // resources in loading order; the last one closes the loop
}

// Error returns the loading chain ending at the repeated resource.
func (e *ImportCycleError) Error() string {
	return fmt.Sprintf("circular import detected: %s", strings.Join(e.Chain, " > "))
}
