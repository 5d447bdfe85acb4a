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
	"slices"

	"rivaas.dev/routeconf/route"
)

// Loader turns one route configuration file into a route collection.
// Implementations parse a single format; the Resolver picks among them.
type Loader interface {
	// Load parses the file at path into a route collection.
	// On error no partial collection is returned.
	Load(path string) (*route.Collection, error)

	// Supports reports whether this loader handles the resource, either by
	// file extension or by the explicit type hint.
	Supports(resource, typ string) bool
}

// Importer resolves an import directive into the route collections it
// produces. The XML and YAML loaders call back into it for their import
// declarations; the Resolver is the production implementation.
type Importer interface {
	// Import locates resource relative to the referring file, selects a
	// loader for each matched file, and loads it. Glob resources can yield
	// several collections; plain resources yield exactly one. The exclude
	// patterns drop files from glob expansion.
	Import(resource, typ, referrer string, exclude []string) ([]*route.Collection, error)
}

// Resolver is an ordered loader registry with resource location and import
// cycle detection. It is the entry point for loading route configuration:
//
//	resolver := routeconf.NewResolver()
//	resolver.Register(xmlloader.New(resolver))
//	resolver.Register(yamlloader.New(resolver))
//	table, err := resolver.Load("routes.xml", "")
//
// Loading is a synchronous, single-threaded tree walk; a Resolver must not
// be used from multiple goroutines at once.
type Resolver struct {
	loaders []Loader
	locator *FileLocator

	// loading tracks the files currently being loaded, outermost first.
	// An import that resolves back into this chain is a cycle.
	loading []string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLocator replaces the default file locator, for example to add
// fallback search paths.
func WithLocator(locator *FileLocator) ResolverOption {
	return func(r *Resolver) {
		r.locator = locator
	}
}

// NewResolver creates a Resolver with no registered loaders.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{locator: NewFileLocator()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register appends a loader to the registry. Loaders are consulted in
// registration order.
func (r *Resolver) Register(l Loader) {
	r.loaders = append(r.loaders, l)
}

// Resolve returns the first registered loader that supports the resource
// and type hint.
func (r *Resolver) Resolve(resource, typ string) (Loader, error) {
	for _, l := range r.loaders {
		if l.Supports(resource, typ) {
			return l, nil
		}
	}
	return nil, &LoaderNotFoundError{Resource: resource, Type: typ}
}

// Load locates a resource (relative to the working directory), selects a
// loader, and loads it into a route collection.
func (r *Resolver) Load(resource, typ string) (*route.Collection, error) {
	path, err := r.locator.Locate(resource, "")
	if err != nil {
		return nil, err
	}
	return r.loadFile(path, typ)
}

// Import implements Importer. Resources containing glob metacharacters
// expand to every matching file in sorted order, minus the exclude
// patterns; each file loads into its own collection.
func (r *Resolver) Import(resource, typ, referrer string, exclude []string) ([]*route.Collection, error) {
	var paths []string
	if hasGlobMeta(resource) {
		located, err := r.locator.LocateGlob(resource, referrer, exclude)
		if err != nil {
			return nil, err
		}
		paths = located
	} else {
		path, err := r.locator.Locate(resource, referrer)
		if err != nil {
			return nil, err
		}
		paths = []string{path}
	}

	collections := make([]*route.Collection, 0, len(paths))
	for _, path := range paths {
		c, err := r.loadFile(path, typ)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}
	return collections, nil
}

// loadFile runs one located file through its loader, guarding against
// import cycles.
func (r *Resolver) loadFile(path, typ string) (*route.Collection, error) {
	if slices.Contains(r.loading, path) {
		chain := append(slices.Clone(r.loading), path)
		return nil, &ImportCycleError{Chain: chain}
	}

	loader, err := r.Resolve(path, typ)
	if err != nil {
		return nil, err
	}

	r.loading = append(r.loading, path)
	c, err := loader.Load(path)
	r.loading = r.loading[:len(r.loading)-1]
	if err != nil {
		return nil, err
	}
	return c, nil
}
