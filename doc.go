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

// Package routeconf loads declarative route configuration files into the
// in-memory route table consumed by a request-dispatch layer.
//
// Route files declare individual routes (path, host, methods, schemes,
// parameter defaults, requirements, and a guard condition) and imports of
// other route files, with prefixing, locale handling, and attribute
// overrides applied to every imported route. Loading is a synchronous
// recursive-descent walk: the resulting collection is exclusively owned by
// the caller once a loader returns.
//
// # Architecture
//
//   - Loader implementations parse one format each: xmlloader for the
//     XSD-validated XML dialect, yamlloader for its YAML equivalent
//   - Resolver selects a loader per resource (by extension or explicit type
//     hint), locates files relative to their importer, expands glob
//     imports, and detects import cycles
//   - route.Collection is the ordered route table with the bulk transforms
//     imports apply (prefixing, renaming, additive merges)
//   - value.Value is the typed model for parameter defaults
//
// # Quick Start
//
//	resolver := routeconf.NewResolver()
//	resolver.Register(xmlloader.New(resolver))
//	resolver.Register(yamlloader.New(resolver))
//
//	table, err := resolver.Load("routes.xml", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for name, r := range table.All() {
//	    fmt.Println(name, r.Path())
//	}
//
// # Error Handling
//
// All loading errors are fatal; no partial tables are returned. Errors are
// typed (UnknownElementError, MissingAttributeError, MutuallyExclusiveError,
// ConflictingDefaultError, SchemaError, NotFoundError, LoaderNotFoundError,
// ImportCycleError, DepthError) and work with errors.Is and errors.As.
// Every message names the source file path.
package routeconf
