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

// Package route provides the in-memory route table built by the
// configuration loaders.
//
// This package contains:
//   - Route: one dispatchable path pattern with host/scheme/method
//     constraints, parameter defaults, requirements, options, and an
//     optional guard condition
//   - Collection: an ordered, name-keyed route table with the bulk
//     transforms imports rely on (prefixing, renaming, additive merges)
//   - AddLocalized / ApplyPrefix: localized route expansion, where one
//     declared route becomes one entry per locale
//
// Collections are produced synchronously by a loader and consumed by a
// request-dispatch layer; they are not safe for concurrent mutation.
//
// # Merge Semantics
//
// Collection.Add and AddCollection replace colliding names in place,
// keeping the original table position. AddDefaults, AddRequirements, and
// AddOptions merge additively: keys a route already defines win over the
// merged-in values. Set* operations overwrite every entry.
package route
