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

// Package value provides the typed value model used for route parameter
// defaults and options.
//
// A Value is a tagged union over null, bool, int, float, string, ordered
// lists, and string-keyed maps - the same shapes a JSON document can hold.
// Route configuration files embed these values in XML or YAML syntax; the
// loaders convert them into Values so the route table carries typed data
// instead of raw strings.
//
// Values are constructed through the kind-specific constructors:
//
//	value.Bool(true)
//	value.List(value.Int(1), value.Int(2))
//	value.Map(map[string]value.Value{"page": value.Int(1)})
//
// The zero Value is Null.
package value
