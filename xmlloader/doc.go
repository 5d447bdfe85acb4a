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

// Package xmlloader parses XML route configuration documents into route
// collections.
//
// Documents use the https://rivaas.dev/schema/routing namespace and are
// validated against the embedded routing schema before parsing. A document
// declares routes and imports:
//
//	<routes xmlns="https://rivaas.dev/schema/routing">
//	    <route id="users" path="/users/{id}" methods="GET">
//	        <requirement key="id">\d+</requirement>
//	        <default key="page"><int>1</int></default>
//	    </route>
//	    <import resource="api/*.xml" prefix="/api" name-prefix="api_"/>
//	</routes>
//
// Routes can be localized by replacing the path attribute with per-locale
// path children; each locale becomes its own table entry named
// "id.locale". Imports pull in other route files (of any registered
// format), prefix their paths and names, override host, schemes, methods,
// and condition when declared, and merge defaults, requirements, and
// options additively into every imported route.
//
// Default parameter values embed a JSON-like typed model in XML syntax:
// bool, int, float, string, list, and map elements nest arbitrarily (up to
// a fixed depth ceiling), and an xsi:nil="true" marker makes a value null.
//
// Elements outside the routing namespace are ignored wherever they appear,
// so documents can carry tooling-specific annotations. In-namespace
// elements that the grammar does not recognize are hard errors naming the
// tag and the file.
package xmlloader
