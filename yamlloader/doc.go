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

// Package yamlloader parses YAML route configuration documents into route
// collections.
//
// The YAML dialect mirrors the XML one with snake_case keys. A document is
// a mapping of route names to entries; an entry with a resource key is an
// import:
//
//	users:
//	    path: /users/{id}
//	    methods: GET
//	    requirements:
//	        id: '\d+'
//
//	api:
//	    resource: api/*.yml
//	    prefix: /api
//	    name_prefix: api_
//
// Paths and import prefixes can be locale mappings instead of strings, in
// which case one table entry per locale is created. Defaults and options
// carry natively typed YAML values. Entries are processed in document
// order; unsupported keys are hard errors naming the key and the file.
package yamlloader
