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

package xmlloader

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/jacoelho/xsd"

	"rivaas.dev/routeconf"
)

// Namespace is the fixed namespace URI for route configuration documents.
// Elements outside this namespace are ignored for extensibility.
const Namespace = "https://rivaas.dev/schema/routing"

// xsiNamespace is the XML Schema instance namespace; its nil attribute
// marks a default value as explicitly null.
const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

//go:embed routing.xsd
var schemaFS embed.FS

var (
	schemaOnce sync.Once
	schema     *xsd.Schema
	schemaErr  error
)

// routingSchema compiles the embedded routing schema once per process.
func routingSchema() (*xsd.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = xsd.Load(schemaFS, "routing.xsd")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile embedded routing schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// validateDocument checks the raw document bytes against the routing
// schema before any parsing happens.
func validateDocument(data []byte, path string) error {
	s, err := routingSchema()
	if err != nil {
		return err
	}
	if err := s.Validate(bytes.NewReader(data)); err != nil {
		return &routeconf.SchemaError{Path: path, Err: err}
	}
	return nil
}
