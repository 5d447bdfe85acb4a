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

package yamlloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"rivaas.dev/routeconf"
	"rivaas.dev/routeconf/route"
)

// Loader parses YAML route configuration documents. It mirrors the XML
// dialect with snake_case keys and natively typed values.
type Loader struct {
	importer routeconf.Importer
}

// New creates a YAML route loader. The importer resolves import
// declarations into sub-tables; pass the routeconf.Resolver the loader is
// registered on.
func New(importer routeconf.Importer) *Loader {
	return &Loader{importer: importer}
}

// Supports reports whether the resource is a YAML route file: the
// extension is .yml or .yaml and the type hint, if given, is "yaml".
func (l *Loader) Supports(resource, typ string) bool {
	ext := strings.ToLower(filepath.Ext(resource))
	if ext != ".yml" && ext != ".yaml" {
		return false
	}
	return typ == "" || typ == "yaml"
}

// Load reads and parses one YAML route file into a route collection.
// On error no partial collection is returned.
func (l *Loader) Load(path string) (*route.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read route file %q: %w", path, err)
	}

	// Decode into an ordered map so the table keeps document order.
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, &routeconf.SchemaError{Path: path, Err: err}
	}

	c := route.NewCollection()
	if doc == nil {
		return c, nil
	}
	entries, ok := doc.(yaml.MapSlice)
	if !ok {
		return nil, &routeconf.SchemaError{Path: path, Err: errors.New("document root must be a mapping of route names")}
	}

	for _, item := range entries {
		name := fmt.Sprintf("%v", item.Key)
		spec, ok := item.Value.(yaml.MapSlice)
		if !ok {
			return nil, &routeconf.SchemaError{Path: path, Err: fmt.Errorf("entry %q must be a mapping", name)}
		}
		fields := fieldMap(spec)

		if _, isImport := fields["resource"]; isImport {
			err = l.parseImport(c, name, fields, path)
		} else {
			err = l.parseRoute(c, name, fields, path)
		}
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// fieldMap flattens an ordered entry mapping into a lookup map. Duplicate
// keys cannot occur: the decoder rejects them.
func fieldMap(spec yaml.MapSlice) map[string]any {
	fields := make(map[string]any, len(spec))
	for _, item := range spec {
		fields[fmt.Sprintf("%v", item.Key)] = item.Value
	}
	return fields
}
