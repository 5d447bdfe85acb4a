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
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"rivaas.dev/routeconf"
	"rivaas.dev/routeconf/route"
)

// setSplitter splits schemes and methods attributes on runs of whitespace,
// commas, and pipes.
var setSplitter = regexp.MustCompile(`[\s,|]+`)

// Loader parses XML route configuration documents.
type Loader struct {
	importer routeconf.Importer
}

// New creates an XML route loader. The importer resolves import
// declarations into sub-tables; pass the routeconf.Resolver the loader is
// registered on.
func New(importer routeconf.Importer) *Loader {
	return &Loader{importer: importer}
}

// Supports reports whether the resource is an XML route file: the
// extension is .xml and the type hint, if given, is "xml".
func (l *Loader) Supports(resource, typ string) bool {
	if strings.ToLower(filepath.Ext(resource)) != ".xml" {
		return false
	}
	return typ == "" || typ == "xml"
}

// Load reads, validates, and parses one XML route file into a route
// collection. On error no partial collection is returned.
func (l *Loader) Load(path string) (*route.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read route file %q: %w", path, err)
	}
	if err := validateDocument(data, path); err != nil {
		return nil, err
	}

	root, err := ParseDocument(bytes.NewReader(data))
	if err != nil {
		return nil, &routeconf.SchemaError{Path: path, Err: err}
	}

	c := route.NewCollection()
	for _, el := range root.Children {
		// Foreign-namespace elements are permitted for extensibility.
		if el.Space != Namespace {
			continue
		}
		switch el.Local {
		case "route":
			err = l.parseRoute(c, el, path)
		case "import":
			err = l.parseImport(c, el, path)
		default:
			err = &routeconf.UnknownElementError{Element: el.Local, Path: path, Allowed: []string{"route", "import"}}
		}
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// parseRoute builds one or more table entries from a route element and
// inserts them into c.
func (l *Loader) parseRoute(c *route.Collection, el *Element, path string) error {
	id := el.Attribute("id")
	if id == "" {
		return &routeconf.MissingAttributeError{Attribute: "id", Element: "route", Path: path}
	}

	cfg, err := extractConfigs(el, id, path)
	if err != nil {
		return err
	}
	if len(cfg.excludes) > 0 {
		return &routeconf.UnknownElementError{
			Element: "exclude",
			Path:    path,
			Allowed: []string{"path", "default", "requirement", "option", "condition"},
		}
	}

	pathAttr := el.Attribute("path")
	switch {
	case pathAttr == "" && len(cfg.paths) == 0:
		return &routeconf.MissingAttributeError{Attribute: "path", Element: id, Path: path}
	case pathAttr != "" && len(cfg.paths) > 0:
		return &routeconf.MutuallyExclusiveError{
			First:   "the path attribute",
			Second:  "path child elements",
			Element: id,
			Path:    path,
		}
	}

	created := route.AddLocalized(c, id, pathAttr, cfg.paths)
	created.AddDefaults(cfg.defaults)
	created.AddRequirements(cfg.requirements)
	created.AddOptions(cfg.options)
	created.SetHost(el.Attribute("host"))
	created.SetSchemes(splitSet(el.Attribute("schemes")))
	created.SetMethods(splitSet(el.Attribute("methods")))
	if cfg.condition != "" {
		created.SetCondition(cfg.condition)
	}
	return nil
}

// splitSet tokenizes a schemes/methods attribute, dropping empty tokens.
// An empty attribute yields an empty (non-nil, so still overriding) set,
// meaning no restriction.
func splitSet(attr string) []string {
	out := []string{}
	for _, token := range setSplitter.Split(attr, -1) {
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}
