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
	"rivaas.dev/routeconf"
	"rivaas.dev/routeconf/route"
)

// parseImport resolves an import element into sub-tables and merges them
// into c through an ImportDirective.
func (l *Loader) parseImport(c *route.Collection, el *Element, path string) error {
	resource := el.Attribute("resource")
	if resource == "" {
		return &routeconf.MissingAttributeError{Attribute: "resource", Element: "import", Path: path}
	}

	cfg, err := extractConfigs(el, resource, path)
	if err != nil {
		return err
	}

	prefix := el.Attribute("prefix")
	if prefix != "" && len(cfg.prefixes) > 0 {
		return &routeconf.MutuallyExclusiveError{
			First:   "the prefix attribute",
			Second:  "prefix child elements",
			Element: resource,
			Path:    path,
		}
	}

	excludes := cfg.excludes
	if attr := el.Attribute("exclude"); attr != "" {
		if len(excludes) > 0 {
			return &routeconf.MutuallyExclusiveError{
				First:   "the exclude attribute",
				Second:  "exclude child elements",
				Element: resource,
				Path:    path,
			}
		}
		excludes = []string{attr}
	}

	directive := &routeconf.ImportDirective{
		Prefix:              prefix,
		LocalizedPrefixes:   cfg.prefixes,
		NamePrefix:          el.Attribute("name-prefix"),
		Condition:           cfg.condition,
		TrailingSlashOnRoot: true,
		Defaults:            cfg.defaults,
		Requirements:        cfg.requirements,
		Options:             cfg.options,
	}
	if el.HasAttribute("host") {
		host := el.Attribute("host")
		directive.Host = &host
	}
	if el.HasAttribute("schemes") {
		directive.Schemes = splitSet(el.Attribute("schemes"))
	}
	if el.HasAttribute("methods") {
		directive.Methods = splitSet(el.Attribute("methods"))
	}
	if el.HasAttribute("trailing-slash-on-root") {
		directive.TrailingSlashOnRoot, err = coerceBool("trailing-slash-on-root", resource, path, el.Attribute("trailing-slash-on-root"))
		if err != nil {
			return err
		}
	}

	imported, err := l.importer.Import(resource, el.Attribute("type"), path, excludes)
	if err != nil {
		return err
	}
	return directive.Apply(c, imported)
}
