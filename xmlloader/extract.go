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
	"rivaas.dev/routeconf/value"
)

// configTags is the recognized set of route/import children, in the order
// error messages list them.
var configTags = []string{"path", "prefix", "default", "requirement", "option", "condition", "exclude"}

// configs is the shared tuple extracted from a route or import element.
type configs struct {
	defaults     map[string]value.Value
	requirements map[string]string
	options      map[string]value.Value
	condition    string
	paths        map[string]string // locale -> path, "" for the unlocalized form
	prefixes     map[string]string // locale -> prefix
	excludes     []string          // exclude declarations (imports only)
}

// extractConfigs scans the direct in-namespace children of a route or
// import element and folds in the synthesized attribute defaults. Only
// direct children count: list and map elements nested inside a default are
// themselves in the routing namespace and must not be mistaken for sibling
// declarations. name identifies the element (route id or import resource)
// in error messages.
func extractConfigs(el *Element, name, path string) (*configs, error) {
	cfg := &configs{
		defaults:     make(map[string]value.Value),
		requirements: make(map[string]string),
		options:      make(map[string]value.Value),
		paths:        make(map[string]string),
		prefixes:     make(map[string]string),
	}

	for _, child := range el.Children {
		if child.Space != Namespace {
			continue
		}
		switch child.Local {
		case "path":
			cfg.paths[child.Attribute("locale")] = child.Text()
		case "prefix":
			cfg.prefixes[child.Attribute("locale")] = child.Text()
		case "default":
			key, err := requireKey(child, path)
			if err != nil {
				return nil, err
			}
			v, err := parseDefault(child, path, 0)
			if err != nil {
				return nil, err
			}
			cfg.defaults[key] = v
		case "requirement":
			key, err := requireKey(child, path)
			if err != nil {
				return nil, err
			}
			cfg.requirements[key] = child.Text()
		case "option":
			key, err := requireKey(child, path)
			if err != nil {
				return nil, err
			}
			cfg.options[key] = coerce(child.Text())
		case "condition":
			// Last condition wins when several are declared.
			cfg.condition = child.Text()
		case "exclude":
			cfg.excludes = append(cfg.excludes, child.Text())
		default:
			return nil, &routeconf.UnknownElementError{Element: child.Local, Path: path, Allowed: configTags}
		}
	}

	if err := cfg.foldAttributes(el, name, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// foldAttributes synthesizes defaults and options from route/import
// attributes, conflict-checking against keys already set through default
// children.
func (c *configs) foldAttributes(el *Element, name, path string) error {
	if controller := el.Attribute("controller"); controller != "" {
		if _, exists := c.defaults["_controller"]; exists {
			return &routeconf.ConflictingDefaultError{Key: "_controller", Element: name, Path: path}
		}
		c.defaults["_controller"] = value.String(controller)
	}
	if locale := el.Attribute("locale"); locale != "" {
		c.defaults["_locale"] = value.String(locale)
	}
	if format := el.Attribute("format"); format != "" {
		c.defaults["_format"] = value.String(format)
	}
	if el.HasAttribute("utf8") {
		c.options["utf8"] = coerce(el.Attribute("utf8"))
	}
	if el.HasAttribute("stateless") {
		if _, exists := c.defaults["_stateless"]; exists {
			return &routeconf.ConflictingDefaultError{Key: "_stateless", Element: name, Path: path}
		}
		c.defaults["_stateless"] = coerce(el.Attribute("stateless"))
	}
	return nil
}

// requireKey returns the key attribute of a default/requirement/option
// declaration, which must be non-empty.
func requireKey(el *Element, path string) (string, error) {
	key := el.Attribute("key")
	if key == "" {
		return "", &routeconf.MissingAttributeError{Attribute: "key", Element: el.Local, Path: path}
	}
	return key, nil
}
