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
	"fmt"
	"regexp"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cast"

	"rivaas.dev/routeconf"
	"rivaas.dev/routeconf/route"
	"rivaas.dev/routeconf/value"
)

// setSplitter splits scalar schemes/methods values the same way the XML
// dialect splits its attributes.
var setSplitter = regexp.MustCompile(`[\s,|]+`)

var routeKeys = keySet(
	"path", "host", "schemes", "methods", "defaults", "requirements",
	"options", "condition", "controller", "locale", "format", "utf8",
	"stateless",
)

var importKeys = keySet(
	"resource", "type", "prefix", "name_prefix", "trailing_slash_on_root",
	"exclude", "host", "schemes", "methods", "defaults", "requirements",
	"options", "condition", "controller", "locale", "format", "utf8",
	"stateless",
)

func keySet(keys ...string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// checkKeys rejects unsupported keys, listing the recognized set.
func checkKeys(fields map[string]any, allowed map[string]bool, path string) error {
	for key := range fields {
		if !allowed[key] {
			sorted := make([]string, 0, len(allowed))
			for k := range allowed {
				sorted = append(sorted, k)
			}
			sort.Strings(sorted)
			return &routeconf.UnknownElementError{Element: key, Path: path, Allowed: sorted}
		}
	}
	return nil
}

// parseRoute builds one or more table entries from a route mapping and
// inserts them into c.
func (l *Loader) parseRoute(c *route.Collection, name string, fields map[string]any, path string) error {
	if err := checkKeys(fields, routeKeys, path); err != nil {
		return err
	}

	rawPath, ok := fields["path"]
	if !ok {
		return &routeconf.MissingAttributeError{Attribute: "path", Element: name, Path: path}
	}
	var single string
	var localized map[string]string
	switch p := rawPath.(type) {
	case string:
		single = p
	case yaml.MapSlice:
		var err error
		if localized, err = asStringMap(p, path); err != nil {
			return err
		}
	default:
		return &routeconf.SchemaError{Path: path, Err: fmt.Errorf("route %q path must be a string or a locale mapping", name)}
	}

	defaults, err := asValueMap(fields["defaults"], path)
	if err != nil {
		return err
	}
	requirements, err := asStringMap(fields["requirements"], path)
	if err != nil {
		return err
	}
	options, err := asValueMap(fields["options"], path)
	if err != nil {
		return err
	}
	if err := foldSynthesized(fields, defaults, options, name, path); err != nil {
		return err
	}

	host, err := asString(fields["host"], path)
	if err != nil {
		return err
	}
	schemes, err := asSet(fields["schemes"], path)
	if err != nil {
		return err
	}
	methods, err := asSet(fields["methods"], path)
	if err != nil {
		return err
	}
	condition, err := asString(fields["condition"], path)
	if err != nil {
		return err
	}

	created := route.AddLocalized(c, name, single, localized)
	created.AddDefaults(defaults)
	created.AddRequirements(requirements)
	created.AddOptions(options)
	created.SetHost(host)
	created.SetSchemes(schemes)
	created.SetMethods(methods)
	if condition != "" {
		created.SetCondition(condition)
	}
	return nil
}

// parseImport resolves an import mapping into sub-tables and merges them
// into c through an ImportDirective.
func (l *Loader) parseImport(c *route.Collection, name string, fields map[string]any, path string) error {
	if err := checkKeys(fields, importKeys, path); err != nil {
		return err
	}

	resource, err := asString(fields["resource"], path)
	if err != nil {
		return err
	}
	if resource == "" {
		return &routeconf.MissingAttributeError{Attribute: "resource", Element: name, Path: path}
	}
	typ, err := asString(fields["type"], path)
	if err != nil {
		return err
	}

	directive := &routeconf.ImportDirective{TrailingSlashOnRoot: true}
	switch p := fields["prefix"].(type) {
	case nil:
	case string:
		directive.Prefix = p
	case yaml.MapSlice:
		if directive.LocalizedPrefixes, err = asStringMap(p, path); err != nil {
			return err
		}
	default:
		return &routeconf.SchemaError{Path: path, Err: fmt.Errorf("import %q prefix must be a string or a locale mapping", resource)}
	}

	if directive.NamePrefix, err = asString(fields["name_prefix"], path); err != nil {
		return err
	}
	if raw, ok := fields["trailing_slash_on_root"]; ok {
		if directive.TrailingSlashOnRoot, err = asBool(raw, "trailing_slash_on_root", path); err != nil {
			return err
		}
	}
	if raw, ok := fields["host"]; ok {
		host, err := asString(raw, path)
		if err != nil {
			return err
		}
		directive.Host = &host
	}
	if raw, ok := fields["schemes"]; ok {
		if directive.Schemes, err = asSet(raw, path); err != nil {
			return err
		}
	}
	if raw, ok := fields["methods"]; ok {
		if directive.Methods, err = asSet(raw, path); err != nil {
			return err
		}
	}
	if directive.Condition, err = asString(fields["condition"], path); err != nil {
		return err
	}

	if directive.Defaults, err = asValueMap(fields["defaults"], path); err != nil {
		return err
	}
	if directive.Requirements, err = asStringMap(fields["requirements"], path); err != nil {
		return err
	}
	if directive.Options, err = asValueMap(fields["options"], path); err != nil {
		return err
	}
	if err := foldSynthesized(fields, directive.Defaults, directive.Options, resource, path); err != nil {
		return err
	}

	excludes, err := asSet(fields["exclude"], path)
	if err != nil {
		return err
	}

	imported, err := l.importer.Import(resource, typ, path, excludes)
	if err != nil {
		return err
	}
	return directive.Apply(c, imported)
}

// foldSynthesized folds the controller/locale/format/utf8/stateless keys
// into the defaults and options maps, conflict-checking against keys the
// entry declared explicitly.
func foldSynthesized(fields map[string]any, defaults map[string]value.Value, options map[string]value.Value, name, path string) error {
	if raw, ok := fields["controller"]; ok {
		controller, err := asString(raw, path)
		if err != nil {
			return err
		}
		if controller != "" {
			if _, exists := defaults["_controller"]; exists {
				return &routeconf.ConflictingDefaultError{Key: "_controller", Element: name, Path: path}
			}
			defaults["_controller"] = value.String(controller)
		}
	}
	if raw, ok := fields["locale"]; ok {
		locale, err := asString(raw, path)
		if err != nil {
			return err
		}
		if locale != "" {
			defaults["_locale"] = value.String(locale)
		}
	}
	if raw, ok := fields["format"]; ok {
		format, err := asString(raw, path)
		if err != nil {
			return err
		}
		if format != "" {
			defaults["_format"] = value.String(format)
		}
	}
	if raw, ok := fields["utf8"]; ok {
		utf8, err := asBool(raw, "utf8", path)
		if err != nil {
			return err
		}
		options["utf8"] = value.Bool(utf8)
	}
	if raw, ok := fields["stateless"]; ok {
		if _, exists := defaults["_stateless"]; exists {
			return &routeconf.ConflictingDefaultError{Key: "_stateless", Element: name, Path: path}
		}
		stateless, err := asBool(raw, "stateless", path)
		if err != nil {
			return err
		}
		defaults["_stateless"] = value.Bool(stateless)
	}
	return nil
}

// asString converts a scalar field to a string; nil becomes "".
func asString(v any, path string) (string, error) {
	if v == nil {
		return "", nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", &routeconf.SchemaError{Path: path, Err: err}
	}
	return s, nil
}

// asBool converts a boolean field, accepting the shared scalar coercion
// tokens when the document quotes the value.
func asBool(v any, key, path string) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		switch t {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
	}
	return false, &routeconf.SchemaError{Path: path, Err: fmt.Errorf("key %q must be a boolean, got %v", key, v)}
}

// asSet converts a schemes/methods/exclude field: a scalar is split on
// whitespace, commas, and pipes; a sequence is taken verbatim. The result
// is non-nil, so a declared empty set still overrides on imports.
func asSet(v any, path string) ([]string, error) {
	out := []string{}
	switch t := v.(type) {
	case nil:
		return out, nil
	case string:
		for _, token := range setSplitter.Split(t, -1) {
			if token != "" {
				out = append(out, token)
			}
		}
		return out, nil
	case []any:
		for _, item := range t {
			s, err := cast.ToStringE(item)
			if err != nil {
				return nil, &routeconf.SchemaError{Path: path, Err: err}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &routeconf.SchemaError{Path: path, Err: fmt.Errorf("expected a string or sequence, got %T", v)}
	}
}

// asStringMap converts a mapping field with scalar values; nil becomes an
// empty map.
func asStringMap(v any, path string) (map[string]string, error) {
	out := make(map[string]string)
	if v == nil {
		return out, nil
	}
	entries, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, &routeconf.SchemaError{Path: path, Err: fmt.Errorf("expected a mapping, got %T", v)}
	}
	for _, item := range entries {
		key, err := cast.ToStringE(item.Key)
		if err != nil {
			return nil, &routeconf.SchemaError{Path: path, Err: err}
		}
		val, err := cast.ToStringE(item.Value)
		if err != nil {
			return nil, &routeconf.SchemaError{Path: path, Err: err}
		}
		out[key] = val
	}
	return out, nil
}

// asValueMap converts a defaults/options mapping into typed values; nil
// becomes an empty map.
func asValueMap(v any, path string) (map[string]value.Value, error) {
	out := make(map[string]value.Value)
	if v == nil {
		return out, nil
	}
	entries, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, &routeconf.SchemaError{Path: path, Err: fmt.Errorf("expected a mapping, got %T", v)}
	}
	for _, item := range entries {
		key, err := cast.ToStringE(item.Key)
		if err != nil {
			return nil, &routeconf.SchemaError{Path: path, Err: err}
		}
		converted, err := value.FromAny(plain(item.Value))
		if err != nil {
			return nil, &routeconf.SchemaError{Path: path, Err: err}
		}
		out[key] = converted
	}
	return out, nil
}

// plain recursively rewrites ordered mappings into plain maps so the value
// package can convert them.
func plain(v any) any {
	switch t := v.(type) {
	case yaml.MapSlice:
		out := make(map[string]any, len(t))
		for _, item := range t {
			out[fmt.Sprintf("%v", item.Key)] = plain(item.Value)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plain(item)
		}
		return out
	default:
		return v
	}
}
