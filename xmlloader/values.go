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
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"rivaas.dev/routeconf"
	"rivaas.dev/routeconf/value"
)

// maxValueDepth caps typed-value nesting. Documents can be operator- or
// attacker-supplied, so recursion depth is bounded instead of relying on
// the stack running out.
const maxValueDepth = 100

// typedValueTags is the recognized set of nested value tags, in the order
// error messages list them.
var typedValueTags = []string{"bool", "int", "float", "string", "list", "map"}

// parseDefault converts a default element into a typed value. An xsi:nil
// marker wins over any content. With no nested in-namespace element the
// trimmed text is the string value; otherwise the first nested element in
// document order is parsed as a typed node and later siblings are ignored.
func parseDefault(el *Element, path string, depth int) (value.Value, error) {
	if depth > maxValueDepth {
		return value.Null(), &routeconf.DepthError{Path: path, Limit: maxValueDepth}
	}
	if isNil(el) {
		return value.Null(), nil
	}

	for _, child := range el.Children {
		if child.Space == Namespace {
			return parseTypedNode(child, path, depth+1)
		}
	}
	return value.String(el.Text()), nil
}

// parseTypedNode parses one bool/int/float/string/list/map element.
func parseTypedNode(el *Element, path string, depth int) (value.Value, error) {
	if depth > maxValueDepth {
		return value.Null(), &routeconf.DepthError{Path: path, Limit: maxValueDepth}
	}
	if isNil(el) {
		return value.Null(), nil
	}

	switch el.Local {
	case "bool":
		text := el.Text()
		return value.Bool(text == "true" || text == "1"), nil
	case "int":
		i, err := strconv.ParseInt(el.Text(), 10, 64)
		if err != nil {
			return value.Null(), fmt.Errorf("invalid integer %q in %q: %w", el.Text(), path, err)
		}
		return value.Int(i), nil
	case "float":
		f, err := strconv.ParseFloat(el.Text(), 64)
		if err != nil {
			return value.Null(), fmt.Errorf("invalid float %q in %q: %w", el.Text(), path, err)
		}
		return value.Float(f), nil
	case "string":
		return value.String(el.Text()), nil
	case "list":
		var items []value.Value
		for _, child := range el.Children {
			if child.Space != Namespace {
				continue
			}
			item, err := parseTypedNode(child, path, depth+1)
			if err != nil {
				return value.Null(), err
			}
			items = append(items, item)
		}
		return value.List(items...), nil
	case "map":
		entries := make(map[string]value.Value)
		for _, child := range el.Children {
			if child.Space != Namespace {
				continue
			}
			item, err := parseTypedNode(child, path, depth+1)
			if err != nil {
				return value.Null(), err
			}
			// Duplicate keys: last one wins.
			entries[child.Attribute("key")] = item
		}
		return value.Map(entries), nil
	default:
		return value.Null(), &routeconf.UnknownElementError{Element: el.Local, Path: path, Allowed: typedValueTags}
	}
}

// isNil reports whether the element carries an xsi:nil="true" (or "1")
// marker. The check applies at every nesting level and takes precedence
// over any content.
func isNil(el *Element) bool {
	v := el.AttributeNS(xsiNamespace, "nil")
	return v == "true" || v == "1"
}

// coerce applies the shared scalar auto-typing used for option values and
// the utf8/stateless/trailing-slash-on-root attributes: the literal bool
// tokens become bools, numeric-looking strings become ints or floats, and
// everything else stays a string.
func coerce(s string) value.Value {
	s = strings.TrimSpace(s)
	switch s {
	case "true", "1":
		return value.Bool(true)
	case "false", "0":
		return value.Bool(false)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.Int(i)
	}
	if f, err := cast.ToFloat64E(s); err == nil {
		return value.Float(f)
	}
	return value.String(s)
}

// coerceBool coerces an attribute that must be boolean, such as
// trailing-slash-on-root.
func coerceBool(attr, element, path, raw string) (bool, error) {
	v := coerce(raw)
	b, ok := v.BoolValue()
	if !ok {
		return false, fmt.Errorf("attribute %q on %q in %q must be a boolean, got %q", attr, element, path, raw)
	}
	return b, nil
}
