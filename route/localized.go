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

package route

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"rivaas.dev/routeconf/value"
)

// AddLocalized inserts one or more routes for the given name into c and
// returns a sub-collection aliasing the created routes, so the caller can
// keep configuring them through bulk operations.
//
// With an empty localized map a single route is created under name with the
// plain path. Otherwise one route per locale is created under
// "name.locale", carrying the "_locale" default, a "_canonical_route"
// default pointing back at the base name, and a "_locale" requirement
// pinned to the literal locale. Locales are processed in sorted order so
// table order is deterministic.
func AddLocalized(c *Collection, name, path string, localized map[string]string) *Collection {
	sub := NewCollection()
	if len(localized) == 0 {
		r := New(path)
		sub.Add(name, r)
		c.Add(name, r)
		return sub
	}

	for _, locale := range sortedKeys(localized) {
		r := New(localized[locale])
		localizeRoute(r, name, locale)
		sub.Add(name+"."+locale, r)
		c.Add(name+"."+locale, r)
	}
	return sub
}

// LocalePrefixError reports a localized route whose locale has no matching
// prefix in the importing directive.
type LocalePrefixError struct {
	Route  string // route name
	Locale string // locale carried by the route's "_locale" default
}

// Error returns a message naming the route and the missing locale.
func (e *LocalePrefixError) Error() string {
	return fmt.Sprintf("route %q with locale %q is missing a corresponding prefix in its parent collection", e.Route, e.Locale)
}

// ApplyPrefix prefixes every path in c, either with the single prefix or
// with per-locale prefixes.
//
// With per-locale prefixes, a route that already carries a "_locale"
// default gets the prefix for that locale (missing locale = error); a route
// without one is removed and expanded into one localized copy per locale,
// appended in sorted locale order. When trailingSlashOnRoot is
// false, a route whose path was "/" does not keep the trailing slash after
// prefixing.
func ApplyPrefix(c *Collection, prefix string, localized map[string]string, trailingSlashOnRoot bool) error {
	if len(localized) == 0 {
		c.AddPrefix(prefix)
		if !trailingSlashOnRoot {
			rootPath := "/" + strings.Trim(strings.TrimSpace(prefix), "/") + "/"
			for _, r := range c.All() {
				if r.Path() == rootPath {
					r.SetPath(strings.TrimSuffix(rootPath, "/"))
				}
			}
		}
		return nil
	}

	trimmed := make(map[string]string, len(localized))
	for locale, localePrefix := range localized {
		trimmed[locale] = strings.Trim(strings.TrimSpace(localePrefix), "/")
	}
	locales := sortedKeys(trimmed)

	for _, name := range c.Names() {
		r, _ := c.Get(name)
		localeValue, hasLocale := r.Default("_locale")
		locale, _ := localeValue.StringValue()

		switch {
		case !hasLocale:
			// Not localized yet: expand into one copy per locale.
			c.Remove(name)
			for _, locale := range locales {
				copied := r.Clone()
				localizeRoute(copied, name, locale)
				copied.SetPath(prefixedPath(trimmed[locale], r.Path(), trailingSlashOnRoot))
				c.Add(name+"."+locale, copied)
			}
		default:
			localePrefix, ok := trimmed[locale]
			if !ok {
				return &LocalePrefixError{Route: name, Locale: locale}
			}
			r.SetPath(prefixedPath(localePrefix, r.Path(), trailingSlashOnRoot))
		}
	}
	return nil
}

// localizeRoute marks r as the locale-specific variant of the base route.
func localizeRoute(r *Route, name, locale string) {
	r.SetDefault("_locale", value.String(locale))
	r.SetDefault("_canonical_route", value.String(name))
	r.SetRequirement("_locale", regexp.QuoteMeta(locale))
}

// prefixedPath joins a trimmed locale prefix and a route path. A root path
// loses its slash when trailing slashes on roots are disabled.
func prefixedPath(prefix, path string, trailingSlashOnRoot bool) string {
	if !trailingSlashOnRoot && path == "/" {
		path = ""
	}
	if prefix == "" {
		if path == "" {
			return "/"
		}
		return path
	}
	return "/" + prefix + path
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
