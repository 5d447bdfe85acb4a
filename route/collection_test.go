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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/routeconf/value"
)

func TestCollectionAddPreservesOrder(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Add("c", New("/c"))
	c.Add("a", New("/a"))
	c.Add("b", New("/b"))

	assert.Equal(t, []string{"c", "a", "b"}, c.Names())
	assert.Equal(t, 3, c.Len())
}

func TestCollectionAddReplacesInPlace(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Add("first", New("/first"))
	c.Add("second", New("/second"))
	c.Add("first", New("/replaced"))

	// Replacement keeps the original table position.
	assert.Equal(t, []string{"first", "second"}, c.Names())
	r, ok := c.Get("first")
	require.True(t, ok)
	assert.Equal(t, "/replaced", r.Path())
}

func TestCollectionRemove(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Add("a", New("/a"))
	c.Add("b", New("/b"))
	c.Remove("a")
	c.Remove("missing")

	assert.Equal(t, []string{"b"}, c.Names())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCollectionAll(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Add("a", New("/a"))
	c.Add("b", New("/b"))

	var names []string
	for name, r := range c.All() {
		names = append(names, name)
		require.NotNil(t, r)
	}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestAddCollection(t *testing.T) {
	t.Parallel()

	parent := NewCollection()
	parent.Add("home", New("/"))
	parent.Add("about", New("/about"))

	imported := NewCollection()
	imported.Add("blog", New("/blog"))
	imported.Add("about", New("/about-us"))

	parent.AddCollection(imported)

	// The colliding entry replaces in place; only new names append.
	assert.Equal(t, []string{"home", "about", "blog"}, parent.Names())
	about, _ := parent.Get("about")
	assert.Equal(t, "/about-us", about.Path())
}

func TestAddPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		path   string
		want   string
	}{
		{"plain", "api", "/users", "/api/users"},
		{"surrounding slashes trimmed", "/api/", "/users", "/api/users"},
		{"whitespace trimmed", "  api  ", "/users", "/api/users"},
		{"empty is a no-op", "", "/users", "/users"},
		{"root keeps trailing slash", "api", "/", "/api/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := NewCollection()
			c.Add("r", New(tt.path))
			c.AddPrefix(tt.prefix)
			r, _ := c.Get("r")
			assert.Equal(t, tt.want, r.Path())
		})
	}
}

func TestAddNamePrefix(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Add("home", New("/"))
	c.Add("home.en", New("/en").SetDefault("_canonical_route", value.String("home")))
	c.AddNamePrefix("site_")

	assert.Equal(t, []string{"site_home", "site_home.en"}, c.Names())

	localized, ok := c.Get("site_home.en")
	require.True(t, ok)
	canonical, _ := localized.Default("_canonical_route")
	assert.True(t, canonical.Equal(value.String("site_home")))
}

func TestCollectionBulkSetters(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Add("a", New("/a"))
	c.Add("b", New("/b"))

	c.SetHost("example.com")
	c.SetCondition("request.isSecure()")
	c.SetSchemes([]string{"https"})
	c.SetMethods([]string{"GET"})

	for _, r := range c.All() {
		assert.Equal(t, "example.com", r.Host())
		assert.Equal(t, "request.isSecure()", r.Condition())
		assert.Equal(t, []string{"https"}, r.Schemes())
		assert.Equal(t, []string{"GET"}, r.Methods())
	}
}

func TestCollectionAddDefaultsDoesNotOverwrite(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Add("a", New("/a").SetDefault("_format", value.String("xml")))
	c.Add("b", New("/b"))

	c.AddDefaults(map[string]value.Value{
		"_format": value.String("json"),
		"page":    value.Int(1),
	})

	a, _ := c.Get("a")
	format, _ := a.Default("_format")
	assert.True(t, format.Equal(value.String("xml")), "existing key kept")
	page, _ := a.Default("page")
	assert.True(t, page.Equal(value.Int(1)))

	b, _ := c.Get("b")
	format, _ = b.Default("_format")
	assert.True(t, format.Equal(value.String("json")))
}

func TestCollectionAddRequirementsDoesNotOverwrite(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Add("a", New("/a/{id}").SetRequirement("id", `\d+`))

	c.AddRequirements(map[string]string{"id": `\w+`, "slug": `[a-z-]+`})

	a, _ := c.Get("a")
	id, _ := a.Requirement("id")
	assert.Equal(t, `\d+`, id)
	slug, _ := a.Requirement("slug")
	assert.Equal(t, `[a-z-]+`, slug)
}

func TestCollectionAddOptionsDoesNotOverwrite(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Add("a", New("/a").SetOption("utf8", value.Bool(false)))

	c.AddOptions(map[string]value.Value{"utf8": value.Bool(true)})

	a, _ := c.Get("a")
	utf8, _ := a.Option("utf8")
	assert.True(t, utf8.Equal(value.Bool(false)))
}
