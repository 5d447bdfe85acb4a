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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/routeconf"
	"rivaas.dev/routeconf/route"
	"rivaas.dev/routeconf/value"
)

// doc wraps a document body in the standard routes envelope.
func doc(body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<routes xmlns="https://rivaas.dev/schema/routing"
        xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
` + body + `
</routes>`
}

// loadFiles writes the given files into a fresh directory and loads entry
// through a resolver with the XML loader registered, so import declarations
// resolve against the sibling files.
func loadFiles(t *testing.T, files map[string]string, entry string) (*route.Collection, error) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	resolver := routeconf.NewResolver()
	resolver.Register(New(resolver))
	return resolver.Load(filepath.Join(dir, entry), "")
}

// loadDoc loads a single standalone document body.
func loadDoc(t *testing.T, body string) (*route.Collection, error) {
	t.Helper()
	return loadFiles(t, map[string]string{"routes.xml": doc(body)}, "routes.xml")
}

func TestSupports(t *testing.T) {
	t.Parallel()

	l := New(nil)
	assert.True(t, l.Supports("routes.xml", ""))
	assert.True(t, l.Supports("routes.XML", ""))
	assert.True(t, l.Supports("routes.xml", "xml"))
	assert.False(t, l.Supports("routes.xml", "yaml"))
	assert.False(t, l.Supports("routes.yml", ""))
	assert.False(t, l.Supports("routes", ""))
}

func TestLoadSingleRoute(t *testing.T) {
	t.Parallel()

	table, err := loadDoc(t, `
  <route id="user_show" path="/users/{id}"
         controller="App\Controller\UserController::show"
         host="{sub}.example.com"
         schemes="https|http" methods="GET, HEAD">
    <requirement key="id">\d+</requirement>
  </route>`)
	require.NoError(t, err)

	require.Equal(t, []string{"user_show"}, table.Names())
	r, _ := table.Get("user_show")
	assert.Equal(t, "/users/{id}", r.Path())
	assert.Equal(t, "{sub}.example.com", r.Host())
	assert.Equal(t, []string{"https", "http"}, r.Schemes())
	assert.Equal(t, []string{"GET", "HEAD"}, r.Methods())

	controller, ok := r.Default("_controller")
	require.True(t, ok)
	assert.True(t, controller.Equal(value.String(`App\Controller\UserController::show`)))

	id, _ := r.Requirement("id")
	assert.Equal(t, `\d+`, id)
}

func TestLoadMissingID(t *testing.T) {
	t.Parallel()

	_, err := loadDoc(t, `<route path="/users"/>`)
	var merr *routeconf.MissingAttributeError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "id", merr.Attribute)
}

func TestLoadMissingPath(t *testing.T) {
	t.Parallel()

	_, err := loadDoc(t, `<route id="users"/>`)
	var merr *routeconf.MissingAttributeError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "path", merr.Attribute)
	assert.Equal(t, "users", merr.Element)
}

func TestLoadPathAttributeAndChildrenConflict(t *testing.T) {
	t.Parallel()

	_, err := loadDoc(t, `
  <route id="about" path="/about">
    <path locale="en">/about-us</path>
  </route>`)
	var xerr *routeconf.MutuallyExclusiveError
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, "about", xerr.Element)
}

func TestLoadLocalizedPaths(t *testing.T) {
	t.Parallel()

	table, err := loadDoc(t, `
  <route id="about" controller="AboutController">
    <path locale="nl">/over-ons</path>
    <path locale="en">/about-us</path>
  </route>`)
	require.NoError(t, err)

	require.Equal(t, []string{"about.en", "about.nl"}, table.Names())

	en, _ := table.Get("about.en")
	assert.Equal(t, "/about-us", en.Path())
	locale, _ := en.Default("_locale")
	assert.True(t, locale.Equal(value.String("en")))
	canonical, _ := en.Default("_canonical_route")
	assert.True(t, canonical.Equal(value.String("about")))
	req, _ := en.Requirement("_locale")
	assert.Equal(t, "en", req)

	// The controller attribute applies to every localized variant.
	controller, _ := en.Default("_controller")
	assert.True(t, controller.Equal(value.String("AboutController")))
	nl, _ := table.Get("about.nl")
	controller, _ = nl.Default("_controller")
	assert.True(t, controller.Equal(value.String("AboutController")))
}

func TestLoadTypedDefaults(t *testing.T) {
	t.Parallel()

	table, err := loadDoc(t, `
  <route id="blog" path="/blog">
    <default key="none" xsi:nil="true"/>
    <default key="flag"><bool>true</bool></default>
    <default key="limit"><int>25</int></default>
    <default key="ratio"><float>1.5</float></default>
    <default key="label"><string>hello</string></default>
    <default key="plain">just text</default>
    <default key="sizes">
      <list>
        <int>1</int>
        <int>2</int>
        <int>3</int>
      </list>
    </default>
    <default key="meta">
      <map>
        <string key="author">rivaas</string>
        <bool key="draft">false</bool>
      </map>
    </default>
  </route>`)
	require.NoError(t, err)

	r, _ := table.Get("blog")
	want := map[string]value.Value{
		"none":  value.Null(),
		"flag":  value.Bool(true),
		"limit": value.Int(25),
		"ratio": value.Float(1.5),
		"label": value.String("hello"),
		"plain": value.String("just text"),
		"sizes": value.List(value.Int(1), value.Int(2), value.Int(3)),
		"meta": value.Map(map[string]value.Value{
			"author": value.String("rivaas"),
			"draft":  value.Bool(false),
		}),
	}
	for key, expected := range want {
		got, ok := r.Default(key)
		require.True(t, ok, "default %q missing", key)
		assert.True(t, got.Equal(expected), "default %q: got %s, want %s", key, got, expected)
	}
}

func TestLoadNilWinsOverContent(t *testing.T) {
	t.Parallel()

	table, err := loadDoc(t, `
  <route id="blog" path="/blog">
    <default key="outer" xsi:nil="1"><int>7</int></default>
    <default key="inner"><list><string xsi:nil="true">ignored</string></list></default>
  </route>`)
	require.NoError(t, err)

	r, _ := table.Get("blog")
	outer, _ := r.Default("outer")
	assert.True(t, outer.IsNull())
	inner, _ := r.Default("inner")
	assert.True(t, inner.Equal(value.List(value.Null())))
}

func TestLoadNestedValues(t *testing.T) {
	t.Parallel()

	table, err := loadDoc(t, `
  <route id="blog" path="/blog">
    <default key="matrix">
      <list>
        <list><int>1</int><int>2</int></list>
        <map><list key="inner"><bool>1</bool></list></map>
      </list>
    </default>
  </route>`)
	require.NoError(t, err)

	r, _ := table.Get("blog")
	got, _ := r.Default("matrix")
	want := value.List(
		value.List(value.Int(1), value.Int(2)),
		value.Map(map[string]value.Value{"inner": value.List(value.Bool(true))}),
	)
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
}

func TestLoadValueDepthLimit(t *testing.T) {
	t.Parallel()

	depth := maxValueDepth + 2
	body := `<route id="deep" path="/deep"><default key="d">` +
		strings.Repeat("<list>", depth) + strings.Repeat("</list>", depth) +
		`</default></route>`

	_, err := loadDoc(t, body)
	var derr *routeconf.DepthError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, maxValueDepth, derr.Limit)
}

func TestLoadDefaultMissingKey(t *testing.T) {
	t.Parallel()

	_, err := loadDoc(t, `
  <route id="blog" path="/blog">
    <default>oops</default>
  </route>`)
	var merr *routeconf.MissingAttributeError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "key", merr.Attribute)
}

func TestLoadUnknownTypedValueTag(t *testing.T) {
	t.Parallel()

	_, err := loadDoc(t, `
  <route id="blog" path="/blog">
    <default key="bad"><widget/></default>
  </route>`)
	var uerr *routeconf.UnknownElementError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "widget", uerr.Element)
	assert.Contains(t, uerr.Allowed, "list")
}

func TestLoadUnknownRouteChild(t *testing.T) {
	t.Parallel()

	_, err := loadDoc(t, `
  <route id="blog" path="/blog">
    <bogus/>
  </route>`)
	var uerr *routeconf.UnknownElementError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "bogus", uerr.Element)
}

func TestLoadUnknownTopLevelElement(t *testing.T) {
	t.Parallel()

	_, err := loadDoc(t, `<widget/>`)
	var uerr *routeconf.UnknownElementError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "widget", uerr.Element)
	assert.Equal(t, []string{"route", "import"}, uerr.Allowed)
}

func TestLoadForeignNamespaceIgnored(t *testing.T) {
	t.Parallel()

	table, err := loadDoc(t, `
  <ext:widget xmlns:ext="https://example.com/ext">opaque</ext:widget>
  <route id="home" path="/">
    <ext:hint xmlns:ext="https://example.com/ext">also opaque</ext:hint>
  </route>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"home"}, table.Names())
}

func TestLoadControllerConflict(t *testing.T) {
	t.Parallel()

	_, err := loadDoc(t, `
  <route id="blog" path="/blog" controller="BlogController">
    <default key="_controller">OtherController</default>
  </route>`)
	var cerr *routeconf.ConflictingDefaultError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "_controller", cerr.Key)
	assert.Equal(t, "blog", cerr.Element)
}

func TestLoadStatelessConflict(t *testing.T) {
	t.Parallel()

	_, err := loadDoc(t, `
  <route id="blog" path="/blog" stateless="true">
    <default key="_stateless"><bool>false</bool></default>
  </route>`)
	var cerr *routeconf.ConflictingDefaultError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "_stateless", cerr.Key)
}

func TestLoadSynthesizedAttributes(t *testing.T) {
	t.Parallel()

	table, err := loadDoc(t, `
  <route id="blog" path="/blog" locale="en" format="json" utf8="1" stateless="true"/>`)
	require.NoError(t, err)

	r, _ := table.Get("blog")
	locale, _ := r.Default("_locale")
	assert.True(t, locale.Equal(value.String("en")))
	format, _ := r.Default("_format")
	assert.True(t, format.Equal(value.String("json")))
	stateless, _ := r.Default("_stateless")
	assert.True(t, stateless.Equal(value.Bool(true)))
	utf8, _ := r.Option("utf8")
	assert.True(t, utf8.Equal(value.Bool(true)))
}

func TestLoadConditionLastWins(t *testing.T) {
	t.Parallel()

	table, err := loadDoc(t, `
  <route id="blog" path="/blog">
    <condition>request.isSecure()</condition>
    <condition>context.getMethod() == 'GET'</condition>
  </route>`)
	require.NoError(t, err)

	r, _ := table.Get("blog")
	assert.Equal(t, "context.getMethod() == 'GET'", r.Condition())
}

func TestLoadRouteRejectsExcludeChild(t *testing.T) {
	t.Parallel()

	_, err := loadDoc(t, `
  <route id="blog" path="/blog">
    <exclude>other.xml</exclude>
  </route>`)
	var uerr *routeconf.UnknownElementError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "exclude", uerr.Element)
}

func TestLoadMalformedDocument(t *testing.T) {
	t.Parallel()

	_, err := loadFiles(t, map[string]string{
		"routes.xml": `<?xml version="1.0"?><routes xmlns="https://rivaas.dev/schema/routing"><route`,
	}, "routes.xml")

	var serr *routeconf.SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Error(t, serr.Unwrap())
}

func TestLoadWrongRootElement(t *testing.T) {
	t.Parallel()

	_, err := loadFiles(t, map[string]string{
		"routes.xml": `<?xml version="1.0"?><table xmlns="https://rivaas.dev/schema/routing"/>`,
	}, "routes.xml")

	var serr *routeconf.SchemaError
	require.ErrorAs(t, err, &serr)
}

func TestSplitSet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"GET", "POST"}, splitSet("GET, POST"))
	assert.Equal(t, []string{"https", "http"}, splitSet("https|http"))
	assert.Equal(t, []string{"GET", "PUT", "DELETE"}, splitSet(" GET  PUT,|DELETE "))
	assert.Empty(t, splitSet(""))
	assert.NotNil(t, splitSet(""))
}

func TestCoerce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want value.Value
	}{
		{"true", value.Bool(true)},
		{"1", value.Bool(true)},
		{"false", value.Bool(false)},
		{"0", value.Bool(false)},
		{"42", value.Int(42)},
		{"-3", value.Int(-3)},
		{"2.5", value.Float(2.5)},
		{"hello", value.String("hello")},
		{" true ", value.Bool(true)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got := coerce(tt.in)
			assert.True(t, got.Equal(tt.want), "coerce(%q) = %s, want %s", tt.in, got, tt.want)
		})
	}
}
