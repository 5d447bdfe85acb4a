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

package routeconf

import (
	"rivaas.dev/routeconf/route"
	"rivaas.dev/routeconf/value"
)

// ImportDirective is the transient description of one import declaration:
// how the imported sub-tables are transformed before they merge into the
// parent table. Both the XML and YAML loaders build one per import so the
// merge semantics live in a single place.
//
// Host, Schemes, and Methods are nil when the import does not declare
// them, meaning the imported routes keep their own values. A declared but
// empty set still overrides.
type ImportDirective struct {
	Prefix              string            // single path prefix
	LocalizedPrefixes   map[string]string // per-locale path prefixes (exclusive with Prefix)
	NamePrefix          string            // prepended to every imported route name
	Host                *string           // nil = inherit
	Schemes             []string          // nil = inherit
	Methods             []string          // nil = inherit
	Condition           string            // "" = inherit
	TrailingSlashOnRoot bool              // keep the trailing slash on prefixed root paths
	Defaults            map[string]value.Value
	Requirements        map[string]string
	Options             map[string]value.Value
}

// Apply folds the imported sub-tables into parent: prefix paths (per
// locale if localized prefixes are declared), overwrite host, condition,
// schemes, and methods only where the directive declares them, prefix
// names, merge defaults, requirements, and options without overwriting
// keys the imported routes already define, then append each sub-table in
// order.
func (d *ImportDirective) Apply(parent *route.Collection, subs []*route.Collection) error {
	for _, sub := range subs {
		if err := route.ApplyPrefix(sub, d.Prefix, d.LocalizedPrefixes, d.TrailingSlashOnRoot); err != nil {
			return err
		}

		if d.Host != nil {
			sub.SetHost(*d.Host)
		}
		if d.Condition != "" {
			sub.SetCondition(d.Condition)
		}
		if d.Schemes != nil {
			sub.SetSchemes(d.Schemes)
		}
		if d.Methods != nil {
			sub.SetMethods(d.Methods)
		}
		if d.NamePrefix != "" {
			sub.AddNamePrefix(d.NamePrefix)
		}

		sub.AddDefaults(d.Defaults)
		sub.AddRequirements(d.Requirements)
		sub.AddOptions(d.Options)

		parent.AddCollection(sub)
	}
	return nil
}
