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

// Command routelint loads route configuration files and prints the
// resulting route table, failing on any configuration error. It is meant
// for CI checks and for inspecting what a routing setup expands to after
// imports, prefixes, and localization.
//
//	routelint routes.xml
//	routelint --type yaml routes.conf
//	routelint --quiet routes.xml api/*.xml
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rivaas.dev/routeconf"
	"rivaas.dev/routeconf/route"
	"rivaas.dev/routeconf/xmlloader"
	"rivaas.dev/routeconf/yamlloader"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		typeHint string
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:           "routelint [flags] file...",
		Short:         "Load route configuration files and print the resulting route table",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

			resolver := routeconf.NewResolver()
			resolver.Register(xmlloader.New(resolver))
			resolver.Register(yamlloader.New(resolver))

			failed := false
			for _, file := range args {
				table, err := resolver.Load(file, typeHint)
				if err != nil {
					logger.Error("route file failed to load", "file", file, "error", err)
					failed = true
					continue
				}
				if !quiet {
					printTable(cmd, file, table)
				}
			}
			if failed {
				return fmt.Errorf("one or more route files failed to load")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typeHint, "type", "", "explicit loader type (xml, yaml)")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "only report errors")
	return cmd
}

func printTable(cmd *cobra.Command, file string, table *route.Collection) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d route(s)\n", file, table.Len())

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMETHODS\tPATH\tHOST\tEXTRA")
	for name, r := range table.All() {
		methods := strings.Join(r.Methods(), "|")
		if methods == "" {
			methods = "ANY"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, methods, r.Path(), r.Host(), extras(r))
	}
	w.Flush()
}

// extras renders defaults, requirements, and the condition in a compact
// single-line form.
func extras(r *route.Route) string {
	var parts []string
	for _, name := range sortedKeys(r.Defaults()) {
		v, _ := r.Default(name)
		parts = append(parts, fmt.Sprintf("%s=%s", name, v))
	}
	for _, name := range sortedKeys(r.Requirements()) {
		regex, _ := r.Requirement(name)
		parts = append(parts, fmt.Sprintf("%s~%s", name, regex))
	}
	if r.Condition() != "" {
		parts = append(parts, "if "+r.Condition())
	}
	return strings.Join(parts, " ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
