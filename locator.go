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
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileLocator resolves resource names from route configuration files into
// absolute filesystem paths. Relative resources are resolved against the
// directory of the referring file first, then against any configured
// fallback search paths.
type FileLocator struct {
	paths []string
}

// NewFileLocator creates a locator with optional fallback search paths.
func NewFileLocator(paths ...string) *FileLocator {
	return &FileLocator{paths: paths}
}

// Locate resolves resource into an absolute path. Absolute resources pass
// through (but must exist); relative resources are tried against the
// referrer's directory, then each fallback path in order.
func (l *FileLocator) Locate(resource, referrer string) (string, error) {
	if filepath.IsAbs(resource) {
		if _, err := os.Stat(resource); err != nil {
			return "", &NotFoundError{Resource: resource, Referrer: referrer, Err: err}
		}
		return filepath.Clean(resource), nil
	}

	var lastErr error
	for _, dir := range l.searchDirs(referrer) {
		candidate := filepath.Join(dir, resource)
		_, err := os.Stat(candidate)
		if err == nil {
			return filepath.Abs(candidate)
		}
		lastErr = err
	}
	return "", &NotFoundError{Resource: resource, Referrer: referrer, Err: lastErr}
}

// LocateGlob expands a glob resource into the sorted list of matching
// files, dropping anything matched by the exclude patterns. Matching zero
// files is a NotFoundError: a glob import that silently imports nothing
// hides typos.
func (l *FileLocator) LocateGlob(resource, referrer string, exclude []string) ([]string, error) {
	for _, dir := range l.searchDirs(referrer) {
		pattern := filepath.Join(dir, resource)
		if filepath.IsAbs(resource) {
			pattern = resource
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, &NotFoundError{Resource: resource, Referrer: referrer, Err: err}
		}
		if len(matches) == 0 {
			continue
		}
		sort.Strings(matches)

		var located []string
		for _, match := range matches {
			abs, err := filepath.Abs(match)
			if err != nil {
				return nil, err
			}
			if excluded(abs, dir, exclude) {
				continue
			}
			located = append(located, abs)
		}
		return located, nil
	}
	return nil, &NotFoundError{Resource: resource, Referrer: referrer}
}

// searchDirs returns the directories to try, referrer directory first.
func (l *FileLocator) searchDirs(referrer string) []string {
	dirs := make([]string, 0, len(l.paths)+1)
	if referrer != "" {
		dirs = append(dirs, filepath.Dir(referrer))
	} else {
		dirs = append(dirs, ".")
	}
	dirs = append(dirs, l.paths...)
	return dirs
}

// excluded reports whether path matches one of the exclude patterns, which
// are resolved relative to baseDir. An exclusion matches the file itself, a
// glob over it, or an ancestor directory.
func excluded(path, baseDir string, exclude []string) bool {
	for _, pattern := range exclude {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(baseDir, pattern)
		}
		pattern = filepath.Clean(pattern)
		if pattern == path {
			return true
		}
		if ok, err := filepath.Match(pattern, path); err == nil && ok {
			return true
		}
		if strings.HasPrefix(path, pattern+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// hasGlobMeta reports whether the resource contains glob metacharacters.
func hasGlobMeta(resource string) bool {
	return strings.ContainsAny(resource, "*?[")
}
