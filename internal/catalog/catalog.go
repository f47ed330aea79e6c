// internal/catalog/catalog.go
//
// The catalog enumerates the optional module documents that can be merged
// into the generated instructions. A module is just a markdown file in the
// modules directory; its base name is its identity.

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Module identifies one optional instruction document by its file base name.
type Module string

// Scan returns the sorted module names for every regular file with the given
// extension directly inside dir. Subdirectories are not descended into. A
// missing or non-directory path is a configuration error; an existing but
// empty directory simply yields no modules.
func Scan(dir, ext string) ([]Module, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: modules directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog: %s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", dir, err)
	}

	var mods []Module
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ext {
			continue
		}
		mods = append(mods, Module(strings.TrimSuffix(name, ext)))
	}

	sort.Slice(mods, func(i, j int) bool { return mods[i] < mods[j] })
	return mods, nil
}

// Names converts a module list to plain strings, preserving order.
func Names(mods []Module) []string {
	out := make([]string, len(mods))
	for i, mod := range mods {
		out[i] = string(mod)
	}
	return out
}

// FromNames is the inverse of Names.
func FromNames(names []string) []Module {
	out := make([]Module, len(names))
	for i, name := range names {
		out[i] = Module(name)
	}
	return out
}
