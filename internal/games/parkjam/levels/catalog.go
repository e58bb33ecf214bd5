// Package levels provides the compiled-in level catalog for Parking Jam.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/parkjam/internal/games/parkjam/core"
	"github.com/vovakirdan/parkjam/internal/games/parkjam/levels/formats"
)

//go:embed data/*.yaml
var dataFS embed.FS

// catalog holds the validated levels sorted by ID.
var catalog []core.Level

func init() {
	lvls, err := LoadFS(dataFS, "data")
	if err != nil {
		panic(fmt.Sprintf("levels: invalid compiled-in level data: %v", err))
	}
	catalog = lvls
}

// LoadFS parses and validates every level file in dir.
// Returns levels sorted by ID; IDs must be unique and run 1..N.
func LoadFS(fsys fs.FS, dir string) ([]core.Level, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var lvls []core.Level
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(e.Name()))) {
			continue
		}

		p := path.Join(dir, e.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", p, err)
		}

		lvl, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing file %s: %w", p, err)
		}
		if err := core.ValidateLevel(lvl); err != nil {
			return nil, fmt.Errorf("validating file %s: %w", p, err)
		}
		lvls = append(lvls, lvl)
	}

	// Sort by ID for determinism
	sort.Slice(lvls, func(i, j int) bool {
		return lvls[i].ID < lvls[j].ID
	})

	for i, lvl := range lvls {
		if lvl.ID != i+1 {
			return nil, fmt.Errorf("level ids must run 1..%d, found %d at position %d", len(lvls), lvl.ID, i+1)
		}
	}

	return lvls, nil
}

// Load returns a copy of level id. Unknown ids fall back to level 1.
func Load(id int) core.Level {
	if id < 1 || id > len(catalog) {
		id = 1
	}
	return catalog[id-1].Clone()
}

// Count returns the number of levels.
func Count() int {
	return len(catalog)
}

// All returns copies of every level in ID order.
func All() []core.Level {
	out := make([]core.Level, len(catalog))
	for i, lvl := range catalog {
		out[i] = lvl.Clone()
	}
	return out
}

// Names returns level names in ID order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, lvl := range catalog {
		names[i] = lvl.Name
	}
	return names
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
