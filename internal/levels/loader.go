// Package levels provides level loading for the platformer: an embedded
// campaign plus user-supplied level files. It depends on game but game
// does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lavaleap/internal/game"
)

//go:embed builtin
var builtinFS embed.FS

// Level is a loadable stage definition: an identifier, a display name,
// and the raw plan text. Compile turns it into a simulation level.
type Level struct {
	ID       string
	Name     string
	Plan     string
	FilePath string // empty for builtin levels
}

// Compile parses the plan into a game level. rng drives coin wobble
// phases; pass a seeded source for deterministic runs.
func (l Level) Compile(rng *rand.Rand) (*game.Level, error) {
	parsed, err := game.Parse(l.Plan, rng)
	if err != nil {
		return nil, fmt.Errorf("levels: compiling %q: %w", l.ID, err)
	}
	return parsed, nil
}

// Builtin returns the embedded campaign levels, sorted by ID.
// The embedded plans are validated at build time by the package tests,
// so an error here means a corrupted binary.
func Builtin() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(builtinFS, "builtin", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return err
		}
		level, err := parseLevelFile(data, path)
		if err != nil {
			return fmt.Errorf("builtin level %s: %w", path, err)
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: reading builtin campaign: %w", err)
	}

	sortLevels(levels)
	return levels, nil
}

// Loader loads level files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files under the root.
// Files that fail to parse are skipped. Returns levels sorted by ID for
// deterministic campaign ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		level, err := parseLevelFile(data, path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		level.FilePath = path

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sortLevels(levels)
	return levels, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Campaign returns the level set for a run: the embedded campaign when
// root is empty, otherwise the levels found under root.
func Campaign(root string) ([]Level, error) {
	if root == "" {
		return Builtin()
	}

	levels, err := NewLoader(root).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("levels: no level files found under %s", root)
	}
	return levels, nil
}

func sortLevels(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	switch ext {
	case ".txt", ".yaml", ".yml":
		return true
	}
	return false
}
