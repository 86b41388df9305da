package levels

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"lavaleap/internal/game"
)

// yamlLevel is the YAML structure for a level file: metadata plus the
// plan as a literal block scalar.
type yamlLevel struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Plan string `yaml:"plan"`
}

// parseLevelFile routes to the parser for the file's extension and
// validates the plan by compiling it once.
func parseLevelFile(data []byte, path string) (Level, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var level Level
	switch ext {
	case ".txt":
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		level = Level{
			ID:   stem,
			Name: titleFromID(stem),
			Plan: string(data),
		}
	case ".yaml", ".yml":
		var yl yamlLevel
		if err := yaml.Unmarshal(data, &yl); err != nil {
			return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
		if yl.ID == "" {
			return Level{}, fmt.Errorf("yaml level missing id")
		}
		name := yl.Name
		if name == "" {
			name = titleFromID(yl.ID)
		}
		level = Level{ID: yl.ID, Name: name, Plan: yl.Plan}
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}

	// Reject plans the simulation cannot start
	if _, err := game.Parse(level.Plan, rand.New(rand.NewSource(0))); err != nil {
		return Level{}, err
	}

	return level, nil
}

// titleFromID derives a display name from a level ID: numeric prefixes
// are dropped and separators become spaces ("01-molten-floor" becomes
// "Molten Floor").
func titleFromID(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_'
	})

	var kept []string
	for _, w := range words {
		if strings.Trim(w, "0123456789") == "" {
			continue
		}
		kept = append(kept, strings.ToUpper(w[:1])+w[1:])
	}
	if len(kept) == 0 {
		return id
	}
	return strings.Join(kept, " ")
}
