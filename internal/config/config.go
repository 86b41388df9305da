// Package config provides YAML-based configuration loading for the
// lavaleap platform: session rules and level sources.
package config

// Config is the top-level lavaleap configuration.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Levels LevelsConfig `yaml:"levels"`
}

// GameConfig defines session rules.
type GameConfig struct {
	// Lives is how many attempts a campaign run starts with.
	Lives int `yaml:"lives"`

	// GraceTicks is how many simulation ticks a finished level keeps
	// animating before the session restarts or advances. Actors still
	// move during this window, mirroring the end-of-level flash.
	GraceTicks int `yaml:"grace_ticks"`
}

// LevelsConfig defines where levels come from.
type LevelsConfig struct {
	// Dir is a directory of level files (.txt or .yaml). Empty means
	// the embedded campaign.
	Dir string `yaml:"dir"`
}
