// Package session sequences compiled levels into a campaign run: lives,
// level advancement, grace windows after a finished level, and per-level
// run statistics for persistence.
package session

import (
	"fmt"
	"math/rand"

	"lavaleap/internal/config"
	"lavaleap/internal/core"
	"lavaleap/internal/game"
	"lavaleap/internal/levels"
)

// Phase describes where a campaign run currently stands.
type Phase int

const (
	// PhasePlaying means the current level is live and accepting input.
	PhasePlaying Phase = iota
	// PhaseLevelWon means the level finished; actors keep animating for
	// the grace window before the campaign advances.
	PhaseLevelWon
	// PhaseLevelLost means the player died; actors keep animating for
	// the grace window before the level restarts.
	PhaseLevelLost
	// PhaseCampaignWon means every level was completed.
	PhaseCampaignWon
	// PhaseGameOver means lives ran out. Confirm restarts the campaign.
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelWon:
		return "level-won"
	case PhaseLevelLost:
		return "level-lost"
	case PhaseCampaignWon:
		return "campaign-won"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// RunRecorder persists the outcome of a level run. The session never
// requires one; pass nil to play without persistence.
type RunRecorder interface {
	SaveRun(levelID string, completed bool, deaths, durationTicks int) (int64, error)
}

// Session drives a campaign: it owns the live simulation state and
// decides when levels restart, advance, or end the run.
type Session struct {
	levels   []levels.Level
	cfg      config.GameConfig
	rng      *rand.Rand
	recorder RunRecorder

	idx       int
	lives     int
	state     *game.State
	phase     Phase
	graceLeft int

	deaths int // failed attempts on the current level
	ticks  int // simulation ticks spent on the current level
}

// New creates a session over the given level set. seed drives coin
// wobble phases; the same seed replays the same campaign.
func New(levelSet []levels.Level, cfg config.GameConfig, seed int64) (*Session, error) {
	if len(levelSet) == 0 {
		return nil, fmt.Errorf("session: no levels to play")
	}

	s := &Session{
		levels: levelSet,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		lives:  cfg.Lives,
	}
	if err := s.startLevel(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetRecorder attaches a run recorder. Completed and game-over runs are
// saved through it.
func (s *Session) SetRecorder(r RunRecorder) {
	s.recorder = r
}

// Tick advances the campaign by one simulation step. A non-nil error
// means persistence or level compilation failed; the caller decides
// whether that ends the program.
func (s *Session) Tick(dt float64, in core.InputFrame) error {
	switch s.phase {
	case PhasePlaying:
		if in.Has(core.ActionRestart) {
			return s.failAttempt()
		}
		s.state = s.state.Update(dt, in)
		s.ticks++
		switch s.state.Status {
		case game.StatusWon:
			s.phase = PhaseLevelWon
			s.graceLeft = s.cfg.GraceTicks
		case game.StatusLost:
			s.phase = PhaseLevelLost
			s.graceLeft = s.cfg.GraceTicks
		}

	case PhaseLevelWon, PhaseLevelLost:
		// Keep animating through the grace window.
		s.state = s.state.Update(dt, in)
		s.graceLeft--
		if s.graceLeft > 0 {
			return nil
		}
		if s.phase == PhaseLevelWon {
			return s.completeLevel()
		}
		return s.failAttempt()

	case PhaseCampaignWon, PhaseGameOver:
		if in.Has(core.ActionConfirm) {
			return s.RestartCampaign()
		}
	}
	return nil
}

// RestartCampaign starts the run over from the first level with full
// lives and fresh statistics.
func (s *Session) RestartCampaign() error {
	s.idx = 0
	s.lives = s.cfg.Lives
	s.deaths = 0
	s.ticks = 0
	return s.startLevel()
}

// State returns the live simulation state.
func (s *Session) State() *game.State { return s.state }

// Level returns the current level definition.
func (s *Session) Level() levels.Level { return s.levels[s.idx] }

// LevelIndex returns the zero-based index of the current level.
func (s *Session) LevelIndex() int { return s.idx }

// LevelCount returns the number of levels in the campaign.
func (s *Session) LevelCount() int { return len(s.levels) }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Phase returns the current campaign phase.
func (s *Session) Phase() Phase { return s.phase }

// Deaths returns the failed attempts on the current level.
func (s *Session) Deaths() int { return s.deaths }

// Ticks returns the simulation ticks spent on the current level.
func (s *Session) Ticks() int { return s.ticks }

func (s *Session) startLevel() error {
	level, err := s.levels[s.idx].Compile(s.rng)
	if err != nil {
		return err
	}
	s.state = game.NewState(level)
	s.phase = PhasePlaying
	s.graceLeft = 0
	return nil
}

func (s *Session) completeLevel() error {
	err := s.record(true)
	s.idx++
	s.deaths = 0
	s.ticks = 0
	if s.idx >= len(s.levels) {
		s.phase = PhaseCampaignWon
		return err
	}
	if startErr := s.startLevel(); startErr != nil {
		return startErr
	}
	return err
}

func (s *Session) failAttempt() error {
	s.deaths++
	s.lives--
	if s.lives <= 0 {
		err := s.record(false)
		s.phase = PhaseGameOver
		return err
	}
	if startErr := s.startLevel(); startErr != nil {
		return startErr
	}
	return nil
}

// record saves the current level's run. Persistence failures are
// reported but never change the campaign's course.
func (s *Session) record(completed bool) error {
	if s.recorder == nil {
		return nil
	}
	if _, err := s.recorder.SaveRun(s.levels[s.idx].ID, completed, s.deaths, s.ticks); err != nil {
		return fmt.Errorf("session: saving run for %s: %w", s.levels[s.idx].ID, err)
	}
	return nil
}
