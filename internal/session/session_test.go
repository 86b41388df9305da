package session

import (
	"testing"

	"lavaleap/internal/config"
	"lavaleap/internal/core"
	"lavaleap/internal/levels"
)

const tickDT = 1.0 / 60

// winPlan is beatable by holding right: the single coin sits on the
// player's path along the floor.
const winPlan = ".....\n" +
	".....\n" +
	".@.o.\n" +
	"#####\n"

// losePlan drops the player straight into a lava pool.
const losePlan = ".....\n" +
	".@...\n" +
	"#+++#\n"

type recordedRun struct {
	levelID   string
	completed bool
	deaths    int
	ticks     int
}

type fakeRecorder struct {
	runs []recordedRun
}

func (f *fakeRecorder) SaveRun(levelID string, completed bool, deaths, durationTicks int) (int64, error) {
	f.runs = append(f.runs, recordedRun{levelID, completed, deaths, durationTicks})
	return int64(len(f.runs)), nil
}

func testConfig() config.GameConfig {
	return config.GameConfig{Lives: 2, GraceTicks: 2}
}

func holdRight() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	return in
}

// tickUntil advances the session until the phase leaves PhasePlaying.
func tickUntil(t *testing.T, s *Session, in core.InputFrame, maxTicks int) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		if err := s.Tick(tickDT, in); err != nil {
			t.Fatalf("tick %d failed: %v", i, err)
		}
		if s.Phase() != PhasePlaying {
			return
		}
	}
	t.Fatalf("session still playing after %d ticks", maxTicks)
}

// drainGrace ticks through the grace window until the phase changes.
func drainGrace(t *testing.T, s *Session) {
	t.Helper()
	from := s.Phase()
	for i := 0; i < 100; i++ {
		if err := s.Tick(tickDT, core.NewInputFrame()); err != nil {
			t.Fatalf("grace tick failed: %v", err)
		}
		if s.Phase() != from {
			return
		}
	}
	t.Fatalf("phase stuck at %v through grace window", from)
}

func TestNewRequiresLevels(t *testing.T) {
	if _, err := New(nil, testConfig(), 1); err == nil {
		t.Error("empty campaign should fail")
	}
}

func TestCampaignAdvancesOnWin(t *testing.T) {
	levelSet := []levels.Level{
		{ID: "one", Name: "One", Plan: winPlan},
		{ID: "two", Name: "Two", Plan: winPlan},
	}

	s, err := New(levelSet, testConfig(), 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	rec := &fakeRecorder{}
	s.SetRecorder(rec)

	tickUntil(t, s, holdRight(), 600)
	if s.Phase() != PhaseLevelWon {
		t.Fatalf("phase = %v, want level-won", s.Phase())
	}
	drainGrace(t, s)

	if s.Phase() != PhasePlaying || s.LevelIndex() != 1 {
		t.Fatalf("after first win: phase %v, level %d; want playing on level 1", s.Phase(), s.LevelIndex())
	}
	if s.Deaths() != 0 || s.Ticks() != 0 {
		t.Errorf("stats not reset: deaths %d, ticks %d", s.Deaths(), s.Ticks())
	}

	tickUntil(t, s, holdRight(), 600)
	drainGrace(t, s)
	if s.Phase() != PhaseCampaignWon {
		t.Fatalf("phase = %v, want campaign-won", s.Phase())
	}

	if len(rec.runs) != 2 {
		t.Fatalf("recorded %d runs, want 2", len(rec.runs))
	}
	for i, id := range []string{"one", "two"} {
		run := rec.runs[i]
		if run.levelID != id || !run.completed || run.deaths != 0 {
			t.Errorf("run %d = %+v, want completed %s with 0 deaths", i, run, id)
		}
		if run.ticks <= 0 {
			t.Errorf("run %d has no duration", i)
		}
	}
}

func TestLivesRunOut(t *testing.T) {
	levelSet := []levels.Level{{ID: "pit", Name: "Pit", Plan: losePlan}}

	s, err := New(levelSet, testConfig(), 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	rec := &fakeRecorder{}
	s.SetRecorder(rec)

	// First death: level restarts with a life left.
	tickUntil(t, s, core.NewInputFrame(), 600)
	if s.Phase() != PhaseLevelLost {
		t.Fatalf("phase = %v, want level-lost", s.Phase())
	}
	drainGrace(t, s)
	if s.Phase() != PhasePlaying || s.Lives() != 1 || s.Deaths() != 1 {
		t.Fatalf("after first death: phase %v, lives %d, deaths %d", s.Phase(), s.Lives(), s.Deaths())
	}

	// Second death: out of lives.
	tickUntil(t, s, core.NewInputFrame(), 600)
	drainGrace(t, s)
	if s.Phase() != PhaseGameOver || s.Lives() != 0 {
		t.Fatalf("after second death: phase %v, lives %d; want game-over with 0 lives", s.Phase(), s.Lives())
	}

	if len(rec.runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(rec.runs))
	}
	run := rec.runs[0]
	if run.levelID != "pit" || run.completed || run.deaths != 2 {
		t.Errorf("game-over run = %+v, want incomplete pit run with 2 deaths", run)
	}
}

func TestConfirmRestartsAfterGameOver(t *testing.T) {
	levelSet := []levels.Level{{ID: "pit", Name: "Pit", Plan: losePlan}}

	s, err := New(levelSet, testConfig(), 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; s.Phase() != PhaseGameOver; i++ {
		if i > 1000 {
			t.Fatal("session never reached game-over")
		}
		if err := s.Tick(tickDT, core.NewInputFrame()); err != nil {
			t.Fatalf("tick failed: %v", err)
		}
	}

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	if err := s.Tick(tickDT, confirm); err != nil {
		t.Fatalf("restart tick failed: %v", err)
	}

	if s.Phase() != PhasePlaying || s.Lives() != 2 || s.LevelIndex() != 0 || s.Deaths() != 0 {
		t.Errorf("after restart: phase %v, lives %d, level %d, deaths %d",
			s.Phase(), s.Lives(), s.LevelIndex(), s.Deaths())
	}
}

func TestManualRestartCostsALife(t *testing.T) {
	levelSet := []levels.Level{{ID: "one", Name: "One", Plan: winPlan}}

	s, err := New(levelSet, testConfig(), 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	if err := s.Tick(tickDT, restart); err != nil {
		t.Fatalf("restart tick failed: %v", err)
	}

	if s.Phase() != PhasePlaying || s.Lives() != 1 || s.Deaths() != 1 {
		t.Errorf("after manual restart: phase %v, lives %d, deaths %d", s.Phase(), s.Lives(), s.Deaths())
	}
}
