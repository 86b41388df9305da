package game

import (
	"testing"

	"lavaleap/internal/core"
)

func TestNewStateStartsPlaying(t *testing.T) {
	level := mustParse(t, samplePlan)
	st := NewState(level)

	if st.Status != StatusPlaying {
		t.Errorf("initial status = %v, want playing", st.Status)
	}
	if len(st.Actors) != len(level.StartActors) {
		t.Errorf("initial actors = %d, want %d", len(st.Actors), len(level.StartActors))
	}
	if st.CoinsLeft() != 2 {
		t.Errorf("coins left = %d, want 2", st.CoinsLeft())
	}
}

func TestUpdateDoesNotMutatePreviousState(t *testing.T) {
	level := mustParse(t, samplePlan)
	st := NewState(level)

	posBefore := make([]core.Vector, len(st.Actors))
	for i, a := range st.Actors {
		posBefore[i] = a.Pos()
	}

	_ = st.Update(dt, core.NewInputFrame())

	if st.Status != StatusPlaying {
		t.Error("Update mutated the previous state's status")
	}
	for i, a := range st.Actors {
		if a.Pos() != posBefore[i] {
			t.Errorf("Update mutated actor %d in the previous state", i)
		}
	}
}

func TestWinOnLastCoin(t *testing.T) {
	level := mustParse(t, `
#####
#@.o#
#####
`)
	st := NewState(level)

	// Drop the player straight onto the coin.
	for i, a := range st.Actors {
		if a.Kind() == KindPlayer {
			st.Actors[i] = &Player{pos: core.V(3.0, 0.7)}
		}
	}

	next := st.Update(dt, core.NewInputFrame())

	if next.Status != StatusWon {
		t.Fatalf("status = %v, want won", next.Status)
	}
	if next.CoinsLeft() != 0 {
		t.Errorf("coins left = %d, want 0", next.CoinsLeft())
	}
	if len(next.Actors) != 1 {
		t.Errorf("actors = %d, want 1 (player only)", len(next.Actors))
	}
	if next.Actors[0].Kind() != KindPlayer {
		t.Error("surviving actor is not the player")
	}
}

func TestCollectCoinKeepsPlayingWhileCoinsRemain(t *testing.T) {
	level := mustParse(t, `
#######
#@.o.o#
#######
`)
	st := NewState(level)

	for i, a := range st.Actors {
		if a.Kind() == KindPlayer {
			st.Actors[i] = &Player{pos: core.V(3.0, 0.7)}
		}
	}

	next := st.Update(dt, core.NewInputFrame())

	if next.Status != StatusPlaying {
		t.Fatalf("status = %v, want playing with one coin remaining", next.Status)
	}
	if next.CoinsLeft() != 1 {
		t.Errorf("coins left = %d, want 1", next.CoinsLeft())
	}
}

func TestLossOnLavaTile(t *testing.T) {
	level := mustParse(t, `
#####
#...#
#@..#
#+++#
`)
	st := NewState(level)
	actorsBefore := len(st.Actors)

	// The player has no floor, only the lava pool below.
	next := st.Update(dt, core.NewInputFrame())

	if next.Status != StatusLost {
		t.Fatalf("status = %v, want lost", next.Status)
	}
	if len(next.Actors) != actorsBefore {
		t.Errorf("actor list changed on lava loss: %d -> %d", actorsBefore, len(next.Actors))
	}
}

func TestLossOnLavaActor(t *testing.T) {
	level := mustParse(t, `
######
#....#
#@.=.#
######
`)
	st := NewState(level)

	// Put the player in the lava block's path.
	for i, a := range st.Actors {
		if a.Kind() == KindPlayer {
			st.Actors[i] = &Player{pos: core.V(3.1, 1.2)}
		}
	}

	next := st.Update(dt, core.NewInputFrame())

	if next.Status != StatusLost {
		t.Fatalf("status = %v, want lost", next.Status)
	}
}

func TestMonsterStompRemovesMonster(t *testing.T) {
	level := mustParse(t, `
########
#@.....#
#......#
#....M.#
########
`)
	st := NewState(level)

	// Player falling onto the monster's head: feet above its midline.
	for i, a := range st.Actors {
		if a.Kind() == KindPlayer {
			st.Actors[i] = &Player{pos: core.V(5.2, 0.9), speed: core.V(0, 2)}
		}
	}

	next := st.Update(dt, core.NewInputFrame())

	if next.Status != StatusPlaying {
		t.Fatalf("status = %v, want playing after stomp", next.Status)
	}
	for _, a := range next.Actors {
		if a.Kind() == KindMonster {
			t.Fatal("monster should be removed after stomp")
		}
	}
}

func TestMonsterSideHitLoses(t *testing.T) {
	level := mustParse(t, `
########
#@.....#
#......#
#....M.#
########
`)
	st := NewState(level)

	// Player level with the monster's body: feet below its midline.
	for i, a := range st.Actors {
		if a.Kind() == KindPlayer {
			st.Actors[i] = &Player{pos: core.V(5.0, 2.4)}
		}
	}

	next := st.Update(dt, core.NewInputFrame())

	if next.Status != StatusLost {
		t.Fatalf("status = %v, want lost", next.Status)
	}
	monsters := 0
	for _, a := range next.Actors {
		if a.Kind() == KindMonster {
			monsters++
		}
	}
	if monsters != 1 {
		t.Errorf("monster count = %d, want 1 (side hit keeps the monster)", monsters)
	}
}

func TestTerminalStateKeepsAnimating(t *testing.T) {
	level := mustParse(t, samplePlan)
	st := NewState(level)
	st.Status = StatusWon

	var coinBefore core.Vector
	for _, a := range st.Actors {
		if a.Kind() == KindCoin {
			coinBefore = a.Pos()
			break
		}
	}

	next := st.Update(dt, core.NewInputFrame())

	if next.Status != StatusWon {
		t.Fatalf("terminal status changed to %v", next.Status)
	}
	var coinAfter core.Vector
	for _, a := range next.Actors {
		if a.Kind() == KindCoin {
			coinAfter = a.Pos()
			break
		}
	}
	if coinAfter == coinBefore {
		t.Error("coins should keep wobbling after the status leaves playing")
	}
	if len(next.Actors) != len(st.Actors) {
		t.Error("no collision resolution should run in a terminal state")
	}
}

func TestPlayerPanicsWithoutPlayer(t *testing.T) {
	level := mustParse(t, samplePlan)
	st := &State{Level: level, Actors: nil, Status: StatusPlaying}

	defer func() {
		if recover() == nil {
			t.Error("Player() on a state without a player should panic")
		}
	}()
	st.Player()
}
