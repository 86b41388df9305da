package game

import "lavaleap/internal/core"

// Status is the three-valued outcome flag of a running level.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of a running level: the shared level
// grid, the current actor list, and the outcome so far. Every Update
// call produces a new State; nothing is modified in place. The driver
// holds the current snapshot and swaps it after each tick.
type State struct {
	Level  *Level
	Actors []Actor
	Status Status
}

// NewState starts a level from its parsed starting actors.
func NewState(level *Level) *State {
	actors := make([]Actor, len(level.StartActors))
	copy(actors, level.StartActors)
	return &State{Level: level, Actors: actors, Status: StatusPlaying}
}

// Player returns the player actor. Parsed levels always contain exactly
// one; a state without a player is a content bug, so this panics rather
// than returning an error.
func (st *State) Player() *Player {
	for _, a := range st.Actors {
		if p, ok := a.(*Player); ok {
			return p
		}
	}
	panic("game: state has no player actor")
}

// CoinsLeft returns how many coins remain uncollected.
func (st *State) CoinsLeft() int {
	n := 0
	for _, a := range st.Actors {
		if a.Kind() == KindCoin {
			n++
		}
	}
	return n
}

// Update advances the simulation by dt seconds and returns the next
// state. All actors are updated against the same pre-transition state,
// then collisions are resolved on the result:
//
//  1. Once the status has left playing, actors keep animating (coins
//     still wobble during the end-of-level grace window) but no further
//     collisions are resolved.
//  2. The player standing in a lava background tile loses immediately.
//  3. Every other actor overlapping the player gets its Collide call,
//     in actor-list order, each against the latest accumulated state.
func (st *State) Update(dt float64, in core.InputFrame) *State {
	actors := make([]Actor, len(st.Actors))
	for i, a := range st.Actors {
		actors[i] = a.Update(dt, st, in)
	}

	next := &State{Level: st.Level, Actors: actors, Status: st.Status}
	if next.Status != StatusPlaying {
		return next
	}

	player := next.Player()
	if st.Level.Touches(player.Pos(), player.Size(), TileLava) {
		next.Status = StatusLost
		return next
	}

	playerRect := bounds(player)
	i := 0
	for i < len(next.Actors) {
		a := next.Actors[i]
		if a.Kind() == KindPlayer {
			i++
			continue
		}
		c, ok := a.(Collider)
		if !ok || !core.Overlap(bounds(a), playerRect) {
			i++
			continue
		}

		before := len(next.Actors)
		next = c.Collide(next, i)
		if len(next.Actors) == before {
			i++
		}
		// When the collision removed the actor, the same index now
		// holds the next one.
	}

	return next
}
