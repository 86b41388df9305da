package game

import "lavaleap/internal/core"

// ActorKind tags the variant of an actor.
type ActorKind int

const (
	KindPlayer ActorKind = iota
	KindLava
	KindCoin
	KindMonster
)

// String returns a human-readable name for the kind.
func (k ActorKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindLava:
		return "lava"
	case KindCoin:
		return "coin"
	case KindMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Actor is a moving or interactive entity in a level, as opposed to the
// static background tiles. Actors are immutable snapshots: Update never
// mutates the receiver, it returns a fresh instance for the next state.
// All actors of one kind share the same size constant.
type Actor interface {
	Kind() ActorKind
	Pos() core.Vector
	Size() core.Vector

	// Update computes the actor for the next state. st is the previous,
	// pre-transition state; every actor in one tick sees the same st, so
	// updates are simultaneous rather than sequentially visible.
	Update(dt float64, st *State, in core.InputFrame) Actor
}

// Collider is implemented by actors that react to overlapping the
// player. Collide receives the state being accumulated during collision
// resolution and the actor's index in that state's actor list, which
// serves as its identity for removal. Unlike Update, Collide calls are
// sequential: each sees the effects of earlier collisions in the same
// tick.
type Collider interface {
	Actor
	Collide(st *State, self int) *State
}

// bounds returns the actor's axis-aligned bounding box.
func bounds(a Actor) core.Rect {
	return core.Rect{Pos: a.Pos(), Size: a.Size()}
}
