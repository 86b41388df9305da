package game

import "lavaleap/internal/core"

var lavaSize = core.V(1, 1)

// Lava is a moving lava block. Three variants exist, keyed by the plan
// character: '=' bounces horizontally, '|' bounces vertically, and 'v'
// drips downward, jumping back to its spawn point on impact instead of
// reversing.
type Lava struct {
	pos   core.Vector
	speed core.Vector
	reset *core.Vector // spawn point for the dripping variant, nil otherwise
}

// NewLava creates a lava actor for the given plan character.
func NewLava(cell core.Vector, ch byte) *Lava {
	switch ch {
	case '=':
		return &Lava{pos: cell, speed: core.V(2, 0)}
	case '|':
		return &Lava{pos: cell, speed: core.V(0, 2)}
	case 'v':
		reset := cell
		return &Lava{pos: cell, speed: core.V(0, 3), reset: &reset}
	default:
		panic("game: unknown lava character " + string(ch))
	}
}

func (l *Lava) Kind() ActorKind   { return KindLava }
func (l *Lava) Pos() core.Vector  { return l.pos }
func (l *Lava) Size() core.Vector { return lavaSize }

// Speed returns the lava's current speed vector.
func (l *Lava) Speed() core.Vector { return l.speed }

// Update moves the lava along its speed vector. On hitting a wall the
// dripping variant teleports back to its spawn point while the bouncing
// variants stay put and reverse direction for the next tick.
func (l *Lava) Update(dt float64, st *State, _ core.InputFrame) Actor {
	newPos := l.pos.Plus(l.speed.Times(dt))

	switch {
	case !st.Level.Touches(newPos, lavaSize, TileWall):
		return &Lava{pos: newPos, speed: l.speed, reset: l.reset}
	case l.reset != nil:
		return &Lava{pos: *l.reset, speed: l.speed, reset: l.reset}
	default:
		return &Lava{pos: l.pos, speed: l.speed.Times(-1)}
	}
}

// Collide ends the run: touching moving lava loses immediately.
func (l *Lava) Collide(st *State, _ int) *State {
	return &State{Level: st.Level, Actors: st.Actors, Status: StatusLost}
}
