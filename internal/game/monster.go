package game

import "lavaleap/internal/core"

const (
	monsterSpeed = 4.0
	// A stomp counts when the player's feet are above the monster's
	// midline by at least this much.
	stompMargin = 0.5
)

var monsterSize = core.V(1.2, 2)

// Monster patrols horizontally toward the player. It can be defeated by
// jumping on top of it; touching it from the side loses the run.
type Monster struct {
	pos core.Vector
}

// NewMonster creates a monster at the given spawn cell, raised a full
// tile so the 2-tile-tall body stands on the cell the M occupied.
func NewMonster(cell core.Vector) *Monster {
	return &Monster{pos: cell.Plus(core.V(0, -1))}
}

func (m *Monster) Kind() ActorKind   { return KindMonster }
func (m *Monster) Pos() core.Vector  { return m.pos }
func (m *Monster) Size() core.Vector { return monsterSize }

// Update walks toward the player's current column at a fixed speed. The
// direction is recomputed every tick rather than stored. A wall stops
// the monster outright; unlike bouncing lava it never reverses, and its
// vertical position never changes.
func (m *Monster) Update(dt float64, st *State, _ core.InputFrame) Actor {
	dir := 1.0
	if st.Player().Pos().X < m.pos.X {
		dir = -1.0
	}

	newPos := m.pos.Plus(core.V(dir*monsterSpeed*dt, 0))
	if st.Level.Touches(newPos, monsterSize, TileWall) {
		return &Monster{pos: m.pos}
	}
	return &Monster{pos: newPos}
}

// Collide resolves contact with the player: stomped from above, the
// monster is removed and play continues; hit from the side, the run is
// lost and the monster stays.
func (m *Monster) Collide(st *State, self int) *State {
	player := st.Player()
	feet := player.Pos().Y + player.Size().Y
	midline := m.pos.Y + monsterSize.Y/2

	if feet < midline-stompMargin {
		actors := make([]Actor, 0, len(st.Actors)-1)
		actors = append(actors, st.Actors[:self]...)
		actors = append(actors, st.Actors[self+1:]...)
		return &State{Level: st.Level, Actors: actors, Status: st.Status}
	}
	return &State{Level: st.Level, Actors: st.Actors, Status: StatusLost}
}
