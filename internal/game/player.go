package game

import "lavaleap/internal/core"

// Player physics constants, in tiles and tiles per second.
const (
	playerXSpeed = 7.0
	gravity      = 30.0
	jumpSpeed    = 17.0
)

var playerSize = core.V(0.8, 1.5)

// Player is the controllable actor. Horizontal speed is recomputed from
// input every tick; only vertical speed carries momentum between ticks.
type Player struct {
	pos   core.Vector
	speed core.Vector
}

// NewPlayer creates a player at the given spawn cell. The position is
// raised by half a tile so the 1.5-tile-tall body lines up with the cell
// the @ character occupied.
func NewPlayer(cell core.Vector) *Player {
	return &Player{pos: cell.Plus(core.V(0, -0.5))}
}

func (p *Player) Kind() ActorKind   { return KindPlayer }
func (p *Player) Pos() core.Vector  { return p.pos }
func (p *Player) Size() core.Vector { return playerSize }

// Speed returns the player's current speed. The horizontal component is
// the attempted speed even when a wall stopped the move, which lets the
// renderer pick a facing direction.
func (p *Player) Speed() core.Vector { return p.speed }

// Update resolves the player's motion one axis at a time. Each axis move
// is accepted only if the destination does not touch a wall; a blocked
// vertical move either triggers a jump (when the jump key is held and
// the player is falling or resting) or zeroes the vertical speed.
func (p *Player) Update(dt float64, st *State, in core.InputFrame) Actor {
	xSpeed := 0.0
	if in.Has(core.ActionLeft) {
		xSpeed -= playerXSpeed
	}
	if in.Has(core.ActionRight) {
		xSpeed += playerXSpeed
	}

	pos := p.pos
	movedX := pos.Plus(core.V(xSpeed*dt, 0))
	if !st.Level.Touches(movedX, playerSize, TileWall) {
		pos = movedX
	}

	ySpeed := p.speed.Y + dt*gravity
	movedY := pos.Plus(core.V(0, ySpeed*dt))
	if !st.Level.Touches(movedY, playerSize, TileWall) {
		pos = movedY
	} else if in.Has(core.ActionJump) && ySpeed > 0 {
		ySpeed = -jumpSpeed
	} else {
		ySpeed = 0
	}

	return &Player{pos: pos, speed: core.V(xSpeed, ySpeed)}
}
