package game

import (
	"math"
	"math/rand"

	"lavaleap/internal/core"
)

const (
	wobbleSpeed = 8.0
	wobbleDist  = 0.07
)

var coinSize = core.V(0.6, 0.6)

// Coin is a collectible that ignores terrain and bobs around a fixed
// anchor point. Collecting every coin in a level wins it.
type Coin struct {
	pos     core.Vector
	basePos core.Vector
	wobble  float64
}

// NewCoin creates a coin anchored slightly inside its spawn cell. The
// wobble phase starts at a random point of the wave period so coins do
// not bob in lockstep.
func NewCoin(cell core.Vector, rng *rand.Rand) *Coin {
	base := cell.Plus(core.V(0.2, 0.1))
	return &Coin{
		pos:     base,
		basePos: base,
		wobble:  rng.Float64() * 2 * math.Pi,
	}
}

func (c *Coin) Kind() ActorKind   { return KindCoin }
func (c *Coin) Pos() core.Vector  { return c.pos }
func (c *Coin) Size() core.Vector { return coinSize }

// Update advances the wobble phase and derives the position from the
// anchor, so the offset stays bounded by wobbleDist no matter how much
// time passes.
func (c *Coin) Update(dt float64, _ *State, _ core.InputFrame) Actor {
	wobble := c.wobble + dt*wobbleSpeed
	wobblePos := math.Sin(wobble) * wobbleDist
	return &Coin{
		pos:     c.basePos.Plus(core.V(0, wobblePos)),
		basePos: c.basePos,
		wobble:  wobble,
	}
}

// Collide collects the coin: it is removed from the actor list by its
// index, and when it was the last coin the status flips to won.
func (c *Coin) Collide(st *State, self int) *State {
	actors := make([]Actor, 0, len(st.Actors)-1)
	actors = append(actors, st.Actors[:self]...)
	actors = append(actors, st.Actors[self+1:]...)

	status := st.Status
	if !hasCoin(actors) {
		status = StatusWon
	}
	return &State{Level: st.Level, Actors: actors, Status: status}
}

func hasCoin(actors []Actor) bool {
	for _, a := range actors {
		if a.Kind() == KindCoin {
			return true
		}
	}
	return false
}
