// Package game implements the platformer simulation: level parsing,
// actor physics, and the per-tick state transition. It contains pure
// logic with no rendering or I/O; the platform layer drives it with a
// time delta and an input snapshot each tick and consumes the resulting
// immutable state snapshots.
package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"lavaleap/internal/core"
)

// TileKind identifies a background grid cell.
type TileKind int

const (
	TileEmpty TileKind = iota
	TileWall
	TileLava
)

// ErrMalformedLevel is returned by Parse for plans with ragged rows,
// unrecognized characters, or no player spawn.
var ErrMalformedLevel = errors.New("game: malformed level")

// Level is the static part of a stage: a fixed grid of background tiles
// plus the actors the stage starts with. A Level is created once by Parse
// and never modified afterwards; restarting a stage reuses StartActors.
type Level struct {
	Width       int
	Height      int
	Rows        [][]TileKind
	StartActors []Actor
}

// Parse builds a Level from a textual plan: one row per line, one
// character per column, trimmed of leading and trailing blank lines.
//
//	.  empty background        @  player spawn
//	#  wall                    o  coin
//	+  static lava tile        =  horizontally bouncing lava
//	|  vertically bouncing lava
//	v  dripping lava           M  patrolling monster
//
// Characters that spawn an actor leave an empty background tile behind.
// rng drives the random wobble phase of coins; pass a seeded source for
// deterministic runs. A nil rng falls back to an unseeded one.
func Parse(plan string, rng *rand.Rand) (*Level, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	lines := strings.Split(strings.Trim(plan, "\n"), "\n")
	if len(lines) == 0 || (len(lines) == 1 && strings.TrimSpace(lines[0]) == "") {
		return nil, fmt.Errorf("%w: empty plan", ErrMalformedLevel)
	}

	width := len(lines[0])
	level := &Level{
		Width:  width,
		Height: len(lines),
		Rows:   make([][]TileKind, len(lines)),
	}

	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrMalformedLevel, y, len(line), width)
		}

		row := make([]TileKind, width)
		for x := 0; x < width; x++ {
			ch := line[x]
			cell := core.V(float64(x), float64(y))

			switch ch {
			case '.':
				row[x] = TileEmpty
			case '#':
				row[x] = TileWall
			case '+':
				row[x] = TileLava
			case '@':
				row[x] = TileEmpty
				level.StartActors = append(level.StartActors, NewPlayer(cell))
			case 'o':
				row[x] = TileEmpty
				level.StartActors = append(level.StartActors, NewCoin(cell, rng))
			case '=', '|', 'v':
				row[x] = TileEmpty
				level.StartActors = append(level.StartActors, NewLava(cell, ch))
			case 'M':
				row[x] = TileEmpty
				level.StartActors = append(level.StartActors, NewMonster(cell))
			default:
				return nil, fmt.Errorf("%w: unrecognized character %q at row %d, col %d",
					ErrMalformedLevel, ch, y, x)
			}
		}
		level.Rows[y] = row
	}

	if !hasPlayer(level.StartActors) {
		return nil, fmt.Errorf("%w: no player spawn (@)", ErrMalformedLevel)
	}

	return level, nil
}

func hasPlayer(actors []Actor) bool {
	for _, a := range actors {
		if a.Kind() == KindPlayer {
			return true
		}
	}
	return false
}

// Touches reports whether the rectangle at pos with the given size
// overlaps any grid cell of the requested kind. The rectangle spans the
// inclusive range of cells from floor(pos) to ceil(pos+size) on each
// axis. Cells outside the grid count as wall, so the level is implicitly
// walled at its boundary.
func (l *Level) Touches(pos, size core.Vector, kind TileKind) bool {
	xStart := int(math.Floor(pos.X))
	xEnd := int(math.Ceil(pos.X + size.X))
	yStart := int(math.Floor(pos.Y))
	yEnd := int(math.Ceil(pos.Y + size.Y))

	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			outside := x < 0 || x >= l.Width || y < 0 || y >= l.Height

			var here TileKind
			if outside {
				here = TileWall
			} else {
				here = l.Rows[y][x]
			}
			if here == kind {
				return true
			}
		}
	}
	return false
}

// CoinCount returns how many coins the level starts with.
func (l *Level) CoinCount() int {
	n := 0
	for _, a := range l.StartActors {
		if a.Kind() == KindCoin {
			n++
		}
	}
	return n
}
