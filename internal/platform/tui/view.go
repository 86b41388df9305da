package tui

import (
	"fmt"
	"math"

	"lavaleap/internal/core"
	"lavaleap/internal/game"
	"lavaleap/internal/session"
)

// Glyphs for tiles and actors.
const (
	glyphWall    = '#'
	glyphLava    = '~'
	glyphPlayer  = '@'
	glyphCoin    = 'o'
	glyphMonster = 'M'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// Camera margins: the player stays at least this many tiles away from
// the viewport edge before the camera scrolls.
const (
	cameraMarginX = 10
	cameraMarginY = 4
)

// Renderer draws a campaign session into a screen buffer. The camera
// follows the player and is clamped to the level bounds.
type Renderer struct {
	camX, camY float64
}

// NewRenderer creates a renderer with the camera at the level origin.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders the session's current state: HUD, tiles, actors, and any
// phase banner.
func (r *Renderer) Draw(s *core.Screen, sess *session.Session, paused bool) {
	s.Clear()

	st := sess.State()
	viewW := s.Width()
	viewH := s.Height() - hudRows
	if viewW <= 0 || viewH <= 0 {
		return
	}

	r.followPlayer(st, viewW, viewH)

	ox := int(math.Round(r.camX))
	oy := int(math.Round(r.camY))

	r.drawTiles(s, st.Level, ox, oy, viewW, viewH)
	r.drawActors(s, st, ox, oy)
	r.drawHUD(s, sess)
	r.drawBanner(s, sess, paused)
}

// followPlayer scrolls the camera so the player stays inside the
// margins, then clamps it to the level.
func (r *Renderer) followPlayer(st *game.State, viewW, viewH int) {
	p := st.Player()
	cx := p.Pos().X + p.Size().X/2
	cy := p.Pos().Y + p.Size().Y/2

	if cx-r.camX < cameraMarginX {
		r.camX = cx - cameraMarginX
	}
	if cx-r.camX > float64(viewW-cameraMarginX) {
		r.camX = cx - float64(viewW-cameraMarginX)
	}
	if cy-r.camY < cameraMarginY {
		r.camY = cy - cameraMarginY
	}
	if cy-r.camY > float64(viewH-cameraMarginY) {
		r.camY = cy - float64(viewH-cameraMarginY)
	}

	r.camX = core.ClampF(r.camX, 0, math.Max(0, float64(st.Level.Width-viewW)))
	r.camY = core.ClampF(r.camY, 0, math.Max(0, float64(st.Level.Height-viewH)))
}

func (r *Renderer) drawTiles(s *core.Screen, level *game.Level, ox, oy, viewW, viewH int) {
	for sy := 0; sy < viewH; sy++ {
		ty := oy + sy
		if ty < 0 || ty >= level.Height {
			continue
		}
		for sx := 0; sx < viewW; sx++ {
			tx := ox + sx
			if tx < 0 || tx >= level.Width {
				continue
			}
			switch level.Rows[ty][tx] {
			case game.TileWall:
				s.SetCell(sx, sy+hudRows, glyphWall, core.ColorGray)
			case game.TileLava:
				s.SetCell(sx, sy+hudRows, glyphLava, core.ColorBrightRed)
			}
		}
	}
}

func (r *Renderer) drawActors(s *core.Screen, st *game.State, ox, oy int) {
	for _, a := range st.Actors {
		glyph, color := actorGlyph(a.Kind())

		x0 := int(math.Floor(a.Pos().X))
		x1 := int(math.Ceil(a.Pos().X + a.Size().X))
		y0 := int(math.Floor(a.Pos().Y))
		y1 := int(math.Ceil(a.Pos().Y + a.Size().Y))

		for ty := y0; ty < y1; ty++ {
			for tx := x0; tx < x1; tx++ {
				s.SetCell(tx-ox, ty-oy+hudRows, glyph, color)
			}
		}
	}
}

func actorGlyph(kind game.ActorKind) (rune, core.Color) {
	switch kind {
	case game.KindPlayer:
		return glyphPlayer, core.ColorBrightYellow
	case game.KindLava:
		return glyphLava, core.ColorOrange
	case game.KindCoin:
		return glyphCoin, core.ColorYellow
	case game.KindMonster:
		return glyphMonster, core.ColorMagenta
	}
	return '?', core.ColorDefault
}

func (r *Renderer) drawHUD(s *core.Screen, sess *session.Session) {
	hud := fmt.Sprintf(" %s [%d/%d]  Lives: %d  Coins: %d",
		sess.Level().Name,
		sess.LevelIndex()+1,
		sess.LevelCount(),
		sess.Lives(),
		sess.State().CoinsLeft(),
	)
	s.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

func (r *Renderer) drawBanner(s *core.Screen, sess *session.Session, paused bool) {
	var text string
	var color core.Color

	switch {
	case paused:
		text, color = "PAUSED - press P to resume", core.ColorBrightWhite
	case sess.Phase() == session.PhaseLevelWon:
		text, color = "LEVEL COMPLETE!", core.ColorGreen
	case sess.Phase() == session.PhaseLevelLost:
		text, color = "OUCH!", core.ColorBrightRed
	case sess.Phase() == session.PhaseCampaignWon:
		text, color = "YOU WIN! Press Enter to play again", core.ColorBrightYellow
	case sess.Phase() == session.PhaseGameOver:
		text, color = "GAME OVER - press Enter to retry", core.ColorBrightRed
	default:
		return
	}

	y := s.Height() / 2
	x := (s.Width() - len(text)) / 2
	s.DrawTextColored(x, y, text, color)
}
