package render

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/ufoshooter/internal/draw"
	"github.com/tomz197/ufoshooter/internal/game"
)

// blastAlpha is the ring's opacity when it first appears.
const blastAlpha = 220.0 / 255

// drawBackground fills the sky and its drifting star layers.
func (s *Screen) drawBackground(th theme, clock, offset float64) {
	s.canvas.Clear(th.base)

	ms := clock * 1000
	for l, layer := range th.layers {
		for _, st := range s.stars[l] {
			y := math.Mod(st.y+ms*layer.speed, game.ScreenHeight)
			s.canvas.SetFloat(st.x-offset, y, layer.color)
		}
	}
}

// drawEntities draws the snapshot's requests in order, shifted by offset.
func (s *Screen) drawEntities(snap game.Snapshot, th theme, offset float64) {
	for _, d := range snap.Draws {
		x := d.X - offset
		switch d.Kind {
		case game.EntityAdversary:
			s.drawAdversary(d, x)
		case game.EntityPowerUp:
			st := powerUpStyleFor(d.Variant)
			s.canvas.FillRect(x-d.W/2, d.Y-d.H/2, x+d.W/2, d.Y+d.H/2, st.color)
		case game.EntityBullet:
			s.canvas.FillEllipse(x, d.Y, d.W/2, d.H/2, bulletColor)
		case game.EntityEnemyBullet:
			s.canvas.FillEllipse(x, d.Y, d.W/2, d.H/2, enemyBulletColor)
		case game.EntityBlast:
			color := draw.Blend(th.base, blastColor, blastAlpha*(1-d.Fade))
			s.canvas.DrawCircle(x, d.Y, d.W/2, color)
		case game.EntityParticle:
			s.canvas.SetFloat(x, d.Y, draw.Blend(th.base, particleColorFor(d.Variant), d.Fade))
		case game.EntityPlayer:
			s.drawPlayer(d, x, snap.HUD.Shields)
		}
	}
}

func (s *Screen) drawAdversary(d game.DrawRequest, x float64) {
	st := adversaryStyleFor(d.Variant)
	left, top, bottom := x-d.W/2, d.Y-d.H/2, d.Y+d.H/2

	s.canvas.FillEllipse(x, d.Y, d.W/2, d.H/2, st.body)
	s.canvas.FillEllipse(x, top-d.H/3+d.H/4, d.W/6, d.H/4, domeColor)
	for i := 0; i < st.lights; i++ {
		lx := left + (float64(i)+0.5)*d.W/float64(st.lights)
		s.canvas.SetFloat(lx, bottom-4, ufoLightColor)
	}

	if st.healthBar {
		s.canvas.FillRect(left, top-8, left+d.W, top-3, healthBarBack)
		s.canvas.FillRect(left, top-8, left+d.W*d.Health, top-3, healthBarFront)
	}
}

func (s *Screen) drawPlayer(d game.DrawRequest, x float64, shields int) {
	body := playerColor
	if shields > 0 {
		body = playerShieldColor
	}
	left, top := x-d.W/2, d.Y-d.H/2

	s.canvas.FillRect(left, top, left+d.W, top+d.H, body)
	s.canvas.FillRect(x-5, top-20, x+5, top+5, bulletColor) // Barrel
	if shields > 0 {
		s.canvas.DrawEllipse(x, d.Y, d.W/2+10, d.H/2+5, shieldRingColor)
	}
}

// drawPowerUpLetters labels each falling power-up with its kind.
func (s *Screen) drawPowerUpLetters(snap game.Snapshot, offset float64) {
	for _, d := range snap.Draws {
		if d.Kind != game.EntityPowerUp {
			continue
		}
		st := powerUpStyleFor(d.Variant)
		col, row := s.canvas.LogicalToTerminal(d.X-offset, d.Y)
		s.text(col, row, s.styles.letter.Background(lipgloss.Color(st.color.Hex())), st.letter)
	}
}
