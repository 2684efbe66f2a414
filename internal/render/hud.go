package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tomz197/ufoshooter/internal/draw"
	"github.com/tomz197/ufoshooter/internal/game"
	"github.com/tomz197/ufoshooter/internal/object"
)

const (
	blastBarWidth = 22
	hudRightWidth = 18 // Columns reserved for the right-hand status list
)

// styles are the text styles, bound to one terminal's color profile.
type styles struct {
	hud        lipgloss.Style
	footer     lipgloss.Style
	title      lipgloss.Style
	hint       lipgloss.Style
	letter     lipgloss.Style
	blastReady lipgloss.Style
	blastWait  lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	powerUps   [len(object.PowerUpKinds)]lipgloss.Style
}

func newStyles(w io.Writer, profile termenv.Profile) styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	fg := func(c draw.Color) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}

	st := styles{
		hud:        fg(draw.RGB(240, 240, 240)),
		footer:     fg(draw.RGB(150, 150, 190)),
		title:      fg(draw.RGB(255, 230, 230)).Bold(true),
		hint:       fg(draw.RGB(230, 230, 230)),
		letter:     fg(draw.RGB(15, 15, 25)).Bold(true),
		blastReady: fg(draw.RGB(255, 220, 180)),
		blastWait:  fg(draw.RGB(200, 160, 140)),
		barFill:    fg(blastColor),
		barEmpty:   fg(draw.RGB(30, 30, 50)),
	}
	for i, p := range powerUpStyles {
		st.powerUps[i] = fg(p.color)
	}
	return st
}

// drawHUD writes the status text around the playfield.
func (s *Screen) drawHUD(snap game.Snapshot, th theme) {
	base := th.base
	if snap.State == game.StateGameOver {
		base = draw.Blend(base, draw.RGB(0, 0, 0), gameOverDim)
	}
	bg := lipgloss.Color(base.Hex())
	on := func(st lipgloss.Style) lipgloss.Style { return st.Background(bg) }

	h := snap.HUD
	width := s.canvas.TerminalWidth()
	height := s.canvas.TerminalHeight()

	s.text(2, 1, on(s.styles.hud), fmt.Sprintf("Health: %d/%d", h.Health, h.MaxHealth))
	s.text(2, 2, on(s.styles.hud), fmt.Sprintf("Score: %d", h.Score))

	col, row := width-hudRightWidth, 1
	if h.BlastReady {
		s.text(col, row, on(s.styles.blastReady), "Blast READY (X)")
	} else {
		s.text(col, row, on(s.styles.blastWait), fmt.Sprintf("Blast: %.1fs", h.BlastCooldown))
	}
	row++
	if h.RapidFire > 0 {
		s.text(col, row, on(s.styles.powerUps[object.PowerUpRapid]), powerUpStyles[object.PowerUpRapid].label)
		row++
	}
	if h.SpreadShot > 0 {
		s.text(col, row, on(s.styles.powerUps[object.PowerUpSpread]), powerUpStyles[object.PowerUpSpread].label)
		row++
	}
	if h.Shields > 0 {
		label := fmt.Sprintf("%s x%d", powerUpStyles[object.PowerUpShield].label, h.Shields)
		s.text(col, row, on(s.styles.powerUps[object.PowerUpShield]), label)
	}

	// Blast charge bar, bottom center. The cell being charged is shaded.
	bar := on(s.styles.barFill).Render(chargeBar(h.BlastCharge, blastBarWidth)) +
		on(s.styles.barEmpty).Render(strings.Repeat(string(draw.BlockFull), blastBarWidth-chargeCells(h.BlastCharge, blastBarWidth)))
	barCol := (width-blastBarWidth)/2 + 1
	s.centered(height-2, on(s.styles.hud), "Blast (X)")
	s.put(barCol, height-1, blastBarWidth, bar)

	if s.footer != "" {
		s.text(2, height, on(s.styles.footer), s.footer)
	}
}

// chargeCells is how many bar cells charge covers, counting a partly
// charged cell.
func chargeCells(charge float64, width int) int {
	return max(0, min(int(math.Ceil(charge*float64(width))), width))
}

// chargeBar renders the charged part of a bar: full blocks, then the
// partly charged cell as a shade.
func chargeBar(charge float64, width int) string {
	units := max(0, min(charge, 1)) * float64(width)
	full := int(units)
	bar := strings.Repeat(string(draw.BlockFull), full)
	if full < width && units > float64(full) {
		bar += string(draw.ShadeLevel(units - float64(full)))
	}
	return bar
}

// drawGameOver writes the game-over message over the dimmed playfield.
func (s *Screen) drawGameOver(snap game.Snapshot) {
	bg := lipgloss.Color(draw.Blend(themeFor(snap.Theme).base, draw.RGB(0, 0, 0), gameOverDim).Hex())
	mid := s.canvas.TerminalHeight() / 2

	s.centered(mid-2, s.styles.title.Background(bg), "You were destroyed!")
	s.centered(mid, s.styles.hud.Background(bg), fmt.Sprintf("Final score: %d", snap.HUD.Score))
	s.centered(mid+2, s.styles.hint.Background(bg), "Press R to restart or ESC to quit")
}
