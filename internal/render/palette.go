package render

import (
	"github.com/tomz197/ufoshooter/internal/draw"
	"github.com/tomz197/ufoshooter/internal/game"
	"github.com/tomz197/ufoshooter/internal/object"
)

var (
	playerColor       = draw.RGB(60, 200, 255)
	playerShieldColor = draw.RGB(100, 220, 255)
	shieldRingColor   = draw.RGB(150, 240, 255)
	bulletColor       = draw.RGB(255, 220, 90)
	enemyBulletColor  = draw.RGB(255, 80, 80)
	explosionColor    = draw.RGB(255, 140, 80)
	blastColor        = draw.RGB(255, 210, 120)
	domeColor         = draw.RGB(200, 255, 255)
	ufoLightColor     = draw.RGB(255, 255, 180)
	healthBarBack     = draw.RGB(60, 20, 30)
	healthBarFront    = draw.RGB(255, 90, 90)
	noticeColor       = draw.RGB(120, 30, 40)
)

// adversaryStyle is how one UFO kind looks.
type adversaryStyle struct {
	body      draw.Color
	lights    int  // Number of lights along the rim
	healthBar bool // Shown for kinds that take more than one hit
}

var adversaryStyles = [...]adversaryStyle{
	object.AdversarySmall: {body: draw.RGB(140, 255, 140), lights: 4},
	object.AdversaryBig:   {body: draw.RGB(255, 120, 180), lights: 6, healthBar: true},
}

// powerUpStyle is how one power-up kind looks.
type powerUpStyle struct {
	color  draw.Color
	letter string
	label  string // HUD text while active
}

var powerUpStyles = [len(object.PowerUpKinds)]powerUpStyle{
	object.PowerUpRapid:  {color: draw.RGB(120, 220, 255), letter: "R", label: "Rapid fire"},
	object.PowerUpSpread: {color: draw.RGB(255, 200, 120), letter: "S", label: "Spread shot"},
	object.PowerUpShield: {color: draw.RGB(180, 255, 220), letter: "H", label: "Shield"},
}

var particleColors = [...]draw.Color{
	object.ParticleDebris: explosionColor,
	object.ParticleSpark:  bulletColor,
	object.ParticleWreck:  playerColor,
}

// starLayer is one parallax layer of the background.
type starLayer struct {
	speed float64 // Logical units per millisecond of drift
	color draw.Color
}

// theme is a background palette.
type theme struct {
	base   draw.Color
	layers [3]starLayer
}

var themes = [game.ThemeCount]theme{
	{
		base: draw.MustHex("#050a19"),
		layers: [3]starLayer{
			{speed: 0.02, color: draw.RGB(40, 40, 70)},
			{speed: 0.05, color: draw.RGB(80, 80, 120)},
			{speed: 0.09, color: draw.RGB(140, 140, 200)},
		},
	},
	{
		base: draw.MustHex("#0a0519"),
		layers: [3]starLayer{
			{speed: 0.03, color: draw.RGB(70, 40, 80)},
			{speed: 0.06, color: draw.RGB(130, 70, 140)},
			{speed: 0.11, color: draw.RGB(210, 120, 220)},
		},
	},
	{
		base: draw.MustHex("#051419"),
		layers: [3]starLayer{
			{speed: 0.03, color: draw.RGB(40, 70, 80)},
			{speed: 0.07, color: draw.RGB(80, 150, 170)},
			{speed: 0.12, color: draw.RGB(140, 230, 240)},
		},
	},
}

// themeFor never indexes out of range, whatever the snapshot says.
func themeFor(index int) theme {
	if index < 0 || index >= len(themes) {
		return themes[0]
	}
	return themes[index]
}

func adversaryStyleFor(variant int) adversaryStyle {
	if variant < 0 || variant >= len(adversaryStyles) {
		return adversaryStyles[object.AdversarySmall]
	}
	return adversaryStyles[variant]
}

func powerUpStyleFor(variant int) powerUpStyle {
	if variant < 0 || variant >= len(powerUpStyles) {
		return powerUpStyle{color: draw.RGB(255, 255, 255), letter: "?"}
	}
	return powerUpStyles[variant]
}

func particleColorFor(variant int) draw.Color {
	if variant < 0 || variant >= len(particleColors) {
		return explosionColor
	}
	return particleColors[variant]
}
