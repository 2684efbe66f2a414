// Package render presents game snapshots on a terminal.
package render

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tomz197/ufoshooter/internal/draw"
	"github.com/tomz197/ufoshooter/internal/game"
)

// Terminal layout limits.
const (
	MaxTermWidth  = 180 // Wider terminals get a centered, bordered playfield
	starsPerLayer = 90
	cameraShift   = 0.06 // Playfield shift per unit of ship offset from center
	gameOverDim   = 0.67
)

// Options configures a Screen.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Profile      termenv.Profile
	Footer       string // Shown bottom left, e.g. how to connect
}

// star is a background star in logical coordinates.
type star struct {
	x, y float64
}

// Screen draws snapshots to one terminal.
type Screen struct {
	w        io.Writer
	canvas   *draw.Canvas
	cw       *draw.ChunkWriter
	termSize draw.TermSizeFunc
	styles   styles
	footer   string
	stars    [3][starsPerLayer]star

	notice     string
	prevNotice string
	prevState  game.State
	started    bool
}

// New creates a screen writing to w.
func New(w io.Writer, opts Options) *Screen {
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	s := &Screen{
		w:        w,
		termSize: termSize,
		styles:   newStyles(w, opts.Profile),
		footer:   opts.Footer,
	}

	width, height, _ := termSize()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(width, height)
	s.canvas = draw.NewScaledCanvas(renderWidth, renderHeight, game.ScreenWidth, game.ScreenHeight)
	s.canvas.SetProfile(opts.Profile)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.cw = draw.NewChunkWriter(w, offsetCol, offsetRow)

	// The sky is the same every run.
	r := rand.New(rand.NewPCG(0, 0))
	for l := range s.stars {
		for i := range s.stars[l] {
			s.stars[l][i] = star{x: r.Float64() * game.ScreenWidth, y: r.Float64() * game.ScreenHeight}
		}
	}
	return s
}

// Begin prepares the terminal for drawing.
func (s *Screen) Begin() {
	draw.HideCursor(s.w)
	draw.ClearScreen(s.w)
	s.canvas.ForceRedraw()
}

// End restores the terminal.
func (s *Screen) End() {
	draw.ClearScreen(s.w)
	draw.ShowCursor(s.w)
}

// Draw presents one frame. clock is wall time in seconds and only drives
// the background drift.
func (s *Screen) Draw(snap game.Snapshot, clock float64) error {
	s.updateScreen()

	// On state transitions, or when a notice appears or goes away, do a
	// full terminal clear so overlay text does not persist on screen.
	if !s.started || snap.State != s.prevState || (s.notice == "") != (s.prevNotice == "") {
		draw.ClearScreen(s.cw)
		s.canvas.ForceRedraw()
		s.prevState = snap.State
		s.prevNotice = s.notice
		s.started = true
	}

	th := themeFor(snap.Theme)
	offset := (snap.PlayerX - snap.Width/2) * cameraShift

	s.drawBackground(th, clock, offset)
	s.drawEntities(snap, th, offset)
	if snap.State == game.StateGameOver {
		s.canvas.Dim(gameOverDim)
	}

	if err := s.canvas.Render(s.cw); err != nil {
		return err
	}
	if err := s.canvas.RenderBorder(s.cw); err != nil {
		return err
	}

	s.drawPowerUpLetters(snap, offset)
	s.drawHUD(snap, th)
	if snap.State == game.StateGameOver {
		s.drawGameOver(snap)
	}
	if s.notice != "" {
		s.centered(4, s.styles.title.Background(lipgloss.Color(noticeColor.Hex())), " "+s.notice+" ")
	}

	return s.cw.Flush()
}

// SetNotice shows a banner over the playfield until cleared with "".
func (s *Screen) SetNotice(text string) {
	s.notice = text
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (s *Screen) updateScreen() {
	width, height, err := s.termSize()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(width, height)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		draw.ClearScreen(s.cw)
		s.canvas.ForceRedraw()
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.cw.SetOffset(offsetCol, offsetRow)
}

// clampTermSize fits the playfield's aspect ratio into the terminal, caps
// its width and computes the centering offset.
// A cell is two pixels tall, so 3:2 logical needs three columns per row.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	const colsPerRow = 2 * game.ScreenWidth / game.ScreenHeight

	renderWidth = min(termWidth, termHeight*colsPerRow, MaxTermWidth)
	renderHeight = renderWidth / colsPerRow
	if renderWidth < 1 || renderHeight < 1 {
		return max(termWidth, 1), max(termHeight, 1), 0, 0
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// text writes styled text at a 1-based canvas cell and marks the cells so
// the canvas repaints them next frame.
func (s *Screen) text(col, row int, style lipgloss.Style, str string) {
	s.put(col, row, lipgloss.Width(str), style.Render(str))
}

// put writes pre-rendered text that occupies width cells. Text that would
// not fit on the canvas is dropped.
func (s *Screen) put(col, row, width int, rendered string) {
	if row < 1 || row > s.canvas.TerminalHeight() {
		return
	}
	if col < 1 {
		col = 1
	}
	if col+width-1 > s.canvas.TerminalWidth() {
		return
	}
	s.cw.WriteAt(col, row, rendered)
	s.canvas.MarkTextDirty(col, row, width)
}

// centered writes text centered on row.
func (s *Screen) centered(row int, style lipgloss.Style, str string) {
	col := (s.canvas.TerminalWidth()-lipgloss.Width(str))/2 + 1
	s.text(col, row, style, str)
}
