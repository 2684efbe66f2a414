package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Canvas rasterizes the logical playfield onto terminal cells at double
// vertical resolution: each cell is an upper half block whose foreground is
// the top pixel and whose background is the bottom one. Render only sends
// cells that changed since the previous Render.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]
	shown          []Color // What the terminal currently shows, same layout
	forceRedraw    bool

	// Scaling from logical to pixel coordinates
	logicalWidth  float64 // Target/logical width
	logicalHeight float64 // Target/logical height
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Columns and rows skipped to center the canvas in a large terminal.
	offsetCol int
	offsetRow int

	profile  termenv.Profile
	fgCache  map[Color]string
	bgCache  map[Color]string
	numBuf   [20]byte
	lastFg   Color
	lastBg   Color
	styleSet bool // lastFg/lastBg are what the terminal is using

	// Scratch space kept between frames
	renderBuf       strings.Builder
	scaledBuf       []Point   // fillPolygon vertices in pixel space
	intersectionBuf []float64 // Scanline crossings
	polygonBuf      []Point   // BorrowPoints
}

// maxCachedSequences bounds the color escape caches. Fading effects produce
// many one-off colors, so the caches are simply dropped when full.
const maxCachedSequences = 4096

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		profile:       termenv.TrueColor,
		fgCache:       make(map[Color]string),
		bgCache:       make(map[Color]string),
	}
	c.Resize(termWidth, termHeight)
	return c
}

// SetProfile selects how colors are encoded for the terminal.
func (c *Canvas) SetProfile(p termenv.Profile) {
	if p == c.profile {
		return
	}
	c.profile = p
	clear(c.fgCache)
	clear(c.bgCache)
	c.forceRedraw = true
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.shown = make([]Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.forceRedraw = true
	}

	// Update scale factors
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.forceRedraw = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render rewrite every cell, e.g. after the
// screen was cleared.
func (c *Canvas) ForceRedraw() {
	c.forceRedraw = true
}

// MarkTextDirty marks n cells starting at the 1-based canvas cell (col, row)
// as stale. Call it for cells overwritten by text so the next Render
// restores them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for x := col - 1; x < col-1+n; x++ {
		if x < 0 || x >= c.termWidth {
			continue
		}
		// No pixel ever holds this value: unset is 0, set carries the opaque bit.
		c.shown[r*2*c.termWidth+x] = opaque - 1
	}
}

// Clear fills every pixel with bg.
func (c *Canvas) Clear(bg Color) {
	for i := range c.pixels {
		c.pixels[i] = bg
	}
}

// Dim blends every drawn pixel toward black by t in [0, 1].
func (c *Canvas) Dim(t float64) {
	black := RGB(0, 0, 0)
	for i, p := range c.pixels {
		if p.IsSet() {
			c.pixels[i] = Blend(p, black, t)
		}
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, color Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// Pixel returns the color at actual pixel coordinates, or 0 outside.
func (c *Canvas) Pixel(x, y int) Color {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		return c.pixels[y*c.termWidth+x]
	}
	return 0
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64, color Color) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	c.setPixel(px, py, color)
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, color Color) {
	// Scale to pixel coordinates for drawing
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, color)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, color Color, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, color)
	}

	// Draw outline
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], color)
	}
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point, color Color) {
	// Reuse or grow scaled points buffer
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	// Scale points to pixel coordinates
	for i, p := range points {
		scaled[i] = Point{
			X: p.X * c.scaleX,
			Y: p.Y * c.scaleY,
		}
	}

	// Find bounding box in pixel space
	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	// Scanline fill in pixel space
	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		// Reuse intersection buffer
		intersections := c.intersectionBuf[:0]

		// Find intersections with all edges
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			c.fillSpan(y, intersections[i], intersections[i+1], color)
		}
	}
}

// fillSpan fills pixel row y between two pixel-space x positions.
func (c *Canvas) fillSpan(y int, x0, x1 float64, color Color) {
	xStart := max(int(math.Ceil(x0-0.5)), 0)
	xEnd := min(int(math.Floor(x1-0.5)), c.termWidth-1)
	row := y * c.termWidth
	for x := xStart; x <= xEnd; x++ {
		c.pixels[row+x] = color
	}
}

// Render writes the changed cells to w as half-block characters.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.styleSet = false
	cursorRow, cursorCol := -1, -1

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			if !c.forceRedraw && c.shown[topOffset+col] == top && c.shown[bottomOffset+col] == bottom {
				continue
			}
			c.shown[topOffset+col] = top
			c.shown[bottomOffset+col] = bottom

			if row != cursorRow || col != cursorCol {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			c.writeCell(top, bottom)
			cursorRow, cursorCol = row, col+1
		}
	}
	c.forceRedraw = false

	if c.renderBuf.Len() == 0 {
		return nil
	}
	c.renderBuf.WriteString(seqReset)

	// w is normally a ChunkWriter, which splits the frame for the network.
	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// writeCell emits one cell. Equal halves become a background-colored space.
func (c *Canvas) writeCell(top, bottom Color) {
	if top == bottom {
		c.setStyle(c.lastFg, bottom, !c.styleSet)
		c.renderBuf.WriteByte(' ')
		return
	}
	c.setStyle(top, bottom, !c.styleSet)
	c.renderBuf.WriteRune(BlockUpperHalf)
}

func (c *Canvas) setStyle(fg, bg Color, force bool) {
	if force || fg != c.lastFg {
		c.renderBuf.WriteString(c.sequence(fg, false))
		c.lastFg = fg
	}
	if force || bg != c.lastBg {
		c.renderBuf.WriteString(c.sequence(bg, true))
		c.lastBg = bg
	}
	c.styleSet = true
}

// sequence returns the escape that selects color as foreground or background.
func (c *Canvas) sequence(color Color, bg bool) string {
	cache := c.fgCache
	if bg {
		cache = c.bgCache
	}
	if s, ok := cache[color]; ok {
		return s
	}

	s := "\033[39m"
	if bg {
		s = "\033[49m"
	}
	if color.IsSet() {
		if seq := c.profile.Color(color.Hex()).Sequence(bg); seq != "" {
			s = "\033[" + seq + "m"
		}
	}

	if len(cache) >= maxCachedSequences {
		clear(cache)
	}
	cache[color] = s
	return s
}

// RenderBorder frames the canvas when it is centered in a larger terminal.
// Edges are drawn only on the sides that have a margin to hold them.
func (c *Canvas) RenderBorder(w io.Writer) error {
	sides := c.offsetCol >= 1
	caps := c.offsetRow >= 1
	if !sides && !caps {
		return nil
	}

	left, right := c.offsetCol, c.offsetCol+c.termWidth+1
	top, bottom := c.offsetRow, c.offsetRow+c.termHeight+1
	rule := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	at := func(row, col int, s string) {
		fmt.Fprintf(&buf, "\033[%d;%dH%s", row, col, s)
	}
	switch {
	case caps && sides:
		at(top, left, "┌"+rule+"┐")
		at(bottom, left, "└"+rule+"┘")
	case caps:
		at(top, left+1, rule)
		at(bottom, left+1, rule)
	}
	if sides {
		for row := top + 1; row < bottom; row++ {
			at(row, left, "│")
			at(row, right, "│")
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based canvas cell position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
// This avoids per-frame allocations for polygon rendering.
// Thread-safe as long as each goroutine uses its own Canvas instance.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
