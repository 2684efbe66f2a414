package draw

import "math"

// ringSegments is how many edges approximate an ellipse outline.
const ringSegments = 32

// FillRect fills the logical rectangle with top-left (x0, y0) and
// bottom-right (x1, y1).
func (c *Canvas) FillRect(x0, y0, x1, y1 float64, color Color) {
	py0 := max(int(math.Floor(y0*c.scaleY)), 0)
	py1 := min(int(math.Ceil(y1*c.scaleY))-1, c.subPixelHeight-1)
	for y := py0; y <= py1; y++ {
		c.fillSpan(y, x0*c.scaleX, x1*c.scaleX, color)
	}
}

// FillEllipse fills the logical ellipse centered on (cx, cy).
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, color Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	pcx, pcy := cx*c.scaleX, cy*c.scaleY
	prx, pry := rx*c.scaleX, ry*c.scaleY

	yStart := max(int(math.Floor(pcy-pry)), 0)
	yEnd := min(int(math.Ceil(pcy+pry)), c.subPixelHeight-1)
	for y := yStart; y <= yEnd; y++ {
		dy := (float64(y) + 0.5 - pcy) / pry
		if dy*dy > 1 {
			continue
		}
		half := prx * math.Sqrt(1-dy*dy)
		c.fillSpan(y, pcx-half, pcx+half, color)
	}

	// Tiny ellipses can fall between pixel centers; keep them visible.
	c.SetFloat(cx, cy, color)
}

// DrawEllipse outlines the logical ellipse centered on (cx, cy).
func (c *Canvas) DrawEllipse(cx, cy, rx, ry float64, color Color) {
	points := c.BorrowPoints(ringSegments)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / ringSegments
		points[i] = Point{X: cx + math.Cos(angle)*rx, Y: cy + math.Sin(angle)*ry}
	}
	c.DrawPolygon(points, color, false)
}

// DrawCircle outlines a circle of logical radius r.
func (c *Canvas) DrawCircle(cx, cy, r float64, color Color) {
	c.DrawEllipse(cx, cy, r, r, color)
}
