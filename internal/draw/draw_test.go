package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	assert.True(t, c.IsSet())
	assert.False(t, Color(0).IsSet())
	assert.Equal(t, "#123456", c.Hex())

	parsed, err := ParseHex("#123456")
	require.NoError(t, err)
	assert.Equal(t, c, parsed)

	_, err = ParseHex("nope")
	assert.Error(t, err)
	assert.Panics(t, func() { MustHex("#12") })

	black, white := RGB(0, 0, 0), RGB(255, 255, 255)
	assert.Equal(t, black, Blend(black, white, 0))
	assert.Equal(t, white, Blend(black, white, 1))
	r, g, b := Blend(black, white, 0.5).RGB()
	assert.InDelta(t, 128, int(r), 1)
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestCanvasScalesLogicalCoordinates(t *testing.T) {
	c := NewScaledCanvas(90, 30, 900, 600)
	red := RGB(255, 0, 0)

	c.SetFloat(450, 300, red)
	assert.Equal(t, red, c.Pixel(45, 30))

	c.FillRect(0, 0, 100, 20, red)
	assert.Equal(t, red, c.Pixel(0, 0))
	assert.Equal(t, red, c.Pixel(9, 1))
	assert.Equal(t, Color(0), c.Pixel(10, 0))
	assert.Equal(t, Color(0), c.Pixel(0, 2))

	c.Clear(0)
	c.FillEllipse(450, 300, 100, 100, red)
	assert.Equal(t, red, c.Pixel(45, 30))
	assert.Equal(t, Color(0), c.Pixel(30, 15))

	c.SetFloat(-10, -10, red) // off canvas is ignored
	assert.Equal(t, Color(0), c.Pixel(-1, -1))
}

func TestCanvasRenderOnlyChangedCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	blue := RGB(0, 0, 255)
	c.Clear(blue)

	var out bytes.Buffer
	require.NoError(t, c.Render(&out))
	assert.Equal(t, 8, strings.Count(out.String(), " "), "first frame draws every cell")
	assert.Contains(t, out.String(), "48;2;0;0;255")

	out.Reset()
	require.NoError(t, c.Render(&out))
	assert.Empty(t, out.String(), "nothing changed")

	c.SetFloat(1, 0, RGB(255, 255, 255))
	out.Reset()
	require.NoError(t, c.Render(&out))
	assert.Equal(t, 1, strings.Count(out.String(), string(BlockUpperHalf)))
	assert.Contains(t, out.String(), "\033[1;2H")

	c.MarkTextDirty(4, 2, 1)
	out.Reset()
	require.NoError(t, c.Render(&out))
	assert.Contains(t, out.String(), "\033[2;4H")

	c.ForceRedraw()
	out.Reset()
	require.NoError(t, c.Render(&out))
	assert.Equal(t, 7, strings.Count(out.String(), " "))
}

func TestCanvasProfile(t *testing.T) {
	c := NewScaledCanvas(1, 1, 1, 2)
	c.SetProfile(termenv.ANSI256)
	c.Clear(RGB(255, 0, 0))

	var out bytes.Buffer
	require.NoError(t, c.Render(&out))
	assert.Contains(t, out.String(), "48;5;")

	c.SetProfile(termenv.Ascii)
	out.Reset()
	require.NoError(t, c.Render(&out))
	assert.Contains(t, out.String(), "\033[49m")
}

func TestResizeForcesRedraw(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	var out bytes.Buffer
	require.NoError(t, c.Render(&out))

	c.Resize(3, 1)
	out.Reset()
	require.NoError(t, c.Render(&out))
	assert.Equal(t, 3, strings.Count(out.String(), " "))
	assert.Equal(t, 3, c.TerminalWidth())
}

func TestChunkWriter(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 1)
	cw.WriteAt(1, 1, "hi")
	assert.Empty(t, out.String(), "buffered until flush")

	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[2;3Hhi", out.String())
	assert.Zero(t, cw.Len())

	out.Reset()
	big := strings.Repeat("x", maxChunkSize*3)
	cw.WriteString(big)
	require.NoError(t, cw.Flush())
	assert.Equal(t, big, out.String())
}

func TestRenderBorder(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)

	var out bytes.Buffer
	require.NoError(t, c.RenderBorder(&out))
	assert.Empty(t, out.String(), "no margin, no border")

	c.SetOffset(2, 3)
	require.NoError(t, c.RenderBorder(&out))
	got := out.String()
	assert.Contains(t, got, "\033[3;2H┌────┐")
	assert.Contains(t, got, "\033[6;2H└────┘")
	assert.Equal(t, 4, strings.Count(got, "│"))

	out.Reset()
	c.SetOffset(0, 1)
	require.NoError(t, c.RenderBorder(&out))
	assert.Contains(t, out.String(), "\033[1;1H────")
	assert.NotContains(t, out.String(), "│")
}

func TestProfileFromEnv(t *testing.T) {
	assert.Equal(t, termenv.TrueColor, ProfileFromEnv([]string{"TERM=xterm-256color", "COLORTERM=truecolor"}))
	assert.Equal(t, termenv.ANSI256, ProfileFromEnv([]string{"TERM=xterm-256color"}))
	assert.Equal(t, termenv.Ascii, ProfileFromEnv([]string{"TERM=xterm-256color", "NO_COLOR=1"}))
}

func TestShadeLevel(t *testing.T) {
	assert.Equal(t, ' ', ShadeLevel(0))
	assert.Equal(t, '▒', ShadeLevel(0.5))
	assert.Equal(t, '█', ShadeLevel(2))
}
