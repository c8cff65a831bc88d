package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Common styles
var (
	StyleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleBorder   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	StyleCursor   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StyleHealthOK = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleHealthLo = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	StyleHealthCr = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleExp      = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
)

const (
	barFull  = '█'
	barEmpty = '░'
)

// Renderer handles drawing to the screen. It owns frame boundaries; the
// draw helpers only write into the buffer.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Begin clears the buffer for a new frame.
func (r *Renderer) Begin() {
	r.screen.Clear()
}

// End flushes the frame to the terminal.
func (r *Renderer) End() {
	r.screen.Show()
}

// Size returns the drawable area.
func (r *Renderer) Size() (width, height int) {
	return r.screen.Size()
}

// Beep rings the terminal bell.
func (r *Renderer) Beep() {
	r.screen.Beep()
}

// Text draws msg starting at x,y and returns the number of cells written.
func (r *Renderer) Text(x, y int, msg string, style tcell.Style) int {
	i := 0
	for _, ch := range msg {
		r.screen.SetContent(x+i, y, ch, style)
		i++
	}
	return i
}

// Fill paints a rectangle with ch.
func (r *Renderer) Fill(x, y, w, h int, ch rune, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			r.screen.SetContent(x+dx, y+dy, ch, style)
		}
	}
}

// Box draws a single-line border around a w by h rectangle.
func (r *Renderer) Box(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for dx := 1; dx < w-1; dx++ {
		r.screen.SetContent(x+dx, y, tcell.RuneHLine, style)
		r.screen.SetContent(x+dx, y+h-1, tcell.RuneHLine, style)
	}
	for dy := 1; dy < h-1; dy++ {
		r.screen.SetContent(x, y+dy, tcell.RuneVLine, style)
		r.screen.SetContent(x+w-1, y+dy, tcell.RuneVLine, style)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, style)
	r.screen.SetContent(x+w-1, y, tcell.RuneURCorner, style)
	r.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, style)
	r.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, style)
}

// Bar draws a meter of width cells filled to fraction.
func (r *Renderer) Bar(x, y, width int, fraction float64, style tcell.Style) {
	filled := BarCells(width, fraction)
	for i := 0; i < width; i++ {
		ch := barEmpty
		st := StyleDim
		if i < filled {
			ch = barFull
			st = style
		}
		r.screen.SetContent(x+i, y, ch, st)
	}
}

// HealthStyle picks the bar colour for a health fraction.
func HealthStyle(fraction float64) tcell.Style {
	switch {
	case fraction <= 0.25:
		return StyleHealthCr
	case fraction <= 0.5:
		return StyleHealthLo
	default:
		return StyleHealthOK
	}
}

// BarCells returns how many of width cells a fraction fills. Any positive
// fraction shows at least one cell.
func BarCells(width int, fraction float64) int {
	if width <= 0 || fraction <= 0 {
		return 0
	}
	if fraction >= 1 {
		return width
	}
	n := int(math.Round(fraction * float64(width)))
	if n == 0 {
		n = 1
	}
	return n
}
