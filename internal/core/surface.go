package core

import (
	"math"
	"strings"
)

// Glyphs used by Canvas for filled shapes.
const (
	RectGlyph    = '█'
	EllipseGlyph = '●'
)

// Label is a block of text anchored at its center.
// Lines are separated by '\n'.
type Label struct {
	Text  string
	X, Y  float64 // Center in playfield coordinates
	Color Color
	Boxed bool // Draw a frame around the text
}

// Surface is the drawing target handed to game Render methods.
// Coordinates are playfield units with the origin at the bottom-left.
type Surface interface {
	FillRect(r Rect, c Color)
	FillEllipse(bounds Rect, c Color)
	DrawLabel(l Label)
}

// Viewport maps a playfield of Width×Height units onto Cols×Rows cells.
// Playfield y grows upward, cell rows grow downward.
type Viewport struct {
	Cols, Rows    int
	Width, Height float64
}

// Valid reports whether the viewport can project anything.
func (v Viewport) Valid() bool {
	return v.Cols > 0 && v.Rows > 0 && v.Width > 0 && v.Height > 0
}

// Col returns the cell column containing playfield x.
func (v Viewport) Col(x float64) int {
	return int(math.Floor(x / v.Width * float64(v.Cols)))
}

// Row returns the cell row containing playfield y.
func (v Viewport) Row(y float64) int {
	return int(math.Floor((v.Height - y) / v.Height * float64(v.Rows)))
}

// CellSpan returns the inclusive cell range covered by r.
// Every rect covers at least one cell.
func (v Viewport) CellSpan(r Rect) (x0, y0, x1, y1 int) {
	x0 = v.Col(r.X)
	x1 = int(math.Ceil(r.Right()/v.Width*float64(v.Cols))) - 1
	y0 = v.Row(r.Top())
	y1 = int(math.Ceil((v.Height-r.Y)/v.Height*float64(v.Rows))) - 1
	return x0, y0, Max(x0, x1), Max(y0, y1)
}

// ToWorld returns the playfield point at the center of a cell.
func (v Viewport) ToWorld(col, row int) Point {
	// Multiply before dividing so cell centers that land on whole units
	// come out exact.
	return Point{
		X: (float64(col) + 0.5) * v.Width / float64(v.Cols),
		Y: v.Height - (float64(row)+0.5)*v.Height/float64(v.Rows),
	}
}

// Canvas is a Surface that rasterizes onto a Screen.
type Canvas struct {
	screen *Screen
	view   Viewport
}

// NewCanvas creates a canvas covering the whole screen for a playfield of
// the given size.
func NewCanvas(dst *Screen, width, height float64) *Canvas {
	return &Canvas{
		screen: dst,
		view: Viewport{
			Cols:   dst.Width(),
			Rows:   dst.Height(),
			Width:  width,
			Height: height,
		},
	}
}

// FillRect fills every cell the rectangle touches.
func (c *Canvas) FillRect(r Rect, col Color) {
	if !c.view.Valid() {
		return
	}
	x0, y0, x1, y1 := c.view.CellSpan(r)
	c.screen.FillCells(x0, y0, x1, y1, RectGlyph, col)
}

// FillEllipse fills the cells whose centers fall inside the ellipse
// inscribed in bounds. Small ellipses still occupy their center cell.
func (c *Canvas) FillEllipse(bounds Rect, col Color) {
	if !c.view.Valid() {
		return
	}
	center := bounds.Center()
	rx, ry := bounds.W/2, bounds.H/2
	x0, y0, x1, y1 := c.view.CellSpan(bounds)

	drawn := false
	for row := y0; row <= y1; row++ {
		for colIdx := x0; colIdx <= x1; colIdx++ {
			p := c.view.ToWorld(colIdx, row)
			if rx <= 0 || ry <= 0 {
				continue
			}
			dx := (p.X - center.X) / rx
			dy := (p.Y - center.Y) / ry
			if dx*dx+dy*dy <= 1 {
				c.screen.SetColored(colIdx, row, EllipseGlyph, col)
				drawn = true
			}
		}
	}
	if !drawn {
		c.screen.SetColored(c.view.Col(center.X), c.view.Row(center.Y), EllipseGlyph, col)
	}
}

// DrawLabel writes the label's lines centered on its anchor.
func (c *Canvas) DrawLabel(l Label) {
	if !c.view.Valid() {
		return
	}
	lines := strings.Split(l.Text, "\n")
	widest := 0
	for _, line := range lines {
		widest = Max(widest, len([]rune(line)))
	}

	midRow := Clamp(c.view.Row(l.Y), 0, c.screen.Height()-1)
	midCol := Clamp(c.view.Col(l.X), 0, c.screen.Width()-1)
	top := midRow - len(lines)/2

	if l.Boxed {
		boxW := widest + 4
		boxH := len(lines) + 2
		boxX := midCol - boxW/2
		c.screen.FillCells(boxX, top-1, boxX+boxW-1, top+len(lines), ' ', ColorDefault)
		c.screen.DrawBox(boxX, top-1, boxW, boxH, l.Color)
	}

	for i, line := range lines {
		x := midCol - len([]rune(line))/2
		c.screen.DrawText(x, top+i, line, l.Color)
	}
}
