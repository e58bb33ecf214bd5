// Package core provides fundamental types and utilities for the platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps a fixed virtual canvas (the coordinate space UI buttons are
// authored in) onto a grid of terminal cells, and back.
type Viewport struct {
	CanvasW, CanvasH float64
	Cols, Rows       int
}

// NewViewport creates a viewport for a canvas of the given size shown on cols x rows cells.
func NewViewport(canvasW, canvasH float64, cols, rows int) Viewport {
	return Viewport{CanvasW: canvasW, CanvasH: canvasH, Cols: Max(cols, 1), Rows: Max(rows, 1)}
}

// ToCanvas converts a cell position to the canvas point at the cell's center.
func (v Viewport) ToCanvas(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) * v.CanvasW / float64(v.Cols)
	y := (float64(row) + 0.5) * v.CanvasH / float64(v.Rows)
	return x, y
}

// ToCell converts a canvas point to the cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	col := int(x * float64(v.Cols) / v.CanvasW)
	row := int(y * float64(v.Rows) / v.CanvasH)
	return col, row
}

// RectToCells converts a canvas rectangle to the cells whose centers lie inside
// it, so every drawn cell maps back into the rectangle through ToCanvas.
// The result is at least one cell in each dimension.
func (v Viewport) RectToCells(x, y, w, h float64) Rect {
	c0, c1 := cellSpan(x, x+w, v.CanvasW, v.Cols)
	r0, r1 := cellSpan(y, y+h, v.CanvasH, v.Rows)
	return NewRect(c0, r0, Max(c1-c0+1, 1), Max(r1-r0+1, 1))
}

// cellSpan returns the first and last of n cells spanning size whose centers
// fall within [lo, hi]. Centers are computed exactly as ToCanvas does.
func cellSpan(lo, hi, size float64, n int) (int, int) {
	center := func(i int) float64 { return (float64(i) + 0.5) * size / float64(n) }

	cell := size / float64(n)
	first := int(math.Ceil(lo/cell - 0.5))
	last := int(math.Floor(hi/cell - 0.5))
	for center(first) < lo {
		first++
	}
	for last >= first && center(last) > hi {
		last--
	}
	return first, last
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
