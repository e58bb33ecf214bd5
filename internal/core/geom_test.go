package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(1200, 800, 120, 40)

	tests := []struct {
		col, row int
	}{
		{0, 0},
		{60, 20},
		{119, 39},
		{40, 15},
	}

	for _, tc := range tests {
		x, y := v.ToCanvas(tc.col, tc.row)
		col, row := v.ToCell(x, y)
		if col != tc.col || row != tc.row {
			t.Errorf("ToCell(ToCanvas(%d, %d)) = (%d, %d), expected (%d, %d)", tc.col, tc.row, col, row, tc.col, tc.row)
		}
	}
}

func TestViewportToCanvasCenters(t *testing.T) {
	v := NewViewport(1200, 800, 120, 40)

	x, y := v.ToCanvas(0, 0)
	if x != 5 || y != 10 {
		t.Errorf("ToCanvas(0, 0) = (%v, %v), expected (5, 10)", x, y)
	}
}

func TestViewportRectToCells(t *testing.T) {
	v := NewViewport(1200, 800, 120, 40)

	r := v.RectToCells(400, 300, 400, 80)
	expected := NewRect(40, 15, 40, 4)
	if r != expected {
		t.Errorf("RectToCells() = %+v, expected %+v", r, expected)
	}

	// Tiny rectangles still cover one cell
	tiny := v.RectToCells(0, 0, 1, 1)
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny rect = %+v, expected 1x1", tiny)
	}
}

func TestViewportRectCellsMapInside(t *testing.T) {
	sizes := []struct{ cols, rows int }{{80, 24}, {100, 30}, {120, 40}, {57, 19}}
	rects := []struct{ x, y, w, h float64 }{
		{400, 300, 400, 80},
		{400, 420, 400, 80},
		{300, 250, 200, 100},
		{800, 250, 200, 100},
		{400, 450, 400, 80},
	}

	for _, sz := range sizes {
		v := NewViewport(1200, 800, sz.cols, sz.rows)
		for _, rc := range rects {
			r := v.RectToCells(rc.x, rc.y, rc.w, rc.h)
			for row := r.Y; row < r.Bottom(); row++ {
				for col := r.X; col < r.Right(); col++ {
					x, y := v.ToCanvas(col, row)
					if x < rc.x || x > rc.x+rc.w || y < rc.y || y > rc.y+rc.h {
						t.Errorf("%dx%d: cell (%d, %d) of %+v maps to (%v, %v), outside the rectangle",
							sz.cols, sz.rows, col, row, rc, x, y)
					}
				}
			}
		}
	}
}

func TestViewportRectStartsPastPartialCell(t *testing.T) {
	v := NewViewport(1200, 800, 80, 24)

	// Column 26 spans 390-405, its center 397.5 lies left of x=400
	r := v.RectToCells(400, 300, 400, 80)
	if r.X != 27 {
		t.Errorf("RectToCells().X = %d, expected 27", r.X)
	}
}

func TestViewportZeroSize(t *testing.T) {
	v := NewViewport(1200, 800, 0, 0)
	if v.Cols != 1 || v.Rows != 1 {
		t.Errorf("zero-size viewport = %dx%d, expected 1x1", v.Cols, v.Rows)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
