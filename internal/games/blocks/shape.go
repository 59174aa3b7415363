package blocks

import "github.com/vovakirdan/wordblocks/internal/core"

// Shape is a row-major occupancy matrix. Rows are indexed from the top.
type Shape [][]bool

// ShapeFromRows builds a shape from strings where '#' marks an occupied cell.
func ShapeFromRows(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == '#'
		}
	}
	return s
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotate returns the shape turned 90 degrees clockwise.
// A rows x cols matrix becomes cols x rows.
func (s Shape) Rotate() Shape {
	rows, cols := s.Height(), s.Width()
	out := make(Shape, cols)
	for r := range cols {
		out[r] = make([]bool, rows)
		for c := range rows {
			out[r][c] = s[rows-1-c][r]
		}
	}
	return out
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y := range s {
		out[y] = append([]bool(nil), s[y]...)
	}
	return out
}

// Equal reports whether two shapes have the same geometry.
func (s Shape) Equal(o Shape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for _, row := range s {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Archetype is an immutable piece template.
type Archetype struct {
	Tag   string
	Shape Shape
	Color core.Color
}

// StandardArchetypes returns the seven classic pieces in compact form.
func StandardArchetypes() []Archetype {
	return []Archetype{
		{Tag: "I", Shape: ShapeFromRows("####"), Color: core.ColorCyan},
		{Tag: "O", Shape: ShapeFromRows("##", "##"), Color: core.ColorYellow},
		{Tag: "T", Shape: ShapeFromRows(".#.", "###"), Color: core.ColorMagenta},
		{Tag: "S", Shape: ShapeFromRows(".##", "##."), Color: core.ColorGreen},
		{Tag: "Z", Shape: ShapeFromRows("##.", ".##"), Color: core.ColorRed},
		{Tag: "J", Shape: ShapeFromRows("#..", "###"), Color: core.ColorBlue},
		{Tag: "L", Shape: ShapeFromRows("..#", "###"), Color: core.ColorOrange},
	}
}

// maxExtent returns the largest dimension any archetype can reach in any
// rotation.
func maxExtent(set []Archetype) int {
	n := 0
	for _, a := range set {
		n = max(n, a.Shape.Width(), a.Shape.Height())
	}
	return n
}
