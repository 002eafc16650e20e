package geometry

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Min() Vector {
	return Vector{r.X, r.Y}
}

func (r Rect) Max() Vector {
	return Vector{r.X + r.Width, r.Y + r.Height}
}

func (r Rect) Center() Vector {
	return Vector{r.X + r.Width/2, r.Y + r.Height/2}
}

// Corners returns the corners clockwise from the top-left.
func (r Rect) Corners() [4]Vector {
	return [4]Vector{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, r.Y + r.Height},
		{r.X, r.Y + r.Height},
	}
}

func (r Rect) Contains(p Vector) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Inset shrinks the rect by margin on every side. It never goes below zero size.
func (r Rect) Inset(margin float64) Rect {
	inset := Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  r.Width - 2*margin,
		Height: r.Height - 2*margin,
	}
	if inset.Width < 0 {
		inset.X = r.X + r.Width/2
		inset.Width = 0
	}
	if inset.Height < 0 {
		inset.Y = r.Y + r.Height/2
		inset.Height = 0
	}

	return inset
}

// Split divides the rect into a cols x rows grid, row by row.
func (r Rect) Split(cols, rows int) []Rect {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	cellWidth := r.Width / float64(cols)
	cellHeight := r.Height / float64(rows)
	cells := make([]Rect, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cells = append(cells, Rect{
				X:      r.X + float64(col)*cellWidth,
				Y:      r.Y + float64(row)*cellHeight,
				Width:  cellWidth,
				Height: cellHeight,
			})
		}
	}

	return cells
}

// Edges returns the top, bottom, left and right border strips of the given
// thickness, all lying inside the rect.
func (r Rect) Edges(thickness float64) [4]Rect {
	return [4]Rect{
		{X: r.X, Y: r.Y, Width: r.Width, Height: thickness},
		{X: r.X, Y: r.Y + r.Height - thickness, Width: r.Width, Height: thickness},
		{X: r.X, Y: r.Y, Width: thickness, Height: r.Height},
		{X: r.X + r.Width - thickness, Y: r.Y, Width: thickness, Height: r.Height},
	}
}
