package game

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/gametools/geometry"
)

var (
	gizmoBoundsColor = color.RGBA{0, 255, 0, 255}
	gizmoCellColor   = color.RGBA{0, 110, 0, 255}
)

// RectContainer is a rectangular area split into a grid of cells that
// spawned objects are placed in.
type RectContainer struct {
	Bounds geometry.Rect
	Cols   int
	Rows   int
	Margin float64
}

func NewRectContainer(bounds geometry.Rect, cols, rows int, margin float64) *RectContainer {
	return &RectContainer{
		Bounds: bounds,
		Cols:   max(cols, 1),
		Rows:   max(rows, 1),
		Margin: margin,
	}
}

// Cells returns the usable cell rects, each inset by Margin.
func (c *RectContainer) Cells() []geometry.Rect {
	cells := c.Bounds.Split(c.Cols, c.Rows)
	for i := range cells {
		cells[i] = cells[i].Inset(c.Margin)
	}
	return cells
}

// PointInCell picks a random point inside cell index, wrapping around the grid.
func (c *RectContainer) PointInCell(rng *rand.Rand, index int) geometry.Vector {
	cells := c.Cells()
	cell := cells[index%len(cells)]

	return geometry.Vector{
		X: cell.X + rng.Float64()*cell.Width,
		Y: cell.Y + rng.Float64()*cell.Height,
	}
}

func (c *RectContainer) DrawGizmo(screen *ebiten.Image) {
	for _, cell := range c.Cells() {
		drawRectangleOutline(screen, cell, gizmoCellColor)
	}
	drawRectangleOutline(screen, c.Bounds, gizmoBoundsColor)
}

// pixel is a shared 1x1 white image, tinted per draw.
var pixel *ebiten.Image

func pixelImage() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

func drawRectangleOutline(screen *ebiten.Image, rect geometry.Rect, col color.Color) {
	img := pixelImage()
	for _, edge := range rect.Edges(1) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(edge.Width, edge.Height)
		op.GeoM.Translate(edge.X, edge.Y)
		op.ColorScale.ScaleWithColor(col)
		screen.DrawImage(img, op)
	}
}
