package scene

import (
	"image/color"

	"github.com/meghashyamc/gametools/geometry"
)

var (
	DefaultLabelColor   = color.RGBA{255, 255, 255, 255}
	DefaultOutlineColor = color.RGBA{0, 0, 0, 255}
)

type Label struct {
	Text    string
	Offset  geometry.Vector // relative to the owning object
	Color   color.RGBA
	Outline Outline
}

type Outline struct {
	Enabled   bool
	Thickness float64
	Color     color.RGBA
}

func NewOutline(thickness float64, c color.RGBA) Outline {
	return Outline{Enabled: thickness > 0, Thickness: thickness, Color: c}
}

// Offsets returns the eight directions the outline is stamped at, scaled by
// Thickness. A disabled outline has none.
func (o Outline) Offsets() []geometry.Vector {
	if !o.Enabled || o.Thickness <= 0 {
		return nil
	}

	offsets := make([]geometry.Vector, 0, 8)
	for dy := -1.0; dy <= 1; dy++ {
		for dx := -1.0; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			offsets = append(offsets, geometry.Vector{X: dx, Y: dy}.Scale(o.Thickness))
		}
	}

	return offsets
}
