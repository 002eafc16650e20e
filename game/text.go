package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/meghashyamc/gametools/geometry"
	"github.com/meghashyamc/gametools/scene"
)

// drawLabel stamps the outline at each offset first, then the text on top.
func drawLabel(screen *ebiten.Image, label *scene.Label, origin geometry.Vector, face text.Face, alpha float32) {
	pos := origin.Add(label.Offset)

	for _, offset := range label.Outline.Offsets() {
		drawText(screen, label.Text, face, pos.Add(offset), label.Outline.Color, alpha)
	}
	drawText(screen, label.Text, face, pos, label.Color, alpha)
}

func drawText(screen *ebiten.Image, str string, face text.Face, pos geometry.Vector, col color.Color, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(col)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, str, face, op)
}
