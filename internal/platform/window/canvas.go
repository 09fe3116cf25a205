package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// glyphHeight is the pixel height of the bitmap face text is scaled from.
const glyphHeight = 13

var face = text.NewGoXFace(basicfont.Face7x13)

// imageCanvas implements core.Canvas on an ebiten image. Translucent
// colors blend with what is already drawn.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) Clear(col core.Color) {
	c.dst.Fill(col.RGBA())
}

func (c imageCanvas) DrawRect(pos, size core.Vec2, col core.Color) {
	vector.FillRect(c.dst, float32(pos.X), float32(pos.Y), float32(size.X), float32(size.Y), col.RGBA(), false)
}

func (c imageCanvas) DrawCircle(center core.Vec2, radius float64, col core.Color) {
	vector.FillCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), col.RGBA(), true)
}

func (c imageCanvas) DrawText(msg string, pos core.Vec2, size float64, col core.Color) {
	op := &text.DrawOptions{}
	scale := size / glyphHeight
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(col.RGBA())
	text.Draw(c.dst, msg, face, op)
}
