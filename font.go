package wheel

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas layout: printable ASCII 32-127 in a 16x6 grid.
const (
	atlasFirstRune = 32
	atlasLastRune  = 127
	atlasCols      = 16
	atlasRows      = 6
)

// FontAtlas is an alpha-only glyph texture for the fixed-width font used by
// DrawList.AddText. Each glyph occupies one CellW x CellH cell.
type FontAtlas struct {
	Image *image.Alpha
	CellW int
	CellH int
}

var (
	builtinFontOnce sync.Once
	builtinFont     *FontAtlas
)

// BuiltinFont returns the shared atlas rasterized from the 7x13 basic font.
func BuiltinFont() *FontAtlas {
	builtinFontOnce.Do(func() {
		builtinFont = newFontAtlas(basicfont.Face7x13)
	})
	return builtinFont
}

func newFontAtlas(face *basicfont.Face) *FontAtlas {
	cw, ch := face.Advance, face.Height
	img := image.NewAlpha(image.Rect(0, 0, cw*atlasCols, ch*atlasRows))
	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}

	for r := rune(atlasFirstRune); r <= atlasLastRune; r++ {
		idx := int(r - atlasFirstRune)
		col, row := idx%atlasCols, idx/atlasCols
		d.Dot = fixed.P(col*cw, row*ch+face.Ascent)
		d.DrawString(string(r))
	}
	return &FontAtlas{Image: img, CellW: cw, CellH: ch}
}

// Size returns the atlas dimensions in pixels.
func (a *FontAtlas) Size() (w, h int) {
	b := a.Image.Bounds()
	return b.Dx(), b.Dy()
}

// GlyphUV returns texture coordinates for r. Runes outside the atlas map
// to '?'.
func (a *FontAtlas) GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	if r < atlasFirstRune || r > atlasLastRune {
		r = '?'
	}
	idx := int(r - atlasFirstRune)
	col, row := float32(idx%atlasCols), float32(idx/atlasCols)
	u0 = col / atlasCols
	v0 = row / atlasRows
	u1 = (col + 1) / atlasCols
	v1 = (row + 1) / atlasRows
	return u0, v0, u1, v1
}

// MeasureText returns the size of text drawn at the given scale.
func (a *FontAtlas) MeasureText(text string, scaleX, scaleY float32) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{X: float32(n*a.CellW) * scaleX, Y: float32(a.CellH) * scaleY}
}
