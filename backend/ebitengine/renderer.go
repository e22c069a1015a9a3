// Package ebitengine draws wheel draw lists with Ebitengine and polls its
// input into wheel.InputState.
package ebitengine

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/wheel"
)

// fontTextureID names the glyph atlas in DrawCmd.TextureID.
const fontTextureID = 1

var _ wheel.Renderer = (*Renderer)(nil)

// ErrNoTarget is returned by Render before SetTarget.
var ErrNoTarget = errors.New("ebitengine: no render target")

// Renderer implements wheel.Renderer with Image.DrawTriangles.
type Renderer struct {
	target *ebiten.Image
	atlas  *ebiten.Image
	white  *ebiten.Image
	atlasW float32
	atlasH float32

	width, height int

	vertices []ebiten.Vertex
}

// NewRenderer creates a renderer. Ebitengine must be running, so call it
// from Game.Update or Game.Draw, or lazily on the first frame.
func NewRenderer() *Renderer {
	font := wheel.BuiltinFont()
	w, h := font.Size()

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Renderer{
		atlas:  ebiten.NewImageFromImage(font.Image),
		white:  white,
		atlasW: float32(w),
		atlasH: float32(h),
	}
}

// SetTarget sets the image the next Render draws onto, normally the screen
// passed to Game.Draw.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
	if img != nil {
		b := img.Bounds()
		r.width, r.height = b.Dx(), b.Dy()
	}
}

// FontTextureID returns the ID AddText uses for the glyph atlas.
func (r *Renderer) FontTextureID() uint32 { return fontTextureID }

// Resize records the logical screen size. The target image bounds win
// when they differ.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws dl onto the current target.
func (r *Renderer) Render(dl *wheel.DrawList) error {
	if r.target == nil {
		return ErrNoTarget
	}
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	for i, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		dst, ok := r.clip(cmd.ClipRect)
		if !ok {
			continue
		}

		end := uint32(len(dl.VtxBuffer))
		if i+1 < len(dl.CmdBuffer) {
			end = dl.CmdBuffer[i+1].VertexOffset
		}
		src, textured := r.white, false
		if cmd.TextureID == fontTextureID {
			src, textured = r.atlas, true
		}

		r.vertices = r.vertices[:0]
		for _, v := range dl.VtxBuffer[cmd.VertexOffset:end] {
			r.vertices = append(r.vertices, r.convert(v, textured))
		}
		indices := dl.IdxBuffer[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount]
		dst.DrawTriangles(r.vertices, indices, src, &ebiten.DrawTrianglesOptions{})
	}
	return nil
}

func (r *Renderer) convert(v wheel.Vertex, textured bool) ebiten.Vertex {
	cr, cg, cb, ca := wheel.UnpackRGBA(v.Color)
	out := ebiten.Vertex{
		DstX:   v.Pos[0],
		DstY:   v.Pos[1],
		SrcX:   1.5,
		SrcY:   1.5,
		ColorR: float32(cr) / 255,
		ColorG: float32(cg) / 255,
		ColorB: float32(cb) / 255,
		ColorA: float32(ca) / 255,
	}
	if textured {
		out.SrcX = v.TexCoord[0] * r.atlasW
		out.SrcY = v.TexCoord[1] * r.atlasH
	}
	return out
}

// clip returns the target restricted to a clip rect in screen space.
func (r *Renderer) clip(rect [4]float32) (*ebiten.Image, bool) {
	b := r.target.Bounds()
	c := image.Rect(int(rect[0]), int(rect[1]), int(rect[2]), int(rect[3])).Intersect(b)
	if c.Empty() {
		return nil, false
	}
	if c == b {
		return r.target, true
	}
	return r.target.SubImage(c).(*ebiten.Image), true
}

// Color converts a packed wheel color for use with ebiten/vector.
func Color(c uint32) color.RGBA {
	r, g, b, a := wheel.UnpackRGBA(c)
	return color.RGBA{R: r, G: g, B: b, A: a}
}
