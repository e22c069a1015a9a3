package wheel

// Renderer draws a finished DrawList.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Surface pairs a Renderer with a Style and manages per-frame draw lists.
type Surface struct {
	renderer Renderer
	style    Style
}

// SurfaceOption configures a Surface.
type SurfaceOption func(*Surface)

// WithStyle sets the surface style.
func WithStyle(style Style) SurfaceOption {
	return func(s *Surface) { s.style = style }
}

// NewSurface creates a surface drawing through renderer.
func NewSurface(renderer Renderer, opts ...SurfaceOption) *Surface {
	s := &Surface{
		renderer: renderer,
		style:    DefaultStyle(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Style returns the surface style.
func (s *Surface) Style() Style { return s.style }

// SetStyle replaces the surface style.
func (s *Surface) SetStyle(style Style) { s.style = style }

// Resize notifies the renderer of a display size change.
func (s *Surface) Resize(width, height int) {
	s.renderer.Resize(width, height)
}

// Frame acquires a draw list, lets draw fill it and renders the result.
func (s *Surface) Frame(draw func(dl *DrawList)) error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.FontTextureID = s.renderer.FontTextureID()
	if draw != nil {
		draw(dl)
	}
	if len(dl.VtxBuffer) == 0 {
		return nil
	}
	return s.renderer.Render(dl)
}
