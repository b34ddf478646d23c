// Package toolkit is an immediate mode GUI toolkit. Widgets are
// submitted every frame between Begin and End; the toolkit retains only
// small per-widget state (window positions, open flags, selections)
// keyed by widget ID, and emits draw lists for a backend renderer.
//
// The package pairs with the scoped package, which wraps the Context's
// begin/end and push/pop surface in closure-based guards.
package toolkit

import "fmt"

// Renderer is the backend interface. The toolkit produces DrawLists;
// the renderer owns the GPU state needed to draw them.
type Renderer interface {
	// Render draws a finalized DrawList.
	Render(dl *DrawList) error

	// FontTextureID returns the built-in bitmap font atlas texture.
	FontTextureID() uint32

	// Resize updates the renderer's viewport.
	Resize(width, height int)
}

// GUI owns the toolkit's persistent state and drives the frame cycle:
//
//	ctx := gui.Begin(input, displaySize, dt)
//	... submit widgets on ctx ...
//	err := gui.End()
type GUI struct {
	renderer     Renderer
	style        Style
	fontProvider FontProvider
	retention    uint64

	ctx     *Context
	fontTex uint32
}

// Option configures a GUI.
type Option func(*GUI)

// WithStyle sets the base style.
func WithStyle(style Style) Option {
	return func(g *GUI) {
		g.style = style
	}
}

// WithFontProvider sets the font provider. Without one, text uses the
// renderer's built-in bitmap font.
func WithFontProvider(fp FontProvider) Option {
	return func(g *GUI) {
		g.fontProvider = fp
	}
}

// WithStateRetention sets how many frames widget state survives without
// the widget being submitted. Window positions and tree open flags are
// kept forever regardless.
func WithStateRetention(frames uint64) Option {
	return func(g *GUI) {
		if frames > 0 {
			g.retention = frames
		}
	}
}

// New creates a GUI bound to a renderer.
func New(renderer Renderer, opts ...Option) *GUI {
	g := &GUI{
		renderer:  renderer,
		style:     DefaultStyle(),
		retention: 300,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.ctx = newContext(g)
	return g
}

// Begin starts a frame and returns the Context to submit widgets on.
// input may be nil for a non-interactive frame.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	if g.ctx.frameOpen {
		tkLogger.Debug("Begin called with a frame already open, discarding it")
		g.discardFrame()
	}
	if g.renderer != nil {
		g.fontTex = g.renderer.FontTextureID()
	}
	g.ctx.beginFrame(input, displaySize, deltaTime)
	return g.ctx
}

// End closes the frame and renders it: the main list first, the overlay
// list on top.
func (g *GUI) End() error {
	if !g.ctx.frameOpen {
		return fmt.Errorf("gui: End called without Begin")
	}

	main := g.ctx.DrawList
	overlay := g.ctx.OverlayDrawList
	g.ctx.endFrame()
	g.ctx.DrawList = nil
	g.ctx.OverlayDrawList = nil

	var err error
	if g.renderer != nil {
		main.Finalize()
		overlay.Finalize()
		if rerr := g.renderer.Render(main); rerr != nil {
			err = fmt.Errorf("gui: render main list: %w", rerr)
		} else if rerr := g.renderer.Render(overlay); rerr != nil {
			err = fmt.Errorf("gui: render overlay list: %w", rerr)
		}
	}

	ReleaseDrawList(main)
	ReleaseDrawList(overlay)
	return err
}

// discardFrame abandons an open frame without rendering.
func (g *GUI) discardFrame() {
	main := g.ctx.DrawList
	overlay := g.ctx.OverlayDrawList
	g.ctx.endFrame()
	g.ctx.DrawList = nil
	g.ctx.OverlayDrawList = nil
	ReleaseDrawList(main)
	ReleaseDrawList(overlay)
}

// Resize forwards a viewport change to the renderer.
func (g *GUI) Resize(width, height int) {
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}

// Style returns the base style for inspection or permanent edits.
// Frame-scoped changes belong on the Context's style stacks instead.
func (g *GUI) Style() *Style {
	return &g.style
}
