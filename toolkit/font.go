package toolkit

// FontProvider supplies fonts to the toolkit. Without one, text falls
// back to the renderer's built-in bitmap font.
type FontProvider interface {
	// ActiveFont returns the currently active font, or nil to use the
	// built-in bitmap font.
	ActiveFont() Font

	// ActiveFontName returns the name of the active font.
	ActiveFontName() string

	// SetActiveFont switches the active font by name.
	SetActiveFont(name string) error
}

// Font measures and shapes text for rendering.
type Font interface {
	// TextureID returns the font's atlas texture.
	TextureID() uint32

	// MeasureText returns the rendered size of text at the given scale.
	MeasureText(text string, scale float32) Vec2

	// LineHeight returns the line height at the given scale.
	LineHeight(scale float32) float32

	// GlyphQuads returns the positioned quads for text starting at x, y.
	GlyphQuads(text string, x, y, scale float32) []GlyphQuad
}

// activeFont resolves the current font, or nil for the built-in one.
func (c *Context) activeFont() Font {
	if fp := c.gui.fontProvider; fp != nil {
		return fp.ActiveFont()
	}
	return nil
}

// measureText returns the on-screen size of a single line of text.
func (c *Context) measureText(text string) Vec2 {
	if f := c.activeFont(); f != nil {
		return f.MeasureText(text, c.style.FontScale)
	}
	n := 0
	for range text {
		n++
	}
	return Vec2{
		X: float32(n) * c.style.CharWidth * c.style.FontScale,
		Y: c.style.CharHeight * c.style.FontScale,
	}
}

// lineHeight returns the height of one line of text.
func (c *Context) lineHeight() float32 {
	if f := c.activeFont(); f != nil {
		return f.LineHeight(c.style.FontScale)
	}
	return c.style.CharHeight * c.style.FontScale
}

// frameHeight returns the height of a framed row (text plus vertical
// frame padding), the height of title bars, menu bars and buttons.
func (c *Context) frameHeight() float32 {
	return c.lineHeight() + c.style.FramePadding.Y*2
}

// addText draws a single line of text at x, y onto the current draw
// target, switching to the font atlas texture for the glyphs.
func (c *Context) addText(x, y float32, text string, color uint32) {
	if text == "" {
		return
	}
	dl := c.dl()
	if f := c.activeFont(); f != nil {
		dl.SetTexture(f.TextureID())
		dl.AddGlyphQuads(f.GlyphQuads(text, x, y, c.style.FontScale), color)
		dl.SetTexture(0)
		return
	}
	dl.SetTexture(c.fontTex)
	dl.AddText(x, y, text, color, c.style.FontScale, c.style.CharWidth, c.style.CharHeight)
	dl.SetTexture(0)
}
