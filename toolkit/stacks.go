package toolkit

import "github.com/go-theft-auto/scoped"

// Push/pop stacks over the frame's style copy and ambient widget
// parameters. Pops on an empty stack log and do nothing rather than
// panic; endFrame reports anything left unbalanced.

type colorMod struct {
	col  Col
	prev uint32
}

type varMod struct {
	v     StyleVar
	vec2  bool
	prevF float32
	prevV Vec2
}

// PushStyleColor overrides a themable color until the matching pop.
func (c *Context) PushStyleColor(col Col, color uint32) {
	if col < 0 || col >= scoped.ColCount {
		tkLogger.Debug("PushStyleColor: unknown color slot", "col", int(col))
		return
	}
	c.colorMods = append(c.colorMods, colorMod{col: col, prev: c.style.Colors[col]})
	c.style.Colors[col] = color
}

// PopStyleColor restores the last count color overrides.
func (c *Context) PopStyleColor(count int) {
	for ; count > 0; count-- {
		n := len(c.colorMods)
		if n == 0 {
			tkLogger.Debug("PopStyleColor on empty stack")
			return
		}
		m := c.colorMods[n-1]
		c.colorMods = c.colorMods[:n-1]
		c.style.Colors[m.col] = m.prev
	}
}

// PushStyleVar overrides a float style variable until the matching pop.
func (c *Context) PushStyleVar(v StyleVar, value float32) {
	p := c.style.varFloat(v)
	if p == nil {
		tkLogger.Debug("PushStyleVar: not a float variable", "var", int(v))
		return
	}
	c.varMods = append(c.varMods, varMod{v: v, prevF: *p})
	*p = value
}

// PushStyleVarVec2 overrides a Vec2 style variable until the matching
// pop.
func (c *Context) PushStyleVarVec2(v StyleVar, value Vec2) {
	p := c.style.varVec2(v)
	if p == nil {
		tkLogger.Debug("PushStyleVarVec2: not a Vec2 variable", "var", int(v))
		return
	}
	c.varMods = append(c.varMods, varMod{v: v, vec2: true, prevV: *p})
	*p = value
}

// PopStyleVar restores the last count style variable overrides.
func (c *Context) PopStyleVar(count int) {
	for ; count > 0; count-- {
		n := len(c.varMods)
		if n == 0 {
			tkLogger.Debug("PopStyleVar on empty stack")
			return
		}
		m := c.varMods[n-1]
		c.varMods = c.varMods[:n-1]
		if m.vec2 {
			*c.style.varVec2(m.v) = m.prevV
		} else {
			*c.style.varFloat(m.v) = m.prevF
		}
	}
}

// PushFont switches the active font by name until the matching pop.
// Unknown names log and leave the font unchanged; the stack stays
// balanced either way.
func (c *Context) PushFont(name string) {
	prev := ""
	if fp := c.gui.fontProvider; fp != nil {
		prev = fp.ActiveFontName()
		if err := fp.SetActiveFont(name); err != nil {
			tkLogger.Debug("PushFont: font not available", "name", name, "err", err)
		}
	}
	c.fontNames = append(c.fontNames, prev)
}

// PopFont restores the previously active font.
func (c *Context) PopFont() {
	n := len(c.fontNames)
	if n == 0 {
		tkLogger.Debug("PopFont on empty stack")
		return
	}
	prev := c.fontNames[n-1]
	c.fontNames = c.fontNames[:n-1]
	if fp := c.gui.fontProvider; fp != nil && prev != "" {
		if err := fp.SetActiveFont(prev); err != nil {
			tkLogger.Debug("PopFont: restore failed", "name", prev, "err", err)
		}
	}
}

// PushButtonRepeat makes held buttons fire repeatedly until the
// matching pop.
func (c *Context) PushButtonRepeat(repeat bool) {
	c.repeats = append(c.repeats, repeat)
}

// PopButtonRepeat restores the previous repeat setting.
func (c *Context) PopButtonRepeat() {
	if len(c.repeats) == 0 {
		tkLogger.Debug("PopButtonRepeat on empty stack")
		return
	}
	c.repeats = c.repeats[:len(c.repeats)-1]
}

func (c *Context) buttonRepeat() bool {
	if len(c.repeats) == 0 {
		return false
	}
	return c.repeats[len(c.repeats)-1]
}

// PushItemWidth sets the width of framed widgets (combos, progress
// bars) until the matching pop. Zero means the widget default.
func (c *Context) PushItemWidth(width float32) {
	c.itemWidths = append(c.itemWidths, width)
}

// PopItemWidth restores the previous item width.
func (c *Context) PopItemWidth() {
	if len(c.itemWidths) == 0 {
		tkLogger.Debug("PopItemWidth on empty stack")
		return
	}
	c.itemWidths = c.itemWidths[:len(c.itemWidths)-1]
}

func (c *Context) itemWidth() float32 {
	if len(c.itemWidths) == 0 {
		return 0
	}
	return c.itemWidths[len(c.itemWidths)-1]
}

// PushTextWrapPos enables text wrapping until the matching pop. The
// position is relative to the region origin; zero wraps at the region's
// right edge.
func (c *Context) PushTextWrapPos(wrapX float32) {
	c.wrapStack = append(c.wrapStack, wrapX)
}

// PopTextWrapPos restores the previous wrap setting.
func (c *Context) PopTextWrapPos() {
	if len(c.wrapStack) == 0 {
		tkLogger.Debug("PopTextWrapPos on empty stack")
		return
	}
	c.wrapStack = c.wrapStack[:len(c.wrapStack)-1]
}

// textWrapPos returns the current wrap position, or -1 when wrapping is
// off.
func (c *Context) textWrapPos() float32 {
	if len(c.wrapStack) == 0 {
		return -1
	}
	return c.wrapStack[len(c.wrapStack)-1]
}

// PushTextureID sets the texture Image draws with until the matching
// pop.
func (c *Context) PushTextureID(tex TextureID) {
	c.texStack = append(c.texStack, tex)
}

// PopTextureID restores the previous texture.
func (c *Context) PopTextureID() {
	if len(c.texStack) == 0 {
		tkLogger.Debug("PopTextureID on empty stack")
		return
	}
	c.texStack = c.texStack[:len(c.texStack)-1]
}

func (c *Context) currentTexture() TextureID {
	if len(c.texStack) == 0 {
		return 0
	}
	return c.texStack[len(c.texStack)-1]
}

// PushClipRect constrains drawing on the current target until the
// matching pop. With intersect set, the rectangle is clipped against
// the target's current clip first.
func (c *Context) PushClipRect(min, max Vec2, intersect bool) {
	r := [4]float32{min.X, min.Y, max.X, max.Y}
	if intersect {
		x1, y1, x2, y2 := c.dl().CurrentClip()
		r[0] = maxf(r[0], x1)
		r[1] = maxf(r[1], y1)
		r[2] = minf(r[2], x2)
		r[3] = minf(r[3], y2)
	}
	if r[2] < r[0] {
		r[2] = r[0]
	}
	if r[3] < r[1] {
		r[3] = r[1]
	}
	c.clipMirror = append(c.clipMirror, r)
	c.dl().PushClipRect(r[0], r[1], r[2], r[3])
}

// PopClipRect restores the previous clip rectangle.
func (c *Context) PopClipRect() {
	if len(c.clipMirror) == 0 {
		tkLogger.Debug("PopClipRect on empty stack")
		return
	}
	c.clipMirror = c.clipMirror[:len(c.clipMirror)-1]
	c.dl().PopClipRect()
}
