package toolkit

import (
	"fmt"

	"github.com/go-theft-auto/scoped"
)

// holdState tracks how long a button has been held, for auto-repeat.
type holdState struct {
	Held float32
}

// Text draws a line of text. With a wrap position pushed, the text
// wraps greedily at word boundaries.
func (c *Context) Text(text string) {
	c.textColored(text, c.col(scoped.ColText))
}

// TextColored draws a line of text in the given color.
func (c *Context) TextColored(text string, color uint32) {
	c.textColored(text, color)
}

// TextDisabled draws a line of text in the disabled color.
func (c *Context) TextDisabled(text string) {
	c.textColored(text, c.col(scoped.ColTextDisabled))
}

func (c *Context) textColored(text string, color uint32) {
	wrap := c.textWrapPos()
	if wrap < 0 {
		pos := c.itemPos()
		c.addText(pos.X, pos.Y, text, color)
		c.addItem(pos, c.measureText(text))
		return
	}

	r := c.region()
	wrapX := r.origin.X + wrap
	if wrap == 0 {
		wrapX = r.origin.X + r.width
	}

	pos := c.itemPos()
	lineH := c.lineHeight()
	y := pos.Y
	maxW := float32(0)

	line := ""
	lineW := float32(0)
	flush := func() {
		if line == "" {
			return
		}
		c.addText(pos.X, y, line, color)
		maxW = maxf(maxW, lineW)
		y += lineH
		line = ""
		lineW = 0
	}

	for _, word := range splitWords(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		w := c.measureText(candidate).X
		if line != "" && pos.X+w > wrapX {
			flush()
			candidate = word
			w = c.measureText(word).X
		}
		line = candidate
		lineW = w
	}
	flush()

	if y == pos.Y {
		y += lineH
	}
	c.addItem(pos, Vec2{X: maxW, Y: y - pos.Y})
}

// splitWords splits on runs of spaces.
func splitWords(s string) []string {
	var words []string
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}

// Button draws a push button and returns true when activated. With
// button repeat pushed, holding the button fires repeatedly after the
// key repeat delay.
func (c *Context) Button(label string) bool {
	id := c.GetID(label)
	pad := c.style.FramePadding
	textSize := c.measureText(label)

	width := c.itemWidth()
	if width <= 0 {
		width = textSize.X + pad.X*2
	}
	size := Vec2{X: width, Y: textSize.Y + pad.Y*2}
	pos := c.itemPos()
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	hovered := c.hoveredRect(rect)
	held := hovered && c.input != nil && c.input.MouseDown(MouseButtonLeft)
	clicked := c.clickedRect(rect, MouseButtonLeft)

	if c.buttonRepeat() {
		st := c.holds.get(id)
		if held {
			prev := st.Held
			st.Held += c.deltaTime
			if prev >= KeyRepeatDelay &&
				int((st.Held-KeyRepeatDelay)/KeyRepeatInterval) != int((prev-KeyRepeatDelay)/KeyRepeatInterval) {
				clicked = true
			}
		} else {
			st.Held = 0
		}
	}

	bg := scoped.ColButton
	if held {
		bg = scoped.ColButtonActive
	} else if hovered {
		bg = scoped.ColButtonHovered
	}
	c.dl().AddRectRounded(rect.X, rect.Y, rect.W, rect.H, c.col(bg), c.style.FrameRounding)
	c.addText(pos.X+(size.X-textSize.X)/2, pos.Y+pad.Y, label, c.col(scoped.ColText))

	c.addItem(pos, size)
	c.lastItemID = id
	return clicked
}

// Selectable draws a full-width selectable row. Activating it inside a
// popup, menu or combo closes that overlay, the usual picker pattern.
func (c *Context) Selectable(label string, selected bool) bool {
	id := c.GetID(label)
	pad := c.style.FramePadding
	textSize := c.measureText(label)

	pos := c.itemPos()
	size := Vec2{X: maxf(c.availWidth(), textSize.X+pad.X*2), Y: textSize.Y + pad.Y*2}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	hovered := c.hoveredRect(rect)
	clicked := c.clickedRect(rect, MouseButtonLeft)

	if selected {
		c.dl().AddRect(rect.X, rect.Y, rect.W, rect.H, c.col(scoped.ColHeader))
	} else if hovered {
		c.dl().AddRect(rect.X, rect.Y, rect.W, rect.H, c.col(scoped.ColHeaderHovered))
	}
	c.addText(pos.X+pad.X, pos.Y+pad.Y, label, c.col(scoped.ColText))

	c.addItem(pos, size)
	c.lastItemID = id

	if clicked {
		c.closeOverlayPopups()
	}
	return clicked
}

// Checkbox draws a check box bound to *checked and returns true on
// change.
func (c *Context) Checkbox(label string, checked *bool) bool {
	id := c.GetID(label)
	boxSize := c.lineHeight()
	pad := c.style.FramePadding

	pos := c.itemPos()
	textSize := c.measureText(label)
	size := Vec2{X: boxSize + c.style.ItemSpacing.X + textSize.X, Y: maxf(boxSize, textSize.Y)}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	changed := false
	if c.clickedRect(rect, MouseButtonLeft) && checked != nil {
		*checked = !*checked
		changed = true
	}

	bg := scoped.ColFrameBg
	if c.hoveredRect(rect) {
		bg = scoped.ColFrameBgHovered
	}
	dl := c.dl()
	dl.AddRectRounded(pos.X, pos.Y, boxSize, boxSize, c.col(bg), c.style.FrameRounding)
	if checked != nil && *checked {
		inset := boxSize * 0.25
		dl.AddRect(pos.X+inset, pos.Y+inset, boxSize-inset*2, boxSize-inset*2,
			c.col(scoped.ColButtonActive))
	}
	c.addText(pos.X+boxSize+c.style.ItemSpacing.X, pos.Y+pad.Y/2, label, c.col(scoped.ColText))

	c.addItem(pos, size)
	c.lastItemID = id
	return changed
}

// Separator draws a horizontal line across the region.
func (c *Context) Separator() {
	pos := c.itemPos()
	w := maxf(c.availWidth(), 1)
	c.dl().AddLine(pos.X, pos.Y+1, pos.X+w, pos.Y+1, c.col(scoped.ColSeparator), 1)
	c.addItem(pos, Vec2{X: w, Y: 3})
}

// SameLine keeps the next item on the current line, after the last
// item.
func (c *Context) SameLine() {
	r := c.region()
	r.cursor.X = c.lastItem.X + c.lastItem.W + c.style.ItemSpacing.X
	r.cursor.Y = c.lastItem.Y
	r.lineH = maxf(r.lineH, c.lastItem.H)
}

// Spacing adds a blank line of vertical space.
func (c *Context) Spacing() {
	pos := c.itemPos()
	c.addItem(pos, Vec2{X: 0, Y: c.style.ItemSpacing.Y})
}

// ProgressBar draws a fraction-filled bar with the fraction printed in
// the middle. Zero or negative size components use the item width and
// frame height.
func (c *Context) ProgressBar(fraction float32, size Vec2) {
	if size.X <= 0 {
		size.X = c.itemWidth()
		if size.X <= 0 {
			size.X = maxf(c.availWidth(), 40)
		}
	}
	if size.Y <= 0 {
		size.Y = c.frameHeight()
	}

	pos := c.itemPos()
	frac := clampf(fraction, 0, 1)
	dl := c.dl()
	dl.AddRectRounded(pos.X, pos.Y, size.X, size.Y, c.col(scoped.ColFrameBg), c.style.FrameRounding)
	dl.AddRectRounded(pos.X, pos.Y, size.X*frac, size.Y, c.col(scoped.ColButtonActive), c.style.FrameRounding)

	label := fmt.Sprintf("%d%%", int(frac*100+0.5))
	textSize := c.measureText(label)
	c.addText(pos.X+(size.X-textSize.X)/2, pos.Y+(size.Y-textSize.Y)/2, label, c.col(scoped.ColText))

	c.addItem(pos, size)
}

// Image draws a textured quad using the texture pushed with
// PushTextureID. Without one, a placeholder frame is drawn instead.
func (c *Context) Image(size Vec2) {
	pos := c.itemPos()
	dl := c.dl()

	tex := c.currentTexture()
	if tex == 0 {
		dl.AddRect(pos.X, pos.Y, size.X, size.Y, c.col(scoped.ColFrameBg))
		dl.AddRectOutline(pos.X, pos.Y, size.X, size.Y, c.col(scoped.ColBorder), 1)
	} else {
		dl.SetTexture(uint32(tex))
		dl.AddGlyphQuads([]GlyphQuad{{
			X0: pos.X, Y0: pos.Y,
			X1: pos.X + size.X, Y1: pos.Y + size.Y,
			U0: 0, V0: 0, U1: 1, V1: 1,
		}}, scoped.RGBA(255, 255, 255, 255))
		dl.SetTexture(0)
	}
	c.addItem(pos, size)
}
