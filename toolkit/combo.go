package toolkit

import "github.com/go-theft-auto/scoped"

// comboState persists the dropdown open flag and its measured size.
type comboState struct {
	Open bool
	Pos  Vec2
	Size Vec2
}

type comboFrame struct {
	id ID
	st *comboState
}

const comboDefaultWidth = 160

// BeginCombo submits a combo header showing the preview and, when
// open, its dropdown. Selectable rows inside close the dropdown on
// activation. Returns false while closed; call EndCombo only after
// true.
func (c *Context) BeginCombo(label, preview string, flags ComboFlags) bool {
	id := c.GetID(label)
	st := c.combos.get(id)

	pad := c.style.FramePadding
	width := c.itemWidth()
	if width <= 0 {
		width = comboDefaultWidth
	}
	h := c.frameHeight()

	pos := c.itemPos()
	rect := Rect{X: pos.X, Y: pos.Y, W: width, H: h}

	if c.input != nil && st.Open {
		if c.input.KeyPressed(KeyEscape) {
			st.Open = false
		} else if c.input.MouseClicked(MouseButtonLeft) {
			dropRect := Rect{X: st.Pos.X, Y: st.Pos.Y, W: st.Size.X, H: st.Size.Y}
			if !rect.Contains(c.mouse()) && !dropRect.Contains(c.mouse()) {
				st.Open = false
			}
		}
	}
	if c.clickedRect(rect, MouseButtonLeft) {
		st.Open = !st.Open
	}

	bg := scoped.ColFrameBg
	if st.Open {
		bg = scoped.ColFrameBgActive
	} else if c.hoveredRect(rect) {
		bg = scoped.ColFrameBgHovered
	}
	dl := c.dl()
	dl.AddRectRounded(rect.X, rect.Y, rect.W, rect.H, c.col(bg), c.style.FrameRounding)

	if flags&scoped.ComboFlagsNoPreview == 0 {
		c.addText(rect.X+pad.X, rect.Y+pad.Y, preview, c.col(scoped.ColText))
	}
	if flags&scoped.ComboFlagsNoArrowButton == 0 {
		arrow := "v"
		if st.Open {
			arrow = "^"
		}
		c.addText(rect.X+rect.W-pad.X-c.measureText(arrow).X, rect.Y+pad.Y, arrow, c.col(scoped.ColText))
	}
	if label != "" && label[0] != '#' {
		c.addText(rect.X+rect.W+c.style.ItemSpacing.X, rect.Y+pad.Y, label, c.col(scoped.ColText))
	}

	c.addItem(pos, Vec2{X: width, Y: h})
	c.lastItemID = id

	if !st.Open {
		return false
	}

	dropPos := Vec2{X: rect.X, Y: rect.Y + rect.H + 1}
	st.Pos = dropPos
	c.beginOverlay(dropPos, c.col(scoped.ColPopupBg), width)
	c.pushRawID(id)
	c.pushCloser(&st.Open)
	c.comboStack = append(c.comboStack, &comboFrame{id: id, st: st})
	return true
}

// EndCombo closes the current combo's dropdown.
func (c *Context) EndCombo() {
	n := len(c.comboStack)
	if n == 0 {
		tkLogger.Debug("EndCombo without matching BeginCombo")
		return
	}
	f := c.comboStack[n-1]
	c.comboStack = c.comboStack[:n-1]

	c.popCloser()
	c.PopID()
	rect := c.endOverlay()
	f.st.Size = Vec2{X: rect.W, Y: rect.H}
}

type listBoxFrame struct {
	pos  Vec2
	size Vec2
}

// BeginListBox opens an inline framed list. Zero or negative size
// components default to the remaining width and roughly seven rows.
// Returns false when the list cannot be shown; call EndListBox only
// after true.
func (c *Context) BeginListBox(label string, size Vec2) bool {
	id := c.GetID(label)

	if size.X <= 0 {
		size.X = maxf(c.availWidth(), 40)
		if label != "" && label[0] != '#' {
			size.X = maxf(size.X-c.measureText(label).X-c.style.ItemSpacing.X, 40)
		}
	}
	if size.Y <= 0 {
		size.Y = c.lineHeight()*7 + c.style.FramePadding.Y*2
	}

	pos := c.itemPos()
	dl := c.dl()
	dl.AddRect(pos.X, pos.Y, size.X, size.Y, c.col(scoped.ColFrameBg))
	dl.AddRectOutline(pos.X, pos.Y, size.X, size.Y, c.col(scoped.ColBorder), 1)
	if label != "" && label[0] != '#' {
		c.addText(pos.X+size.X+c.style.ItemSpacing.X, pos.Y+c.style.FramePadding.Y,
			label, c.col(scoped.ColText))
	}

	c.pushRawID(id)
	dl.PushClipRect(pos.X, pos.Y, pos.X+size.X, pos.Y+size.Y)
	pad := c.style.FramePadding
	c.pushRegion(Vec2{X: pos.X + pad.X, Y: pos.Y + pad.Y}, size.X-pad.X*2, false)
	c.listStack = append(c.listStack, listBoxFrame{pos: pos, size: size})
	return true
}

// EndListBox closes the current list box.
func (c *Context) EndListBox() {
	n := len(c.listStack)
	if n == 0 {
		tkLogger.Debug("EndListBox without matching BeginListBox")
		return
	}
	f := c.listStack[n-1]
	c.listStack = c.listStack[:n-1]

	c.popRegion()
	c.dl().PopClipRect()
	c.PopID()
	c.addItem(f.pos, f.size)
}
