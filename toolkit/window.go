package toolkit

import "github.com/go-theft-auto/scoped"

// windowState persists a window's placement across frames. Content size
// is measured as the window is built and applied one frame later, the
// usual immediate mode auto-sizing lag.
type windowState struct {
	Pos       Vec2
	Content   Vec2
	Collapsed bool
	placed    bool
	dragging  bool
	dragOff   Vec2
}

type windowFrame struct {
	id          ID
	st          *windowState
	flags       WindowFlags
	rect        Rect
	menuBarRect Rect
	entered     bool
}

// BeginWindow opens a movable, collapsible window. It returns false
// when the window is collapsed; EndWindow must be called either way.
func (c *Context) BeginWindow(title string, flags WindowFlags) bool {
	id := hashString(0, title)
	st := c.windows.get(id)
	if !st.placed {
		st.placed = true
		// Cascade initial placement so stacked windows stay grabbable.
		st.Pos = Vec2{
			X: 60 + 30*float32(c.windowCount),
			Y: 60 + 30*float32(c.windowCount),
		}
		st.Content = Vec2{X: 200, Y: 80}
	}
	c.windowCount++

	if flags&scoped.WindowFlagsNoCollapse != 0 {
		st.Collapsed = false
	}

	pad := c.style.WindowPadding
	titleH := float32(0)
	if flags&scoped.WindowFlagsNoTitleBar == 0 {
		titleH = c.frameHeight()
	}
	menuH := float32(0)
	if flags&scoped.WindowFlagsMenuBar != 0 && !st.Collapsed {
		menuH = c.frameHeight()
	}

	w := maxf(st.Content.X+pad.X*2, 120)
	if titleH > 0 {
		w = maxf(w, c.measureText(title).X+titleH+pad.X*2)
	}

	// Title bar interaction before sizing, so a collapse toggle takes
	// effect this frame.
	if titleH > 0 && c.input != nil {
		barRect := Rect{X: st.Pos.X, Y: st.Pos.Y, W: w, H: titleH}
		toggleRect := Rect{X: st.Pos.X, Y: st.Pos.Y, W: titleH, H: titleH}

		if flags&scoped.WindowFlagsNoCollapse == 0 && c.clickedRect(toggleRect, MouseButtonLeft) {
			st.Collapsed = !st.Collapsed
		} else if flags&scoped.WindowFlagsNoMove == 0 {
			if c.clickedRect(barRect, MouseButtonLeft) {
				st.dragging = true
				st.dragOff = c.mouse().Sub(st.Pos)
			}
		}
		if st.dragging {
			if c.input.MouseDown(MouseButtonLeft) {
				st.Pos = c.mouse().Sub(st.dragOff)
			} else {
				st.dragging = false
			}
		}
	}

	if st.Collapsed {
		menuH = 0
	}
	h := titleH + menuH
	if !st.Collapsed {
		h += st.Content.Y + pad.Y*2
	}
	rect := Rect{X: st.Pos.X, Y: st.Pos.Y, W: w, H: h}
	c.windowRects = append(c.windowRects, rect)

	dl := c.dl()
	noBg := flags&scoped.WindowFlagsNoBackground != 0
	if !st.Collapsed && !noBg {
		dl.AddRectRounded(rect.X, rect.Y+titleH, rect.W, rect.H-titleH,
			c.col(scoped.ColWindowBg), c.style.FrameRounding)
	}

	if titleH > 0 {
		titleCol := scoped.ColTitleBg
		if st.dragging || c.hoveredRect(Rect{X: rect.X, Y: rect.Y, W: rect.W, H: titleH}) {
			titleCol = scoped.ColTitleBgActive
		}
		dl.AddRectRounded(rect.X, rect.Y, rect.W, titleH, c.col(titleCol), c.style.FrameRounding)

		textX := rect.X + pad.X
		if flags&scoped.WindowFlagsNoCollapse == 0 {
			arrow := "v"
			if st.Collapsed {
				arrow = ">"
			}
			c.addText(rect.X+c.style.FramePadding.X*2, rect.Y+c.style.FramePadding.Y,
				arrow, c.col(scoped.ColText))
			textX = rect.X + titleH
		}
		c.addText(textX, rect.Y+c.style.FramePadding.Y, title, c.col(scoped.ColText))
	}
	if !noBg {
		dl.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, c.col(scoped.ColBorder), 1)
	}

	frame := &windowFrame{
		id:      id,
		st:      st,
		flags:   flags,
		rect:    rect,
		entered: !st.Collapsed,
	}
	if menuH > 0 {
		frame.menuBarRect = Rect{X: rect.X, Y: rect.Y + titleH, W: rect.W, H: menuH}
	}
	c.windowStack = append(c.windowStack, frame)
	c.pushRawID(id)

	if frame.entered {
		dl.PushClipRect(rect.X, rect.Y+titleH, rect.X+rect.W, rect.Y+rect.H)
		origin := Vec2{X: rect.X + pad.X, Y: rect.Y + titleH + menuH + pad.Y}
		c.pushRegion(origin, rect.W-pad.X*2, false)
	}
	return frame.entered
}

// EndWindow closes the current window. Legal after a collapsed
// BeginWindow.
func (c *Context) EndWindow() {
	n := len(c.windowStack)
	if n == 0 {
		tkLogger.Debug("EndWindow without matching BeginWindow")
		return
	}
	f := c.windowStack[n-1]
	c.windowStack = c.windowStack[:n-1]

	if f.entered {
		r := c.popRegion()
		content := r.extent()
		f.st.Content = Vec2{X: maxf(content.X, 80), Y: maxf(content.Y, 24)}
		c.dl().PopClipRect()
	}
	c.PopID()
}

// currentWindow returns the innermost open window frame, or nil.
func (c *Context) currentWindow() *windowFrame {
	if len(c.windowStack) == 0 {
		return nil
	}
	return c.windowStack[len(c.windowStack)-1]
}

type childFrame struct {
	pos    Vec2
	size   Vec2
	framed bool
}

// BeginChild opens an embedded region of fixed size. Zero or negative
// size components stretch to the remaining space. EndChild must always
// be called.
func (c *Context) BeginChild(id string, size Vec2, flags WindowFlags) bool {
	return c.beginChild(c.GetID(id), size, flags, false)
}

// EndChild closes the current child region.
func (c *Context) EndChild() {
	c.endChild()
}

// BeginChildFrame is BeginChild with a frame background and padding.
// EndChildFrame must always be called.
func (c *Context) BeginChildFrame(id string, size Vec2) bool {
	return c.beginChild(c.GetID(id), size, scoped.WindowFlagsNone, true)
}

// EndChildFrame closes the current child frame.
func (c *Context) EndChildFrame() {
	c.endChild()
}

func (c *Context) beginChild(id ID, size Vec2, flags WindowFlags, framed bool) bool {
	pos := c.itemPos()
	if size.X <= 0 {
		size.X = maxf(c.availWidth(), 40)
	}
	if size.Y <= 0 {
		size.Y = c.lineHeight() * 8
	}

	dl := c.dl()
	if flags&scoped.WindowFlagsNoBackground == 0 {
		bg := scoped.ColChildBg
		if framed {
			bg = scoped.ColFrameBg
		}
		dl.AddRect(pos.X, pos.Y, size.X, size.Y, c.col(bg))
		if framed {
			dl.AddRectOutline(pos.X, pos.Y, size.X, size.Y, c.col(scoped.ColBorder), 1)
		}
	}

	c.pushRawID(id)
	dl.PushClipRect(pos.X, pos.Y, pos.X+size.X, pos.Y+size.Y)

	pad := Vec2{}
	if framed {
		pad = c.style.FramePadding
	}
	c.pushRegion(Vec2{X: pos.X + pad.X, Y: pos.Y + pad.Y}, size.X-pad.X*2, false)
	c.childStack = append(c.childStack, childFrame{pos: pos, size: size, framed: framed})
	return true
}

func (c *Context) endChild() {
	n := len(c.childStack)
	if n == 0 {
		tkLogger.Debug("EndChild without matching BeginChild")
		return
	}
	f := c.childStack[n-1]
	c.childStack = c.childStack[:n-1]

	c.popRegion()
	c.dl().PopClipRect()
	c.PopID()
	c.addItem(f.pos, f.size)
}
