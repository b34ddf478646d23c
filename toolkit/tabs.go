package toolkit

import "github.com/go-theft-auto/scoped"

// tabBarState persists the selected tab across frames.
type tabBarState struct {
	Selected ID
	Known    []ID
}

type tabBarFrame struct {
	id    ID
	st    *tabBarState
	flags TabBarFlags

	barPos Vec2
	barW   float32
	barH   float32
	tabX   float32
	seen   []ID
}

// BeginTabBar opens a tab bar row; BeginTabItem submits the tabs.
// Returns false when the bar cannot be shown; call EndTabBar only
// after true.
func (c *Context) BeginTabBar(id string, flags TabBarFlags) bool {
	tid := c.GetID(id)
	st := c.tabBars.get(tid)

	pos := c.itemPos()
	w := maxf(c.availWidth(), 40)
	h := c.frameHeight()

	c.dl().AddLine(pos.X, pos.Y+h, pos.X+w, pos.Y+h, c.col(scoped.ColSeparator), 1)

	c.tabStack = append(c.tabStack, &tabBarFrame{
		id: tid, st: st, flags: flags,
		barPos: pos, barW: w, barH: h,
	})
	c.pushRawID(tid)
	c.addItem(pos, Vec2{X: w, Y: h})
	return true
}

// currentTabBar returns the innermost open tab bar, or nil.
func (c *Context) currentTabBar() *tabBarFrame {
	if len(c.tabStack) == 0 {
		return nil
	}
	return c.tabStack[len(c.tabStack)-1]
}

// BeginTabItem submits a tab. The selected tab returns true and its
// body flows below the bar; call EndTabItem only after true. A non-nil
// open pointer adds a close box that sets *open false.
func (c *Context) BeginTabItem(label string, open *bool, flags TabItemFlags) bool {
	f := c.currentTabBar()
	if f == nil {
		tkLogger.Debug("BeginTabItem outside a tab bar")
		return false
	}
	if open != nil && !*open {
		return false
	}

	id := c.GetID(label)
	f.seen = append(f.seen, id)

	pad := c.style.FramePadding
	textSize := c.measureText(label)
	w := textSize.X + pad.X*2
	closeW := float32(0)
	if open != nil {
		closeW = textSize.Y
		w += closeW + pad.X
	}

	rect := Rect{X: f.barPos.X + f.tabX, Y: f.barPos.Y, W: w, H: f.barH}
	f.tabX += w + 2

	newTab := !f.st.knows(id)
	if newTab {
		f.st.Known = append(f.st.Known, id)
	}
	if f.st.Selected == 0 ||
		flags&scoped.TabItemFlagsSetSelected != 0 ||
		(newTab && f.flags&scoped.TabBarFlagsAutoSelectNewTabs != 0) {
		f.st.Selected = id
	}
	if c.clickedRect(rect, MouseButtonLeft) {
		f.st.Selected = id
	}

	if open != nil {
		closeRect := Rect{
			X: rect.X + rect.W - pad.X - closeW,
			Y: rect.Y + (rect.H-closeW)/2,
			W: closeW, H: closeW,
		}
		if c.clickedRect(closeRect, MouseButtonLeft) {
			*open = false
			if f.st.Selected == id {
				f.st.Selected = 0
			}
			return false
		}
		c.addText(closeRect.X, closeRect.Y, "x", c.col(scoped.ColTextDisabled))
	}

	selected := f.st.Selected == id
	bg := scoped.ColHeader
	if selected {
		bg = scoped.ColHeaderActive
	} else if c.hoveredRect(rect) {
		bg = scoped.ColHeaderHovered
	}
	c.dl().AddRectRounded(rect.X, rect.Y, rect.W, rect.H, c.col(bg), c.style.FrameRounding)
	c.addText(rect.X+pad.X, rect.Y+pad.Y, label, c.col(scoped.ColText))

	if !selected {
		return false
	}
	c.pushRawID(id)
	return true
}

// EndTabItem closes the selected tab's body.
func (c *Context) EndTabItem() {
	if c.currentTabBar() == nil {
		tkLogger.Debug("EndTabItem outside a tab bar")
		return
	}
	c.PopID()
}

// EndTabBar closes the tab bar. A selection pointing at a tab that was
// not submitted this frame falls back to the first submitted tab.
func (c *Context) EndTabBar() {
	n := len(c.tabStack)
	if n == 0 {
		tkLogger.Debug("EndTabBar without matching BeginTabBar")
		return
	}
	f := c.tabStack[n-1]
	c.tabStack = c.tabStack[:n-1]

	found := false
	for _, id := range f.seen {
		if id == f.st.Selected {
			found = true
			break
		}
	}
	if !found {
		f.st.Selected = 0
		if len(f.seen) > 0 {
			f.st.Selected = f.seen[0]
		}
	}
	c.PopID()
}

func (st *tabBarState) knows(id ID) bool {
	for _, k := range st.Known {
		if k == id {
			return true
		}
	}
	return false
}
