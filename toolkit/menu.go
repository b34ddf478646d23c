package toolkit

import "github.com/go-theft-auto/scoped"

// menuState persists a menu's open flag and the dropdown rectangle
// measured last frame, used for outside-click dismissal.
type menuState struct {
	Open bool
	Pos  Vec2
	Size Vec2
}

type menuFrame struct {
	id ID
	st *menuState
}

type menuBarFrame struct {
	rect Rect
	main bool
}

// BeginMainMenuBar opens the menu bar across the top of the display.
// Returns false when it cannot be shown; call EndMainMenuBar only
// after true.
func (c *Context) BeginMainMenuBar() bool {
	rect := Rect{X: 0, Y: 0, W: c.displaySize.X, H: c.frameHeight()}
	c.dl().AddRect(rect.X, rect.Y, rect.W, rect.H, c.col(scoped.ColMenuBarBg))
	c.windowRects = append(c.windowRects, rect)

	c.menuBars = append(c.menuBars, menuBarFrame{rect: rect, main: true})
	c.pushRawID(hashString(0, "##MainMenuBar"))
	c.pushRegion(Vec2{X: c.style.WindowPadding.X, Y: c.style.FramePadding.Y},
		rect.W-c.style.WindowPadding.X*2, true)
	return true
}

// EndMainMenuBar closes the main menu bar.
func (c *Context) EndMainMenuBar() {
	c.endMenuBar(true)
}

// BeginMenuBar opens the menu bar row of the current window. Returns
// false unless the window was begun with WindowFlagsMenuBar and is not
// collapsed; call EndMenuBar only after true.
func (c *Context) BeginMenuBar() bool {
	w := c.currentWindow()
	if w == nil || !w.entered || w.flags&scoped.WindowFlagsMenuBar == 0 {
		return false
	}
	rect := w.menuBarRect
	c.dl().AddRect(rect.X, rect.Y, rect.W, rect.H, c.col(scoped.ColMenuBarBg))

	c.menuBars = append(c.menuBars, menuBarFrame{rect: rect})
	c.pushRawID(hashString(w.id, "##MenuBar"))
	c.pushRegion(Vec2{X: rect.X + c.style.WindowPadding.X, Y: rect.Y + c.style.FramePadding.Y},
		rect.W-c.style.WindowPadding.X*2, true)
	return true
}

// EndMenuBar closes the current window's menu bar.
func (c *Context) EndMenuBar() {
	c.endMenuBar(false)
}

func (c *Context) endMenuBar(main bool) {
	n := len(c.menuBars)
	if n == 0 || c.menuBars[n-1].main != main {
		tkLogger.Debug("EndMenuBar without matching BeginMenuBar", "main", main)
		return
	}
	c.menuBars = c.menuBars[:n-1]
	c.popRegion()
	c.PopID()
}

// BeginMenu submits a menu header and, when open, its dropdown.
// Returns false while closed or disabled; call EndMenu only after
// true.
func (c *Context) BeginMenu(label string, enabled bool) bool {
	id := c.GetID(label)
	st := c.menus.get(id)

	horizontal := c.region().horizontal
	textSize := c.measureText(label)
	pad := c.style.FramePadding

	pos := c.itemPos()
	var size Vec2
	if horizontal {
		size = Vec2{X: textSize.X + pad.X*2, Y: textSize.Y + pad.Y*2}
	} else {
		// Vertical menus give every row the full width with a submenu
		// arrow at the right edge.
		size = Vec2{X: maxf(c.region().width, textSize.X+pad.X*2+16), Y: textSize.Y + pad.Y*2}
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	if !enabled {
		st.Open = false
		c.addText(pos.X+pad.X, pos.Y+pad.Y, label, c.col(scoped.ColTextDisabled))
		c.addItem(pos, size)
		c.lastItemID = id
		return false
	}

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

	if st.Open || c.hoveredRect(rect) {
		bg := scoped.ColHeaderHovered
		if st.Open {
			bg = scoped.ColHeader
		}
		c.dl().AddRect(rect.X, rect.Y, rect.W, rect.H, c.col(bg))
	}
	c.addText(pos.X+pad.X, pos.Y+pad.Y, label, c.col(scoped.ColText))
	if !horizontal {
		c.addText(rect.X+rect.W-pad.X-c.measureText(">").X, pos.Y+pad.Y, ">", c.col(scoped.ColText))
	}
	c.addItem(pos, size)
	c.lastItemID = id

	if !st.Open {
		return false
	}

	var dropPos Vec2
	if horizontal {
		dropPos = Vec2{X: rect.X, Y: rect.Y + rect.H + 1}
	} else {
		dropPos = Vec2{X: rect.X + rect.W + 1, Y: rect.Y}
	}
	st.Pos = dropPos

	c.beginOverlay(dropPos, c.col(scoped.ColPopupBg), 140)
	c.pushRawID(id)
	c.pushCloser(&st.Open)
	c.menuStack = append(c.menuStack, &menuFrame{id: id, st: st})
	return true
}

// EndMenu closes the current menu's dropdown.
func (c *Context) EndMenu() {
	n := len(c.menuStack)
	if n == 0 {
		tkLogger.Debug("EndMenu without matching BeginMenu")
		return
	}
	f := c.menuStack[n-1]
	c.menuStack = c.menuStack[:n-1]

	c.popCloser()
	c.PopID()
	rect := c.endOverlay()
	f.st.Size = Vec2{X: rect.W, Y: rect.H}
}

// MenuItem submits a selectable menu row. Activating it closes the
// enclosing menus and popups and returns true for that frame.
func (c *Context) MenuItem(label, shortcut string, selected, enabled bool) bool {
	pad := c.style.FramePadding
	textSize := c.measureText(label)

	pos := c.itemPos()
	var size Vec2
	if c.region().horizontal {
		size = Vec2{X: textSize.X + pad.X*2, Y: textSize.Y + pad.Y*2}
	} else {
		size = Vec2{X: maxf(c.region().width, textSize.X+pad.X*2), Y: textSize.Y + pad.Y*2}
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	textCol := c.col(scoped.ColText)
	if !enabled {
		textCol = c.col(scoped.ColTextDisabled)
	}

	activated := false
	if enabled {
		if c.hoveredRect(rect) {
			c.dl().AddRect(rect.X, rect.Y, rect.W, rect.H, c.col(scoped.ColHeaderHovered))
		}
		if c.clickedRect(rect, MouseButtonLeft) {
			activated = true
		}
	}

	textX := pos.X + pad.X
	if selected {
		c.addText(textX, pos.Y+pad.Y, "+", textCol)
	}
	c.addText(textX+c.measureText("+ ").X, pos.Y+pad.Y, label, textCol)
	if shortcut != "" {
		sw := c.measureText(shortcut).X
		c.addText(rect.X+rect.W-pad.X-sw, pos.Y+pad.Y, shortcut, c.col(scoped.ColTextDisabled))
	}

	c.addItem(pos, size)
	id := c.GetID(label)
	c.lastItemID = id

	if activated {
		c.closeOverlayPopups()
	}
	return activated
}

// MenuItemEx is MenuItem with a toggled target: activation flips
// *selected and the check mark tracks it.
func (c *Context) MenuItemEx(label, shortcut string, selected *bool, enabled bool) bool {
	sel := selected != nil && *selected
	if c.MenuItem(label, shortcut, sel, enabled) {
		if selected != nil {
			*selected = !*selected
		}
		return true
	}
	return false
}
