package toolkit

import "github.com/go-theft-auto/scoped"

// popupState persists a popup's open flag, anchor and measured size.
// The size from the previous frame drives outside-click dismissal.
type popupState struct {
	Open       bool
	Pos        Vec2
	Size       Vec2
	justOpened bool
}

type popupFrame struct {
	id    ID
	st    *popupState
	modal bool
}

// OpenPopup flags the popup for display at the mouse position. The
// popup appears once the matching BeginPopup runs.
func (c *Context) OpenPopup(id string) {
	c.openPopupAt(c.GetID(id), c.mouse())
}

func (c *Context) openPopupAt(id ID, pos Vec2) {
	st := c.popups.get(id)
	if !st.Open {
		st.Open = true
		st.justOpened = true
		st.Pos = pos
	}
}

// BeginPopup shows the popup if a prior OpenPopup flagged it. Returns
// false when closed; call EndPopup only after true.
func (c *Context) BeginPopup(id string, flags WindowFlags) bool {
	return c.beginPopupByID(c.GetID(id), false)
}

func (c *Context) beginPopupByID(id ID, modal bool) bool {
	st, ok := c.popups.getIfExists(id)
	if !ok || !st.Open {
		return false
	}

	if c.input != nil && !st.justOpened {
		if c.input.KeyPressed(KeyEscape) {
			st.Open = false
			return false
		}
		if !modal && (c.input.MouseClicked(MouseButtonLeft) || c.input.MouseClicked(MouseButtonRight)) {
			popRect := Rect{X: st.Pos.X, Y: st.Pos.Y, W: st.Size.X, H: st.Size.Y}
			if !popRect.Contains(c.mouse()) {
				st.Open = false
				return false
			}
		}
	}
	st.justOpened = false

	c.beginOverlay(st.Pos, c.col(scoped.ColPopupBg), 0)
	c.pushRawID(id)
	c.pushCloser(&st.Open)
	c.popupStack = append(c.popupStack, &popupFrame{id: id, st: st, modal: modal})
	return true
}

// BeginPopupModal shows a centered modal popup with a dimmed backdrop.
// It closes on escape or when *open is set false; it ignores clicks
// outside. Returns false when closed; call EndPopup only after true.
func (c *Context) BeginPopupModal(title string, open *bool, flags WindowFlags) bool {
	id := c.GetID(title)
	st, ok := c.popups.getIfExists(id)
	if !ok || !st.Open {
		return false
	}
	if open != nil && !*open {
		st.Open = false
		return false
	}
	if c.input != nil && !st.justOpened && c.input.KeyPressed(KeyEscape) {
		st.Open = false
		if open != nil {
			*open = false
		}
		return false
	}

	// Recenter against the size measured last frame.
	st.Pos = Vec2{
		X: (c.displaySize.X - st.Size.X) / 2,
		Y: (c.displaySize.Y - st.Size.Y) / 2,
	}

	c.OverlayDrawList.AddRect(0, 0, c.displaySize.X, c.displaySize.Y,
		scoped.RGBA(0, 0, 0, 100))

	if !c.beginPopupByID(id, true) {
		return false
	}
	if flags&scoped.WindowFlagsNoTitleBar == 0 {
		c.Text(title)
		c.Separator()
	}
	return true
}

// EndPopup closes the current popup and records its size for next
// frame's hit testing.
func (c *Context) EndPopup() {
	n := len(c.popupStack)
	if n == 0 {
		tkLogger.Debug("EndPopup without matching BeginPopup")
		return
	}
	f := c.popupStack[n-1]
	c.popupStack = c.popupStack[:n-1]

	c.popCloser()
	c.PopID()
	rect := c.endOverlay()
	f.st.Size = Vec2{X: rect.W, Y: rect.H}
	f.st.Pos = Vec2{X: rect.X, Y: rect.Y}
}

// CloseCurrentPopup closes the innermost popup being built.
func (c *Context) CloseCurrentPopup() {
	if len(c.popupStack) == 0 {
		tkLogger.Debug("CloseCurrentPopup outside a popup")
		return
	}
	c.popupStack[len(c.popupStack)-1].st.Open = false
}

// popupButton extracts the trigger button from popup flags; unset
// button bits mean the right button.
func popupButton(flags PopupFlags) MouseButton {
	switch flags & scoped.PopupFlagsMouseButtonMask {
	case scoped.PopupFlagsMouseButtonLeft:
		return MouseButtonLeft
	case scoped.PopupFlagsMouseButtonMiddle:
		return MouseButtonMiddle
	default:
		return MouseButtonRight
	}
}

// BeginPopupContextItem opens a popup when the last submitted item is
// clicked with the popup's trigger button. Returns false when closed;
// call EndPopup only after true.
func (c *Context) BeginPopupContextItem(id string, flags PopupFlags) bool {
	popupID := c.GetID(id)
	if c.input != nil && c.input.MouseClicked(popupButton(flags)) &&
		c.lastItem.Contains(c.mouse()) {
		c.openPopupAt(popupID, c.mouse())
	}
	return c.beginPopupByID(popupID, false)
}

// BeginPopupContextWindow opens a popup when the current window is
// clicked with the trigger button. Returns false when closed; call
// EndPopup only after true.
func (c *Context) BeginPopupContextWindow(id string, flags PopupFlags) bool {
	popupID := c.GetID(id)
	if w := c.currentWindow(); w != nil && c.input != nil &&
		c.input.MouseClicked(popupButton(flags)) && w.rect.Contains(c.mouse()) {
		c.openPopupAt(popupID, c.mouse())
	}
	return c.beginPopupByID(popupID, false)
}

// BeginPopupContextVoid opens a popup when the trigger button is
// clicked outside every window. Windows are tested against last frame's
// rectangles. Returns false when closed; call EndPopup only after true.
func (c *Context) BeginPopupContextVoid(id string, flags PopupFlags) bool {
	popupID := c.GetID(id)
	if c.input != nil && c.input.MouseClicked(popupButton(flags)) {
		over := false
		for _, r := range c.prevWindowRects {
			if r.Contains(c.mouse()) {
				over = true
				break
			}
		}
		if !over {
			c.openPopupAt(popupID, c.mouse())
		}
	}
	return c.beginPopupByID(popupID, false)
}
