package toolkit

import "github.com/go-theft-auto/scoped"

// dragDropState is the context-wide drag in progress. It lives on the
// Context rather than a store: at most one drag exists at a time and it
// spans frames until the button is released.
type dragDropState struct {
	active      bool
	sourceID    ID
	payloadType string
	payload     any

	// Press tracking before the drag threshold is crossed.
	pressing bool
	pressID  ID
	start    Vec2
}

// Movement in pixels before a press becomes a drag.
const dragThreshold = 6

// BeginDragDropSource turns the last submitted item into a drag
// source. It returns true while that item is being dragged; set the
// payload and optionally draw a preview inside, then call
// EndDragDropSource. Without DragDropFlagsSourceNoPreviewTooltip the
// body renders into a tooltip following the mouse.
func (c *Context) BeginDragDropSource(flags DragDropFlags) bool {
	if c.lastItemID == 0 {
		return false
	}
	d := &c.drag
	mouse := c.mouse()

	if !d.active && c.input != nil {
		if c.input.MouseClicked(MouseButtonLeft) && c.lastItem.Contains(mouse) {
			d.pressing = true
			d.pressID = c.lastItemID
			d.start = mouse
		}
		if d.pressing && d.pressID == c.lastItemID {
			if !c.input.MouseDown(MouseButtonLeft) {
				d.pressing = false
			} else {
				dx := mouse.X - d.start.X
				dy := mouse.Y - d.start.Y
				if dx*dx+dy*dy > dragThreshold*dragThreshold {
					d.pressing = false
					d.active = true
					d.sourceID = d.pressID
				}
			}
		}
	}

	if !d.active || d.sourceID != c.lastItemID {
		return false
	}

	if flags&scoped.DragDropFlagsSourceNoPreviewTooltip == 0 {
		c.beginOverlay(Vec2{X: mouse.X + 16, Y: mouse.Y + 12},
			c.col(scoped.ColPopupBg), 0)
		c.dragPreviewOpen = true
	}
	return true
}

// EndDragDropSource closes the drag source scope and its preview
// tooltip.
func (c *Context) EndDragDropSource() {
	if c.dragPreviewOpen {
		c.endOverlay()
		c.dragPreviewOpen = false
	}
}

// SetDragDropPayload attaches a typed payload to the drag in progress.
func (c *Context) SetDragDropPayload(payloadType string, payload any) {
	if !c.drag.active {
		tkLogger.Debug("SetDragDropPayload without an active drag")
		return
	}
	c.drag.payloadType = payloadType
	c.drag.payload = payload
}

// BeginDragDropTarget turns the last submitted item into a drop
// target. It returns true while a drag from another item hovers it;
// call AcceptDragDropPayload inside, then EndDragDropTarget.
func (c *Context) BeginDragDropTarget() bool {
	d := &c.drag
	if !d.active || d.sourceID == c.lastItemID {
		return false
	}
	if !c.lastItem.Contains(c.mouse()) {
		return false
	}
	c.OverlayDrawList.AddRectOutline(c.lastItem.X-1, c.lastItem.Y-1,
		c.lastItem.W+2, c.lastItem.H+2, c.col(scoped.ColHeaderActive), 1)
	return true
}

// AcceptDragDropPayload returns the payload when one of the given type
// is dropped on the current target this frame. Accepting ends the
// drag.
func (c *Context) AcceptDragDropPayload(payloadType string) (any, bool) {
	d := &c.drag
	if !d.active || d.payloadType != payloadType {
		return nil, false
	}
	if c.input == nil || !c.input.MouseReleased(MouseButtonLeft) {
		return nil, false
	}
	payload := d.payload
	*d = dragDropState{}
	return payload, true
}

// EndDragDropTarget closes the drop target scope.
func (c *Context) EndDragDropTarget() {}
