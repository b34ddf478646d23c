package toolkit

import "github.com/go-theft-auto/scoped"

type groupFrame struct {
	pos Vec2
}

// BeginGroup captures the items until EndGroup as a single unit: the
// group's bounding box becomes the last item, so IsItemHovered and
// drag sources apply to the whole block.
func (c *Context) BeginGroup() {
	pos := c.itemPos()
	c.groupStack = append(c.groupStack, groupFrame{pos: pos})
	c.pushRegion(pos, maxf(c.availWidth(), 0), false)
}

// EndGroup closes the group and registers its bounding box as the
// last item.
func (c *Context) EndGroup() {
	n := len(c.groupStack)
	if n == 0 {
		tkLogger.Debug("EndGroup without matching BeginGroup")
		return
	}
	f := c.groupStack[n-1]
	c.groupStack = c.groupStack[:n-1]

	r := c.popRegion()
	c.addItem(f.pos, r.extent())
}

// BeginTooltip opens a tooltip at the mouse position. Content until
// EndTooltip renders into an overlay following the cursor.
func (c *Context) BeginTooltip() {
	mouse := c.mouse()
	c.beginOverlay(Vec2{X: mouse.X + 16, Y: mouse.Y + 12},
		c.col(scoped.ColPopupBg), 0)
}

// EndTooltip closes the current tooltip.
func (c *Context) EndTooltip() {
	c.endOverlay()
}

// IsItemHovered reports whether the mouse is over the last submitted
// item.
func (c *Context) IsItemHovered() bool {
	return c.hoveredRect(c.lastItem)
}
