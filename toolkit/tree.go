package toolkit

import "github.com/go-theft-auto/scoped"

// treeState persists a node's open flag. init distinguishes "never
// seen" from "closed" so TreeNodeFlagsDefaultOpen applies exactly once.
type treeState struct {
	Open bool
	init bool
}

// TreeNode submits a collapsible tree row. When open it returns true,
// indents following items and pushes an ID scope; TreePop must be
// called only after true. Leaf nodes are always open and have no
// arrow.
func (c *Context) TreeNode(label string, flags TreeNodeFlags) bool {
	id := c.GetID(label)
	st := c.trees.get(id)
	if !st.init {
		st.init = true
		st.Open = flags&scoped.TreeNodeFlagsDefaultOpen != 0
	}

	leaf := flags&scoped.TreeNodeFlagsLeaf != 0
	pad := c.style.FramePadding
	textSize := c.measureText(label)
	arrowW := c.measureText("> ").X

	pos := c.itemPos()
	size := Vec2{X: arrowW + textSize.X + pad.X*2, Y: textSize.Y + pad.Y*2}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	if !leaf && c.clickedRect(rect, MouseButtonLeft) {
		st.Open = !st.Open
	}

	if flags&scoped.TreeNodeFlagsSelected != 0 {
		c.dl().AddRect(rect.X, rect.Y, rect.W, rect.H, c.col(scoped.ColHeader))
	} else if c.hoveredRect(rect) {
		c.dl().AddRect(rect.X, rect.Y, rect.W, rect.H, c.col(scoped.ColHeaderHovered))
	}

	open := leaf || st.Open
	if !leaf {
		arrow := ">"
		if open {
			arrow = "v"
		}
		c.addText(pos.X+pad.X, pos.Y+pad.Y, arrow, c.col(scoped.ColText))
	}
	c.addText(pos.X+pad.X+arrowW, pos.Y+pad.Y, label, c.col(scoped.ColText))

	c.addItem(pos, size)
	c.lastItemID = id

	if !open {
		return false
	}
	c.pushRawID(id)
	r := c.region()
	r.indent += c.style.IndentSpacing
	r.cursor.X = r.origin.X + r.indent
	return true
}

// TreePop closes an open tree node, removing its indent and ID scope.
func (c *Context) TreePop() {
	r := c.region()
	r.indent -= c.style.IndentSpacing
	if r.indent < 0 {
		tkLogger.Debug("TreePop without matching TreeNode")
		r.indent = 0
	}
	r.cursor.X = r.origin.X + r.indent
	c.PopID()
}

// CollapsingHeader submits a full-width toggle header. Unlike
// TreeNode, an open header neither indents nor pushes an ID scope, so
// there is no pop.
func (c *Context) CollapsingHeader(label string, flags TreeNodeFlags) bool {
	id := c.GetID(label)
	st := c.trees.get(id)
	if !st.init {
		st.init = true
		st.Open = flags&scoped.TreeNodeFlagsDefaultOpen != 0
	}

	pad := c.style.FramePadding
	pos := c.itemPos()
	size := Vec2{X: maxf(c.availWidth(), 40), Y: c.frameHeight()}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	if c.clickedRect(rect, MouseButtonLeft) {
		st.Open = !st.Open
	}

	bg := scoped.ColHeader
	if st.Open {
		bg = scoped.ColHeaderActive
	} else if c.hoveredRect(rect) {
		bg = scoped.ColHeaderHovered
	}
	c.dl().AddRectRounded(rect.X, rect.Y, rect.W, rect.H, c.col(bg), c.style.FrameRounding)

	arrow := ">"
	if st.Open {
		arrow = "v"
	}
	c.addText(pos.X+pad.X, pos.Y+pad.Y, arrow, c.col(scoped.ColText))
	c.addText(pos.X+pad.X+c.measureText("> ").X, pos.Y+pad.Y, label, c.col(scoped.ColText))

	c.addItem(pos, size)
	c.lastItemID = id
	return st.Open
}
