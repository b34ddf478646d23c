package scoped

import "fmt"

// UI binds a Toolkit to the named scope constructs. Every method
// returns either a BlockFunc that brackets its body with the matching
// begin/end pair, or a *Guard the caller defers. Constructs may nest
// freely; each one closes its own scope before an enclosing one.
type UI struct {
	tk Toolkit
}

// New wraps a toolkit in the scope construct catalog.
func New(tk Toolkit) *UI {
	return &UI{tk: tk}
}

// Toolkit returns the wrapped toolkit, for leaf widget calls inside
// block bodies.
func (ui *UI) Toolkit() Toolkit {
	return ui.tk
}

// =============================================================================
// Containers
// =============================================================================

// Window opens a titled top-level window. The body runs only while
// the window is open and not collapsed; the window is always closed
// again, matching the toolkit's begin/end contract for windows.
//
// Usage:
//
//	ui.Window("Vehicle Stats", scoped.WindowFlagsNone)(func() {
//	    // window contents
//	})
func (ui *UI) Window(title string, flags WindowFlags) BlockFunc {
	begin := func() bool { return ui.tk.BeginWindow(title, flags) }
	return boolScope(begin, ui.tk.EndWindow, EndAlways)
}

// Child opens an embedded region of the given size inside the current
// window.
func (ui *UI) Child(id string, size Vec2, flags WindowFlags) BlockFunc {
	begin := func() bool { return ui.tk.BeginChild(id, size, flags) }
	return boolScope(begin, ui.tk.EndChild, EndAlways)
}

// ChildFrame opens an embedded region drawn with the frame background
// and border.
func (ui *UI) ChildFrame(id string, size Vec2) BlockFunc {
	begin := func() bool { return ui.tk.BeginChildFrame(id, size) }
	return boolScope(begin, ui.tk.EndChildFrame, EndAlways)
}

// =============================================================================
// Popups
// =============================================================================

// Popup runs the body while the popup with the given id is open.
// Open it with the toolkit's OpenPopup; the popup closes itself on
// outside clicks.
func (ui *UI) Popup(id string, flags WindowFlags) BlockFunc {
	begin := func() bool { return ui.tk.BeginPopup(id, flags) }
	return boolScope(begin, ui.tk.EndPopup, EndIfEntered)
}

// PopupModal runs the body while the modal with the given title is
// open. If open is non-nil it is set to false when the modal is
// dismissed.
func (ui *UI) PopupModal(title string, open *bool, flags WindowFlags) BlockFunc {
	begin := func() bool { return ui.tk.BeginPopupModal(title, open, flags) }
	return boolScope(begin, ui.tk.EndPopup, EndIfEntered)
}

// PopupContextItem opens a popup when the previous item is clicked
// with the popup's mouse button (right by default).
func (ui *UI) PopupContextItem(id string, flags PopupFlags) BlockFunc {
	begin := func() bool { return ui.tk.BeginPopupContextItem(id, flags) }
	return boolScope(begin, ui.tk.EndPopup, EndIfEntered)
}

// PopupContextWindow opens a popup when the current window is clicked
// with the popup's mouse button.
func (ui *UI) PopupContextWindow(id string, flags PopupFlags) BlockFunc {
	begin := func() bool { return ui.tk.BeginPopupContextWindow(id, flags) }
	return boolScope(begin, ui.tk.EndPopup, EndIfEntered)
}

// PopupContextVoid opens a popup when empty space is clicked with the
// popup's mouse button.
func (ui *UI) PopupContextVoid(id string, flags PopupFlags) BlockFunc {
	begin := func() bool { return ui.tk.BeginPopupContextVoid(id, flags) }
	return boolScope(begin, ui.tk.EndPopup, EndIfEntered)
}

// =============================================================================
// Menus
// =============================================================================

// MainMenuBar runs the body inside the screen-top menu bar.
func (ui *UI) MainMenuBar() BlockFunc {
	return boolScope(ui.tk.BeginMainMenuBar, ui.tk.EndMainMenuBar, EndIfEntered)
}

// MenuBar runs the body inside the current window's menu bar. The
// window must have been opened with WindowFlagsMenuBar.
func (ui *UI) MenuBar() BlockFunc {
	return boolScope(ui.tk.BeginMenuBar, ui.tk.EndMenuBar, EndIfEntered)
}

// Menu runs the body while the named submenu is open.
//
// Usage:
//
//	ui.MainMenuBar()(func() {
//	    ui.Menu("File")(func() {
//	        ui.MenuItem("Quit")(func() { done = true })
//	    })
//	})
func (ui *UI) Menu(label string) BlockFunc {
	return ui.MenuEx(label, true)
}

// MenuEx is Menu with an enabled switch; a disabled menu never opens.
func (ui *UI) MenuEx(label string, enabled bool) BlockFunc {
	begin := func() bool { return ui.tk.BeginMenu(label, enabled) }
	return boolScope(begin, ui.tk.EndMenu, EndIfEntered)
}

// =============================================================================
// Selectors
// =============================================================================

// Combo runs the body while the combo's dropdown is open. preview is
// the text shown on the closed control.
func (ui *UI) Combo(label, preview string, flags ComboFlags) BlockFunc {
	begin := func() bool { return ui.tk.BeginCombo(label, preview, flags) }
	return boolScope(begin, ui.tk.EndCombo, EndIfEntered)
}

// ListBox runs the body inside a scrollable list frame of the given
// size.
func (ui *UI) ListBox(label string, size Vec2) BlockFunc {
	begin := func() bool { return ui.tk.BeginListBox(label, size) }
	return boolScope(begin, ui.tk.EndListBox, EndIfEntered)
}

// =============================================================================
// Tables and tabs
// =============================================================================

// Table runs the body inside a table with the given column count. Row
// and column advancement happens through the toolkit's table calls
// inside the body.
func (ui *UI) Table(id string, columns int, flags TableFlags) BlockFunc {
	begin := func() bool { return ui.tk.BeginTable(id, columns, flags) }
	return boolScope(begin, ui.tk.EndTable, EndIfEntered)
}

// TabBar runs the body inside a tab bar; the body emits TabItem
// blocks.
func (ui *UI) TabBar(id string, flags TabBarFlags) BlockFunc {
	begin := func() bool { return ui.tk.BeginTabBar(id, flags) }
	return boolScope(begin, ui.tk.EndTabBar, EndIfEntered)
}

// TabItem runs the body while its tab is the selected one. If open is
// non-nil the tab shows a close button that clears *open.
func (ui *UI) TabItem(label string, open *bool, flags TabItemFlags) BlockFunc {
	begin := func() bool { return ui.tk.BeginTabItem(label, open, flags) }
	return boolScope(begin, ui.tk.EndTabItem, EndIfEntered)
}

// =============================================================================
// Trees
// =============================================================================

// TreeNode runs the body while the node is expanded, indented one
// level.
func (ui *UI) TreeNode(label string) BlockFunc {
	return ui.TreeNodeEx(label, TreeNodeFlagsNone)
}

// TreeNodef is TreeNode with a formatted label.
func (ui *UI) TreeNodef(format string, args ...any) BlockFunc {
	return ui.TreeNodeEx(fmt.Sprintf(format, args...), TreeNodeFlagsNone)
}

// TreeNodeEx is TreeNode with explicit flags.
func (ui *UI) TreeNodeEx(label string, flags TreeNodeFlags) BlockFunc {
	begin := func() bool { return ui.tk.TreeNode(label, flags) }
	return boolScope(begin, ui.tk.TreePop, EndIfEntered)
}

// =============================================================================
// Drag and drop
// =============================================================================

// DragDropSource marks the previous item as a drag source while a
// drag from it is in flight; the body emits the payload and preview.
func (ui *UI) DragDropSource(flags DragDropFlags) BlockFunc {
	begin := func() bool { return ui.tk.BeginDragDropSource(flags) }
	return boolScope(begin, ui.tk.EndDragDropSource, EndIfEntered)
}

// DragDropTarget marks the previous item as a drop target while a
// payload hovers over it; the body inspects and accepts the payload.
func (ui *UI) DragDropTarget() BlockFunc {
	return boolScope(ui.tk.BeginDragDropTarget, ui.tk.EndDragDropTarget, EndIfEntered)
}

// =============================================================================
// Groups and tooltips
// =============================================================================

// Group brackets the body so the items inside it are treated as a
// single item for hover checks and drag sources.
func (ui *UI) Group() BlockFunc {
	return voidScope(ui.tk.BeginGroup, ui.tk.EndGroup)
}

// Tooltip draws the body in a tooltip at the mouse cursor.
func (ui *UI) Tooltip() BlockFunc {
	return voidScope(ui.tk.BeginTooltip, ui.tk.EndTooltip)
}

// TooltipOnHover draws the body in a tooltip only while the previous
// item is hovered.
//
// Usage:
//
//	tk.Button("Save")
//	ui.TooltipOnHover()(func() {
//	    tk.Text("Write the current state to disk")
//	})
func (ui *UI) TooltipOnHover() BlockFunc {
	begin := func() bool {
		if !ui.tk.IsItemHovered() {
			return false
		}
		ui.tk.BeginTooltip()
		return true
	}
	return boolScope(begin, ui.tk.EndTooltip, EndIfEntered)
}

// =============================================================================
// Modification scopes
// =============================================================================
//
// Each modification comes in two forms. The block form scopes the
// change to a body:
//
//	ui.ItemWidth(120)(func() { ... })
//
// The Set form scopes it to the enclosing function through a deferred
// guard:
//
//	defer ui.SetItemWidth(120).End()

// Font runs the body with the named font active.
func (ui *UI) Font(name string) BlockFunc {
	begin := func() { ui.tk.PushFont(name) }
	return voidScope(begin, ui.tk.PopFont)
}

// SetFont switches to the named font until the returned guard ends.
func (ui *UI) SetFont(name string) *Guard {
	return setScope(func() { ui.tk.PushFont(name) }, ui.tk.PopFont)
}

// ButtonRepeat runs the body with button auto-repeat switched on or
// off.
func (ui *UI) ButtonRepeat(repeat bool) BlockFunc {
	begin := func() { ui.tk.PushButtonRepeat(repeat) }
	return voidScope(begin, ui.tk.PopButtonRepeat)
}

// SetButtonRepeat switches button auto-repeat until the returned
// guard ends.
func (ui *UI) SetButtonRepeat(repeat bool) *Guard {
	return setScope(func() { ui.tk.PushButtonRepeat(repeat) }, ui.tk.PopButtonRepeat)
}

// ItemWidth runs the body with the given item width.
func (ui *UI) ItemWidth(width float32) BlockFunc {
	begin := func() { ui.tk.PushItemWidth(width) }
	return voidScope(begin, ui.tk.PopItemWidth)
}

// SetItemWidth applies the given item width until the returned guard
// ends.
func (ui *UI) SetItemWidth(width float32) *Guard {
	return setScope(func() { ui.tk.PushItemWidth(width) }, ui.tk.PopItemWidth)
}

// TextWrapPos runs the body with text wrapping at the given x offset.
func (ui *UI) TextWrapPos(wrapX float32) BlockFunc {
	begin := func() { ui.tk.PushTextWrapPos(wrapX) }
	return voidScope(begin, ui.tk.PopTextWrapPos)
}

// SetTextWrapPos applies the wrap offset until the returned guard
// ends.
func (ui *UI) SetTextWrapPos(wrapX float32) *Guard {
	return setScope(func() { ui.tk.PushTextWrapPos(wrapX) }, ui.tk.PopTextWrapPos)
}

// ID runs the body with an extra id segment, separating otherwise
// identical widget ids.
func (ui *UI) ID(id string) BlockFunc {
	begin := func() { ui.tk.PushID(id) }
	return voidScope(begin, ui.tk.PopID)
}

// SetID pushes an id segment until the returned guard ends.
func (ui *UI) SetID(id string) *Guard {
	return setScope(func() { ui.tk.PushID(id) }, ui.tk.PopID)
}

// ClipRect runs the body clipped to the given rectangle. With
// intersect set, the rectangle is intersected with the current clip
// rectangle instead of replacing it.
func (ui *UI) ClipRect(min, max Vec2, intersect bool) BlockFunc {
	begin := func() { ui.tk.PushClipRect(min, max, intersect) }
	return voidScope(begin, ui.tk.PopClipRect)
}

// SetClipRect applies the clip rectangle until the returned guard
// ends.
func (ui *UI) SetClipRect(min, max Vec2, intersect bool) *Guard {
	return setScope(func() { ui.tk.PushClipRect(min, max, intersect) }, ui.tk.PopClipRect)
}

// TextureID runs the body with the given texture bound for image
// primitives.
func (ui *UI) TextureID(tex TextureID) BlockFunc {
	begin := func() { ui.tk.PushTextureID(tex) }
	return voidScope(begin, ui.tk.PopTextureID)
}

// SetTextureID binds the texture until the returned guard ends.
func (ui *UI) SetTextureID(tex TextureID) *Guard {
	return setScope(func() { ui.tk.PushTextureID(tex) }, ui.tk.PopTextureID)
}

// StyleColor runs the body with one themed color overridden.
func (ui *UI) StyleColor(col Col, color uint32) BlockFunc {
	begin := func() { ui.tk.PushStyleColor(col, color) }
	end := func() { ui.tk.PopStyleColor(1) }
	return voidScope(begin, end)
}

// SetStyleColor overrides one themed color until the returned guard
// ends.
func (ui *UI) SetStyleColor(col Col, color uint32) *Guard {
	begin := func() { ui.tk.PushStyleColor(col, color) }
	end := func() { ui.tk.PopStyleColor(1) }
	return setScope(begin, end)
}

// StyleVar runs the body with one float style variable overridden.
func (ui *UI) StyleVar(v StyleVar, value float32) BlockFunc {
	begin := func() { ui.tk.PushStyleVar(v, value) }
	end := func() { ui.tk.PopStyleVar(1) }
	return voidScope(begin, end)
}

// SetStyleVar overrides one float style variable until the returned
// guard ends.
func (ui *UI) SetStyleVar(v StyleVar, value float32) *Guard {
	begin := func() { ui.tk.PushStyleVar(v, value) }
	end := func() { ui.tk.PopStyleVar(1) }
	return setScope(begin, end)
}

// StyleVarVec2 runs the body with one Vec2 style variable overridden.
func (ui *UI) StyleVarVec2(v StyleVar, value Vec2) BlockFunc {
	begin := func() { ui.tk.PushStyleVarVec2(v, value) }
	end := func() { ui.tk.PopStyleVar(1) }
	return voidScope(begin, end)
}

// SetStyleVarVec2 overrides one Vec2 style variable until the
// returned guard ends.
func (ui *UI) SetStyleVarVec2(v StyleVar, value Vec2) *Guard {
	begin := func() { ui.tk.PushStyleVarVec2(v, value) }
	end := func() { ui.tk.PopStyleVar(1) }
	return setScope(begin, end)
}

// ButtonColored tints the buttons in the body with the given base
// color; hovered and active states reuse it at higher alphas. The
// pushes and the single grouped pop stay in step because the pop
// count comes from the pushed list.
//
// Usage:
//
//	ui.ButtonColored(0.8, 0.2, 0.2)(func() {
//	    if tk.Button("Delete") { ... }
//	})
func (ui *UI) ButtonColored(r, g, b float32) BlockFunc {
	colors := []struct {
		col   Col
		value uint32
	}{
		{ColButton, RGBAf(r, g, b, 0.5)},
		{ColButtonHovered, RGBAf(r, g, b, 0.8)},
		{ColButtonActive, RGBAf(r, g, b, 0.7)},
	}
	begin := func() {
		for _, c := range colors {
			ui.tk.PushStyleColor(c.col, c.value)
		}
	}
	end := func() { ui.tk.PopStyleColor(len(colors)) }
	return voidScope(begin, end)
}

// =============================================================================
// Conditionals
// =============================================================================

// CollapsingHeader runs the body while the header is open. Unlike
// TreeNode there is no closing call and no indentation.
func (ui *UI) CollapsingHeader(label string, flags TreeNodeFlags) BlockFunc {
	return condScope(func() bool { return ui.tk.CollapsingHeader(label, flags) })
}

// MenuItem runs the body in the frame the item is activated.
func (ui *UI) MenuItem(label string) BlockFunc {
	return ui.MenuItemEx(label, "", false, true)
}

// MenuItemEx is MenuItem with a shortcut hint, a checked state, and
// an enabled switch.
func (ui *UI) MenuItemEx(label, shortcut string, selected, enabled bool) BlockFunc {
	return condScope(func() bool { return ui.tk.MenuItem(label, shortcut, selected, enabled) })
}
