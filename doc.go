/*
Package scoped turns an immediate-mode GUI toolkit's paired begin/end
and push/pop calls into block constructs that cannot leak their
closing call.

# Overview

Immediate-mode toolkits bracket regions with call pairs: BeginWindow
and EndWindow, PushID and PopID. The pairing rules differ per pair
(some ends must always run, some only after an entered begin) and a
missed or doubled closing call corrupts the frame. This package wraps
each pair in a construct that takes the region body as a closure, runs
it when the region was entered, and issues the closing call exactly
once on every exit path out of the body, including early returns and
panics.

# Quick Start

	tk := toolkit.New(renderer).Begin(input, displaySize, deltaTime)
	ui := scoped.New(tk)

	ui.Window("Vehicle Stats", scoped.WindowFlagsNone)(func() {
	    tk.Text("Top speed: 240")
	    ui.TreeNode("Engine")(func() {
	        tk.Text("V8")
	    })
	})

The body closure runs only while the window is open; EndWindow runs in
every case, because the toolkit's window contract demands a balanced
end. A popup works the same way but skips its end when closed:

	ui.Popup("context", scoped.WindowFlagsNone)(func() {
	    ui.MenuItem("Copy")(func() { copySelection() })
	})

# Construct Families

Containers (Window, Child, ChildFrame) always issue their end call and
gate the body on entry. Conditional regions (Popup, PopupModal, the
PopupContext variants, Combo, ListBox, Menu, Table, TabBar, TabItem,
TreeNode, MainMenuBar, MenuBar, DragDropSource, DragDropTarget,
TooltipOnHover) issue their end call only after an entered begin.
Unconditional regions (Group, Tooltip) always run the body and the
end. Conditionals with no end call at all (CollapsingHeader, MenuItem)
just gate the body.

Modifications (Font, ButtonRepeat, ItemWidth, TextWrapPos, ID,
ClipRect, TextureID, StyleColor, StyleVar, StyleVarVec2) come in two
forms. The block form scopes the change to a body:

	ui.StyleColor(scoped.ColText, scoped.ColorYellow)(func() {
	    tk.Text("warning")
	})

The Set form applies the change for the rest of the enclosing
function:

	func drawSidebar(ui *scoped.UI, tk scoped.Toolkit) {
	    defer ui.SetItemWidth(160).End()
	    // every item below is 160 wide
	}

ButtonColored composes three style color pushes with one grouped pop:

	ui.ButtonColored(0.8, 0.2, 0.2)(func() {
	    if tk.Button("Delete") { ... }
	})

# Guards

Enter and Guard are the primitive under every construct. A custom
begin/end pair not in the catalog binds the same way the catalog
binds:

	g := scoped.Enter(tk.BeginDragDropTarget(), tk.EndDragDropTarget, scoped.EndIfEntered)
	defer g.End()
	if g.Entered() {
	    // inspect the payload
	}

A Guard runs its end function at most once regardless of how often End
is called, and must not be copied after creation (go vet's copylocks
check flags copies).

# Toolkit Boundary

The package renders nothing. All drawing, layout, and input behavior
lives behind the Toolkit interface; the toolkit subdirectory ships an
implementation with an OpenGL backend, and tests substitute a
recording fake.
*/
package scoped
