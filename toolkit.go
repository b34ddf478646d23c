package scoped

// Toolkit is the immediate-mode GUI surface the catalog sequences
// calls into. It carries exactly the paired begin/end and push/pop
// operations plus the conditionals the catalog binds; rendering,
// layout, and input semantics belong to the implementation.
//
// The calling convention follows the catalog's policies: EndWindow,
// EndChild, and EndChildFrame must accept a call after any matching
// begin, entered or not. Every other end call arrives only after its
// begin reported entry, and every push is balanced by its pop.
type Toolkit interface {
	// Windows
	BeginWindow(title string, flags WindowFlags) bool
	EndWindow()
	BeginChild(id string, size Vec2, flags WindowFlags) bool
	EndChild()
	BeginChildFrame(id string, size Vec2) bool
	EndChildFrame()

	// Popups
	BeginPopup(id string, flags WindowFlags) bool
	BeginPopupModal(title string, open *bool, flags WindowFlags) bool
	BeginPopupContextItem(id string, flags PopupFlags) bool
	BeginPopupContextWindow(id string, flags PopupFlags) bool
	BeginPopupContextVoid(id string, flags PopupFlags) bool
	EndPopup()

	// Menus
	BeginMainMenuBar() bool
	EndMainMenuBar()
	BeginMenuBar() bool
	EndMenuBar()
	BeginMenu(label string, enabled bool) bool
	EndMenu()
	MenuItem(label, shortcut string, selected, enabled bool) bool

	// Selectors
	BeginCombo(label, preview string, flags ComboFlags) bool
	EndCombo()
	BeginListBox(label string, size Vec2) bool
	EndListBox()

	// Tables
	BeginTable(id string, columns int, flags TableFlags) bool
	EndTable()

	// Tabs
	BeginTabBar(id string, flags TabBarFlags) bool
	EndTabBar()
	BeginTabItem(label string, open *bool, flags TabItemFlags) bool
	EndTabItem()

	// Trees
	TreeNode(label string, flags TreeNodeFlags) bool
	TreePop()
	CollapsingHeader(label string, flags TreeNodeFlags) bool

	// Drag and drop
	BeginDragDropSource(flags DragDropFlags) bool
	EndDragDropSource()
	BeginDragDropTarget() bool
	EndDragDropTarget()

	// Grouping and tooltips
	BeginGroup()
	EndGroup()
	BeginTooltip()
	EndTooltip()
	IsItemHovered() bool

	// Modification stacks
	PushFont(name string)
	PopFont()
	PushButtonRepeat(repeat bool)
	PopButtonRepeat()
	PushItemWidth(width float32)
	PopItemWidth()
	PushTextWrapPos(wrapX float32)
	PopTextWrapPos()
	PushID(id string)
	PopID()
	PushClipRect(min, max Vec2, intersect bool)
	PopClipRect()
	PushTextureID(tex TextureID)
	PopTextureID()
	PushStyleColor(col Col, color uint32)
	PopStyleColor(count int)
	PushStyleVar(v StyleVar, value float32)
	PushStyleVarVec2(v StyleVar, value Vec2)
	PopStyleVar(count int)
}
