package scoped

// WindowFlags controls window appearance and behavior.
type WindowFlags uint32

const (
	WindowFlagsNone WindowFlags = 0

	WindowFlagsNoTitleBar   WindowFlags = 1 << 0 // Hide the title bar
	WindowFlagsNoMove       WindowFlags = 1 << 1 // Window cannot be dragged
	WindowFlagsNoResize     WindowFlags = 1 << 2 // Hide the resize grip
	WindowFlagsNoCollapse   WindowFlags = 1 << 3 // Disable collapsing via the title bar toggle
	WindowFlagsNoBackground WindowFlags = 1 << 4 // Skip the background and border
	WindowFlagsMenuBar      WindowFlags = 1 << 5 // Reserve a menu bar row below the title bar
)

// ComboFlags controls combo box appearance.
type ComboFlags uint32

const (
	ComboFlagsNone ComboFlags = 0

	ComboFlagsNoArrowButton ComboFlags = 1 << 0 // Hide the dropdown arrow
	ComboFlagsNoPreview     ComboFlags = 1 << 1 // Hide the selected item preview
)

// PopupFlags selects which mouse button opens a context popup.
// With no button flag set, context popups open on the right button.
type PopupFlags uint32

const (
	PopupFlagsNone PopupFlags = 0

	PopupFlagsMouseButtonLeft   PopupFlags = 1 << 0
	PopupFlagsMouseButtonRight  PopupFlags = 1 << 1
	PopupFlagsMouseButtonMiddle PopupFlags = 1 << 2

	PopupFlagsMouseButtonMask PopupFlags = PopupFlagsMouseButtonLeft |
		PopupFlagsMouseButtonRight | PopupFlagsMouseButtonMiddle
)

// TableFlags controls table appearance and behavior.
type TableFlags uint32

const (
	TableFlagsNone TableFlags = 0

	// Features
	TableFlagsRowBg TableFlags = 1 << 0 // Alternate row background colors

	// Borders
	TableFlagsBordersInnerH TableFlags = 1 << 8  // Horizontal borders between rows
	TableFlagsBordersInnerV TableFlags = 1 << 9  // Vertical borders between columns
	TableFlagsBordersOuterH TableFlags = 1 << 10 // Horizontal border on top/bottom
	TableFlagsBordersOuterV TableFlags = 1 << 11 // Vertical border on left/right

	// Convenience
	TableFlagsBordersInner TableFlags = TableFlagsBordersInnerH | TableFlagsBordersInnerV
	TableFlagsBordersOuter TableFlags = TableFlagsBordersOuterH | TableFlagsBordersOuterV
	TableFlagsBorders      TableFlags = TableFlagsBordersInner | TableFlagsBordersOuter
)

// TabBarFlags controls tab bar behavior.
type TabBarFlags uint32

const (
	TabBarFlagsNone TabBarFlags = 0

	TabBarFlagsAutoSelectNewTabs TabBarFlags = 1 << 0 // Select a tab the first frame it appears
)

// TabItemFlags controls individual tab behavior.
type TabItemFlags uint32

const (
	TabItemFlagsNone TabItemFlags = 0

	TabItemFlagsSetSelected TabItemFlags = 1 << 0 // Force this tab to be the selected one
)

// TreeNodeFlags controls tree node and collapsing header behavior.
type TreeNodeFlags uint32

const (
	TreeNodeFlagsNone TreeNodeFlags = 0

	TreeNodeFlagsSelected    TreeNodeFlags = 1 << 0 // Draw the node as selected
	TreeNodeFlagsDefaultOpen TreeNodeFlags = 1 << 1 // Node starts open
	TreeNodeFlagsLeaf        TreeNodeFlags = 1 << 2 // No expand arrow, node is always open
)

// DragDropFlags controls drag and drop behavior.
type DragDropFlags uint32

const (
	DragDropFlagsNone DragDropFlags = 0

	DragDropFlagsSourceNoPreviewTooltip DragDropFlags = 1 << 0 // Suppress the payload preview tooltip while dragging
)

// Col identifies a themable color slot.
type Col int

const (
	ColText Col = iota
	ColTextDisabled
	ColWindowBg
	ColChildBg
	ColPopupBg
	ColBorder
	ColFrameBg
	ColFrameBgHovered
	ColFrameBgActive
	ColTitleBg
	ColTitleBgActive
	ColMenuBarBg
	ColButton
	ColButtonHovered
	ColButtonActive
	ColHeader
	ColHeaderHovered
	ColHeaderActive
	ColSeparator
	ColTableHeaderBg
	ColTableBorder
	ColTableRowBgAlt

	ColCount
)

// StyleVar identifies a themable style variable. The first group holds
// float values, the second Vec2 values.
type StyleVar int

const (
	StyleVarAlpha StyleVar = iota
	StyleVarFrameRounding
	StyleVarIndentSpacing

	StyleVarWindowPadding
	StyleVarFramePadding
	StyleVarItemSpacing

	StyleVarCount
)
