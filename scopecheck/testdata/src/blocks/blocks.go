// Package blocks contains test fixtures for the discarded BlockFunc
// check.
package blocks

import "scoped"

// ===== SHOULD REPORT =====

// [BAD]: Block never invoked, the window never opens.
func badDiscardedWindow(ui *scoped.UI) {
	ui.Window("stats", 0) // want `discarded block from Window; invoke it with a body`
}

// [BAD]: Same for nested constructs.
func badDiscardedMenu(ui *scoped.UI) {
	ui.Window("stats", 0)(func() {
		ui.Menu("File") // want `discarded block from Menu; invoke it with a body`
	})
}

// [BAD]: Wrappers returning BlockFunc are checked the same way.
func badDiscardedWrappedBlock(ui *scoped.UI) {
	labeledGroup(ui) // want `discarded block from labeledGroup; invoke it with a body`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Invoked with a body.
func goodInvokedBlock(ui *scoped.UI) {
	ui.Window("stats", 0)(func() {})
}

// [GOOD]: Empty bodies are fine; the scope still opens and closes.
func goodEmptyBody(ui *scoped.UI) {
	ui.ItemWidth(120)(func() {})
}

// [GOOD]: Block held in a variable and invoked later.
func goodStoredBlock(ui *scoped.UI) {
	block := ui.Group()
	block(func() {})
}

// [GOOD]: Returning the block hands the invocation to the caller.
func labeledGroup(ui *scoped.UI) scoped.BlockFunc {
	return ui.Group()
}
