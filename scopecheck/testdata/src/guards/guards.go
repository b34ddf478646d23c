// Package guards contains test fixtures for the guard misuse checks:
// discarded Set* results and guards ended in the same statement.
package guards

import "scoped"

// ===== SHOULD REPORT =====

// [BAD]: Guard result dropped, the pop never runs.
func badDiscardedGuard(ui *scoped.UI) {
	ui.SetItemWidth(120) // want `discarded guard from SetItemWidth; defer its End or use the block form`
}

// [BAD]: Every Set* form is caught, not just one method.
func badDiscardedFontGuard(ui *scoped.UI) {
	ui.SetFont("mono") // want `discarded guard from SetFont; defer its End or use the block form`
	ui.SetID("row")    // want `discarded guard from SetID; defer its End or use the block form`
}

// [BAD]: Inline End, the scope is an empty span.
func badInlineEnd(ui *scoped.UI) {
	ui.SetFont("mono").End() // want `guard from SetFont is ended in the same statement; the scope closes before anything runs inside it, defer the End instead`
}

// [BAD]: Detection is type-based, so wrappers are checked too.
func badDiscardedWrappedGuard(ui *scoped.UI) {
	wideItems(ui) // want `discarded guard from wideItems; defer its End or use the block form`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Deferred End, the intended pattern.
func goodDeferredGuard(ui *scoped.UI) {
	defer ui.SetItemWidth(120).End()
}

// [GOOD]: Guard held in a variable; the caller decides when it ends.
func goodStoredGuard(ui *scoped.UI) {
	g := ui.SetFont("mono")
	defer g.End()
}

// [GOOD]: Stored guard ended explicitly before an early return.
func goodExplicitEnd(ui *scoped.UI, narrow bool) {
	g := ui.SetItemWidth(80)
	if narrow {
		g.End()
		return
	}
	g.End()
}

// [GOOD]: Returning the guard hands the End obligation to the caller.
func wideItems(ui *scoped.UI) *scoped.Guard {
	return ui.SetItemWidth(240)
}
