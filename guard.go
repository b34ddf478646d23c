package scoped

// Policy selects when a Guard runs its end function.
type Policy uint8

const (
	// EndIfEntered runs the end function only if the scope was
	// entered. This matches begin calls whose matching end must be
	// skipped after a false return, such as popups and combo boxes.
	EndIfEntered Policy = iota

	// EndAlways runs the end function unconditionally. This matches
	// begin calls whose matching end must balance every begin, such
	// as windows.
	EndAlways
)

// Guard pairs the outcome of a begin call with the end call that
// closes it. It remembers whether the scope was entered and runs the
// end function at most once, under the guard's policy, no matter how
// many times End is called.
//
// A Guard must not be copied after creation; go vet flags copies.
//
// Usage:
//
//	g := scoped.Enter(tk.BeginPopup("ctx", scoped.PopupFlagsNone), tk.EndPopup, scoped.EndIfEntered)
//	defer g.End()
//	if g.Entered() {
//	    // populate the popup
//	}
type Guard struct {
	noCopy noCopy

	end     func()
	policy  Policy
	entered bool
	done    bool
}

// Enter records the outcome of a begin call. entered is the begin
// call's return value (true for unconditional begins), end is the
// matching end call, and policy selects whether end runs on a
// non-entered scope. end must not be nil.
func Enter(entered bool, end func(), policy Policy) *Guard {
	return &Guard{end: end, policy: policy, entered: entered}
}

// Entered reports whether the guarded scope was entered. Content
// must only be emitted into a scope that was entered.
func (g *Guard) Entered() bool {
	return g.entered
}

// End closes the scope. The end function runs if the policy is
// EndAlways, or if the policy is EndIfEntered and the scope was
// entered. Calls after the first are no-ops, so End can appear both
// in a defer and on an early-return path without double-closing.
func (g *Guard) End() {
	if g.done {
		return
	}
	g.done = true
	if g.policy == EndAlways || g.entered {
		g.end()
	}
}

// noCopy makes go vet's copylocks check flag copies of the
// containing struct. It must not be embedded.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
