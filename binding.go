package scoped

// BlockFunc is the shape of every block construct in the catalog: it
// takes the block body and runs it inside the guarded scope. The
// matching end call is issued on every exit path out of the body,
// including panics.
//
// Usage:
//
//	ui.Window("Stats", scoped.WindowFlagsNone)(func() {
//	    // window contents; runs only while the window is open
//	})
type BlockFunc func(body func())

// boolScope builds a block construct from a bool-returning begin
// call. The body runs only when begin reports entry; the end call
// follows the policy.
func boolScope(begin func() bool, end func(), policy Policy) BlockFunc {
	return func(body func()) {
		g := Enter(begin(), end, policy)
		defer g.End()
		if g.Entered() {
			body()
		}
	}
}

// voidScope builds a block construct from an unconditional begin/end
// pair. The body always runs and the end call always follows it.
func voidScope(begin, end func()) BlockFunc {
	return func(body func()) {
		begin()
		g := Enter(true, end, EndAlways)
		defer g.End()
		body()
	}
}

// condScope builds a block construct for calls that gate their body
// on a bool but have no end call to issue.
func condScope(cond func() bool) BlockFunc {
	return func(body func()) {
		if cond() {
			body()
		}
	}
}

// setScope runs begin immediately and hands the caller a guard that
// closes the scope when ended. Deferring the End scopes the
// modification to the enclosing function instead of a block.
func setScope(begin, end func()) *Guard {
	begin()
	return Enter(true, end, EndAlways)
}
