package scoped_test

import (
	"testing"

	"github.com/go-theft-auto/scoped"
)

func TestGuardPolicyMatrix(t *testing.T) {
	cases := []struct {
		name    string
		entered bool
		policy  scoped.Policy
		wantEnd bool
	}{
		{"always entered", true, scoped.EndAlways, true},
		{"always not entered", false, scoped.EndAlways, true},
		{"if-entered entered", true, scoped.EndIfEntered, true},
		{"if-entered not entered", false, scoped.EndIfEntered, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ends := 0
			g := scoped.Enter(tc.entered, func() { ends++ }, tc.policy)

			if g.Entered() != tc.entered {
				t.Errorf("Entered() = %t, want %t", g.Entered(), tc.entered)
			}
			if ends != 0 {
				t.Fatalf("end ran before End(): %d calls", ends)
			}

			g.End()

			want := 0
			if tc.wantEnd {
				want = 1
			}
			if ends != want {
				t.Errorf("after End(): %d end calls, want %d", ends, want)
			}
		})
	}
}

func TestGuardEndExactlyOnce(t *testing.T) {
	ends := 0
	g := scoped.Enter(true, func() { ends++ }, scoped.EndAlways)

	g.End()
	g.End()
	g.End()

	if ends != 1 {
		t.Errorf("end ran %d times, want 1", ends)
	}
}

func TestGuardEnteredIsStable(t *testing.T) {
	g := scoped.Enter(true, func() {}, scoped.EndIfEntered)

	// Entered is a read-only view; asking repeatedly must not
	// consume the guard.
	for i := 0; i < 3; i++ {
		if !g.Entered() {
			t.Fatal("Entered() flipped before End()")
		}
	}

	g.End()

	if !g.Entered() {
		t.Error("Entered() flipped after End()")
	}
}

func TestGuardDeferredEndRunsOnPanic(t *testing.T) {
	ends := 0

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic did not propagate through the guard")
			}
		}()

		g := scoped.Enter(true, func() { ends++ }, scoped.EndIfEntered)
		defer g.End()
		panic("boom")
	}()

	if ends != 1 {
		t.Errorf("end ran %d times after panic, want 1", ends)
	}
}

func TestGuardSiblingsAreIndependent(t *testing.T) {
	endsA, endsB := 0, 0
	a := scoped.Enter(true, func() { endsA++ }, scoped.EndAlways)
	b := scoped.Enter(true, func() { endsB++ }, scoped.EndAlways)

	a.End()

	if endsA != 1 || endsB != 0 {
		t.Errorf("after ending a: a=%d b=%d, want a=1 b=0", endsA, endsB)
	}

	b.End()

	if endsA != 1 || endsB != 1 {
		t.Errorf("after ending both: a=%d b=%d, want 1 and 1", endsA, endsB)
	}
}

func TestGuardDeferPlusEarlyEndDoesNotDoubleClose(t *testing.T) {
	// End on an early-return path plus the usual deferred End.
	ends := 0

	func() {
		g := scoped.Enter(true, func() { ends++ }, scoped.EndAlways)
		defer g.End()

		g.End()
	}()

	if ends != 1 {
		t.Errorf("end ran %d times, want 1", ends)
	}
}
