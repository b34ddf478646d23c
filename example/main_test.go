package main

import (
	"testing"

	"github.com/go-theft-auto/scoped"
	"github.com/go-theft-auto/scoped/toolkit"
)

// stubRenderer lets frame logic run without a GL context.
type stubRenderer struct{}

func (stubRenderer) Render(dl *toolkit.DrawList) error { return nil }
func (stubRenderer) FontTextureID() uint32             { return 1 }
func (stubRenderer) Resize(width, height int)          {}

// Abandoning a mission from its context menu must not shrink the
// mission slice while the row loop is still iterating it.
func TestAbandonMissionFromContextMenu(t *testing.T) {
	gui := toolkit.New(stubRenderer{})
	input := toolkit.NewInputState()
	size := toolkit.Vec2{X: 800, Y: 600}
	state := demoState{
		missions: []string{"Heist prep", "Airport run", "Docks stakeout"},
		crew:     []string{"Driver", "Hacker", "Gunner"},
	}

	frame := func() {
		t.Helper()
		ctx := gui.Begin(input, size, 0.016)
		ui := scoped.New(ctx)
		drawCrewTab(ui, ctx, &state)
		if err := gui.End(); err != nil {
			t.Fatalf("End() returned error: %v", err)
		}
	}

	// Open the Missions tree. The crew table above it ends at y=78, so
	// the tree row sits at (8,90).
	input.SetMousePos(12, 95)
	input.SetMouseButton(toolkit.MouseButtonLeft, true)
	frame()

	// Right-click the first mission row (y 113-132) to open its
	// context menu at the mouse.
	input.Reset()
	input.SetMouseButton(toolkit.MouseButtonLeft, false)
	input.SetMousePos(40, 120)
	input.SetMouseButton(toolkit.MouseButtonRight, true)
	frame()

	// Click Abandon: the dropdown content starts one window padding in
	// from the popup anchor, so its row covers (48,128)-(228,147).
	input.Reset()
	input.SetMouseButton(toolkit.MouseButtonRight, false)
	input.SetMousePos(52, 134)
	input.SetMouseButton(toolkit.MouseButtonLeft, true)
	frame()

	if len(state.missions) != 2 {
		t.Fatalf("expected 2 missions after abandoning one, got %d", len(state.missions))
	}
	if state.missions[0] != "Airport run" || state.missions[1] != "Docks stakeout" {
		t.Errorf("wrong missions kept: %v", state.missions)
	}

	// The next frame renders the remaining rows cleanly.
	input.Reset()
	input.SetMouseButton(toolkit.MouseButtonLeft, false)
	frame()
}
