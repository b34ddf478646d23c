// Example walks through the scope construct catalog on top of the
// OpenGL backend: menus, windows, tabs, tables, trees, popups,
// drag-and-drop, and style scopes.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scoped"
	"github.com/go-theft-auto/scoped/backend/opengl"
	"github.com/go-theft-auto/scoped/toolkit"
)

const (
	windowWidth  = 1024
	windowHeight = 768
	windowTitle  = "scoped example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var fruits = []string{"Apple", "Banana", "Cherry", "Dragonfruit"}

// demoState is the retained application state the immediate-mode frame
// reads and writes.
type demoState struct {
	showInspector bool
	showAbout     bool
	cheats        bool
	repeatClicks  int
	progress      float32
	fruit         int
	missions      []string
	crew          []string
	garage        []string
	crewTabOpen   bool
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Create the renderer (takes initial viewport size) and input adapter.
	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	gui := toolkit.New(renderer)

	state := demoState{
		showInspector: true,
		progress:      0.35,
		missions:      []string{"Heist prep", "Airport run", "Docks stakeout"},
		crew:          []string{"Driver", "Hacker", "Gunner"},
		crewTabOpen:   true,
	}

	// Main loop.
	lastTime := glfw.GetTime()
	for !window.ShouldClose() {
		// Reset per-frame input before the callbacks fire so clicks
		// from this poll survive into the frame.
		input := inputAdapter.Update()
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		fbW, fbH := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbW), int32(fbH))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// Projection and input share window coordinates.
		w, h := window.GetSize()
		renderer.Resize(w, h)
		ctx := gui.Begin(input, toolkit.Vec2{X: float32(w), Y: float32(h)}, dt)
		ui := scoped.New(ctx)

		drawFrame(ui, ctx, &state, window)

		if err := gui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func drawFrame(ui *scoped.UI, tk *toolkit.Context, state *demoState, window *glfw.Window) {
	ui.MainMenuBar()(func() {
		ui.Menu("File")(func() {
			ui.MenuItem("New Save")(func() {
				state.garage = state.garage[:0]
			})
			ui.MenuItemEx("Inspector", "F1", state.showInspector, true)(func() {
				state.showInspector = !state.showInspector
			})
			tk.Separator()
			ui.MenuItem("Quit")(func() {
				window.SetShouldClose(true)
			})
		})
		ui.Menu("Help")(func() {
			ui.MenuItem("About")(func() {
				state.showAbout = true
			})
		})
	})

	if state.showAbout {
		tk.OpenPopup("about")
		state.showAbout = false
	}
	aboutOpen := true
	ui.PopupModal("About", &aboutOpen, scoped.WindowFlagsNone)(func() {
		tk.Text("Scope construct demo for the toolkit.")
		tk.Spacing()
		if tk.Button("Close") {
			tk.CloseCurrentPopup()
		}
	})

	ui.Window("Mission Control", scoped.WindowFlagsMenuBar)(func() {
		ui.MenuBar()(func() {
			ui.Menu("View")(func() {
				ui.MenuItemEx("Dark theme", "", true, false)(func() {})
			})
		})

		ui.TabBar("main", scoped.TabBarFlagsNone)(func() {
			ui.TabItem("Widgets", nil, scoped.TabItemFlagsNone)(func() {
				drawWidgetsTab(ui, tk, state)
			})
			ui.TabItem("Crew", &state.crewTabOpen, scoped.TabItemFlagsNone)(func() {
				drawCrewTab(ui, tk, state)
			})
			ui.TabItem("Garage", nil, scoped.TabItemFlagsNone)(func() {
				drawGarageTab(ui, tk, state)
			})
		})
	})

	if state.showInspector {
		drawInspector(ui, tk, state)
	}

	ui.PopupContextVoid("void-ctx", scoped.PopupFlagsNone)(func() {
		ui.MenuItem("Hide inspector")(func() {
			state.showInspector = false
		})
		ui.MenuItem("Show inspector")(func() {
			state.showInspector = true
		})
	})
}

func drawWidgetsTab(ui *scoped.UI, tk *toolkit.Context, state *demoState) {
	tk.Text("Leaf widgets run on the toolkit; scopes run on the catalog.")

	if tk.Button("Advance") {
		state.progress += 0.1
		if state.progress > 1 {
			state.progress = 0
		}
	}
	ui.TooltipOnHover()(func() {
		tk.Text("Bumps the progress bar by 10%")
	})
	tk.SameLine()
	ui.ButtonRepeat(true)(func() {
		if tk.Button("Hold me") {
			state.repeatClicks++
		}
	})
	tk.SameLine()
	tk.Text(fmt.Sprintf("repeats: %d", state.repeatClicks))

	tk.ProgressBar(state.progress, scoped.Vec2{})
	tk.Checkbox("Enable cheats", &state.cheats)
	tk.Separator()

	ui.Combo("Fruit", fruits[state.fruit], scoped.ComboFlagsNone)(func() {
		for i, name := range fruits {
			if tk.Selectable(name, i == state.fruit) {
				state.fruit = i
			}
		}
	})

	ui.ItemWidth(220)(func() {
		ui.Combo("Fruit (wide)", fruits[state.fruit], scoped.ComboFlagsNoArrowButton)(func() {
			for i, name := range fruits {
				if tk.Selectable(name, i == state.fruit) {
					state.fruit = i
				}
			}
		})
	})

	tk.Separator()
	ui.ButtonColored(0.8, 0.2, 0.2)(func() {
		if tk.Button("Self destruct") {
			state.progress = 0
		}
	})
	tk.SameLine()
	ui.StyleVar(scoped.StyleVarFrameRounding, 8)(func() {
		tk.Button("Rounded")
	})

	ui.TextWrapPos(260)(func() {
		tk.Text("Wrapped copy stays inside the wrap position even when the window is wide enough to hold it on one line.")
	})
}

func drawCrewTab(ui *scoped.UI, tk *toolkit.Context, state *demoState) {
	ui.Table("crew", 2, scoped.TableFlagsRowBg|scoped.TableFlagsBorders)(func() {
		tk.TableSetupColumn("Role", 120)
		tk.TableSetupColumn("Status", 0)
		tk.TableHeadersRow()
		for _, role := range state.crew {
			tk.TableNextRow()
			tk.TableNextColumn()
			tk.Text(role)
			tk.TableNextColumn()
			tk.TextColored("ready", scoped.ColorGreen)
		}
	})

	tk.Spacing()
	ui.TreeNode("Missions")(func() {
		// Deleting while the rows are still being submitted would leave
		// the loop iterating a shorter slice; mark now, remove after.
		abandon := -1
		for i := range state.missions {
			ui.ID(fmt.Sprintf("mission-%d", i))(func() {
				tk.Selectable(state.missions[i], false)
				ui.PopupContextItem("mission-ctx", scoped.PopupFlagsNone)(func() {
					ui.MenuItem("Abandon")(func() {
						abandon = i
					})
				})
			})
		}
		if abandon >= 0 {
			state.missions = append(state.missions[:abandon], state.missions[abandon+1:]...)
		}
		ui.TreeNodeEx("Completed", scoped.TreeNodeFlagsLeaf)(func() {
			tk.TextDisabled("none yet")
		})
	})
}

func drawGarageTab(ui *scoped.UI, tk *toolkit.Context, state *demoState) {
	tk.Text("Drag a vehicle into the garage.")

	for _, name := range []string{"Banshee", "Infernus", "Sandking"} {
		tk.Selectable(name, false)
		ui.DragDropSource(scoped.DragDropFlagsNone)(func() {
			tk.SetDragDropPayload("vehicle", name)
			tk.Text(name)
		})
	}

	tk.Spacing()
	ui.ChildFrame("garage", scoped.Vec2{X: 0, Y: 120})(func() {
		if len(state.garage) == 0 {
			tk.TextDisabled("empty")
		}
		for _, v := range state.garage {
			tk.Text(v)
		}
	})
	ui.DragDropTarget()(func() {
		if payload, ok := tk.AcceptDragDropPayload("vehicle"); ok {
			state.garage = append(state.garage, payload.(string))
		}
	})
}

func drawInspector(ui *scoped.UI, tk *toolkit.Context, state *demoState) {
	ui.Window("Inspector", scoped.WindowFlagsNone)(func() {
		ui.CollapsingHeader("Session", scoped.TreeNodeFlagsDefaultOpen)(func() {
			tk.Text(fmt.Sprintf("missions: %d", len(state.missions)))
			tk.Text(fmt.Sprintf("garage:   %d", len(state.garage)))
		})
		ui.CollapsingHeader("Picks", scoped.TreeNodeFlagsNone)(func() {
			ui.ListBox("Fruit", scoped.Vec2{})(func() {
				for i, name := range fruits {
					if tk.Selectable(name, i == state.fruit) {
						state.fruit = i
					}
				}
			})
		})
	})
}
