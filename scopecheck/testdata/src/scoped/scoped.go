// Package scoped is a stub of the guard-layer API for analyzer tests.
// Only the shapes matter: Guard, BlockFunc, and a UI exposing both
// forms of a few constructs.
package scoped

type Guard struct {
	ended bool
}

func (g *Guard) End() {
	g.ended = true
}

type BlockFunc func(body func())

type WindowFlags int

type UI struct{}

func New() *UI {
	return &UI{}
}

func (ui *UI) Window(title string, flags WindowFlags) BlockFunc {
	return func(body func()) { body() }
}

func (ui *UI) Menu(label string) BlockFunc {
	return func(body func()) { body() }
}

func (ui *UI) Group() BlockFunc {
	return func(body func()) { body() }
}

func (ui *UI) ItemWidth(width float32) BlockFunc {
	return func(body func()) { body() }
}

func (ui *UI) SetItemWidth(width float32) *Guard {
	return &Guard{}
}

func (ui *UI) SetFont(name string) *Guard {
	return &Guard{}
}

func (ui *UI) SetID(id string) *Guard {
	return &Guard{}
}
