package toolkit

import "github.com/go-theft-auto/scoped"

// The toolkit speaks the scoped package's vocabulary; the aliases keep
// signatures readable without forcing callers to juggle conversions.
type (
	Vec2      = scoped.Vec2
	TextureID = scoped.TextureID

	WindowFlags   = scoped.WindowFlags
	ComboFlags    = scoped.ComboFlags
	PopupFlags    = scoped.PopupFlags
	TableFlags    = scoped.TableFlags
	TabBarFlags   = scoped.TabBarFlags
	TabItemFlags  = scoped.TabItemFlags
	TreeNodeFlags = scoped.TreeNodeFlags
	DragDropFlags = scoped.DragDropFlags
	Col           = scoped.Col
	StyleVar      = scoped.StyleVar
)

// Rect is an axis-aligned rectangle (position + size).
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Vertex is a single vertex in the draw buffer.
// Layout matches the renderer's attribute pointers.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32
}

// DrawCmd is a single draw command batching primitives that share a
// clip rectangle and texture.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // x1, y1, x2, y2 in screen space
	TextureID    uint32     // 0 means untextured
	VertexOffset uint32     // Base vertex for this command
	IndexOffset  uint32     // First index for this command
}
