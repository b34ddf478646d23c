package scoped

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// TextureID identifies a texture on the rendering backend.
type TextureID uint32

// Common colors (0xAABBGGRR format - alpha, blue, green, red).
const (
	ColorWhite  uint32 = 0xFFFFFFFF
	ColorBlack  uint32 = 0xFF000000
	ColorRed    uint32 = 0xFF0000FF
	ColorGreen  uint32 = 0xFF00FF00
	ColorBlue   uint32 = 0xFFFF0000
	ColorYellow uint32 = 0xFF00FFFF
	ColorCyan   uint32 = 0xFFFFFF00
	ColorGray   uint32 = 0xFF808080
)

// RGBA creates a color from red, green, blue, alpha components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf creates a color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(uint8(r*255), uint8(g*255), uint8(b*255), uint8(a*255))
}

// UnpackRGBA extracts color components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	r = uint8(c)
	g = uint8(c >> 8)
	b = uint8(c >> 16)
	a = uint8(c >> 24)
	return
}
