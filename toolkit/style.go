package toolkit

import "github.com/go-theft-auto/scoped"

// Style holds the theme: a color table indexed by scoped.Col plus the
// metric variables the style stack can override. Colors are packed
// 0xAABBGGRR like everything else in the draw path.
type Style struct {
	Colors [scoped.ColCount]uint32

	Alpha         float32 // Global opacity multiplier applied to every color
	FrameRounding float32 // Corner rounding for frames and buttons
	IndentSpacing float32 // Horizontal indent per tree level

	WindowPadding Vec2 // Padding inside windows and popups
	FramePadding  Vec2 // Padding inside framed widgets (buttons, headers)
	ItemSpacing   Vec2 // Spacing between consecutive items

	FontScale  float32 // Scale applied to all text
	CharWidth  float32 // Built-in bitmap font cell width before scaling
	CharHeight float32 // Built-in bitmap font cell height before scaling
}

// DefaultStyle returns the standard dark-gray theme.
func DefaultStyle() Style {
	s := Style{
		Alpha:         1.0,
		FrameRounding: 2.0,
		IndentSpacing: 18.0,

		WindowPadding: Vec2{X: 8, Y: 8},
		FramePadding:  Vec2{X: 6, Y: 3},
		ItemSpacing:   Vec2{X: 8, Y: 4},

		FontScale:  1.0,
		CharWidth:  8.0,
		CharHeight: 13.0,
	}

	s.Colors[scoped.ColText] = scoped.RGBA(230, 230, 230, 255)
	s.Colors[scoped.ColTextDisabled] = scoped.RGBA(128, 128, 128, 255)
	s.Colors[scoped.ColWindowBg] = scoped.RGBA(25, 25, 28, 245)
	s.Colors[scoped.ColChildBg] = scoped.RGBA(0, 0, 0, 0)
	s.Colors[scoped.ColPopupBg] = scoped.RGBA(20, 20, 22, 250)
	s.Colors[scoped.ColBorder] = scoped.RGBA(110, 110, 120, 128)
	s.Colors[scoped.ColFrameBg] = scoped.RGBA(41, 41, 48, 255)
	s.Colors[scoped.ColFrameBgHovered] = scoped.RGBA(66, 66, 75, 255)
	s.Colors[scoped.ColFrameBgActive] = scoped.RGBA(84, 84, 95, 255)
	s.Colors[scoped.ColTitleBg] = scoped.RGBA(10, 10, 12, 255)
	s.Colors[scoped.ColTitleBgActive] = scoped.RGBA(40, 70, 120, 255)
	s.Colors[scoped.ColMenuBarBg] = scoped.RGBA(36, 36, 40, 255)
	s.Colors[scoped.ColButton] = scoped.RGBA(66, 99, 150, 160)
	s.Colors[scoped.ColButtonHovered] = scoped.RGBA(66, 150, 250, 255)
	s.Colors[scoped.ColButtonActive] = scoped.RGBA(15, 135, 250, 255)
	s.Colors[scoped.ColHeader] = scoped.RGBA(66, 150, 250, 79)
	s.Colors[scoped.ColHeaderHovered] = scoped.RGBA(66, 150, 250, 204)
	s.Colors[scoped.ColHeaderActive] = scoped.RGBA(66, 150, 250, 255)
	s.Colors[scoped.ColSeparator] = scoped.RGBA(110, 110, 128, 128)
	s.Colors[scoped.ColTableHeaderBg] = scoped.RGBA(48, 48, 51, 255)
	s.Colors[scoped.ColTableBorder] = scoped.RGBA(79, 79, 89, 255)
	s.Colors[scoped.ColTableRowBgAlt] = scoped.RGBA(255, 255, 255, 15)

	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()

	s.Colors[scoped.ColText] = scoped.RGBA(20, 20, 20, 255)
	s.Colors[scoped.ColTextDisabled] = scoped.RGBA(150, 150, 150, 255)
	s.Colors[scoped.ColWindowBg] = scoped.RGBA(240, 240, 240, 250)
	s.Colors[scoped.ColChildBg] = scoped.RGBA(0, 0, 0, 0)
	s.Colors[scoped.ColPopupBg] = scoped.RGBA(250, 250, 250, 250)
	s.Colors[scoped.ColBorder] = scoped.RGBA(100, 100, 100, 150)
	s.Colors[scoped.ColFrameBg] = scoped.RGBA(255, 255, 255, 255)
	s.Colors[scoped.ColFrameBgHovered] = scoped.RGBA(200, 225, 255, 255)
	s.Colors[scoped.ColFrameBgActive] = scoped.RGBA(170, 205, 250, 255)
	s.Colors[scoped.ColTitleBg] = scoped.RGBA(215, 215, 215, 255)
	s.Colors[scoped.ColTitleBgActive] = scoped.RGBA(130, 170, 230, 255)
	s.Colors[scoped.ColMenuBarBg] = scoped.RGBA(220, 220, 220, 255)
	s.Colors[scoped.ColButton] = scoped.RGBA(190, 210, 240, 255)
	s.Colors[scoped.ColButtonHovered] = scoped.RGBA(140, 180, 240, 255)
	s.Colors[scoped.ColButtonActive] = scoped.RGBA(100, 150, 230, 255)
	s.Colors[scoped.ColHeader] = scoped.RGBA(140, 180, 240, 100)
	s.Colors[scoped.ColHeaderHovered] = scoped.RGBA(140, 180, 240, 200)
	s.Colors[scoped.ColHeaderActive] = scoped.RGBA(100, 150, 230, 255)
	s.Colors[scoped.ColSeparator] = scoped.RGBA(140, 140, 140, 160)
	s.Colors[scoped.ColTableHeaderBg] = scoped.RGBA(210, 210, 210, 255)
	s.Colors[scoped.ColTableBorder] = scoped.RGBA(160, 160, 160, 255)
	s.Colors[scoped.ColTableRowBgAlt] = scoped.RGBA(0, 0, 0, 12)

	return s
}

// varFloat returns a pointer to the float style variable, or nil when v
// does not name one.
func (s *Style) varFloat(v StyleVar) *float32 {
	switch v {
	case scoped.StyleVarAlpha:
		return &s.Alpha
	case scoped.StyleVarFrameRounding:
		return &s.FrameRounding
	case scoped.StyleVarIndentSpacing:
		return &s.IndentSpacing
	}
	return nil
}

// varVec2 returns a pointer to the Vec2 style variable, or nil when v
// does not name one.
func (s *Style) varVec2(v StyleVar) *Vec2 {
	switch v {
	case scoped.StyleVarWindowPadding:
		return &s.WindowPadding
	case scoped.StyleVarFramePadding:
		return &s.FramePadding
	case scoped.StyleVarItemSpacing:
		return &s.ItemSpacing
	}
	return nil
}
