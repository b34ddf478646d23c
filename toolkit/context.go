package toolkit

import "github.com/go-theft-auto/scoped"

// Context is the per-frame drawing context. It implements the full
// begin/end and push/pop surface the scoped package wraps, plus the leaf
// widgets that go inside those scopes. A Context is created once by its
// GUI and reused; it is not safe for concurrent use.
type Context struct {
	gui *GUI

	// DrawList receives window content. OverlayDrawList receives popups,
	// menus, tooltips and drag previews, and is rendered after DrawList
	// so overlays always appear on top.
	DrawList        *DrawList
	OverlayDrawList *DrawList

	input       *InputState
	displaySize Vec2
	deltaTime   float32

	// style starts each frame as a copy of the GUI's base style;
	// PushStyleColor and PushStyleVar mutate the copy.
	style   Style
	fontTex uint32

	bank    stateBank
	windows *store[windowState]
	trees   *store[treeState]
	tabBars *store[tabBarState]
	tables  *store[tableState]
	popups  *store[popupState]
	menus   *store[menuState]
	combos  *store[comboState]
	holds   *store[holdState]

	idStack []ID
	targets []*DrawList
	regions []region

	// lastItem is the rectangle of the most recently submitted item;
	// hover queries, context popups and drag sources key off it.
	lastItem   Rect
	lastItemID ID

	// Push/pop stacks, restored or reset at frame end.
	colorMods  []colorMod
	varMods    []varMod
	fontNames  []string
	repeats    []bool
	itemWidths []float32
	wrapStack  []float32
	texStack   []TextureID
	clipMirror [][4]float32

	// Open construct bookkeeping for the current frame.
	windowStack []*windowFrame
	childStack  []childFrame
	listStack   []listBoxFrame
	popupStack  []*popupFrame
	menuStack   []*menuFrame
	menuBars    []menuBarFrame
	comboStack  []*comboFrame
	tableStack  []*tableFrame
	tabStack    []*tabBarFrame
	groupStack  []groupFrame
	overlays    []overlayFrame

	// closers point at the Open flags of the popups, menus and combos
	// currently being built, innermost last. Activating a MenuItem or
	// Selectable closes them.
	closers []*bool

	// Window rectangles submitted this frame and last frame. The
	// previous frame's set drives context-void detection.
	windowRects     []Rect
	prevWindowRects []Rect
	windowCount     int

	drag            dragDropState
	dragPreviewOpen bool

	frameOpen bool
}

var _ scoped.Toolkit = (*Context)(nil)

func newContext(g *GUI) *Context {
	c := &Context{gui: g}
	c.windows = newStore[windowState](&c.bank, retainForever)
	c.trees = newStore[treeState](&c.bank, retainForever)
	c.tabBars = newStore[tabBarState](&c.bank, g.retention)
	c.tables = newStore[tableState](&c.bank, g.retention)
	c.popups = newStore[popupState](&c.bank, g.retention)
	c.menus = newStore[menuState](&c.bank, g.retention)
	c.combos = newStore[comboState](&c.bank, g.retention)
	c.holds = newStore[holdState](&c.bank, g.retention)
	return c
}

// beginFrame resets per-frame state and opens the root region.
func (c *Context) beginFrame(input *InputState, displaySize Vec2, deltaTime float32) {
	c.bank.nextFrame()

	c.DrawList = AcquireDrawList()
	c.OverlayDrawList = AcquireDrawList()
	c.targets = append(c.targets[:0], c.DrawList)

	c.input = input
	c.displaySize = displaySize
	c.deltaTime = deltaTime
	c.style = c.gui.style
	c.fontTex = c.gui.fontTex

	c.idStack = c.idStack[:0]
	c.regions = c.regions[:0]
	c.pushRegion(c.style.WindowPadding, displaySize.X-c.style.WindowPadding.X*2, false)

	c.lastItem = Rect{}
	c.lastItemID = 0

	c.prevWindowRects, c.windowRects = c.windowRects, c.prevWindowRects[:0]
	c.windowCount = 0

	// A drag whose button is no longer held and was not released this
	// frame was dropped outside any target.
	if c.drag.active && input != nil &&
		!input.MouseDown(MouseButtonLeft) && !input.MouseReleased(MouseButtonLeft) {
		c.drag = dragDropState{}
	}

	c.frameOpen = true
}

// endFrame validates stack balance, logs leaks and resets everything
// so a misused frame cannot poison the next one.
func (c *Context) endFrame() {
	c.checkLeak("window", len(c.windowStack))
	c.checkLeak("child", len(c.childStack))
	c.checkLeak("list box", len(c.listStack))
	c.checkLeak("popup", len(c.popupStack))
	c.checkLeak("menu", len(c.menuStack))
	c.checkLeak("menu bar", len(c.menuBars))
	c.checkLeak("combo", len(c.comboStack))
	c.checkLeak("table", len(c.tableStack))
	c.checkLeak("tab bar", len(c.tabStack))
	c.checkLeak("group", len(c.groupStack))
	c.checkLeak("tooltip/overlay", len(c.overlays))
	c.checkLeak("ID scope", len(c.idStack))
	c.checkLeak("style color", len(c.colorMods))
	c.checkLeak("style var", len(c.varMods))
	c.checkLeak("font", len(c.fontNames))
	c.checkLeak("button repeat", len(c.repeats))
	c.checkLeak("item width", len(c.itemWidths))
	c.checkLeak("text wrap pos", len(c.wrapStack))
	c.checkLeak("texture", len(c.texStack))
	c.checkLeak("clip rect", len(c.clipMirror))

	for _, f := range c.overlays {
		ReleaseDrawList(f.scratch)
	}

	c.windowStack = c.windowStack[:0]
	c.childStack = c.childStack[:0]
	c.listStack = c.listStack[:0]
	c.popupStack = c.popupStack[:0]
	c.menuStack = c.menuStack[:0]
	c.menuBars = c.menuBars[:0]
	c.comboStack = c.comboStack[:0]
	c.tableStack = c.tableStack[:0]
	c.tabStack = c.tabStack[:0]
	c.groupStack = c.groupStack[:0]
	c.overlays = c.overlays[:0]
	c.closers = c.closers[:0]
	c.colorMods = c.colorMods[:0]
	c.varMods = c.varMods[:0]
	c.fontNames = c.fontNames[:0]
	c.repeats = c.repeats[:0]
	c.itemWidths = c.itemWidths[:0]
	c.wrapStack = c.wrapStack[:0]
	c.texStack = c.texStack[:0]
	c.clipMirror = c.clipMirror[:0]
	c.dragPreviewOpen = false

	c.frameOpen = false
}

func (c *Context) checkLeak(what string, depth int) {
	if depth != 0 {
		tkLogger.Debug("unbalanced stack at frame end", "stack", what, "depth", depth)
	}
}

// DisplaySize returns the display size passed to Begin.
func (c *Context) DisplaySize() Vec2 {
	return c.displaySize
}

// DeltaTime returns the frame delta passed to Begin.
func (c *Context) DeltaTime() float32 {
	return c.deltaTime
}

// Input returns the frame's input state, which may be nil.
func (c *Context) Input() *InputState {
	return c.input
}

// Style returns the style as currently modified by the style stacks.
func (c *Context) Style() *Style {
	return &c.style
}

// dl returns the active draw target.
func (c *Context) dl() *DrawList {
	return c.targets[len(c.targets)-1]
}

func (c *Context) pushTarget(dl *DrawList) {
	c.targets = append(c.targets, dl)
}

func (c *Context) popTarget() {
	if len(c.targets) <= 1 {
		tkLogger.Debug("popTarget on root target")
		return
	}
	c.targets = c.targets[:len(c.targets)-1]
}

// col resolves a themable color with the global alpha applied.
func (c *Context) col(id Col) uint32 {
	v := c.style.Colors[id]
	if c.style.Alpha >= 1 {
		return v
	}
	a := float32(v>>24) * clampf(c.style.Alpha, 0, 1)
	return v&0x00FFFFFF | uint32(a)<<24
}

// region is one level of the layout stack: a cursor advancing through a
// rectangular content area. horizontal regions (menu bars) lay items
// left to right instead of stacking them.
type region struct {
	origin     Vec2
	cursor     Vec2
	width      float32
	indent     float32
	lineH      float32
	maxX, maxY float32
	horizontal bool
}

func (c *Context) pushRegion(origin Vec2, width float32, horizontal bool) {
	c.regions = append(c.regions, region{
		origin:     origin,
		cursor:     origin,
		width:      width,
		maxX:       origin.X,
		maxY:       origin.Y,
		horizontal: horizontal,
	})
}

func (c *Context) popRegion() region {
	n := len(c.regions)
	if n <= 1 {
		tkLogger.Debug("popRegion on root region")
		return *c.region()
	}
	r := c.regions[n-1]
	c.regions = c.regions[:n-1]
	return r
}

func (c *Context) region() *region {
	return &c.regions[len(c.regions)-1]
}

// extent returns the content size of a closed region.
func (r *region) extent() Vec2 {
	return Vec2{X: r.maxX - r.origin.X, Y: r.maxY - r.origin.Y}
}

// availWidth returns the width remaining on the current line.
func (c *Context) availWidth() float32 {
	r := c.region()
	return r.origin.X + r.width - r.cursor.X
}

// itemPos returns the position where the next item should be drawn.
func (c *Context) itemPos() Vec2 {
	return c.region().cursor
}

// addItem registers a submitted item: records it as the last item,
// grows the region extent and advances the cursor.
func (c *Context) addItem(pos, size Vec2) {
	r := c.region()
	c.lastItem = Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	c.lastItemID = 0

	if size.Y > r.lineH {
		r.lineH = size.Y
	}
	if pos.X+size.X > r.maxX {
		r.maxX = pos.X + size.X
	}
	if pos.Y+r.lineH > r.maxY {
		r.maxY = pos.Y + r.lineH
	}

	if r.horizontal {
		r.cursor.X = pos.X + size.X + c.style.ItemSpacing.X
	} else {
		r.cursor.X = r.origin.X + r.indent
		r.cursor.Y = pos.Y + r.lineH + c.style.ItemSpacing.Y
		r.lineH = 0
	}
}

// mouse returns the frame's mouse position, or an offscreen point when
// no input was supplied.
func (c *Context) mouse() Vec2 {
	if c.input == nil {
		return Vec2{X: -1e9, Y: -1e9}
	}
	return c.input.MousePos()
}

func (c *Context) hoveredRect(r Rect) bool {
	return c.input != nil && r.Contains(c.mouse())
}

func (c *Context) clickedRect(r Rect, button MouseButton) bool {
	return c.input != nil && c.input.MouseClicked(button) && r.Contains(c.mouse())
}

// overlayFrame is an overlay window (popup, menu dropdown, tooltip)
// being built into a scratch list. The background is inserted once the
// content extent is known, then the whole thing is appended to the
// overlay list.
type overlayFrame struct {
	scratch *DrawList
	pos     Vec2
	minW    float32
	bg      uint32
}

const overlayDefaultWidth = 180

// beginOverlay opens an overlay region at pos. minW of zero sizes the
// overlay to its content.
func (c *Context) beginOverlay(pos Vec2, bg uint32, minW float32) {
	scratch := AcquireDrawList()
	c.pushTarget(scratch)

	pad := c.style.WindowPadding
	w := minW - pad.X*2
	if w <= 0 {
		w = overlayDefaultWidth
	}
	c.pushRegion(Vec2{X: pos.X + pad.X, Y: pos.Y + pad.Y}, w, false)
	c.overlays = append(c.overlays, overlayFrame{scratch: scratch, pos: pos, minW: minW, bg: bg})
}

// endOverlay closes the innermost overlay and returns its final
// rectangle including padding.
func (c *Context) endOverlay() Rect {
	n := len(c.overlays)
	if n == 0 {
		tkLogger.Debug("endOverlay without matching beginOverlay")
		return Rect{}
	}
	f := c.overlays[n-1]
	c.overlays = c.overlays[:n-1]

	r := c.popRegion()
	pad := c.style.WindowPadding
	content := r.extent()
	w := content.X
	if f.minW > 0 && w < f.minW-pad.X*2 {
		w = f.minW - pad.X*2
	}

	rect := Rect{X: f.pos.X, Y: f.pos.Y, W: w + pad.X*2, H: content.Y + pad.Y*2}
	f.scratch.InsertRect(rect.X, rect.Y, rect.W, rect.H, f.bg)
	f.scratch.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, c.col(scoped.ColBorder), 1)

	c.popTarget()
	c.OverlayDrawList.AppendList(f.scratch)
	ReleaseDrawList(f.scratch)
	return rect
}

// pushCloser registers the Open flag of a popup-like construct being
// built; closeOverlayPopups flips them all.
func (c *Context) pushCloser(open *bool) {
	c.closers = append(c.closers, open)
}

func (c *Context) popCloser() {
	if len(c.closers) > 0 {
		c.closers = c.closers[:len(c.closers)-1]
	}
}

// closeOverlayPopups closes every popup, menu and combo currently being
// built. Activating a MenuItem or Selectable triggers this.
func (c *Context) closeOverlayPopups() {
	for _, open := range c.closers {
		*open = false
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
