package toolkit

import "github.com/go-theft-auto/scoped"

// tableState persists column widths so TableSetupColumn widths survive
// frames where setup is skipped.
type tableState struct {
	Widths []float32
}

type tableFrame struct {
	id      ID
	st      *tableState
	flags   TableFlags
	columns int
	widths  []float32
	headers []string

	origin Vec2
	width  float32
	rowY   float32
	rowYs  []float32
	row    int
	col    int
	setup  int
}

const tableCellPadX = 4

// BeginTable opens a table with a fixed column count. Returns false
// for a non-positive column count; call EndTable only after true.
func (c *Context) BeginTable(id string, columns int, flags TableFlags) bool {
	if columns <= 0 {
		tkLogger.Debug("BeginTable with non-positive column count", "columns", columns)
		return false
	}

	tid := c.GetID(id)
	st := c.tables.get(tid)

	origin := c.itemPos()
	width := maxf(c.availWidth(), float32(columns)*20)

	widths := make([]float32, columns)
	if len(st.Widths) == columns {
		copy(widths, st.Widths)
	} else {
		even := width / float32(columns)
		for i := range widths {
			widths[i] = even
		}
	}

	f := &tableFrame{
		id:      tid,
		st:      st,
		flags:   flags,
		columns: columns,
		widths:  widths,
		origin:  origin,
		width:   width,
		rowY:    origin.Y,
		row:     -1,
		col:     -1,
	}
	c.tableStack = append(c.tableStack, f)
	c.pushRawID(tid)
	c.pushRegion(origin, width, false)
	return true
}

// currentTable returns the innermost open table, or nil.
func (c *Context) currentTable() *tableFrame {
	if len(c.tableStack) == 0 {
		return nil
	}
	return c.tableStack[len(c.tableStack)-1]
}

// colX returns the left edge of a column.
func (f *tableFrame) colX(col int) float32 {
	x := f.origin.X
	for i := 0; i < col && i < len(f.widths); i++ {
		x += f.widths[i]
	}
	return x
}

// TableSetupColumn declares the next column's header label and,
// optionally, a fixed width. Call once per column before
// TableHeadersRow.
func (c *Context) TableSetupColumn(label string, width float32) {
	f := c.currentTable()
	if f == nil {
		tkLogger.Debug("TableSetupColumn outside a table")
		return
	}
	if f.setup >= f.columns {
		tkLogger.Debug("TableSetupColumn beyond column count", "columns", f.columns)
		return
	}
	f.headers = append(f.headers, label)
	if width > 0 {
		f.widths[f.setup] = width
	}
	f.setup++
}

// TableHeadersRow submits a header row from the declared column
// labels.
func (c *Context) TableHeadersRow() {
	f := c.currentTable()
	if f == nil {
		tkLogger.Debug("TableHeadersRow outside a table")
		return
	}

	h := c.lineHeight() + c.style.FramePadding.Y*2
	c.dl().AddRect(f.origin.X, f.rowY, f.width, h, c.col(scoped.ColTableHeaderBg))
	for i, label := range f.headers {
		c.addText(f.colX(i)+tableCellPadX, f.rowY+c.style.FramePadding.Y,
			label, c.col(scoped.ColText))
	}
	f.rowYs = append(f.rowYs, f.rowY)
	f.rowY += h
	c.region().maxY = maxf(c.region().maxY, f.rowY)
}

// TableNextRow advances to the next row.
func (c *Context) TableNextRow() {
	f := c.currentTable()
	if f == nil {
		tkLogger.Debug("TableNextRow outside a table")
		return
	}
	c.finishTableRow(f)

	f.row++
	f.col = -1
	f.rowYs = append(f.rowYs, f.rowY)

	if f.flags&scoped.TableFlagsRowBg != 0 && f.row%2 == 1 {
		c.dl().AddRect(f.origin.X, f.rowY, f.width,
			c.lineHeight()+c.style.ItemSpacing.Y, c.col(scoped.ColTableRowBgAlt))
	}
}

// finishTableRow closes out the current row, taking the tallest cell
// as the row height.
func (c *Context) finishTableRow(f *tableFrame) {
	if f.row < 0 && f.col < 0 {
		return
	}
	r := c.region()
	bottom := maxf(f.rowY+c.lineHeight(), r.maxY)
	f.rowY = bottom + c.style.ItemSpacing.Y
}

// TableNextColumn moves the cursor to the next cell, wrapping to a new
// row past the last column. Returns true when a cell is available.
func (c *Context) TableNextColumn() bool {
	f := c.currentTable()
	if f == nil {
		tkLogger.Debug("TableNextColumn outside a table")
		return false
	}
	if f.row < 0 {
		c.TableNextRow()
	}
	f.col++
	if f.col >= f.columns {
		c.TableNextRow()
		f.col = 0
	}

	r := c.region()
	cellX := f.colX(f.col) + tableCellPadX
	r.cursor = Vec2{X: cellX, Y: f.rowYs[len(f.rowYs)-1]}
	// Wrapped lines inside a cell stay at the cell's left edge.
	r.indent = cellX - r.origin.X
	r.lineH = 0
	return true
}

// EndTable closes the table, draws its borders and records column
// widths for the next frame.
func (c *Context) EndTable() {
	n := len(c.tableStack)
	if n == 0 {
		tkLogger.Debug("EndTable without matching BeginTable")
		return
	}
	f := c.tableStack[n-1]
	c.tableStack = c.tableStack[:n-1]

	c.finishTableRow(f)
	c.popRegion()
	c.PopID()

	top := f.origin.Y
	bottom := f.rowY
	right := f.origin.X + f.width
	borderCol := c.col(scoped.ColTableBorder)
	dl := c.dl()

	if f.flags&scoped.TableFlagsBordersOuterH != 0 {
		dl.AddLine(f.origin.X, top, right, top, borderCol, 1)
		dl.AddLine(f.origin.X, bottom, right, bottom, borderCol, 1)
	}
	if f.flags&scoped.TableFlagsBordersOuterV != 0 {
		dl.AddLine(f.origin.X, top, f.origin.X, bottom, borderCol, 1)
		dl.AddLine(right, top, right, bottom, borderCol, 1)
	}
	if f.flags&scoped.TableFlagsBordersInnerV != 0 {
		for i := 1; i < f.columns; i++ {
			x := f.colX(i)
			dl.AddLine(x, top, x, bottom, borderCol, 1)
		}
	}
	// Inner horizontal borders sit between rows, so a table with fewer
	// than two rows has none.
	if f.flags&scoped.TableFlagsBordersInnerH != 0 && len(f.rowYs) > 1 {
		for _, y := range f.rowYs[1:] {
			dl.AddLine(f.origin.X, y, right, y, borderCol, 1)
		}
	}

	f.st.Widths = f.widths
	c.addItem(f.origin, Vec2{X: f.width, Y: bottom - top})
}
