package model

// TableRow is a row of table cells.
type TableRow struct {
	Height float64
	Format BlockFormat
	cells  []*TableCell
}

func (r *TableRow) Cells() []*TableCell {
	return r.cells
}

// Table is a two dimensional matrix of cells. Merged regions are represented
// by placeholder cells with SpanLeft/SpanAbove flags, so every row has one
// cell per column.
type Table struct {
	Cache
	rows []*TableRow

	// Widths are column widths in pixels.
	Widths  []float64
	Format  TableFormat
	Dataset DatasetFormat
}

func (*Table) BlockType() BlockType { return BlockTypeTable }

func (t *Table) Rows() []*TableRow {
	return t.rows
}

// AddRow appends an empty row.
func (t *Table) AddRow(format BlockFormat) *TableRow {
	row := &TableRow{Format: format}
	t.rows = append(t.rows, row)
	t.Touch()
	return row
}

// Cell returns cell at given coordinates or nil.
func (t *Table) Cell(row, col int) *TableCell {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.rows[row].cells) {
		return nil
	}
	return t.rows[row].cells[col]
}

// SetCell places cell at given coordinates, growing table as necessary.
func (t *Table) SetCell(row, col int, cell *TableCell) {
	for len(t.rows) <= row {
		t.rows = append(t.rows, &TableRow{})
	}
	r := t.rows[row]
	for len(r.cells) <= col {
		r.cells = append(r.cells, nil)
	}
	r.cells[col] = cell
	t.Touch()
}

// SetRowHeight sets height of a row.
func (t *Table) SetRowHeight(row int, height float64) {
	if row < 0 || row >= len(t.rows) {
		return
	}
	t.rows[row].Height = height
	t.Touch()
}

// ColumnCount returns number of columns in the widest row.
func (t *Table) ColumnCount() int {
	n := 0
	for _, r := range t.rows {
		n = max(n, len(r.cells))
	}
	return n
}
