package view

// Table is a rendered table. When Placeholder is set the body is exactly one
// row holding it, spanning every column.
type Table struct {
	Columns     []string
	Rows        []Row
	Placeholder string
	Failed      bool
}

type Row struct {
	Cells   []Cell
	Actions []Action
}

type Cell struct {
	Text string
	// Badge is the badge variant, empty for plain text cells.
	Badge string
}

type Action struct {
	Label string
	Href  string
	// Danger marks destructive actions.
	Danger bool
}

// Colspan is the number of columns a placeholder row spans.
func (t Table) Colspan() int {
	return len(t.Columns)
}

func newTable(loc Localizer, columnKeys ...string) Table {
	columns := make([]string, len(columnKeys))
	for i, key := range columnKeys {
		columns[i] = T(loc, key)
	}
	return Table{Columns: columns}
}

// fail replaces the body with a single error row.
func (t Table) fail(loc Localizer) Table {
	t.Rows = nil
	t.Placeholder = T(loc, "table.load_failed")
	t.Failed = true
	return t
}

// empty marks an empty body with the given placeholder key.
func (t Table) empty(loc Localizer, key string) Table {
	t.Rows = nil
	t.Placeholder = T(loc, key)
	return t
}

func text(values ...string) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = Cell{Text: v}
	}
	return cells
}
