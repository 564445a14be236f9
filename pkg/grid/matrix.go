package grid

import (
	"fmt"
	"strings"

	"github.com/gridcraft/gridcraft/pkg/defaults"
	"github.com/gridcraft/gridcraft/pkg/item"
)

// Matrix is a fixed-size grid of item stacks. It is not safe for concurrent use.
type Matrix struct {
	width  int
	height int
	cells  []*item.Stack
}

// New returns an empty width×height grid.
func New(width, height int) *Matrix {
	width, height = max(width, 0), max(height, 0)
	return &Matrix{
		width:  width,
		height: height,
		cells:  make([]*item.Stack, width*height),
	}
}

// FromRows builds a grid from row-major stacks. The grid is as wide as the
// longest row. Stacks are copied.
func FromRows(rows [][]*item.Stack) *Matrix {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	m := New(width, len(rows))
	for y, row := range rows {
		for x, s := range row {
			m.SetStack(x, y, s)
		}
	}
	return m
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.height }

// StackCount returns the number of occupied cells.
func (m *Matrix) StackCount() int {
	n := 0
	for _, s := range m.cells {
		if s != nil {
			n++
		}
	}
	return n
}

func (m *Matrix) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// Stack returns the stack at column x, row y. Out-of-bounds cells are empty.
func (m *Matrix) Stack(x, y int) *item.Stack {
	if !m.inBounds(x, y) {
		return nil
	}
	return m.cells[y*m.width+x]
}

// SetStack stores a copy of s at column x, row y. Out-of-bounds writes are ignored.
func (m *Matrix) SetStack(x, y int, s *item.Stack) {
	if !m.inBounds(x, y) {
		return
	}
	if s != nil {
		s = s.Ptr()
	}
	m.cells[y*m.width+x] = s
}

// Clone returns a deep copy of the grid.
func (m *Matrix) Clone() *Matrix {
	c := New(m.width, m.height)
	for i, s := range m.cells {
		if s != nil {
			c.cells[i] = s.Ptr()
		}
	}
	return c
}

// Flipped returns a copy of the grid mirrored around its vertical axis.
func (m *Matrix) Flipped() *Matrix {
	c := New(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			c.SetStack(m.width-x-1, y, m.Stack(x, y))
		}
	}
	return c
}

// Rows returns copies of the stacks as a row-major table.
func (m *Matrix) Rows() [][]*item.Stack {
	rows := make([][]*item.Stack, m.height)
	for y := range rows {
		rows[y] = make([]*item.Stack, m.width)
		for x := range rows[y] {
			if s := m.Stack(x, y); s != nil {
				rows[y][x] = s.Ptr()
			}
		}
	}
	return rows
}

// String renders one line per row, empty cells as ".".
func (m *Matrix) String() string {
	var b strings.Builder
	for y := 0; y < m.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if s := m.Stack(x, y); s != nil {
				b.WriteString(s.Describe())
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Spec is the serialized form of a grid.
type Spec struct {
	Width  int         `json:"width" yaml:"width"`
	Height int         `json:"height" yaml:"height"`
	Rows   [][]*string `json:"rows" yaml:"rows"`
}

// FromSpec builds a grid from its serialized form. Width and height default
// to the longest row and the row count, or to the crafting table size when
// there are no rows.
func FromSpec(spec Spec) (*Matrix, error) {
	width, height := spec.Width, spec.Height
	if height == 0 {
		height = len(spec.Rows)
		if height == 0 {
			height = defaults.GridHeight
		}
	}
	if width == 0 {
		for _, row := range spec.Rows {
			width = max(width, len(row))
		}
		if width == 0 {
			width = defaults.GridWidth
		}
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	if len(spec.Rows) > height {
		return nil, fmt.Errorf("grid has %d rows, height is %d", len(spec.Rows), height)
	}

	m := New(width, height)
	for y, row := range spec.Rows {
		if len(row) > width {
			return nil, fmt.Errorf("row %d has %d cells, width is %d", y, len(row), width)
		}
		for x, cell := range row {
			if cell == nil || strings.TrimSpace(*cell) == "" {
				continue
			}
			s, err := item.ParseStack(*cell)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			m.SetStack(x, y, &s)
		}
	}
	return m, nil
}

// Spec returns the serialized form of the grid.
func (m *Matrix) Spec() Spec {
	spec := Spec{Width: m.width, Height: m.height, Rows: make([][]*string, m.height)}
	for y := range spec.Rows {
		spec.Rows[y] = make([]*string, m.width)
		for x := range spec.Rows[y] {
			if s := m.Stack(x, y); s != nil {
				d := s.Describe()
				spec.Rows[y][x] = &d
			}
		}
	}
	return spec
}
