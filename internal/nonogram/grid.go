package nonogram

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"strings"
)

// IndexError reports a grid access outside the declared dimensions. It is
// delivered by panic: indexing bugs are programmer errors, never silently
// clamped.
type IndexError struct {
	Row, Col      int
	Height, Width int
}

// [IndexError] implements [error]
func (e IndexError) Error() string {
	return fmt.Sprintf(
		"index (row=%d, col=%d) invalid for grid dimensions %dx%d",
		e.Row, e.Col, e.Height, e.Width,
	)
}

// A Grid is a fixed heightxwidth boolean working surface that solvers write
// candidate solutions into. Cells are stored row-major in a flat slice.
type Grid struct {
	height, width int
	cells         []bool
}

func NewGrid(height, width int) *Grid {
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]bool, height*width),
	}
}

// NewGridWithData fills a fresh grid row by row from data. Each row is
// padded with empty cells or truncated to the grid width; missing rows stay
// empty.
func NewGridWithData(height, width int, data [][]bool) *Grid {
	g := NewGrid(height, width)
	for r := 0; r < height && r < len(data); r++ {
		g.SetRow(r, data[r])
	}
	return g
}

func (g *Grid) Height() int { return g.height }
func (g *Grid) Width() int  { return g.width }

// panics [IndexError]
func (g *Grid) index(r, c int) int {
	if r < 0 || r >= g.height || c < 0 || c >= g.width {
		panic(IndexError{Row: r, Col: c, Height: g.height, Width: g.width})
	}
	return r*g.width + c
}

// Get returns the cell at row r, column c. Panics with [IndexError] when
// out of range.
func (g *Grid) Get(r, c int) bool {
	return g.cells[g.index(r, c)]
}

// Set assigns the cell at row r, column c. Panics with [IndexError] when
// out of range.
func (g *Grid) Set(r, c int, filled bool) {
	g.cells[g.index(r, c)] = filled
}

// panics [IndexError]
func (g *Grid) checkRow(r int) {
	if r < 0 || r >= g.height {
		panic(IndexError{Row: r, Height: g.height, Width: g.width})
	}
}

// panics [IndexError]
func (g *Grid) checkCol(c int) {
	if c < 0 || c >= g.width {
		panic(IndexError{Col: c, Height: g.height, Width: g.width})
	}
}

// Row returns a copy of row r. Mutating the returned slice does not affect
// the grid.
func (g *Grid) Row(r int) []bool {
	g.checkRow(r)
	row := make([]bool, g.width)
	copy(row, g.cells[r*g.width:(r+1)*g.width])
	return row
}

// Col returns a copy of column c. Mutating the returned slice does not
// affect the grid.
func (g *Grid) Col(c int) []bool {
	g.checkCol(c)
	col := make([]bool, g.height)
	for r := range col {
		col[r] = g.cells[r*g.width+c]
	}
	return col
}

// SetRow replaces row r with data, truncating if data is too long and
// padding with empty cells if it is too short.
func (g *Grid) SetRow(r int, data []bool) {
	g.checkRow(r)
	for c := 0; c < g.width; c++ {
		filled := c < len(data) && data[c]
		g.cells[r*g.width+c] = filled
	}
}

func (g *Grid) Copy() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{height: g.height, width: g.width, cells: cells}
}

// String renders the grid with one glyph per cell, filled ■ and empty □,
// one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r*g.width+c] {
				b.WriteRune('■')
			} else {
				b.WriteRune('□')
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

type gridState struct {
	Height, Width int
	Cells         []bool
}

func DecodeGrid(buf []byte) (*Grid, error) {
	var state gridState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&state)
	if err != nil {
		return nil, err
	}
	if len(state.Cells) != state.Height*state.Width {
		return nil, fmt.Errorf(
			"grid state has %d cells, want %d",
			len(state.Cells), state.Height*state.Width,
		)
	}
	return &Grid{
		height: state.Height,
		width:  state.Width,
		cells:  state.Cells,
	}, nil
}

func (g *Grid) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(gridState{
		Height: g.height,
		Width:  g.width,
		Cells:  g.cells,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
