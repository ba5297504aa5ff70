package tetris

import "github.com/vovakirdan/twin-arcade/internal/core"

// Board is the grid of locked cells. core.ColorDefault marks an empty cell.
type Board struct {
	Rows, Cols int
	Cells      [][]core.Color
}

// NewBoard creates an empty board.
func NewBoard(cols, rows int) *Board {
	b := &Board{Rows: rows, Cols: cols, Cells: make([][]core.Color, rows)}
	for y := range b.Cells {
		b.Cells[y] = make([]core.Color, cols)
	}
	return b
}

// Filled reports whether (x, y) holds a locked cell. Out-of-range cells are
// reported empty.
func (b *Board) Filled(x, y int) bool {
	if y < 0 || y >= b.Rows || x < 0 || x >= b.Cols {
		return false
	}
	return b.Cells[y][x] != core.ColorDefault
}

// Collide reports whether matrix placed at (px, py) leaves the side walls,
// passes the floor or overlaps a locked cell. Rows above the board only
// check the walls.
func (b *Board) Collide(mat Matrix, px, py int) bool {
	for y := range mat {
		for x := range mat[y] {
			if !mat[y][x] {
				continue
			}
			bx, by := px+x, py+y
			if bx < 0 || bx >= b.Cols || by >= b.Rows {
				return true
			}
			if by >= 0 && b.Cells[by][bx] != core.ColorDefault {
				return true
			}
		}
	}
	return false
}

// Merge writes the piece into the grid. It returns true if any of its cells
// were still above the top row; those cells are dropped.
func (b *Board) Merge(p ActivePiece) (overflow bool) {
	color := p.Color()
	for y := range p.Matrix {
		for x := range p.Matrix[y] {
			if !p.Matrix[y][x] {
				continue
			}
			by := p.Y + y
			if by < 0 {
				overflow = true
				continue
			}
			b.Cells[by][p.X+x] = color
		}
	}
	return overflow
}

// Sweep removes every full row, shifting the rows above down, and returns
// the number removed. The same index is checked again after each removal.
func (b *Board) Sweep() int {
	cleared := 0
	for y := b.Rows - 1; y >= 0; y-- {
		if !b.rowFull(y) {
			continue
		}
		copy(b.Cells[1:y+1], b.Cells[:y])
		b.Cells[0] = make([]core.Color, b.Cols)
		cleared++
		y++
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.Cells[y] {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (b *Board) Clone() [][]core.Color {
	out := make([][]core.Color, len(b.Cells))
	for y, row := range b.Cells {
		out[y] = append([]core.Color(nil), row...)
	}
	return out
}
