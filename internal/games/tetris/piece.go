package tetris

import "github.com/vovakirdan/twin-arcade/internal/core"

// Matrix is a 4x4 piece footprint indexed [row][col].
type Matrix [4][4]bool

// Rotate returns the matrix turned a quarter clockwise for dir > 0 and
// counter-clockwise otherwise.
func (m Matrix) Rotate(dir int) Matrix {
	const n = len(m)
	var r Matrix
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if dir > 0 {
				r[y][x] = m[n-1-x][y]
			} else {
				r[y][x] = m[x][n-1-y]
			}
		}
	}
	return r
}

// PieceKind identifies one of the seven tetrominoes.
type PieceKind int

const (
	PieceI PieceKind = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

func (k PieceKind) String() string {
	if k >= 0 && int(k) < len(Pieces) {
		return Pieces[k].Name
	}
	return "?"
}

// Color returns the locked-cell color for the kind.
func (k PieceKind) Color() core.Color {
	if k >= 0 && int(k) < len(Pieces) {
		return Pieces[k].Color
	}
	return core.ColorDefault
}

// PieceType is a catalog entry.
type PieceType struct {
	Kind   PieceKind
	Name   string
	Color  core.Color
	Matrix Matrix
}

// shape builds a matrix from "#"-marked rows.
func shape(rows ...string) Matrix {
	var out Matrix
	for y, row := range rows {
		for x, c := range row {
			out[y][x] = c == '#'
		}
	}
	return out
}

// Pieces is the catalog in bag order.
var Pieces = [...]PieceType{
	{PieceI, "I", core.ColorCyan, shape("....", "####")},
	{PieceO, "O", core.ColorYellow, shape(".##.", ".##.")},
	{PieceT, "T", core.ColorBrightRed, shape(".#..", "###.")},
	{PieceS, "S", core.ColorBrightCyan, shape(".##.", "##..")},
	{PieceZ, "Z", core.ColorRed, shape("##..", ".##.")},
	{PieceJ, "J", core.ColorPurple, shape("#...", "###.")},
	{PieceL, "L", core.ColorOrange, shape("..#.", "###.")},
}

// ActivePiece is the falling piece. X and Y locate the matrix's top-left
// corner on the board; Y may be negative while the piece enters.
type ActivePiece struct {
	Kind   PieceKind
	Matrix Matrix
	X, Y   int
}

func newActivePiece(kind PieceKind, cols int) ActivePiece {
	return ActivePiece{
		Kind:   kind,
		Matrix: Pieces[kind].Matrix,
		X:      cols/2 - 2,
		Y:      -1,
	}
}

// Color returns the piece's color.
func (p ActivePiece) Color() core.Color {
	return p.Kind.Color()
}
