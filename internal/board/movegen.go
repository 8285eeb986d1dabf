package board

// Offset tables for the step pieces.
var (
	knightOffsets = [8][2]int{
		{-2, -1}, {-2, 1}, {2, -1}, {2, 1},
		{-1, -2}, {-1, 2}, {1, -2}, {1, 2},
	}
	kingOffsets = [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	diagonals = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// PawnStartRow is the row from which a pawn may advance two cells.
// It is an absolute row, independent of the pawn's color.
const PawnStartRow = 6

// GenerateMoves returns the candidate destinations for a piece of the given
// kind standing at (row, col). The result ignores occupancy entirely: sliding
// pieces are never blocked and nothing is ever captured. Candidates outside the
// board are dropped. The order of the result carries no meaning.
//
// An unrecognized kind yields no candidates.
func GenerateMoves(kind Kind, row, col int) []Coord {
	from := Coord{Row: row, Col: col}
	var moves []Coord

	switch kind {
	case Rook:
		moves = appendLines(moves, from)
	case Knight:
		moves = appendSteps(moves, from, knightOffsets[:])
	case Bishop:
		moves = appendDiagonals(moves, from)
	case Queen:
		moves = appendLines(moves, from)
		moves = appendDiagonals(moves, from)
	case King:
		moves = appendSteps(moves, from, kingOffsets[:])
	case Pawn:
		moves = appendIfValid(moves, from.Add(-1, 0))
		if row == PawnStartRow {
			moves = appendIfValid(moves, from.Add(-2, 0))
		}
	}

	return moves
}

// appendLines adds every other cell sharing the row and every other cell
// sharing the column.
func appendLines(moves []Coord, from Coord) []Coord {
	for i := 0; i < Size; i++ {
		if i != from.Col {
			moves = appendIfValid(moves, Coord{Row: from.Row, Col: i})
		}
		if i != from.Row {
			moves = appendIfValid(moves, Coord{Row: i, Col: from.Col})
		}
	}
	return moves
}

// appendDiagonals adds the four diagonal rays out to distance 7. Rays are
// generated in full and then clipped, they do not stop at the board edge.
func appendDiagonals(moves []Coord, from Coord) []Coord {
	for dist := 1; dist < Size; dist++ {
		for _, d := range diagonals {
			moves = appendIfValid(moves, from.Add(d[0]*dist, d[1]*dist))
		}
	}
	return moves
}

func appendSteps(moves []Coord, from Coord, offsets [][2]int) []Coord {
	for _, o := range offsets {
		moves = appendIfValid(moves, from.Add(o[0], o[1]))
	}
	return moves
}

func appendIfValid(moves []Coord, c Coord) []Coord {
	if !c.Valid() {
		return moves
	}
	return append(moves, c)
}
