// Package board implements the chessboard sandbox core: piece kinds, the
// simplified move generator and the board/tray/highlight state it feeds.
package board

import (
	"fmt"
	"sort"
)

// Size is the number of rows and columns on the board.
const Size = 8

// Coord addresses a cell by row and column.
// Row 0 is the top row of the rendered board (rank 8), column 0 is file a.
type Coord struct {
	Row int
	Col int
}

// NoCoord is returned where a coordinate is absent.
var NoCoord = Coord{Row: -1, Col: -1}

// Valid returns true if both components are in [0,8).
func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Add returns the coordinate offset by dr rows and dc columns.
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String returns the algebraic notation for the cell (e.g., "e2").
func (c Coord) String() string {
	if !c.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+c.Col, '8'-c.Row)
}

// ParseCoord parses algebraic notation (e.g., "e4") into a Coord.
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return NoCoord, fmt.Errorf("invalid square: %s", s)
	}

	col := int(s[0] - 'a')
	row := int('8' - s[1])

	c := Coord{Row: row, Col: col}
	if !c.Valid() {
		return NoCoord, fmt.Errorf("invalid square: %s", s)
	}
	return c, nil
}

// less orders coordinates row-major.
func (c Coord) less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// SortCoords sorts cs in place, row-major.
func SortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].less(cs[j]) })
}
