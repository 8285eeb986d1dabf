// Package layout computes the widget geometry in logical (unscaled) pixels
// and resolves pointer positions to sandbox targets. It has no rendering
// dependencies so the hit testing can be tested headless.
package layout

import (
	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/sandbox"
)

const (
	HeaderHeight = 56
	Margin       = 28
	PanelWidth   = 220
	TrayPadding  = 4
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains returns true if (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout is the placement of the header, board, tray and side panel.
type Layout struct {
	SquareSize int
	// SlotSize is the width of one tray slot.
	SlotSize int
	Header   Rect
	Board    Rect
	Tray     Rect
	Panel    Rect
	Width    int
	Height   int
}

// New lays out a board of the given square size with room for traySlots
// pieces in a single tray row.
func New(squareSize, traySlots int) Layout {
	l := Layout{SquareSize: squareSize}
	boardPx := squareSize * board.Size

	l.SlotSize = squareSize
	if traySlots > board.Size {
		l.SlotSize = boardPx / traySlots
	}

	l.Header = Rect{X: 0, Y: 0, W: Margin*2 + boardPx, H: HeaderHeight}
	l.Board = Rect{X: Margin, Y: HeaderHeight, W: boardPx, H: boardPx}
	l.Tray = Rect{
		X: Margin,
		Y: l.Board.Y + boardPx + Margin,
		W: boardPx,
		H: l.SlotSize + TrayPadding*2,
	}
	l.Width = Margin*2 + boardPx + PanelWidth
	l.Height = l.Tray.Y + l.Tray.H + Margin
	l.Panel = Rect{X: Margin*2 + boardPx, Y: 0, W: PanelWidth, H: l.Height}
	return l
}

// CellRect returns the screen rectangle of a cell.
func (l Layout) CellRect(c board.Coord) Rect {
	return Rect{
		X: l.Board.X + c.Col*l.SquareSize,
		Y: l.Board.Y + c.Row*l.SquareSize,
		W: l.SquareSize,
		H: l.SquareSize,
	}
}

// CellAt returns the cell under (x, y).
func (l Layout) CellAt(x, y int) (board.Coord, bool) {
	if !l.Board.Contains(x, y) {
		return board.NoCoord, false
	}
	return board.Coord{
		Row: (y - l.Board.Y) / l.SquareSize,
		Col: (x - l.Board.X) / l.SquareSize,
	}, true
}

// SlotRect returns the screen rectangle of tray slot i.
func (l Layout) SlotRect(i int) Rect {
	return Rect{
		X: l.Tray.X + i*l.SlotSize,
		Y: l.Tray.Y + TrayPadding,
		W: l.SlotSize,
		H: l.SlotSize,
	}
}

// SlotAt returns the tray slot under (x, y). Any point on the tray strip
// maps to a slot index even if no piece occupies it.
func (l Layout) SlotAt(x, y int) (int, bool) {
	if !l.Tray.Contains(x, y) || l.SlotSize <= 0 {
		return -1, false
	}
	return (x - l.Tray.X) / l.SlotSize, true
}

// Target resolves a pointer position against the current state. Points on
// the board give a cell target carrying its occupant, points on the tray
// strip give the tray target carrying the piece in that slot, anything else
// is Nowhere.
func (l Layout) Target(s *board.State, x, y int) sandbox.Target {
	if c, ok := l.CellAt(x, y); ok {
		t := sandbox.Cell(c)
		if p, ok := s.PieceAt(c); ok {
			t.Piece = p.ID
		}
		return t
	}
	if i, ok := l.SlotAt(x, y); ok {
		t := sandbox.Tray
		if tray := s.Tray(); i < len(tray) {
			t.Piece = tray[i].ID
		}
		return t
	}
	return sandbox.Nowhere
}
