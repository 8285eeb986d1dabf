package board

import (
	"errors"
	"sort"
)

// Errors returned by State operations. All of them leave the state unchanged.
var (
	ErrCellOccupied = errors.New("cell is occupied")
	ErrOffBoard     = errors.New("coordinate is off the board")
	ErrNotOnBoard   = errors.New("piece is not on the board")
	ErrUnknownPiece = errors.New("unknown piece")
)

// Location is where a piece currently lives: the tray or one board cell.
type Location struct {
	InTray bool
	Cell   Coord
}

// OnBoard returns true if the location is a board cell.
func (l Location) OnBoard() bool {
	return !l.InTray
}

// State is the 8x8 occupancy grid, the tray of unplaced pieces and the
// transient highlight set.
//
// Every piece is owned by exactly one location at any time. A cell holds at
// most one piece. State is not safe for concurrent use; it is meant to be
// driven by a single event loop.
type State struct {
	cells      [Size][Size]PieceID
	tray       []PieceID
	pieces     map[PieceID]Piece
	locations  map[PieceID]Location
	highlights map[Coord]struct{}
}

// NewState creates an empty board with the given pieces in the tray, in order.
// Pieces are assigned IDs 1..n in roster order.
func NewState(roster []Piece) *State {
	s := &State{
		pieces:     make(map[PieceID]Piece, len(roster)),
		locations:  make(map[PieceID]Location, len(roster)),
		highlights: make(map[Coord]struct{}),
	}
	for i, p := range roster {
		p.ID = PieceID(i + 1)
		s.pieces[p.ID] = p
		s.locations[p.ID] = Location{InTray: true, Cell: NoCoord}
		s.tray = append(s.tray, p.ID)
	}
	return s
}

// Piece returns the piece with the given ID.
func (s *State) Piece(id PieceID) (Piece, bool) {
	p, ok := s.pieces[id]
	return p, ok
}

// Pieces returns every piece known to the state, ordered by ID.
func (s *State) Pieces() []Piece {
	out := make([]Piece, 0, len(s.pieces))
	for _, p := range s.pieces {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Location returns where the piece currently is.
func (s *State) Location(id PieceID) (Location, bool) {
	l, ok := s.locations[id]
	return l, ok
}

// PieceAt returns the piece occupying the cell, if any.
func (s *State) PieceAt(c Coord) (Piece, bool) {
	if !c.Valid() {
		return Piece{}, false
	}
	id := s.cells[c.Row][c.Col]
	if id == NoPiece {
		return Piece{}, false
	}
	return s.pieces[id], true
}

// Occupied returns true if the cell holds a piece.
func (s *State) Occupied(c Coord) bool {
	return c.Valid() && s.cells[c.Row][c.Col] != NoPiece
}

// Tray returns the pieces in the tray, in display order.
func (s *State) Tray() []Piece {
	out := make([]Piece, len(s.tray))
	for i, id := range s.tray {
		out[i] = s.pieces[id]
	}
	return out
}

// Destinations returns the generator's candidates for kind at from, keeping
// only cells that are currently unoccupied.
func (s *State) Destinations(kind Kind, from Coord) []Coord {
	candidates := GenerateMoves(kind, from.Row, from.Col)
	out := candidates[:0]
	for _, c := range candidates {
		if !s.Occupied(c) {
			out = append(out, c)
		}
	}
	return out
}

// PlacePiece moves the piece to the target cell, vacating its previous
// location (the tray or another cell) in the same step. On success the
// highlight set is cleared.
func (s *State) PlacePiece(id PieceID, target Coord) error {
	loc, ok := s.locations[id]
	if !ok {
		return ErrUnknownPiece
	}
	if !target.Valid() {
		return ErrOffBoard
	}
	if s.Occupied(target) {
		return ErrCellOccupied
	}

	if loc.InTray {
		s.removeFromTray(id)
	} else {
		s.cells[loc.Cell.Row][loc.Cell.Col] = NoPiece
	}
	s.cells[target.Row][target.Col] = id
	s.locations[id] = Location{Cell: target}

	s.ClearHighlights()
	return nil
}

// ReturnToTray moves a piece from the board to the end of the tray. On success
// the highlight set is cleared.
func (s *State) ReturnToTray(id PieceID) error {
	loc, ok := s.locations[id]
	if !ok {
		return ErrUnknownPiece
	}
	if loc.InTray {
		return ErrNotOnBoard
	}

	s.cells[loc.Cell.Row][loc.Cell.Col] = NoPiece
	s.tray = append(s.tray, id)
	s.locations[id] = Location{InTray: true, Cell: NoCoord}

	s.ClearHighlights()
	return nil
}

// SelectCell recomputes the highlight set for the piece on the cell and
// returns that piece. Selecting an empty or off-board cell is a no-op: the
// existing highlights are kept and ok is false.
func (s *State) SelectCell(c Coord) (Piece, bool) {
	p, ok := s.PieceAt(c)
	if !ok {
		return Piece{}, false
	}

	s.highlights = make(map[Coord]struct{})
	for _, dst := range s.Destinations(p.Kind, c) {
		s.highlights[dst] = struct{}{}
	}
	return p, true
}

// ClearHighlights empties the highlight set.
func (s *State) ClearHighlights() {
	if len(s.highlights) == 0 {
		return
	}
	s.highlights = make(map[Coord]struct{})
}

// IsHighlighted returns true if the cell is in the highlight set.
func (s *State) IsHighlighted(c Coord) bool {
	_, ok := s.highlights[c]
	return ok
}

// Highlights returns the highlight set in row-major order.
func (s *State) Highlights() []Coord {
	out := make([]Coord, 0, len(s.highlights))
	for c := range s.highlights {
		out = append(out, c)
	}
	SortCoords(out)
	return out
}

// ResetBoard returns every board piece to the tray, scanning rows top to
// bottom, then clears the highlight set.
func (s *State) ResetBoard() {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			id := s.cells[row][col]
			if id == NoPiece {
				continue
			}
			s.cells[row][col] = NoPiece
			s.tray = append(s.tray, id)
			s.locations[id] = Location{InTray: true, Cell: NoCoord}
		}
	}
	s.ClearHighlights()
}

// OnBoard returns the number of pieces currently on the board.
func (s *State) OnBoard() int {
	return len(s.pieces) - len(s.tray)
}

func (s *State) removeFromTray(id PieceID) {
	for i, t := range s.tray {
		if t == id {
			s.tray = append(s.tray[:i], s.tray[i+1:]...)
			return
		}
	}
}
