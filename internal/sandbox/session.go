// Package sandbox binds discrete UI events to the board state. A Session owns
// everything the event handlers share (current selection, the piece being
// dragged and whether its origin is hidden) so no package-level state is needed.
package sandbox

import (
	"errors"

	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/obslog"
)

// TargetKind tells what an input event landed on.
type TargetKind int

const (
	// TargetNone is anywhere that is neither a cell nor the tray.
	TargetNone TargetKind = iota
	TargetCell
	TargetTray
)

// Target is the resolved location of a click or drop.
type Target struct {
	Kind TargetKind
	Cell board.Coord
	// Piece is the piece under the pointer, if the substrate knows it.
	Piece board.PieceID
}

// Nowhere is a target outside the board and the tray.
var Nowhere = Target{Kind: TargetNone, Cell: board.NoCoord}

// Tray is a target anywhere on the tray strip.
var Tray = Target{Kind: TargetTray, Cell: board.NoCoord}

// Cell returns a target for a board cell.
func Cell(c board.Coord) Target {
	return Target{Kind: TargetCell, Cell: c}
}

// DropResult describes the outcome of a drop.
type DropResult int

const (
	// DropIgnored means the drop landed outside every drop target.
	DropIgnored DropResult = iota
	DropPlaced
	DropReturned
	DropRejected
)

// String returns the result name.
func (r DropResult) String() string {
	switch r {
	case DropPlaced:
		return "placed"
	case DropReturned:
		return "returned"
	case DropRejected:
		return "rejected"
	default:
		return "ignored"
	}
}

// Drag is an in-progress drag gesture.
type Drag struct {
	Piece  board.PieceID
	Origin board.Location
	// snapshotTaken is set once the substrate has captured the drag image.
	snapshotTaken bool
}

// Session is the state shared by the event handlers of one widget instance.
type Session struct {
	state   *board.State
	drag    *Drag
	dropErr error
	log     *zap.Logger
}

// New creates a session over a fresh board with the roster in the tray.
func New(roster []board.Piece) *Session {
	return NewWithState(board.NewState(roster))
}

// NewWithState creates a session over an existing state.
func NewWithState(s *board.State) *Session {
	return &Session{
		state: s,
		log:   obslog.L().Named("sandbox"),
	}
}

// State returns the underlying board state.
func (s *Session) State() *board.State {
	return s.state
}

// Click handles a click. An occupied cell is selected and its destinations
// highlighted. Empty cells, highlighted cells and the tray leave the
// highlights alone. A click anywhere else deselects.
func (s *Session) Click(t Target) {
	switch t.Kind {
	case TargetCell:
		if p, ok := s.state.SelectCell(t.Cell); ok {
			s.log.Debug("[SELECT]",
				zap.Stringer("cell", t.Cell),
				zap.Stringer("piece", p),
				zap.Int("highlights", len(s.state.Highlights())))
		}
	case TargetTray:
	default:
		s.Deselect()
	}
}

// Deselect clears the highlight set.
func (s *Session) Deselect() {
	s.state.ClearHighlights()
}

// BeginDrag starts dragging a piece. The origin stays visible until
// SnapshotCaptured is called.
func (s *Session) BeginDrag(id board.PieceID) bool {
	loc, ok := s.state.Location(id)
	if !ok {
		return false
	}
	s.drag = &Drag{Piece: id, Origin: loc}
	return true
}

// SnapshotCaptured tells the session that the substrate has taken the drag
// image, so the origin representation can now be hidden.
func (s *Session) SnapshotCaptured() {
	if s.drag != nil {
		s.drag.snapshotTaken = true
	}
}

// Dragging returns true while a drag gesture is in progress.
func (s *Session) Dragging() bool {
	return s.drag != nil
}

// DraggedPiece returns the piece being dragged.
func (s *Session) DraggedPiece() (board.Piece, bool) {
	if s.drag == nil {
		return board.Piece{}, false
	}
	return s.state.Piece(s.drag.Piece)
}

// OriginHidden returns true if the piece should not be drawn at its current
// location because its drag image is being shown instead.
func (s *Session) OriginHidden(id board.PieceID) bool {
	return s.drag != nil && s.drag.Piece == id && s.drag.snapshotTaken
}

// Drop handles the release of the dragged piece over a target. Drops on a
// cell place the piece, drops on the tray return it. Rejected drops are
// silent no-ops. Drop does not end the gesture; EndDrag does.
func (s *Session) Drop(t Target) DropResult {
	s.dropErr = nil
	if s.drag == nil {
		return DropIgnored
	}
	id := s.drag.Piece

	var err error
	result := DropIgnored
	switch t.Kind {
	case TargetCell:
		err = s.state.PlacePiece(id, t.Cell)
		result = DropPlaced
	case TargetTray:
		err = s.state.ReturnToTray(id)
		result = DropReturned
	default:
		return DropIgnored
	}

	if err != nil {
		s.dropErr = err
		if errors.Is(err, board.ErrNotOnBoard) {
			// Tray piece dropped back on the tray.
			return DropIgnored
		}
		s.log.Debug("[DROP] rejected", zap.Int("piece", int(id)), zap.Error(err))
		return DropRejected
	}
	s.log.Debug("[DROP]", zap.Int("piece", int(id)), zap.Stringer("result", result))
	return result
}

// DropErr returns the reason the last Drop did not change occupancy, or nil.
func (s *Session) DropErr() error {
	return s.dropErr
}

// EndDrag finishes the gesture and makes the piece visible again. If no drop
// succeeded the piece is still at its origin.
func (s *Session) EndDrag() {
	s.drag = nil
}

// Clear returns every board piece to the tray and clears the highlights.
func (s *Session) Clear() {
	s.state.ResetBoard()
	s.log.Debug("[CLEAR]", zap.Int("tray", len(s.state.Tray())))
}
