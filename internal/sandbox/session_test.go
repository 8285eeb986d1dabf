package sandbox

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hailam/chessboard/internal/board"
)

func newSession() *Session {
	return New(board.DefaultRoster())
}

func dragTo(s *Session, id board.PieceID, t Target) DropResult {
	s.BeginDrag(id)
	s.SnapshotCaptured()
	r := s.Drop(t)
	s.EndDrag()
	return r
}

func TestDragFromTrayToCell(t *testing.T) {
	s := newSession()
	e4 := board.Coord{Row: 4, Col: 4}

	if got := dragTo(s, 2, Cell(e4)); got != DropPlaced {
		t.Fatalf("drop = %s, want placed", got)
	}
	if p, ok := s.State().PieceAt(e4); !ok || p.ID != 2 {
		t.Errorf("PieceAt(e4) = %v, %v", p, ok)
	}
	if s.Dragging() {
		t.Error("drag should be over")
	}
}

func TestDropOnOccupiedCellIsSilentNoop(t *testing.T) {
	s := newSession()
	c := board.Coord{Row: 2, Col: 2}
	dragTo(s, 1, Cell(c))

	if got := dragTo(s, 2, Cell(c)); got != DropRejected {
		t.Fatalf("drop = %s, want rejected", got)
	}
	if !errors.Is(s.DropErr(), board.ErrCellOccupied) {
		t.Errorf("DropErr = %v, want ErrCellOccupied", s.DropErr())
	}
	if p, _ := s.State().PieceAt(c); p.ID != 1 {
		t.Errorf("occupant = %v, want piece 1", p)
	}
	if loc, _ := s.State().Location(2); !loc.InTray {
		t.Errorf("piece 2 should still be in the tray, at %+v", loc)
	}
}

func TestDropOutsideRevertsToOrigin(t *testing.T) {
	s := newSession()
	origin := board.Coord{Row: 7, Col: 7}
	dragTo(s, 8, Cell(origin))

	s.BeginDrag(8)
	s.SnapshotCaptured()
	if !s.OriginHidden(8) {
		t.Fatal("origin should be hidden mid-drag")
	}
	if got := s.Drop(Nowhere); got != DropIgnored {
		t.Errorf("drop = %s, want ignored", got)
	}
	s.EndDrag()

	if s.OriginHidden(8) {
		t.Error("origin should be visible again after the drag ends")
	}
	if p, ok := s.State().PieceAt(origin); !ok || p.ID != 8 {
		t.Errorf("piece moved: PieceAt(origin) = %v, %v", p, ok)
	}
}

func TestCancelledDragLeavesOccupancy(t *testing.T) {
	s := newSession()
	trayBefore := s.State().Tray()

	s.BeginDrag(3)
	s.EndDrag()

	if diff := cmp.Diff(trayBefore, s.State().Tray()); diff != "" {
		t.Errorf("tray changed (-want +got):\n%s", diff)
	}
}

func TestOriginHiddenOnlyAfterSnapshot(t *testing.T) {
	s := newSession()

	if !s.BeginDrag(4) {
		t.Fatal("BeginDrag failed")
	}
	if s.OriginHidden(4) {
		t.Error("origin hidden before the drag image was captured")
	}
	s.SnapshotCaptured()
	if !s.OriginHidden(4) {
		t.Error("origin should be hidden after snapshot")
	}
	if s.OriginHidden(5) {
		t.Error("other pieces must stay visible")
	}
	if p, ok := s.DraggedPiece(); !ok || p.ID != 4 {
		t.Errorf("DraggedPiece = %v, %v", p, ok)
	}
	s.EndDrag()
	if s.OriginHidden(4) {
		t.Error("origin still hidden after EndDrag")
	}
}

func TestBeginDragUnknownPiece(t *testing.T) {
	s := newSession()
	if s.BeginDrag(77) {
		t.Error("BeginDrag should fail for an unknown piece")
	}
	if got := s.Drop(Tray); got != DropIgnored {
		t.Errorf("drop without drag = %s", got)
	}
}

func TestDropOnTray(t *testing.T) {
	s := newSession()
	c := board.Coord{Row: 0, Col: 3}
	dragTo(s, 4, Cell(c))

	t.Run("board piece returns", func(t *testing.T) {
		if got := dragTo(s, 4, Tray); got != DropReturned {
			t.Fatalf("drop = %s, want returned", got)
		}
		if s.State().Occupied(c) {
			t.Error("cell should be empty")
		}
	})

	t.Run("tray piece stays", func(t *testing.T) {
		before := s.State().Tray()
		if got := dragTo(s, 1, Tray); got != DropIgnored {
			t.Errorf("drop = %s, want ignored", got)
		}
		if diff := cmp.Diff(before, s.State().Tray()); diff != "" {
			t.Errorf("tray changed (-want +got):\n%s", diff)
		}
	})
}

func TestClickSemantics(t *testing.T) {
	s := newSession()
	knight := board.Coord{Row: 4, Col: 4}
	dragTo(s, 2, Cell(knight))

	s.Click(Cell(knight))
	want := s.State().Highlights()
	if len(want) != 8 {
		t.Fatalf("knight highlights = %v", want)
	}

	s.Click(Cell(board.Coord{Row: 0, Col: 0}))
	s.Click(Cell(want[0]))
	s.Click(Tray)
	if diff := cmp.Diff(want, s.State().Highlights()); diff != "" {
		t.Errorf("empty cell / tray clicks changed highlights (-want +got):\n%s", diff)
	}

	s.Click(Nowhere)
	if got := s.State().Highlights(); len(got) != 0 {
		t.Errorf("click elsewhere should clear highlights, got %v", got)
	}
}

func TestDropClearsHighlights(t *testing.T) {
	s := newSession()
	dragTo(s, 1, Cell(board.Coord{Row: 3, Col: 3}))
	s.Click(Cell(board.Coord{Row: 3, Col: 3}))
	if len(s.State().Highlights()) == 0 {
		t.Fatal("expected highlights")
	}

	dragTo(s, 1, Cell(board.Coord{Row: 3, Col: 5}))
	if got := s.State().Highlights(); len(got) != 0 {
		t.Errorf("highlights after move = %v", got)
	}
}

func TestClear(t *testing.T) {
	s := newSession()
	for i, c := range []board.Coord{{Row: 0, Col: 0}, {Row: 6, Col: 1}, {Row: 7, Col: 7}} {
		dragTo(s, board.PieceID(i+1), Cell(c))
	}
	s.Click(Cell(board.Coord{Row: 6, Col: 1}))

	s.Clear()

	if n := s.State().OnBoard(); n != 0 {
		t.Errorf("OnBoard = %d after clear", n)
	}
	if n := len(s.State().Tray()); n != 10 {
		t.Errorf("tray has %d pieces, want 10", n)
	}
	if got := s.State().Highlights(); len(got) != 0 {
		t.Errorf("highlights after clear = %v", got)
	}
}
