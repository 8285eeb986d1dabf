package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var sortCoords = cmpopts.SortSlices(func(a, b Coord) bool { return a.less(b) })

var allKinds = []Kind{Rook, Knight, Bishop, Queen, King, Pawn}

func coordSet(cs []Coord) map[Coord]bool {
	m := make(map[Coord]bool, len(cs))
	for _, c := range cs {
		m[c] = true
	}
	return m
}

func TestGenerateMovesInBounds(t *testing.T) {
	for _, k := range allKinds {
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				for _, c := range GenerateMoves(k, row, col) {
					if !c.Valid() {
						t.Errorf("%s at (%d,%d) produced off-board %v", k, row, col, c)
					}
				}
			}
		}
	}
}

func TestGenerateMovesNoDuplicatesOrSelf(t *testing.T) {
	for _, k := range allKinds {
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				moves := GenerateMoves(k, row, col)
				set := coordSet(moves)
				if len(set) != len(moves) {
					t.Errorf("%s at (%d,%d) produced duplicates: %v", k, row, col, moves)
				}
				if set[Coord{row, col}] {
					t.Errorf("%s at (%d,%d) includes its own cell", k, row, col)
				}
			}
		}
	}
}

func TestRookAndQueenLines(t *testing.T) {
	for _, k := range []Kind{Rook, Queen} {
		t.Run(k.String(), func(t *testing.T) {
			set := coordSet(GenerateMoves(k, 0, 0))
			for i := 1; i < Size; i++ {
				if !set[Coord{0, i}] {
					t.Errorf("missing row cell (0,%d)", i)
				}
				if !set[Coord{i, 0}] {
					t.Errorf("missing column cell (%d,0)", i)
				}
			}
			if set[Coord{0, 0}] {
				t.Error("origin must not be a candidate")
			}
		})
	}

	if got := len(GenerateMoves(Rook, 3, 4)); got != 14 {
		t.Errorf("rook candidate count = %d, want 14", got)
	}
}

func TestRookIgnoresBlockers(t *testing.T) {
	// The generator never consults occupancy, so it has no way to stop at a
	// piece; the full line is always produced.
	moves := GenerateMoves(Rook, 7, 0)
	want := []Coord{
		{7, 1}, {7, 2}, {7, 3}, {7, 4}, {7, 5}, {7, 6}, {7, 7},
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0},
	}
	if diff := cmp.Diff(want, moves, sortCoords); diff != "" {
		t.Errorf("rook at a1 mismatch (-want +got):\n%s", diff)
	}
}

func TestKnight(t *testing.T) {
	t.Run("center", func(t *testing.T) {
		want := []Coord{{2, 3}, {2, 5}, {6, 3}, {6, 5}, {3, 2}, {3, 6}, {5, 2}, {5, 6}}
		if diff := cmp.Diff(want, GenerateMoves(Knight, 4, 4), sortCoords); diff != "" {
			t.Errorf("knight at (4,4) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("corner", func(t *testing.T) {
		want := []Coord{{1, 2}, {2, 1}}
		if diff := cmp.Diff(want, GenerateMoves(Knight, 0, 0), sortCoords); diff != "" {
			t.Errorf("knight at (0,0) mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBishop(t *testing.T) {
	moves := GenerateMoves(Bishop, 0, 0)
	set := coordSet(moves)
	if !set[Coord{7, 7}] {
		t.Error("bishop at (0,0) should reach (7,7)")
	}
	for _, c := range moves {
		if c.Row < 0 || c.Col < 0 {
			t.Errorf("negative component in %v", c)
		}
	}
	if len(moves) != 7 {
		t.Errorf("bishop at (0,0) has %d candidates, want 7", len(moves))
	}

	if got := len(GenerateMoves(Bishop, 3, 3)); got != 13 {
		t.Errorf("bishop at (3,3) has %d candidates, want 13", got)
	}
}

func TestQueenIsRookPlusBishop(t *testing.T) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			want := append(GenerateMoves(Rook, row, col), GenerateMoves(Bishop, row, col)...)
			got := GenerateMoves(Queen, row, col)
			if diff := cmp.Diff(want, got, sortCoords); diff != "" {
				t.Fatalf("queen at (%d,%d) mismatch (-want +got):\n%s", row, col, diff)
			}
		}
	}
}

func TestKing(t *testing.T) {
	corner := GenerateMoves(King, 0, 0)
	want := []Coord{{0, 1}, {1, 0}, {1, 1}}
	if diff := cmp.Diff(want, corner, sortCoords); diff != "" {
		t.Errorf("king at (0,0) mismatch (-want +got):\n%s", diff)
	}

	if got := len(GenerateMoves(King, 4, 4)); got != 8 {
		t.Errorf("king at (4,4) has %d candidates, want 8", got)
	}
}

func TestPawn(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		want     []Coord
	}{
		{"start row", 6, 3, []Coord{{5, 3}, {4, 3}}},
		{"after first step", 5, 3, []Coord{{4, 3}}},
		{"bottom row has no double step", 7, 3, []Coord{{6, 3}}},
		{"top row has nowhere to go", 0, 3, nil},
		{"start row at edge", 6, 0, []Coord{{5, 0}, {4, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateMoves(Pawn, tt.row, tt.col)
			if diff := cmp.Diff(tt.want, got, sortCoords, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnknownKind(t *testing.T) {
	if got := GenerateMoves(NoKind, 4, 4); len(got) != 0 {
		t.Errorf("NoKind produced %v", got)
	}
	if got := GenerateMoves(Kind(42), 4, 4); len(got) != 0 {
		t.Errorf("Kind(42) produced %v", got)
	}
	if got := GenerateMoves(KindFromGlyph('x'), 4, 4); len(got) != 0 {
		t.Errorf("unrecognized glyph produced %v", got)
	}
}

func TestOffBoardOrigin(t *testing.T) {
	// Off-board origins go through the same clipping, no panic and no
	// off-board results.
	for _, k := range allKinds {
		for _, c := range GenerateMoves(k, -3, 10) {
			if !c.Valid() {
				t.Errorf("%s from off-board origin produced %v", k, c)
			}
		}
	}

	// A rook just above the board still sees its full column.
	if got := len(GenerateMoves(Rook, -1, 2)); got != 8 {
		t.Errorf("rook at (-1,2) has %d candidates, want 8", got)
	}
}

func TestKindParsing(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"rook", Rook},
		{"N", Knight},
		{"b", Bishop},
		{"♛", Queen},
		{"♔", King},
		{"♙", Pawn},
		{"♟", Pawn},
		{"dragon", NoKind},
		{"", NoKind},
	}
	for _, tt := range tests {
		if got := ParseKind(tt.in); got != tt.want {
			t.Errorf("ParseKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestCoordNotation(t *testing.T) {
	c, err := ParseCoord("a8")
	if err != nil {
		t.Fatalf("ParseCoord(a8): %v", err)
	}
	if c != (Coord{0, 0}) {
		t.Errorf("a8 = %v, want (0,0)", c)
	}

	c, err = ParseCoord("e2")
	if err != nil {
		t.Fatalf("ParseCoord(e2): %v", err)
	}
	if c != (Coord{6, 4}) {
		t.Errorf("e2 = %v, want (6,4)", c)
	}
	if c.String() != "e2" {
		t.Errorf("String() = %s, want e2", c)
	}

	for _, bad := range []string{"", "i1", "a9", "a0", "e22"} {
		if _, err := ParseCoord(bad); err == nil {
			t.Errorf("ParseCoord(%q) should fail", bad)
		}
	}
}
