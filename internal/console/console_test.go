package console

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/sandbox"
)

func run(t *testing.T, script string) []string {
	t.Helper()
	var out bytes.Buffer
	c := New(sandbox.New(board.DefaultRoster()), &out)
	if err := c.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestTranscript(t *testing.T) {
	script := `
place 2 e4
place 3 e4
select e4
d
return 2
return 2
place 42 a1
place 1 z9
moves knight a8
moves dragon e4
foo
clear
tray
quit
tray
`
	want := []string{
		"ok",
		"rejected: cell is occupied",
		"highlights d6 f6 c5 g5 c3 g3 d2 f2",
		"8 . . . . . . . .",
		"7 . . . . . . . .",
		"6 . . . * . * . .",
		"5 . . * . . . * .",
		"4 . . . . ♞ . . .",
		"3 . . * . . . * .",
		"2 . . . * . * . .",
		"1 . . . . . . . .",
		"  a b c d e f g h",
		"tray: ♜♝♛♚♝♞♜♙♙",
		"ok",
		"rejected: piece is not on the board",
		"rejected: unknown piece",
		"rejected: invalid square: z9",
		"moves c7 b6",
		"moves (none)",
		"unknown command: foo",
		"ok",
		"1 ♜ rook black",
		"3 ♝ bishop black",
		"4 ♛ queen black",
		"5 ♚ king black",
		"6 ♝ bishop black",
		"7 ♞ knight black",
		"8 ♜ rook black",
		"9 ♙ pawn black",
		"10 ♙ pawn black",
		"2 ♞ knight black",
	}
	if diff := cmp.Diff(want, run(t, script)); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectionLifecycle(t *testing.T) {
	script := `
place 1 a1
place 5 a3
select a1
select h8
deselect
select a1
place 9 h1
select a3
`
	want := []string{
		"ok",
		"ok",
		"highlights a8 a7 a6 a5 a4 a2 b1 c1 d1 e1 f1 g1 h1",
		"highlights a8 a7 a6 a5 a4 a2 b1 c1 d1 e1 f1 g1 h1",
		"ok",
		"highlights a8 a7 a6 a5 a4 a2 b1 c1 d1 e1 f1 g1 h1",
		"ok",
		"highlights a4 b4 b3 a2 b2",
	}
	if diff := cmp.Diff(want, run(t, script)); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageErrors(t *testing.T) {
	script := `
place 1
place x a1
return
select
select q0
moves rook
`
	want := []string{
		"usage: place <id> <square>",
		"invalid piece id: x",
		"usage: return <id>",
		"usage: select <square>",
		"error: invalid square: q0",
		"usage: moves <kind> <square>",
	}
	if diff := cmp.Diff(want, run(t, script)); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyTray(t *testing.T) {
	var b strings.Builder
	squares := []string{"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8", "a2", "b2"}
	for i, sq := range squares {
		fmt.Fprintf(&b, "place %d %s\n", i+1, sq)
	}
	b.WriteString("tray\n")

	got := run(t, b.String())
	if last := got[len(got)-1]; last != "tray empty" {
		t.Errorf("last line = %q, want tray empty", last)
	}
}
