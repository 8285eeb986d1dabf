// Package console drives a sandbox session from a line-oriented text stream.
// It is the headless counterpart of the Ebitengine UI and is mostly used for
// scripting and debugging.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/obslog"
	"github.com/hailam/chessboard/internal/sandbox"
)

// Console implements the text protocol over a session.
type Console struct {
	session *sandbox.Session
	out     io.Writer
	log     *zap.Logger
}

// New creates a console writing responses to out.
func New(s *sandbox.Session, out io.Writer) *Console {
	return &Console{
		session: s,
		out:     out,
		log:     obslog.L().Named("console"),
	}
}

// Run reads commands from in until EOF or "quit".
func (c *Console) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]
		c.log.Debug("[CMD]", zap.String("cmd", cmd), zap.Strings("args", args))

		switch cmd {
		case "tray":
			c.handleTray()
		case "place":
			c.handlePlace(args)
		case "return":
			c.handleReturn(args)
		case "select":
			c.handleSelect(args)
		case "moves":
			c.handleMoves(args)
		case "deselect":
			c.session.Click(sandbox.Nowhere)
			c.println("ok")
		case "clear":
			c.session.Clear()
			c.println("ok")
		case "d":
			c.handleDisplay()
		case "help":
			c.handleHelp()
		case "quit":
			return nil
		default:
			c.printf("unknown command: %s\n", cmd)
		}
	}
	return scanner.Err()
}

// handleTray lists the tray as "id glyph kind color" lines.
func (c *Console) handleTray() {
	tray := c.session.State().Tray()
	if len(tray) == 0 {
		c.println("tray empty")
		return
	}
	for _, p := range tray {
		c.printf("%d %c %s %s\n", p.ID, p.Symbol(), p.Kind, p.Color)
	}
}

// handlePlace drags a piece onto a cell.
// Format: place <id> <square>
func (c *Console) handlePlace(args []string) {
	if len(args) != 2 {
		c.println("usage: place <id> <square>")
		return
	}
	id, ok := c.parseID(args[0])
	if !ok {
		return
	}
	sq, err := board.ParseCoord(args[1])
	if err != nil {
		c.printf("rejected: %v\n", err)
		return
	}
	c.drop(id, sandbox.Cell(sq))
}

// handleReturn drags a piece back onto the tray.
// Format: return <id>
func (c *Console) handleReturn(args []string) {
	if len(args) != 1 {
		c.println("usage: return <id>")
		return
	}
	id, ok := c.parseID(args[0])
	if !ok {
		return
	}
	c.drop(id, sandbox.Tray)
}

func (c *Console) drop(id board.PieceID, t sandbox.Target) {
	if !c.session.BeginDrag(id) {
		c.printf("rejected: %v\n", board.ErrUnknownPiece)
		return
	}
	c.session.SnapshotCaptured()
	result := c.session.Drop(t)
	err := c.session.DropErr()
	c.session.EndDrag()

	switch {
	case result == sandbox.DropPlaced || result == sandbox.DropReturned:
		c.println("ok")
	case err != nil:
		c.printf("rejected: %v\n", err)
	default:
		c.println("ignored")
	}
}

// handleSelect clicks a cell and prints the resulting highlight set.
// Format: select <square>
func (c *Console) handleSelect(args []string) {
	if len(args) != 1 {
		c.println("usage: select <square>")
		return
	}
	sq, err := board.ParseCoord(args[0])
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}
	c.session.Click(sandbox.Cell(sq))
	c.println("highlights " + joinCoords(c.session.State().Highlights()))
}

// handleMoves prints the raw candidate set, ignoring occupancy.
// Format: moves <kind> <square>
func (c *Console) handleMoves(args []string) {
	if len(args) != 2 {
		c.println("usage: moves <kind> <square>")
		return
	}
	sq, err := board.ParseCoord(args[1])
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}
	moves := board.GenerateMoves(board.ParseKind(args[0]), sq.Row, sq.Col)
	board.SortCoords(moves)
	c.println("moves " + joinCoords(moves))
}

// handleDisplay prints the board, rank 8 first. Highlighted cells are "*",
// empty cells ".".
func (c *Console) handleDisplay() {
	st := c.session.State()
	var b strings.Builder
	for row := 0; row < board.Size; row++ {
		fmt.Fprintf(&b, "%d ", board.Size-row)
		for col := 0; col < board.Size; col++ {
			sq := board.Coord{Row: row, Col: col}
			switch p, ok := st.PieceAt(sq); {
			case ok:
				b.WriteRune(p.Symbol())
			case st.IsHighlighted(sq):
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
			if col < board.Size-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("  a b c d e f g h\n")

	var tray []rune
	for _, p := range st.Tray() {
		tray = append(tray, p.Symbol())
	}
	fmt.Fprintf(&b, "tray: %s\n", string(tray))
	c.printf("%s", b.String())
}

func (c *Console) handleHelp() {
	c.println("commands: tray, place <id> <square>, return <id>, select <square>,")
	c.println("          moves <kind> <square>, deselect, clear, d, quit")
}

func (c *Console) parseID(s string) (board.PieceID, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		c.printf("invalid piece id: %s\n", s)
		return board.NoPiece, false
	}
	return board.PieceID(n), true
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func joinCoords(cs []board.Coord) string {
	if len(cs) == 0 {
		return "(none)"
	}
	parts := make([]string, len(cs))
	for i, sq := range cs {
		parts[i] = sq.String()
	}
	return strings.Join(parts, " ")
}
