package board

import (
	"fmt"
	"strings"
)

// Color represents the cosmetic color of a piece.
// It never affects move generation.
type Color uint8

const (
	Black Color = iota
	White
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// ParseColor parses a color name.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, true
	case "white", "w":
		return White, true
	default:
		return Black, false
	}
}

// Kind represents the movement kind of a piece.
type Kind uint8

const (
	NoKind Kind = iota
	Rook
	Knight
	Bishop
	Queen
	King
	Pawn
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

// glyphs holds the Unicode symbols per kind: [white, black].
var glyphs = map[Kind][2]rune{
	Rook:   {'♖', '♜'},
	Knight: {'♘', '♞'},
	Bishop: {'♗', '♝'},
	Queen:  {'♕', '♛'},
	King:   {'♔', '♚'},
	Pawn:   {'♙', '♟'},
}

// Glyph returns the Unicode symbol for the kind in the given color.
func (k Kind) Glyph(c Color) rune {
	g, ok := glyphs[k]
	if !ok {
		return '?'
	}
	if c == White {
		return g[0]
	}
	return g[1]
}

// KindFromGlyph maps a chess glyph of either color to its kind.
// Unrecognized runes map to NoKind.
func KindFromGlyph(r rune) Kind {
	for k, g := range glyphs {
		if r == g[0] || r == g[1] {
			return k
		}
	}
	return NoKind
}

// KindFromLetter maps a FEN letter (either case) to its kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'r', 'R':
		return Rook
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	case 'p', 'P':
		return Pawn
	default:
		return NoKind
	}
}

// ParseKind accepts a kind name, a FEN letter or a glyph.
func ParseKind(s string) Kind {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "rook":
		return Rook
	case "knight":
		return Knight
	case "bishop":
		return Bishop
	case "queen":
		return Queen
	case "king":
		return King
	case "pawn":
		return Pawn
	}
	if len(s) == 1 {
		return KindFromLetter(s[0])
	}
	if r := []rune(s); len(r) == 1 {
		return KindFromGlyph(r[0])
	}
	return NoKind
}

// PieceID identifies a piece within a State. Zero means no piece.
type PieceID int

// NoPiece is the zero PieceID.
const NoPiece PieceID = 0

// Piece is a single movable figure.
type Piece struct {
	ID    PieceID
	Kind  Kind
	Color Color
	// Glyph is the symbol shown for the piece. It defaults to Kind.Glyph(Color).
	Glyph rune
}

// Symbol returns the piece glyph.
func (p Piece) Symbol() rune {
	if p.Glyph != 0 {
		return p.Glyph
	}
	return p.Kind.Glyph(p.Color)
}

// String returns a short description such as "3:♞ black knight".
func (p Piece) String() string {
	return fmt.Sprintf("%d:%c %s %s", p.ID, p.Symbol(), p.Color, p.Kind)
}
