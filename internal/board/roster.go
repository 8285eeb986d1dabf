package board

// DefaultRoster is the demo tray: the black back rank followed by two black
// pawns. It is not a full army.
func DefaultRoster() []Piece {
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

	roster := make([]Piece, 0, len(backRank)+2)
	for _, k := range backRank {
		roster = append(roster, Piece{Kind: k, Color: Black})
	}
	// The demo pawns use the outlined glyph even though they are black.
	for i := 0; i < 2; i++ {
		roster = append(roster, Piece{Kind: Pawn, Color: Black, Glyph: '♙'})
	}
	return roster
}
